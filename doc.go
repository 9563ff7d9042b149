// SPDX-License-Identifier: EPL-2.0

// Package streamfmt describes audio streams with compact, comparable format
// descriptors.
//
// The core lives in the asbd subpackage: a decoder for a short textual
// notation ("BEI16@44100,2", "aac@48000#1024,2") and a comparator that
// ranks two descriptors by quality. This package adds the glue around it:
// probing files on disk and resolving descriptors supplied in
// configuration.
//
// # Quick Start
//
// Decode a descriptor from text:
//
//	d, err := asbd.Decode("LEF32@48000,2")
//
// Resolve a configured descriptor, falling back to a default:
//
//	d, err := streamfmt.Resolve(cfg.Format, asbd.MustDecode("LEI16@44100,2"))
//	if err != nil {
//	    log.Warn().Err(err).Msg("using default format")
//	}
//
// Pick the best of several files:
//
//	reg := streamfmt.DefaultRegistry()
//	cands := streamfmt.ProbeFiles(reg, []string{"a.wav", "b.mp3", "c.aiff"})
//	if i := streamfmt.Preferred(cands); i >= 0 {
//	    fmt.Println("best:", cands[i].Path)
//	}
//
// # Supported Formats
//
// File probers, selected by extension:
//   - WAV (integer PCM, float, A-law, mu-law) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Ranking
//
// Linear PCM always ranks before compressed formats. Between PCM
// descriptors mixable beats non-mixable and float beats integer; after
// that bit depth, sample rate and channel count decide, in that order.
//
// See the individual subpackages for more detailed documentation.
package streamfmt
