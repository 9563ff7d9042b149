// SPDX-License-Identifier: EPL-2.0

// Package vorbis describes Ogg Vorbis streams as stream format descriptors.
//
// This package uses github.com/jfreymuth/oggvorbis to read the Vorbis
// identification header. The descriptor carries the 'vorb' tag, the
// sample rate and the channel count. Packet sizes and frames per packet
// are variable and left unspecified.
//
//	file, _ := os.Open("audio.ogg")
//	desc, err := vorbis.Prober{}.Probe(file)
//	if errors.Is(err, vorbis.ErrNotVorbisStream) {
//	    // not Ogg, or Ogg carrying another codec
//	}
package vorbis
