// SPDX-License-Identifier: EPL-2.0

// Package mp3 describes MP3 streams as stream format descriptors.
//
// This package uses github.com/hajimehoshi/go-mp3 to find the first frame
// header. The descriptor carries the '.mp3' tag, the sample rate, two
// channels (go-mp3 always decodes to stereo) and the Layer III frame size
// of 1152 samples, or 576 for MPEG-2 rates below 32kHz. MP3 packets vary
// in size, so the byte counts and bit depth stay unspecified.
//
//	file, _ := os.Open("audio.mp3")
//	desc, err := mp3.Prober{}.Probe(file)
//
// Compared with asbd.Compare, an MP3 descriptor always ranks after any
// linear PCM descriptor.
package mp3
