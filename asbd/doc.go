// SPDX-License-Identifier: EPL-2.0

// Package asbd decodes textual audio stream format descriptors and ranks
// descriptors by quality.
//
// # Descriptor
//
// A Descriptor records the sample layout of a stream: sample rate, a
// four-character format tag, format flags and the frame/packet geometry.
// Zero fields are unspecified. Only LinearPCM ('lpcm') gives the flags a
// defined meaning.
//
// # Text Notation
//
// Decode reads a compact notation. PCM formats name the byte order, the
// sample type and the bit depth:
//
//	BEI16@44100,2     big-endian 16-bit signed, 44.1kHz, stereo
//	LEF32@48000,2     little-endian 32-bit float
//	-BEUI16@44100,2D  unsigned, non-interleaved
//	LEI24:L4,2        24-bit samples low-aligned in 4 byte words
//	BEI16.8           fixed point, 16 integer and 8 fraction bits
//
// Other formats are given by their tag, with "\xHH" for bytes that cannot
// be typed. Tags shorter than four characters are padded with a space:
//
//	aac@44100#1024,2
//	alac/1
//	\x2Emp3@44100
//
// The "/" clause replaces every flag derived from the PCM prefix. There is
// no encoder back to this notation; Descriptor.String is a readable
// summary only.
//
// # Ranking
//
// Compare orders two descriptors by perceived quality, Less meaning the
// first is preferred: linear PCM first, then mixable, float, deeper bit
// depth, higher sample rate and more channels. Fields left at zero do not
// take part. Equal checks every field instead.
//
//	i := asbd.Preferred(candidates)
//	asbd.SortByPreference(files, func(f File) asbd.Descriptor { return f.Format })
//
// # Probing
//
// A Registry maps file extensions to Probers, which describe an encoded
// stream from its header. See the formats subpackages.
//
// All functions are safe for concurrent use.
package asbd
