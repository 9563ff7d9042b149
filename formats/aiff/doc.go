// SPDX-License-Identifier: EPL-2.0

// Package aiff describes AIFF (Audio Interchange File Format) files as
// stream format descriptors.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk.
// AIFF sample data is always big-endian signed integer PCM, so every
// descriptor this package returns is linear PCM with the big-endian and
// signed-integer flags set. Bit depths that do not fill whole bytes (for
// example 20-bit) come back unpacked and high-aligned, the way AIFF stores
// them.
//
// # Probing AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	desc, err := aiff.Prober{}.Probe(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(desc) // 2 ch, 44100 Hz, 'lpcm' (0x0000000E) 16-bit big-endian signed integer
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: The COMM chunk has no channels, no sample
//     rate or an out of range bit depth
//
// # Limitations
//
// go-audio requires an io.ReadSeeker. Other readers are buffered in memory
// before probing.
package aiff
