// SPDX-License-Identifier: EPL-2.0

// Package wav describes WAV files as stream format descriptors.
//
// The Prober reads the RIFF/WAVE fmt chunk through github.com/go-audio/wav
// and reports:
//   - integer PCM as little-endian linear PCM (unsigned at 8 bits, signed above)
//   - IEEE float (32 or 64 bit) as little-endian float linear PCM
//   - A-law and mu-law as 'alaw' and 'ulaw'
//
// WAVE_FORMAT_EXTENSIBLE files are described by the format tag in their
// sub-format GUID, read with github.com/go-audio/riff.
//
// Example:
//
//	file, _ := os.Open("audio.wav")
//	desc, err := wav.Prober{}.Probe(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// Inputs that are not an io.ReadSeeker are read into memory first.
package wav
