// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/streamfmt/asbd"
)

// AIFF samples are always big-endian two's complement.
const sampleFlags = asbd.FlagIsSignedInteger | asbd.FlagIsBigEndian

type Prober struct{}

func (Prober) Probe(r io.Reader) (asbd.Descriptor, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return asbd.Descriptor{}, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return asbd.Descriptor{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	return describe(dec.Format(), int(dec.BitDepth))
}

func describe(format *goaudio.Format, bitDepth int) (asbd.Descriptor, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return asbd.Descriptor{}, ErrUnsupportedAiffLayout
	}
	if bitDepth < 1 || bitDepth > 32 {
		return asbd.Descriptor{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedAiffLayout, bitDepth)
	}

	return asbd.NewLinearPCM(float64(format.SampleRate), uint32(format.NumChannels), uint32(bitDepth), sampleFlags), nil
}
