// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/streamfmt/asbd"
)

// FormatID is the tag reported for MPEG-1/2 Layer III streams.
var FormatID = asbd.FourCC(".mp3")

// Samples per Layer III frame. MPEG-2 low sampling frequency streams
// (below 32kHz) carry half as many.
const (
	framesPerPacket    = 1152
	lsfFramesPerPacket = 576
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
}

type Prober struct{}

func (Prober) Probe(r io.Reader) (asbd.Descriptor, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return asbd.Descriptor{}, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	return describe(dec)
}

func describe(dec mp3Reader) (asbd.Descriptor, error) {
	rate := dec.SampleRate()
	if rate < 1 {
		return asbd.Descriptor{}, ErrNotMP3Stream
	}

	frames := uint32(framesPerPacket)
	if rate < 32000 {
		frames = lsfFramesPerPacket
	}

	// go-mp3 always decodes to two channels.
	return asbd.Descriptor{
		SampleRate:       float64(rate),
		FormatID:         FormatID,
		FramesPerPacket:  frames,
		ChannelsPerFrame: 2,
	}, nil
}
