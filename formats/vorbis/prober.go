package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/streamfmt/asbd"
	"github.com/jfreymuth/oggvorbis"
)

// FormatID is the tag reported for Ogg Vorbis streams.
var FormatID = asbd.FourCC("vorb")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
}

type Prober struct{}

func (Prober) Probe(r io.Reader) (asbd.Descriptor, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return asbd.Descriptor{}, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	return describe(dec)
}

func describe(dec oggReader) (asbd.Descriptor, error) {
	if dec.SampleRate() < 1 || dec.Channels() < 1 {
		return asbd.Descriptor{}, ErrNotVorbisStream
	}

	// Vorbis packets vary in both size and frame count.
	return asbd.Descriptor{
		SampleRate:       float64(dec.SampleRate()),
		FormatID:         FormatID,
		ChannelsPerFrame: uint32(dec.Channels()),
	}, nil
}
