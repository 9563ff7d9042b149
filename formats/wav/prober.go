// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/streamfmt/asbd"
)

// fmt chunk format tags
const (
	formatPCM        = 0x0001
	formatFloat      = 0x0003
	formatALaw       = 0x0006
	formatULaw       = 0x0007
	formatExtensible = 0xFFFE
)

// WAVEFORMATEXTENSIBLE layout
const (
	extensibleFmtSize = 40
	subFormatOffset   = 24
)

var (
	aLaw = asbd.FourCC("alaw")
	uLaw = asbd.FourCC("ulaw")
)

// header is the part of the fmt chunk a descriptor is built from.
type header struct {
	audioFormat int
	sampleRate  int
	channels    int
	bitDepth    int
}

type Prober struct{}

func (Prober) Probe(r io.Reader) (asbd.Descriptor, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return asbd.Descriptor{}, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return asbd.Descriptor{}, ErrNotWavFile
	}

	audioFormat := int(dec.WavAudioFormat)
	if audioFormat == formatExtensible {
		sub, err := subFormat(rs)
		if err != nil {
			return asbd.Descriptor{}, err
		}
		audioFormat = sub
	}

	return describe(header{
		audioFormat: audioFormat,
		sampleRate:  int(dec.SampleRate),
		channels:    int(dec.NumChans),
		bitDepth:    int(dec.BitDepth),
	})
}

// subFormat rereads the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file and
// returns the format tag held in the first two bytes of its sub-format
// GUID. go-audio/wav skips the extension.
func subFormat(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewinding wav data: %w", err)
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: no fmt chunk", ErrUnsupportedWavLayout)
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		buf := make([]byte, ch.Size)
		if _, err := io.ReadFull(ch, buf); err != nil {
			return 0, fmt.Errorf("%w: short fmt chunk", ErrUnsupportedWavLayout)
		}
		if len(buf) < extensibleFmtSize {
			return 0, fmt.Errorf("%w: %d byte extensible fmt chunk", ErrUnsupportedWavLayout, len(buf))
		}

		return int(binary.LittleEndian.Uint16(buf[subFormatOffset:])), nil
	}
}

func describe(h header) (asbd.Descriptor, error) {
	if h.channels < 1 || h.sampleRate < 1 || h.bitDepth < 1 {
		return asbd.Descriptor{}, ErrUnsupportedWavLayout
	}

	rate := float64(h.sampleRate)
	channels := uint32(h.channels)
	bits := uint32(h.bitDepth)

	switch h.audioFormat {
	case formatPCM:
		// 8-bit WAV samples are unsigned, wider ones signed.
		flags := asbd.FlagIsSignedInteger
		if bits <= 8 {
			flags = 0
		}
		return asbd.NewLinearPCM(rate, channels, bits, flags), nil

	case formatFloat:
		if bits != 32 && bits != 64 {
			return asbd.Descriptor{}, ErrUnsupportedWavLayout
		}
		return asbd.NewLinearPCM(rate, channels, bits, asbd.FlagIsFloat), nil

	case formatALaw, formatULaw:
		id := aLaw
		if h.audioFormat == formatULaw {
			id = uLaw
		}
		return asbd.Descriptor{
			SampleRate:       rate,
			FormatID:         id,
			BytesPerPacket:   channels,
			FramesPerPacket:  1,
			BytesPerFrame:    channels,
			ChannelsPerFrame: channels,
			BitsPerChannel:   8,
		}, nil
	}

	return asbd.Descriptor{}, fmt.Errorf("%w: format tag %#04x", ErrUnsupportedEncoding, h.audioFormat)
}
