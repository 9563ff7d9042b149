// SPDX-License-Identifier: EPL-2.0

package asbd

import (
	"fmt"
	"strings"
)

// FormatID is a four-character format tag. Byte 0 of the code is the most
// significant byte.
type FormatID uint32

// LinearPCM is the reserved tag for linear PCM, the only format whose flags
// have a defined meaning.
const LinearPCM FormatID = 'l'<<24 | 'p'<<16 | 'c'<<8 | 'm'

// FourCC builds a FormatID from a four byte code such as "aac " or ".mp3".
// It panics if code is not exactly 4 bytes long.
func FourCC(code string) FormatID {
	if len(code) != 4 {
		panic("asbd: FourCC code must be 4 bytes")
	}
	return FormatID(uint32(code[0])<<24 | uint32(code[1])<<16 | uint32(code[2])<<8 | uint32(code[3]))
}

// Bytes returns the tag bytes, most significant first.
func (f FormatID) Bytes() [4]byte {
	return [4]byte{byte(f >> 24), byte(f >> 16), byte(f >> 8), byte(f)}
}

// String renders printable tags quoted ('lpcm') and anything else as hex.
func (f FormatID) String() string {
	b := f.Bytes()
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08X", uint32(f))
		}
	}
	return "'" + string(b[:]) + "'"
}

// FormatFlags is the format specific bitmask. The named bits only carry
// meaning for LinearPCM.
type FormatFlags uint32

const (
	FlagIsFloat FormatFlags = 1 << iota
	FlagIsBigEndian
	FlagIsSignedInteger
	FlagIsPacked
	FlagIsAlignedHigh
	FlagIsNonInterleaved
	FlagIsNonMixable
)

const (
	fractionShift             = 7
	fractionMask  FormatFlags = 0x3F << fractionShift
)

// Has reports whether every bit of mask is set.
func (f FormatFlags) Has(mask FormatFlags) bool { return f&mask == mask }

// FractionBits returns the fixed point fraction bit count (bits 7-12).
func (f FormatFlags) FractionBits() uint32 {
	return uint32(f&fractionMask) >> fractionShift
}

// WithFractionBits returns f with the fraction sub-field replaced by n.
// Only the low 6 bits of n are kept.
func (f FormatFlags) WithFractionBits(n uint32) FormatFlags {
	return f&^fractionMask | FormatFlags(n<<fractionShift)&fractionMask
}

// Descriptor describes the sample layout of an audio stream. A zero field
// means "unspecified". Descriptor is a plain value and comparable with ==.
type Descriptor struct {
	// SampleRate in frames per second.
	SampleRate  float64
	FormatID    FormatID
	FormatFlags FormatFlags

	// BytesPerPacket is 0 for variable sized packets.
	BytesPerPacket uint32
	// FramesPerPacket is always 1 for uncompressed PCM.
	FramesPerPacket  uint32
	BytesPerFrame    uint32
	ChannelsPerFrame uint32
	// BitsPerChannel includes the fraction bits of fixed point formats.
	BitsPerChannel uint32
}

// NewLinearPCM builds a packed PCM descriptor. flags selects the sample
// representation (float or signed, endianness, non-interleaved); the packed
// bit and the byte counts are derived.
func NewLinearPCM(sampleRate float64, channels, bitsPerChannel uint32, flags FormatFlags) Descriptor {
	d := Descriptor{
		SampleRate:       sampleRate,
		FormatID:         LinearPCM,
		FormatFlags:      flags | FlagIsPacked,
		FramesPerPacket:  1,
		ChannelsPerFrame: channels,
		BitsPerChannel:   bitsPerChannel,
	}

	word := (bitsPerChannel + 7) / 8
	if bitsPerChannel%8 != 0 {
		d.FormatFlags = d.FormatFlags&^FlagIsPacked | FlagIsAlignedHigh
	}
	if d.IsInterleaved() {
		word *= channels
	}
	d.BytesPerFrame = word
	d.BytesPerPacket = word

	return d
}

func (d Descriptor) IsPCM() bool { return d.FormatID == LinearPCM }

// IsInterleaved is true for everything except PCM with the non-interleaved
// flag set.
func (d Descriptor) IsInterleaved() bool {
	return !d.IsPCM() || !d.FormatFlags.Has(FlagIsNonInterleaved)
}

// IsMixable is false only for PCM carrying the non-mixable flag.
func (d Descriptor) IsMixable() bool {
	return !d.IsPCM() || !d.FormatFlags.Has(FlagIsNonMixable)
}

// ChannelStreams is the number of separate buffers the stream occupies.
func (d Descriptor) ChannelStreams() uint32 {
	if d.IsInterleaved() {
		return 1
	}
	return d.ChannelsPerFrame
}

// ChannelsPerStream is the number of channels in each buffer.
func (d Descriptor) ChannelsPerStream() uint32 {
	if d.IsInterleaved() {
		return d.ChannelsPerFrame
	}
	return 1
}

// SampleWordSize returns the size in bytes of one channel sample, or 0 when
// it cannot be derived.
func (d Descriptor) SampleWordSize() uint32 {
	n := d.ChannelsPerStream()
	if d.BytesPerFrame == 0 || n == 0 {
		return 0
	}
	return d.BytesPerFrame / n
}

// FramesToBytes converts a frame count for constant bit rate formats. It
// returns 0 when the descriptor does not define a fixed frame size.
func (d Descriptor) FramesToBytes(frames uint32) uint32 {
	return frames * d.BytesPerFrame
}

// BytesToFrames is the inverse of FramesToBytes.
func (d Descriptor) BytesToFrames(n uint32) uint32 {
	if d.BytesPerFrame == 0 {
		return 0
	}
	return n / d.BytesPerFrame
}

// String returns a human readable summary meant for logs and terminal output.
func (d Descriptor) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d ch, %g Hz, %s (0x%08X) ", d.ChannelsPerFrame, d.SampleRate, d.FormatID, uint32(d.FormatFlags))

	if !d.IsPCM() {
		fmt.Fprintf(&sb, "%d bits/channel, %d bytes/packet, %d frames/packet, %d bytes/frame",
			d.BitsPerChannel, d.BytesPerPacket, d.FramesPerPacket, d.BytesPerFrame)
		return sb.String()
	}

	f := d.FormatFlags
	fmt.Fprintf(&sb, "%d-bit", d.BitsPerChannel)
	if d.BitsPerChannel > 8 {
		if f.Has(FlagIsBigEndian) {
			sb.WriteString(" big-endian")
		} else {
			sb.WriteString(" little-endian")
		}
	}

	switch {
	case f.Has(FlagIsFloat):
		sb.WriteString(" float")
	case f.Has(FlagIsSignedInteger):
		sb.WriteString(" signed integer")
	default:
		sb.WriteString(" unsigned integer")
	}

	if frac := f.FractionBits(); frac > 0 {
		fmt.Fprintf(&sb, " (%d.%d fixed point)", d.BitsPerChannel-frac, frac)
	}
	if !f.Has(FlagIsPacked) && d.SampleWordSize() > 0 {
		if f.Has(FlagIsAlignedHigh) {
			fmt.Fprintf(&sb, " unpacked in %d bytes, high-aligned", d.SampleWordSize())
		} else {
			fmt.Fprintf(&sb, " unpacked in %d bytes, low-aligned", d.SampleWordSize())
		}
	}
	if !d.IsInterleaved() {
		sb.WriteString(", deinterleaved")
	}
	if !d.IsMixable() {
		sb.WriteString(", non-mixable")
	}

	return sb.String()
}
