// SPDX-License-Identifier: EPL-2.0

package asbd

import (
	"encoding/binary"
	"math"
)

var nativeBigEndian = binary.NativeEndian.Uint16([]byte{0, 1}) == 1

// Decode parses the textual descriptor notation:
//
//	format := ["-"] (pcm-format | tag-format) [@rate] [/flags] [#frames] [:bytes] [,channels]
//
// PCM formats are written as [BE|LE] (F | [U]I) depth[.fraction], for
// example "BEI16", "LEF32" or "UI24.8". Anything that does not match the
// PCM form is read as a four character format tag such as "aac" or
// "\x01\x02ab". The optional clauses that follow are:
//
//	@44100   sample rate
//	/C       format flags in hex, replacing any flags derived so far
//	#1024    frames per packet
//	:L4 :H4  low or high aligned, 4 bytes per frame (clears packed)
//	,2 ,2I   channels, interleaved (PCM bytes per frame scale by channels)
//	,2D      channels, non-interleaved (PCM only)
//
// Every number must fit in 32 bits, as must the PCM bytes per frame after
// the channel clause scales it.
//
// On failure the returned error is a *DecodeError wrapping
// ErrMalformedDescriptor and the descriptor is the zero value.
func Decode(text string) (Descriptor, error) {
	c := newCursor(text)
	d := Descriptor{}

	c.accept('-')
	start := c.pos

	isPCM, r := decodePCM(c, &d)
	if r != 0 {
		return Descriptor{}, fail(c, text, r)
	}
	if !isPCM {
		c.pos = start
		if r := decodeTag(c, &d); r != 0 {
			return Descriptor{}, fail(c, text, r)
		}
	}

	if r := decodeClauses(c, &d); r != 0 {
		return Descriptor{}, fail(c, text, r)
	}

	if !c.done() {
		return Descriptor{}, fail(c, text, ReasonTrailingCharacters)
	}

	return d, nil
}

// MustDecode is like Decode but panics on malformed text. It is meant for
// descriptors written as literals in source code.
func MustDecode(text string) Descriptor {
	d, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return d
}

func fail(c *cursor, text string, r Reason) error {
	return &DecodeError{Reason: r, Pos: c.pos, Input: text}
}

// decodePCM reads [BE|LE] (F | [U]I) depth[.fraction]. It returns false,
// with the cursor left wherever it stopped, when there is no 'I' after the
// optional prefix.
func decodePCM(c *cursor, d *Descriptor) (bool, Reason) {
	flags := FlagIsPacked | FlagIsSignedInteger

	switch {
	case c.acceptPair('B', 'E'):
		flags |= FlagIsBigEndian
	case c.acceptPair('L', 'E'):
	default:
		if nativeBigEndian {
			flags |= FlagIsBigEndian
		}
	}

	if c.accept('F') {
		flags = flags&^FlagIsSignedInteger | FlagIsFloat
	} else {
		if c.accept('U') {
			flags &^= FlagIsSignedInteger
		}
		if !c.accept('I') {
			return false, 0
		}
	}

	depth, r := c.decimal()
	if r != 0 {
		return false, r
	}

	if c.accept('.') {
		frac, r := c.decimal()
		switch {
		case r == ReasonMissingDigits:
			return false, ReasonMissingFraction
		case r != 0:
			return false, r
		case frac > math.MaxUint32-depth:
			return false, ReasonOutOfRange
		}
		depth += frac
		flags = flags.WithFractionBits(frac)
	}

	d.FormatID = LinearPCM
	d.BitsPerChannel = depth
	d.BytesPerFrame = uint32((uint64(depth) + 7) / 8)
	d.BytesPerPacket = d.BytesPerFrame
	d.FramesPerPacket = 1
	d.ChannelsPerFrame = 1

	if depth%8 != 0 {
		flags = flags&^FlagIsPacked | FlagIsAlignedHigh
	}
	d.FormatFlags = flags

	return true, 0
}

// decodeTag fills the four tag slots. It returns 0 on success.
func decodeTag(c *cursor, d *Descriptor) Reason {
	var tag [4]byte

	for i := range tag {
		b, consumed, r := tagByte(c)
		if r != 0 {
			return r
		}

		if b == 0 {
			// Short tags such as "aac" are padded with a space.
			if i != len(tag)-1 {
				return ReasonEarlyNull
			}
			b = ' '
			if consumed {
				c.retreat()
			}
		}
		tag[i] = b
	}

	switch tag[3] {
	case '-', '@', '/', '#':
		// The 4th character starts a clause: "aac@44100".
		tag[3] = ' '
		c.retreat()
	}

	d.FormatID = FormatID(binary.BigEndian.Uint32(tag[:]))
	return 0
}

// tagByte reads one tag slot. consumed reports whether an ordinary
// character was taken from the input; end of input yields byte 0.
func tagByte(c *cursor) (b byte, consumed bool, r Reason) {
	ch, ok := c.peek()
	if !ok {
		return 0, false, 0
	}

	if ch != '\\' {
		if ch > 0xFF {
			return 0, false, ReasonInvalidCharacter
		}
		c.advance()
		return byte(ch), true, 0
	}

	c.advance()
	x, ok := c.peek()
	if !ok {
		return 0, false, ReasonUnterminatedEscape
	}
	if x != 'x' {
		return 0, false, ReasonBadEscape
	}
	c.advance()

	var v uint32
	for i := 0; i < 2; i++ {
		h, ok := c.peek()
		if !ok {
			return 0, false, ReasonUnterminatedEscape
		}
		n, isHex := hexValue(h)
		if !isHex {
			return 0, false, ReasonNotHexDigit
		}
		v = v<<4 | n
		c.advance()
	}

	return byte(v), false, 0
}

// decodeClauses reads the optional @rate /flags #frames :bytes ,channels
// clauses in that order.
func decodeClauses(c *cursor, d *Descriptor) Reason {
	if c.accept('@') {
		var rate float64
		if !c.digits(10, func(n uint32) { rate = rate*10 + float64(n) }) {
			return ReasonMissingDigits
		}
		d.SampleRate = rate
	}

	if c.accept('/') {
		flags, r := c.hexadecimal()
		if r != 0 {
			return r
		}
		d.FormatFlags = FormatFlags(flags)
	}

	if c.accept('#') {
		frames, r := c.decimal()
		if r != 0 {
			return r
		}
		d.FramesPerPacket = frames
	}

	if c.accept(':') {
		d.FormatFlags &^= FlagIsPacked
		switch {
		case c.accept('L'):
			d.FormatFlags &^= FlagIsAlignedHigh
		case c.accept('H'):
			d.FormatFlags |= FlagIsAlignedHigh
		default:
			return ReasonBadAlignment
		}

		n, r := c.decimal()
		if r != 0 {
			return r
		}
		d.BytesPerFrame = n
		d.BytesPerPacket = n
	}

	if c.accept(',') {
		ch, r := c.decimal()
		if r != 0 {
			return r
		}
		d.ChannelsPerFrame = ch

		if c.accept('D') {
			if d.FormatID != LinearPCM {
				c.retreat()
				return ReasonNonInterleavedTag
			}
			d.FormatFlags |= FlagIsNonInterleaved
		} else {
			c.accept('I')
			if d.FormatID == LinearPCM {
				if uint64(d.BytesPerFrame)*uint64(ch) > math.MaxUint32 ||
					uint64(d.BytesPerPacket)*uint64(ch) > math.MaxUint32 {
					return ReasonOutOfRange
				}
				d.BytesPerFrame *= ch
				d.BytesPerPacket *= ch
			}
		}
	}

	return 0
}
