// SPDX-License-Identifier: EPL-2.0

package asbd

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_BigEndianStereo16(t *testing.T) {
	t.Parallel()

	d, err := Decode("BEI16@44100,2")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := Descriptor{
		SampleRate:       44100,
		FormatID:         LinearPCM,
		FormatFlags:      FlagIsBigEndian | FlagIsSignedInteger | FlagIsPacked,
		BytesPerPacket:   4,
		FramesPerPacket:  1,
		BytesPerFrame:    4,
		ChannelsPerFrame: 2,
		BitsPerChannel:   16,
	}
	if d != want {
		t.Errorf("Decode() = %+v, want %+v", d, want)
	}
}

func TestDecode_UnsignedNonInterleaved(t *testing.T) {
	t.Parallel()

	d, err := Decode("-BEUI16@44100,2D")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if !d.FormatFlags.Has(FlagIsNonInterleaved) {
		t.Error("non-interleaved flag not set")
	}
	if d.FormatFlags.Has(FlagIsSignedInteger) {
		t.Error("signed integer flag set, want cleared")
	}
	if d.BytesPerFrame != 2 || d.BytesPerPacket != 2 {
		t.Errorf("bytes per frame/packet = %d/%d, want 2/2", d.BytesPerFrame, d.BytesPerPacket)
	}
	if d.ChannelsPerFrame != 2 {
		t.Errorf("ChannelsPerFrame = %d, want 2", d.ChannelsPerFrame)
	}
	if d.IsInterleaved() {
		t.Error("IsInterleaved() = true, want false")
	}
}

func TestDecode_ShortTag(t *testing.T) {
	t.Parallel()

	d, err := Decode("aac")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if got := d.FormatID.Bytes(); got != [4]byte{'a', 'a', 'c', ' '} {
		t.Errorf("FormatID bytes = %q, want %q", got, "aac ")
	}

	want := Descriptor{FormatID: FourCC("aac ")}
	if d != want {
		t.Errorf("Decode() = %+v, want only FormatID set", d)
	}
}

func TestDecode_FlagsOverwrite(t *testing.T) {
	t.Parallel()

	d, err := Decode("aac/5bE")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if d.FormatFlags != 0x5BE {
		t.Errorf("FormatFlags = %#x, want 0x5be", uint32(d.FormatFlags))
	}

	// PCM derived flags are discarded, not merged.
	d, err = Decode("BEI16/1")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if d.FormatFlags != FlagIsFloat {
		t.Errorf("FormatFlags = %#x, want 0x1", uint32(d.FormatFlags))
	}
}

func TestDecode_FractionBits(t *testing.T) {
	t.Parallel()

	d, err := Decode("BEI16.1@44100,2")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if d.BitsPerChannel != 17 {
		t.Errorf("BitsPerChannel = %d, want 17", d.BitsPerChannel)
	}
	if got := d.FormatFlags.FractionBits(); got != 1 {
		t.Errorf("FractionBits() = %d, want 1", got)
	}
	// 17 bits do not fill whole bytes: unpacked, high aligned, 3 bytes a sample.
	if d.FormatFlags.Has(FlagIsPacked) {
		t.Error("packed flag set for 17-bit samples")
	}
	if !d.FormatFlags.Has(FlagIsAlignedHigh) {
		t.Error("aligned high flag not set for 17-bit samples")
	}
	if d.BytesPerFrame != 6 {
		t.Errorf("BytesPerFrame = %d, want 6", d.BytesPerFrame)
	}
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Descriptor
	}{
		{
			text: "LEF32@48000,2",
			want: Descriptor{
				SampleRate: 48000, FormatID: LinearPCM, FormatFlags: FlagIsFloat | FlagIsPacked,
				BytesPerPacket: 8, FramesPerPacket: 1, BytesPerFrame: 8, ChannelsPerFrame: 2, BitsPerChannel: 32,
			},
		},
		{
			text: "LEUI8",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsPacked,
				BytesPerPacket: 1, FramesPerPacket: 1, BytesPerFrame: 1, ChannelsPerFrame: 1, BitsPerChannel: 8,
			},
		},
		{
			text: "LEI20",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsSignedInteger | FlagIsAlignedHigh,
				BytesPerPacket: 3, FramesPerPacket: 1, BytesPerFrame: 3, ChannelsPerFrame: 1, BitsPerChannel: 20,
			},
		},
		{
			text: "LEI24:L4,2",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsSignedInteger,
				BytesPerPacket: 8, FramesPerPacket: 1, BytesPerFrame: 8, ChannelsPerFrame: 2, BitsPerChannel: 24,
			},
		},
		{
			text: "LEI24:H4",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsSignedInteger | FlagIsAlignedHigh,
				BytesPerPacket: 4, FramesPerPacket: 1, BytesPerFrame: 4, ChannelsPerFrame: 1, BitsPerChannel: 24,
			},
		},
		{
			text: "LEI16,2I",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsSignedInteger | FlagIsPacked,
				BytesPerPacket: 4, FramesPerPacket: 1, BytesPerFrame: 4, ChannelsPerFrame: 2, BitsPerChannel: 16,
			},
		},
		{
			text: "LEI16#4",
			want: Descriptor{
				FormatID: LinearPCM, FormatFlags: FlagIsSignedInteger | FlagIsPacked,
				BytesPerPacket: 2, FramesPerPacket: 4, BytesPerFrame: 2, ChannelsPerFrame: 1, BitsPerChannel: 16,
			},
		},
		{
			text: "aac@44100#1024,2",
			want: Descriptor{SampleRate: 44100, FormatID: FourCC("aac "), FramesPerPacket: 1024, ChannelsPerFrame: 2},
		},
		{
			text: "alac,2I",
			want: Descriptor{FormatID: FourCC("alac"), ChannelsPerFrame: 2},
		},
		{
			// ',' is not a clause delimiter for short tags; it becomes the 4th byte.
			text: "aac,",
			want: Descriptor{FormatID: FourCC("aac,")},
		},
		{
			text: "-aac",
			want: Descriptor{FormatID: FourCC("aac ")},
		},
		{
			text: "alac/1#4096",
			want: Descriptor{FormatID: FourCC("alac"), FormatFlags: 1, FramesPerPacket: 4096},
		},
		{
			text: `\x2Emp3@44100,2`,
			want: Descriptor{SampleRate: 44100, FormatID: FourCC(".mp3"), ChannelsPerFrame: 2},
		},
		{
			text: `aac\x00`,
			want: Descriptor{FormatID: FourCC("aac ")},
		},
		{
			text: "café",
			want: Descriptor{FormatID: FourCC("caf\xe9")},
		},
		{
			// A literal "lpcm" tag is linear PCM, so 'D' is accepted.
			text: "lpcm,2D",
			want: Descriptor{FormatID: LinearPCM, FormatFlags: FlagIsNonInterleaved, ChannelsPerFrame: 2},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.text)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v, want nil", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecode_NativeEndianDefault(t *testing.T) {
	t.Parallel()

	d, err := Decode("I16")
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if got := d.FormatFlags.Has(FlagIsBigEndian); got != nativeBigEndian {
		t.Errorf("big-endian flag = %v, want %v (host order)", got, nativeBigEndian)
	}
}

func TestDecode_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		reason Reason
	}{
		{"", ReasonEarlyNull},
		{"aa", ReasonEarlyNull},
		{"B", ReasonEarlyNull},
		{"BE", ReasonEarlyNull},
		{"@441100", ReasonTrailingCharacters},
		{"aac,D", ReasonTrailingCharacters},
		{"alac,2D", ReasonNonInterleavedTag},
		{"aac/5bG", ReasonTrailingCharacters},
		{"aac/", ReasonNotHexDigit},
		{"aac-", ReasonTrailingCharacters},
		{"LEI16.", ReasonMissingFraction},
		{"LEI16.@44100", ReasonMissingFraction},
		{"LEI", ReasonMissingDigits},
		{"LEI16@", ReasonMissingDigits},
		{"LEI16#", ReasonMissingDigits},
		{"LEI16,", ReasonMissingDigits},
		{"LEI16:X4", ReasonBadAlignment},
		{"LEI16:", ReasonBadAlignment},
		{"LEI16:L", ReasonMissingDigits},
		{"LEI16,2extra", ReasonTrailingCharacters},
		{`\y12a`, ReasonBadEscape},
		{`\`, ReasonUnterminatedEscape},
		{`\x1`, ReasonUnterminatedEscape},
		{`\x1Gabc`, ReasonNotHexDigit},
		{`ab\x00c`, ReasonEarlyNull},
		{"ab\x00c", ReasonEarlyNull},
		{"aac€", ReasonInvalidCharacter},
		{"LEI4294967296", ReasonOutOfRange},
		{"LEI4294967295.1", ReasonOutOfRange},
		{"LEI16@44100#99999999999", ReasonOutOfRange},
		{"aac/100000000", ReasonOutOfRange},
		{"LEI16:L4294967295,2", ReasonOutOfRange},
		{"LEI16,4294967296", ReasonOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			d, err := Decode(tt.text)
			if err == nil {
				t.Fatalf("Decode(%q) = %+v, want error", tt.text, d)
			}
			if !errors.Is(err, ErrMalformedDescriptor) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformedDescriptor", tt.text, err)
			}

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Decode(%q) error type = %T, want *DecodeError", tt.text, err)
			}
			if de.Reason != tt.reason {
				t.Errorf("Decode(%q) reason = %v, want %v", tt.text, de.Reason, tt.reason)
			}
			if d != (Descriptor{}) {
				t.Errorf("Decode(%q) returned partial descriptor %+v", tt.text, d)
			}
		})
	}
}

func TestDecode_ErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Decode("LEI16,2extra")

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if de.Pos != 7 {
		t.Errorf("Pos = %d, want 7", de.Pos)
	}
	if de.Input != "LEI16,2extra" {
		t.Errorf("Input = %q, want %q", de.Input, "LEI16,2extra")
	}
	if !strings.Contains(err.Error(), `"extra"`) {
		t.Errorf("Error() = %q, want offending text included", err.Error())
	}
}

func TestDecode_PCMInvariants(t *testing.T) {
	t.Parallel()

	texts := []string{
		"BEI16@44100,2", "LEF32@48000,2", "-BEUI16@44100,2D", "LEI24:L4,6",
		"BEI16.1@44100,2", "UI8", "F64@96000,8", "LEI20,2I",
	}

	for _, text := range texts {
		d, err := Decode(text)
		if err != nil {
			t.Errorf("Decode(%q) error = %v", text, err)
			continue
		}
		if !d.IsPCM() {
			t.Errorf("Decode(%q) FormatID = %v, want 'lpcm'", text, d.FormatID)
		}
		if d.FramesPerPacket != 1 {
			t.Errorf("Decode(%q) FramesPerPacket = %d, want 1", text, d.FramesPerPacket)
		}
		if d.BytesPerPacket != d.BytesPerFrame {
			t.Errorf("Decode(%q) BytesPerPacket = %d, BytesPerFrame = %d", text, d.BytesPerPacket, d.BytesPerFrame)
		}
	}
}

func TestDecode_Idempotent(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"BEI16@44100,2", "aac/5bE", `\x01\x02ab@8000`, "LEI24:H4,2D"} {
		a, errA := Decode(text)
		b, errB := Decode(text)
		if errA != nil || errB != nil {
			t.Fatalf("Decode(%q) errors = %v, %v", text, errA, errB)
		}
		if !Equal(a, b) {
			t.Errorf("Decode(%q) twice: %+v != %+v", text, a, b)
		}
	}
}

func TestMustDecode_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustDecode() did not panic on malformed text")
		}
	}()

	MustDecode("aa")
}

func TestCursor_Retreat(t *testing.T) {
	t.Parallel()

	c := newCursor("ab")
	c.retreat()
	if c.pos != 0 {
		t.Fatalf("retreat at start moved to %d", c.pos)
	}

	c.advance()
	c.advance()
	c.advance()
	if !c.done() || c.pos != 2 {
		t.Fatalf("advance past end: pos = %d", c.pos)
	}

	c.retreat()
	if r, ok := c.peek(); !ok || r != 'b' {
		t.Errorf("peek() after retreat = %q, %v, want 'b', true", r, ok)
	}
}

func TestDecode_LargestDepth(t *testing.T) {
	t.Parallel()

	d, err := Decode("LEI4294967295")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.BitsPerChannel != 4294967295 {
		t.Errorf("BitsPerChannel = %d, want 4294967295", d.BitsPerChannel)
	}
	if d.BytesPerFrame != 536870912 || d.BytesPerPacket != 536870912 {
		t.Errorf("BytesPerFrame/Packet = %d/%d, want 536870912", d.BytesPerFrame, d.BytesPerPacket)
	}
}
