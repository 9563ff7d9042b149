// SPDX-License-Identifier: EPL-2.0

package asbd_test

import (
	"errors"
	"fmt"

	"github.com/ik5/streamfmt/asbd"
)

// ExampleDecode decodes a big-endian 16-bit stereo PCM descriptor.
func ExampleDecode() {
	d, err := asbd.Decode("BEI16@44100,2")
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Println(d)
	fmt.Printf("Bytes per frame: %d\n", d.BytesPerFrame)
	// Output:
	// 2 ch, 44100 Hz, 'lpcm' (0x0000000E) 16-bit big-endian signed integer
	// Bytes per frame: 4
}

// ExampleDecode_formatTag shows a compressed format given by its tag.
func ExampleDecode_formatTag() {
	d, _ := asbd.Decode("aac@48000#1024,2")

	fmt.Printf("Format: %v\n", d.FormatID)
	fmt.Printf("Frames per packet: %d\n", d.FramesPerPacket)
	// Output:
	// Format: 'aac '
	// Frames per packet: 1024
}

// ExampleDecode_error shows how to inspect a decode failure.
func ExampleDecode_error() {
	_, err := asbd.Decode("LEI16,2x")

	var de *asbd.DecodeError
	if errors.As(err, &de) {
		fmt.Printf("Reason: %v at %d\n", de.Reason, de.Pos)
	}
	fmt.Println(errors.Is(err, asbd.ErrMalformedDescriptor))
	// Output:
	// Reason: trailing characters at 7
	// true
}

// ExamplePreferred picks the best of several candidate formats.
func ExamplePreferred() {
	candidates := []asbd.Descriptor{
		asbd.MustDecode("aac@48000,2"),
		asbd.MustDecode("LEI16@44100,2"),
		asbd.MustDecode("LEI24@44100,2"),
	}

	best := asbd.Preferred(candidates)
	fmt.Println(candidates[best])
	// Output: 2 ch, 44100 Hz, 'lpcm' (0x0000000C) 24-bit little-endian signed integer
}

// ExampleCompare shows that ranking equality is weaker than Equal.
func ExampleCompare() {
	le := asbd.MustDecode("LEI16@44100,2")
	be := asbd.MustDecode("BEI16@44100,2")

	fmt.Println(asbd.Compare(le, be))
	fmt.Println(asbd.Equal(le, be))
	// Output:
	// equal
	// false
}
