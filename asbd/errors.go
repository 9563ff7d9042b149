// SPDX-License-Identifier: EPL-2.0

package asbd

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDescriptor is wrapped by every DecodeError.
	ErrMalformedDescriptor = errors.New("malformed descriptor text")

	// ErrUnknownExtension is returned by Registry.Probe for unregistered extensions.
	ErrUnknownExtension = errors.New("no prober registered for extension")
)

// Reason identifies the clause that made Decode fail.
type Reason int

const (
	ReasonTrailingCharacters Reason = iota + 1
	ReasonUnterminatedEscape
	ReasonBadEscape
	ReasonNotHexDigit
	ReasonMissingDigits
	ReasonMissingFraction
	ReasonEarlyNull
	ReasonInvalidCharacter
	ReasonNonInterleavedTag
	ReasonBadAlignment
	ReasonOutOfRange
)

var reasonText = map[Reason]string{
	ReasonTrailingCharacters: "trailing characters",
	ReasonUnterminatedEscape: "unterminated hex escape",
	ReasonBadEscape:          `expected "x" after "\"`,
	ReasonNotHexDigit:        "expected hexadecimal digit",
	ReasonMissingDigits:      "expected decimal digit",
	ReasonMissingFraction:    "expected fractional bits after '.'",
	ReasonEarlyNull:          "format tag shorter than 3 bytes",
	ReasonInvalidCharacter:   "character outside the single byte range",
	ReasonNonInterleavedTag:  "non-interleaved flag is only valid for linear PCM",
	ReasonBadAlignment:       "expected 'L' or 'H' after ':'",
	ReasonOutOfRange:         "number does not fit in 32 bits",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// DecodeError reports why and where Decode rejected its input.
type DecodeError struct {
	Reason Reason
	// Pos is the character offset of the failure in Input.
	Pos   int
	Input string
}

func (e *DecodeError) Error() string {
	rest := ""
	if r := []rune(e.Input); e.Pos >= 0 && e.Pos < len(r) {
		rest = string(r[e.Pos:])
	}
	if rest == "" {
		return fmt.Sprintf("%s %q: %s at end of input", ErrMalformedDescriptor, e.Input, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s at offset %d (%q)", ErrMalformedDescriptor, e.Input, e.Reason, e.Pos, rest)
}

func (e *DecodeError) Unwrap() error { return ErrMalformedDescriptor }
