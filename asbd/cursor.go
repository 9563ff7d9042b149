// SPDX-License-Identifier: EPL-2.0

package asbd

import "math"

// cursor walks the decode input one character at a time. The only
// backwards movement is retreat, a single character pushback.
type cursor struct {
	in  []rune
	pos int
}

func newCursor(text string) *cursor {
	return &cursor{in: []rune(text)}
}

// peek returns the current character without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.in) {
		return 0, false
	}
	return c.in[c.pos], true
}

// peekAt looks n characters past the current one.
func (c *cursor) peekAt(n int) (rune, bool) {
	if c.pos+n >= len(c.in) {
		return 0, false
	}
	return c.in[c.pos+n], true
}

func (c *cursor) advance() {
	if c.pos < len(c.in) {
		c.pos++
	}
}

func (c *cursor) retreat() {
	if c.pos > 0 {
		c.pos--
	}
}

// accept consumes r if it is the current character.
func (c *cursor) accept(r rune) bool {
	if p, ok := c.peek(); ok && p == r {
		c.advance()
		return true
	}
	return false
}

// acceptPair consumes a then b only if both are next.
func (c *cursor) acceptPair(a, b rune) bool {
	p0, ok0 := c.peek()
	p1, ok1 := c.peekAt(1)
	if !ok0 || !ok1 || p0 != a || p1 != b {
		return false
	}
	c.advance()
	c.advance()
	return true
}

// digits feeds each consecutive digit of the given base to fn and reports
// whether there was at least one.
func (c *cursor) digits(base uint32, fn func(d uint32)) bool {
	seen := false
	for {
		r, ok := c.peek()
		if !ok {
			return seen
		}
		d, ok := hexValue(r)
		if !ok || d >= base {
			return seen
		}
		fn(d)
		seen = true
		c.advance()
	}
}

// number accumulates a run of digits in base. An empty run yields
// ReasonMissingDigits and a value past 32 bits ReasonOutOfRange; either
// way the whole run is consumed.
func (c *cursor) number(base uint32) (uint32, Reason) {
	var v uint64
	over := false
	seen := c.digits(base, func(d uint32) {
		v = v*uint64(base) + uint64(d)
		if v > math.MaxUint32 {
			over = true
			v = math.MaxUint32
		}
	})

	switch {
	case !seen:
		return 0, ReasonMissingDigits
	case over:
		return 0, ReasonOutOfRange
	}
	return uint32(v), 0
}

func (c *cursor) decimal() (uint32, Reason) { return c.number(10) }

func (c *cursor) hexadecimal() (uint32, Reason) {
	v, r := c.number(16)
	if r == ReasonMissingDigits {
		r = ReasonNotHexDigit
	}
	return v, r
}

func (c *cursor) done() bool { return c.pos >= len(c.in) }

func hexValue(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}
