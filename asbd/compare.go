// SPDX-License-Identifier: EPL-2.0

package asbd

import "slices"

// Ordering is the result of Compare. Less means the first descriptor is the
// preferred one.
type Ordering int

const (
	Less    Ordering = -1
	Same    Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// prefer maps "a is better" to Less and "b is better" to Greater.
func prefer(aBetter bool) Ordering {
	if aBetter {
		return Less
	}
	return Greater
}

// Compare ranks a against b by perceived quality. The first rule that tells
// them apart decides:
//
//  1. format: linear PCM before any other tag, other tags by numeric value
//  2. PCM only: mixable before non-mixable
//  3. PCM only: float before integer
//  4. deeper bit depth
//  5. higher sample rate
//  6. more channels
//
// A rule is skipped when either side leaves its field unspecified (zero).
// Same only means no rule fired; use Equal for structural equality.
func Compare(a, b Descriptor) Ordering {
	if a.FormatID != 0 && b.FormatID != 0 && a.FormatID != b.FormatID {
		switch {
		case a.FormatID == LinearPCM:
			return Less
		case b.FormatID == LinearPCM:
			return Greater
		default:
			return prefer(a.FormatID < b.FormatID)
		}
	}

	if a.IsPCM() && b.IsPCM() {
		aMix, bMix := a.IsMixable(), b.IsMixable()
		if aMix != bMix {
			return prefer(aMix)
		}

		aFloat, bFloat := a.FormatFlags.Has(FlagIsFloat), b.FormatFlags.Has(FlagIsFloat)
		if aFloat != bFloat {
			return prefer(aFloat)
		}
	}

	if a.BitsPerChannel != 0 && b.BitsPerChannel != 0 && a.BitsPerChannel != b.BitsPerChannel {
		return prefer(a.BitsPerChannel > b.BitsPerChannel)
	}

	if a.SampleRate != 0 && b.SampleRate != 0 && a.SampleRate != b.SampleRate {
		return prefer(a.SampleRate > b.SampleRate)
	}

	if a.ChannelsPerFrame != 0 && b.ChannelsPerFrame != 0 && a.ChannelsPerFrame != b.ChannelsPerFrame {
		return prefer(a.ChannelsPerFrame > b.ChannelsPerFrame)
	}

	return Same
}

// Equal reports whether all eight fields of a and b match.
func Equal(a, b Descriptor) bool {
	return a.BytesPerFrame == b.BytesPerFrame &&
		a.SampleRate == b.SampleRate &&
		a.FormatID == b.FormatID &&
		a.FormatFlags == b.FormatFlags &&
		a.FramesPerPacket == b.FramesPerPacket &&
		a.BytesPerPacket == b.BytesPerPacket &&
		a.ChannelsPerFrame == b.ChannelsPerFrame &&
		a.BitsPerChannel == b.BitsPerChannel
}

func (d Descriptor) Equal(o Descriptor) bool { return Equal(d, o) }

// Preferred returns the index of the best descriptor in ds, or -1 when ds
// is empty. It keeps a running best, the first one winning on ties. Compare
// is not transitive once zero fields skip rules, so an earlier candidate
// may still beat the result.
func Preferred(ds []Descriptor) int {
	best := -1
	for i, d := range ds {
		if best < 0 || Compare(d, ds[best]) == Less {
			best = i
		}
	}

	return best
}

// SortByPreference orders items best first by the descriptor key returns
// for each. Ties keep their input order.
func SortByPreference[T any](items []T, key func(T) Descriptor) {
	slices.SortStableFunc(items, func(a, b T) int {
		return int(Compare(key(a), key(b)))
	})
}
