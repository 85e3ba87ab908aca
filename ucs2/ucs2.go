package ucs2

import (
	"strings"
	"unicode/utf16"

	"github.com/wippyai/idna/errors"
)

const (
	surr1   = 0xD800 // start of the surrogate block
	surr3   = 0xE000 // one past the end of the surrogate block
	maxRune = 0x10FFFF
)

// IsScalar reports whether r is a Unicode scalar value: in range and not a
// surrogate half.
func IsScalar(r rune) bool {
	return r >= 0 && r <= maxRune && !(r >= surr1 && r < surr3)
}

// Decode returns the sequence of code points making up s, one per Unicode
// scalar value. A supplementary character such as an emoji comes out as a
// single value above 0xFFFF, never as a surrogate pair. Decode never fails;
// an empty string yields an empty sequence.
func Decode(s string) []rune {
	points := make([]rune, 0, len(s))
	for _, r := range s {
		points = append(points, r)
	}
	return points
}

// DecodeUTF16 returns the code points for a sequence of 16-bit units,
// pairing surrogate halves into single supplementary code points. An
// unpaired half decodes to U+FFFD.
func DecodeUTF16(units []uint16) []rune {
	return utf16.Decode(units)
}

// Encode converts a sequence of code points back into a string, one Unicode
// scalar value per element. It fails with KindInvalidCodePoint if any value
// is negative, above 0x10FFFF, or a surrogate half.
func Encode(points []rune) (string, error) {
	var b strings.Builder
	b.Grow(len(points))
	for _, r := range points {
		if !IsScalar(r) {
			return "", errors.InvalidCodePoint(errors.PhaseEncode, r)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
