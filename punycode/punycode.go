package punycode

import (
	"github.com/wippyai/idna/errors"
	"github.com/wippyai/idna/ucs2"
)

// Bootstring parameters for Punycode (RFC 3492 section 5).
const (
	base          int32 = 36
	tMin          int32 = 1
	tMax          int32 = 26
	skew          int32 = 38
	damp          int32 = 700
	initialBias   int32 = 72
	initialN      int32 = 128
	baseMinusTMin       = base - tMin

	delimiter = '-'

	// All delta arithmetic is bounded by the maximum 32-bit signed value.
	maxInt32 int32 = 1<<31 - 1
)

// adapt recomputes the bias after a delta has been encoded or decoded
// (RFC 3492 section 6.1). firstTime applies the stronger damp divisor used
// for the very first delta of a string.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints

	k := int32(0)
	for delta > baseMinusTMin*tMax/2 {
		delta /= baseMinusTMin
		k += base
	}
	return k + (baseMinusTMin+1)*delta/(delta+skew)
}

// basicToDigit maps a basic code point to its digit value, or base when the
// byte is not part of the digit alphabet. Letters are case-insensitive.
func basicToDigit(b byte) int32 {
	switch {
	case b >= '0' && b <= '9':
		return int32(b-'0') + 26
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A')
	case b >= 'a' && b <= 'z':
		return int32(b - 'a')
	}
	return base
}

// digitToBasic maps a digit value to its basic code point. Letters are
// always emitted lowercase.
func digitToBasic(digit int32) byte {
	if digit < 26 {
		return byte(digit) + 'a'
	}
	return byte(digit-26) + '0'
}

// threshold clamps k-bias into [tMin, tMax].
func threshold(k, bias int32) int32 {
	t := k - bias
	if t < tMin {
		return tMin
	}
	if t > tMax {
		return tMax
	}
	return t
}

// Encode converts a string of Unicode code points to its Punycode form.
// Basic code points are copied through in order, followed by the delimiter
// when any were present, followed by the encoded non-basic code points.
// Encoding a pure-ASCII string reproduces it with a trailing delimiter.
//
// Encode fails with KindOverflow when an intermediate delta would exceed
// the 32-bit signed range; no partial output is returned.
func Encode(input string) (string, error) {
	points := ucs2.Decode(input)

	output := make([]byte, 0, len(input))
	remaining := 0
	for _, r := range points {
		if r < initialN {
			output = append(output, byte(r))
		} else {
			remaining++
		}
	}

	basicLength := int32(len(output))
	handled := basicLength
	if basicLength > 0 {
		output = append(output, delimiter)
	}

	n := initialN
	delta := int32(0)
	bias := initialBias

	for remaining > 0 {
		// Smallest unhandled code point >= n. The loop guard guarantees
		// at least one exists.
		m := maxInt32
		for _, r := range points {
			if r >= n && r < m {
				m = r
			}
		}

		handledPlusOne := handled + 1
		if m-n > (maxInt32-delta)/handledPlusOne {
			return "", errors.Overflow(errors.PhaseEncode,
				"delta accumulator exceeds 32-bit range")
		}
		delta += (m - n) * handledPlusOne
		n = m

		for _, r := range points {
			if r < n {
				if delta == maxInt32 {
					return "", errors.Overflow(errors.PhaseEncode,
						"delta accumulator exceeds 32-bit range")
				}
				delta++
				continue
			}
			if r > n {
				continue
			}

			q := delta
			for k := base; ; k += base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, digitToBasic(t+(q-t)%(base-t)))
				q = (q - t) / (base - t)
			}
			output = append(output, digitToBasic(q))

			bias = adapt(delta, handledPlusOne, handled == basicLength)
			delta = 0
			handled++
			remaining--
		}

		delta++
		n++
	}

	return string(output), nil
}

// Decode converts a Punycode string of basic code points back to Unicode.
// Everything before the last delimiter is the basic prefix; the rest is the
// encoded digit stream. A string with no delimiter is all digit stream.
//
// Decode fails with KindNotBasic when the prefix holds a byte >= 0x80, with
// KindInvalidInput when the digit stream holds a character outside the digit
// alphabet or ends mid-integer, and with KindOverflow on pathological
// arithmetic. Inputs whose digit stream is empty or consumable decode to a
// defined result: "-" decodes to "", "--" to "-", "a--b-" to "a--b".
func Decode(input string) (string, error) {
	basic := lastDelimiter(input)

	output := make([]rune, 0, len(input))
	for i := 0; i < basic; i++ {
		b := input[i]
		if b >= 0x80 {
			return "", errors.NotBasic(i, b)
		}
		output = append(output, rune(b))
	}

	i := int32(0)
	n := initialN
	bias := initialBias
	pos := basic + 1

	for pos < len(input) {
		oldi := i
		w := int32(1)

		for k := base; ; k += base {
			digit := basicToDigit(input[pos])
			if digit == base {
				return "", errors.InvalidInput(pos,
					"character is not a Punycode digit")
			}
			pos++

			if digit > (maxInt32-i)/w {
				return "", errors.Overflow(errors.PhaseDecode,
					"decoded integer exceeds 32-bit range")
			}
			i += digit * w

			t := threshold(k, bias)
			if digit < t {
				break
			}

			if pos == len(input) {
				return "", errors.InvalidInput(pos,
					"digit stream exhausted mid-integer")
			}

			if w > maxInt32/(base-t) {
				return "", errors.Overflow(errors.PhaseDecode,
					"digit weight exceeds 32-bit range")
			}
			w *= base - t
		}

		outLen := int32(len(output) + 1)
		bias = adapt(i-oldi, outLen, oldi == 0)

		if i/outLen > maxInt32-n {
			return "", errors.Overflow(errors.PhaseDecode,
				"code point exceeds 32-bit range")
		}
		n += i / outLen
		i %= outLen

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}

	s, err := ucs2.Encode(output)
	if err != nil {
		// Decoded value landed in the surrogate block or past 0x10FFFF.
		debugf("decode produced non-scalar output: %v", err)
		return "", errors.Wrap(errors.PhaseDecode, errors.KindInvalidCodePoint,
			err, "decoded value is not a Unicode scalar")
	}
	return s, nil
}

// lastDelimiter returns the index of the last delimiter in s, or -1. The
// basic prefix ends there; a leading delimiter with trailing content still
// splits at that position.
func lastDelimiter(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == delimiter {
			return i
		}
	}
	return -1
}
