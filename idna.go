package idna

import (
	"strings"
	"unicode/utf8"

	"github.com/wippyai/idna/errors"
	"github.com/wippyai/idna/punycode"
)

// acePrefix marks a Punycode-encoded label (RFC 3490 "ACE prefix").
const acePrefix = "xn--"

// isSeparator reports whether r separates labels: the full stop and its
// ideographic, fullwidth, and halfwidth variants.
func isSeparator(r rune) bool {
	return r == '.' || r == '。' || r == '．' || r == '｡'
}

// isASCII reports whether the label needs no encoding. The threshold is
// 0x7E so that DEL counts as non-ASCII, matching the encoding trigger used
// for the xn-- convention.
func isASCII(s string) bool {
	for _, r := range s {
		if r > 0x7E {
			return false
		}
	}
	return true
}

// mapLabels applies fn to each label of a domain name or email address.
// Text up to and including the first '@' passes through unchanged; any
// later '@' is literal domain content. The Unicode full-stop variants are
// normalized to '.' in the output. The first failing label aborts the call.
func mapLabels(s string, fn func(string) (string, error)) (string, error) {
	var local string
	if at := strings.IndexByte(s, '@'); at != -1 {
		local = s[:at+1]
		s = s[at+1:]
	}

	var b strings.Builder
	b.Grow(len(local) + len(s))
	b.WriteString(local)

	start := 0
	for i, r := range s {
		if !isSeparator(r) {
			continue
		}
		label, err := fn(s[start:i])
		if err != nil {
			return "", errors.WithLabel(err, s[start:i])
		}
		b.WriteString(label)
		b.WriteByte('.')
		start = i + utf8.RuneLen(r)
	}

	label, err := fn(s[start:])
	if err != nil {
		return "", errors.WithLabel(err, s[start:])
	}
	b.WriteString(label)

	return b.String(), nil
}

// ToASCII converts a Unicode domain name or email address to its
// ASCII-compatible form. Labels that are already ASCII pass through
// untouched, so the function is idempotent on its own output. A label the
// codec cannot represent fails the whole call.
func ToASCII(s string) (string, error) {
	return mapLabels(s, func(label string) (string, error) {
		if isASCII(label) {
			return label, nil
		}
		encoded, err := punycode.Encode(label)
		if err != nil {
			return "", err
		}
		return acePrefix + encoded, nil
	})
}

// ToUnicode converts a domain name or email address with Punycode labels
// back to Unicode. Only labels carrying the xn-- prefix (matched
// case-insensitively) are decoded; everything else passes through
// untouched. A malformed encoded label fails the whole call.
func ToUnicode(s string) (string, error) {
	return mapLabels(s, func(label string) (string, error) {
		if len(label) < len(acePrefix) || !strings.EqualFold(label[:len(acePrefix)], acePrefix) {
			return label, nil
		}
		return punycode.Decode(strings.ToLower(label[len(acePrefix):]))
	})
}
