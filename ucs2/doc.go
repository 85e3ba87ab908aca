// Package ucs2 converts between strings and sequences of Unicode code points.
//
// Decode walks a string by Unicode scalar value, so a supplementary
// character comes out as a single code point above 0xFFFF rather than two
// halves. Encode is the inverse. Go strings never carry surrogate pairs —
// the range loop already yields whole scalars — which is why Decode takes a
// string directly; DecodeUTF16 exists for callers holding raw 16-bit units
// from a UTF-16 based source, where surrogate halves still need pairing.
//
// Encode rejects values outside the Unicode scalar range [0, 0x10FFFF] and
// values inside the surrogate block 0xD800-0xDFFF. The underlying platform
// conversion would silently replace such values with U+FFFD; surfacing them
// as errors keeps the round-trip law checkable.
package ucs2
