// Package idna converts domain names and email addresses between Unicode and
// the ASCII-compatible encoding used by DNS (RFC 3492 Punycode with the
// "xn--" prefix convention).
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	idna/           Root package: ToASCII, ToUnicode, label mapping
//	├── punycode/   Bootstring codec: Encode and Decode with adaptive bias
//	├── ucs2/       Code-point sequence conversion
//	├── errors/     Structured error types for diagnostics
//	└── cmd/idna/   Command-line converter with an interactive mode
//
// # Quick Start
//
// Convert a host name for DNS and back:
//
//	ascii, err := idna.ToASCII("mañana.com")
//	// "xn--maana-pta.com"
//
//	unicode, err := idna.ToUnicode("xn--maana-pta.com")
//	// "mañana.com"
//
// Email addresses work too; everything up to and including the first '@' is
// passed through untouched:
//
//	ascii, err := idna.ToASCII("user@façade.com")
//	// "user@xn--faade-zra.com"
//
// # Scope
//
// The package performs the mechanical Bootstring transform and the label
// splitting conventions only. It does not normalize input (NFC/NFKC), does
// not enforce the 63-octet DNS label limit, and does not apply the IDNA2008
// disallowed-codepoint tables; those belong to a calling layer.
//
// # Errors
//
// Failures carry a structured kind: overflow for arithmetic outside the
// 32-bit range, not_basic for a non-ASCII byte in a Punycode basic prefix,
// and invalid_input for a malformed digit stream. A failing label fails the
// whole call; there is no partial-domain fallback. See the errors package.
//
// # Thread Safety
//
// Every call uses only local state. All functions are safe for concurrent
// use without coordination.
package idna
