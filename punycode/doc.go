// Package punycode implements the Bootstring transfer encoding of RFC 3492.
//
// Bootstring maps a string of Unicode code points to a string of basic
// (ASCII) code points: the basic code points of the input are copied through
// verbatim, a delimiter is appended when any were present, and the non-basic
// code points follow as a sequence of generalized variable-length integers.
// Punycode is Bootstring instantiated with the parameters used for
// Internationalized Domain Names:
//
//	base=36 tmin=1 tmax=26 skew=38 damp=700 initial_bias=72 initial_n=128
//
// # Digit alphabet
//
// Digits 0-25 map to 'a'-'z' and 26-35 map to '0'-'9'. Encode always emits
// lowercase; Decode accepts both cases.
//
// # Bias adaptation
//
// After each encoded or decoded delta the bias is recomputed so that the
// digit thresholds track the distribution of deltas seen so far, keeping
// output compact for clustered scripts. The bias is local to one call; no
// state is shared between invocations and the package is safe for
// concurrent use.
//
// # Integer width
//
// All delta arithmetic is done in 32-bit signed integers with explicit
// guards. Inputs engineered to exceed that range fail with KindOverflow
// and produce no partial output.
package punycode
