// Package errors provides structured error types for the idna library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries context useful for diagnostics: the label
// being transformed, the byte offset into the digit stream, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidInput).
//		Offset(7).
//		Detail("character %q is not a valid digit", c).
//		Build()
//
// Or use convenience constructors for the codec's error conditions:
//
//	err := errors.Overflow(errors.PhaseEncode, "delta exceeds int32 range")
//	err := errors.NotBasic(pos, b)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Kind, and Phase when the target sets one:
//
//	if errors.Is(err, &errors.Error{Kind: errors.KindOverflow}) {
//		// pathological input for 32-bit arithmetic
//	}
package errors
