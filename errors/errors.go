package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // Unicode to Punycode
	PhaseDecode Phase = "decode" // Punycode to Unicode
	PhaseMap    Phase = "map"    // domain/email label mapping
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow         Kind = "overflow"           // arithmetic exceeds 32-bit signed range
	KindNotBasic         Kind = "not_basic"          // code point >= 0x80 in the basic prefix
	KindInvalidInput     Kind = "invalid_input"      // malformed digit stream
	KindInvalidCodePoint Kind = "invalid_code_point" // value outside Unicode scalar range
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Label  string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Label != "" {
		b.WriteString(" in label ")
		b.WriteString(quoteLabel(e.Label))
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// quoteLabel truncates long labels before quoting so error strings stay
// readable for adversarial inputs.
func quoteLabel(label string) string {
	if len(label) > 64 {
		label = label[:64] + "..."
	}
	return fmt.Sprintf("%q", label)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two errors match when their Kind is equal; a target with an empty Phase
// matches any phase, so callers can test a kind across Encode and Decode.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Label sets the label being transformed when the error occurred
func (b *Builder) Label(label string) *Builder {
	b.err.Label = label
	return b
}

// Offset sets the byte offset into the input
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the codec's error conditions

// Overflow creates an overflow error. Raised when an intermediate value in
// the variable-length integer arithmetic would exceed 2^31-1.
func Overflow(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: detail,
	}
}

// NotBasic creates a not-basic error for a code point >= 0x80 found in the
// basic prefix of a Punycode string.
func NotBasic(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotBasic,
		Offset: offset,
		Detail: fmt.Sprintf("byte 0x%02X is not a basic code point", b),
		Value:  b,
	}
}

// InvalidInput creates an invalid input error for a malformed digit stream.
func InvalidInput(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidInput,
		Offset: offset,
		Detail: detail,
	}
}

// InvalidCodePoint creates an error for a value outside the Unicode scalar
// range, or inside the surrogate block.
func InvalidCodePoint(phase Phase, r rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCodePoint,
		Detail: fmt.Sprintf("0x%X is not a Unicode scalar value", r),
		Value:  r,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithLabel returns a copy of err annotated with the label being processed,
// preserving the original phase and kind so errors.Is matching still holds.
// Non-structured errors are wrapped under PhaseMap.
func WithLabel(err error, label string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		annotated := *e
		annotated.Label = label
		return &annotated
	}
	return &Error{
		Phase: PhaseMap,
		Kind:  KindInvalidInput,
		Label: label,
		Cause: err,
	}
}
