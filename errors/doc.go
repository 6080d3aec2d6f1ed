// Package errors provides structured error types for the morse library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending input unit: the rejected byte for encoding,
// the rejected token for decoding, and its position in the message when known.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidCode).
//		Token(".-.-.-").
//		Position(3).
//		Detail("too many marks").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported('!')
//	err := errors.InvalidCode("..--..")
//
// All errors implement the standard error interface and support errors.Is/As.
// ErrUnsupported and ErrInvalidCode match any error of the same Phase and Kind.
package errors
