package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // plaintext to code
	PhaseDecode Phase = "decode" // code to plaintext
	PhaseConfig Phase = "config" // configuration loading
	PhaseInput  Phase = "input"  // reading caller input
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported  Kind = "unsupported"
	KindInvalidCode  Kind = "invalid_code"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidData  Kind = "invalid_data"
	KindNotFound     Kind = "not_found"
)

// NoPosition marks an error that was raised outside of a message.
const NoPosition = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Token    string
	Detail   string
	Position int
}

// Sentinels for errors.Is. Only Phase and Kind take part in matching.
var (
	ErrUnsupported = &Error{Phase: PhaseEncode, Kind: KindUnsupported, Position: NoPosition}
	ErrInvalidCode = &Error{Phase: PhaseDecode, Kind: KindInvalidCode, Position: NoPosition}
)

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Position >= 0 {
		b.WriteString(" at ")
		b.WriteString(strconv.Itoa(e.Position))
	}

	switch {
	case e.Kind == KindUnsupported && e.Value != nil:
		b.WriteString(": unable to encode value ")
		b.WriteString(quoteValue(e.Value))
	case e.Kind == KindInvalidCode:
		b.WriteString(": unable to decode sequence ")
		b.WriteString(strconv.Quote(e.Token))
	}

	if e.Detail != "" {
		if e.Kind == KindInvalidCode || (e.Kind == KindUnsupported && e.Value != nil) {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func quoteValue(v any) string {
	if c, ok := v.(byte); ok {
		return strconv.QuoteRuneToASCII(rune(c))
	}
	return fmt.Sprintf("%v", v)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// At returns a copy of the error positioned at pos.
func (e *Error) At(pos int) *Error {
	c := *e
	c.Position = pos
	return &c
}

// Byte returns the rejected byte of an unsupported error.
func (e *Error) Byte() (byte, bool) {
	c, ok := e.Value.(byte)
	return c, ok
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:    phase,
			Kind:     kind,
			Position: NoPosition,
		},
	}
}

// Token sets the offending code token
func (b *Builder) Token(tok string) *Builder {
	b.err.Token = tok
	return b
}

// Position sets the position of the offending unit within the message
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
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

// Convenience constructors for common error patterns

// Unsupported creates an error for a byte the encoder cannot represent
func Unsupported(c byte) *Error {
	return &Error{
		Phase:    PhaseEncode,
		Kind:     KindUnsupported,
		Value:    c,
		Position: NoPosition,
	}
}

// InvalidCode creates an error for a token that is not a valid code
func InvalidCode(token string) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindInvalidCode,
		Token:    token,
		Position: NoPosition,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidInput,
		Detail:   detail,
		Position: NoPosition,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindNotFound,
		Detail:   fmt.Sprintf("%s %q not found", what, name),
		Position: NoPosition,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     kind,
		Detail:   detail,
		Cause:    cause,
		Position: NoPosition,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:    PhaseConfig,
		Kind:     KindInvalidData,
		Detail:   fmt.Sprintf("parse %s", what),
		Cause:    cause,
		Position: NoPosition,
	}
}
