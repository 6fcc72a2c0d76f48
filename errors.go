package numfmt

import (
	"github.com/pkg/errors"
)

// ErrorKind discriminates why a Format call failed.
type ErrorKind int

const (
	// ErrKindParse means the pattern string itself is malformed.
	ErrKindParse ErrorKind = iota
	// ErrKindDateOutOfBounds means a date section's serial fell outside
	// the epoch's representable range.
	ErrKindDateOutOfBounds
	// ErrKindBigIntOverflow means a *big.Int value fell outside the
	// float64-representable safe-integer range.
	ErrKindBigIntOverflow
	// ErrKindOther is any failure that doesn't fit the above.
	ErrKindOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindDateOutOfBounds:
		return "date out of bounds"
	case ErrKindBigIntOverflow:
		return "bigint overflow"
	default:
		return "other"
	}
}

// FormatError is the error type every exported entry point in this
// package returns. Kind lets a caller branch on the failure class without
// parsing Error's text; Unwrap exposes the underlying cause for errors.Is
// / errors.As.
type FormatError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *FormatError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

func (e *FormatError) Unwrap() error {
	return e.cause
}

func newParseError(cause error) *FormatError {
	wrapped := errors.Wrap(cause, "invalid pattern")
	return &FormatError{Kind: ErrKindParse, Message: wrapped.Error(), cause: wrapped}
}

func newDateOutOfBoundsError() *FormatError {
	return &FormatError{Kind: ErrKindDateOutOfBounds, Message: "date out of bounds"}
}

func newBigIntOverflowError() *FormatError {
	return &FormatError{Kind: ErrKindBigIntOverflow, Message: "bigint value out of range"}
}
