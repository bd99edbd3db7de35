// Package apperr defines the sentinel error type used throughout Cadence.
package apperr

import "fmt"

// Error is an application error. Sentinels are declared once with a message
// template and specialized through Fmt, which wraps the sentinel so that
// errors.Is continues to match it.
type Error struct {
	Cause   error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt interpolates the sentinel's message template with the provided
// arguments and returns a new error wrapping the sentinel.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e,
	}
}

// Wrap annotates the sentinel with an underlying cause while keeping the
// sentinel's message.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("%s: %v", e.Message, err),
		Cause:   e,
	}
}
