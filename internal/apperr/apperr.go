// Package apperr defines the error taxonomy shared by the repository and
// handler layers. Repositories raise kinded errors; the handler layer is
// the only place that maps a kind to an HTTP status.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for outcome mapping.
type Kind int

const (
	// KindUnexpected covers storage failures and anything unclassified.
	KindUnexpected Kind = iota
	// KindInvalidArgument marks malformed or out-of-bounds caller input.
	KindInvalidArgument
	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound
	// KindConflict marks an invariant violation such as a duplicate subject.
	KindConflict
)

// Error is a kinded error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// MessageOf returns the user-facing message of err, falling back to the
// full error text for foreign errors.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// InvalidArgumentf builds a KindInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unexpected wraps a cause with a diagnostic message.
func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}
