package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error into the taxonomy the HTTP layer
// maps to status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

// AppError is a tagged error carried from usecases to the HTTP layer.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// BadRequest signals missing or invalid input.
func BadRequest(message string) *AppError {
	return newError(KindBadRequest, message)
}

// BadRequestf formats a BadRequest error.
func BadRequestf(format string, args ...any) *AppError {
	return newError(KindBadRequest, fmt.Sprintf(format, args...))
}

// Unauthorized signals a missing, expired, or invalid credential.
func Unauthorized(message string) *AppError {
	return newError(KindUnauthorized, message)
}

// NotFound signals a missing user, alert, contact, or evidence item.
func NotFound(message string) *AppError {
	return newError(KindNotFound, message)
}

// Conflict signals a duplicate resource or a mutation of a terminal-state
// alert.
func Conflict(message string) *AppError {
	return newError(KindConflict, message)
}

// Internal wraps a persistence or unexpected failure. The wrapped error is
// logged server-side; the message is what clients see.
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind of an error, defaulting to Internal for
// untagged errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
