// Package errcodes holds the error taxonomy shared by the store, the use cases
// and the HTTP layer.
package errcodes

import (
	"errors"
	"fmt"
	"net/http"
)

// Store-level sentinels.
var (
	ErrNoRecordFound    = errors.New("no record found")
	ErrContextCancelled = errors.New("context cancelled")
)

// Kinds surfaced to callers. Every *Error unwraps to exactly one of these.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
	ErrInternal = errors.New("internal")
)

// Error is a caller-facing error with a kind and a human readable message.
type Error struct {
	kind    error
	message string
	cause   error
}

func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Kind returns the kind sentinel.
func (e *Error) Kind() error {
	return e.kind
}

// Cause returns the wrapped failure, if any.
func (e *Error) Cause() error {
	return e.cause
}

func newError(kind error, cause error, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), cause: cause}
}

// NotFound reports a missing target or referenced entity.
func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, nil, format, args...)
}

// Conflict reports a uniqueness violation or a duplicate action.
func Conflict(format string, args ...any) error {
	return newError(ErrConflict, nil, format, args...)
}

// Invalid reports malformed input.
func Invalid(format string, args ...any) error {
	return newError(ErrInvalid, nil, format, args...)
}

// Internal wraps an unexpected failure. The cause is kept for logging and
// never shown to callers.
func Internal(cause error, format string, args ...any) error {
	return newError(ErrInternal, cause, format, args...)
}

// KindOf returns the kind sentinel of err, defaulting to ErrInternal.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ErrInternal
}

// KindName is the wire name of err's kind.
func KindName(err error) string {
	switch KindOf(err) {
	case ErrNotFound:
		return "not_found"
	case ErrConflict:
		return "conflict"
	case ErrInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// HTTPStatus maps err's kind to a response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict, ErrInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
