// Package apperr defines the typed errors returned by services and rendered by handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the transport layer.
type Kind string

// Error kinds.
const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindAuth         Kind = "auth"
	KindNotFound     Kind = "not_found"
	KindInvalidToken Kind = "invalid_token"
	KindForbidden    Kind = "forbidden"
	KindTransport    Kind = "transport"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// InternalMessage is the only message clients see for unexpected failures.
const InternalMessage = "Internal Server Error"

// Error is a classified error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind that keeps cause for logging.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Validation reports missing or malformed input.
func Validation(message string) *Error { return New(KindValidation, message) }

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error { return New(KindConflict, message) }

// Auth reports bad credentials.
func Auth(message string) *Error { return New(KindAuth, message) }

// NotFound reports a missing resource.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// InvalidToken reports an unknown, consumed or expired reset token.
func InvalidToken(message string) *Error { return New(KindInvalidToken, message) }

// Forbidden reports an authenticated caller acting outside its rights.
func Forbidden(message string) *Error { return New(KindForbidden, message) }

// Transport reports a mail configuration or delivery failure.
func Transport(message string, cause error) *Error { return Wrap(KindTransport, message, cause) }

// Upstream reports a failed call to a dependent service.
func Upstream(message string, cause error) *Error { return Wrap(KindUpstream, message, cause) }

// Internal reports an unexpected failure.
func Internal(cause error) *Error { return Wrap(KindInternal, InternalMessage, cause) }

// As extracts the classified error from err. Unclassified errors become Internal.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf returns the kind of err, or KindInternal when err is unclassified.
func KindOf(err error) Kind {
	return As(err).Kind
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// HTTPStatus maps a kind to its response status.
// Conflict, auth and token failures answer 400 so callers cannot tell them apart by status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindAuth, KindInvalidToken:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
