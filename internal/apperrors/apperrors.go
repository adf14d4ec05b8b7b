package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so handlers can map it to an HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindUnauthenticated
	KindInvalidToken
	KindNotFound
	KindConfig
)

// Error is the application error type. Message is the only field that reaches
// clients; Err carries the underlying cause for server-side logs.
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

// Status returns the HTTP status code for the error kind.
// Conflict maps to 400, the status clients of this API expect for
// duplicate resources.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth, KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidToken:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewUnauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func NewInvalidToken(message string, err error) *Error {
	return &Error{Kind: KindInvalidToken, Message: message, Err: err}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// NewConfig reports a missing or invalid piece of configuration. Unlike
// internal errors, the message is safe to show to clients.
func NewConfig(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// KindOf reports the kind of err, or KindInternal for errors that are not
// application errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a NotFound application error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
