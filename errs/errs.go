// Package errs defines the closed set of failures the API can produce and
// the HTTP status each one maps to.
package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an Error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindStorage
	KindMalformedBody
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindMalformedBody:
		return "malformed_body"
	default:
		return "internal"
	}
}

// Status is the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindMalformedBody:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a client-safe Message. Err is the underlying cause and is
// only ever logged.
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

// Status is the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Validation creates a client error with one of the fixed validation messages.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound creates a 404 error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage hides cause behind a fixed, operation specific message.
func Storage(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: cause}
}

// MalformedBody marks a request body that is not valid JSON.
func MalformedBody(cause error) *Error {
	return &Error{Kind: KindMalformedBody, Message: "Malformed JSON", Err: cause}
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", Err: cause}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}
