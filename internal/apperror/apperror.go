// Package apperror defines the tagged error kinds shared by every layer.
// Repositories translate driver errors into these kinds; handlers map kinds
// to HTTP statuses. Raw store errors never cross the handler boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	MissingParameters
	InvalidCredentials
	AlreadyRegistered
	InvalidAccountBalance
	NoToken
	InvalidToken
	Forbidden
	NotFound
	Store
)

// Error carries a kind, a client-safe message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error kind. NoToken maps to 403,
// matching the original wire behavior for absent credentials.
func (e *Error) Status() int {
	switch e.Kind {
	case MissingParameters, InvalidAccountBalance:
		return http.StatusUnprocessableEntity
	case InvalidCredentials, InvalidToken:
		return http.StatusUnauthorized
	case AlreadyRegistered:
		return http.StatusConflict
	case NoToken, Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// From extracts the *Error in err's chain, or wraps err as Internal so that
// callers always have a kind and a safe message to work with.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: Internal, Message: "internal server error", Err: err}
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
