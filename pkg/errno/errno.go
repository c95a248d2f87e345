// Package errno carries HTTP status codes alongside service errors so handlers
// can forward failures without deciding the status themselves.
package errno

import (
	"errors"
	"net/http"
)

// Error is a service failure tagged with the HTTP status it maps to.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// New creates an Error with the given status code and message.
func New(code int, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func BadRequest(msg string) *Error   { return New(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *Error { return New(http.StatusUnauthorized, msg) }
func NotFound(msg string) *Error     { return New(http.StatusNotFound, msg) }
func Conflict(msg string) *Error     { return New(http.StatusConflict, msg) }
func Internal(msg string) *Error     { return New(http.StatusInternalServerError, msg) }

var (
	// ErrBadArguments is returned by handlers when required input is missing.
	ErrBadArguments = BadRequest("Bad arguments")
	// ErrInternal stands in for untagged errors so their text stays out of responses.
	ErrInternal = Internal("Internal server error")
)

// StatusOf returns the status code attached to err, or 500 when none is set.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code != 0 {
		return e.Code
	}
	return http.StatusInternalServerError
}

// Ensure returns the tagged error inside err, or ErrInternal for untagged errors.
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Code == 0 {
			return &Error{Code: http.StatusInternalServerError, Msg: e.Msg}
		}
		return e
	}
	return ErrInternal
}
