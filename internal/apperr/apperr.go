// Package apperr defines the structured error taxonomy shared by the
// access and action layers. Errors carry a code usable for transport
// mapping and a message safe to show to users; wrapped causes stay
// internal and are logged, never rendered.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeInvalidInput    Code = "invalid_input"
	CodeUnauthenticated Code = "unauthenticated"
	CodeNotFound        Code = "not_found"
	CodeUpstreamFailure Code = "upstream_failure"
	CodeUploadFailure   Code = "upload_failure"
)

type Error struct {
	Code    Code
	Message string
	Err     error // wrapped cause, not user-facing
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the code from err. Errors outside the taxonomy are
// treated as upstream failures.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUpstreamFailure
}

// Message returns the user-facing message for err. Errors outside the
// taxonomy get a generic message so backend detail never leaks.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}
