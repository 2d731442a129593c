package faleproxy

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	EMISSING  = "missing"
	EINVALID  = "invalid"
	EFETCH    = "fetch"
	EINTERNAL = "internal"
)

// Error represents an application-specific error. Errors produced by the
// proxy pipeline carry one of the codes above so the transport layer can pick
// a status without inspecting messages.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("faleproxy error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorStatus returns the HTTP status code for an error. Only a missing URL
// is a client error; every other failure is reported as 500.
func ErrorStatus(err error) int {
	switch ErrorCode(err) {
	case "":
		return http.StatusOK
	case EMISSING:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
