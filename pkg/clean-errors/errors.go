// Package cleanerrors defines the coded error taxonomy shared by all
// cleaners and the HTTP transport.
//
// Every cleaning failure carries a stable machine-readable Code so callers
// can branch on the failure kind without string matching. Failures are
// local to a single value: one invalid value never affects another call.
package cleanerrors

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure.
type Code string

// Validation codes returned by the cleaners.
const (
	// CodeEmptyInput marks missing, blank, or whitespace-only input.
	CodeEmptyInput Code = "empty_input"
	// CodeTypeMismatch marks input that is not a string-like scalar.
	CodeTypeMismatch Code = "type_mismatch"
	// CodeInvalidFormat marks input that is recognized but does not
	// conform to any supported pattern after normalization.
	CodeInvalidFormat Code = "invalid_format"
	// CodeInvalidLength marks a digit count outside the supported
	// numbering plan bounds.
	CodeInvalidLength Code = "invalid_length"
	// CodeInvalidDate marks input no supported date layout parses, or
	// whose calendar components are out of range.
	CodeInvalidDate Code = "invalid_date"
)

// Transport codes used by the HTTP layer.
const (
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal_error"
)

// Error is a coded error. Construct via New or Newf.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err (or anything it wraps) is a coded error with
// the given code.
func HasCode(err error, code Code) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == code
}

// CodeOf extracts the code from err. Returns false when err carries no
// coded error.
func CodeOf(err error) (Code, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return "", false
}
