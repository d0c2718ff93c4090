// Package errors provides structured error types for outloud.
//
// Every failure the engine can report carries a machine-readable [Code]
// so that host shells can tell a bad input word from a corrupt document or a
// failed write without string matching:
//   - PRECONDITION: a caller broke an API contract (released session, nil doc)
//   - MEMORY: the document arena refused to grow
//   - FILE, FILE_CONTENT_BAD: persistence failures
//   - WORD_*, VALUE_TOO_LONG: an input word violates the word grammar or limits
//   - FILENAME_*: the document filename fails the word grammar
//
// "huh" (an unrecognized command) is not an error; it is a normal reply.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeWordBad, "word %q contains bad characters", w)
//	if errors.Is(err, errors.ErrCodeWordBad) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFile, origErr, "rename %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Contract and resource errors
	ErrCodePrecondition Code = "PRECONDITION"
	ErrCodeMemory       Code = "MEMORY"

	// Persistence errors
	ErrCodeFile           Code = "FILE"
	ErrCodeFileContentBad Code = "FILE_CONTENT_BAD"

	// Input validation errors
	ErrCodeWordBad         Code = "WORD_BAD"
	ErrCodeWordTooLong     Code = "WORD_TOO_LONG"
	ErrCodeValueTooLong    Code = "VALUE_TOO_LONG"
	ErrCodeFilenameBad     Code = "FILENAME_BAD"
	ErrCodeFilenameTooLong Code = "FILENAME_TOO_LONG"
)

var descriptions = map[Code]string{
	ErrCodePrecondition:    "Error Precondition",
	ErrCodeMemory:          "Error Memory",
	ErrCodeFile:            "Error File",
	ErrCodeFileContentBad:  "Error File Contains Bad Content",
	ErrCodeWordBad:         "Error Word Contains Bad Characters",
	ErrCodeWordTooLong:     "Error Word Too Long",
	ErrCodeValueTooLong:    "Error Value Too Long",
	ErrCodeFilenameBad:     "Error Filename Contains Bad Characters",
	ErrCodeFilenameTooLong: "Error Filename Too Long",
}

// Describe returns a short human-readable sentence for code.
// Unknown codes yield "Unknown Error".
func Describe(code Code) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Unknown Error"
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
