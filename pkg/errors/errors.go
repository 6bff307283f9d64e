// Package errors provides structured error types for moplots.
//
// Every failure that reaches the command line carries a machine-readable
// [Code] so the CLI can pick an exit path and a message without string
// matching:
//   - INVALID_*: input validation failures (range, spin, grid, file, theme)
//   - RENDERER_*: problems locating, launching or running orca_plot
//   - FILESYSTEM: transient script or log file handling
//   - CONFIG: reading or writing the persisted configuration
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRange, "mo0 (%d) exceeds mo1 (%d)", first, last)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFilesystem, origErr, "create script for orbital %d", idx)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidRange     Code = "INVALID_RANGE"
	ErrCodeInvalidSpin      Code = "INVALID_SPIN"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidGrid      Code = "INVALID_GRID"
	ErrCodeInvalidInputFile Code = "INVALID_INPUT_FILE"
	ErrCodeInvalidTheme     Code = "INVALID_THEME"
	ErrCodeInvalidScript    Code = "INVALID_SCRIPT"

	// Renderer errors
	ErrCodeRendererNotFound Code = "RENDERER_NOT_FOUND"
	ErrCodeRendererLaunch   Code = "RENDERER_LAUNCH"
	ErrCodeRendererFailed   Code = "RENDERER_FAILED"

	// Local resources
	ErrCodeFilesystem Code = "FILESYSTEM"
	ErrCodeConfig     Code = "CONFIG"
)

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

// ExitError reports a renderer process that terminated with a non-zero
// status. It is carried as the Cause of a RENDERER_FAILED error.
type ExitError struct {
	ExitCode int
	LogPath  string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.LogPath != "" {
		return fmt.Sprintf("exit status %d (see %s)", e.ExitCode, e.LogPath)
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

// Code returns the error code for this error type.
func (e *ExitError) Code() Code {
	return ErrCodeRendererFailed
}
