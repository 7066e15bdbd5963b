// Package errors defines the coded errors shared by the mosaic engine, the
// render pipeline, the CLI and the HTTP service.
//
// Every failure that crosses a package boundary carries a [Code]. Callers
// branch on the code with [Is] or [GetCode] and show [UserMessage] to
// people; the HTTP service maps codes to status lines with [IsClientError].
//
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    return err // abort setup
//	}
//	return errors.Wrap(errors.ErrCodeCache, err, "read %s", key)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error class.
type Code string

const (
	// Bad input: flags, query parameters, config files.
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPalette Code = "INVALID_PALETTE"
	ErrCodeInvalidEasing  Code = "INVALID_EASING"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Gallery records and config files.
	ErrCodeNotFound Code = "NOT_FOUND"

	// Backends.
	ErrCodeCache Code = "CACHE_ERROR"
	ErrCodeStore Code = "STORE_ERROR"

	// Calls on an engine after Destroy.
	ErrCodeDestroyed Code = "ENGINE_DESTROYED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// clientCodes are the codes caused by the caller rather than a backend.
var clientCodes = map[Code]bool{
	ErrCodeInvalidInput:   true,
	ErrCodeInvalidConfig:  true,
	ErrCodeInvalidFormat:  true,
	ErrCodeInvalidPalette: true,
	ErrCodeInvalidEasing:  true,
	ErrCodeInvalidPath:    true,
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error renders "CODE: message" followed by ": cause" when there is one.
func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// outermost returns the first *Error in err's chain.
func outermost(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := outermost(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause from coded errors. Other
// errors are returned as their Error string.
func UserMessage(err error) string {
	if e, ok := outermost(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsClientError reports whether err was caused by bad input rather than a
// backend failure.
func IsClientError(err error) bool {
	return clientCodes[GetCode(err)]
}
