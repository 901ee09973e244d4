// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the ringbuf library.

package api

import "fmt"

// Common errors used across the library. Panics raised by the container
// wrap one of these, so callers can match with errors.Is after recover.
var (
	ErrCapacityOverflow  = fmt.Errorf("capacity overflow")
	ErrLengthOverflow    = fmt.Errorf("length overflow")
	ErrIndexOutOfBounds  = fmt.Errorf("index out of bounds")
	ErrCapacityUnderflow = fmt.Errorf("capacity underflow")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeCapacityOverflow
	ErrCodeLengthOverflow
	ErrCodeIndexOutOfBounds
	ErrCodeCapacityUnderflow
)

// sentinel maps a code to its package-level sentinel error.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeCapacityOverflow:
		return ErrCapacityOverflow
	case ErrCodeLengthOverflow:
		return ErrLengthOverflow
	case ErrCodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case ErrCodeCapacityUnderflow:
		return ErrCapacityUnderflow
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for the error's code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
