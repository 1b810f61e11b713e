// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeConfig indicates a pricing configuration error (fatal for a calculation)
	TypeConfig Type = "CONFIG_ERROR"

	// TypeUnclassifiable indicates a generator kW rating that maps to no tier
	TypeUnclassifiable Type = "UNCLASSIFIABLE_INPUT"

	// TypeExternal indicates an external service (CPQ/quote API) error
	TypeExternal Type = "EXTERNAL_SERVICE_ERROR"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`

	// Transient marks external errors that are safe to retry
	Transient bool `json:"transient,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// IsTransient reports whether an error is a retryable external error
func IsTransient(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == TypeExternal && e.Transient
	}
	return false
}

// Config creates a configuration error naming the missing or invalid field
func Config(field, message string) *Error {
	return Newf(TypeConfig, "%s: %s", field, message).WithContext("field", field)
}

// Unclassifiable creates an error for a kW rating outside all defined tiers
func Unclassifiable(kw float64) *Error {
	return Newf(TypeUnclassifiable, "kW rating %v maps to no pricing tier", kw).
		WithContext("kw", kw)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// ExternalTransient creates a retryable external service error
func ExternalTransient(message string, cause error) *Error {
	e := Wrap(TypeExternal, message, cause)
	e.Transient = true
	return e
}

// ExternalPermanent creates a non-retryable external service error
func ExternalPermanent(message string, cause error) *Error {
	return Wrap(TypeExternal, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
