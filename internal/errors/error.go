package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryContract Category = "contract"
	CategoryInput    Category = "input"
	CategoryConfig   Category = "config"
)

// TinyError is a structured error with a code, a category and a fix hint.
type TinyError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TinyError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TinyError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a TinyError with the same code.
func (e *TinyError) Is(target error) bool {
	t, ok := target.(*TinyError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TinyError) WithSuggestion(s string) *TinyError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *TinyError) WithExample(ex string) *TinyError {
	e.Example = ex
	return e
}

// WithDetail replaces the detailed explanation.
func (e *TinyError) WithDetail(d string) *TinyError {
	e.Detail = d
	return e
}

// WithDetailf replaces the detailed explanation with a formatted one.
func (e *TinyError) WithDetailf(format string, args ...any) *TinyError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *TinyError) Wrap(err error) *TinyError {
	e.Wrapped = err
	return e
}

// New creates a TinyError from a registered error code.
func New(code string) *TinyError {
	template, ok := registry[code]
	if !ok {
		return &TinyError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TinyError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new TinyError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TinyError {
	return &TinyError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TinyError.
func FromError(err error, code string) *TinyError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TinyError); ok {
		return te
	}
	return New(code).Wrap(err)
}
