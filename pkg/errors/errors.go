package errors

import (
	"errors"
	"fmt"
)

// ErrMalformedColor is the sentinel wrapped by every ColorError.
var ErrMalformedColor = errors.New("malformed color")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorError reports a colour string that does not match the syntax or
// channel ranges of the mode it was parsed as.
type ColorError struct {
	Value   string
	Mode    string
	Message string
}

// NewColorError constructs a ColorError for value parsed as mode.
func NewColorError(value, mode, message string) error {
	return &ColorError{Value: value, Mode: mode, Message: message}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Mode != "" {
		return fmt.Sprintf("color error [%s]: %q: %s", e.Mode, e.Value, e.Message)
	}
	return fmt.Sprintf("color error: %q: %s", e.Value, e.Message)
}

// Unwrap lets callers match any ColorError with errors.Is(err, ErrMalformedColor).
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrMalformedColor
}
