package errors

import (
	"fmt"
)

// ParseError represents a JSON, YAML or TOML decoding failure with optional line metadata.
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

// ValidationError captures a single configuration violation.
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

// IOError reports a failed filesystem operation (mkdir, read, write).
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError constructs an IOError for the given operation and path.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
