package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing form or node.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPattern signals a regular expression that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidCondition signals a malformed filter condition.
	ErrInvalidCondition = errors.New("invalid condition")
)

// PatternError wraps ErrInvalidPattern with the offending pattern source.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidPattern.Error(), e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return ErrInvalidPattern }

// NewPatternError creates a pattern error for the given source and compile error.
func NewPatternError(pattern string, err error) error {
	return &PatternError{Pattern: pattern, Err: err}
}
