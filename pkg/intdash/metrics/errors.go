// Package metrics derives the report figures from a source workbook.
package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	ErrMissingInput  = errors.New("input value missing")
	ErrDivideByZero  = errors.New("division by zero")
	ErrInvalidFactor = errors.New("invalid factor")
)

// FactorError reports the input that made a computation impossible.
type FactorError struct {
	// Key is the layout key of the offending input (e.g. "mw.CO").
	Key string
	// Value is the value that was rejected.
	Value float64
	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *FactorError) Error() string {
	if errors.Is(e.Err, ErrMissingInput) {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("%s = %g: %v", e.Key, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FactorError) Unwrap() error {
	return e.Err
}

// NewFactorError creates a new FactorError.
func NewFactorError(key string, value float64, err error) *FactorError {
	return &FactorError{Key: key, Value: value, Err: err}
}
