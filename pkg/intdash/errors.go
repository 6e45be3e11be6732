package intdash

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/output"
	"github.com/ukaji3/intdash-go/pkg/intdash/parser"
)

// ErrSourceMissing indicates the workbook (or another input file) does not exist.
var ErrSourceMissing = errors.New("source missing")

// ErrSchemaMismatch indicates the workbook does not match the expected layout.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrComputeError indicates the workbook values cannot produce valid metrics.
var ErrComputeError = errors.New("compute error")

// ErrWriteError indicates the report could not be written.
var ErrWriteError = errors.New("write error")

// Error is a pipeline failure tagged with its kind and the stage it occurred in.
type Error struct {
	Kind  error  // one of ErrSourceMissing, ErrSchemaMismatch, ErrComputeError, ErrWriteError
	Stage string // "load", "aggregate", "charts", "render", "deck" or "write"
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Stage, e.Err)
}

// Unwrap returns both the kind and the cause, so errors.Is matches either.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewError creates a new Error.
func NewError(kind error, stage string, err error) *Error {
	return &Error{
		Kind:  kind,
		Stage: stage,
		Err:   err,
	}
}

// classify wraps err in an Error whose kind is derived from the package
// error it carries. Unrecognized errors take fallback.
func classify(stage string, err error, fallback error) error {
	if err == nil {
		return nil
	}
	var kind error
	switch {
	case errors.Is(err, output.ErrWriteFailed):
		kind = ErrWriteError
	case errors.Is(err, parser.ErrFileNotFound), errors.Is(err, os.ErrNotExist):
		kind = ErrSourceMissing
	case errors.Is(err, parser.ErrInvalidFormat),
		errors.Is(err, parser.ErrSheetNotFound),
		errors.Is(err, parser.ErrEmptyCell),
		errors.Is(err, parser.ErrNotNumeric),
		errors.Is(err, metrics.ErrMissingInput):
		kind = ErrSchemaMismatch
	case errors.Is(err, metrics.ErrDivideByZero), errors.Is(err, metrics.ErrInvalidFactor):
		kind = ErrComputeError
	default:
		kind = fallback
	}
	return NewError(kind, stage, err)
}
