// Package parser reads the integration workbook into a SourceWorkbook.
package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a sheet named by the layout is missing.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyCell indicates a required cell holds no value.
var ErrEmptyCell = errors.New("cell is empty")

// ErrNotNumeric indicates a number was required but the cell holds text.
var ErrNotNumeric = errors.New("cell is not numeric")

// CellError locates a read failure in the workbook.
type CellError struct {
	SheetName string
	Ref       string // cell or range, empty for sheet-level errors
	Key       string // layout key being read
	Err       error
}

func (e *CellError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
	}
	return fmt.Sprintf("sheet %q cell %s (%s): %v", e.SheetName, e.Ref, e.Key, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// NewCellError creates a new CellError.
func NewCellError(sheetName, ref, key string, err error) *CellError {
	return &CellError{
		SheetName: sheetName,
		Ref:       ref,
		Key:       key,
		Err:       err,
	}
}
