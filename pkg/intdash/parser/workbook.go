package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook opens the workbook at path and reads every field of l.
// The file is closed before ReadWorkbook returns.
func ReadWorkbook(path string, l *layout.Layout) (*models.SourceWorkbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	return Read(f, filepath.Base(path), l)
}

// Read extracts the layout fields from an open workbook.
func Read(f *excelize.File, bookName string, l *layout.Layout) (*models.SourceWorkbook, error) {
	wb := &models.SourceWorkbook{
		BookName: bookName,
		Values:   make(map[string]float64),
		Series:   make(map[string][]float64),
		Labels:   make(map[string][]string),
	}

	for _, sheetName := range l.Sheets() {
		if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
			return nil, NewCellError(sheetName, "", "", ErrSheetNotFound)
		}

		rows, err := ExtractCells(f, sheetName)
		if err != nil {
			return nil, NewCellError(sheetName, "", "", err)
		}
		bounds, err := DetectBounds(f, sheetName)
		if err != nil {
			return nil, NewCellError(sheetName, "", "", err)
		}
		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name:   sheetName,
			Bounds: bounds,
			Rows:   rows,
		})
	}

	for _, field := range l.Fields {
		if err := readField(f, wb, field); err != nil {
			return nil, err
		}
	}

	return wb, nil
}

// readField reads one layout field into wb. Single-cell number fields become
// Values; ranges become Series; text fields become Labels.
func readField(f *excelize.File, wb *models.SourceWorkbook, field layout.Field) error {
	r := field.Range()
	cells := r.Cells()

	switch field.Kind {
	case layout.KindText:
		texts := make([]string, 0, len(cells))
		for _, cell := range cells {
			v, err := ReadText(f, field.Sheet, cell)
			if err != nil {
				if field.Optional && errors.Is(err, ErrEmptyCell) {
					continue
				}
				return NewCellError(field.Sheet, cell, field.Key, err)
			}
			texts = append(texts, v)
		}
		wb.Labels[field.Key] = texts

	case layout.KindNumber:
		values := make([]float64, 0, len(cells))
		for _, cell := range cells {
			v, err := ReadNumber(f, field.Sheet, cell)
			if err != nil {
				if field.Optional && errors.Is(err, ErrEmptyCell) {
					continue
				}
				return NewCellError(field.Sheet, cell, field.Key, err)
			}
			values = append(values, v)
		}
		if r.IsCell() {
			if len(values) == 1 {
				wb.Values[field.Key] = values[0]
			}
		} else {
			wb.Series[field.Key] = values
		}
	}

	return nil
}
