package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/xuri/excelize/v2"
)

var rawValue = excelize.Options{RawCellValue: true}

// ExtractCells extracts the raw grid of a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, rawValue)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			colStr := strconv.Itoa(colIdx + 1) // 1-based column index as string
			cellMap[colStr] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// cellRaw returns the stored value of a cell. Formula cells without a cached
// result are evaluated.
func cellRaw(f *excelize.File, sheetName, cell string) (string, error) {
	value, err := f.GetCellValue(sheetName, cell, rawValue)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) != "" {
		return value, nil
	}

	formula, err := f.GetCellFormula(sheetName, cell)
	if err != nil || formula == "" {
		return "", err
	}
	value, err = f.CalcCellValue(sheetName, cell, rawValue)
	if err != nil {
		return "", fmt.Errorf("evaluate %s: %w", formula, err)
	}
	return value, nil
}

// ReadNumber reads a cell that must hold a number.
func ReadNumber(f *excelize.File, sheetName, cell string) (float64, error) {
	raw, err := cellRaw(f, sheetName, cell)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyCell
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return v, nil
}

// ReadText reads a cell that must hold a non-empty value, as displayed.
func ReadText(f *excelize.File, sheetName, cell string) (string, error) {
	value, err := f.GetCellValue(sheetName, cell)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmptyCell
	}
	return value, nil
}
