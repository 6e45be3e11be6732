package layout

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange represents cell coordinate bounds (1-based, inclusive).
type CellRange struct {
	// R1 is the start row.
	R1 int `json:"r1"`
	// C1 is the start column.
	C1 int `json:"c1"`
	// R2 is the end row.
	R2 int `json:"r2"`
	// C2 is the end column.
	C2 int `json:"c2"`
}

// IsCell reports whether the range covers a single cell.
func (r CellRange) IsCell() bool {
	return r.R1 == r.R2 && r.C1 == r.C2
}

// IsVector reports whether the range is a single row or a single column.
func (r CellRange) IsVector() bool {
	return r.R1 == r.R2 || r.C1 == r.C2
}

// Cells returns the cell names covered by the range in row-major order.
func (r CellRange) Cells() []string {
	var names []string
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			name, _ := excelize.CoordinatesToCellName(col, row)
			names = append(names, name)
		}
	}
	return names
}

// String formats the range in A1 notation.
func (r CellRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	if r.IsCell() {
		return start
	}
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// ParseRef parses a reference like B4, $C$3:$H$3 or 'Sheet'!A1:B2.
// A sheet prefix is accepted and discarded.
func ParseRef(ref string) (CellRange, error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return CellRange{}, fmt.Errorf("empty reference")
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return CellRange{}, fmt.Errorf("invalid reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if len(parts) == 1 {
		return CellRange{R1: startRow, C1: startCol, R2: startRow, C2: startCol}, nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	if endCol < startCol || endRow < startRow {
		return CellRange{}, fmt.Errorf("invalid reference %q: end before start", ref)
	}

	return CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
