package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	// Row 3 is blank and skipped
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if rows[2].R != 4 {
		t.Errorf("Expected row 4, got %d", rows[2].R)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"1.5E-3", 0.0015},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestReadNumber(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 729)
	f.SetCellValue(sheetName, "A2", 0.8929)
	f.SetCellValue(sheetName, "A3", "n/a")
	if err := f.SetCellFormula(sheetName, "A4", "A1*2"); err != nil {
		t.Fatalf("SetCellFormula failed: %v", err)
	}

	tests := []struct {
		cell     string
		expected float64
		wantErr  error
	}{
		{"A1", 729, nil},
		{"A2", 0.8929, nil},
		{"A3", 0, ErrNotNumeric},
		{"A4", 1458, nil},
		{"A5", 0, ErrEmptyCell},
	}

	for _, tt := range tests {
		result, err := ReadNumber(f, sheetName, tt.cell)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadNumber(%s) error = %v, expected %v", tt.cell, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ReadNumber(%s) unexpected error: %v", tt.cell, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ReadNumber(%s) = %v, expected %v", tt.cell, result, tt.expected)
		}
	}
}

func TestReadText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "  Flare Gas OLD ")
	f.SetCellValue("Sheet1", "A2", "غاز الشعلة القديم")

	if v, err := ReadText(f, "Sheet1", "A1"); err != nil || v != "Flare Gas OLD" {
		t.Errorf("Expected 'Flare Gas OLD', got %q (%v)", v, err)
	}
	if v, err := ReadText(f, "Sheet1", "A2"); err != nil || v != "غاز الشعلة القديم" {
		t.Errorf("Expected Arabic label, got %q (%v)", v, err)
	}
	if _, err := ReadText(f, "Sheet1", "A3"); !errors.Is(err, ErrEmptyCell) {
		t.Errorf("Expected ErrEmptyCell, got %v", err)
	}
}

func TestDetectBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Blank"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Sheet1", "B2", "x")
	f.SetCellValue("Sheet1", "D5", 1)

	bounds, err := DetectBounds(f, "Sheet1")
	if err != nil {
		t.Fatalf("DetectBounds failed: %v", err)
	}
	if bounds != "B2:D5" {
		t.Errorf("Expected B2:D5, got %q", bounds)
	}

	bounds, err = DetectBounds(f, "Blank")
	if err != nil {
		t.Fatalf("DetectBounds failed: %v", err)
	}
	if bounds != "" {
		t.Errorf("Expected empty bounds, got %q", bounds)
	}
}
