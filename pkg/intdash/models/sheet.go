package models

// SheetData represents the raw content of a single sheet.
type SheetData struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name"`
	// Bounds is the used range of the sheet (e.g. "A1:H11"), empty if blank.
	Bounds string `json:"bounds,omitempty"`
	// Rows contains non-empty rows with typed cell values.
	Rows []CellRow `json:"rows,omitempty"`
}
