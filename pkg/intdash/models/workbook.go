package models

// SourceWorkbook is the read-only view of the input workbook.
// Values, Series and Labels hold the fields named by the layout.
type SourceWorkbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds the known sheets in layout order.
	Sheets []SheetData `json:"sheets"`
	// Values maps a layout key to a scalar number.
	Values map[string]float64 `json:"values"`
	// Series maps a layout key to a numeric vector read from a range.
	Series map[string][]float64 `json:"series"`
	// Labels maps a layout key to a text vector read from a cell or range.
	Labels map[string][]string `json:"labels"`
}

// Sheet returns the sheet with the given name.
func (w *SourceWorkbook) Sheet(name string) (SheetData, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetData{}, false
}

// Value returns a scalar by layout key.
func (w *SourceWorkbook) Value(key string) (float64, bool) {
	v, ok := w.Values[key]
	return v, ok
}

// SeriesOf returns a numeric vector by layout key.
func (w *SourceWorkbook) SeriesOf(key string) ([]float64, bool) {
	v, ok := w.Series[key]
	return v, ok
}

// Label returns the first text value of a layout key.
func (w *SourceWorkbook) Label(key string) string {
	if v := w.Labels[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
