// Package models defines the data structures passed between pipeline stages.
package models

// CellRow represents a single row of raw cell values.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
}
