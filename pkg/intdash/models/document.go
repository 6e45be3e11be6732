package models

// WidgetKind tags the payload carried by a Widget.
type WidgetKind string

const (
	WidgetKPIRow      WidgetKind = "kpi-row"
	WidgetChartGrid   WidgetKind = "chart-grid"
	WidgetTable       WidgetKind = "table"
	WidgetStreamCards WidgetKind = "stream-cards"
)

// ReportDocument is the in-memory form of the generated report.
type ReportDocument struct {
	// Title and Subtitle appear in the page header.
	Title    Text `json:"title"`
	Subtitle Text `json:"subtitle"`
	// Footer is the page footer line.
	Footer Text `json:"footer"`
	// Palette maps CSS custom property names to colors.
	Palette []PaletteEntry `json:"palette"`
	// Fonts maps each language to its font family.
	Fonts map[Lang]string `json:"fonts"`
	// Sections are the tabs in display order.
	Sections []Section `json:"sections"`
}

// PaletteEntry is one CSS custom property.
type PaletteEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Section is one tab of the report.
type Section struct {
	ID      string   `json:"id"`
	Title   Text     `json:"title"`
	Widgets []Widget `json:"widgets"`
}

// Widget is one block inside a section. Only the field matching Kind is set.
type Widget struct {
	Kind  WidgetKind `json:"kind"`
	Title Text       `json:"title"`

	KPIs   []KPICard   `json:"kpis,omitempty"`
	Charts []ChartCell `json:"charts,omitempty"`
	Table  *Table      `json:"table,omitempty"`
	Cards  []DataCard  `json:"cards,omitempty"`
}

// KPICard displays one named metric.
type KPICard struct {
	Label    Text   `json:"label"`
	Value    string `json:"value"`
	Sublabel Text   `json:"sublabel"`
	Icon     string `json:"icon,omitempty"`
	// Variant is "main", "accent", "success" or empty.
	Variant string `json:"variant,omitempty"`
}

// ChartCell places one or more charts in a grid card.
type ChartCell struct {
	Title Text `json:"title"`
	// ChartIDs reference ChartSpec.ID values; more than one renders a gauge pair.
	ChartIDs []string `json:"chart_ids"`
	// Captions label each chart when the card holds several.
	Captions []Text `json:"captions,omitempty"`
	Full     bool   `json:"full"`
	// Fallback is a static SVG shown until the chart library draws.
	Fallback string `json:"-"`
}

// Table is a bilingual header plus rows of cells.
type Table struct {
	Header []Text     `json:"header"`
	Rows   []TableRow `json:"rows"`
}

// TableRow is one table row. Variant is "cost", "total" or empty.
type TableRow struct {
	Cells   []TableCell `json:"cells"`
	Variant string      `json:"variant,omitempty"`
}

// TableCell is one table cell. Class is a CSS class ("value", "cost").
type TableCell struct {
	Text   Text   `json:"text"`
	Class  string `json:"class,omitempty"`
	Strong bool   `json:"strong,omitempty"`
}

// DataCard summarises one stream.
type DataCard struct {
	Header Text      `json:"header"`
	Value  string    `json:"value"`
	Unit   string    `json:"unit"`
	Rows   []DataRow `json:"rows"`
}

// DataRow is a label/value line inside a DataCard.
type DataRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
