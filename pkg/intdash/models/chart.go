package models

import "fmt"

// ChartKind tags the payload carried by a ChartSpec.
type ChartKind string

const (
	ChartDonut      ChartKind = "donut"
	ChartBar        ChartKind = "bar"
	ChartGroupedBar ChartKind = "grouped-bar"
	ChartSankey     ChartKind = "sankey"
	ChartGauge      ChartKind = "gauge"
	ChartHeatmap    ChartKind = "heatmap"
	ChartPie        ChartKind = "pie"
)

// ChartSpec is a declarative chart. Exactly one payload matching Kind is set.
type ChartSpec struct {
	// ID is the stable DOM key (e.g. "donut", "gauge-min").
	ID string `json:"id"`
	// Kind selects the payload.
	Kind ChartKind `json:"kind"`
	// Title is the card heading shown above the chart.
	Title Text `json:"title"`
	// Height is the plot height in pixels.
	Height int `json:"height"`

	Donut      *DonutData      `json:"donut,omitempty"`
	Bar        *BarData        `json:"bar,omitempty"`
	GroupedBar *GroupedBarData `json:"grouped_bar,omitempty"`
	Sankey     *SankeyData     `json:"sankey,omitempty"`
	Gauge      *GaugeData      `json:"gauge,omitempty"`
	Heatmap    *HeatmapData    `json:"heatmap,omitempty"`
	Pie        *PieData        `json:"pie,omitempty"`
}

// DonutData is a ring chart with a center annotation.
type DonutData struct {
	Labels []Text    `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
	// Hole is the inner radius fraction.
	Hole float64 `json:"hole"`
	// Center is the text shown in the hole.
	Center string `json:"center"`
}

// BarData is a single-series bar chart.
type BarData struct {
	Categories []Text    `json:"categories"`
	Values     []float64 `json:"values"`
	Colors     []string  `json:"colors"`
	// Texts are the value labels drawn on the bars.
	Texts      []string `json:"texts"`
	Horizontal bool     `json:"horizontal"`
	AxisTitle  Text     `json:"axis_title"`
	// Note is an optional annotation drawn over the plot.
	Note Text `json:"note"`
}

// BarSeries is one series of a grouped bar chart.
type BarSeries struct {
	Name   Text      `json:"name"`
	Values []float64 `json:"values"`
	Texts  []string  `json:"texts"`
	Color  string    `json:"color"`
}

// GroupedBarData is a multi-series bar chart sharing categories.
type GroupedBarData struct {
	Categories []Text      `json:"categories"`
	Series     []BarSeries `json:"series"`
	AxisTitle  Text        `json:"axis_title"`
}

// SankeyLink connects two nodes by index.
type SankeyLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

// SankeyData is a flow diagram.
type SankeyData struct {
	Nodes      []Text       `json:"nodes"`
	NodeColors []string     `json:"node_colors"`
	Links      []SankeyLink `json:"links"`
}

// GaugeStep is a colored band on a gauge axis.
type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// GaugeData is a single-value indicator on a 0..Max axis.
type GaugeData struct {
	Value  float64     `json:"value"`
	Max    float64     `json:"max"`
	Suffix string      `json:"suffix"`
	Color  string      `json:"color"`
	Steps  []GaugeStep `json:"steps"`
	Label  Text        `json:"label"`
}

// HeatmapData is a matrix with Z[row][col] over Y rows and X columns.
type HeatmapData struct {
	X         []Text      `json:"x"`
	Y         []string    `json:"y"`
	Z         [][]float64 `json:"z"`
	Scale     string      `json:"scale"`
	UnitTitle Text        `json:"unit_title"`
}

// PieData is a labelled pie with an optional hole.
type PieData struct {
	Labels []Text    `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
	Hole   float64   `json:"hole"`
}

// Validate reports whether the payload matches Kind.
func (c ChartSpec) Validate() error {
	set := map[ChartKind]bool{
		ChartDonut:      c.Donut != nil,
		ChartBar:        c.Bar != nil,
		ChartGroupedBar: c.GroupedBar != nil,
		ChartSankey:     c.Sankey != nil,
		ChartGauge:      c.Gauge != nil,
		ChartHeatmap:    c.Heatmap != nil,
		ChartPie:        c.Pie != nil,
	}
	ok, known := set[c.Kind]
	if !known {
		return fmt.Errorf("chart %q: unknown kind %q", c.ID, c.Kind)
	}
	if !ok {
		return fmt.Errorf("chart %q: missing %s payload", c.ID, c.Kind)
	}
	for kind, present := range set {
		if present && kind != c.Kind {
			return fmt.Errorf("chart %q: unexpected %s payload on %s chart", c.ID, kind, c.Kind)
		}
	}
	return nil
}
