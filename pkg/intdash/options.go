// Package intdash generates the petrochemical integration dashboard from
// the integration calculations workbook.
package intdash

import (
	"log/slog"
	"strings"
)

const (
	// DefaultInput is the workbook read when no input path is given.
	DefaultInput = "integration_calculations.xlsx"
	// DefaultOutput is the report written when no output path is given.
	DefaultOutput = "integration_dashboard_v2.html"
)

// Options configures a generation run.
type Options struct {
	// Input is the workbook path.
	Input string
	// Output is the report path.
	Output string
	// Layout is a layout file path. Empty uses the built-in layout.
	Layout string
	// PlotlyJS is a local chart library bundle to inline.
	// Empty references the library by URL.
	PlotlyJS string
	// Stamp is appended to the report footer. Empty keeps output identical
	// across runs.
	Stamp string
	// Fallbacks embeds static SVG renderings of bar charts.
	// If nil, defaults to true.
	Fallbacks *bool
	// Logger receives stage progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Input:  DefaultInput,
		Output: DefaultOutput,
	}
}

// ShouldInlinePlotly returns whether a chart library bundle is inlined.
func (o Options) ShouldInlinePlotly() bool {
	return o.PlotlyJS != ""
}

// ShouldEmbedFallbacks returns whether static chart fallbacks are embedded.
func (o Options) ShouldEmbedFallbacks() bool {
	if o.Fallbacks != nil {
		return *o.Fallbacks
	}
	return true
}

// FooterStamp returns the trimmed footer stamp.
func (o Options) FooterStamp() string {
	return strings.TrimSpace(o.Stamp)
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
