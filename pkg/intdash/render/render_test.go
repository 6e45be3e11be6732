package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/ukaji3/intdash-go/pkg/intdash/parser"
	"github.com/ukaji3/intdash-go/pkg/intdash/sample"
)

func reference(t *testing.T) (*models.MetricSet, []models.ChartSpec) {
	t.Helper()
	f, err := sample.NewWorkbook(layout.Default(), sample.Data())
	if err != nil {
		t.Fatalf("Failed to build sample workbook: %v", err)
	}
	defer f.Close()

	wb, err := parser.Read(f, "sample.xlsx", layout.Default())
	if err != nil {
		t.Fatalf("Failed to read sample workbook: %v", err)
	}
	ms, err := metrics.Aggregate(wb)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	specs, err := charts.Build(ms)
	if err != nil {
		t.Fatalf("Build charts failed: %v", err)
	}
	return ms, specs
}

func renderReference(t *testing.T, opts Options) []byte {
	t.Helper()
	ms, specs := reference(t)
	doc, err := Build(ms, specs, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	out, err := HTML(doc, specs, opts)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	return out
}

func TestBuildSections(t *testing.T) {
	ms, specs := reference(t)
	doc, err := Build(ms, specs, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := []string{SectionOverview, SectionFinancial, SectionProcess, SectionDetailed}
	if len(doc.Sections) != len(expected) {
		t.Fatalf("Expected %d sections, got %d", len(expected), len(doc.Sections))
	}
	for i, s := range doc.Sections {
		if s.ID != expected[i] {
			t.Errorf("Section %d: expected %s, got %s", i, expected[i], s.ID)
		}
	}

	kpis := doc.Sections[0].Widgets[0].KPIs
	if len(kpis) != 3 {
		t.Fatalf("Expected 3 KPI cards, got %d", len(kpis))
	}
	if kpis[0].Value != "$196M" {
		t.Errorf("Expected total $196M, got %s", kpis[0].Value)
	}

	table := doc.Sections[1].Widgets[1].Table
	if len(table.Rows) != len(ms.Products)+2 {
		t.Fatalf("Expected %d rows, got %d", len(ms.Products)+2, len(table.Rows))
	}
	last := table.Rows[len(table.Rows)-1]
	if last.Variant != "total" || last.Cells[2].Text.EN != metrics.FormatMoney(ms.TotalNet) {
		t.Errorf("Unexpected total row: %+v", last)
	}
	if cost := table.Rows[len(table.Rows)-2]; !strings.HasPrefix(cost.Cells[2].Text.EN, "-$") {
		t.Errorf("Expected negative cost row, got %s", cost.Cells[2].Text.EN)
	}

	cards := doc.Sections[3].Widgets[0].Cards
	if len(cards) != len(ms.Streams) {
		t.Errorf("Expected %d stream cards, got %d", len(ms.Streams), len(cards))
	}
}

func TestBuildGaugePair(t *testing.T) {
	ms, specs := reference(t)
	doc, err := Build(ms, specs, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	pair := doc.Sections[2].Widgets[1].Charts[0]
	if len(pair.ChartIDs) != 2 || len(pair.Captions) != 2 {
		t.Fatalf("Expected gauge pair with captions, got %+v", pair)
	}
	if pair.Fallback != "" {
		t.Error("Expected no fallback for gauge pair")
	}
}

func TestBuildMissingChart(t *testing.T) {
	ms, specs := reference(t)
	_, err := Build(ms, specs[:len(specs)-1], DefaultOptions())
	if !errors.Is(err, ErrMissingChart) {
		t.Errorf("Expected ErrMissingChart, got %v", err)
	}
}

func TestBuildFooterStamp(t *testing.T) {
	ms, specs := reference(t)
	tests := []struct {
		stamp string
		want  bool
	}{
		{"", false},
		{"2024-01-01", true},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Stamp = tt.stamp
		doc, err := Build(ms, specs, opts)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		has := strings.Contains(doc.Footer.EN, "Generated")
		if has != tt.want {
			t.Errorf("Stamp %q: expected generated=%v, got footer %q", tt.stamp, tt.want, doc.Footer.EN)
		}
		if tt.want && !strings.Contains(doc.Footer.AR, tt.stamp) {
			t.Errorf("Expected stamp in Arabic footer, got %q", doc.Footer.AR)
		}
	}
}

func TestHTML(t *testing.T) {
	out := string(renderReference(t, DefaultOptions()))

	for _, want := range []string{
		"<!DOCTYPE html>",
		`id="overview"`, `id="financial"`, `id="process"`, `id="detailed"`,
		"Overview", "نظرة عامة",
		"Financial Analysis", "التحليل المالي",
		`id="chart-data"`,
		`id="chart-sankey-en"`, `id="chart-sankey-ar"`,
		"--primary: #0ea5e9;",
		"--font-ar: 'Cairo';",
		DefaultPlotlyURL,
		"$196M",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}

	// Sections appear in tab order.
	prev := -1
	for _, id := range []string{SectionOverview, SectionFinancial, SectionProcess, SectionDetailed} {
		i := strings.Index(out, `<section id="`+id+`"`)
		if i <= prev {
			t.Errorf("Section %s out of order", id)
		}
		prev = i
	}

	if !strings.Contains(out, `<div class="chart-fallback"><svg`) {
		t.Error("Expected inline svg fallback")
	}
}

func TestHTMLDeterministic(t *testing.T) {
	a := renderReference(t, DefaultOptions())
	b := renderReference(t, DefaultOptions())
	if !bytes.Equal(a, b) {
		t.Error("Expected identical output for identical input")
	}
}

func TestHTMLInlinePlotly(t *testing.T) {
	opts := DefaultOptions()
	opts.PlotlyJS = []byte("window.Plotly={newPlot:function(){}};")
	out := string(renderReference(t, opts))

	if !strings.Contains(out, "window.Plotly={newPlot:function(){}};") {
		t.Error("Expected inlined chart library")
	}
	if strings.Contains(out, DefaultPlotlyURL) {
		t.Error("Expected no CDN reference when the library is inlined")
	}
}

func TestHTMLWithoutFallbacks(t *testing.T) {
	opts := DefaultOptions()
	opts.Fallbacks = false
	out := string(renderReference(t, opts))
	if strings.Contains(out, "<svg") {
		t.Error("Expected no svg when fallbacks are disabled")
	}
}

func TestHTMLMissingFigure(t *testing.T) {
	ms, specs := reference(t)
	doc, err := Build(ms, specs, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, err := HTML(doc, specs[1:], DefaultOptions()); !errors.Is(err, ErrMissingChart) {
		t.Errorf("Expected ErrMissingChart, got %v", err)
	}
	if _, err := HTML(nil, specs, DefaultOptions()); err == nil {
		t.Error("Expected error for nil document")
	}
}
