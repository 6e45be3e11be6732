package deck

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/ukaji3/intdash-go/pkg/intdash/parser"
	"github.com/ukaji3/intdash-go/pkg/intdash/sample"
)

func referenceMetrics(t *testing.T) *models.MetricSet {
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
	return ms
}

func TestOutline(t *testing.T) {
	slides, err := Outline(referenceMetrics(t))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	titles := []string{"", "Executive Summary", "Annual Product Values",
		"ETHYDCO C2 Feed Coverage", "Hydrogen Balance for Methanol", "Financial Summary"}
	if len(slides) != len(titles) {
		t.Fatalf("Expected %d slides, got %d", len(titles), len(slides))
	}
	for i, want := range titles[1:] {
		if slides[i+1].Title != want {
			t.Errorf("Slide %d: expected %s, got %s", i+2, want, slides[i+1].Title)
		}
	}

	if !strings.HasPrefix(slides[0].Headline, "$196M") {
		t.Errorf("Expected $196M headline, got %s", slides[0].Headline)
	}
	if got := slides[1].Lines[0].Value; got != "$196M" {
		t.Errorf("Expected total $196M, got %s", got)
	}
	if n := len(slides[2].Lines); n != 7 {
		t.Errorf("Expected 7 product lines, got %d", n)
	}
	if got := slides[3].Lines[1].Value; got != "70.6%" {
		t.Errorf("Expected 70.6%% coverage, got %s", got)
	}
	if got := slides[3].Lines[2].Color; got != charts.ColorDanger {
		t.Errorf("Expected danger color below 50%%, got %s", got)
	}
	if got := slides[4].Lines[3].Value; got != "60%" {
		t.Errorf("Expected 60%% utilization, got %s", got)
	}
}

func TestOutlineEmpty(t *testing.T) {
	if _, err := Outline(nil); !errors.Is(err, charts.ErrEmptyMetrics) {
		t.Errorf("Expected ErrEmptyMetrics, got %v", err)
	}
}

func TestCoverageColor(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0.9, charts.ColorSuccess},
		{0.75, charts.ColorSuccess},
		{0.6, charts.ColorAccent},
		{0.49, charts.ColorDanger},
	}
	for _, tt := range tests {
		if got := coverageColor(tt.ratio); got != tt.expected {
			t.Errorf("coverageColor(%v): expected %s, got %s", tt.ratio, tt.expected, got)
		}
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(referenceMetrics(t))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Output is not a zip package: %v", err)
	}
	var slides []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("Failed to open %s: %v", f.Name, err)
			}
			b, _ := io.ReadAll(rc)
			rc.Close()
			slides = append(slides, string(b))
		}
	}
	if len(slides) != 6 {
		t.Fatalf("Expected 6 slides, got %d", len(slides))
	}
	all := strings.Join(slides, "")
	for _, want := range []string{"Executive Summary", "$196M", "Naphtha (C5+)"} {
		if !strings.Contains(all, want) {
			t.Errorf("Expected slides to contain %q", want)
		}
	}
}
