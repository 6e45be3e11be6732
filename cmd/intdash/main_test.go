package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ukaji3/intdash-go/pkg/intdash"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{intdash.NewError(intdash.ErrSourceMissing, "load", errors.New("x")), 2},
		{intdash.NewError(intdash.ErrSchemaMismatch, "load", errors.New("x")), 3},
		{intdash.NewError(intdash.ErrComputeError, "aggregate", errors.New("x")), 4},
		{fmt.Errorf("wrapped: %w", intdash.NewError(intdash.ErrWriteError, "write", errors.New("x"))), 5},
		{errors.New("unknown flag: --bogus"), 1},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.expected {
			t.Errorf("exitCode(%v): expected %d, got %d", tt.err, tt.expected, got)
		}
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := humanSize(tt.n); got != tt.expected {
			t.Errorf("humanSize(%d): expected %s, got %s", tt.n, tt.expected, got)
		}
	}
}

func TestSummary(t *testing.T) {
	ms := &models.MetricSet{
		Title: models.T("MIDOR-ETHYDCO Integration", ""),
		Products: []models.ProductLine{
			{Key: "LPG", Name: models.T("LPG (C3+C4)", ""), Quantity: 125504.05, Value: 91492453},
		},
		Phase12:      models.PhaseTotal{Net: 99818170.40},
		Phase34:      models.PhaseTotal{Net: 96232656.46},
		NGMakeupCost: 107640829.64,
		TotalNet:     196050826.86,
	}

	out := summary(ms)
	for _, want := range []string{"MIDOR-ETHYDCO Integration", "$196M", "$100M", "LPG (C3+C4)", "125,504", "-$107,640,830"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q:\n%s", want, out)
		}
	}
}
