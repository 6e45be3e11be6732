package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/ukaji3/intdash-go/pkg/intdash/parser"
	"github.com/ukaji3/intdash-go/pkg/intdash/sample"
)

func referenceWorkbook(t *testing.T) *models.SourceWorkbook {
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
	return wb
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAggregateReferenceValues(t *testing.T) {
	ms, err := Aggregate(referenceWorkbook(t))
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	tests := []struct {
		key      string
		quantity float64
		display  string
	}{
		{ProductLPG, 125504.05, "$91.5M"},
		{ProductNaphtha, 21733.10, "$13.5M"},
		{ProductHydrogen, 39444.77, "$78.9M"},
		{ProductEthane, 59006.21, "$23.6M"},
		{ProductMethanol, 79544.81, "$35.8M"},
		{ProductEthylene, 40467.02, "$16.2M"},
		{ProductPropylene, 60700.53, "$44.3M"},
	}
	if len(ms.Products) != len(tests) {
		t.Fatalf("Expected %d products, got %d", len(tests), len(ms.Products))
	}
	for i, tt := range tests {
		p := ms.Products[i]
		if p.Key != tt.key {
			t.Errorf("Product %d: expected key %s, got %s", i, tt.key, p.Key)
			continue
		}
		if !approx(p.Quantity, tt.quantity, 0.01) {
			t.Errorf("%s quantity: expected %.2f, got %.4f", tt.key, tt.quantity, p.Quantity)
		}
		if got := FormatMillions(p.Value, 1); got != tt.display {
			t.Errorf("%s value: expected %s, got %s", tt.key, tt.display, got)
		}
	}

	if got := FormatMillions(ms.TotalNet, 0); got != "$196M" {
		t.Errorf("Expected total $196M, got %s (%f)", got, ms.TotalNet)
	}
	if got := FormatMillions(ms.GrossSum, 0); got != "$304M" {
		t.Errorf("Expected gross sum $304M, got %s (%f)", got, ms.GrossSum)
	}
	if !approx(ms.NGMakeupCost, 107640829.64, 0.01) {
		t.Errorf("Expected NG makeup cost 107640829.64, got %f", ms.NGMakeupCost)
	}
	if ms.StatedTotal != 196065941.97 {
		t.Errorf("Expected stated total carried through, got %f", ms.StatedTotal)
	}
	if ms.Title.EN != "MIDOR-ETHYDCO Integration" || ms.Title.AR == "" {
		t.Errorf("Unexpected title: %+v", ms.Title)
	}
}

func TestAggregatePhaseSums(t *testing.T) {
	ms, err := Aggregate(referenceWorkbook(t))
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	value := func(key string) float64 {
		p, ok := ms.Product(key)
		if !ok {
			t.Fatalf("Missing product %s", key)
		}
		return p.Value
	}

	gross12 := value(ProductLPG) + value(ProductHydrogen) + value(ProductEthane) + value(ProductNaphtha)
	if !approx(ms.Phase12.Gross, gross12, 1e-6) {
		t.Errorf("Phase 1+2 gross: expected %f, got %f", gross12, ms.Phase12.Gross)
	}
	if !approx(ms.Phase12.Net, ms.Phase12.Gross-ms.Phase12.Deductions, 1e-6) {
		t.Errorf("Phase 1+2 net does not equal gross minus deductions")
	}

	net34 := value(ProductMethanol) + value(ProductEthylene) + value(ProductPropylene)
	if !approx(ms.Phase34.Net, net34, 1e-6) {
		t.Errorf("Phase 3+4: expected %f, got %f", net34, ms.Phase34.Net)
	}
	if ms.Phase34.Deductions != 0 {
		t.Errorf("Expected no Phase 3+4 deductions, got %f", ms.Phase34.Deductions)
	}

	if !approx(ms.TotalNet, ms.Phase12.Net+ms.Phase34.Net, 1e-6) {
		t.Errorf("Total net does not equal the sum of phase nets")
	}
	// Any double counting shows up as a gap other than the NG makeup cost.
	if !approx(ms.GrossSum-ms.TotalNet, ms.NGMakeupCost, 1e-4) {
		t.Errorf("Expected gross sum - total = NG makeup (%f), got %f",
			ms.NGMakeupCost, ms.GrossSum-ms.TotalNet)
	}
}

func TestAggregateProcessFigures(t *testing.T) {
	ms, err := Aggregate(referenceWorkbook(t))
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}

	if got := FormatPercent(ms.Coverage.AtMin, 1); got != "70.6%" {
		t.Errorf("Expected C2 coverage at min need 70.6%%, got %s", got)
	}
	if got := FormatPercent(ms.Coverage.AtMax, 1); got != "48.5%" {
		t.Errorf("Expected C2 coverage at max need 48.5%%, got %s", got)
	}
	if !approx(ms.Hydrogen.Required, 65665.68, 0.01) {
		t.Errorf("Expected H2 required 65665.68, got %f", ms.Hydrogen.Required)
	}
	if !approx(ms.Hydrogen.Deficit, 26220.91, 0.01) {
		t.Errorf("Expected H2 deficit 26220.91, got %f", ms.Hydrogen.Deficit)
	}
	if !approx(ms.Methanol.Total, 224069.88, 0.01) {
		t.Errorf("Expected methanol 224069.88, got %f", ms.Methanol.Total)
	}
	if !approx(ms.Methanol.Gasoline+ms.Methanol.MTOFeed, ms.Methanol.Total, 1e-6) {
		t.Errorf("Methanol allocation does not add up")
	}

	if len(ms.Streams) != 6 {
		t.Fatalf("Expected 6 streams, got %d", len(ms.Streams))
	}
	first := ms.Streams[0]
	if first.Name.EN != "Flare Gas OLD" || first.Name.AR != "غاز الشعلة القديم" {
		t.Errorf("Unexpected stream name: %+v", first.Name)
	}
	if first.FlowTY != 32976 {
		t.Errorf("Expected 32976 t/y, got %f", first.FlowTY)
	}
	if first.Components["CO2"] != 2499.26 {
		t.Errorf("Expected CO2 2499.26, got %f", first.Components["CO2"])
	}

	if len(ms.Prices) != 7 || ms.Prices[2].Product != "LPG" || ms.Prices[2].Price != 729 {
		t.Errorf("Unexpected price table: %+v", ms.Prices)
	}

	m, ok := ms.Lookup("total_net")
	if !ok || m.Value != ms.TotalNet || m.Unit != models.UnitUSDPerYear {
		t.Errorf("Unexpected total_net metric: %+v (%v)", m, ok)
	}
	if _, ok := ms.Lookup("C5+_annual_value"); !ok {
		t.Error("Expected C5+_annual_value metric")
	}
}

func TestAggregateSurplusHydrogen(t *testing.T) {
	wb := referenceWorkbook(t)
	wb.Series["comp.H2"] = []float64{20000, 20000, 20000, 20000, 20000, 20000}

	ms, err := Aggregate(wb)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if ms.Hydrogen.Utilization != 1 {
		t.Errorf("Expected utilization capped at 1, got %f", ms.Hydrogen.Utilization)
	}
	if ms.Hydrogen.Deficit != 0 {
		t.Errorf("Expected no deficit, got %f", ms.Hydrogen.Deficit)
	}
}

func TestAggregateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(wb *models.SourceWorkbook)
		wantErr error
		key     string
	}{
		{
			name:    "zero molecular weight",
			mutate:  func(wb *models.SourceWorkbook) { wb.Values["mw.CO"] = 0 },
			wantErr: ErrDivideByZero,
			key:     "mw.CO",
		},
		{
			name:    "zero ethane need",
			mutate:  func(wb *models.SourceWorkbook) { wb.Values["calc3.need_max"] = 0 },
			wantErr: ErrDivideByZero,
			key:     "calc3.need_max",
		},
		{
			name:    "negative price",
			mutate:  func(wb *models.SourceWorkbook) { wb.Values["price.LPG"] = -729 },
			wantErr: ErrInvalidFactor,
			key:     "price.LPG",
		},
		{
			name:    "recovery above one",
			mutate:  func(wb *models.SourceWorkbook) { wb.Values["calc1.lpg_recovery"] = 1.2 },
			wantErr: ErrInvalidFactor,
			key:     "calc1.lpg_recovery",
		},
		{
			name:    "yield above stoichiometric limit",
			mutate:  func(wb *models.SourceWorkbook) { wb.Values["calc6.propylene_yield"] = 0.5 },
			wantErr: ErrInvalidFactor,
			key:     "calc6.propylene_yield",
		},
		{
			name:    "negative composition",
			mutate:  func(wb *models.SourceWorkbook) { wb.Series["comp.C3"][1] = -1 },
			wantErr: ErrInvalidFactor,
			key:     "comp.C3",
		},
		{
			name: "no carbon oxides",
			mutate: func(wb *models.SourceWorkbook) {
				wb.Series["comp.CO"] = make([]float64, 6)
				wb.Series["comp.CO2"] = make([]float64, 6)
			},
			wantErr: ErrDivideByZero,
			key:     "comp.CO",
		},
		{
			name:    "missing value",
			mutate:  func(wb *models.SourceWorkbook) { delete(wb.Values, "lhv.H2") },
			wantErr: ErrMissingInput,
			key:     "lhv.H2",
		},
	}

	for _, tt := range tests {
		wb := referenceWorkbook(t)
		tt.mutate(wb)

		_, err := Aggregate(wb)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
			continue
		}
		var factorErr *FactorError
		if !errors.As(err, &factorErr) {
			t.Errorf("%s: expected *FactorError, got %T", tt.name, err)
			continue
		}
		if factorErr.Key != tt.key {
			t.Errorf("%s: expected key %s, got %s", tt.name, tt.key, factorErr.Key)
		}
	}
}

func TestAggregateSeriesLengthMismatch(t *testing.T) {
	wb := referenceWorkbook(t)
	wb.Series["streams.flow_kgh"] = []float64{1, 2, 3}

	_, err := Aggregate(wb)
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("Expected ErrMissingInput, got %v", err)
	}
}

func TestAggregateNil(t *testing.T) {
	if _, err := Aggregate(nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("Expected ErrMissingInput, got %v", err)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	wb := referenceWorkbook(t)
	a, err := Aggregate(wb)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	b, err := Aggregate(wb)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(a.Metrics) != len(b.Metrics) {
		t.Fatalf("Metric count differs: %d vs %d", len(a.Metrics), len(b.Metrics))
	}
	for i := range a.Metrics {
		if a.Metrics[i] != b.Metrics[i] {
			t.Errorf("Metric %d differs: %+v vs %+v", i, a.Metrics[i], b.Metrics[i])
		}
	}
}
