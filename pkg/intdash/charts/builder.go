// Package charts turns a MetricSet into declarative chart specifications
// and renders them as Plotly figures or static SVG.
package charts

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// ErrEmptyMetrics is returned when there is nothing to chart.
var ErrEmptyMetrics = errors.New("metric set is empty")

// Chart IDs in build order.
const (
	IDDonut       = "donut"
	IDProducts    = "products"
	IDCostBenefit = "costbenefit"
	IDSankey      = "sankey"
	IDGaugeMin    = "gauge-min"
	IDGaugeMax    = "gauge-max"
	IDHydrogen    = "h2"
	IDHeatmap     = "heatmap"
	IDMethanol    = "methanol"
)

// Order is the fixed chart order returned by Build.
var Order = []string{
	IDDonut, IDProducts, IDCostBenefit, IDSankey,
	IDGaugeMin, IDGaugeMax, IDHydrogen, IDHeatmap, IDMethanol,
}

// productOrder is the category order of the product chart.
var productOrder = []string{
	metrics.ProductLPG,
	metrics.ProductNaphtha,
	metrics.ProductHydrogen,
	metrics.ProductEthane,
	metrics.ProductMethanol,
	metrics.ProductEthylene,
	metrics.ProductPropylene,
}

var productColors = map[string]string{
	metrics.ProductLPG:       ColorSecondary,
	metrics.ProductNaphtha:   ColorSecondary,
	metrics.ProductHydrogen:  ColorPrimary,
	metrics.ProductEthane:    ColorPrimary,
	metrics.ProductMethanol:  ColorAccent,
	metrics.ProductEthylene:  ColorAccent,
	metrics.ProductPropylene: ColorAccent,
}

var coverageSteps = []models.GaugeStep{
	{From: 0, To: 50, Color: "rgba(239,68,68,0.2)"},
	{From: 50, To: 75, Color: "rgba(245,158,11,0.2)"},
	{From: 75, To: 100, Color: "rgba(34,197,94,0.2)"},
}

// Build returns every chart of the report in Order.
func Build(ms *models.MetricSet) ([]models.ChartSpec, error) {
	if ms == nil || len(ms.Products) == 0 || len(ms.Streams) == 0 {
		return nil, ErrEmptyMetrics
	}
	for _, key := range productOrder {
		if _, ok := ms.Product(key); !ok {
			return nil, fmt.Errorf("%w: no %s product", ErrEmptyMetrics, key)
		}
	}

	specs := []models.ChartSpec{
		phaseDonut(ms),
		productBars(ms),
		costBenefit(ms),
		flowSankey(ms),
		coverageGauge(IDGaugeMin, ms.Coverage.AtMin, models.T("Min Demand Coverage", "تغطية الحد الأدنى")),
		coverageGauge(IDGaugeMax, ms.Coverage.AtMax, models.T("Max Demand Coverage", "تغطية الحد الأقصى")),
		hydrogenBalance(ms),
		componentHeatmap(ms),
		methanolAllocation(ms),
	}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return specs, nil
}

func phaseDonut(ms *models.MetricSet) models.ChartSpec {
	values := []float64{ms.Phase12.Net, ms.Phase34.Net}
	return models.ChartSpec{
		ID:     IDDonut,
		Kind:   models.ChartDonut,
		Title:  models.T("Value Distribution", "توزيع القيمة"),
		Height: 320,
		Donut: &models.DonutData{
			Labels: []models.Text{
				models.T("Phase 1+2: Gas Recovery", "المرحلة 1+2: استرداد الغاز"),
				models.T("Phase 3+4: Methanol & MTO", "المرحلة 3+4: الميثانول"),
			},
			Values: values,
			Colors: []string{ColorSecondary, ColorAccent},
			Hole:   0.65,
			Center: metrics.FormatMillions(lo.Sum(values), 0),
		},
	}
}

func productBars(ms *models.MetricSet) models.ChartSpec {
	lines := lo.Map(productOrder, func(key string, _ int) models.ProductLine {
		p, _ := ms.Product(key)
		return p
	})
	return models.ChartSpec{
		ID:     IDProducts,
		Kind:   models.ChartBar,
		Title:  models.T("Product Values", "قيم المنتجات"),
		Height: 400,
		Bar: &models.BarData{
			Categories: lo.Map(lines, func(p models.ProductLine, _ int) models.Text { return p.Name }),
			Values:     lo.Map(lines, func(p models.ProductLine, _ int) float64 { return p.Value / 1e6 }),
			Colors:     lo.Map(lines, func(p models.ProductLine, _ int) string { return productColors[p.Key] }),
			Texts:      lo.Map(lines, func(p models.ProductLine, _ int) string { return metrics.FormatMillions(p.Value, 1) }),
			Horizontal: true,
			AxisTitle:  models.T("Value ($ Million/year)", "القيمة (مليون دولار/سنة)"),
		},
	}
}

func costBenefit(ms *models.MetricSet) models.ChartSpec {
	series := func(name models.Text, color string, a, b float64) models.BarSeries {
		return models.BarSeries{
			Name:   name,
			Values: []float64{a / 1e6, b / 1e6},
			Texts:  []string{metrics.FormatMillions(a, 0), metrics.FormatMillions(b, 0)},
			Color:  color,
		}
	}
	return models.ChartSpec{
		ID:     IDCostBenefit,
		Kind:   models.ChartGroupedBar,
		Title:  models.T("Cost-Benefit Analysis", "تحليل التكلفة والعائد"),
		Height: 400,
		GroupedBar: &models.GroupedBarData{
			Categories: []models.Text{
				models.T("Phase 1+2", "المرحلة 1+2"),
				models.T("Phase 3+4", "المرحلة 3+4"),
			},
			Series: []models.BarSeries{
				series(models.T("Gross Value", "القيمة الإجمالية"), ColorSuccess, ms.Phase12.Gross, ms.Phase34.Gross),
				series(models.T("NG Makeup Cost", "تكلفة الغاز الطبيعي"), ColorDanger, ms.Phase12.Deductions, ms.Phase34.Deductions),
				series(models.T("Net Value", "القيمة الصافية"), ColorPrimary, ms.Phase12.Net, ms.Phase34.Net),
			},
			AxisTitle: models.T("Value ($ Million)", "القيمة (مليون $)"),
		},
	}
}

func coverageGauge(id string, ratio float64, label models.Text) models.ChartSpec {
	value := ratio * 100
	return models.ChartSpec{
		ID:     id,
		Kind:   models.ChartGauge,
		Title:  models.T("ETHYDCO C2 Feed Coverage", "تغطية تغذية الإيثان لإيثيدكو"),
		Height: 200,
		Gauge: &models.GaugeData{
			Value:  value,
			Max:    math.Max(100, math.Ceil(value)),
			Suffix: "%",
			Color:  ColorSecondary,
			Steps:  coverageSteps,
			Label:  label,
		},
	}
}

func hydrogenBalance(ms *models.MetricSet) models.ChartSpec {
	raw := []float64{ms.Hydrogen.Available, ms.Hydrogen.Required, ms.Hydrogen.Deficit}
	utilization := metrics.FormatPercent(ms.Hydrogen.Utilization, 0)
	return models.ChartSpec{
		ID:     IDHydrogen,
		Kind:   models.ChartBar,
		Title:  models.T("H2 Balance for Methanol", "توازن الهيدروجين للميثانول"),
		Height: 300,
		Bar: &models.BarData{
			Categories: []models.Text{
				models.T("H2 Available", "H2 المتوفر"),
				models.T("H2 Required", "H2 المطلوب"),
				models.T("Deficit", "العجز"),
			},
			Values:    lo.Map(raw, func(v float64, _ int) float64 { return v / 1000 }),
			Colors:    []string{ColorSuccess, ColorPrimary, ColorDanger},
			Texts:     lo.Map(raw, func(v float64, _ int) string { return metrics.FormatThousands(v, 1) }),
			AxisTitle: models.T("Quantity (kt/year)", "الكمية (ألف طن/سنة)"),
			Note:      models.T("Utilization: "+utilization, "نسبة الاستخدام: "+utilization),
		},
	}
}

func componentHeatmap(ms *models.MetricSet) models.ChartSpec {
	z := lo.Map(ms.Components, func(c string, _ int) []float64 {
		return lo.Map(ms.Streams, func(s models.Stream, _ int) float64 { return s.Components[c] / 1000 })
	})
	return models.ChartSpec{
		ID:     IDHeatmap,
		Kind:   models.ChartHeatmap,
		Title:  models.T("Stream Component Distribution", "توزيع مكونات التيارات"),
		Height: 350,
		Heatmap: &models.HeatmapData{
			X:         lo.Map(ms.Streams, func(s models.Stream, _ int) models.Text { return s.Name }),
			Y:         append([]string(nil), ms.Components...),
			Z:         z,
			Scale:     "Viridis",
			UnitTitle: models.T("kt/y", "ألف طن/سنة"),
		},
	}
}

func methanolAllocation(ms *models.MetricSet) models.ChartSpec {
	return models.ChartSpec{
		ID:     IDMethanol,
		Kind:   models.ChartPie,
		Title:  models.T("Methanol Allocation", "توزيع الميثانول"),
		Height: 300,
		Pie: &models.PieData{
			Labels: []models.Text{
				models.T("Gasoline Blending", "مزج البنزين"),
				models.T("MTO Conversion", "تحويل MTO"),
			},
			Values: []float64{ms.Methanol.Gasoline, ms.Methanol.MTOFeed},
			Colors: []string{ColorSecondary, ColorAccent},
			Hole:   0.5,
		},
	}
}
