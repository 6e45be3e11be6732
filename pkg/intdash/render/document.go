// Package render assembles the report document and renders it as a single
// self-contained bilingual HTML page.
package render

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// ErrMissingChart is returned when a widget references a chart that was not built.
var ErrMissingChart = errors.New("chart not found")

// Section IDs in tab order.
const (
	SectionOverview  = "overview"
	SectionFinancial = "financial"
	SectionProcess   = "process"
	SectionDetailed  = "detailed"
)

// DefaultPlotlyURL is the chart library loaded when no local bundle is inlined.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.27.0.min.js"

// Options controls rendering.
type Options struct {
	// PlotlyJS is a chart library bundle to inline. Empty loads PlotlyURL.
	PlotlyJS []byte
	// PlotlyURL is the script URL used when PlotlyJS is empty.
	PlotlyURL string
	// Stamp is appended to the footer (e.g. a date). Empty keeps the output
	// identical across runs.
	Stamp string
	// Fallbacks embeds static SVG renderings of bar charts.
	Fallbacks bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		PlotlyURL: DefaultPlotlyURL,
		Fallbacks: true,
	}
}

// Build assembles the four report sections from the metrics and charts.
func Build(ms *models.MetricSet, specs []models.ChartSpec, opts Options) (*models.ReportDocument, error) {
	if ms == nil {
		return nil, charts.ErrEmptyMetrics
	}
	byID := lo.KeyBy(specs, func(s models.ChartSpec) string { return s.ID })

	cell := func(full bool, ids ...string) (models.ChartCell, error) {
		c := models.ChartCell{ChartIDs: ids, Full: full}
		for i, id := range ids {
			spec, ok := byID[id]
			if !ok {
				return c, fmt.Errorf("%w: %s", ErrMissingChart, id)
			}
			if i == 0 {
				c.Title = spec.Title
			}
			if len(ids) > 1 && spec.Gauge != nil {
				c.Captions = append(c.Captions, spec.Gauge.Label)
			}
		}
		if opts.Fallbacks && len(ids) == 1 && charts.HasFallback(byID[ids[0]].Kind) {
			svg, err := charts.StaticSVG(byID[ids[0]])
			if err != nil {
				return c, err
			}
			c.Fallback = svg
		}
		return c, nil
	}

	var errs []error
	grid := func(cells ...[]string) models.Widget {
		w := models.Widget{Kind: models.WidgetChartGrid}
		for _, ids := range cells {
			full := len(cells) == 1 && len(ids) == 1
			c, err := cell(full, ids...)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			w.Charts = append(w.Charts, c)
		}
		return w
	}
	ids := func(id ...string) []string { return id }

	title := ms.Title
	if title.EN == "" {
		title = textDefaultTitle
	}
	subtitle := ms.Subtitle
	if subtitle.EN == "" {
		subtitle = textDefaultSubtitle
	}

	doc := &models.ReportDocument{
		Title:    title,
		Subtitle: subtitle,
		Footer:   footer(title, opts.Stamp),
		Palette:  charts.Palette,
		Fonts:    charts.Fonts,
		Sections: []models.Section{
			{
				ID:    SectionOverview,
				Title: textOverview,
				Widgets: []models.Widget{
					kpiRow(ms),
					grid(ids(charts.IDDonut), ids(charts.IDProducts)),
				},
			},
			{
				ID:    SectionFinancial,
				Title: textFinancial,
				Widgets: []models.Widget{
					grid(ids(charts.IDCostBenefit)),
					financialTable(ms),
				},
			},
			{
				ID:    SectionProcess,
				Title: textProcess,
				Widgets: []models.Widget{
					grid(ids(charts.IDSankey)),
					grid(ids(charts.IDGaugeMin, charts.IDGaugeMax), ids(charts.IDHydrogen)),
					grid(ids(charts.IDHeatmap), ids(charts.IDMethanol)),
				},
			},
			{
				ID:    SectionDetailed,
				Title: textDetailed,
				Widgets: []models.Widget{
					streamCards(ms),
					priceTable(ms),
				},
			},
		},
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc, nil
}

func footer(title models.Text, stamp string) models.Text {
	f := models.T(title.EN+" Analysis", "تحليل "+title.AR)
	if stamp != "" {
		f.EN += textGenerated.EN + stamp
		f.AR += textGenerated.AR + stamp
	}
	return f
}

func kpiRow(ms *models.MetricSet) models.Widget {
	return models.Widget{
		Kind: models.WidgetKPIRow,
		KPIs: []models.KPICard{
			{
				Label:    textTotalValue,
				Value:    metrics.FormatMillions(ms.TotalNet, 0),
				Sublabel: textTotalSub,
				Variant:  "main",
			},
			{
				Label:    textPhase12,
				Value:    metrics.FormatMillions(ms.Phase12.Net, 0),
				Sublabel: textPhase12Sub,
				Icon:     "⚡",
			},
			{
				Label:    textPhase34,
				Value:    metrics.FormatMillions(ms.Phase34.Net, 0),
				Sublabel: textPhase34Sub,
				Icon:     "🧪",
				Variant:  "accent",
			},
		},
	}
}

func financialTable(ms *models.MetricSet) models.Widget {
	rows := lo.Map(ms.Products, func(p models.ProductLine, _ int) models.TableRow {
		return models.TableRow{Cells: []models.TableCell{
			{Text: p.Name},
			{Text: models.Same(metrics.FormatQuantity(p.Quantity))},
			{Text: models.Same(metrics.FormatMoney(p.Value)), Class: "value"},
		}}
	})
	rows = append(rows,
		models.TableRow{Variant: "cost", Cells: []models.TableCell{
			{Text: textNGMakeup, Strong: true},
			{Text: models.Same("-")},
			{Text: models.Same("-" + metrics.FormatMoney(ms.NGMakeupCost)), Class: "cost"},
		}},
		models.TableRow{Variant: "total", Cells: []models.TableCell{
			{Text: textTotalNet, Strong: true},
			{Text: models.Same("-")},
			{Text: models.Same(metrics.FormatMoney(ms.TotalNet)), Class: "value", Strong: true},
		}},
	)
	return models.Widget{
		Kind:  models.WidgetTable,
		Title: textFinSummary,
		Table: &models.Table{
			Header: []models.Text{textProduct, textQuantityTY, textValueUSDY},
			Rows:   rows,
		},
	}
}

func streamCards(ms *models.MetricSet) models.Widget {
	cards := lo.Map(ms.Streams, func(s models.Stream, _ int) models.DataCard {
		return models.DataCard{
			Header: s.Name,
			Value:  metrics.FormatThousands(s.FlowTY, 1),
			Unit:   string(models.UnitTonPerYear),
			Rows: lo.Map(ms.Components, func(c string, _ int) models.DataRow {
				return models.DataRow{Label: c, Value: metrics.FormatQuantity(s.Components[c]) + " t/y"}
			}),
		}
	})
	return models.Widget{
		Kind:  models.WidgetStreamCards,
		Title: textStreamDetails,
		Cards: cards,
	}
}

func priceTable(ms *models.MetricSet) models.Widget {
	return models.Widget{
		Kind:  models.WidgetTable,
		Title: textPriceTable,
		Table: &models.Table{
			Header: []models.Text{textProduct, textPriceUSDT},
			Rows: lo.Map(ms.Prices, func(p models.PriceLine, _ int) models.TableRow {
				return models.TableRow{Cells: []models.TableCell{
					{Text: models.Same(p.Product)},
					{Text: models.Same(metrics.FormatMoney(p.Price))},
				}}
			}),
		},
	}
}
