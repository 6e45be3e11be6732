// Package deck produces a PPTX executive briefing from the computed metrics.
package deck

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// Slide is one briefing slide: a title, an optional headline figure and
// a list of label/value lines.
type Slide struct {
	Title    string
	Headline string
	Lines    []Line
	Note     string
}

// Line is one row of a slide body. Color is a hex color; empty uses the
// default text color.
type Line struct {
	Label string
	Value string
	Color string
}

// Outline derives the briefing slides from ms.
func Outline(ms *models.MetricSet) ([]Slide, error) {
	if ms == nil || len(ms.Products) == 0 {
		return nil, charts.ErrEmptyMetrics
	}
	title := ms.Title.EN
	if title == "" {
		title = "Integration Briefing"
	}

	return []Slide{
		{
			Title:    title,
			Headline: metrics.FormatMillions(ms.TotalNet, 0) + " Million/Year Net Value",
			Note:     ms.Subtitle.EN,
		},
		{
			Title: "Executive Summary",
			Lines: []Line{
				{"Total Annual Value", metrics.FormatMillions(ms.TotalNet, 0), charts.ColorPrimary},
				{"Phase 1+2: Gas Recovery", metrics.FormatMillions(ms.Phase12.Net, 0), charts.ColorSuccess},
				{"Phase 3+4: Methanol & MTO", metrics.FormatMillions(ms.Phase34.Net, 0), charts.ColorAccent},
			},
		},
		{
			Title: "Annual Product Values",
			Lines: lo.Map(ms.Products, func(p models.ProductLine, _ int) Line {
				return Line{
					Label: p.Name.EN,
					Value: fmt.Sprintf("%s  (%s t/y)", metrics.FormatMillions(p.Value, 1), metrics.FormatQuantity(p.Quantity)),
				}
			}),
			Note: fmt.Sprintf("Natural gas makeup cost of %s/year deducted to arrive at net value of %s",
				metrics.FormatMillions(ms.NGMakeupCost, 1), metrics.FormatMillions(ms.TotalNet, 0)),
		},
		{
			Title: "ETHYDCO C2 Feed Coverage",
			Lines: []Line{
				{"MIDOR C2 supply", metrics.FormatQuantity(ms.Coverage.Supply) + " t/y", ""},
				{"Coverage at minimum need", metrics.FormatPercent(ms.Coverage.AtMin, 1), coverageColor(ms.Coverage.AtMin)},
				{"Coverage at maximum need", metrics.FormatPercent(ms.Coverage.AtMax, 1), coverageColor(ms.Coverage.AtMax)},
			},
		},
		{
			Title: "Hydrogen Balance for Methanol",
			Lines: []Line{
				{"Available H2", metrics.FormatQuantity(ms.Hydrogen.Available) + " t/y", charts.ColorSuccess},
				{"Required H2", metrics.FormatQuantity(ms.Hydrogen.Required) + " t/y", charts.ColorPrimary},
				{"Deficit", metrics.FormatQuantity(ms.Hydrogen.Deficit) + " t/y", charts.ColorDanger},
				{"Utilization", metrics.FormatPercent(ms.Hydrogen.Utilization, 0), ""},
			},
		},
		{
			Title: "Financial Summary",
			Lines: []Line{
				{"Phase 1+2 gross", metrics.FormatMoney(ms.Phase12.Gross), ""},
				{"NG makeup cost", "-" + metrics.FormatMoney(ms.NGMakeupCost), charts.ColorDanger},
				{"Phase 1+2 net", metrics.FormatMoney(ms.Phase12.Net), ""},
				{"Phase 3+4 net", metrics.FormatMoney(ms.Phase34.Net), ""},
				{"Total net value", metrics.FormatMoney(ms.TotalNet), charts.ColorSuccess},
			},
		},
	}, nil
}

func coverageColor(ratio float64) string {
	switch {
	case ratio >= 0.75:
		return charts.ColorSuccess
	case ratio >= 0.5:
		return charts.ColorAccent
	default:
		return charts.ColorDanger
	}
}
