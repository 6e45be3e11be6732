package charts

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// ErrUnknownKind is returned for a chart kind with no renderer.
var ErrUnknownKind = errors.New("unknown chart kind")

// Figure is a Plotly figure: {"data": [...], "layout": {...}}.
type Figure map[string]any

type renderer func(spec models.ChartSpec, lang models.Lang, layout map[string]any) ([]any, map[string]any)

var renderers = map[models.ChartKind]renderer{
	models.ChartDonut: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return donutFigure(s.Donut, lang, l)
	},
	models.ChartBar: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return barFigure(s.Bar, lang, l)
	},
	models.ChartGroupedBar: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return groupedBarFigure(s.GroupedBar, lang, l)
	},
	models.ChartSankey: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return sankeyFigure(s.Sankey, lang, l)
	},
	models.ChartGauge: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return gaugeFigure(s.Gauge, lang, l)
	},
	models.ChartHeatmap: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return heatmapFigure(s.Heatmap, lang, l)
	},
	models.ChartPie: func(s models.ChartSpec, lang models.Lang, l map[string]any) ([]any, map[string]any) {
		return pieFigure(s.Pie, lang, l)
	},
}

// NewFigure builds the Plotly figure of spec with every label in lang.
func NewFigure(spec models.ChartSpec, lang models.Lang) (Figure, error) {
	render, ok := renderers[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	data, layout := render(spec, lang, baseLayout(spec.Height, lang))
	return Figure{"data": data, "layout": layout}, nil
}

// Figures builds the figures of every spec for lang, keyed by chart ID.
func Figures(specs []models.ChartSpec, lang models.Lang) (map[string]Figure, error) {
	out := make(map[string]Figure, len(specs))
	for _, spec := range specs {
		fig, err := NewFigure(spec, lang)
		if err != nil {
			return nil, fmt.Errorf("chart %s (%s): %w", spec.ID, lang, err)
		}
		out[spec.ID] = fig
	}
	return out, nil
}

func font(lang models.Lang, size int) map[string]any {
	return map[string]any{"size": size, "family": Font(lang), "color": ColorLight}
}

func texts(labels []models.Text, lang models.Lang) []string {
	return lo.Map(labels, func(t models.Text, _ int) string { return t.In(lang) })
}

func baseLayout(height int, lang models.Lang) map[string]any {
	return map[string]any{
		"paper_bgcolor": "rgba(0,0,0,0)",
		"plot_bgcolor":  "rgba(0,0,0,0)",
		"height":        height,
		"autosize":      true,
		"font":          map[string]any{"family": Font(lang), "color": ColorLight},
	}
}

func margin(t, b, l, r int) map[string]any {
	return map[string]any{"t": t, "b": b, "l": l, "r": r}
}

func donutFigure(d *models.DonutData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	trace := map[string]any{
		"type":          "pie",
		"labels":        texts(d.Labels, lang),
		"values":        d.Values,
		"hole":          d.Hole,
		"marker":        map[string]any{"colors": d.Colors, "line": map[string]any{"color": "white", "width": 3}},
		"textinfo":      "percent",
		"textfont":      map[string]any{"size": 16, "color": "white", "family": Font(lang)},
		"hovertemplate": "<b>%{label}</b><br>$%{value:,.0f}<br>%{percent}<extra></extra>",
		"direction":     "clockwise",
		"sort":          false,
	}
	layout["showlegend"] = true
	layout["legend"] = map[string]any{
		"orientation": "h", "yanchor": "bottom", "y": -0.2, "xanchor": "center", "x": 0.5,
		"font": font(lang, 12),
	}
	layout["annotations"] = []any{map[string]any{
		"text": "<b>" + d.Center + "</b>", "x": 0.5, "y": 0.5, "showarrow": false,
		"font": font(lang, 28),
	}}
	layout["margin"] = margin(20, 70, 20, 20)
	return []any{trace}, layout
}

func barFigure(b *models.BarData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	categories := texts(b.Categories, lang)
	trace := map[string]any{
		"type":         "bar",
		"marker":       map[string]any{"color": b.Colors, "line": map[string]any{"width": 0}},
		"text":         b.Texts,
		"textposition": "outside",
		"textfont":     font(lang, 13),
	}
	axisTitle := map[string]any{"text": b.AxisTitle.In(lang), "font": font(lang, 12)}
	valueAxis := map[string]any{
		"title":     axisTitle,
		"tickfont":  font(lang, 11),
		"gridcolor": colorGrid,
		"showgrid":  true,
	}
	if top := lo.Max(b.Values); top > 0 {
		valueAxis["range"] = []float64{0, top * 1.35}
	}
	categoryAxis := map[string]any{"tickfont": font(lang, 11)}

	if b.Horizontal {
		trace["orientation"] = "h"
		trace["y"] = categories
		trace["x"] = b.Values
		trace["hovertemplate"] = "<b>%{y}</b><br>$%{x:.1f}M<extra></extra>"
		categoryAxis["autorange"] = "reversed"
		layout["xaxis"] = valueAxis
		layout["yaxis"] = categoryAxis
		layout["margin"] = margin(30, 60, 120, 70)
		layout["bargap"] = 0.35
	} else {
		trace["x"] = categories
		trace["y"] = b.Values
		trace["width"] = 0.6
		layout["xaxis"] = categoryAxis
		layout["yaxis"] = valueAxis
		layout["margin"] = margin(40, 30, 50, 20)
	}

	if note := b.Note.In(lang); note != "" {
		layout["annotations"] = []any{map[string]any{
			"text": "<b>" + note + "</b>", "xref": "paper", "yref": "paper",
			"x": 0.5, "y": 1.05, "showarrow": false,
			"font": map[string]any{"size": 14, "color": ColorPrimary, "family": Font(lang)},
		}}
	}
	return []any{trace}, layout
}

func groupedBarFigure(g *models.GroupedBarData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	categories := texts(g.Categories, lang)
	data := lo.Map(g.Series, func(s models.BarSeries, _ int) any {
		return map[string]any{
			"type":         "bar",
			"name":         s.Name.In(lang),
			"x":            categories,
			"y":            s.Values,
			"marker":       map[string]any{"color": s.Color},
			"text":         s.Texts,
			"textposition": "outside",
			"textfont":     font(lang, 12),
		}
	})
	layout["barmode"] = "group"
	layout["bargap"] = 0.25
	layout["legend"] = map[string]any{
		"orientation": "h", "yanchor": "bottom", "y": 1.08, "xanchor": "center", "x": 0.5,
		"font": font(lang, 11),
	}
	layout["xaxis"] = map[string]any{"tickfont": font(lang, 12)}
	layout["yaxis"] = map[string]any{
		"title":     map[string]any{"text": g.AxisTitle.In(lang), "font": font(lang, 11)},
		"tickfont":  font(lang, 10),
		"gridcolor": colorGrid,
	}
	layout["margin"] = margin(80, 40, 60, 20)
	return data, layout
}

func sankeyFigure(s *models.SankeyData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	trace := map[string]any{
		"type": "sankey",
		"node": map[string]any{
			"pad":       20,
			"thickness": 25,
			"line":      map[string]any{"color": "white", "width": 2},
			"label":     texts(s.Nodes, lang),
			"color":     s.NodeColors,
		},
		"link": map[string]any{
			"source": lo.Map(s.Links, func(l models.SankeyLink, _ int) int { return l.Source }),
			"target": lo.Map(s.Links, func(l models.SankeyLink, _ int) int { return l.Target }),
			"value":  lo.Map(s.Links, func(l models.SankeyLink, _ int) float64 { return l.Value }),
			"color":  colorLink,
		},
	}
	layout["font"] = font(lang, 12)
	layout["margin"] = margin(20, 20, 10, 10)
	return []any{trace}, layout
}

func gaugeFigure(g *models.GaugeData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	trace := map[string]any{
		"type":   "indicator",
		"mode":   "gauge+number",
		"value":  g.Value,
		"number": map[string]any{"suffix": g.Suffix, "font": font(lang, 36)},
		"gauge": map[string]any{
			"axis": map[string]any{
				"range": []float64{0, g.Max}, "tickwidth": 2, "tickcolor": ColorLight,
				"tickfont": font(lang, 10),
			},
			"bar":         map[string]any{"color": g.Color, "thickness": 0.8},
			"bgcolor":     "rgba(0,0,0,0.05)",
			"borderwidth": 0,
			"steps": lo.Map(g.Steps, func(s models.GaugeStep, _ int) any {
				return map[string]any{"range": []float64{s.From, s.To}, "color": s.Color}
			}),
		},
	}
	layout["margin"] = margin(20, 10, 20, 20)
	return []any{trace}, layout
}

func heatmapFigure(h *models.HeatmapData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	labels := lo.Map(h.Z, func(row []float64, _ int) []string {
		return lo.Map(row, func(v float64, _ int) string {
			if v <= 0 {
				return ""
			}
			return fmt.Sprintf("%.0f", v)
		})
	})
	trace := map[string]any{
		"type":          "heatmap",
		"z":             h.Z,
		"x":             texts(h.X, lang),
		"y":             h.Y,
		"colorscale":    h.Scale,
		"text":          labels,
		"texttemplate":  "%{text}",
		"textfont":      map[string]any{"size": 10, "color": "white"},
		"hovertemplate": "%{y} in %{x}: %{z:.1f}K t/y<extra></extra>",
		"colorbar": map[string]any{
			"title":    map[string]any{"text": h.UnitTitle.In(lang), "font": font(lang, 11)},
			"tickfont": font(lang, 10),
		},
	}
	layout["xaxis"] = map[string]any{"tickfont": font(lang, 10), "side": "bottom", "tickangle": -45}
	layout["yaxis"] = map[string]any{"tickfont": font(lang, 10), "autorange": "reversed"}
	layout["margin"] = margin(20, 60, 50, 80)
	return []any{trace}, layout
}

func pieFigure(p *models.PieData, lang models.Lang, layout map[string]any) ([]any, map[string]any) {
	trace := map[string]any{
		"type":          "pie",
		"labels":        texts(p.Labels, lang),
		"values":        p.Values,
		"hole":          p.Hole,
		"marker":        map[string]any{"colors": p.Colors, "line": map[string]any{"color": "white", "width": 2}},
		"textinfo":      "percent+label",
		"textposition":  "outside",
		"textfont":      font(lang, 12),
		"hovertemplate": "<b>%{label}</b><br>%{value:,.0f} t/y<br>%{percent}<extra></extra>",
	}
	layout["showlegend"] = false
	layout["margin"] = margin(30, 30, 20, 20)
	return []any{trace}, layout
}
