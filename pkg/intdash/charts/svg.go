package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoFallback is returned for chart kinds without a static rendering.
var ErrNoFallback = errors.New("no static rendering for chart kind")

// HasFallback reports whether StaticSVG can render kind.
func HasFallback(kind models.ChartKind) bool {
	return kind == models.ChartBar || kind == models.ChartGroupedBar
}

// StaticSVG renders a bar or grouped-bar chart as an inline <svg> element
// with English labels. It is shown when the chart library is unavailable.
func StaticSVG(spec models.ChartSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = spec.Title.EN
	p.Title.TextStyle.Font.Size = vg.Points(12)

	var err error
	switch spec.Kind {
	case models.ChartBar:
		err = addBars(p, spec.Bar)
	case models.ChartGroupedBar:
		err = addGroupedBars(p, spec.GroupedBar)
	default:
		return "", fmt.Errorf("%w: %s", ErrNoFallback, spec.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", spec.ID, err)
	}
	p.Add(plotter.NewGrid())

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", err
	}

	// Drop the XML prolog so the element can be inlined in HTML.
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out, nil
}

// addBars draws one bar chart per distinct color so each bar keeps its color.
func addBars(p *plot.Plot, b *models.BarData) error {
	labels := texts(b.Categories, models.LangEN)
	colors := lo.Uniq(b.Colors)
	if len(colors) == 0 {
		colors = []string{ColorPrimary}
	}

	for _, c := range colors {
		values := make(plotter.Values, len(b.Values))
		for i, v := range b.Values {
			if len(b.Colors) == 0 || b.Colors[i] == c {
				values[i] = v
			}
		}
		bars, err := plotter.NewBarChart(values, vg.Points(16))
		if err != nil {
			return err
		}
		bars.Horizontal = b.Horizontal
		bars.Color = parseColor(c)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
	}

	if b.Horizontal {
		p.NominalY(labels...)
		p.X.Label.Text = b.AxisTitle.EN
		p.X.Min = 0
	} else {
		p.NominalX(labels...)
		p.Y.Label.Text = b.AxisTitle.EN
		p.Y.Min = 0
	}

	if len(b.Texts) == len(b.Values) {
		xys := make([]plotter.XY, len(b.Values))
		for i, v := range b.Values {
			if b.Horizontal {
				xys[i] = plotter.XY{X: v, Y: float64(i)}
			} else {
				xys[i] = plotter.XY{X: float64(i), Y: v}
			}
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: b.Texts})
		if err != nil {
			return err
		}
		p.Add(labels)
	}
	return nil
}

func addGroupedBars(p *plot.Plot, g *models.GroupedBarData) error {
	width := vg.Points(14)
	n := len(g.Series)
	for i, s := range g.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return err
		}
		bars.Color = parseColor(s.Color)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = width * vg.Length(float64(i)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Name.EN, bars)
	}
	p.Legend.Top = true
	p.NominalX(texts(g.Categories, models.LangEN)...)
	p.Y.Label.Text = g.AxisTitle.EN
	p.Y.Min = 0
	return nil
}

// parseColor reads "#rrggbb"; anything else falls back to the primary color.
func parseColor(hex string) color.Color {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return parseColor(ColorPrimary)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
