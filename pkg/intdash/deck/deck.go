package deck

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/drawing"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// Build renders the briefing slides into a new presentation.
func Build(ms *models.MetricSet) (*presentation.Presentation, error) {
	slides, err := Outline(ms)
	if err != nil {
		return nil, err
	}

	ppt := presentation.New()
	for i, s := range slides {
		if i == 0 {
			addTitleSlide(ppt, s)
			continue
		}
		addBodySlide(ppt, s)
	}
	if err := ppt.Validate(); err != nil {
		return nil, fmt.Errorf("validate presentation: %w", err)
	}
	return ppt, nil
}

// Encode renders the briefing and returns the PPTX bytes.
func Encode(ms *models.MetricSet) ([]byte, error) {
	ppt, err := Build(ms)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ppt.Save(&buf); err != nil {
		return nil, fmt.Errorf("save presentation: %w", err)
	}
	return buf.Bytes(), nil
}

func addTitleSlide(ppt *presentation.Presentation, s Slide) {
	slide := ppt.AddSlide()

	title := slide.AddTextBox()
	title.Properties().SetPosition(0.5*measurement.Inch, 2.5*measurement.Inch)
	title.Properties().SetSize(9*measurement.Inch, 1.5*measurement.Inch)
	text(title.AddParagraph(), s.Title, 44, charts.ColorDark, true)

	headline := slide.AddTextBox()
	headline.Properties().SetPosition(0.5*measurement.Inch, 4*measurement.Inch)
	headline.Properties().SetSize(9*measurement.Inch, 0.8*measurement.Inch)
	text(headline.AddParagraph(), s.Headline, 32, charts.ColorAccent, true)

	if s.Note != "" {
		note := slide.AddTextBox()
		note.Properties().SetPosition(0.5*measurement.Inch, 5*measurement.Inch)
		note.Properties().SetSize(9*measurement.Inch, 0.6*measurement.Inch)
		text(note.AddParagraph(), s.Note, 16, charts.ColorGray, false)
	}
}

func addBodySlide(ppt *presentation.Presentation, s Slide) {
	slide := ppt.AddSlide()

	title := slide.AddTextBox()
	title.Properties().SetPosition(0.5*measurement.Inch, 0.3*measurement.Inch)
	title.Properties().SetSize(9*measurement.Inch, 0.8*measurement.Inch)
	text(title.AddParagraph(), s.Title, 32, charts.ColorPrimary, true)

	body := slide.AddTextBox()
	body.Properties().SetPosition(0.7*measurement.Inch, 1.4*measurement.Inch)
	body.Properties().SetSize(8.6*measurement.Inch, 4.6*measurement.Inch)
	for _, l := range s.Lines {
		p := body.AddParagraph()
		text(p, l.Label+":  ", 20, charts.ColorDark, false)
		c := l.Color
		if c == "" {
			c = charts.ColorDarkLight
		}
		text(p, l.Value, 20, c, true)
	}

	if s.Note != "" {
		note := slide.AddTextBox()
		note.Properties().SetPosition(0.5*measurement.Inch, 6.4*measurement.Inch)
		note.Properties().SetSize(9*measurement.Inch, 0.6*measurement.Inch)
		p := note.AddParagraph()
		p.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
		text(p, s.Note, 12, charts.ColorGray, false)
	}
}

// text appends a styled run to p.
func text(p drawing.Paragraph, s string, size float64, hex string, bold bool) {
	r := p.AddRun()
	r.SetText(s)
	r.Properties().SetSize(measurement.Distance(size) * measurement.Point)
	r.Properties().SetBold(bold)
	r.Properties().SetSolidFill(rgb(hex))
}

// rgb converts "#rrggbb" to a color, falling back to black.
func rgb(hex string) color.Color {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return color.Black
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
