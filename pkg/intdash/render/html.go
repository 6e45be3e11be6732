package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// FontsURL loads the Latin and Arabic font families.
const FontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;800&family=Cairo:wght@400;600;700&display=swap"

//go:embed templates
var assets embed.FS

var page = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"svg": func(s string) template.HTML { return template.HTML(s) },
	"chartID": func(id string, lang models.Lang) string {
		return "chart-" + id + "-" + string(lang)
	},
	"langs": func() []models.Lang { return models.Langs },
}).ParseFS(assets, "templates/report.html.tmpl"))

type pageData struct {
	Doc       *models.ReportDocument
	RootCSS   template.CSS
	Style     template.CSS
	Script    template.JS
	Figures   template.JS
	PlotlyJS  template.JS
	PlotlyURL string
	FontsURL  string
}

// HTML renders doc as a complete HTML page. Both language variants and the
// chart figures for both languages are embedded; the page toggles between
// them client side.
func HTML(doc *models.ReportDocument, specs []models.ChartSpec, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: no document")
	}

	figures := make(map[models.Lang]map[string]charts.Figure, len(models.Langs))
	for _, lang := range models.Langs {
		figs, err := charts.Figures(specs, lang)
		if err != nil {
			return nil, err
		}
		figures[lang] = figs
	}
	for _, section := range doc.Sections {
		for _, w := range section.Widgets {
			for _, c := range w.Charts {
				for _, id := range c.ChartIDs {
					if _, ok := figures[models.LangEN][id]; !ok {
						return nil, fmt.Errorf("%w: %s", ErrMissingChart, id)
					}
				}
			}
		}
	}

	// Map keys marshal sorted, so the payload is stable.
	figJSON, err := json.Marshal(figures)
	if err != nil {
		return nil, fmt.Errorf("encode figures: %w", err)
	}

	style, err := assets.ReadFile("templates/style.css")
	if err != nil {
		return nil, err
	}
	script, err := assets.ReadFile("templates/app.js")
	if err != nil {
		return nil, err
	}

	data := pageData{
		Doc:      doc,
		RootCSS:  rootCSS(doc),
		Style:    template.CSS(style),
		Script:   template.JS(script),
		Figures:  template.JS(figJSON),
		FontsURL: FontsURL,
	}
	if len(opts.PlotlyJS) > 0 {
		data.PlotlyJS = template.JS(opts.PlotlyJS)
	} else {
		data.PlotlyURL = opts.PlotlyURL
		if data.PlotlyURL == "" {
			data.PlotlyURL = DefaultPlotlyURL
		}
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}

// rootCSS declares the palette and fonts as CSS custom properties.
func rootCSS(doc *models.ReportDocument) template.CSS {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range doc.Palette {
		fmt.Fprintf(&b, "    --%s: %s;\n", p.Name, p.Value)
	}
	for _, lang := range models.Langs {
		if font, ok := doc.Fonts[lang]; ok {
			fmt.Fprintf(&b, "    --font-%s: '%s';\n", lang, font)
		}
	}
	b.WriteString("}\n")
	return template.CSS(b.String())
}
