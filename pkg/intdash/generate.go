package intdash

import (
	"math"
	"os"

	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/deck"
	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
	"github.com/ukaji3/intdash-go/pkg/intdash/output"
	"github.com/ukaji3/intdash-go/pkg/intdash/parser"
	"github.com/ukaji3/intdash-go/pkg/intdash/render"
)

// statedTolerance is the relative difference between the workbook's stated
// total and the computed total above which a warning is logged.
const statedTolerance = 0.005

// Result describes a completed generation run.
type Result struct {
	Output  string
	Size    int
	Metrics *models.MetricSet
}

// Generate reads the workbook, renders the report and writes it to
// opts.Output. Nothing is written unless every earlier stage succeeds.
func Generate(opts Options) (*Result, error) {
	ms, err := Load(opts)
	if err != nil {
		return nil, err
	}
	html, err := Report(ms, opts)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	log.Info("writing output", "path", opts.Output, "bytes", len(html))
	if err := output.WriteFile(opts.Output, html); err != nil {
		return nil, classify("write", err, ErrWriteError)
	}
	return &Result{Output: opts.Output, Size: len(html), Metrics: ms}, nil
}

// Load reads the workbook and computes its metrics.
func Load(opts Options) (*models.MetricSet, error) {
	log := opts.logger()

	l := layout.Default()
	if opts.Layout != "" {
		log.Debug("loading layout", "path", opts.Layout)
		var err error
		if l, err = layout.Load(opts.Layout); err != nil {
			return nil, classify("load", err, ErrSchemaMismatch)
		}
	}

	log.Info("loading workbook", "path", opts.Input)
	wb, err := parser.ReadWorkbook(opts.Input, l)
	if err != nil {
		return nil, classify("load", err, ErrSchemaMismatch)
	}
	log.Debug("workbook loaded", "sheets", len(wb.Sheets), "values", len(wb.Values), "series", len(wb.Series))

	log.Info("aggregating metrics")
	ms, err := metrics.Aggregate(wb)
	if err != nil {
		return nil, classify("aggregate", err, ErrComputeError)
	}
	if ms.StatedTotal > 0 {
		if diff := math.Abs(ms.TotalNet-ms.StatedTotal) / ms.StatedTotal; diff > statedTolerance {
			log.Warn("stated total differs from computed total",
				"stated", ms.StatedTotal, "computed", ms.TotalNet, "diff", diff)
		}
	}
	return ms, nil
}

// Report builds the charts and renders the HTML report for ms.
func Report(ms *models.MetricSet, opts Options) ([]byte, error) {
	log := opts.logger()

	log.Info("building charts")
	specs, err := charts.Build(ms)
	if err != nil {
		return nil, classify("charts", err, ErrComputeError)
	}
	log.Debug("charts built", "count", len(specs))

	ropts := render.DefaultOptions()
	ropts.Stamp = opts.FooterStamp()
	ropts.Fallbacks = opts.ShouldEmbedFallbacks()
	if opts.ShouldInlinePlotly() {
		js, err := os.ReadFile(opts.PlotlyJS)
		if err != nil {
			return nil, classify("render", err, ErrSourceMissing)
		}
		ropts.PlotlyJS = js
	}

	log.Info("rendering report", "inline_plotly", opts.ShouldInlinePlotly())
	doc, err := render.Build(ms, specs, ropts)
	if err != nil {
		return nil, classify("render", err, ErrComputeError)
	}
	html, err := render.HTML(doc, specs, ropts)
	if err != nil {
		return nil, classify("render", err, ErrComputeError)
	}
	return html, nil
}

// WriteDeck renders the briefing deck for ms and writes it to path.
func WriteDeck(ms *models.MetricSet, path string, opts Options) error {
	log := opts.logger()

	log.Info("building deck")
	data, err := deck.Encode(ms)
	if err != nil {
		return classify("deck", err, ErrComputeError)
	}
	log.Info("writing output", "path", path, "bytes", len(data))
	if err := output.WriteFile(path, data); err != nil {
		return classify("write", err, ErrWriteError)
	}
	return nil
}
