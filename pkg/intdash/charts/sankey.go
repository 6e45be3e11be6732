package charts

import (
	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// sourceGroup merges streams into one sankey source node.
type sourceGroup struct {
	name    models.Text
	streams []int
}

// standardStreamCount is the stream count standardGroups is defined for.
const standardStreamCount = 6

// standardGroups merges the reference streams by origin.
var standardGroups = []sourceGroup{
	{models.T("Flare Gas", "غاز الشعلة"), []int{0, 1}},
	{models.T("Refinery Gas", "غاز المصفاة"), []int{2}},
	{models.T("PSA + Sweep", "PSA + كنس"), []int{3, 4}},
	{models.T("Penex", "بنيكس"), []int{5}},
}

// recovery is a Phase 1+2 node fed by the listed components.
type recovery struct {
	name       models.Text
	product    string
	components []string
	color      string
}

var recoveries = []recovery{
	{models.T("H2 Recovery", "استرداد H2"), metrics.ProductHydrogen, []string{"H2"}, ColorPrimary},
	{models.T("LPG Recovery", "استرداد LPG"), metrics.ProductLPG, []string{"C3", "C4"}, ColorSecondary},
	{models.T("C5+ Recovery", "استرداد C5+"), metrics.ProductNaphtha, []string{"C5+"}, ColorSecondary},
	{models.T("C2 Recovery", "استرداد C2"), metrics.ProductEthane, []string{"C2"}, ColorPrimary},
}

var carbonOxides = []string{"CO", "CO2"}

func sourceGroups(streams []models.Stream) []sourceGroup {
	if len(streams) == standardStreamCount {
		return standardGroups
	}
	return lo.Map(streams, func(s models.Stream, i int) sourceGroup {
		return sourceGroup{name: s.Name, streams: []int{i}}
	})
}

// flowSankey allocates each product value back to its source streams by
// component mass share. Link values are in USD million per year.
func flowSankey(ms *models.MetricSet) models.ChartSpec {
	groups := sourceGroups(ms.Streams)

	var nodes []models.Text
	var colors []string
	for _, g := range groups {
		nodes = append(nodes, g.name)
		colors = append(colors, colorSource)
	}
	recoveryAt := len(nodes)
	for _, r := range recoveries {
		nodes = append(nodes, r.name)
		colors = append(colors, r.color)
	}
	carbon := len(nodes)
	methanol := carbon + 1
	mto := carbon + 2
	value := carbon + 3
	nodes = append(nodes,
		models.T("CO/CO2", "CO/CO2"),
		models.T("Methanol", "ميثانول"),
		models.T("MTO Products", "منتجات MTO"),
		models.T("Annual Value", "القيمة السنوية"),
	)
	colors = append(colors, colorCarbon, ColorAccent, ColorAccent, ColorSuccess)

	mass := func(streams []int, comps []string) float64 {
		return lo.SumBy(streams, func(i int) float64 {
			return lo.SumBy(comps, func(c string) float64 { return ms.Streams[i].Components[c] })
		})
	}
	all := lo.Range(len(ms.Streams))
	productValue := func(key string) float64 {
		p, _ := ms.Product(key)
		return p.Value
	}

	var links []models.SankeyLink
	link := func(source, target int, usd float64) {
		if usd > 0 {
			links = append(links, models.SankeyLink{Source: source, Target: target, Value: usd / 1e6})
		}
	}

	for gi, g := range groups {
		for ri, r := range recoveries {
			if total := mass(all, r.components); total > 0 {
				link(gi, recoveryAt+ri, productValue(r.product)*mass(g.streams, r.components)/total)
			}
		}
		if total := mass(all, carbonOxides); total > 0 {
			link(gi, carbon, ms.Phase34.Gross*mass(g.streams, carbonOxides)/total)
		}
	}
	for ri, r := range recoveries {
		link(recoveryAt+ri, value, productValue(r.product))
	}
	olefins := productValue(metrics.ProductEthylene) + productValue(metrics.ProductPropylene)
	link(carbon, methanol, ms.Phase34.Gross)
	link(methanol, value, productValue(metrics.ProductMethanol))
	link(methanol, mto, olefins)
	link(mto, value, olefins)

	return models.ChartSpec{
		ID:     IDSankey,
		Kind:   models.ChartSankey,
		Title:  models.T("Material & Value Flow", "تدفق المواد والقيمة"),
		Height: 400,
		Sankey: &models.SankeyData{
			Nodes:      nodes,
			NodeColors: colors,
			Links:      links,
		},
	}
}
