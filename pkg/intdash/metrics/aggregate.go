package metrics

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

// Components are the stream composition rows in display order.
var Components = []string{"H2", "CH4", "C2", "C3", "C4", "C5+", "CO", "CO2"}

// Product keys in display order. Phase 1+2 products come first.
const (
	ProductLPG       = "LPG"
	ProductNaphtha   = "C5+"
	ProductHydrogen  = "H2"
	ProductEthane    = "C2"
	ProductMethanol  = "MeOH"
	ProductEthylene  = "C2H4"
	ProductPropylene = "C3H6"
)

// ProductNames are the display names of each product key.
var ProductNames = map[string]models.Text{
	ProductLPG:       models.T("LPG (C3+C4)", "غاز مسال (LPG)"),
	ProductNaphtha:   models.T("Naphtha (C5+)", "نافثا (C5+)"),
	ProductHydrogen:  models.T("Hydrogen (H2)", "هيدروجين (H2)"),
	ProductEthane:    models.T("Ethane (C2)", "إيثان (C2)"),
	ProductMethanol:  models.T("Methanol Blend", "مزيج الميثانول"),
	ProductEthylene:  models.T("Ethylene (MTO)", "إيثيلين (MTO)"),
	ProductPropylene: models.T("Propylene (MTO)", "بروبيلين (MTO)"),
}

// Aggregate computes the MetricSet for a workbook. It is a pure function of
// wb: the same workbook always yields the same figures.
func Aggregate(wb *models.SourceWorkbook) (*models.MetricSet, error) {
	if wb == nil {
		return nil, fmt.Errorf("%w: no workbook", ErrMissingInput)
	}
	in := &inputs{wb: wb}

	names := in.labels("streams.names", 0)
	n := len(names)
	namesAR := in.labels("streams.names_ar", n)
	flows := in.series("streams.flow_kgh", n)
	hours := in.nonNegative("input.operating_hours")
	comps := make(map[string][]float64, len(Components))
	for _, c := range Components {
		comps[c] = in.series("comp."+c, n)
	}

	mwH2 := in.positive("mw.H2")
	mwCO := in.positive("mw.CO")
	mwCO2 := in.positive("mw.CO2")
	mwMeOH := in.positive("mw.CH3OH")
	mwC2H4 := in.positive("mw.C2H4")
	mwC3H6 := in.positive("mw.C3H6")

	lhvLPG := in.nonNegative("lhv.LPG")
	lhvC5 := in.nonNegative("lhv.C5+")
	lhvH2 := in.nonNegative("lhv.H2")
	lhvC2 := in.nonNegative("lhv.C2")
	mmbtuPerGJ := in.nonNegative("heat.mmbtu_per_gj")
	ngPrice := in.nonNegative("price.NG")

	price := map[string]float64{
		ProductLPG:       in.nonNegative("price.LPG"),
		ProductNaphtha:   in.nonNegative("price.C5+"),
		ProductHydrogen:  in.nonNegative("price.H2"),
		ProductEthane:    in.nonNegative("price.C2"),
		ProductMethanol:  in.nonNegative("price.MeOH"),
		ProductEthylene:  in.nonNegative("price.C2H4"),
		ProductPropylene: in.nonNegative("price.C3H6"),
	}

	lpgRecovery := in.fraction("calc1.lpg_recovery")
	c5Recovery := in.fraction("calc1.c5_recovery")
	h2Recovery := in.fraction("calc2.h2_recovery")
	c2Recovery := in.fraction("calc3.c2_recovery")
	needMin := in.positive("calc3.need_min")
	needMax := in.positive("calc3.need_max")
	efficiency := in.fraction("calc5.synthesis_efficiency")
	gasolineShare := in.fraction("calc6.gasoline_share")
	ethyleneYield := in.fraction("calc6.ethylene_yield")
	propyleneYield := in.fraction("calc6.propylene_yield")

	priceNames := in.labels("prices.products", 0)
	priceValues := in.series("prices.values", len(priceNames))

	if in.err != nil {
		return nil, in.err
	}

	if limit := mwC2H4 / (2 * mwMeOH); ethyleneYield > limit {
		return nil, NewFactorError("calc6.ethylene_yield", ethyleneYield, ErrInvalidFactor)
	}
	if limit := mwC3H6 / (3 * mwMeOH); propyleneYield > limit {
		return nil, NewFactorError("calc6.propylene_yield", propyleneYield, ErrInvalidFactor)
	}

	total := make(map[string]float64, len(Components))
	for _, c := range Components {
		total[c] = lo.Sum(comps[c])
	}

	// Phase 1+2: recovery from fuel gas.
	lpg := (total["C3"] + total["C4"]) * lpgRecovery
	naphtha := total["C5+"] * c5Recovery
	hydrogen := total["H2"] * h2Recovery
	ethane := total["C2"] * c2Recovery

	coverage := models.Coverage{
		Supply:  ethane,
		NeedMin: needMin,
		NeedMax: needMax,
		AtMin:   ethane / needMin,
		AtMax:   ethane / needMax,
	}

	// Phase 3+4: CO + 2H2 -> CH3OH, CO2 + 3H2 -> CH3OH + H2O.
	required := total["CO"]*2*mwH2/mwCO + total["CO2"]*3*mwH2/mwCO2
	if required == 0 {
		return nil, NewFactorError("comp.CO", total["CO"], ErrDivideByZero)
	}
	hydrogenBalance := models.HydrogenBalance{
		Available:   hydrogen,
		Required:    required,
		Deficit:     max(0, required-hydrogen),
		Utilization: min(1, hydrogen/required),
	}

	stoichiometric := total["CO"]*mwMeOH/mwCO + total["CO2"]*mwMeOH/mwCO2
	methanol := stoichiometric * hydrogenBalance.Utilization * efficiency
	gasoline := methanol * gasolineShare
	mtoFeed := methanol - gasoline
	allocation := models.MethanolAllocation{
		Total:     methanol,
		Gasoline:  gasoline,
		MTOFeed:   mtoFeed,
		Ethylene:  mtoFeed * ethyleneYield,
		Propylene: mtoFeed * propyleneYield,
	}

	quantities := []struct {
		key   string
		phase models.Phase
		qty   float64
	}{
		{ProductLPG, models.Phase12, lpg},
		{ProductNaphtha, models.Phase12, naphtha},
		{ProductHydrogen, models.Phase12, hydrogen},
		{ProductEthane, models.Phase12, ethane},
		{ProductMethanol, models.Phase34, gasoline},
		{ProductEthylene, models.Phase34, allocation.Ethylene},
		{ProductPropylene, models.Phase34, allocation.Propylene},
	}
	products := make([]models.ProductLine, 0, len(quantities))
	for _, q := range quantities {
		products = append(products, models.ProductLine{
			Key:      q.key,
			Name:     ProductNames[q.key],
			Phase:    q.phase,
			Quantity: q.qty,
			Price:    price[q.key],
			Value:    q.qty * price[q.key],
		})
	}

	// Heating value removed from the fuel gas system, bought back as NG.
	// t × MJ/kg = GJ.
	heatGJ := lpg*lhvLPG + naphtha*lhvC5 + hydrogen*lhvH2 + ethane*lhvC2
	ngMakeup := heatGJ * mmbtuPerGJ * ngPrice

	phase12Gross := phaseGross(products, models.Phase12)
	phase12 := models.PhaseTotal{
		Gross:      phase12Gross,
		Deductions: ngMakeup,
		Net:        phase12Gross - ngMakeup,
	}
	phase34Gross := phaseGross(products, models.Phase34)
	phase34 := models.PhaseTotal{Gross: phase34Gross, Net: phase34Gross}

	streams := make([]models.Stream, n)
	for i := range streams {
		streams[i] = models.Stream{
			Name:       models.T(names[i], namesAR[i]),
			FlowKgH:    flows[i],
			FlowTY:     flows[i] * hours / 1000,
			Components: lo.SliceToMap(Components, func(c string) (string, float64) { return c, comps[c][i] }),
		}
	}

	prices := lo.Map(priceNames, func(name string, i int) models.PriceLine {
		return models.PriceLine{Product: name, Price: priceValues[i]}
	})

	ms := &models.MetricSet{
		Title:        models.T(wb.Label("summary.title"), wb.Label("summary.title_ar")),
		Subtitle:     models.T(wb.Label("summary.subtitle"), wb.Label("summary.subtitle_ar")),
		Products:     products,
		Phase12:      phase12,
		Phase34:      phase34,
		Streams:      streams,
		Components:   append([]string(nil), Components...),
		Coverage:     coverage,
		Hydrogen:     hydrogenBalance,
		Methanol:     allocation,
		Prices:       prices,
		NGMakeupCost: ngMakeup,
		GrossSum:     lo.SumBy(products, func(p models.ProductLine) float64 { return p.Value }),
		TotalNet:     phase12.Net + phase34.Net,
	}
	if stated, ok := wb.Value("summary.stated_total"); ok {
		ms.StatedTotal = stated
	}
	ms.Metrics = flatten(ms, hours, total)

	return ms, nil
}

func phaseGross(products []models.ProductLine, phase models.Phase) float64 {
	return lo.SumBy(lo.Filter(products, func(p models.ProductLine, _ int) bool {
		return p.Phase == phase
	}), func(p models.ProductLine) float64 { return p.Value })
}

// flatten lists every figure as a named metric in a fixed order.
func flatten(ms *models.MetricSet, hours float64, total map[string]float64) []models.Metric {
	out := []models.Metric{
		{Name: "operating_hours", Value: hours, Unit: models.UnitHourPerYear},
	}
	for _, c := range Components {
		out = append(out, models.Metric{Name: "total_" + c, Value: total[c], Unit: models.UnitTonPerYear})
	}
	for _, p := range ms.Products {
		out = append(out,
			models.Metric{Name: p.Key + "_quantity", Value: p.Quantity, Unit: models.UnitTonPerYear},
			models.Metric{Name: p.Key + "_price", Value: p.Price, Unit: models.UnitUSDPerTon},
			models.Metric{Name: p.Key + "_annual_value", Value: p.Value, Unit: models.UnitUSDPerYear},
		)
	}
	out = append(out,
		models.Metric{Name: "C2_coverage_min", Value: ms.Coverage.AtMin, Unit: models.UnitRatio},
		models.Metric{Name: "C2_coverage_max", Value: ms.Coverage.AtMax, Unit: models.UnitRatio},
		models.Metric{Name: "H2_required", Value: ms.Hydrogen.Required, Unit: models.UnitTonPerYear},
		models.Metric{Name: "H2_deficit", Value: ms.Hydrogen.Deficit, Unit: models.UnitTonPerYear},
		models.Metric{Name: "H2_utilization", Value: ms.Hydrogen.Utilization, Unit: models.UnitRatio},
		models.Metric{Name: "methanol_total", Value: ms.Methanol.Total, Unit: models.UnitTonPerYear},
		models.Metric{Name: "methanol_mto_feed", Value: ms.Methanol.MTOFeed, Unit: models.UnitTonPerYear},
		models.Metric{Name: "NG_makeup_cost", Value: ms.NGMakeupCost, Unit: models.UnitUSDPerYear},
		models.Metric{Name: "phase12_gross", Value: ms.Phase12.Gross, Unit: models.UnitUSDPerYear},
		models.Metric{Name: "phase12_net", Value: ms.Phase12.Net, Unit: models.UnitUSDPerYear},
		models.Metric{Name: "phase34_net", Value: ms.Phase34.Net, Unit: models.UnitUSDPerYear},
		models.Metric{Name: "gross_sum", Value: ms.GrossSum, Unit: models.UnitUSDPerYear},
		models.Metric{Name: "total_net", Value: ms.TotalNet, Unit: models.UnitUSDPerYear},
	)
	return out
}

// inputs reads workbook values and keeps the first failure.
type inputs struct {
	wb  *models.SourceWorkbook
	err error
}

func (in *inputs) value(key string) (float64, bool) {
	if in.err != nil {
		return 0, false
	}
	v, ok := in.wb.Value(key)
	if !ok {
		in.err = NewFactorError(key, 0, ErrMissingInput)
		return 0, false
	}
	return v, true
}

// positive reads a divisor.
func (in *inputs) positive(key string) float64 {
	v, ok := in.value(key)
	if !ok {
		return 0
	}
	switch {
	case v == 0:
		in.err = NewFactorError(key, v, ErrDivideByZero)
	case v < 0:
		in.err = NewFactorError(key, v, ErrInvalidFactor)
	}
	return v
}

func (in *inputs) nonNegative(key string) float64 {
	v, ok := in.value(key)
	if ok && v < 0 {
		in.err = NewFactorError(key, v, ErrInvalidFactor)
	}
	return v
}

// fraction reads a share, recovery or yield in [0, 1].
func (in *inputs) fraction(key string) float64 {
	v, ok := in.value(key)
	if ok && (v < 0 || v > 1) {
		in.err = NewFactorError(key, v, ErrInvalidFactor)
	}
	return v
}

// series reads a non-negative vector of length n (any non-zero length when n is 0).
func (in *inputs) series(key string, n int) []float64 {
	if in.err != nil {
		return nil
	}
	v, ok := in.wb.SeriesOf(key)
	if !ok || len(v) == 0 {
		in.err = NewFactorError(key, 0, ErrMissingInput)
		return nil
	}
	if n > 0 && len(v) != n {
		in.err = fmt.Errorf("%w: %s has %d values, expected %d", ErrMissingInput, key, len(v), n)
		return nil
	}
	if x, found := lo.Find(v, func(x float64) bool { return x < 0 }); found {
		in.err = NewFactorError(key, x, ErrInvalidFactor)
		return nil
	}
	return v
}

// labels reads a text vector of length n (any non-zero length when n is 0).
func (in *inputs) labels(key string, n int) []string {
	if in.err != nil {
		return nil
	}
	v := in.wb.Labels[key]
	if len(v) == 0 {
		in.err = NewFactorError(key, 0, ErrMissingInput)
		return nil
	}
	if n > 0 && len(v) != n {
		in.err = fmt.Errorf("%w: %s has %d values, expected %d", ErrMissingInput, key, len(v), n)
		return nil
	}
	return v
}
