package models

// Unit is the unit or currency attached to a metric value.
type Unit string

const (
	UnitUSDPerYear  Unit = "USD/y"
	UnitTonPerYear  Unit = "t/y"
	UnitKgPerHour   Unit = "kg/h"
	UnitHourPerYear Unit = "h/y"
	UnitUSDPerTon   Unit = "USD/t"
	UnitUSDPerMMBtu Unit = "USD/MMBtu"
	UnitRatio       Unit = "ratio"
)

// Metric is a single named figure with its unit.
type Metric struct {
	// Name is the stable metric name (e.g. "LPG_annual_value").
	Name string `json:"name"`
	// Value is the unrounded figure.
	Value float64 `json:"value"`
	// Unit is the unit or currency of Value.
	Unit Unit `json:"unit"`
}

// Phase identifies an integration stage.
type Phase string

const (
	Phase12 Phase = "phase_1_2"
	Phase34 Phase = "phase_3_4"
)

// ProductLine is the annual quantity and value of one product.
type ProductLine struct {
	// Key is the short product code (LPG, C5+, H2, C2, MeOH, C2H4, C3H6).
	Key string `json:"key"`
	// Name is the display name.
	Name Text `json:"name"`
	// Phase is the integration stage the product belongs to.
	Phase Phase `json:"phase"`
	// Quantity is the annual quantity in t/y.
	Quantity float64 `json:"quantity"`
	// Price is the reference price in USD/t.
	Price float64 `json:"price"`
	// Value is Quantity × Price in USD/y.
	Value float64 `json:"value"`
}

// PhaseTotal holds the gross, deduction and net value of a phase.
type PhaseTotal struct {
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// Stream is one process gas flow with its composition.
type Stream struct {
	Name Text `json:"name"`
	// FlowKgH is the hourly mass flow.
	FlowKgH float64 `json:"flow_kgh"`
	// FlowTY is the annual mass flow.
	FlowTY float64 `json:"flow_ty"`
	// Components maps a component code to its annual mass in t/y.
	Components map[string]float64 `json:"components"`
}

// Coverage is the share of ETHYDCO ethane demand met by MIDOR supply.
type Coverage struct {
	Supply  float64 `json:"supply"`
	NeedMin float64 `json:"need_min"`
	NeedMax float64 `json:"need_max"`
	// AtMin is Supply / NeedMin.
	AtMin float64 `json:"at_min"`
	// AtMax is Supply / NeedMax.
	AtMax float64 `json:"at_max"`
}

// HydrogenBalance compares recovered H2 with what methanol synthesis needs.
type HydrogenBalance struct {
	Available   float64 `json:"available"`
	Required    float64 `json:"required"`
	Deficit     float64 `json:"deficit"`
	Utilization float64 `json:"utilization"`
}

// MethanolAllocation splits methanol between gasoline blending and MTO.
type MethanolAllocation struct {
	Total     float64 `json:"total"`
	Gasoline  float64 `json:"gasoline"`
	MTOFeed   float64 `json:"mto_feed"`
	Ethylene  float64 `json:"ethylene"`
	Propylene float64 `json:"propylene"`
}

// PriceLine is one row of the reference price table.
type PriceLine struct {
	Product string  `json:"product"`
	Price   float64 `json:"price"`
}

// MetricSet is everything the report displays, derived once from the workbook.
type MetricSet struct {
	// Title and Subtitle come from the workbook summary sheet.
	Title    Text `json:"title"`
	Subtitle Text `json:"subtitle"`

	Metrics    []Metric           `json:"metrics"`
	Products   []ProductLine      `json:"products"`
	Phase12    PhaseTotal         `json:"phase12"`
	Phase34    PhaseTotal         `json:"phase34"`
	Streams    []Stream           `json:"streams"`
	Components []string           `json:"components"`
	Coverage   Coverage           `json:"coverage"`
	Hydrogen   HydrogenBalance    `json:"hydrogen"`
	Methanol   MethanolAllocation `json:"methanol"`
	Prices     []PriceLine        `json:"prices"`

	// NGMakeupCost is the natural gas bought to replace recovered heating value.
	NGMakeupCost float64 `json:"ng_makeup_cost"`
	// GrossSum is the sum of every product value before deductions.
	GrossSum float64 `json:"gross_sum"`
	// TotalNet is Phase12.Net + Phase34.Net.
	TotalNet float64 `json:"total_net"`
	// StatedTotal is the total written in the workbook summary sheet (0 if absent).
	StatedTotal float64 `json:"stated_total"`
}

// Lookup returns the metric with the given name.
func (m *MetricSet) Lookup(name string) (Metric, bool) {
	for _, metric := range m.Metrics {
		if metric.Name == name {
			return metric, true
		}
	}
	return Metric{}, false
}

// Product returns the product line with the given key.
func (m *MetricSet) Product(key string) (ProductLine, bool) {
	for _, p := range m.Products {
		if p.Key == key {
			return p, true
		}
	}
	return ProductLine{}, false
}
