// Package sample writes the reference integration workbook.
//
// The workbook follows the default layout, so the generated file feeds the
// report pipeline directly. Values are the documented MIDOR-ETHYDCO dataset.
package sample

import (
	"fmt"

	"github.com/ukaji3/intdash-go/pkg/intdash/layout"
	"github.com/xuri/excelize/v2"
)

// StreamNames are the six process streams in column order.
var StreamNames = []string{"Flare Gas OLD", "Flare Gas New", "Refinery Gas", "PSA Purge", "Sweep Gas", "Penex"}

// StreamNamesAR are the Arabic stream names in the same order.
var StreamNamesAR = []string{"غاز الشعلة القديم", "غاز الشعلة الجديد", "غاز المصفاة", "تنظيف PSA", "غاز الكنس", "بنيكس"}

// Components are the composition rows of the stream sheet.
var Components = []string{"H2", "CH4", "C2", "C3", "C4", "C5+", "CO", "CO2"}

// Data returns the reference dataset keyed by layout field.
// Scalars are single-element slices.
func Data() map[string][]interface{} {
	return map[string][]interface{}{
		"mw.H2":    {2.016},
		"mw.CO":    {28.01},
		"mw.CO2":   {44.01},
		"mw.CH3OH": {32.04},
		"mw.C2H4":  {28.05},
		"mw.C3H6":  {42.08},

		"lhv.LPG":           {46.0},
		"lhv.C5+":           {44.9},
		"lhv.H2":            {120.0},
		"lhv.C2":            {47.5},
		"heat.mmbtu_per_gj": {0.947817},
		"price.NG":          {7.95},

		"prices.products": {"H2", "C2H6", "LPG", "C5+", "Methanol", "Ethylene (MTO)", "Propylene (MTO)"},
		"prices.values":   {2000, 400, 729, 620, 450, 400, 729},
		"price.H2":        {2000},
		"price.C2":        {400},
		"price.LPG":       {729},
		"price.C5+":       {620},
		"price.MeOH":      {450},
		"price.C2H4":      {400},
		"price.C3H6":      {729},

		"streams.names":         toAny(StreamNames),
		"streams.names_ar":      toAny(StreamNamesAR),
		"streams.flow_kgh":      {4122, 2989, 48459.44, 62786.45, 3723.42, 2088.12},
		"input.operating_hours": {8000},

		"comp.H2":  {4031.75, 3420.66, 16074.74, 10645.69, 2766.34, 2505.59},
		"comp.CH4": {8659.03, 5530.73, 194089.88, 39689.32, 2692.79, 1076.05},
		"comp.C2":  {3640.52, 1992.00, 45949.35, 27.45, 7396.02, 2287.08},
		"comp.C3":  {4389.92, 3206.61, 36257.20, 48.31, 9011.38, 7099.90},
		"comp.C4":  {5636.10, 4645.15, 60600.94, 56.60, 6288.14, 3317.54},
		"comp.C5+": {4396.36, 2768.20, 10851.65, 0, 1397.49, 2319.40},
		"comp.CO":  {5313.69, 4069.12, 29206.57, 24952.88, 0, 2413.85},
		"comp.CO2": {2499.26, 2279.22, 0, 401936.87, 135.20, 1896.61},

		"calc1.lpg_recovery":         {0.8929},
		"calc1.c5_recovery":          {1.0},
		"calc2.h2_recovery":          {1.0},
		"calc3.c2_recovery":          {0.9627},
		"calc3.need_min":             {83600},
		"calc3.need_max":             {121600},
		"calc5.synthesis_efficiency": {1.0},
		"calc6.gasoline_share":       {0.355},
		"calc6.ethylene_yield":       {0.28},
		"calc6.propylene_yield":      {0.42},

		"summary.title":        {"MIDOR-ETHYDCO Integration"},
		"summary.title_ar":     {"تكامل ميدور وإيثيدكو"},
		"summary.subtitle":     {"Petrochemical Integration Analysis"},
		"summary.subtitle_ar":  {"تحليل التكامل البتروكيماوي"},
		"summary.stated_total": {196065941.97},
	}
}

// captions are the row labels written beside each scalar field (column A).
var captions = map[string]string{
	"mw.H2":    "H2",
	"mw.CO":    "CO",
	"mw.CO2":   "CO2",
	"mw.CH3OH": "Methanol",
	"mw.C2H4":  "Ethylene",
	"mw.C3H6":  "Propylene",

	"lhv.LPG":           "LPG",
	"lhv.C5+":           "C5+",
	"lhv.H2":            "H2",
	"lhv.C2":            "Ethane",
	"heat.mmbtu_per_gj": "MMBtu per GJ",
	"price.NG":          "Natural gas price ($/MMBtu)",

	"input.operating_hours": "Operating hours (h/y)",

	"calc1.lpg_recovery":         "LPG (C3+C4) recovery",
	"calc1.c5_recovery":          "C5+ recovery",
	"calc2.h2_recovery":          "H2 recovery",
	"calc3.c2_recovery":          "C2 recovery",
	"calc3.need_min":             "ETHYDCO C2 need, min (t/y)",
	"calc3.need_max":             "ETHYDCO C2 need, max (t/y)",
	"calc5.synthesis_efficiency": "Methanol synthesis efficiency",
	"calc6.gasoline_share":       "Methanol to gasoline blending (share)",
	"calc6.ethylene_yield":       "MTO ethylene mass yield",
	"calc6.propylene_yield":      "MTO propylene mass yield",

	"summary.title":        "Project",
	"summary.title_ar":     "Project (AR)",
	"summary.subtitle":     "Subtitle",
	"summary.subtitle_ar":  "Subtitle (AR)",
	"summary.stated_total": "Total net value ($/y)",
}

// headers are fixed cells that make each sheet readable on its own.
var headers = map[string]map[string]string{
	"Molecular Conversions": {"A1": "Molecular Conversions", "A3": "Compound", "B3": "MW (g/mol)"},
	"Heat Content":          {"A1": "Heat Content Reference", "A3": "Product", "B3": "LHV (MJ/kg)"},
	"Product Prices":        {"A1": "Product Prices", "A3": "Product", "B3": "Price ($/t)"},
	"Input Data":            {"A1": "Input Data", "B3": "Stream", "B4": "Stream (AR)", "B5": "Flow (kg/h)", "B6": "Flow (t/y)"},
	"Stream Calculations":   {"A1": "Stream Calculations (t/y)", "B3": "Component"},
	"Calc 1 - LPG & C5+":    {"A1": "Calc 1 - LPG & C5+ Recovery"},
	"Calc 2 - Hydrogen":     {"A1": "Calc 2 - Hydrogen Recovery"},
	"Calc 3 - Ethane":       {"A1": "Calc 3 - Ethane Supply to ETHYDCO"},
	"Calc 5 - Methanol":     {"A1": "Calc 5 - Methanol Synthesis"},
	"Calc 6 - MTO":          {"A1": "Calc 6 - Methanol to Olefins"},
	"Final Summary":         {"A1": "Final Summary"},
}

// NewWorkbook builds the reference workbook for l in memory.
// Every field of l must have a value in data.
func NewWorkbook(l *layout.Layout, data map[string][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheetName := range l.Sheets() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheetName); err != nil {
				f.Close()
				return nil, err
			}
			continue
		}
		if _, err := f.NewSheet(sheetName); err != nil {
			f.Close()
			return nil, err
		}
	}

	for sheetName, cells := range headers {
		if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
			continue
		}
		for cell, text := range cells {
			if err := f.SetCellValue(sheetName, cell, text); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	for _, field := range l.Fields {
		values, ok := data[field.Key]
		if !ok {
			f.Close()
			return nil, fmt.Errorf("no sample value for %q", field.Key)
		}
		cells := field.Range().Cells()
		if len(values) != len(cells) {
			f.Close()
			return nil, fmt.Errorf("sample value for %q has %d entries, range %s has %d cells",
				field.Key, len(values), field.Ref, len(cells))
		}
		for i, cell := range cells {
			if err := f.SetCellValue(field.Sheet, cell, values[i]); err != nil {
				f.Close()
				return nil, err
			}
		}
		if err := writeCaption(f, field); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeDerivedRows(f, l); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// Write saves the reference workbook for l to path.
func Write(path string, l *layout.Layout) error {
	f, err := NewWorkbook(l, Data())
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// writeCaption labels a scalar field in the column left of its cell.
func writeCaption(f *excelize.File, field layout.Field) error {
	caption, ok := captions[field.Key]
	r := field.Range()
	if !ok || !r.IsCell() || r.C1 < 2 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(r.C1-1, r.R1)
	if err != nil {
		return err
	}
	return f.SetCellValue(field.Sheet, cell, caption)
}

// writeDerivedRows adds the informational rows a workbook author keeps as
// formulas: annual flow per stream and component row labels.
func writeDerivedRows(f *excelize.File, l *layout.Layout) error {
	flows, ok := l.Field("streams.flow_kgh")
	hours, okHours := l.Field("input.operating_hours")
	if ok && okHours && flows.Sheet == hours.Sheet {
		fr := flows.Range()
		for _, cell := range fr.Cells() {
			col, row, err := excelize.CellNameToCoordinates(cell)
			if err != nil {
				return err
			}
			target, _ := excelize.CoordinatesToCellName(col, row+1)
			formula := fmt.Sprintf("%s*%s/1000", cell, absolute(hours.Ref))
			if err := f.SetCellFormula(flows.Sheet, target, formula); err != nil {
				return err
			}
		}
	}

	for _, comp := range Components {
		field, ok := l.Field("comp." + comp)
		if !ok {
			continue
		}
		r := field.Range()
		if r.C1 < 2 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(r.C1-1, r.R1)
		if err := f.SetCellValue(field.Sheet, cell, comp); err != nil {
			return err
		}
	}
	return nil
}

// absolute turns B7 into $B$7.
func absolute(ref string) string {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return ref
	}
	name, err := excelize.CoordinatesToCellName(col, row, true)
	if err != nil {
		return ref
	}
	return name
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
