package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/intdash-go/pkg/intdash/charts"
	"github.com/ukaji3/intdash-go/pkg/intdash/metrics"
	"github.com/ukaji3/intdash-go/pkg/intdash/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(charts.ColorPrimary))
	kpiStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(charts.ColorGray)).
			Padding(0, 2).
			Align(lipgloss.Center)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(charts.ColorGray))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(charts.ColorSecondary)).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
	costStyle   = numStyle.Foreground(lipgloss.Color(charts.ColorDanger))
	totalStyle  = numStyle.Bold(true).Foreground(lipgloss.Color(charts.ColorSuccess))
)

// summary renders the KPI cards and the product table for the terminal.
func summary(ms *models.MetricSet) string {
	title := ms.Title.EN
	if title == "" {
		title = "Integration Metrics"
	}

	kpis := lipgloss.JoinHorizontal(lipgloss.Top,
		kpi("Total Net Value", metrics.FormatMillions(ms.TotalNet, 0)),
		kpi("Phase 1+2", metrics.FormatMillions(ms.Phase12.Net, 0)),
		kpi("Phase 3+4", metrics.FormatMillions(ms.Phase34.Net, 0)),
		kpi("C2 Coverage", metrics.FormatPercent(ms.Coverage.AtMin, 0)+" / "+metrics.FormatPercent(ms.Coverage.AtMax, 0)),
		kpi("H2 Utilization", metrics.FormatPercent(ms.Hydrogen.Utilization, 0)),
	)

	rows := make([][]string, 0, len(ms.Products)+2)
	for _, p := range ms.Products {
		rows = append(rows, []string{p.Name.EN, metrics.FormatQuantity(p.Quantity), metrics.FormatMoney(p.Value)})
	}
	rows = append(rows,
		[]string{"NG Makeup Cost", "-", "-" + metrics.FormatMoney(ms.NGMakeupCost)},
		[]string{"Total Net Value", "-", metrics.FormatMoney(ms.TotalNet)},
	)
	costRow, totalRow := len(rows)-2, len(rows)-1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(charts.ColorGray))).
		Headers("Product", "Quantity (t/y)", "Value ($/y)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			case row == costRow:
				return costStyle
			case row == totalRow:
				return totalStyle
			default:
				return numStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(kpis)
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}

func kpi(label, value string) string {
	return kpiStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}
