package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#D7A000", Dark: "#FFCC33"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 2).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Width(14).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(special)
	warnStyle  = lipgloss.NewStyle().Foreground(warning)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// Render formats the report for the terminal.
func Render(r *Report) string {
	var b strings.Builder

	title := r.History.Symbol().String()
	if title == "" {
		title = "SERIES"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	rows := [][2]string{}
	if !r.History.Period1().IsZero() {
		rows = append(rows,
			[2]string{"period", r.History.Period1().Format(time.DateOnly) + " .. " + r.History.Period2().Format(time.DateOnly)},
			[2]string{"interval", r.History.Interval().String()},
		)
	}
	if r.Source != "" {
		rows = append(rows, [2]string{"source", r.Source})
	}
	rows = append(rows,
		[2]string{"column", r.Column},
		[2]string{"points", strconv.Itoa(r.Points)},
		[2]string{"mean", formatDecimal(r.Mean)},
		[2]string{"variance", formatDecimal(r.Variance)},
		[2]string{"stddev", formatDecimal(r.StdDev)},
		[2]string{"range", formatDecimal(r.Range)},
	)
	if r.Covariance != nil {
		rows = append(rows, [2]string{"covariance", formatDecimal(*r.Covariance)})
	}
	for _, ma := range r.MovingAverages {
		sma, ema, trailing, ok := ma.Last()
		if !ok {
			continue
		}
		rows = append(rows,
			[2]string{fmt.Sprintf("SMA(%d)", ma.Period), formatDecimal(sma)},
			[2]string{fmt.Sprintf("EMA(%d)", ma.Period), formatDecimal(ema)},
			[2]string{fmt.Sprintf("trailing(%d)", ma.Period), formatDecimal(trailing)},
		)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))

	for _, p := range r.SkippedPeriods {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("! moving average period %d skipped: series has %d points", p, r.Points)))
	}
	for _, w := range r.Warnings {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("! " + w))
	}

	return b.String()
}

func formatDecimal(v decimal.Decimal) string {
	return v.StringFixed(4)
}
