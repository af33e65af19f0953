// Package setup implements the interactive wizard that writes an analysis
// config for the finance command.
package setup

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/vadiminshakov/finance/config"
	"github.com/vadiminshakov/finance/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// answers collected by the wizard.
type answers struct {
	symbol    string
	interval  string
	from      string
	to        string
	input     string
	column    string
	benchmark string
	periods   string
}

func defaultAnswers(now time.Time) answers {
	return answers{
		interval: domain.IntervalDay.String(),
		from:     now.AddDate(-1, 0, 0).Format(time.DateOnly),
		to:       now.Format(time.DateOnly),
		column:   "close",
		periods:  "2,10,20",
	}
}

// RunTUI launches the terminal configuration wizard and writes the result to path.
func RunTUI(path string) error {
	a := defaultAnswers(time.Now())
	var confirm bool

	// step 1: instrument
	step("STEP 1: INSTRUMENT")
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ticker Symbol").
				Description("e.g. AAPL, ^GSPC, EURUSD=X").
				Value(&a.symbol).
				Validate(validateSymbol),
			huh.NewSelect[string]().
				Title("Interval").
				Options(
					huh.NewOption("Daily", domain.IntervalDay.String()),
					huh.NewOption("Weekly", domain.IntervalWeek.String()),
					huh.NewOption("Monthly", domain.IntervalMonth.String()),
				).
				Value(&a.interval),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 2: history range
	step("STEP 2: HISTORY")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From").
				Description("Date (YYYY-MM-DD)").
				Value(&a.from).
				Validate(validateDate),
			huh.NewInput().
				Title("To").
				Description("Date (YYYY-MM-DD)").
				Value(&a.to).
				Validate(validateDate),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 3: data
	step("STEP 3: DATA")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Price History CSV").
				Description("Downloaded history (date,open,high,low,close,adj close,volume)").
				Value(&a.input).
				Validate(validateFile),
			huh.NewSelect[string]().
				Title("Column").
				Options(
					huh.NewOption("Close", "close"),
					huh.NewOption("Adjusted Close", "adj close"),
					huh.NewOption("Open", "open"),
					huh.NewOption("High", "high"),
					huh.NewOption("Low", "low"),
					huh.NewOption("Volume", "volume"),
				).
				Value(&a.column),
			huh.NewInput().
				Title("Benchmark CSV").
				Description("Optional, used for covariance").
				Value(&a.benchmark).
				Validate(validateOptionalFile),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 4: moving averages
	step("STEP 4: MOVING AVERAGES")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Periods").
				Description("Comma-separated window sizes (e.g. 2,10,20)").
				Value(&a.periods).
				Validate(validatePeriods),
		),
	).Run()
	if err != nil {
		return err
	}

	cfgTmp, err := a.config()
	if err != nil {
		return err
	}

	// confirmation
	step("FINAL CONFIRMATION")
	summary := fmt.Sprintf(
		"Symbol: %s\nInterval: %s\nRange: %s .. %s\nInput: %s (%s)\nPeriods: %v\n",
		cfgTmp.Symbol, cfgTmp.Interval, cfgTmp.Period1, cfgTmp.Period2, cfgTmp.Input, cfgTmp.Column, cfgTmp.Periods,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save and analyze").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	if err := writeConfig(path, cfgTmp); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s", path)))
	return nil
}

func step(title string) {
	fmt.Print("\033[H\033[2J") // clear screen
	fmt.Println(headerStyle.Render("FINANCE CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Statistics over a price history.\n"))
	fmt.Println(stepStyle.Render(title))
}

func (a answers) config() (config.ConfigTmp, error) {
	periods, err := config.ParsePeriods(a.periods)
	if err != nil {
		return config.ConfigTmp{}, fmt.Errorf("invalid periods %q: %w", a.periods, err)
	}
	from, _ := time.Parse(time.DateOnly, a.from)
	to, _ := time.Parse(time.DateOnly, a.to)
	if !from.Before(to) {
		return config.ConfigTmp{}, fmt.Errorf("from %s must be before to %s", a.from, a.to)
	}

	symbol, err := domain.ParseSymbol(a.symbol)
	if err != nil {
		return config.ConfigTmp{}, err
	}

	return config.ConfigTmp{
		Symbol:    symbol.Ticker(),
		Interval:  a.interval,
		Period1:   a.from,
		Period2:   a.to,
		Input:     a.input,
		Column:    a.column,
		Benchmark: a.benchmark,
		Periods:   periods,
	}, nil
}

func writeConfig(path string, cfgTmp config.ConfigTmp) error {
	data, err := yaml.Marshal([]config.ConfigTmp{cfgTmp})
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

func validateSymbol(s string) error {
	if s == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if _, err := domain.ParseSymbol(s); err != nil {
		return fmt.Errorf("invalid symbol: letters, digits and . ^ = - only")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return fmt.Errorf("must be a date like 2024-01-31")
	}
	return nil
}

func validateFile(s string) error {
	if s == "" {
		return fmt.Errorf("path cannot be empty")
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

func validateOptionalFile(s string) error {
	if s == "" {
		return nil
	}
	return validateFile(s)
}

func validatePeriods(s string) error {
	periods, err := config.ParsePeriods(s)
	if err != nil {
		return fmt.Errorf("must be comma-separated integers")
	}
	if len(periods) == 0 {
		return fmt.Errorf("at least one period is required")
	}
	for _, p := range periods {
		if p < 1 {
			return fmt.Errorf("periods must be positive")
		}
	}
	return nil
}
