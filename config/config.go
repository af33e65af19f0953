package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vadiminshakov/finance/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	defaultColumn = "close"
	// GeneratedPath file written by the setup wizard.
	GeneratedPath = "config.gen.yaml"
)

var defaultPeriods = []int{2}

// Settings process-wide options and the analysis jobs to run.
type Settings struct {
	Debug bool
	Setup bool
	Jobs  []Config
}

// Config one analysis job.
type Config struct {
	History  domain.History
	Endpoint domain.Endpoint
	// Input CSV price history of the symbol.
	Input  string
	Column string
	// Benchmark optional CSV price history covaried with Input.
	Benchmark string
	Periods   []int
}

// ConfigTmp yaml representation of Config.
type ConfigTmp struct {
	Symbol    string `yaml:"symbol"`
	Interval  string `yaml:"interval,omitempty"`
	Period1   string `yaml:"period1"`
	Period2   string `yaml:"period2,omitempty"`
	Input     string `yaml:"input"`
	Column    string `yaml:"column,omitempty"`
	Benchmark string `yaml:"benchmark,omitempty"`
	Periods   []int  `yaml:"periods,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
}

// Get parses the command line. With --config the jobs come from a yaml file,
// otherwise a single job is built from flags.
func Get() (*Settings, error) {
	return parse(flag.CommandLine, os.Args[1:], time.Now())
}

func parse(fs *flag.FlagSet, args []string, now time.Time) (*Settings, error) {
	configPath := fs.String("config", "", "path to yaml config")
	setup := fs.Bool("setup", false, "run the interactive config wizard")
	debug := fs.Bool("debug", false, "development logging")
	symbol := fs.String("symbol", "", "ticker symbol, example: AAPL")
	interval := fs.String("interval", string(domain.IntervalDay), "sampling interval: 1d, 1wk or 1mo")
	from := fs.String("from", "", "history start date, example: 2023-01-01 (default: one year before --to)")
	to := fs.String("to", "", "history end date, example: 2024-01-01 (default: today)")
	input := fs.String("input", "", "CSV price history (date,open,high,low,close,adj close,volume)")
	column := fs.String("column", defaultColumn, "price column to analyze")
	benchmark := fs.String("benchmark", "", "CSV price history to compute covariance against")
	periods := fs.String("periods", "2", "comma-separated moving average periods, example: 2,10,20")
	baseURL := fs.String("baseurl", domain.DefaultBaseURL, "finance service download endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	settings := &Settings{Debug: *debug, Setup: *setup}
	if *setup {
		return settings, nil
	}

	if *configPath != "" {
		jobs, err := load(*configPath, now)
		if err != nil {
			return nil, err
		}
		settings.Jobs = jobs
		return settings, nil
	}

	p, err := ParsePeriods(*periods)
	if err != nil {
		return nil, fmt.Errorf("invalid --periods provided, --periods=%s: %w", *periods, err)
	}

	end := *to
	if end == "" {
		end = now.Format(time.DateOnly)
	}

	job, err := build(now, ConfigTmp{
		Symbol:    *symbol,
		Interval:  *interval,
		Period1:   *from,
		Period2:   end,
		Input:     *input,
		Column:    *column,
		Benchmark: *benchmark,
		Periods:   p,
		BaseURL:   *baseURL,
	})
	if err != nil {
		return nil, err
	}
	settings.Jobs = []Config{job}

	return settings, nil
}

// Load reads jobs from a yaml list. Jobs without period2 end today.
func Load(path string) ([]Config, error) {
	return load(path, time.Now())
}

func load(path string, now time.Time) ([]Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var configsTmp []ConfigTmp
	if err := yaml.Unmarshal(f, &configsTmp); err != nil {
		return nil, err
	}
	if len(configsTmp) == 0 {
		return nil, fmt.Errorf("no jobs in yaml config %s", path)
	}

	configs := make([]Config, 0, len(configsTmp))
	for i, c := range configsTmp {
		job, err := build(now, c)
		if err != nil {
			return nil, fmt.Errorf("job %d in yaml config: %w", i+1, err)
		}
		configs = append(configs, job)
	}

	return configs, nil
}

func build(now time.Time, c ConfigTmp) (Config, error) {
	symbol, err := domain.ParseSymbol(c.Symbol)
	if err != nil {
		return Config{}, fmt.Errorf("incorrect 'symbol' param: %w", err)
	}

	interval := domain.IntervalDay
	if c.Interval != "" {
		interval, err = domain.ParseInterval(c.Interval)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'interval' param: %w", err)
		}
	}

	period2 := now.UTC().Truncate(24 * time.Hour)
	if c.Period2 != "" {
		period2, err = time.Parse(time.DateOnly, c.Period2)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'period2' param (correct format is 2006-01-02): %w", err)
		}
	}
	period1 := period2.AddDate(-1, 0, 0)
	if c.Period1 != "" {
		period1, err = time.Parse(time.DateOnly, c.Period1)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'period1' param (correct format is 2006-01-02): %w", err)
		}
	}

	history, err := domain.NewHistoryBuilder().
		Symbol(symbol).
		Period1(period1).
		Period2(period2).
		Interval(interval).
		Build()
	if err != nil {
		return Config{}, err
	}

	eb := domain.NewEndpointBuilder().Events(history)
	if c.BaseURL != "" {
		eb.BaseURL(c.BaseURL)
	}
	endpoint, err := eb.Build()
	if err != nil {
		return Config{}, fmt.Errorf("incorrect 'base_url' param: %w", err)
	}

	if c.Input == "" {
		return Config{}, fmt.Errorf("'input' CSV path is required for %s", symbol)
	}

	column := c.Column
	if column == "" {
		column = defaultColumn
	}

	periods := c.Periods
	if len(periods) == 0 {
		periods = defaultPeriods
	}
	for _, p := range periods {
		if p <= 0 {
			return Config{}, fmt.Errorf("incorrect 'periods' param: %d is not positive", p)
		}
	}

	return Config{
		History:   history,
		Endpoint:  endpoint,
		Input:     c.Input,
		Column:    column,
		Benchmark: c.Benchmark,
		Periods:   periods,
	}, nil
}

// ParsePeriods parses a comma-separated list of window sizes.
func ParsePeriods(raw string) ([]int, error) {
	var periods []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}
