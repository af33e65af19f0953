// Command finance computes statistics over price histories: moments,
// range volatility, covariance against a benchmark and moving averages.
// It can be configured via a YAML configuration file, command-line
// arguments or the interactive setup wizard.
//
// Usage:
//
//	finance --config config.yaml
//	finance --symbol AAPL --input aapl.csv --periods 2,10,20
//	finance --setup
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/finance/config"
	"github.com/vadiminshakov/finance/internal/report"
	"github.com/vadiminshakov/finance/internal/series"
	"github.com/vadiminshakov/finance/internal/setup"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	if settings.Setup {
		if err := setup.RunTUI(config.GeneratedPath); err != nil {
			log.Fatal(err)
		}
		jobs, err := config.Load(config.GeneratedPath)
		if err != nil {
			log.Fatal(err)
		}
		settings.Jobs = jobs
	}

	logger, err := newLogger(settings.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	loader := series.NewLoader(logger)
	analyzer := report.NewAnalyzer(logger)

	for _, job := range settings.Jobs {
		r, err := run(loader, analyzer, job)
		if err != nil {
			logger.Fatal("analysis failed", zap.String("symbol", job.History.Symbol().String()), zap.Error(err))
		}
		fmt.Println(report.Render(r))
	}
}

func run(loader *series.Loader, analyzer *report.Analyzer, job config.Config) (*report.Report, error) {
	from, to := job.History.Period1(), job.History.Period2()

	candles, err := loader.Load(job.Input)
	if err != nil {
		return nil, err
	}
	candles = series.Between(candles, from, to)
	if len(candles) == 0 {
		return nil, errors.Errorf("no candles in %s between %s and %s",
			job.Input, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	values, err := series.Column(candles, job.Column)
	if err != nil {
		return nil, err
	}

	in := report.Input{
		History: job.History,
		Source:  job.Endpoint.URL(),
		Column:  job.Column,
		Series:  values,
		Periods: job.Periods,
	}

	if job.Benchmark != "" {
		benchmark, err := loader.Load(job.Benchmark)
		if err != nil {
			return nil, errors.Wrap(err, "benchmark")
		}
		primary, bench := series.Align(candles, series.Between(benchmark, from, to))

		pair := &report.Pair{}
		if pair.Series, err = series.Column(primary, job.Column); err != nil {
			return nil, errors.Wrap(err, "benchmark")
		}
		if pair.Benchmark, err = series.Column(bench, job.Column); err != nil {
			return nil, errors.Wrap(err, "benchmark")
		}
		in.Benchmark = pair
	}

	return analyzer.Analyze(in)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
