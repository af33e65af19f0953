// Package report computes the full set of statistics for a price series
// and renders it for the terminal.
package report

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/finance/internal/domain"
	"github.com/vadiminshakov/finance/pkg/indicators"
	"github.com/vadiminshakov/finance/pkg/stats"
	"go.uber.org/zap"
)

// Input series and parameters of one analysis.
type Input struct {
	History domain.History
	// Source request the series was obtained with, empty when unknown.
	Source string
	Column string
	Series []decimal.Decimal
	// Benchmark optional pair for covariance, nil without a benchmark.
	Benchmark *Pair
	Periods   []int
}

// Pair values of the analyzed column and of the benchmark at their common
// sample times, pairwise aligned.
type Pair struct {
	Series    []decimal.Decimal
	Benchmark []decimal.Decimal
}

// MovingAverages SMA, EMA and trailing SMA over one window size.
type MovingAverages struct {
	Period   int
	SMA      []decimal.Decimal
	EMA      []decimal.Decimal
	Trailing []decimal.Decimal
}

// Last returns the most recent value of each average. ok is false when any
// of them is empty.
func (m MovingAverages) Last() (sma, ema, trailing decimal.Decimal, ok bool) {
	if len(m.SMA) == 0 || len(m.EMA) == 0 || len(m.Trailing) == 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero, false
	}
	return m.SMA[len(m.SMA)-1], m.EMA[len(m.EMA)-1], m.Trailing[len(m.Trailing)-1], true
}

// Report statistics of one series.
type Report struct {
	History  domain.History
	Source   string
	Column   string
	Points   int
	Mean     decimal.Decimal
	Variance decimal.Decimal
	StdDev   decimal.Decimal
	Range    decimal.Decimal
	// Covariance with the benchmark, nil without one or when it could not be computed.
	Covariance *decimal.Decimal
	// Overlap sample times shared with the benchmark.
	Overlap        int
	MovingAverages []MovingAverages
	// SkippedPeriods window sizes that do not fit the series.
	SkippedPeriods []int
	// Warnings computations skipped or degraded, with the reason.
	Warnings []string
}

// Analyzer computes reports.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze computes moments, range, moving averages and, when a benchmark is
// given, covariance of in.Series. Windows and covariance that do not fit the
// data are skipped and recorded in the report; moment failures abort.
func (a *Analyzer) Analyze(in Input) (*Report, error) {
	logger := a.logger.With(zap.String("symbol", in.History.Symbol().String()), zap.String("column", in.Column))

	summary, err := indicators.CalculateStats(in.Series)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate moments")
	}

	r := &Report{
		History:  in.History,
		Source:   in.Source,
		Column:   in.Column,
		Points:   len(in.Series),
		Mean:     summary.Mean,
		Variance: summary.Variance,
		StdDev:   summary.StdDev,
		Range:    summary.Range,
	}

	for _, p := range in.Periods {
		sma, err := indicators.CalculateSMA(in.Series, p)
		if err != nil {
			if errors.Is(err, stats.ErrInvalidPeriod) {
				logger.Warn("moving average skipped", zap.Int("period", p), zap.Error(err))
				r.SkippedPeriods = append(r.SkippedPeriods, p)
				continue
			}
			return nil, errors.Wrapf(err, "period %d", p)
		}
		ema, err := indicators.CalculateEMA(in.Series, p)
		if err != nil {
			return nil, errors.Wrapf(err, "period %d", p)
		}
		trailing, err := indicators.TrailingSMA(in.Series, p)
		if err != nil {
			return nil, errors.Wrapf(err, "period %d", p)
		}
		r.MovingAverages = append(r.MovingAverages, MovingAverages{Period: p, SMA: sma, EMA: ema, Trailing: trailing})
	}

	if in.Benchmark != nil {
		covariance(logger, r, in.Benchmark)
	}

	logger.Info("series analyzed",
		zap.Int("points", r.Points),
		zap.String("mean", r.Mean.String()),
		zap.String("stddev", r.StdDev.String()),
		zap.Int("moving_averages", len(r.MovingAverages)),
	)

	return r, nil
}

func covariance(logger *zap.Logger, r *Report, pair *Pair) {
	r.Overlap = len(pair.Series)
	if r.Overlap < r.Points {
		logger.Warn("benchmark covers part of the series", zap.Int("overlap", r.Overlap), zap.Int("points", r.Points))
		r.Warnings = append(r.Warnings, fmt.Sprintf("benchmark shares %d of %d sample times", r.Overlap, r.Points))
	}

	c, err := indicators.CalculateCovariance(pair.Series, pair.Benchmark)
	if err != nil {
		logger.Warn("covariance skipped", zap.Error(err))
		r.Warnings = append(r.Warnings, "covariance: "+err.Error())
		return
	}
	r.Covariance = &c
}
