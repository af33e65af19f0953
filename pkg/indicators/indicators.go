// Package indicators exposes the stats operators over decimal price data
// (moving averages, moments, range volatility and covariance of closes).
package indicators

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/finance/pkg/stats"
)

// Summary holds the scalar statistics of a price series.
type Summary struct {
	Mean     decimal.Decimal
	Variance decimal.Decimal
	StdDev   decimal.Decimal
	Range    decimal.Decimal
}

// CalculateSMA calculates the simple moving average of closes.
// It follows stats.SMA windowing: len(closes)-period values.
func CalculateSMA(closes []decimal.Decimal, period int) ([]decimal.Decimal, error) {
	sma, err := stats.SMA(decimalsToFloat64(closes), period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate SMA")
	}
	return float64ToDecimals(sma), nil
}

// CalculateEMA calculates the exponential moving average of closes.
func CalculateEMA(closes []decimal.Decimal, period int) ([]decimal.Decimal, error) {
	ema, err := stats.EMA(decimalsToFloat64(closes), period)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate EMA")
	}
	return float64ToDecimals(ema), nil
}

// TrailingSMA calculates the conventional trailing-window simple moving average:
// one value per full window including the last close, len(closes)-period+1 values.
func TrailingSMA(closes []decimal.Decimal, period int) ([]decimal.Decimal, error) {
	if period <= 0 || period > len(closes) {
		return nil, errors.Wrapf(stats.ErrInvalidPeriod, "trailing SMA period %d for %d closes", period, len(closes))
	}

	sma := trend.NewSmaWithPeriod[float64](period)
	outputChan := sma.Compute(helper.SliceToChan(decimalsToFloat64(closes)))

	return float64ToDecimals(helper.ChanToSlice(outputChan)), nil
}

// CalculateStats calculates mean, population variance, standard deviation and
// range of closes. Range is computed on the decimals directly.
func CalculateStats(closes []decimal.Decimal) (Summary, error) {
	values := decimalsToFloat64(closes)

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to calculate stats")
	}
	variance, err := stats.Variance(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to calculate stats")
	}
	std, err := stats.StdDev(values)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to calculate stats")
	}

	return Summary{
		Mean:     decimal.NewFromFloat(mean),
		Variance: decimal.NewFromFloat(variance),
		StdDev:   decimal.NewFromFloat(std),
		Range:    decimalRange(closes),
	}, nil
}

// CalculateCovariance calculates the sample covariance of two equally long
// price series.
func CalculateCovariance(a, b []decimal.Decimal) (decimal.Decimal, error) {
	c, err := stats.Covariance(decimalsToFloat64(a), decimalsToFloat64(b))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to calculate covariance")
	}
	return decimal.NewFromFloat(c), nil
}

// decimalRange is stats.RangeVolatility for decimals, which are not ordered
// by the builtin operators.
func decimalRange(values []decimal.Decimal) decimal.Decimal {
	if len(values) < 2 {
		return decimal.Zero
	}
	return decimal.Max(values[0], values[1:]...).Sub(decimal.Min(values[0], values[1:]...))
}

// decimalsToFloat64 converts a slice of decimal.Decimal to []float64.
func decimalsToFloat64(decimals []decimal.Decimal) []float64 {
	result := make([]float64, len(decimals))
	for i, d := range decimals {
		result[i], _ = d.Float64()
	}
	return result
}

// float64ToDecimals converts a slice of float64 to []decimal.Decimal.
func float64ToDecimals(floats []float64) []decimal.Decimal {
	result := make([]decimal.Decimal, len(floats))
	for i, f := range floats {
		result[i] = decimal.NewFromFloat(f)
	}
	return result
}
