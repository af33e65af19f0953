package stats

import (
	"math"

	"github.com/pkg/errors"
)

// Mean returns the arithmetic mean of the series.
func Mean[T Number](series []T) (float64, error) {
	if len(series) == 0 {
		return 0, errors.Wrap(ErrEmptySeries, "mean")
	}

	var sum float64
	for _, v := range series {
		sum += float64(v)
	}

	return sum / float64(len(series)), nil
}

// Variance returns the population variance of the series (denominator n).
func Variance[T Number](series []T) (float64, error) {
	mean, err := Mean(series)
	if err != nil {
		return 0, errors.Wrap(err, "variance")
	}

	var sum float64
	for _, v := range series {
		d := float64(v) - mean
		sum += d * d
	}

	return sum / float64(len(series)), nil
}

// StdDev returns the population standard deviation, the square root of Variance.
func StdDev[T Number](series []T) (float64, error) {
	v, err := Variance(series)
	if err != nil {
		return 0, errors.Wrap(err, "stddev")
	}
	return math.Sqrt(v), nil
}
