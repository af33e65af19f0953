package stats

import "github.com/pkg/errors"

// SMA calculates the n-period simple moving average.
//
// Output element k is the mean of series[k .. k+periods-1] and the result holds
// len(series)-periods values, so the last element of the series never enters a
// window. Use indicators.TrailingSMA for the conventional trailing window.
func SMA[T Number](series []T, periods int) ([]float64, error) {
	if err := checkPeriod(len(series), periods); err != nil {
		return nil, err
	}

	n := float64(periods)
	ma := make([]float64, 0, len(series)-periods)

	var sum float64
	for i, v := range series {
		if i >= periods {
			ma = append(ma, sum/n)
			sum -= float64(series[i-periods])
		}
		sum += float64(v)
	}

	return ma, nil
}

// EMA calculates the n-period exponentially weighted moving average.
//
// The first value is the simple average of the first periods elements, every
// following value is (1-m)*prev + m*series[i] with m = 2/(periods+1).
// The result holds len(series)-periods values.
func EMA[T Number](series []T, periods int) ([]float64, error) {
	if err := checkPeriod(len(series), periods); err != nil {
		return nil, err
	}

	multiplier := 2. / float64(periods+1)
	ma := make([]float64, 0, len(series)-periods)

	var sum float64
	for i, v := range series {
		switch {
		case i == periods:
			ma = append(ma, sum/float64(periods))
			sum -= float64(series[i-periods])
		case i > periods:
			prev := ma[len(ma)-1]
			ma = append(ma, (1.-multiplier)*prev+multiplier*float64(v))
		}
		sum += float64(v)
	}

	return ma, nil
}

func checkPeriod(length, periods int) error {
	if periods <= 0 || periods >= length {
		return errors.Wrapf(ErrInvalidPeriod, "periods %d for series of length %d", periods, length)
	}
	return nil
}
