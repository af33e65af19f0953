package stats

import "github.com/pkg/errors"

// Covariance returns the sample covariance of two equally long series
// (denominator n-1, unlike the population Variance).
func Covariance[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.Wrapf(ErrLengthMismatch, "covariance of %d and %d points", len(a), len(b))
	}
	if len(a) < 2 {
		return 0, errors.Wrapf(ErrInsufficientData, "covariance needs at least 2 points, got %d", len(a))
	}

	meanA, err := Mean(a)
	if err != nil {
		return 0, err
	}
	meanB, err := Mean(b)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		sum += (float64(a[i]) - meanA) * (float64(b[i]) - meanB)
	}

	return sum / float64(len(a)-1), nil
}
