package stats

import "github.com/pkg/errors"

var (
	// ErrInvalidPeriod is returned when a window size is zero, negative or not
	// smaller than the series length.
	ErrInvalidPeriod = errors.New("invalid period")
	// ErrEmptySeries is returned by moment operators on zero-length input.
	ErrEmptySeries = errors.New("empty series")
	// ErrLengthMismatch is returned when paired series differ in length.
	ErrLengthMismatch = errors.New("series length mismatch")
	// ErrInsufficientData is returned when paired series hold fewer than two points.
	ErrInsufficientData = errors.New("insufficient data")
)
