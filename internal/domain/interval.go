package domain

import "github.com/pkg/errors"

// Interval sampling interval of a price history.
type Interval string

const (
	// IntervalDay one sample per trading day.
	IntervalDay Interval = "1d"
	// IntervalWeek one sample per week.
	IntervalWeek Interval = "1wk"
	// IntervalMonth one sample per month.
	IntervalMonth Interval = "1mo"
)

// String returns the string representation.
func (i Interval) String() string {
	return string(i)
}

// IsValid checks if the Interval value is valid.
func (i Interval) IsValid() bool {
	return i == IntervalDay || i == IntervalWeek || i == IntervalMonth
}

// ParseInterval parses 1d, 1wk or 1mo.
func ParseInterval(raw string) (Interval, error) {
	i := Interval(raw)
	if !i.IsValid() {
		return "", errors.Wrapf(ErrInvalidInterval, "%q (want 1d, 1wk or 1mo)", raw)
	}
	return i, nil
}
