package domain

import (
	"time"

	"github.com/pkg/errors"
)

// History describes a historical price query: which symbol, over which
// period and at which sampling interval.
type History struct {
	symbol   Symbol
	period1  time.Time
	period2  time.Time
	interval Interval
}

// Symbol returns the queried symbol.
func (h History) Symbol() Symbol { return h.symbol }

// Period1 returns the start of the range.
func (h History) Period1() time.Time { return h.period1 }

// Period2 returns the end of the range.
func (h History) Period2() time.Time { return h.period2 }

// Interval returns the sampling interval.
func (h History) Interval() Interval { return h.interval }

// HistoryBuilder accumulates the fields of a History.
// Interval defaults to IntervalDay.
type HistoryBuilder struct {
	symbol   *Symbol
	period1  *time.Time
	period2  *time.Time
	interval Interval
}

// NewHistoryBuilder returns a builder with the daily interval preset.
func NewHistoryBuilder() *HistoryBuilder {
	return &HistoryBuilder{interval: IntervalDay}
}

// Symbol sets the symbol.
func (b *HistoryBuilder) Symbol(s Symbol) *HistoryBuilder {
	b.symbol = &s
	return b
}

// Period1 sets the start of the range.
func (b *HistoryBuilder) Period1(t time.Time) *HistoryBuilder {
	b.period1 = &t
	return b
}

// Period2 sets the end of the range.
func (b *HistoryBuilder) Period2(t time.Time) *HistoryBuilder {
	b.period2 = &t
	return b
}

// Interval sets the sampling interval.
func (b *HistoryBuilder) Interval(i Interval) *HistoryBuilder {
	b.interval = i
	return b
}

// Build validates the accumulated fields and returns the History.
func (b *HistoryBuilder) Build() (History, error) {
	switch {
	case b.symbol == nil || b.symbol.IsZero():
		return History{}, missing("history", "symbol")
	case b.period1 == nil:
		return History{}, missing("history", "period1")
	case b.period2 == nil:
		return History{}, missing("history", "period2")
	}

	if !b.interval.IsValid() {
		return History{}, errors.Wrapf(ErrInvalidInterval, "%q", b.interval)
	}
	if !b.period1.Before(*b.period2) {
		return History{}, errors.Wrapf(ErrInvalidPeriod, "period1 %s is not before period2 %s",
			b.period1.Format(time.DateOnly), b.period2.Format(time.DateOnly))
	}

	return History{
		symbol:   *b.symbol,
		period1:  b.period1.UTC(),
		period2:  b.period2.UTC(),
		interval: b.interval,
	}, nil
}
