package series

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/finance/internal/domain"
)

// Column extracts one price field of candles.
// adj close falls back to close for candles without an adjusted price.
func Column(candles []domain.Candle, name string) ([]decimal.Decimal, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == ColumnClose || name == "" {
		return domain.Closes(candles), nil
	}

	pick, err := picker(name)
	if err != nil {
		return nil, err
	}

	out := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		out[i] = pick(c)
	}
	return out, nil
}

func picker(name string) (func(domain.Candle) decimal.Decimal, error) {
	switch name {
	case ColumnOpen:
		return func(c domain.Candle) decimal.Decimal { return c.Open }, nil
	case ColumnHigh:
		return func(c domain.Candle) decimal.Decimal { return c.High }, nil
	case ColumnLow:
		return func(c domain.Candle) decimal.Decimal { return c.Low }, nil
	case ColumnAdjClose, "adjclose", "adj_close":
		return func(c domain.Candle) decimal.Decimal {
			if c.AdjClose != nil {
				return *c.AdjClose
			}
			return c.Close
		}, nil
	case ColumnVolume:
		return func(c domain.Candle) decimal.Decimal { return c.Volume }, nil
	default:
		return nil, errors.Wrapf(ErrNoColumn, "%q", name)
	}
}
