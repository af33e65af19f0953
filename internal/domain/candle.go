package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle single OHLCV sample of a price history.
type Candle struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
	// AdjClose close adjusted for splits and dividends, nil when the source has none.
	AdjClose *decimal.Decimal
}

// Closes returns the close prices of candles in order.
func Closes(candles []Candle) []decimal.Decimal {
	out := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
