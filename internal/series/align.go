package series

import (
	"time"

	"github.com/vadiminshakov/finance/internal/domain"
)

// Between returns the candles sampled within [from, to].
func Between(candles []domain.Candle, from, to time.Time) []domain.Candle {
	out := make([]domain.Candle, 0, len(candles))
	for _, c := range candles {
		if c.Time.Before(from) || c.Time.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Align keeps the candles of a and b sampled at the same times. Both inputs
// must be sorted by time, as Loader returns them; the results are of equal
// length and pairwise aligned.
func Align(a, b []domain.Candle) ([]domain.Candle, []domain.Candle) {
	outA := make([]domain.Candle, 0, min(len(a), len(b)))
	outB := make([]domain.Candle, 0, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Time.Before(b[j].Time):
			i++
		case b[j].Time.Before(a[i].Time):
			j++
		default:
			outA = append(outA, a[i])
			outB = append(outB, b[j])
			i++
			j++
		}
	}

	return outA, outB
}
