package stats

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		sma, err := SMA([]float64{5, 7, 8, 6, 5, 5.5, 4.5}, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{6.0, 7.5, 7.0, 5.5, 5.25}, sma)
	})

	t.Run("integers", func(t *testing.T) {
		sma, err := SMA([]int{1, 2, 3, 4, 5, 6}, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 3, 4}, sma)
	})

	t.Run("last element never enters a window", func(t *testing.T) {
		sma, err := SMA([]float64{1, 1, 1, 1000}, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1, 1}, sma)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []float64{3, 1, 4, 1, 5}
		_, err := SMA(in, 2)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 4, 1, 5}, in)
	})
}

func TestEMA(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		ema, err := EMA([]float64{2, 4, 6, 8, 12}, 2)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{3.0, 6.333333333333333, 10.11111111111111}, ema, 1e-12)
	})

	t.Run("integers", func(t *testing.T) {
		ema, err := EMA([]int32{2, 4, 6, 8, 12}, 2)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{3.0, 6.333333333333333, 10.11111111111111}, ema, 1e-12)
	})

	t.Run("constant series stays constant", func(t *testing.T) {
		ema, err := EMA([]float64{7, 7, 7, 7, 7, 7}, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{7, 7, 7}, ema)
	})
}

func TestMovingAverageInvalidPeriod(t *testing.T) {
	tests := []struct {
		name    string
		series  []float64
		periods int
	}{
		{name: "zero periods", series: []float64{1, 2, 3}, periods: 0},
		{name: "negative periods", series: []float64{1, 2, 3}, periods: -1},
		{name: "periods equal to length", series: []float64{1, 2, 3}, periods: 3},
		{name: "periods above length", series: []float64{1, 2, 3}, periods: 10},
		{name: "empty series", series: nil, periods: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sma, err := SMA(tt.series, tt.periods)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
			assert.Nil(t, sma)

			ema, err := EMA(tt.series, tt.periods)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
			assert.Nil(t, ema)
		})
	}
}

func TestMovingAverageProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sma length is len(series)-periods", prop.ForAll(
		func(series []float64, periods int) bool {
			if periods >= len(series) {
				return true
			}
			sma, err := SMA(series, periods)
			return err == nil && len(sma) == len(series)-periods
		},
		gen.SliceOfN(40, gen.Float64Range(-1e6, 1e6)),
		gen.IntRange(1, 39),
	))

	properties.Property("ema length matches sma length", prop.ForAll(
		func(series []int64, periods int) bool {
			if periods >= len(series) {
				return true
			}
			sma, errS := SMA(series, periods)
			ema, errE := EMA(series, periods)
			return errS == nil && errE == nil && len(sma) == len(ema)
		},
		gen.SliceOfN(25, gen.Int64Range(-1000, 1000)),
		gen.IntRange(1, 24),
	))

	properties.Property("first ema value equals first sma value", prop.ForAll(
		func(series []float64, periods int) bool {
			sma, errS := SMA(series, periods)
			ema, errE := EMA(series, periods)
			if errS != nil || errE != nil {
				return periods >= len(series)
			}
			return sma[0] == ema[0]
		},
		gen.SliceOfN(30, gen.Float64Range(0, 1000)),
		gen.IntRange(1, 29),
	))

	properties.TestingRun(t)
}
