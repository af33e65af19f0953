package series

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/finance/internal/domain"
	"go.uber.org/zap"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func times(candles []domain.Candle) []time.Time {
	out := make([]time.Time, len(candles))
	for i, c := range candles {
		out[i] = c.Time
	}
	return out
}

func TestBetween(t *testing.T) {
	candles, err := NewLoader(zap.NewNop()).Read(strings.NewReader(yahooCSV))
	require.NoError(t, err)

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := Between(candles, day(3), day(4))
		assert.Equal(t, []time.Time{day(3), day(4)}, times(got))
	})

	t.Run("range outside the data", func(t *testing.T) {
		assert.Empty(t, Between(candles, day(20), day(31)))
	})

	t.Run("whole history", func(t *testing.T) {
		assert.Len(t, Between(candles, day(1), day(31)), len(candles))
	})
}

func TestAlign(t *testing.T) {
	l := NewLoader(zap.NewNop())

	tests := []struct {
		name    string
		a, b    string
		common  []time.Time
		closesA []float64
		closesB []float64
	}{
		{
			name:    "same dates",
			a:       "date,close\n2024-01-01,10\n2024-01-02,3\n2024-01-03,19\n",
			b:       "date,close\n2024-01-01,13\n2024-01-02,4\n2024-01-03,21\n",
			common:  []time.Time{day(1), day(2), day(3)},
			closesA: []float64{10, 3, 19},
			closesB: []float64{13, 4, 21},
		},
		{
			name:    "null row in one file",
			a:       "date,close\n2024-01-01,10\n2024-01-02,null\n2024-01-03,19\n2024-01-04,8\n",
			b:       "date,close\n2024-01-01,13\n2024-01-02,4\n2024-01-03,21\n2024-01-04,8\n",
			common:  []time.Time{day(1), day(3), day(4)},
			closesA: []float64{10, 19, 8},
			closesB: []float64{13, 21, 8},
		},
		{
			name:    "partial overlap",
			a:       "date,close\n2024-01-01,1\n2024-01-02,2\n2024-01-03,3\n",
			b:       "date,close\n2024-01-02,20\n2024-01-03,30\n2024-01-04,40\n",
			common:  []time.Time{day(2), day(3)},
			closesA: []float64{2, 3},
			closesB: []float64{20, 30},
		},
		{
			name:    "offset dates",
			a:       "date,close\n2024-01-01,1\n2024-01-02,2\n",
			b:       "date,close\n2024-03-01,1\n2024-03-02,2\n",
			common:  []time.Time{},
			closesA: []float64{},
			closesB: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := l.Read(strings.NewReader(tt.a))
			require.NoError(t, err)
			b, err := l.Read(strings.NewReader(tt.b))
			require.NoError(t, err)

			gotA, gotB := Align(a, b)
			assert.Equal(t, tt.common, times(gotA))
			assert.Equal(t, tt.common, times(gotB))

			closesA, err := Column(gotA, ColumnClose)
			require.NoError(t, err)
			closesB, err := Column(gotB, ColumnClose)
			require.NoError(t, err)
			assert.Equal(t, tt.closesA, floats(closesA))
			assert.Equal(t, tt.closesB, floats(closesB))
		})
	}
}
