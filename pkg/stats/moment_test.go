package stats

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestMean(t *testing.T) {
	mean, err := Mean([]float64{5, 4, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, mean)

	// integer input is averaged in floating point
	mean, err = Mean([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.5, mean)
}

func TestVariance(t *testing.T) {
	v, err := Variance([]float64{5, 5, 10, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.6875, v)

	v, err = Variance([]uint8{5, 5, 10, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.6875, v)

	v, err = Variance([]float64{42})
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestStdDev(t *testing.T) {
	s, err := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
}

func TestMomentsEmptySeries(t *testing.T) {
	_, err := Mean([]float64{})
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Variance([]int(nil))
	assert.ErrorIs(t, err, ErrEmptySeries)
	assert.Contains(t, err.Error(), "variance")

	_, err = StdDev([]float32{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestMomentProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	nonEmpty := gen.SliceOf(gen.Float64Range(-1e4, 1e4)).SuchThat(func(s []float64) bool {
		return len(s) > 1
	})

	properties.Property("std squared equals variance", prop.ForAll(
		func(series []float64) bool {
			v, _ := Variance(series)
			s, _ := StdDev(series)
			return math.Abs(s*s-v) <= 1e-9*math.Max(1, math.Abs(v))
		},
		nonEmpty,
	))

	properties.Property("mean agrees with gonum", prop.ForAll(
		func(series []float64) bool {
			m, _ := Mean(series)
			return math.Abs(m-stat.Mean(series, nil)) <= 1e-9
		},
		nonEmpty,
	))

	properties.Property("variance is gonum sample variance rescaled to n", prop.ForAll(
		func(series []float64) bool {
			n := float64(len(series))
			want := stat.Variance(series, nil) * (n - 1) / n
			v, _ := Variance(series)
			return math.Abs(v-want) <= 1e-9*math.Max(1, want)
		},
		nonEmpty,
	))

	properties.TestingRun(t)
}
