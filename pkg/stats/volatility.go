package stats

// RangeVolatility returns max(series) - min(series) in the element type.
// Series with fewer than two points have no dispersion and yield zero.
func RangeVolatility[T Number](series []T) T {
	var zero T
	if len(series) < 2 {
		return zero
	}

	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return hi - lo
}
