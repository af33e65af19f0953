// Package stats provides statistical operators over ordered numeric series:
// simple and exponential moving averages, central moments, range volatility
// and sample covariance.
//
// A series is a plain slice ordered by time. Every operator accepts any integer
// or floating-point element type, never mutates its input and allocates its
// result fresh on every call, so the functions are safe to call concurrently.
//
//	sma, err := stats.SMA([]float64{5, 7, 8, 6, 5, 5.5, 4.5}, 2)
//	// sma == [6 7.5 7 5.5 5.25]
//
// Operators that can fail return one of ErrInvalidPeriod, ErrEmptySeries,
// ErrLengthMismatch or ErrInsufficientData wrapped with call details; match them
// with errors.Is.
package stats
