package domain

import "github.com/pkg/errors"

var (
	// ErrMissingField is returned by a builder when a required field was not set.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidSymbol is returned for an empty or malformed ticker.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidInterval is returned for an unsupported sampling interval.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrInvalidPeriod is returned when a history range ends before it starts.
	ErrInvalidPeriod = errors.New("invalid history period")
)

func missing(entity, field string) error {
	return errors.Wrapf(ErrMissingField, "%s: %s", entity, field)
}
