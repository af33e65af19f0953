// Package series loads price histories from CSV files into domain candles
// and extracts numeric series from them.
package series

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/finance/internal/domain"
	"go.uber.org/zap"
)

// ErrNoColumn is returned when a required column is absent from the header.
var ErrNoColumn = errors.New("column not found")

// Column names understood by the loader and by Column.
const (
	ColumnOpen     = "open"
	ColumnHigh     = "high"
	ColumnLow      = "low"
	ColumnClose    = "close"
	ColumnAdjClose = "adj close"
	ColumnVolume   = "volume"
	columnDate     = "date"
)

// placeholder written by the finance service for days without trading
const missingValue = "null"

var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05"}

// Loader reads CSV price histories.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the CSV file at path.
func (l *Loader) Load(path string) ([]domain.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open price history")
	}
	defer f.Close()

	candles, err := l.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	l.logger.Debug("price history loaded", zap.String("path", path), zap.Int("candles", len(candles)))

	return candles, nil
}

// Read parses date,open,high,low,close[,adj close],volume rows with a header.
// Only date and close are required; rows holding null values are skipped.
// Candles are returned in time order.
func (l *Loader) Read(r io.Reader) ([]domain.Candle, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnDate, ColumnClose} {
		if _, ok := index[required]; !ok {
			return nil, errors.Wrapf(ErrNoColumn, "%q", required)
		}
	}

	var (
		candles []domain.Candle
		skipped int
	)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}

		if hasMissing(record) {
			skipped++
			continue
		}

		candle, err := parseRecord(record, index)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}
		candles = append(candles, candle)
	}

	if skipped > 0 {
		l.logger.Warn("skipped rows with missing values", zap.Int("rows", skipped))
	}

	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Time.Before(candles[j].Time)
	})

	return candles, nil
}

func parseRecord(record []string, index map[string]int) (domain.Candle, error) {
	field := func(name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	rawDate, _ := field(columnDate)
	ts, err := parseDate(rawDate)
	if err != nil {
		return domain.Candle{}, err
	}

	candle := domain.Candle{Time: ts}
	targets := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{ColumnOpen, &candle.Open},
		{ColumnHigh, &candle.High},
		{ColumnLow, &candle.Low},
		{ColumnClose, &candle.Close},
		{ColumnVolume, &candle.Volume},
	}
	for _, target := range targets {
		raw, ok := field(target.name)
		if !ok {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Candle{}, errors.Wrapf(err, "failed to parse %s price %q", target.name, raw)
		}
		*target.dst = v
	}

	if raw, ok := field(ColumnAdjClose); ok && raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Candle{}, errors.Wrapf(err, "failed to parse adj close price %q", raw)
		}
		candle.AdjClose = &v
	}

	return candle, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errors.Errorf("failed to parse date %q", raw)
}

func hasMissing(record []string) bool {
	for _, v := range record {
		if strings.EqualFold(strings.TrimSpace(v), missingValue) {
			return true
		}
	}
	return false
}
