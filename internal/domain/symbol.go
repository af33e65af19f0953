// Package domain defines the market entities fed to the statistics operators:
// ticker symbols, history descriptors, finance endpoints and candles.
package domain

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.^=\-]+$`)

// Symbol stock ticker, e.g. AAPL or ^GSPC.
type Symbol struct {
	ticker string
}

// Ticker returns the upper-cased ticker.
func (s Symbol) Ticker() string {
	return s.ticker
}

// String returns the string representation.
func (s Symbol) String() string {
	return s.ticker
}

// IsZero reports whether the symbol was never built.
func (s Symbol) IsZero() bool {
	return s.ticker == ""
}

// ParseSymbol builds a Symbol from a raw ticker.
func ParseSymbol(raw string) (Symbol, error) {
	return NewSymbolBuilder().Ticker(raw).Build()
}

// SymbolBuilder accumulates the fields of a Symbol.
type SymbolBuilder struct {
	ticker *string
}

// NewSymbolBuilder returns an empty builder.
func NewSymbolBuilder() *SymbolBuilder {
	return &SymbolBuilder{}
}

// Ticker sets the ticker.
func (b *SymbolBuilder) Ticker(ticker string) *SymbolBuilder {
	b.ticker = &ticker
	return b
}

// Build validates the accumulated fields and returns the Symbol.
func (b *SymbolBuilder) Build() (Symbol, error) {
	if b.ticker == nil {
		return Symbol{}, missing("symbol", "ticker")
	}

	ticker := strings.ToUpper(strings.TrimSpace(*b.ticker))
	if !symbolPattern.MatchString(ticker) {
		return Symbol{}, errors.Wrapf(ErrInvalidSymbol, "%q", *b.ticker)
	}

	return Symbol{ticker: ticker}, nil
}
