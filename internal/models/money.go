package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is appended to rendered amounts unless configured otherwise.
const DefaultCurrencySymbol = "₽"

// ParseAmount parses an exact decimal amount. Surrounding whitespace is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return dec, nil
}

// FormatAmount renders an amount with two decimal places followed by symbol.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return amount.StringFixed(2) + symbol
}
