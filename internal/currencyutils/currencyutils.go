// Package currencyutils provides decimal amount parsing and formatting.
package currencyutils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/parsererror"
)

// ParseAmount parses the text content of an amount element into a decimal.
// The declared precision of the source is preserved; no rounding happens
// here or anywhere downstream. Failures are field-level ParseErrors, never
// document-level.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amountStr)
	if trimmed == "" {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "currencyutils",
			Field:  "amount",
			Value:  amountStr,
			Err:    errors.New("empty amount"),
		}
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{
			Parser: "currencyutils",
			Field:  "amount",
			Value:  amountStr,
			Err:    err,
		}
	}
	return amount, nil
}

// FormatPrecise renders an amount at its declared scale: a value parsed
// from "100.00" renders as "100.00", not "100". Decimal's own String trims
// trailing zeros, so rendering goes through StringFixed on the exponent.
func FormatPrecise(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

// FormatAmount renders an amount with its currency code for display,
// e.g. "100.00 EUR". The amount keeps its source precision.
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatPrecise(amount)
	}
	return FormatPrecise(amount) + " " + currency
}
