// Package amountutils provides the numeric canonicalization rules for
// quantity and consideration amounts. Values are re-rendered at a
// fixed precision so the encoded output reproduces them exactly.
package amountutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Standardize strips thousands separators and surrounding whitespace
// from an amount string so it can be parsed as a plain decimal.
func Standardize(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	return strings.ReplaceAll(amountStr, ",", "")
}

// Parse parses an amount string after standardization.
func Parse(amountStr string) (decimal.Decimal, error) {
	standardized := Standardize(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// CanonicalFixed re-renders an amount string with exactly the given
// number of fractional digits. The empty string stays empty.
func CanonicalFixed(amountStr string, places int32) (string, error) {
	if strings.TrimSpace(amountStr) == "" {
		return "", nil
	}
	amount, err := Parse(amountStr)
	if err != nil {
		return "", err
	}
	return amount.StringFixed(places), nil
}
