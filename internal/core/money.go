// Package core holds the domain types of the expense ledger: money,
// expense records and the category/budget defaults.
//
// This file contains money parsing and encoding. Amounts live as cents
// internally; on the wire they round-trip as plain decimal numbers so the
// stored JSON keeps the shape the mobile app wrote.
package core

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot (12.34) and comma (12,34)
// separators are accepted. Zero, negative and malformed input are
// rejected: this is the create-time validation gate for user-entered
// amounts and budgets.
//
// Examples:
//
//	ParseDecimalToCents("12.34") -> 1234, nil
//	ParseDecimalToCents("12,34") -> 1234, nil
//	ParseDecimalToCents("12.346") -> 1235, nil (rounds up)
func ParseDecimalToCents(s string) (int64, error) {
	cents, err := decimalToCents(s)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// decimalToCents parses a non-negative decimal string into cents. Unlike
// ParseDecimalToCents it tolerates zero, so stored blobs decode even when
// they hold values a user could never enter.
func decimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// First two fractional digits, half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// DecimalString renders the amount as a plain decimal with no currency
// symbol and no trailing zeros: 1234 cents -> "12.34", 1200 -> "12".
// This is also the string encoding of the stored monthly budget.
func (m Money) DecimalString() string {
	neg := m.Cents < 0
	cents := m.Cents
	if neg {
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	s := strconv.FormatInt(whole, 10)
	switch {
	case frac == 0:
	case frac%10 == 0:
		s += "." + strconv.FormatInt(frac/10, 10)
	default:
		s += fmt.Sprintf(".%02d", frac)
	}
	if neg {
		return "-" + s
	}
	return s
}

// Float returns the amount in whole currency units for display math.
// Calculations should stay in cents; this exists for percentages and
// chart scaling only.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// MarshalJSON encodes the amount as a JSON number (12.34, not "12.34"),
// matching the format the mobile app stored.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.DecimalString()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	cents, err := decimalToCents(s)
	if err != nil {
		return err
	}
	m.Cents = cents
	return nil
}

// ParseBudget validates a user-entered monthly budget.
func ParseBudget(s string) (Money, error) {
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return Money{}, ErrInvalidBudget
	}
	return Money{Cents: cents}, nil
}
