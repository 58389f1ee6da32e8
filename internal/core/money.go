// Package core provides money parsing and handling utilities.
//
// Amounts are held as integer paisa (1/100 rupee) and converted to exact
// decimals only for display, so no float rounding leaks into formatted output.
package core

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bikram/internal/bs"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Money is an amount in paisa.
type Money struct {
	Paisa int64
}

// ParseAmount converts a decimal string to paisa with half-up rounding.
//
// The dot is the only decimal point. Commas are Lakh/Crore group separators
// and must sit in 2-2-3 positions (12,34,567), so Format output parses back.
// An optional leading sign and Devanagari digits are accepted.
//
// Examples:
//
//	ParseAmount("12.345")      -> 1235 (rounds up)
//	ParseAmount("1,23,456.50") -> 12345650
//	ParseAmount("-०.५")        -> -50
func ParseAmount(s string) (Money, error) {
	s = bs.ToASCIIDigits(strings.TrimSpace(s))
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") || strings.Contains(fracPart, ",") {
		return Money{}, ErrInvalidAmount
	}
	intPart, ok := ungroupLakh(intPart)
	if !ok {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		if !hasFrac || fracPart == "" {
			return Money{}, ErrInvalidAmount
		}
		intPart = "0"
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Money{}, ErrInvalidAmount
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64-1 {
		return Money{}, ErrInvalidAmount
	}

	// Take first two fractional digits; then half-up rounding on third
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	paisa := iv*100 + frac
	if neg {
		paisa = -paisa
	}
	return Money{Paisa: paisa}, nil
}

// ungroupLakh strips comma separators from the integer part, requiring a
// trailing group of three digits preceded by groups of two (the first may
// be one or two digits).
func ungroupLakh(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, true
	}
	groups := strings.Split(s, ",")
	last := len(groups) - 1
	for i, g := range groups {
		switch {
		case i == last && len(g) != 3:
			return "", false
		case i == 0 && i != last && (len(g) < 1 || len(g) > 2):
			return "", false
		case i > 0 && i < last && len(g) != 2:
			return "", false
		}
	}
	return strings.Join(groups, ""), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Rupees returns the exact rupee value.
func (m Money) Rupees() decimal.Decimal {
	return decimal.New(m.Paisa, -2)
}

// Format renders the amount with Lakh/Crore grouping and Devanagari digits.
func (m Money) Format() string {
	return bs.FormatCurrencyDecimal(m.Rupees())
}

// String renders the amount as plain ASCII with two decimals.
func (m Money) String() string {
	return m.Rupees().StringFixed(2)
}
