package bs

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const devanagariZero = '०'

var (
	toDevanagari = runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return devanagariZero + (r - '0')
		}
		return r
	})
	fromDevanagari = runes.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	})
)

// ToNepaliNumerals renders v with its ASCII digits replaced by Devanagari
// digits. Every other character is kept as is.
func ToNepaliNumerals(v any) string {
	out, _, err := transform.String(toDevanagari, fmt.Sprint(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return out
}

// ToASCIIDigits is the inverse of ToNepaliNumerals.
func ToASCIIDigits(s string) string {
	out, _, err := transform.String(fromDevanagari, s)
	if err != nil {
		return s
	}
	return out
}

// FormatCurrency renders amount with two decimals, Lakh/Crore digit grouping
// (12,34,567.00) and Devanagari digits. NaN and infinities render as zero.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ToNepaliNumerals("0.00")
	}
	return FormatCurrencyDecimal(decimal.NewFromFloat(amount))
}

// FormatCurrencyDecimal is FormatCurrency for exact decimal amounts.
func FormatCurrencyDecimal(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	return ToNepaliNumerals(sign + groupLakh(whole) + "." + frac)
}

// groupLakh inserts separators in the South Asian style: the last three
// digits form one group, the rest are grouped in pairs.
func groupLakh(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	if lead := len(head) % 2; lead > 0 {
		b.WriteString(head[:lead])
		b.WriteByte(',')
		head = head[lead:]
	}
	for i := 0; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		b.WriteByte(',')
	}
	b.WriteString(tail)
	return b.String()
}
