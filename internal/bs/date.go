package bs

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Date is a Bikram Sambat calendar date. Month is 1-based (1 = Baisakh).
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date without checking it against a month-length table.
// Use Calendar.Validate for that.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// String renders the date as YYYY-MM-DD with zero-padded month and day.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// key packs the date into a single comparable integer.
func (d Date) key() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch a, b := d.key(), o.key(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Parse reads a BS date written as YYYY-MM-DD or YYYY/MM/DD.
//
// Full-width and Devanagari digits are folded to ASCII first, so "२०८२-०९-२२"
// parses the same as "2082-09-22". Parse only checks the shape of the input;
// range checks against the month-length table happen in Calendar.Validate.
func Parse(s string) (Date, error) {
	raw := s
	s = ToASCIIDigits(norm.NFKC.String(strings.TrimSpace(s)))

	sep := "/"
	if strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q: want YYYY-MM-DD", ErrMalformedDate, raw)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := parseField(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrMalformedDate, raw, err)
		}
		fields[i] = n
	}
	return Date{Year: fields[0], Month: fields[1], Day: fields[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseField(p string) (int, error) {
	if p == "" {
		return 0, fmt.Errorf("empty field")
	}
	if len(p) > 4 {
		return 0, fmt.Errorf("field %q too long", p)
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("field %q is not numeric", p)
		}
	}
	return strconv.Atoi(p)
}
