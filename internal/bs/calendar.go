// Package bs converts between Bikram Sambat (BS) and Gregorian (AD) dates.
//
// BS month lengths vary from year to year and cannot be derived from a rule,
// so every conversion is driven by a fixed month-length table and a single
// anchor correspondence: a BS date known to fall on a given AD day. All other
// dates are reached by walking whole months outward from the anchor.
//
// A Calendar is immutable once built and safe for concurrent use. Package
// level functions use Default.
package bs

import (
	"fmt"
	"sort"
	"time"
)

const (
	// MinRepresentableYear and MaxRepresentableYear bound the years a
	// YYYY-MM-DD string can carry. DaysInMonth falls back to the fallback
	// year inside this range and fails outside it.
	MinRepresentableYear = 1
	MaxRepresentableYear = 9999

	// DefaultFallbackYear is used by DaysInMonth for years missing from the table.
	DefaultFallbackYear = 2082

	isoLayout = "2006-01-02"
	day       = 24 * time.Hour
)

// Table maps a BS year to the lengths of its twelve months.
type Table map[int][12]int

// Anchor binds one BS date to the AD day it falls on.
type Anchor struct {
	Date Date
	AD   time.Time
}

// DefaultAnchor is 2082-09-22 BS = 2026-01-06 AD.
var DefaultAnchor = Anchor{
	Date: Date{Year: 2082, Month: 9, Day: 22},
	AD:   time.Date(2026, time.January, 6, 12, 0, 0, 0, time.UTC),
}

// Default is the calendar backed by the built-in 2000-2100 table.
var Default = MustNew()

// Calendar performs BS/AD conversions against one table and anchor.
type Calendar struct {
	table        Table
	firstYear    int
	lastYear     int
	anchor       Anchor
	fallbackYear int
	now          func() time.Time

	firstAD time.Time
	lastAD  time.Time
}

// Option configures a Calendar in New.
type Option func(*Calendar)

// WithTable replaces the built-in month-length table. The table is copied.
func WithTable(t Table) Option {
	return func(c *Calendar) {
		c.table = make(Table, len(t))
		for y, months := range t {
			c.table[y] = months
		}
	}
}

// WithAnchor replaces the anchor correspondence.
func WithAnchor(a Anchor) Option {
	return func(c *Calendar) { c.anchor = a }
}

// WithFallbackYear sets the year whose month lengths DaysInMonth returns for
// years absent from the table.
func WithFallbackYear(year int) Option {
	return func(c *Calendar) { c.fallbackYear = year }
}

// WithClock sets the source of "now" used by Today.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

// New builds a Calendar and checks that the table, anchor and fallback year
// are consistent with each other.
func New(opts ...Option) (*Calendar, error) {
	c := &Calendar{
		table:        defaultTable,
		anchor:       DefaultAnchor,
		fallbackYear: DefaultFallbackYear,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.checkTable(); err != nil {
		return nil, err
	}
	if _, ok := c.table[c.fallbackYear]; !ok {
		return nil, fmt.Errorf("%w: fallback year %d not in table", ErrUnsupportedYear, c.fallbackYear)
	}
	if err := c.Validate(c.anchor.Date); err != nil {
		return nil, fmt.Errorf("anchor %s: %w", c.anchor.Date, err)
	}
	c.anchor.AD = civilNoon(c.anchor.AD.UTC())

	first := Date{Year: c.firstYear, Month: 1, Day: 1}
	last := Date{Year: c.lastYear, Month: 12, Day: c.table[c.lastYear][11]}
	firstOff, err := c.offset(first)
	if err != nil {
		return nil, err
	}
	lastOff, err := c.offset(last)
	if err != nil {
		return nil, err
	}
	c.firstAD = c.anchor.AD.AddDate(0, 0, firstOff)
	c.lastAD = c.anchor.AD.AddDate(0, 0, lastOff)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Calendar {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calendar) checkTable() error {
	if len(c.table) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidTable)
	}
	years := make([]int, 0, len(c.table))
	for y := range c.table {
		years = append(years, y)
	}
	sort.Ints(years)
	c.firstYear, c.lastYear = years[0], years[len(years)-1]
	if c.firstYear < MinRepresentableYear || c.lastYear > MaxRepresentableYear {
		return fmt.Errorf("%w: years %d..%d not representable", ErrInvalidTable, c.firstYear, c.lastYear)
	}
	if c.lastYear-c.firstYear+1 != len(years) {
		return fmt.Errorf("%w: years %d..%d are not contiguous", ErrInvalidTable, c.firstYear, c.lastYear)
	}
	for _, y := range years {
		for i, n := range c.table[y] {
			if n < 29 || n > 32 {
				return fmt.Errorf("%w: %d month %d has %d days", ErrInvalidTable, y, i+1, n)
			}
		}
	}
	return nil
}

// Bounds returns the first and last BS dates the table covers.
func (c *Calendar) Bounds() (first, last Date) {
	return Date{Year: c.firstYear, Month: 1, Day: 1},
		Date{Year: c.lastYear, Month: 12, Day: c.table[c.lastYear][11]}
}

// ADBounds returns the AD days matching Bounds, at noon UTC.
func (c *Calendar) ADBounds() (first, last time.Time) {
	return c.firstAD, c.lastAD
}

// Anchor returns the calendar's anchor with its AD side normalised to noon UTC.
func (c *Calendar) Anchor() Anchor { return c.anchor }

// FallbackYear returns the year DaysInMonth substitutes for missing years.
func (c *Calendar) FallbackYear() int { return c.fallbackYear }

// Supports reports whether year is present in the table.
func (c *Calendar) Supports(year int) bool {
	_, ok := c.table[year]
	return ok
}

// DaysInMonth returns the number of days in BS month (1-12) of year.
//
// A year absent from the table but still representable resolves to the
// fallback year's month lengths instead of failing. Callers that need a
// strict answer should check Supports first or use DaysInRange.
func (c *Calendar) DaysInMonth(year, month int) (int, error) {
	if year < MinRepresentableYear || year > MaxRepresentableYear {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedYear, year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	months, ok := c.table[year]
	if !ok {
		months = c.table[c.fallbackYear]
	}
	return months[month-1], nil
}

// DaysInRange returns the day numbers 1..N of BS month (1-12) of year.
// Unlike DaysInMonth it refuses years outside the table.
func (c *Calendar) DaysInRange(year, month int) ([]int, error) {
	n, err := c.monthLen(year, month)
	if err != nil {
		return nil, err
	}
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days, nil
}

// DaysInYear returns the total number of days in a BS year.
func (c *Calendar) DaysInYear(year int) (int, error) {
	months, ok := c.table[year]
	if !ok {
		return 0, c.unsupported(year)
	}
	total := 0
	for _, n := range months {
		total += n
	}
	return total, nil
}

// Validate checks that d names a real day in the table.
func (c *Calendar) Validate(d Date) error {
	n, err := c.monthLen(d.Year, d.Month)
	if err != nil {
		return err
	}
	if d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: %d-%02d has %d days, got %d", ErrInvalidDay, d.Year, d.Month, n, d.Day)
	}
	return nil
}

// monthLen is the strict table lookup used by every walk.
func (c *Calendar) monthLen(year, month int) (int, error) {
	months, ok := c.table[year]
	if !ok {
		return 0, c.unsupported(year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	return months[month-1], nil
}

func (c *Calendar) unsupported(year int) error {
	return fmt.Errorf("%w: %d outside %d..%d", ErrUnsupportedYear, year, c.firstYear, c.lastYear)
}

// civilNoon keeps the calendar day of t in t's own location and pins it to
// 12:00 UTC, so that day differences never straddle a DST or zone change.
func civilNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of whole days from a to b. Both must
// come from civilNoon.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / day)
}
