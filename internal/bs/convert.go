package bs

import (
	"fmt"
	"time"
)

// ADToBS converts an AD instant to its BS date.
//
// Only the calendar day of t in t's own location matters; the time of day is
// discarded. Days outside the table's span return ErrUnsupportedYear.
func (c *Calendar) ADToBS(t time.Time) (Date, error) {
	target := civilNoon(t)
	if target.Before(c.firstAD) || target.After(c.lastAD) {
		return Date{}, fmt.Errorf("%w: %s is outside %s..%s", ErrUnsupportedYear,
			target.Format(isoLayout), c.firstAD.Format(isoLayout), c.lastAD.Format(isoLayout))
	}

	diff := daysBetween(c.anchor.AD, target)
	cur := c.anchor.Date

	for diff > 0 {
		n, err := c.monthLen(cur.Year, cur.Month)
		if err != nil {
			return Date{}, err
		}
		left := n - cur.Day
		if diff <= left {
			cur.Day += diff
			break
		}
		diff -= left + 1
		cur = nextMonth(cur)
	}

	for diff < 0 {
		passed := cur.Day - 1
		if -diff <= passed {
			cur.Day += diff
			break
		}
		diff += passed + 1
		cur = prevMonth(cur)
		n, err := c.monthLen(cur.Year, cur.Month)
		if err != nil {
			return Date{}, err
		}
		cur.Day = n
	}

	return cur, nil
}

// BSToAD returns the AD day of d as an instant at 12:00 UTC.
func (c *Calendar) BSToAD(d Date) (time.Time, error) {
	if err := c.Validate(d); err != nil {
		return time.Time{}, err
	}
	off, err := c.offset(d)
	if err != nil {
		return time.Time{}, err
	}
	return c.anchor.AD.AddDate(0, 0, off), nil
}

// ParseToAD parses a BS date string and converts it to AD.
func (c *Calendar) ParseToAD(s string) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return c.BSToAD(d)
}

// FormatAD converts t to BS and renders it as YYYY-MM-DD.
func (c *Calendar) FormatAD(t time.Time) (string, error) {
	d, err := c.ADToBS(t)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// AddDays moves d by n days, which may be negative.
func (c *Calendar) AddDays(d Date, n int) (Date, error) {
	ad, err := c.BSToAD(d)
	if err != nil {
		return Date{}, err
	}
	return c.ADToBS(ad.AddDate(0, 0, n))
}

// Today returns the current BS date according to the calendar's clock.
func (c *Calendar) Today() (Date, error) {
	return c.ADToBS(c.now())
}

// offset counts the days from the anchor to d, skipping whole months at a
// time. d must already be valid.
func (c *Calendar) offset(d Date) (int, error) {
	cur := c.anchor.Date
	walked := 0

	if d.Compare(cur) >= 0 {
		for cur.Year != d.Year || cur.Month != d.Month {
			n, err := c.monthLen(cur.Year, cur.Month)
			if err != nil {
				return 0, err
			}
			walked += n - cur.Day + 1
			cur = nextMonth(cur)
		}
		return walked + d.Day - cur.Day, nil
	}

	for cur.Year != d.Year || cur.Month != d.Month {
		walked -= cur.Day
		cur = prevMonth(cur)
		n, err := c.monthLen(cur.Year, cur.Month)
		if err != nil {
			return 0, err
		}
		cur.Day = n
	}
	return walked - (cur.Day - d.Day), nil
}

// nextMonth returns the first day of the month after d.
func nextMonth(d Date) Date {
	d.Day = 1
	d.Month++
	if d.Month > 12 {
		d.Month = 1
		d.Year++
	}
	return d
}

// prevMonth steps to the month before d. The day is left for the caller.
func prevMonth(d Date) Date {
	d.Month--
	if d.Month < 1 {
		d.Month = 12
		d.Year--
	}
	return d
}

// DaysInMonth reports the length of a BS month using Default.
func DaysInMonth(year, month int) (int, error) { return Default.DaysInMonth(year, month) }

// DaysInRange lists the day numbers of a BS month using Default.
func DaysInRange(year, month int) ([]int, error) { return Default.DaysInRange(year, month) }

// ADToBS converts t to a BS Date using Default.
func ADToBS(t time.Time) (Date, error) { return Default.ADToBS(t) }

// BSToAD converts d to an AD instant using Default.
func BSToAD(d Date) (time.Time, error) { return Default.BSToAD(d) }

// AdToBs converts t to a YYYY-MM-DD BS string using Default.
func AdToBs(t time.Time) (string, error) { return Default.FormatAD(t) }

// BsToAd parses a YYYY-MM-DD (or YYYY/MM/DD) BS string and converts it using Default.
func BsToAd(s string) (time.Time, error) { return Default.ParseToAD(s) }

// CurrentDate returns today's BS date as YYYY-MM-DD using Default.
func CurrentDate() (string, error) {
	d, err := Default.Today()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
