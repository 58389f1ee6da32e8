package bs

import (
	"fmt"
	"time"
)

// Language selects the script used for month and weekday names.
type Language string

const (
	English Language = "en"
	Nepali  Language = "ne"
)

var monthNames = map[Language][12]string{
	English: {
		"Baisakh", "Jestha", "Ashadh", "Shrawan", "Bhadra", "Ashwin",
		"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
	},
	Nepali: {
		"वैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
		"कात्तिक", "मंसिर", "पुस", "माघ", "फागुन", "चैत",
	},
}

var weekdayNames = map[Language][7]string{
	English: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Nepali:  {"आइत", "सोम", "मंगल", "बुध", "बिही", "शुक्र", "शनि"},
}

// MonthName returns the name of BS month (1-12). Unknown languages fall
// back to English.
func MonthName(month int, lang Language) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[English]
	}
	return names[month-1], nil
}

// WeekdayName returns the short weekday name for w.
func WeekdayName(w time.Weekday, lang Language) string {
	names, ok := weekdayNames[lang]
	if !ok {
		names = weekdayNames[English]
	}
	return names[int(w)%7]
}

// Month describes one BS month laid out against the AD calendar, enough to
// render a date picker grid.
type Month struct {
	Year         int
	Month        int
	Days         int
	Start        time.Time // AD day of the 1st, noon UTC
	End          time.Time // AD day of the last day, noon UTC
	StartWeekday time.Weekday
}

// Month returns the layout of BS month (1-12) of year.
func (c *Calendar) Month(year, month int) (Month, error) {
	n, err := c.monthLen(year, month)
	if err != nil {
		return Month{}, err
	}
	start, err := c.BSToAD(Date{Year: year, Month: month, Day: 1})
	if err != nil {
		return Month{}, err
	}
	return Month{
		Year:         year,
		Month:        month,
		Days:         n,
		Start:        start,
		End:          start.AddDate(0, 0, n-1),
		StartWeekday: start.Weekday(),
	}, nil
}

// DayNumbers returns 1..Days.
func (m Month) DayNumbers() []int {
	days := make([]int, m.Days)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// Weeks lays the month out in Sunday-first rows of seven. Cells before the
// 1st and after the last day are zero.
func (m Month) Weeks() [][7]int {
	var weeks [][7]int
	var row [7]int
	col := int(m.StartWeekday)
	for d := 1; d <= m.Days; d++ {
		row[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, row)
			row = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}
	return weeks
}

// Contains reports whether BS date d falls inside the month.
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month && d.Day >= 1 && d.Day <= m.Days
}

// Name returns the month's name in lang.
func (m Month) Name(lang Language) string {
	name, _ := MonthName(m.Month, lang)
	return name
}
