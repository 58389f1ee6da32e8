// Package http exposes the calendar service as a small JSON API.
//
// This file implements utilities for parsing and validating request data:
// AD dates, month path parameters and the response language.

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"bikram/internal/bs"
)

// MonthParams holds parsed year/month values from the request path.
type MonthParams struct {
	Year  int
	Month int
}

var (
	supportedLanguages = []language.Tag{language.English, language.Nepali}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// ParseMonthParams reads {year} and {month} path values. Both must be
// numeric; range checks are left to the calendar.
func ParseMonthParams(r *http.Request) (MonthParams, error) {
	year, err := strconv.Atoi(bs.ToASCIIDigits(strings.TrimSpace(r.PathValue("year"))))
	if err != nil {
		return MonthParams{}, fmt.Errorf("%w: year %q", bs.ErrMalformedDate, r.PathValue("year"))
	}
	month, err := strconv.Atoi(bs.ToASCIIDigits(strings.TrimSpace(r.PathValue("month"))))
	if err != nil {
		return MonthParams{}, fmt.Errorf("%w: month %q", bs.ErrMalformedDate, r.PathValue("month"))
	}
	return MonthParams{Year: year, Month: month}, nil
}

// ParseADDate parses a YYYY-MM-DD Gregorian date. Devanagari digits are
// accepted.
func ParseADDate(s string) (time.Time, error) {
	s = bs.ToASCIIDigits(sanitizeInput(s))
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", bs.ErrMalformedDate)
	}
	t, err := time.Parse(adLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", bs.ErrMalformedDate, s)
	}
	return t, nil
}

// NegotiateLanguage picks the response language from ?lang= first, then
// Accept-Language, falling back to def when neither matches.
func NegotiateLanguage(r *http.Request, def bs.Language) bs.Language {
	raw := strings.TrimSpace(r.URL.Query().Get("lang"))
	if raw == "" {
		raw = r.Header.Get("Accept-Language")
	}
	if raw == "" {
		return def
	}

	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return def
	}
	if supportedLanguages[idx] == language.Nepali {
		return bs.Nepali
	}
	return bs.English
}
