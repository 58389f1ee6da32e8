package http

import (
	"strconv"
	"strings"
	"time"

	"bikram/internal/bs"
)

const adLayout = "2006-01-02"

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

func itoa(n int) string { return strconv.Itoa(n) }

// localDigits renders s in Devanagari digits for Nepali responses.
func localDigits(s string, lang bs.Language) string {
	if lang == bs.Nepali {
		return bs.ToNepaliNumerals(s)
	}
	return s
}

func formatAD(t time.Time) string { return t.Format(adLayout) }
