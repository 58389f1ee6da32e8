package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"bikram/internal/bs"
	"bikram/internal/cache"
	"bikram/internal/core"
	"bikram/internal/log"
)

const adKeyLayout = "2006-01-02"

type monthKey struct {
	year, month int
}

// Options tunes the service's memoisation.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Now       func() time.Time
}

// CalendarService fronts a bs.Calendar for the HTTP and CLI surfaces. It
// memoises conversions, which is safe because the calendar never changes,
// and logs failures with conversion context.
type CalendarService struct {
	cal    *bs.Calendar
	logger *log.Logger
	sl     *log.StructuredLogger
	now    func() time.Time

	toBS   *cache.LRUCache[string, bs.Date]
	toAD   *cache.LRUCache[bs.Date, time.Time]
	months *cache.LRUCache[monthKey, bs.Month]
	group  singleflight.Group
}

func NewCalendarService(cal *bs.Calendar, logger *log.Logger, opts Options) *CalendarService {
	if cal == nil {
		cal = bs.Default
	}
	if logger == nil {
		logger = log.Discard()
	}
	if opts.CacheSize < 1 {
		opts.CacheSize = 1024
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger = logger.WithComponent(log.ComponentCalendar)
	return &CalendarService{
		cal:    cal,
		logger: logger,
		sl:     log.NewStructuredLogger(logger),
		now:    opts.Now,
		toBS:   cache.NewLRUCache[string, bs.Date](opts.CacheSize, opts.CacheTTL),
		toAD:   cache.NewLRUCache[bs.Date, time.Time](opts.CacheSize, opts.CacheTTL),
		months: cache.NewLRUCache[monthKey, bs.Month](opts.CacheSize/8+1, opts.CacheTTL),
	}
}

// Calendar returns the underlying calendar.
func (s *CalendarService) Calendar() *bs.Calendar { return s.cal }

// RegisterCaches hands the service's caches to a cleanup manager.
func (s *CalendarService) RegisterCaches(m *cache.Manager) {
	m.Register("ad_to_bs", s.toBS)
	m.Register("bs_to_ad", s.toAD)
	m.Register("months", s.months)
}

// CacheStats reports per-cache counters keyed by cache name.
func (s *CalendarService) CacheStats() map[string]cache.Stats {
	return map[string]cache.Stats{
		"ad_to_bs": s.toBS.Stats(),
		"bs_to_ad": s.toAD.Stats(),
		"months":   s.months.Stats(),
	}
}

// ADToBS converts the calendar day of t to BS.
func (s *CalendarService) ADToBS(ctx context.Context, t time.Time) (bs.Date, error) {
	key := t.Format(adKeyLayout)
	if d, ok := s.toBS.Get(key); ok {
		s.sl.LogConversion(ctx, log.OpADToBS, d.String(), key, true)
		return d, nil
	}

	d, err := s.cal.ADToBS(t)
	if err != nil {
		s.logFailure(ctx, log.OpADToBS, err, log.NewFields().WithConversion("", key))
		return bs.Date{}, err
	}
	s.toBS.Set(key, d)
	s.sl.LogConversion(ctx, log.OpADToBS, d.String(), key, false)
	return d, nil
}

// BSToAD parses a BS date string and converts it to its AD day.
func (s *CalendarService) BSToAD(ctx context.Context, in string) (bs.Date, time.Time, error) {
	d, err := bs.Parse(in)
	if err != nil {
		s.logFailure(ctx, log.OpParse, err, log.NewFields().WithConversion(in, ""))
		return bs.Date{}, time.Time{}, err
	}
	ad, err := s.ConvertBS(ctx, d)
	if err != nil {
		return bs.Date{}, time.Time{}, err
	}
	return d, ad, nil
}

// ConvertBS converts an already parsed BS date to AD.
func (s *CalendarService) ConvertBS(ctx context.Context, d bs.Date) (time.Time, error) {
	if ad, ok := s.toAD.Get(d); ok {
		s.sl.LogConversion(ctx, log.OpBSToAD, d.String(), ad.Format(adKeyLayout), true)
		return ad, nil
	}

	ad, err := s.cal.BSToAD(d)
	if err != nil {
		s.logFailure(ctx, log.OpBSToAD, err, log.NewFields().WithConversion(d.String(), ""))
		return time.Time{}, err
	}
	s.toAD.Set(d, ad)
	s.sl.LogConversion(ctx, log.OpBSToAD, d.String(), ad.Format(adKeyLayout), false)
	return ad, nil
}

// Today returns the current BS date together with the AD instant it was
// derived from.
func (s *CalendarService) Today(ctx context.Context) (bs.Date, time.Time, error) {
	now := s.now()
	d, err := s.ADToBS(ctx, now)
	if err != nil {
		return bs.Date{}, time.Time{}, fmt.Errorf("today: %w", err)
	}
	return d, now, nil
}

// Month returns the layout of a BS month. Concurrent requests for the same
// month share one computation.
func (s *CalendarService) Month(ctx context.Context, year, month int) (bs.Month, error) {
	key := monthKey{year, month}
	if m, ok := s.months.Get(key); ok {
		return m, nil
	}

	v, err, _ := s.group.Do(fmt.Sprintf("%d-%d", year, month), func() (any, error) {
		m, err := s.cal.Month(year, month)
		if err != nil {
			return bs.Month{}, err
		}
		s.months.Set(key, m)
		return m, nil
	})
	if err != nil {
		s.logFailure(ctx, log.OpMonth, err, log.NewFields().WithMonth(year, month))
		return bs.Month{}, err
	}
	return v.(bs.Month), nil
}

// DaysInMonth reports the number of days in a BS month, with the calendar's
// fallback for years outside the table.
func (s *CalendarService) DaysInMonth(year, month int) (int, error) {
	return s.cal.DaysInMonth(year, month)
}

// DaysInRange lists 1..N for a BS month.
func (s *CalendarService) DaysInRange(year, month int) ([]int, error) {
	return s.cal.DaysInRange(year, month)
}

// Numerals renders v with Devanagari digits.
func (s *CalendarService) Numerals(v string) string {
	return bs.ToNepaliNumerals(v)
}

// Currency parses an amount and formats it in Lakh/Crore grouping.
func (s *CalendarService) Currency(ctx context.Context, amount string) (core.Money, string, error) {
	m, err := core.ParseAmount(amount)
	if err != nil {
		s.sl.LogWarn(ctx, "Amount parsing failed", err, log.ComponentCalendar, log.OpCurrency,
			log.NewFields().WithErrorType(log.ErrorTypeParse))
		return core.Money{}, "", err
	}
	return m, m.Format(), nil
}

func (s *CalendarService) logFailure(ctx context.Context, op string, err error, fields log.LogFields) {
	s.sl.LogWarn(ctx, "Calendar operation failed", err, log.ComponentCalendar, op, fields.WithErrorType(ErrorType(err)))
}

// ErrorType classifies an engine error for logging.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, bs.ErrMalformedDate), errors.Is(err, core.ErrInvalidAmount):
		return log.ErrorTypeParse
	case errors.Is(err, bs.ErrUnsupportedYear):
		return log.ErrorTypeRange
	case errors.Is(err, bs.ErrInvalidMonth), errors.Is(err, bs.ErrInvalidDay):
		return log.ErrorTypeValidation
	}
	return log.ErrorTypeInternal
}
