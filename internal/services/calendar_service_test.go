package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikram/internal/bs"
	"bikram/internal/cache"
	"bikram/internal/core"
	"bikram/internal/log"
)

func newTestService(t *testing.T) *CalendarService {
	t.Helper()
	now := func() time.Time { return time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC) }
	return NewCalendarService(bs.Default, log.Discard(), Options{CacheSize: 16, CacheTTL: time.Hour, Now: now})
}

func TestCalendarService_ADToBSCaches(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	in := time.Date(2026, time.January, 6, 18, 0, 0, 0, time.UTC)

	d, err := svc.ADToBS(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, bs.NewDate(2082, 9, 22), d)

	d, err = svc.ADToBS(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, bs.NewDate(2082, 9, 22), d)

	stats := svc.CacheStats()["ad_to_bs"]
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestCalendarService_BSToAD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	d, ad, err := svc.BSToAD(ctx, "2082/12/30")
	require.NoError(t, err)
	assert.Equal(t, bs.NewDate(2082, 12, 30), d)
	assert.Equal(t, time.Date(2026, time.April, 13, 12, 0, 0, 0, time.UTC), ad)

	_, _, err = svc.BSToAD(ctx, "2082-12")
	require.ErrorIs(t, err, bs.ErrMalformedDate)

	_, _, err = svc.BSToAD(ctx, "2082-09-31")
	require.ErrorIs(t, err, bs.ErrInvalidDay)

	_, _, err = svc.BSToAD(ctx, "2120-01-01")
	require.ErrorIs(t, err, bs.ErrUnsupportedYear)
}

func TestCalendarService_Today(t *testing.T) {
	svc := newTestService(t)

	d, now, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2083-06-30", d.String())
	assert.Equal(t, 16, now.Day())
}

func TestCalendarService_MonthSharesWork(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := svc.Month(ctx, 2082, 9)
			assert.NoError(t, err)
			assert.Equal(t, 30, m.Days)
			assert.Equal(t, time.Tuesday, m.StartWeekday)
		}()
	}
	wg.Wait()

	_, err := svc.Month(ctx, 2082, 13)
	require.ErrorIs(t, err, bs.ErrInvalidMonth)
}

func TestCalendarService_DaysAndFormatting(t *testing.T) {
	svc := newTestService(t)

	n, err := svc.DaysInMonth(2082, 9)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	days, err := svc.DaysInRange(2082, 9)
	require.NoError(t, err)
	assert.Len(t, days, 30)

	assert.Equal(t, "१२३", svc.Numerals("123"))

	m, formatted, err := svc.Currency(context.Background(), "1234567.5")
	require.NoError(t, err)
	assert.Equal(t, int64(123456750), m.Paisa)
	assert.Equal(t, "१२,३४,५६७.५०", formatted)

	_, _, err = svc.Currency(context.Background(), "lots")
	require.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestCalendarService_RegisterCaches(t *testing.T) {
	svc := NewCalendarService(nil, nil, Options{CacheTTL: time.Nanosecond})
	m := cache.NewManager(nil)
	svc.RegisterCaches(m)

	_, err := svc.ADToBS(context.Background(), time.Date(2026, time.January, 6, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	assert.Equal(t, 1, m.CleanAll())
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, log.ErrorTypeParse, ErrorType(bs.ErrMalformedDate))
	assert.Equal(t, log.ErrorTypeRange, ErrorType(bs.ErrUnsupportedYear))
	assert.Equal(t, log.ErrorTypeValidation, ErrorType(bs.ErrInvalidDay))
	assert.Equal(t, log.ErrorTypeInternal, ErrorType(errors.New("other")))
}
