package lunisolar

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLunarNewYear(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		year int
		want SolarDay
	}{
		{1900, SolarDay{1900, 1, 31}},
		{1912, SolarDay{1912, 2, 18}},
		{1949, SolarDay{1949, 1, 29}},
		{1950, SolarDay{1950, 2, 17}},
		{1954, SolarDay{1954, 2, 3}},
		{1990, SolarDay{1990, 1, 27}},
		{2000, SolarDay{2000, 2, 5}},
		{2020, SolarDay{2020, 1, 25}},
		{2021, SolarDay{2021, 2, 12}},
		{2022, SolarDay{2022, 2, 1}},
		{2023, SolarDay{2023, 1, 22}},
		{2024, SolarDay{2024, 2, 10}},
		{2025, SolarDay{2025, 1, 29}},
	}
	for _, tt := range tests {
		m, err := eng.LunarMonth(tt.year, 1)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.First, "year %d", tt.year)
	}
}

func TestLeapMonth(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		year, leap int
	}{
		{2017, 6},
		{2020, 4},
		{2023, 2},
		{2024, 0},
		{2025, 6},
		{2028, 5},
		{2031, 3},
	}
	for _, tt := range tests {
		y, err := eng.LunarYear(tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.leap, y.LeapMonth(), "year %d", tt.year)
		if tt.leap > 0 {
			assert.Equal(t, 13, y.MonthCount())
		} else {
			assert.Equal(t, 12, y.MonthCount())
		}
	}
}

func TestLunarYear_Structure(t *testing.T) {
	eng := newTestEngine(t)
	for year := 1900; year <= 2100; year++ {
		y, err := eng.LunarYear(year)
		require.NoError(t, err)

		months := y.Months()
		leaps := 0
		for i, m := range months {
			assert.Contains(t, []int{29, 30}, m.DayCount, "%s", m)
			assert.Equal(t, i, m.IndexInYear, "%s", m)
			if m.Leap {
				leaps++
				assert.Equal(t, months[i-1].Month, m.Month, "%s follows the month it repeats", m)
			}
			if i > 0 {
				assert.Equal(t, months[i-1].First.Next(months[i-1].DayCount), m.First, "%s", m)
			}
		}
		assert.LessOrEqual(t, leaps, 1, "year %d", year)
		assert.Equal(t, leaps == 1, y.LeapMonth() > 0, "year %d", year)

		next, err := eng.LunarMonth(year+1, 1)
		require.NoError(t, err)
		assert.Equal(t, next.First.Subtract(months[0].First), y.DayCount(), "year %d", year)
	}
}

func TestLunarMonth_Leap(t *testing.T) {
	eng := newTestEngine(t)
	leap, err := eng.LunarMonth(2023, -2)
	require.NoError(t, err)
	assert.True(t, leap.Leap)
	assert.Equal(t, -2, leap.MonthWithLeap())
	assert.Equal(t, "闰二月", leap.Name())
	assert.Equal(t, "2023年闰二月", leap.String())
	assert.Equal(t, SolarDay{2023, 3, 22}, leap.First)
	assert.Equal(t, 29, leap.DayCount)
	assert.Equal(t, 2, leap.IndexInYear)

	second, err := eng.LunarMonth(2023, 2)
	require.NoError(t, err)
	assert.Equal(t, second.SixtyCycle(), leap.SixtyCycle())

	third, err := eng.LunarMonth(2023, 3)
	require.NoError(t, err)
	assert.Equal(t, SolarDay{2023, 4, 20}, third.First)
	assert.Equal(t, 3, third.IndexInYear)

	_, err = eng.LunarMonth(2024, -2)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	_, err = eng.LunarMonth(2024, 13)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = eng.LunarMonth(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = eng.LunarMonth(10000, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLunarMonth_SixtyCycle(t *testing.T) {
	eng := newTestEngine(t)
	m, err := eng.LunarMonth(2024, 1)
	require.NoError(t, err)
	assert.Equal(t, "丙寅", m.SixtyCycle().Name())
	assert.Equal(t, m.First.JulianDay(), m.JulianDay())

	y, err := eng.LunarYear(2024)
	require.NoError(t, err)
	assert.Equal(t, "甲辰", y.SixtyCycle().Name())
}

func TestNextLunarMonth(t *testing.T) {
	eng := newTestEngine(t)
	first, err := eng.LunarMonth(2023, 1)
	require.NoError(t, err)

	tests := []struct {
		n          int
		year, with int
	}{
		{0, 2023, 1},
		{1, 2023, 2},
		{2, 2023, -2},
		{3, 2023, 3},
		{12, 2023, 12},
		{13, 2024, 1},
		{-1, 2022, 12},
		{-12, 2022, 1},
		{-13, 2021, 12},
	}
	for _, tt := range tests {
		got, err := eng.NextLunarMonth(first, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.year, got.Year, "n=%d", tt.n)
		assert.Equal(t, tt.with, got.MonthWithLeap(), "n=%d", tt.n)
	}

	_, err = eng.NextLunarMonth(first, -12*2100)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLunarDay(t *testing.T) {
	eng := newTestEngine(t)
	midAutumn, err := eng.LunarDay(2024, 8, 15)
	require.NoError(t, err)
	assert.Equal(t, SolarDay{2024, 9, 17}, midAutumn.SolarDay())
	assert.Equal(t, "十五", midAutumn.Name())
	assert.Equal(t, "2024年八月十五", midAutumn.String())
	assert.Equal(t, DaySixtyCycle(midAutumn.SolarDay()), midAutumn.SixtyCycle())

	_, err = eng.LunarDay(2024, 1, 31)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestLunarDayOf(t *testing.T) {
	eng := newTestEngine(t)

	eve, err := eng.LunarDayOf(SolarDay{2024, 2, 9})
	require.NoError(t, err)
	assert.Equal(t, 2023, eve.Month.Year)
	assert.Equal(t, 12, eve.Month.Month)
	assert.Equal(t, 30, eve.Day)

	newYear, err := eng.LunarDayOf(SolarDay{2024, 2, 10})
	require.NoError(t, err)
	assert.Equal(t, 2024, newYear.Month.Year)
	assert.Equal(t, 1, newYear.Month.Month)
	assert.Equal(t, 1, newYear.Day)

	inLeap, err := eng.LunarDayOf(SolarDay{2023, 4, 1})
	require.NoError(t, err)
	assert.True(t, inLeap.Month.Leap)
	assert.Equal(t, 11, inLeap.Day)
}

func TestLunarDayOf_RoundTrip(t *testing.T) {
	eng := newTestEngine(t)
	d := SolarDay{2019, 12, 1}
	end := SolarDay{2026, 3, 1}
	for ; d.Before(end); d = d.Next(1) {
		ld, err := eng.LunarDayOf(d)
		require.NoError(t, err)
		require.Equal(t, d, ld.SolarDay(), "lunar %s", ld)
	}
}

func TestLunarDayOf_EarliestDays(t *testing.T) {
	eng := newTestEngine(t)
	ld, err := eng.LunarDayOf(SolarDay{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, SolarDay{1, 1, 1}, ld.SolarDay())
}

func TestEngine_ConcurrentLookups(t *testing.T) {
	defer goleak.VerifyNone(t)
	eng := newTestEngine(t)
	want, err := newTestEngine(t).LunarYear(2033)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]LunarYear, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = eng.LunarYear(2033)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		if diff := cmp.Diff(want.Months(), got.Months()); diff != "" {
			t.Fatalf("concurrent lookup mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestWarm(t *testing.T) {
	defer goleak.VerifyNone(t)
	eng := newTestEngine(t)
	require.NoError(t, eng.Warm(context.Background(), 2000, 2030))

	for year := 2000; year <= 2030; year++ {
		_, ok := eng.cache.leaps.Load(year)
		assert.True(t, ok, "year %d not cached", year)
		_, ok = eng.cache.months.Load(monthKey{year, 1})
		assert.True(t, ok, "month 1 of %d not cached", year)
	}

	assert.ErrorIs(t, eng.Warm(context.Background(), 0, 10), ErrOutOfRange)
	assert.ErrorIs(t, eng.Warm(context.Background(), 9990, 10000), ErrOutOfRange)
}

func TestWarm_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	eng := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, eng.Warm(ctx, 1, 9999), context.Canceled)
}
