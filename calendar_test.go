package lunisolar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	eng, err := New(opts...)
	require.NoError(t, err)
	return eng
}

func TestSolarTerm_Fixtures(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		year, index int
		name        string
		day         SolarDay
		hour        int
	}{
		{2001, DongZhi, "冬至", SolarDay{2000, 12, 21}, 21},
		{2024, DongZhi, "冬至", SolarDay{2023, 12, 22}, 11},
		{2024, LiChun, "立春", SolarDay{2024, 2, 4}, 16},
		{2024, ChunFen, "春分", SolarDay{2024, 3, 20}, 11},
		{2024, QingMing, "清明", SolarDay{2024, 4, 4}, 15},
		{2024, XiaZhi, "夏至", SolarDay{2024, 6, 21}, 4},
		{2024, QiuFen, "秋分", SolarDay{2024, 9, 22}, 20},
		{2025, DongZhi, "冬至", SolarDay{2024, 12, 21}, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name+tt.day.String(), func(t *testing.T) {
			s, err := eng.SolarTerm(tt.year, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.Name())
			assert.Equal(t, tt.day, s.Day)
			st := s.JulianDay.SolarTime()
			assert.Equal(t, tt.day, st.SolarDay)
			assert.Equal(t, tt.hour, st.Hour)
		})
	}
}

func TestSolarTerm_Errors(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.SolarTerm(2024, 24)
	assert.True(t, errors.Is(err, ErrInvalidIndex))
	_, err = eng.SolarTerm(2024, -1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = eng.SolarTerm(0, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = eng.SolarTerms(10000)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSolarTerms_Spacing(t *testing.T) {
	eng := newTestEngine(t)
	for _, year := range []int{1, 1000, 1600, 1900, 1984, 2024, 2100, 5000, 9999} {
		terms, err := eng.SolarTerms(year)
		require.NoError(t, err, "year %d", year)
		for i := 1; i < len(terms); i++ {
			gap := float64(terms[i].JulianDay - terms[i-1].JulianDay)
			assert.True(t, gap > 14.6 && gap < 15.8, "%d %s: gap %.3f", year, terms[i].Name(), gap)
			assert.Equal(t, i, terms[i].Index)
			assert.Equal(t, year, terms[i].Year)
		}
	}
}

func TestSolarTerm_Kinds(t *testing.T) {
	eng := newTestEngine(t)
	lichun, err := eng.SolarTerm(2024, LiChun)
	require.NoError(t, err)
	assert.True(t, lichun.IsJie())
	assert.False(t, lichun.IsQi())

	chunfen, err := eng.SolarTerm(2024, ChunFen)
	require.NoError(t, err)
	assert.True(t, chunfen.IsQi())
	assert.Equal(t, "春分", chunfen.String())
}

func TestNextSolarTerm(t *testing.T) {
	eng := newTestEngine(t)
	daxue, err := eng.SolarTerm(2024, 23)
	require.NoError(t, err)

	next := eng.NextSolarTerm(daxue, 1)
	assert.Equal(t, 2025, next.Year)
	assert.Equal(t, DongZhi, next.Index)

	back := eng.NextSolarTerm(next, -24)
	assert.Equal(t, 2024, back.Year)
	assert.Equal(t, DongZhi, back.Index)
	assert.Equal(t, SolarDay{2023, 12, 22}, back.Day)
}

func TestTermAt(t *testing.T) {
	eng := newTestEngine(t)

	before, err := eng.TermAt(SolarTime{SolarDay{2024, 2, 4}, 16, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "大寒", before.Name())
	assert.Equal(t, 2024, before.Year)

	after, err := eng.TermAt(SolarTime{SolarDay{2024, 2, 4}, 17, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "立春", after.Name())

	// Across the cycle boundary.
	dec, err := eng.TermAt(SolarTime{SolarDay{2024, 12, 31}, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 2025, dec.Year)
	assert.Equal(t, DongZhi, dec.Index)
}

func TestTermOfDay(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		day  SolarDay
		want string
	}{
		{SolarDay{2024, 2, 3}, "大寒"},
		{SolarDay{2024, 2, 4}, "立春"},
		{SolarDay{2024, 2, 18}, "立春"},
		{SolarDay{2024, 2, 19}, "雨水"},
		{SolarDay{2024, 1, 1}, "冬至"},
	}
	for _, tt := range tests {
		got, err := eng.TermOfDay(tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Name(), tt.day.String())
	}
}

func TestSolarTerm_LiChun2024Instant(t *testing.T) {
	// Published instant: 2024-02-04 16:26:53 UTC+8.
	eng := newTestEngine(t)
	s, err := eng.SolarTerm(2024, LiChun)
	require.NoError(t, err)
	want := SolarTime{SolarDay{2024, 2, 4}, 16, 26, 53}.JulianDay()
	assert.InDelta(t, float64(want), float64(s.JulianDay), 30.0/SecondsPerDay)
}

func TestSolarTerm_DayMatchesInstant(t *testing.T) {
	eng := newTestEngine(t)
	for year := 1646; year <= 1959; year++ {
		terms, err := eng.SolarTerms(year)
		require.NoError(t, err)
		for _, s := range terms {
			require.Equal(t, s.JulianDay.SolarDay(), s.Day, "%d %s", year, s.Name())
		}
	}
}

func TestSolarTerm_Zone(t *testing.T) {
	// 2024 立春 is 08:27 UTC: still 2024-02-04 at UTC-8 but one hour earlier in the day.
	west := newTestEngine(t, WithZoneOffset(-8))
	s, err := west.SolarTerm(2024, LiChun)
	require.NoError(t, err)
	st := s.JulianDay.SolarTime()
	assert.Equal(t, SolarDay{2024, 2, 4}, st.SolarDay)
	assert.Equal(t, 0, st.Hour)
}
