package lunisolar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1500, true}, // Julian rule
		{1600, true},
		{1700, false},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestNewSolarDay_Rejects(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"year zero", 0, 1, 1},
		{"year 10000", 10000, 1, 1},
		{"month 13", 2024, 13, 1},
		{"day 0", 2024, 1, 0},
		{"feb 29 common year", 2023, 2, 29},
		{"feb 29 gregorian century", 1700, 2, 29},
		{"april 31", 2024, 4, 31},
		{"reform gap start", 1582, 10, 5},
		{"reform gap end", 1582, 10, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSolarDay(tt.year, tt.month, tt.day)
			assert.True(t, errors.Is(err, ErrInvalidDate), "got %v", err)
		})
	}

	_, err := NewSolarDay(1500, 2, 29)
	assert.NoError(t, err)
	_, err = NewSolarTime(2024, 1, 1, 24, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSolarDay_JulianDay(t *testing.T) {
	tests := []struct {
		day  SolarDay
		want JulianDay
	}{
		{SolarDay{1, 1, 1}, 1721423.5},
		{SolarDay{1582, 10, 4}, 2299159.5},
		{SolarDay{1582, 10, 15}, 2299160.5},
		{SolarDay{2000, 1, 1}, 2451544.5},
		{SolarDay{2024, 2, 10}, 2460350.5},
		{SolarDay{9999, 12, 31}, 5373483.5},
	}
	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.day.JulianDay())
			assert.Equal(t, tt.day, tt.want.SolarDay())
		})
	}
}

func TestSolarDay_Arithmetic(t *testing.T) {
	reformEve := SolarDay{1582, 10, 4}
	assert.Equal(t, SolarDay{1582, 10, 15}, reformEve.Next(1))
	assert.Equal(t, reformEve, SolarDay{1582, 10, 15}.Next(-1))

	assert.Equal(t, 29, SolarDay{2024, 3, 1}.Subtract(SolarDay{2024, 2, 1}))
	assert.Equal(t, 366, SolarDay{2025, 1, 1}.Subtract(SolarDay{2024, 1, 1}))
	assert.Equal(t, 0, SolarDay{2000, 1, 1}.dayNumber())
	assert.True(t, SolarDay{2023, 12, 31}.Before(SolarDay{2024, 1, 1}))
	assert.Equal(t, "0001-01-01", SolarDay{1, 1, 1}.String())
}

func TestJulianDay_SolarTime(t *testing.T) {
	assert.Equal(t, "2000-01-01 12:00:00", JulianDay(J2000).SolarTime().String())
	assert.Equal(t, "2000-01-01 18:00:00", JulianDay(J2000+0.25).SolarTime().String())

	// 23:59:59.6 rounds up across midnight.
	jd := JulianDay(2451544.5 + 86399.6/SecondsPerDay)
	assert.Equal(t, "2000-01-02 00:00:00", jd.SolarTime().String())
}

func TestSolarTime_RoundTrip(t *testing.T) {
	times := []SolarTime{
		{SolarDay{1, 1, 1}, 0, 0, 0},
		{SolarDay{1582, 10, 4}, 23, 59, 59},
		{SolarDay{1582, 10, 15}, 0, 0, 1},
		{SolarDay{1949, 10, 1}, 15, 0, 0},
		{SolarDay{2024, 2, 4}, 16, 27, 7},
		{SolarDay{9999, 12, 31}, 23, 59, 59},
	}
	for _, st := range times {
		t.Run(st.String(), func(t *testing.T) {
			assert.Equal(t, st, st.JulianDay().SolarTime())
		})
	}
}

func TestSolarTime_Before(t *testing.T) {
	a := SolarTime{SolarDay{2024, 2, 4}, 16, 0, 0}
	b := SolarTime{SolarDay{2024, 2, 4}, 16, 0, 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestEngine_TimeConversion(t *testing.T) {
	eng, err := New()
	require.NoError(t, err)

	utc := time.Date(2024, 2, 10, 0, 30, 0, 0, time.UTC)
	st := eng.FromTime(utc)
	assert.Equal(t, "2024-02-10 08:30:00", st.String())

	back := eng.Time(st)
	assert.True(t, back.Equal(utc), "got %v", back)
	_, offset := back.Zone()
	assert.Equal(t, 8*3600, offset)

	west, err := New(WithZoneOffset(-5.5))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-09 19:00:00", west.FromTime(utc).String())
	name, _ := west.Time(st).Zone()
	assert.Equal(t, "UTC-05:30", name)
}
