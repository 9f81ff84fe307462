package lunisolar

/*
Package lunisolar provides civil date and Julian Day conversion.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.
*/

import (
	"fmt"
	"math"
	"time"
)

// JulianDay is a continuous day count. Integer values fall on noon; civil
// midnight is at .5. Arithmetic is plain addition.
type JulianDay float64

// SolarDay is a civil date on the hybrid calendar: Julian before
// 1582-10-15, Gregorian from then on.
type SolarDay struct {
	Year  int
	Month int
	Day   int
}

// SolarTime is a civil date and time on the hybrid calendar.
type SolarTime struct {
	SolarDay
	Hour   int
	Minute int
	Second int
}

// IsLeapYear reports whether year has a 29th of February. Years before 1600
// follow the Julian rule.
func IsLeapYear(year int) bool {
	if year < 1600 {
		return year%4 == 0
	}
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of the last day of a month. October 1582
// still ends on the 31st even though ten of its days do not exist.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// inGregorianGap reports whether a date is one of 1582-10-05 through 1582-10-14.
func inGregorianGap(year, month, day int) bool {
	return year == 1582 && month == 10 && day > 4 && day < 15
}

// NewSolarDay validates and returns a civil date.
//
// Returns:
//   - SolarDay: The date.
//   - error: ErrInvalidDate for an out-of-range field, a day beyond the end
//     of the month, or a date dropped by the Gregorian reform.
func NewSolarDay(year, month, day int) (SolarDay, error) {
	if year < minYear || year > maxYear {
		return SolarDay{}, fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDate, year, minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return SolarDay{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return SolarDay{}, fmt.Errorf("%w: day %d of %04d-%02d", ErrInvalidDate, day, year, month)
	}
	if inGregorianGap(year, month, day) {
		return SolarDay{}, fmt.Errorf("%w: %04d-%02d-%02d was dropped by the Gregorian reform", ErrInvalidDate, year, month, day)
	}
	return SolarDay{Year: year, Month: month, Day: day}, nil
}

// NewSolarTime validates and returns a civil date and time.
func NewSolarTime(year, month, day, hour, minute, second int) (SolarTime, error) {
	d, err := NewSolarDay(year, month, day)
	if err != nil {
		return SolarTime{}, err
	}
	if hour < 0 || hour > 23 {
		return SolarTime{}, fmt.Errorf("%w: hour %d", ErrInvalidDate, hour)
	}
	if minute < 0 || minute > 59 {
		return SolarTime{}, fmt.Errorf("%w: minute %d", ErrInvalidDate, minute)
	}
	if second < 0 || second > 59 {
		return SolarTime{}, fmt.Errorf("%w: second %d", ErrInvalidDate, second)
	}
	return SolarTime{SolarDay: d, Hour: hour, Minute: minute, Second: second}, nil
}

// julianDayOf converts civil fields to a Julian Day. Integer parts are
// truncated toward zero at each step, which is exact for years >= 1.
func julianDayOf(year, month, day, hour, minute, second int) JulianDay {
	d := float64(day) + ((float64(second)/60+float64(minute))/60+float64(hour))/24
	gregorian := year*372+month*31+int(d) >= gregorianStartYM
	if month <= 2 {
		month += 12
		year--
	}
	n := 0
	if gregorian {
		n = int(float64(year) / 100)
		n = 2 - n + int(float64(n)/4)
	}
	return JulianDay(float64(int(365.25*float64(year+4716))) + float64(int(30.6001*float64(month+1))) + d + float64(n) - 1524.5)
}

// JulianDay returns the Julian Day of civil midnight starting the date.
func (d SolarDay) JulianDay() JulianDay {
	return julianDayOf(d.Year, d.Month, d.Day, 0, 0, 0)
}

// dayNumber returns the noon-based day count from J2000 for the date.
func (d SolarDay) dayNumber() int {
	return int(math.Floor(float64(d.JulianDay()) + 0.5 - J2000))
}

// solarDayOfNumber is the inverse of dayNumber.
func solarDayOfNumber(dn int) SolarDay {
	return JulianDay(float64(dn) + J2000 - 0.5).SolarDay()
}

// Next returns the date n days later (earlier for negative n).
func (d SolarDay) Next(n int) SolarDay {
	return (d.JulianDay() + JulianDay(n)).SolarDay()
}

// Subtract returns the number of days from o to d.
func (d SolarDay) Subtract(o SolarDay) int {
	return d.dayNumber() - o.dayNumber()
}

// Before reports whether d is earlier than o.
func (d SolarDay) Before(o SolarDay) bool {
	return d.Subtract(o) < 0
}

// String formats the date as YYYY-MM-DD.
func (d SolarDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// JulianDay returns the Julian Day of the instant.
func (t SolarTime) JulianDay() JulianDay {
	return julianDayOf(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Before reports whether t is earlier than o.
func (t SolarTime) Before(o SolarTime) bool {
	if t.SolarDay != o.SolarDay {
		return t.SolarDay.Before(o.SolarDay)
	}
	return t.Hour*3600+t.Minute*60+t.Second < o.Hour*3600+o.Minute*60+o.Second
}

// String formats the instant as YYYY-MM-DD hh:mm:ss.
func (t SolarTime) String() string {
	return fmt.Sprintf("%s %02d:%02d:%02d", t.SolarDay, t.Hour, t.Minute, t.Second)
}

// Add returns j moved by days.
func (j JulianDay) Add(days float64) JulianDay {
	return j + JulianDay(days)
}

// SolarDay returns the civil date containing j.
func (j JulianDay) SolarDay() SolarDay {
	return j.SolarTime().SolarDay
}

// SolarTime converts j to a civil date and time. Seconds are rounded to the
// nearest whole second and carried into minutes, hours and days.
func (j JulianDay) SolarTime() SolarTime {
	d := int(float64(j) + 0.5)
	f := float64(j) + 0.5 - float64(d)
	if d >= gregorianStartJD {
		c := int((float64(d) - 1867216.25) / 36524.25)
		d += 1 + c - int(float64(c)/4)
	}
	d += 1524
	year := int((float64(d) - 122.1) / 365.25)
	d -= int(365.25 * float64(year))
	month := int(float64(d) / 30.601)
	d -= int(30.601 * float64(month))
	day := d
	if month > 13 {
		month -= 13
		year -= 4715
	} else {
		month--
		year -= 4716
	}

	f *= 24
	hour := int(f)
	f -= float64(hour)
	f *= 60
	minute := int(f)
	f -= float64(minute)
	f *= 60
	second := int(math.Round(f))
	if second > 59 {
		second -= 60
		minute++
	}
	if minute > 59 {
		minute -= 60
		hour++
	}
	sd := SolarDay{Year: year, Month: month, Day: day}
	if hour > 23 {
		hour -= 24
		sd = julianDayOf(year, month, day, 12, 0, 0).Add(1).SolarDay()
	}
	return SolarTime{SolarDay: sd, Hour: hour, Minute: minute, Second: second}
}

// FromTime converts an instant to civil time in the engine's zone.
func (e *Engine) FromTime(t time.Time) SolarTime {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return JulianDay(UnixEpochJD + sec/SecondsPerDay + e.zone).SolarTime()
}

// Time converts a civil time in the engine's zone to a time.Time carrying a
// fixed zone of the same offset.
func (e *Engine) Time(st SolarTime) time.Time {
	sec := math.Round((float64(st.JulianDay()) - e.zone - UnixEpochJD) * SecondsPerDay)
	offset := int(math.Round(e.zone * SecondsPerDay))
	return time.Unix(int64(sec), 0).In(time.FixedZone(zoneName(offset), offset))
}

// zoneName formats a fixed offset as UTC+hh:mm.
func zoneName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, offset%3600/60)
}
