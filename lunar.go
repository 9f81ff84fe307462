package lunisolar

/*
Package lunisolar provides lunar years, months and days.

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
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

var lunarDayNames = [30]string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

var lunarMonthNames = [12]string{"正月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"}

// LunarMonth is one month of a reconstructed lunar year.
type LunarMonth struct {
	Year        int      // Year is the lunar year.
	Month       int      // Month is the month number, 1 through 12.
	Leap        bool     // Leap marks the repeated (intercalary) month.
	DayCount    int      // DayCount is 29 or 30.
	First       SolarDay // First is the civil day of the first day of the month.
	IndexInYear int      // IndexInYear is the 0-based position among the year's months.
}

// MonthWithLeap returns the month number, negated for a leap month.
func (m LunarMonth) MonthWithLeap() int {
	if m.Leap {
		return -m.Month
	}
	return m.Month
}

// JulianDay returns the Julian Day of civil midnight starting the month.
func (m LunarMonth) JulianDay() JulianDay {
	return m.First.JulianDay()
}

// SixtyCycle returns the lunar month pillar. A leap month shares the pillar
// of the month it repeats.
func (m LunarMonth) SixtyCycle() SixtyCycle {
	year := lunarYearCycle(m.Year)
	stem := HeavenStem(floorMod(int(year.Stem())*2+m.Month+1, 10))
	branch := EarthBranch(floorMod(m.Month+1, 12))
	c, _ := FromStemBranch(stem, branch)
	return c
}

// Name returns the Chinese month name, prefixed with 闰 for a leap month.
func (m LunarMonth) Name() string {
	name := lunarMonthNames[m.Month-1]
	if m.Leap {
		return "闰" + name
	}
	return name
}

// String formats the month as "year name".
func (m LunarMonth) String() string {
	return strconv.Itoa(m.Year) + "年" + m.Name()
}

// LunarYear is a lunar year: the months from the first day of month 1 up to
// the next year's first day.
type LunarYear struct {
	Year   int
	leap   int
	months []LunarMonth
}

// LeapMonth returns the number of the month that is repeated, or 0.
func (y LunarYear) LeapMonth() int {
	return y.leap
}

// Months returns the months in order, the leap month after the month it repeats.
func (y LunarYear) Months() []LunarMonth {
	out := make([]LunarMonth, len(y.months))
	copy(out, y.months)
	return out
}

// MonthCount returns 12 or 13.
func (y LunarYear) MonthCount() int {
	return len(y.months)
}

// DayCount returns the number of days in the year.
func (y LunarYear) DayCount() int {
	n := 0
	for _, m := range y.months {
		n += m.DayCount
	}
	return n
}

// SixtyCycle returns the lunar year pillar.
func (y LunarYear) SixtyCycle() SixtyCycle {
	return lunarYearCycle(y.Year)
}

// lunarYearCycle returns (year - 4) mod 60.
func lunarYearCycle(year int) SixtyCycle {
	return NewSixtyCycle(year - epochSixtyYear)
}

// LunarDay is a day of a lunar month.
type LunarDay struct {
	Month LunarMonth
	Day   int // Day is 1 through Month.DayCount.
}

// SolarDay returns the civil day.
func (d LunarDay) SolarDay() SolarDay {
	return d.Month.First.Next(d.Day - 1)
}

// SixtyCycle returns the day pillar.
func (d LunarDay) SixtyCycle() SixtyCycle {
	return daySixtyCycle(d.SolarDay())
}

// Name returns the Chinese day name.
func (d LunarDay) Name() string {
	return lunarDayNames[d.Day-1]
}

// String formats the day as "year month day".
func (d LunarDay) String() string {
	return d.Month.String() + d.Name()
}

// suiLeapIndex returns the position, counted from the month containing the
// winter solstice opening the cycle of year, of the first month without a
// principal term. It returns 0 when the sui between the two solstices holds
// only twelve months.
func (e *Engine) suiLeapIndex(year int) int {
	var jq [25]float64
	first := e.solsticeDay(year)
	for k := range jq {
		jq[k] = e.calcQi(first + termDays*float64(k))
	}
	w := e.calcShuo(jq[0])
	if w > jq[0] {
		w -= lunationDays
	}
	var hs [14]float64
	for i := range hs {
		hs[i] = e.calcShuo(w + lunationDays*float64(i))
	}
	if hs[13] > jq[24] {
		return 0
	}
	i := 1
	for i < 13 && hs[i+1] > jq[2*i] {
		i++
	}
	return i
}

// leapMonth returns the leap month of lunar year, memoized.
func (e *Engine) leapMonth(year int) int {
	key := "leap:" + strconv.Itoa(year)
	v, _ := e.cache.load(&e.cache.leaps, year, key, func() (any, error) {
		if l := e.suiLeapIndex(year); l >= 3 {
			return l - 2, nil
		}
		// A leap eleventh or twelfth month opens the next sui.
		if l := e.suiLeapIndex(year + 1); l == 1 || l == 2 {
			return l + 10, nil
		}
		return 0, nil
	})
	return v.(int)
}

// monthOffset returns how many lunations after the new moon preceding the
// winter solstice the first month of year begins.
func (e *Engine) monthOffset(year int) int {
	switch {
	case year > 8 && year < 24:
		return 1
	case e.leapMonth(year-1) > 10 && year != 239 && year != 240:
		return 3
	}
	return 2
}

// lunarMonth computes a month without range checks, memoized.
func (e *Engine) lunarMonth(year, month int) (LunarMonth, error) {
	key := monthKey{year, month}
	sfKey := "month:" + strconv.Itoa(year) + ":" + strconv.Itoa(month)
	v, err := e.cache.load(&e.cache.months, key, sfKey, func() (any, error) {
		leap := e.leapMonth(year)
		m := month
		if m < 0 {
			m = -m
		}
		if month == 0 || m > 12 || (month < 0 && m != leap) {
			return nil, fmt.Errorf("lunar month %d of %d: %w", month, year, ErrInvalidDate)
		}
		index := m - 1
		if month < 0 || (leap > 0 && m > leap) {
			index++
		}

		solstice := e.solsticeDay(year)
		w := e.calcShuo(solstice)
		if w > solstice {
			w -= lunationDays
		}
		w += lunationDays * float64(e.monthOffset(year)+index)
		first := e.calcShuo(w)
		next := e.calcShuo(w + lunationDays)
		return LunarMonth{
			Year:        year,
			Month:       m,
			Leap:        month < 0,
			DayCount:    int(next - first),
			First:       JulianDay(J2000 + first).SolarDay(),
			IndexInYear: index,
		}, nil
	})
	if err != nil {
		return LunarMonth{}, err
	}
	return v.(LunarMonth), nil
}

// LunarMonth returns a month of a lunar year.
//
// Parameters:
//   - year: Lunar year, 1 through 9999.
//   - month: Month number 1 through 12, negated for the leap month.
//
// Returns:
//   - LunarMonth: The month.
//   - error: ErrOutOfRange, or ErrInvalidDate for a month the year lacks.
func (e *Engine) LunarMonth(year, month int) (LunarMonth, error) {
	if err := checkYear(year); err != nil {
		return LunarMonth{}, err
	}
	return e.lunarMonth(year, month)
}

// LunarYear returns the months of a lunar year.
func (e *Engine) LunarYear(year int) (LunarYear, error) {
	if err := checkYear(year); err != nil {
		return LunarYear{}, err
	}
	y := LunarYear{Year: year, leap: e.leapMonth(year)}
	for m := 1; m <= 12; m++ {
		lm, err := e.lunarMonth(year, m)
		if err != nil {
			return LunarYear{}, err
		}
		y.months = append(y.months, lm)
		if m == y.leap {
			lm, err := e.lunarMonth(year, -m)
			if err != nil {
				return LunarYear{}, err
			}
			y.months = append(y.months, lm)
		}
	}
	return y, nil
}

// monthCount returns 13 for a year with a leap month, otherwise 12.
func (e *Engine) monthCount(year int) int {
	if e.leapMonth(year) > 0 {
		return 13
	}
	return 12
}

// monthAt returns the month at 1-based position pos of year.
func (e *Engine) monthAt(year, pos int) (LunarMonth, error) {
	month := pos
	if leap := e.leapMonth(year); leap > 0 {
		if pos == leap+1 {
			month = -leap
		} else if pos > leap {
			month = pos - 1
		}
	}
	return e.lunarMonth(year, month)
}

// NextLunarMonth returns the month n months after m (before it for negative n),
// counting leap months.
func (e *Engine) NextLunarMonth(m LunarMonth, n int) (LunarMonth, error) {
	if n == 0 {
		return m, nil
	}
	year := m.Year
	pos := m.IndexInYear + 1 + n
	if n > 0 {
		for c := e.monthCount(year); pos > c; c = e.monthCount(year) {
			pos -= c
			year++
		}
	} else {
		for pos <= 0 {
			year--
			pos += e.monthCount(year)
		}
	}
	if err := checkYear(year); err != nil {
		return LunarMonth{}, err
	}
	return e.monthAt(year, pos)
}

// LunarDay returns a lunar day.
//
// Returns:
//   - LunarDay: The day.
//   - error: ErrOutOfRange, or ErrInvalidDate for a day beyond the month's length.
func (e *Engine) LunarDay(year, month, day int) (LunarDay, error) {
	m, err := e.LunarMonth(year, month)
	if err != nil {
		return LunarDay{}, err
	}
	if day < 1 || day > m.DayCount {
		return LunarDay{}, fmt.Errorf("lunar day %d of %s: %w", day, m, ErrInvalidDate)
	}
	return LunarDay{Month: m, Day: day}, nil
}

// LunarDayOf returns the lunar day falling on a civil day.
func (e *Engine) LunarDayOf(d SolarDay) (LunarDay, error) {
	if err := checkYear(d.Year); err != nil {
		return LunarDay{}, err
	}
	// Month m of a lunar year begins between the 10th of civil month m and
	// the end of civil month m+1, so it is at most one step from the answer
	// in either direction.
	m, err := e.lunarMonth(d.Year, d.Month)
	if err != nil {
		return LunarDay{}, err
	}
	days := d.Subtract(m.First)
	for days < 0 {
		if m, err = e.stepMonth(m, -1); err != nil {
			return LunarDay{}, err
		}
		days = d.Subtract(m.First)
	}
	for days >= m.DayCount {
		if m, err = e.stepMonth(m, 1); err != nil {
			return LunarDay{}, err
		}
		days = d.Subtract(m.First)
	}
	return LunarDay{Month: m, Day: days + 1}, nil
}

// stepMonth moves one month either way without range checks, so that the
// first days of year 1 still resolve into year 0.
func (e *Engine) stepMonth(m LunarMonth, dir int) (LunarMonth, error) {
	pos := m.IndexInYear + 1 + dir
	switch {
	case pos < 1:
		return e.monthAt(m.Year-1, e.monthCount(m.Year-1))
	case pos > e.monthCount(m.Year):
		return e.monthAt(m.Year+1, 1)
	}
	return e.monthAt(m.Year, pos)
}

// Warm computes the lunar years from through to concurrently so later
// lookups are served from the cache.
func (e *Engine) Warm(ctx context.Context, from, to int) error {
	if err := checkYear(from); err != nil {
		return err
	}
	if err := checkYear(to); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := from; y <= to; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := e.LunarYear(y)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
