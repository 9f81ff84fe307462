package lunisolar

/*
Package lunisolar provides the 24 solar terms of a year.

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
)

// SolarTerm is one of the 24 yearly boundaries of 15° solar longitude.
//
// Terms are grouped by the year whose cycle they open: index 0 (DongZhi) of
// year Y is the winter solstice in December of Y-1, index 3 (LiChun) falls in
// February of Y and index 23 (DaXue) in December of Y.
//
// Terms before the correction era (1645) are placed by modern astronomy and
// need not agree with the calendars actually issued at the time.
//
// Day is decided by the day-level tiers and JulianDay by the exact solve.
// With the default tables both fall on the same civil day; tables supplied
// through WithSolarTermCorrections may move Day off the day of JulianDay, in
// which case TermOfDay follows Day and TermAt follows JulianDay.
type SolarTerm struct {
	Year      int       // Year is the cycle the term belongs to.
	Index     int       // Index is the position in the cycle, 0 through 23.
	Day       SolarDay  // Day is the civil day the term falls on.
	JulianDay JulianDay // JulianDay is the exact instant in the engine's zone.
}

// Name returns the Chinese name of the term.
func (s SolarTerm) Name() string {
	return solarTermNames[s.Index]
}

// String returns the name.
func (s SolarTerm) String() string {
	return s.Name()
}

// IsJie reports whether the term opens a solar month (odd index).
func (s SolarTerm) IsJie() bool {
	return s.Index%2 == 1
}

// IsQi reports whether the term is a principal term (zhongqi, even index).
func (s SolarTerm) IsQi() bool {
	return s.Index%2 == 0
}

// solarTermKey identifies a memoized term.
type solarTermKey struct {
	year  int
	index int
}

// solsticeDay returns the noon-based day number (from J2000) of the winter
// solstice opening the term cycle of year.
func (e *Engine) solsticeDay(year int) float64 {
	jd := math.Floor(float64(year-2000)*tropicalYearDays + 180)
	w := math.Floor((jd-355+183)/tropicalYearDays)*tropicalYearDays + 355
	if e.calcQi(w) > jd {
		w -= tropicalYearDays
	}
	return e.calcQi(w)
}

// termDay returns the noon-based day number of term index of year. Index may
// run past 23 or below 0 into the neighbouring cycles.
func (e *Engine) termDay(year, index int) float64 {
	return e.calcQi(e.solsticeDay(year) + termDays*float64(index))
}

// term returns a solar term without range checks, memoized per engine.
func (e *Engine) term(year, index int) SolarTerm {
	year += floorDiv(index, 24)
	index = floorMod(index, 24)
	key := solarTermKey{year, index}
	if v, ok := e.cache.terms.Load(key); ok {
		return v.(SolarTerm)
	}
	d := e.termDay(year, index)
	st := SolarTerm{
		Year:      year,
		Index:     index,
		Day:       JulianDay(J2000 + d).SolarDay(),
		JulianDay: JulianDay(J2000 + qiNear(d, e.zone)),
	}
	v, _ := e.cache.terms.LoadOrStore(key, st)
	return v.(SolarTerm)
}

// SolarTerm returns term index (0 through 23) of the cycle for year.
//
// Parameters:
//   - year: Cycle year, 1 through 9999.
//   - index: Term index; see the DongZhi through DaXue constants.
//
// Returns:
//   - SolarTerm: The term with its civil day and exact instant.
//   - error: ErrOutOfRange or ErrInvalidIndex.
func (e *Engine) SolarTerm(year, index int) (SolarTerm, error) {
	if err := checkYear(year); err != nil {
		return SolarTerm{}, err
	}
	if index < 0 || index > 23 {
		return SolarTerm{}, fmt.Errorf("solar term %d: %w", index, ErrInvalidIndex)
	}
	return e.term(year, index), nil
}

// SolarTerms returns the 24 terms of the cycle for year, in index order.
func (e *Engine) SolarTerms(year int) ([24]SolarTerm, error) {
	var out [24]SolarTerm
	if err := checkYear(year); err != nil {
		return out, err
	}
	for i := range out {
		out[i] = e.term(year, i)
	}
	return out, nil
}

// NextSolarTerm returns the term n steps after s (before it for negative n).
func (e *Engine) NextSolarTerm(s SolarTerm, n int) SolarTerm {
	return e.term(s.Year, s.Index+n)
}

// TermAt returns the solar term in effect at st: the latest term whose
// exact instant is not after st.
func (e *Engine) TermAt(st SolarTime) (SolarTerm, error) {
	if err := checkYear(st.Year); err != nil {
		return SolarTerm{}, err
	}
	jd := st.JulianDay()
	// First guess from the mean term length, counted from the 1999 winter solstice.
	ord := 2000*24 + int(math.Floor((float64(jd)-2451534.8)/termDays))
	t := e.term(floorDiv(ord, 24), floorMod(ord, 24))
	for t.JulianDay > jd {
		t = e.NextSolarTerm(t, -1)
	}
	for {
		n := e.NextSolarTerm(t, 1)
		if n.JulianDay > jd {
			return t, nil
		}
		t = n
	}
}

// TermOfDay returns the solar term in effect on a civil day, judged by the
// days the terms fall on rather than their instants.
func (e *Engine) TermOfDay(d SolarDay) (SolarTerm, error) {
	if err := checkYear(d.Year); err != nil {
		return SolarTerm{}, err
	}
	ord := 2000*24 + int(math.Floor((float64(d.JulianDay())-2451534.8)/termDays))
	t := e.term(floorDiv(ord, 24), floorMod(ord, 24))
	for d.Before(t.Day) {
		t = e.NextSolarTerm(t, -1)
	}
	for {
		n := e.NextSolarTerm(t, 1)
		if d.Before(n.Day) {
			return t, nil
		}
		t = n
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b in [0, b) for positive b.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
