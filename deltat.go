package lunisolar

/*
Package lunisolar provides the ΔT and nutation models.

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
	"math"
	"sort"
)

// deltaTAcceleration is the secular acceleration (seconds per century²) used
// for extrapolating ΔT past the last fitted anchor.
const deltaTAcceleration = 31

// deltaTExtrapolate is the long-term parabola -20 + k*((y-1820)/100)².
func deltaTExtrapolate(year, k float64) float64 {
	dy := (year - 1820) / 100
	return -20 + k*dy*dy
}

// DeltaT returns ΔT = TT - UT in seconds for a (fractional) year.
//
// Inside the fitted range the value comes from a cubic segment selected by
// binary search over the anchor years. Within 100 years past the last anchor
// the extrapolating parabola is blended against the last anchor value so that
// the curve is continuous; beyond that the parabola is used alone.
//
// Parameters:
//   - year: Decimal year (e.g. 2024.5).
//
// Returns:
//   - float64: ΔT in seconds.
func DeltaT(year float64) float64 {
	last := deltaTTable[len(deltaTTable)-1]
	y0, t0 := last[0], last[1]
	if year >= y0 {
		if year > y0+100 {
			return deltaTExtrapolate(year, deltaTAcceleration)
		}
		v := deltaTExtrapolate(year, deltaTAcceleration)
		dv := deltaTExtrapolate(y0, deltaTAcceleration) - t0
		return v - dv*(y0+100-year)/100
	}

	// First segment whose successor anchor lies after year.
	i := sort.Search(len(deltaTTable)-1, func(i int) bool {
		return year < deltaTTable[i+1][0]
	})
	if i == len(deltaTTable)-1 {
		panic("Assertion failed: ΔT segment lookup ran past the last anchor")
	}
	seg := deltaTTable[i]
	t1 := (year - seg[0]) / (deltaTTable[i+1][0] - seg[0]) * 10
	t2 := t1 * t1
	t3 := t2 * t1
	return seg[1] + seg[2]*t1 + seg[3]*t2 + seg[4]*t3
}

// deltaTDays returns ΔT in days for t days from J2000.
func deltaTDays(t float64) float64 {
	return DeltaT(t/365.2425+2000) / SecondsPerDay
}

// NutationLongitude returns the nutation in longitude, in radians, for t
// Julian centuries from J2000. Only the leading term carries a time-varying
// coefficient.
func NutationLongitude(t float64) float64 {
	t2 := t * t
	dl := 0.0
	for i, row := range nutationTerms {
		a := 0.0
		if i == 0 {
			a = -1.742 * t
		}
		dl += float64((row[3] + a) * math.Sin(row[0]+row[1]*t+row[2]*t2))
	}
	return dl / 100 / SecondPerRad
}

// NutationObliquity returns the nutation in obliquity, in radians, for t
// Julian centuries from J2000.
func NutationObliquity(t float64) float64 {
	t2 := t * t
	de := 0.0
	for i, row := range nutationTerms {
		b := 0.0
		if i == 0 {
			b = 0.089 * t
		}
		de += float64((row[4] + b) * math.Cos(row[0]+row[1]*t+row[2]*t2))
	}
	return de / 100 / SecondPerRad
}
