package lunisolar

/*
Package lunisolar provides the correction-era grids and their reconciliation.

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

// correctionGrid describes how day lookups inside the correction era map
// onto event longitudes and table buckets.
//
// A query day jd falls in grid cell floor((jd+shift-origin)/step); cell k is
// the event at cumulative angle k*angle. Bucket k+base of the correction
// table nudges that event.
type correctionGrid struct {
	start   float64 // first Julian Day served by the table, shift applied
	shift   float64 // days added to a query before it is placed on the grid
	origin  float64 // Julian Day the grid is counted from
	step    float64 // grid spacing in days
	angle   float64 // longitude step per cell, radians
	base    int     // bucket of cell 0
	buckets int     // table length
}

var (
	solarTermGrid = correctionGrid{
		start:   solarTermTableStartJD - solarTermBucketShift,
		shift:   solarTermBucketShift,
		origin:  springEquinox1999JD,
		step:    tropicalYearDays / 24,
		angle:   math.Pi / 12,
		base:    8484,
		buckets: 7544,
	}
	newMoonGrid = correctionGrid{
		start:   newMoonTableStartJD - newMoonBucketShift,
		shift:   newMoonBucketShift,
		origin:  newMoon2000JD,
		step:    lunationDays,
		angle:   TwoPi,
		base:    17080,
		buckets: 16586,
	}
)

// cell returns the grid cell of a query day.
func (g correctionGrid) cell(jd float64) float64 {
	return math.Floor((jd + g.shift - g.origin) / g.step)
}

// covers reports whether a query day is served by the correction table.
func (g correctionGrid) covers(jd float64) bool {
	return jd >= g.start && jd < highPrecisionFromJD
}

// bucket returns the table bucket that nudges a cell.
func (g correctionGrid) bucket(cell float64) int {
	return int(cell) + g.base
}

// reconcile walks every event of the correction era and records how many
// days the closed-form tier must be moved to land on the civil day (UTC+8)
// of the exact solve.
func (g correctionGrid) reconcile(exact, low func(w, zone float64) float64) []int {
	zone := float64(defaultZoneHours) / 24
	out := make([]int, g.buckets)
	for k := g.cell(g.start) - 1; ; k++ {
		w := k * g.angle
		d := math.Floor(exact(w, zone) + 0.5)
		jd := d + J2000
		if jd >= highPrecisionFromJD {
			break
		}
		if jd < g.start {
			continue
		}
		b := g.bucket(k)
		if b < 0 || b >= g.buckets {
			panic(fmt.Sprintf("Assertion failed: bucket %d of cell %.0f outside the table", b, k))
		}
		off := int(d - math.Floor(low(w, zone)+0.5))
		if off < -1 || off > 1 {
			panic(fmt.Sprintf("Assertion failed: closed-form tier off by %d days at cell %.0f", off, k))
		}
		out[b] = off
	}
	return out
}

// ReconcileSolarTerms returns one day offset per solar term bucket of the
// correction era (1645-09 to 1959-12): the nudge that brings the closed-form
// tier onto the UTC+8 civil day of the exact solve. Encoded with
// EncodeCorrections it gives the default solar term table.
func ReconcileSolarTerms() []int {
	return solarTermGrid.reconcile(qiAccurate, qiLow)
}

// ReconcileNewMoons returns one day offset per lunation bucket of the
// correction era (619-01 to 1959-12). Encoded with EncodeCorrections it
// gives the default new moon table.
func ReconcileNewMoons() []int {
	return newMoonGrid.reconcile(shuoAccurate, shuoLow)
}
