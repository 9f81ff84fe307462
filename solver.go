package lunisolar

/*
Package lunisolar provides the event solver for solar terms and new moons.

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

// Mean angular rates (radians per century) used for initial guesses.
const (
	meanSolarRate      = 628.3319653318
	meanElongationRate = 7771.37714500204
)

// convergenceLimit is the largest residual (radians) a full solve may leave.
const convergenceLimit = 1e-4

// assertConverged panics when a solve left a residual no fixed pass count
// should produce. Such a residual means the series or the iteration is broken.
func assertConverged(residual float64, what string, target float64) {
	if math.Abs(residual) > convergenceLimit || math.IsNaN(residual) {
		panic(fmt.Sprintf("Assertion failed: %s solve for %.9f left residual %g rad", what, target, residual))
	}
}

// solveSolarLongitude returns the dynamical time (Julian centuries from J2000)
// at which the apparent solar longitude reaches w. Two Newton passes are made,
// the first with a 10-term series and the second with the whole series.
func solveSolarLongitude(w float64) float64 {
	v := meanSolarRate
	t := (w - 1.75347 - math.Pi) / v
	v = earthVelocity(t)
	t += (w - SolarLongitude(t, 10)) / v
	v = earthVelocity(t)
	t += (w - SolarLongitude(t, AllTerms)) / v
	assertConverged(w-SolarLongitude(t, AllTerms), "solar longitude", w)
	return t
}

// solveElongation returns the dynamical time (Julian centuries from J2000) at
// which the Moon-Sun elongation reaches w.
func solveElongation(w float64) float64 {
	v := meanElongationRate
	t := (w + 1.08472) / v
	t += (w - elongation(t, 3, 3)) / v
	v = moonVelocity(t) - earthVelocity(t)
	t += (w - elongation(t, 20, 10)) / v
	t += (w - elongation(t, AllTerms, 60)) / v
	assertConverged(w-elongation(t, AllTerms, 60), "elongation", w)
	return t
}

// solveSolarLongitudeFast is a two-step estimate of solveSolarLongitude with a
// closed-form equation of centre, good to a few minutes of time.
func solveSolarLongitudeFast(w float64) float64 {
	v := meanSolarRate
	t := (w - 1.75347 - math.Pi) / v
	t2 := t * t
	t -= (0.000005297*t2 + 0.0334166*math.Cos(4.669257+628.307585*t) + 0.0002061*math.Cos(2.67823+628.307585*t)*t) / v
	t += (w - earthLongitude(t, 8) - math.Pi + (20.5+17.2*math.Sin(2.1824-33.75705*t))/SecondPerRad) / v
	return t
}

// solveElongationFast is a two-step estimate of solveElongation.
func solveElongationFast(w float64) float64 {
	v := meanElongationRate
	t := (w + 1.08472) / v
	t2 := t * t
	t -= (-0.00003309*t2 + 0.10976*math.Cos(0.784758+8328.6914246*t+0.000152292*t2) +
		0.02224*math.Cos(0.18740+7214.0628654*t-0.00021848*t2) - 0.03342*math.Cos(4.669257+628.307585*t)) / v
	t2 = t * t
	l := moonLongitude(t, 20) - (4.8950632 + 628.3319653318*t + 0.000005297*t2 +
		0.0334166*math.Cos(4.669257+628.307585*t) + 0.0002061*math.Cos(2.67823+628.307585*t)*t +
		0.000349*math.Cos(4.6261+1256.61517*t) - 20.5/SecondPerRad)
	v = 7771.38 - 914*math.Sin(0.7848+8328.691425*t+0.0001523*t2) - 179*math.Sin(2.543+15542.7543*t) -
		160*math.Sin(0.1874+7214.0629*t)
	t += (w - l) / v
	return t
}

// qiLow returns the civil-zone time (days from J2000) of solar longitude w
// from a closed-form series. Accurate to a few minutes within the historical
// era covered by the correction table.
func qiLow(w, zone float64) float64 {
	v := meanSolarRate
	t := (w - 4.895062166) / v
	t -= (53*t*t + 334116*math.Cos(4.67+628.307585*t) + 2061*math.Cos(2.678+628.3076*t)*t) / v / 10000000
	n := 48950621.66 + 6283319653.318*t + 53*t*t +
		334166*math.Cos(4.669257+628.307585*t) +
		3489*math.Cos(4.6261+1256.61517*t) +
		2060.6*math.Cos(2.67823+628.307585*t)*t -
		994 - 834*math.Sin(2.1824-33.75705*t)
	t -= (n/10000000-w)/628.332 + (32*(t+1.8)*(t+1.8)-20)/SecondsPerDay/DaysPerCentury
	return t*DaysPerCentury + zone
}

// shuoLow returns the civil-zone time (days from J2000) of elongation w from
// a closed-form series.
func shuoLow(w, zone float64) float64 {
	v := meanElongationRate
	t := (w + 1.08472) / v
	t -= (-0.0000331*t*t+0.10976*math.Cos(0.785+8328.6914*t)+0.02224*math.Cos(0.187+7214.0629*t)-0.03342*math.Cos(4.669+628.3076*t))/v +
		(32*(t+1.8)*(t+1.8)-20)/SecondsPerDay/DaysPerCentury
	return t*DaysPerCentury + zone
}

// qiHigh returns the civil-zone time (days from J2000) of solar longitude w.
// The fast estimate is used unless it lands near a civil midnight, where the
// full solve decides the day.
func qiHigh(w, zone float64) float64 {
	t := solveSolarLongitudeFast(w) * DaysPerCentury
	t = t - deltaTDays(t) + zone
	v := math.Mod(t+0.5, 1) * SecondsPerDay
	if v < termBoundarySeconds || v > SecondsPerDay-termBoundarySeconds {
		t = solveSolarLongitude(w)*DaysPerCentury - deltaTDays(t) + zone
	}
	return t
}

// shuoHigh returns the civil-zone time (days from J2000) of elongation w.
func shuoHigh(w, zone float64) float64 {
	t := solveElongationFast(w) * DaysPerCentury
	t = t - deltaTDays(t) + zone
	v := math.Mod(t+0.5, 1) * SecondsPerDay
	if v < moonBoundarySeconds || v > SecondsPerDay-moonBoundarySeconds {
		t = solveElongation(w)*DaysPerCentury - deltaTDays(t) + zone
	}
	return t
}

// qiAccurate returns the exact civil-zone time (days from J2000) of solar longitude w.
func qiAccurate(w, zone float64) float64 {
	t := solveSolarLongitude(w) * DaysPerCentury
	return t - deltaTDays(t) + zone
}

// shuoAccurate returns the exact civil-zone time (days from J2000) of elongation w.
func shuoAccurate(w, zone float64) float64 {
	t := solveElongation(w) * DaysPerCentury
	return t - deltaTDays(t) + zone
}

// termLongitude returns the cumulative solar longitude of the term nearest
// day d (days from J2000).
func termLongitude(d float64) float64 {
	return math.Floor((d+293)/tropicalYearDays*24) * math.Pi / 12
}

// qiNear returns the exact time of the solar term whose day number is
// near d (days from J2000). The bucket may miss by one term around the
// boundaries, in which case the neighbour is solved instead.
func qiNear(d, zone float64) float64 {
	step := math.Pi / 12
	w := termLongitude(d)
	a := qiAccurate(w, zone)
	if a-d > 5 {
		return qiAccurate(w-step, zone)
	}
	if a-d < -5 {
		return qiAccurate(w+step, zone)
	}
	return a
}

// shuoNear returns the exact time of the new moon whose day number is near d.
func shuoNear(d, zone float64) float64 {
	return shuoAccurate(math.Floor((d+8)/lunationDays)*TwoPi, zone)
}

// calcQi returns the day number (days from J2000, noon based) of the solar
// term nearest d.
//
// Inside the correction era, and only for the UTC+8 zone the tables are
// fitted to, the closed-form tier is used and nudged by the decoded offset
// for its bucket. Everywhere else the high tier decides.
func (e *Engine) calcQi(d float64) float64 {
	jd := d + J2000
	k := solarTermGrid.cell(jd)
	w := k * solarTermGrid.angle
	if !e.fitted || !solarTermGrid.covers(jd) {
		return math.Floor(qiHigh(w, e.zone) + 0.5)
	}
	out := math.Floor(qiLow(w, e.zone) + 0.5)
	return out + float64(e.termCorrections.Offset(solarTermGrid.bucket(k)))
}

// calcShuo returns the day number (days from J2000, noon based) of the new
// moon nearest d.
func (e *Engine) calcShuo(d float64) float64 {
	jd := d + J2000
	k := newMoonGrid.cell(jd)
	w := k * newMoonGrid.angle
	if !e.fitted || !newMoonGrid.covers(jd) {
		return math.Floor(shuoHigh(w, e.zone) + 0.5)
	}
	out := math.Floor(shuoLow(w, e.zone) + 0.5)
	return out + float64(e.moonCorrections.Offset(newMoonGrid.bucket(k)))
}

// SolarTermTime returns the instant, as a Julian Day in the engine's civil
// zone, at which the apparent solar longitude reaches the cumulative angle
// longitude (radians; 0 is the spring equinox of 1999-03-21).
func (e *Engine) SolarTermTime(longitude float64) JulianDay {
	return JulianDay(J2000 + qiAccurate(longitude, e.zone))
}

// NewMoonTime returns the instant, as a Julian Day in the engine's civil zone,
// at which the Moon-Sun elongation reaches the cumulative angle w (radians,
// counted from J2000; multiples of 2π are new moons).
func (e *Engine) NewMoonTime(w float64) JulianDay {
	return JulianDay(J2000 + shuoAccurate(w, e.zone))
}

// NewMoonNear returns the exact instant of the new moon whose lunation
// contains day d, give or take the few days by which the lunation grid
// leads the true conjunction.
func (e *Engine) NewMoonNear(d SolarDay) JulianDay {
	return JulianDay(J2000 + shuoNear(float64(d.dayNumber()), e.zone))
}
