package lunisolar

/*
Package lunisolar provides the solar and lunar longitude evaluators.

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

import "math"

// AllTerms selects every term of a series.
const AllTerms = -1

// moonL is the lunar series regrouped by power of T. It is derived once from
// moonPeriodicTerms at package initialisation and never mutated.
var moonL = buildMoonSeries()

// Products are wrapped in explicit float64 conversions throughout the
// evaluators so the compiler cannot fuse them into multiply-add
// instructions; day-boundary decisions depend on the exact rounding.

// termCount returns how many terms of a group to sum for a budget.
// The budget counts terms of the leading group; later groups get a
// proportional share plus one.
func termCount(budget, n, n0, group int) int {
	if budget < 0 || n0 == 0 {
		return n
	}
	m := int(float64(budget*n)/float64(n0) + 0.5)
	if group != 0 {
		m++
	}
	if m > n {
		m = n
	}
	return m
}

// earthLongitude returns the heliocentric ecliptic longitude of the Earth in
// radians for t Julian centuries from J2000 (dynamical time).
//
// Parameters:
//   - t: Julian centuries from J2000 (TT).
//   - budget: Number of leading L0 terms to sum, or AllTerms.
//
// Returns:
//   - float64: Longitude in radians, not reduced to [0, 2π).
func earthLongitude(t float64, budget int) float64 {
	t /= 10 // VSOP87 runs on millennia
	v := 0.0
	tn := 1.0
	n0 := len(earthL[0])
	for i, group := range earthL {
		m := termCount(budget, len(group), n0, i)
		c := 0.0
		for _, x := range group[:m] {
			c += float64(x.amp * math.Cos(x.phase+float64(x.rate*t)))
		}
		v += float64(c * tn)
		tn *= t
	}
	v /= vsopScale
	t2 := t * t
	v += (-0.0728 - 2.7702*t - 1.1019*t2 - 0.0996*t2*t) / SecondPerRad
	return v
}

// moonLongitude returns the geometric ecliptic longitude of the Moon in
// radians, referred to the mean equinox of date.
//
// Parameters:
//   - t: Julian centuries from J2000 (TT).
//   - budget: Number of leading periodic terms to sum, or AllTerms.
//
// Returns:
//   - float64: Longitude in radians, not reduced to [0, 2π).
func moonLongitude(t float64, budget int) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	p := moonArgumentPoly[argLPrime]
	v := (p[0] + float64(p[1]*t) + float64(p[2]*t2) + float64(p[3]*t3) + float64(p[4]*t4)) * degree
	tn := 1.0
	n0 := len(moonL[0])
	for i, group := range moonL {
		m := termCount(budget, len(group), n0, i)
		c := 0.0
		for _, x := range group[:m] {
			arg := x.phase + float64(x.rate*t) + float64(x.rate2*t2) + float64(x.rate3*t3) + float64(x.rate4*t4)
			c += float64(x.amp * math.Cos(arg))
		}
		v += float64(c * tn)
		tn *= t
	}
	return v
}

// buildMoonSeries folds the fundamental argument polynomials and the
// eccentricity factor into amplitude/phase/rate terms grouped by power of T.
// sin(x) is written as cos(x - π/2) so both series share one evaluator shape.
func buildMoonSeries() [3][]lunarTerm {
	var groups [3][]lunarTerm
	for _, p := range moonPeriodicTerms {
		var poly [5]float64
		for k, mult := range p.mult {
			if mult == 0 {
				continue
			}
			for j := range poly {
				poly[j] += float64(mult) * moonArgumentPoly[k][j]
			}
		}
		base := lunarTerm{
			phase: math.Mod(poly[0], 360)*degree - math.Pi/2,
			rate:  poly[1] * degree,
			rate2: poly[2] * degree,
			rate3: poly[3] * degree,
			rate4: poly[4] * degree,
		}
		amp := p.coef * 1e-6 * degree

		m := p.mult[argM]
		if m < 0 {
			m = -m
		}
		ecc := eccentricityPower(int(m))
		for g := range groups {
			if ecc[g] == 0 {
				continue
			}
			x := base
			x.amp = amp * ecc[g]
			groups[g] = append(groups[g], x)
		}
	}
	return groups
}

// eccentricityPower returns E^n truncated to T².
func eccentricityPower(n int) [3]float64 {
	out := [3]float64{1, 0, 0}
	for ; n > 0; n-- {
		var next [3]float64
		for i := range out {
			for j := range eccentricityPoly {
				if i+j < len(next) {
					next[i+j] += out[i] * eccentricityPoly[j]
				}
			}
		}
		out = next
	}
	return out
}

// sunAberration returns the annual aberration in longitude of the Sun, in radians.
func sunAberration(t float64) float64 {
	t2 := t * t
	v := -0.043126 + 628.301955*t - 0.000002732*t2 // mean anomaly of the Sun
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t2
	return -20.49552 * (1 + e*math.Cos(v)) / SecondPerRad
}

// moonAberration returns the aberration in longitude of the Moon, in radians.
func moonAberration(float64) float64 {
	return -3.4e-6
}

// EarthLongitude returns the heliocentric longitude of the Earth (radians)
// for t Julian centuries of dynamical time from J2000.
func EarthLongitude(t float64, budget int) float64 {
	return earthLongitude(t, budget)
}

// SolarLongitude returns the apparent geocentric ecliptic longitude of the Sun
// in radians: the Earth's heliocentric longitude turned by π, plus nutation
// and aberration.
//
// Parameters:
//   - t: Julian centuries from J2000 (TT).
//   - budget: Number of leading series terms to sum, or AllTerms.
//
// Returns:
//   - float64: Longitude in radians, not reduced to [0, 2π).
func SolarLongitude(t float64, budget int) float64 {
	return earthLongitude(t, budget) + NutationLongitude(t) + sunAberration(t) + math.Pi
}

// LunarLongitude returns the apparent geocentric ecliptic longitude of the
// Moon in radians.
//
// Parameters:
//   - t: Julian centuries from J2000 (TT).
//   - budget: Number of leading series terms to sum, or AllTerms.
//
// Returns:
//   - float64: Longitude in radians, not reduced to [0, 2π).
func LunarLongitude(t float64, budget int) float64 {
	return moonLongitude(t, budget) + NutationLongitude(t) + moonAberration(t)
}

// elongation returns Moon minus Sun longitude. Nutation cancels and is left out.
func elongation(t float64, moonBudget, sunBudget int) float64 {
	return moonLongitude(t, moonBudget) + moonAberration(t) - (earthLongitude(t, sunBudget) + sunAberration(t) + math.Pi)
}

// earthVelocity returns the Earth's mean-plus-perturbation angular velocity
// in radians per century.
func earthVelocity(t float64) float64 {
	f := 628.307585 * t
	return 628.332 + 21*math.Sin(1.527+f) + 0.44*math.Sin(1.48+f*2) + 0.129*math.Sin(5.82+f)*t + 0.00055*math.Sin(4.21+f)*t*t
}

// moonVelocity returns the Moon's angular velocity in radians per century.
func moonVelocity(t float64) float64 {
	v := 8399.71 - 914*math.Sin(0.7848+8328.691425*t+0.0001523*t*t)
	v -= 179*math.Sin(2.543+15542.7543*t) + 160*math.Sin(0.1874+7214.0629*t) + 62*math.Sin(3.14+16657.3828*t) +
		34*math.Sin(4.827+16866.9323*t) + 22*math.Sin(4.9+23871.4457*t) + 12*math.Sin(2.59+14914.4523*t) +
		7*math.Sin(0.23+6585.7609*t) + 5*math.Sin(0.9+25195.624*t) + 5*math.Sin(2.32-7700.3895*t) +
		5*math.Sin(3.88+8956.9934*t) + 5*math.Sin(0.49+7771.3771*t)
	return v
}
