// ./internal_types.go
package lunisolar

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

/*
Package lunisolar provides internal definitions for the calendar engine.

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

// Internal definitions for the calendar engine.
//
// This file contains internal data structures used by the lunisolar
// package. These are not intended for direct use by users of the package.

// Time scale notes:
//
// All internal event times are expressed as days from J2000 in the engine's
// civil zone (UTC+8 unless configured otherwise). The series themselves run on
// dynamical time: solving for a longitude gives TT, from which ΔT is
// subtracted and the zone offset added.
//
// Day numbers returned by calcQi and calcShuo are integers d such that
// J2000 + d is the Julian Day at noon of the civil day on which the event
// falls. Exact instants are plain fractional days on the same axis.
//
// Series time arguments:
//
//   - earthLongitude takes Julian centuries and divides by 10 internally
//     because VSOP87 is tabulated in millennia.
//   - moonLongitude takes Julian centuries directly.
//   - The solvers return Julian centuries; callers scale by DaysPerCentury.

// term is one periodic term amp*cos(phase + rate*T) of a VSOP87 group.
type term struct {
	amp   float64 // amp is the amplitude in units of 1/vsopScale radian.
	phase float64 // phase is the phase at T = 0 in radians.
	rate  float64 // rate is the angular rate in radians per millennium.
}

// lunarTerm is one periodic term of the lunar series,
// amp*cos(phase + rate*T + rate2*T² + rate3*T³ + rate4*T⁴), T in centuries.
type lunarTerm struct {
	amp   float64 // amp is the amplitude in radians.
	phase float64 // phase is the phase at T = 0 in radians.
	rate  float64 // rate is the angular rate in radians per century.
	rate2 float64 // rate2 is the T² coefficient of the argument.
	rate3 float64 // rate3 is the T³ coefficient of the argument.
	rate4 float64 // rate4 is the T⁴ coefficient of the argument.
}

// monthKey identifies a memoized lunar month; month is negative for a leap month.
type monthKey struct {
	year  int
	month int
}

// monthCache memoizes derived lunar months and per-year leap months.
// It is owned by a single Engine and safe for concurrent use: values are
// published through sync.Map and concurrent misses for the same key are
// collapsed by singleflight so each key is computed once.
type monthCache struct {
	months sync.Map // monthKey -> LunarMonth
	leaps  sync.Map // int year -> int leap month (0 when none)
	terms  sync.Map // solarTermKey -> SolarTerm
	group  singleflight.Group
}

// load returns the value stored under key in m, computing and publishing it
// on a miss. Concurrent misses sharing flight are collapsed into one call.
// Errors are returned to every waiter and never cached.
func (c *monthCache) load(m *sync.Map, key any, flight string, compute func() (any, error)) (any, error) {
	if v, ok := m.Load(key); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(flight, func() (any, error) {
		if v, ok := m.Load(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		m.Store(key, v)
		return v, nil
	})
	return v, err
}
