package lunisolar

/*
Package lunisolar provides the rat-hour conventions.

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

import "fmt"

// RatHourConvention decides which day pillar governs 23:00 through 23:59.
//
// The rat hour (子时) runs from 23:00 to 01:00 and so straddles civil
// midnight. Its hour pillar is always derived from the following day's stem;
// conventions differ only on whether the late half also takes the next day's
// day pillar.
type RatHourConvention interface {
	// DayPillar returns the day pillar for st given the pillar of st's civil day.
	DayPillar(st SolarTime, civil SixtyCycle) SixtyCycle
	// Name identifies the convention in configuration.
	Name() string
}

// UnifiedRatHour treats 23:00 as the start of the next day.
type UnifiedRatHour struct{}

// DayPillar implements RatHourConvention.
func (UnifiedRatHour) DayPillar(st SolarTime, civil SixtyCycle) SixtyCycle {
	if st.Hour >= 23 {
		return civil.Next(1)
	}
	return civil
}

// Name implements RatHourConvention.
func (UnifiedRatHour) Name() string { return "unified" }

// SplitRatHour keeps the late rat hour (晚子时) on the civil day.
type SplitRatHour struct{}

// DayPillar implements RatHourConvention.
func (SplitRatHour) DayPillar(_ SolarTime, civil SixtyCycle) SixtyCycle {
	return civil
}

// Name implements RatHourConvention.
func (SplitRatHour) Name() string { return "split" }

// RatHourConventionByName returns the convention named "unified" or "split".
func RatHourConventionByName(name string) (RatHourConvention, error) {
	switch name {
	case "", UnifiedRatHour{}.Name():
		return UnifiedRatHour{}, nil
	case SplitRatHour{}.Name():
		return SplitRatHour{}, nil
	}
	return nil, fmt.Errorf("rat hour convention %q: %w", name, ErrInvalidIndex)
}

// hourBranch returns the branch of the two-hour period containing hour.
func hourBranch(hour int) EarthBranch {
	return EarthBranch(((hour + 1) / 2) % 12)
}

// hourSixtyCycle returns the hour pillar given the stem of the day that
// governs it. The five-rat rule fixes the stem of 子 hour from the day stem.
func hourSixtyCycle(hour int, dayStem HeavenStem) SixtyCycle {
	branch := hourBranch(hour)
	stem := HeavenStem((int(dayStem)%5*2 + int(branch)) % 10)
	c, err := FromStemBranch(stem, branch)
	if err != nil {
		panic("Assertion failed: five-rat rule produced " + err.Error())
	}
	return c
}
