package lunisolar

/*
Package lunisolar provides the four pillars of an instant.

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

// Pillars are the year, month, day and hour sixty-cycle values of an instant.
type Pillars struct {
	Year  SixtyCycle
	Month SixtyCycle
	Day   SixtyCycle
	Hour  SixtyCycle
}

// String joins the four pillars with spaces.
func (p Pillars) String() string {
	return p.Year.Name() + " " + p.Month.Name() + " " + p.Day.Name() + " " + p.Hour.Name()
}

// LunarHour is a two-hour period of a lunar day.
type LunarHour struct {
	Time   SolarTime   // Time is the civil instant the hour was derived from.
	Day    LunarDay    // Day is the lunar day of the civil date.
	Branch EarthBranch // Branch names the period, 子 through 亥.
	Pillar SixtyCycle  // Pillar is the hour pillar.
}

// Name returns the branch name followed by 时.
func (h LunarHour) Name() string {
	return h.Branch.Name() + "时"
}

// YearPillar returns the year pillar of st. The year changes at the exact
// instant of 立春 rather than on a civil or lunar new year.
func (e *Engine) YearPillar(st SolarTime) (SixtyCycle, error) {
	if err := checkYear(st.Year); err != nil {
		return 0, err
	}
	c := NewSixtyCycle(st.Year - epochSixtyYear)
	if st.JulianDay() < e.term(st.Year, LiChun).JulianDay {
		c = c.Next(-1)
	}
	return c, nil
}

// MonthPillar returns the month pillar of st. Month branches follow the jie
// terms, 立春 opening 寅; the stem follows from the year stem by the
// five-tiger rule.
func (e *Engine) MonthPillar(st SolarTime) (SixtyCycle, error) {
	year, err := e.YearPillar(st)
	if err != nil {
		return 0, err
	}
	term, err := e.TermAt(st)
	if err != nil {
		return 0, err
	}
	jie := term.Index
	if !term.IsJie() {
		jie = floorMod(jie-1, 24)
	}
	branch := EarthBranch(((jie-1)/2 + 1) % 12)
	k := floorMod(int(branch)-2, 12) // months since 寅
	stem := HeavenStem((int(year.Stem()+1)*2 + k) % 10)
	c, err := FromStemBranch(stem, branch)
	if err != nil {
		panic("Assertion failed: five-tiger rule produced " + err.Error())
	}
	return c, nil
}

// DayPillar returns the day pillar of st under the engine's rat-hour convention.
func (e *Engine) DayPillar(st SolarTime) (SixtyCycle, error) {
	if err := checkYear(st.Year); err != nil {
		return 0, err
	}
	return e.ratHour.DayPillar(st, daySixtyCycle(st.SolarDay)), nil
}

// HourPillar returns the hour pillar of st. From 23:00 the stem is taken
// from the following day.
func (e *Engine) HourPillar(st SolarTime) (SixtyCycle, error) {
	if err := checkYear(st.Year); err != nil {
		return 0, err
	}
	day := daySixtyCycle(st.SolarDay)
	if st.Hour >= 23 {
		day = day.Next(1)
	}
	return hourSixtyCycle(st.Hour, day.Stem()), nil
}

// Pillars returns the year, month, day and hour pillars of st.
func (e *Engine) Pillars(st SolarTime) (Pillars, error) {
	var p Pillars
	var err error
	if p.Year, err = e.YearPillar(st); err != nil {
		return Pillars{}, err
	}
	if p.Month, err = e.MonthPillar(st); err != nil {
		return Pillars{}, err
	}
	if p.Day, err = e.DayPillar(st); err != nil {
		return Pillars{}, err
	}
	if p.Hour, err = e.HourPillar(st); err != nil {
		return Pillars{}, err
	}
	return p, nil
}

// LunarHour returns the lunar hour containing st.
func (e *Engine) LunarHour(st SolarTime) (LunarHour, error) {
	day, err := e.LunarDayOf(st.SolarDay)
	if err != nil {
		return LunarHour{}, err
	}
	pillar, err := e.HourPillar(st)
	if err != nil {
		return LunarHour{}, err
	}
	return LunarHour{Time: st, Day: day, Branch: hourBranch(st.Hour), Pillar: pillar}, nil
}
