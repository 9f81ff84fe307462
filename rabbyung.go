package lunisolar

/*
Package lunisolar provides Tibetan Rab-Byung years, months and days.

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
	"slices"
	"strconv"
	"strings"
)

// Supported Rab-Byung years.
const (
	RabByungMinYear = 1950
	RabByungMaxYear = 2050
)

var rabByungElementNames = [5]string{"木", "火", "土", "铁", "水"}

var rabByungMonthAliases = [12]string{"神变月", "苦行月", "具香月", "萨嘎月", "作净月", "明净月", "具醉月", "具贤月", "天降月", "持众月", "庄严月", "满意月"}

var rabByungZodiacNames = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// RabByungElement is one of wood, fire, earth, iron and water.
type RabByungElement int

// Name returns the Chinese name of the element.
func (e RabByungElement) Name() string {
	return rabByungElementNames[e]
}

// RabByungGender is male (yang) or female (yin).
type RabByungGender int

// Genders.
const (
	RabByungMale RabByungGender = iota
	RabByungFemale
)

// Name returns 阳 for male and 阴 for female.
func (g RabByungGender) Name() string {
	if g == RabByungMale {
		return "阳"
	}
	return "阴"
}

// RabByungYear is a year of the Tibetan sixty-year cycle. The first cycle
// began in 1027 (丁卯).
type RabByungYear struct {
	Year        int             // Year is the civil year.
	Cycle       int             // Cycle is the 1-based Rab-Byung number.
	YearInCycle int             // YearInCycle runs 1 through 60.
	Element     RabByungElement // Element follows the stem.
	Gender      RabByungGender  // Gender follows stem parity.
	Zodiac      EarthBranch     // Zodiac is the branch animal.
	SixtyCycle  SixtyCycle      // SixtyCycle is the Chinese year pillar of the same year.
}

// NewRabByungYear returns the Rab-Byung attributes of a civil year.
//
// Returns:
//   - RabByungYear: The year.
//   - error: ErrOutOfRange naming the supported range.
func NewRabByungYear(year int) (RabByungYear, error) {
	if year < RabByungMinYear || year > RabByungMaxYear {
		return RabByungYear{}, fmt.Errorf("rab-byung year %d: %w [%d, %d]", year, ErrOutOfRange, RabByungMinYear, RabByungMaxYear)
	}
	c := lunarYearCycle(year)
	n := year - epochRabByung
	return RabByungYear{
		Year:        year,
		Cycle:       n/60 + 1,
		YearInCycle: n%60 + 1,
		Element:     RabByungElement(c.Stem() / 2),
		Gender:      RabByungGender(c.Stem() % 2),
		Zodiac:      c.Branch(),
		SixtyCycle:  c,
	}, nil
}

// Name returns the traditional name: cycle ordinal, element, gender and animal.
func (y RabByungYear) Name() string {
	return fmt.Sprintf("第%d饶迥%s%s%s年", y.Cycle, y.Element.Name(), y.Gender.Name(), rabByungZodiacNames[y.Zodiac])
}

// LeapMonth returns the number of the month that is repeated, or 0.
func (y RabByungYear) LeapMonth() int {
	return rabByungYears[y.Year-RabByungMinYear].leap
}

// Months returns the months in order, the leap month before the month it
// repeats.
func (y RabByungYear) Months() []RabByungMonth {
	return rabByungMonths(y.Year)
}

// First returns the civil day of Losar.
func (y RabByungYear) First() SolarDay {
	return solarDayOfNumber(rabByungYears[y.Year-RabByungMinYear].first)
}

// DayCount returns the number of civil days in the year.
func (y RabByungYear) DayCount() int {
	n := 0
	for _, m := range rabByungMonths(y.Year) {
		n += m.DayCount
	}
	return n
}

type rabByungYearRow struct {
	first int
	leap  int
	days  string
}

// RabByungMonth is one month of a Rab-Byung year. Its lunar days run 1
// through 30, but a day that owns no civil day is skipped and a day that
// spans two civil days is counted twice, the first of them as a leap day.
type RabByungMonth struct {
	Year        int      // Year is the civil year in which the Rab-Byung year begins.
	Month       int      // Month is the month number, 1 through 12.
	Leap        bool     // Leap marks the repeated month, which precedes the regular one.
	DayCount    int      // DayCount is the number of civil days in the month.
	First       SolarDay // First is the civil day of the first lunar day present.
	IndexInYear int      // IndexInYear is the 0-based position among the year's months.
	missing     []int
	doubled     []int
}

// rabByungMonths expands the table row of a year in range.
func rabByungMonths(year int) []RabByungMonth {
	row := rabByungYears[year-RabByungMinYear]
	tokens := strings.Fields(row.days)
	out := make([]RabByungMonth, 0, len(tokens))
	dn, month := row.first, 1
	for i, tok := range tokens {
		m := RabByungMonth{Year: year, Month: month, IndexInYear: i, First: solarDayOfNumber(dn)}
		if month == row.leap && (i == 0 || out[i-1].Month != month) {
			m.Leap = true
		} else {
			month++
		}
		m.missing, m.doubled = parseRabByungDays(tok)
		m.DayCount = 30 - len(m.missing) + len(m.doubled)
		dn += m.DayCount
		out = append(out, m)
	}
	if len(out) != 12 && len(out) != 13 {
		panic(fmt.Sprintf("Assertion failed: rab-byung year %d has %d months", year, len(out)))
	}
	return out
}

// parseRabByungDays splits a month token such as "-4+12-28" into its
// missing and doubled days.
func parseRabByungDays(tok string) (missing, doubled []int) {
	if tok == "." {
		return nil, nil
	}
	for len(tok) > 0 {
		end := strings.IndexAny(tok[1:], "+-") + 1
		if end == 0 {
			end = len(tok)
		}
		d, err := strconv.Atoi(tok[1:end])
		if err != nil || d < 1 || d > 30 {
			panic(fmt.Sprintf("Assertion failed: rab-byung day token %q", tok))
		}
		if tok[0] == '-' {
			missing = append(missing, d)
		} else {
			doubled = append(doubled, d)
		}
		tok = tok[end:]
	}
	return missing, doubled
}

// NewRabByungMonth returns a Rab-Byung month; a negative month selects the
// leap month.
//
// Returns:
//   - RabByungMonth: The month.
//   - error: ErrOutOfRange, or ErrInvalidDate for a month the year lacks.
func NewRabByungMonth(year, month int) (RabByungMonth, error) {
	if _, err := NewRabByungYear(year); err != nil {
		return RabByungMonth{}, err
	}
	for _, m := range rabByungMonths(year) {
		if m.MonthWithLeap() == month {
			return m, nil
		}
	}
	return RabByungMonth{}, fmt.Errorf("rab-byung month %d of %d: %w", month, year, ErrInvalidDate)
}

// MonthWithLeap returns the month number, negated for a leap month.
func (m RabByungMonth) MonthWithLeap() int {
	if m.Leap {
		return -m.Month
	}
	return m.Month
}

// MissingDays returns the lunar days of the month that own no civil day.
func (m RabByungMonth) MissingDays() []int {
	return slices.Clone(m.missing)
}

// LeapDays returns the lunar days of the month that span two civil days.
func (m RabByungMonth) LeapDays() []int {
	return slices.Clone(m.doubled)
}

// Days returns one entry per civil day of the month.
func (m RabByungMonth) Days() []RabByungDay {
	out := make([]RabByungDay, 0, m.DayCount)
	for d := 1; d <= 30; d++ {
		if slices.Contains(m.missing, d) {
			continue
		}
		if slices.Contains(m.doubled, d) {
			out = append(out, RabByungDay{Month: m, Day: d, Leap: true})
		}
		out = append(out, RabByungDay{Month: m, Day: d})
	}
	return out
}

// Name returns the month name, prefixed with 闰 for a leap month.
func (m RabByungMonth) Name() string {
	name := lunarMonthNames[m.Month-1]
	if m.Leap {
		return "闰" + name
	}
	return name
}

// Alias returns the traditional name of the month, such as 神变月.
func (m RabByungMonth) Alias() string {
	return rabByungMonthAliases[m.Month-1]
}

// String formats the month as "year name".
func (m RabByungMonth) String() string {
	y, _ := NewRabByungYear(m.Year)
	return y.Name() + m.Name()
}

// RabByungDay is one civil day of a Rab-Byung month.
type RabByungDay struct {
	Month RabByungMonth
	Day   int  // Day is the lunar day, 1 through 30.
	Leap  bool // Leap marks the first civil day of a lunar day that spans two.
}

// NewRabByungDay returns a Rab-Byung day; a negative month selects the leap
// month and a negative day the first civil day of a doubled lunar day.
//
// Returns:
//   - RabByungDay: The day.
//   - error: ErrOutOfRange, or ErrInvalidDate for a day the month skips or
//     a leap day the month does not have.
func NewRabByungDay(year, month, day int) (RabByungDay, error) {
	m, err := NewRabByungMonth(year, month)
	if err != nil {
		return RabByungDay{}, err
	}
	leap := day < 0
	if leap {
		day = -day
	}
	if day < 1 || day > 30 || slices.Contains(m.missing, day) || (leap && !slices.Contains(m.doubled, day)) {
		return RabByungDay{}, fmt.Errorf("rab-byung day %d of %s: %w", day, m, ErrInvalidDate)
	}
	return RabByungDay{Month: m, Day: day, Leap: leap}, nil
}

// RabByungDayOf returns the Rab-Byung day falling on a civil day.
//
// Returns:
//   - RabByungDay: The day.
//   - error: ErrOutOfRange outside the Rab-Byung years of the table.
func RabByungDayOf(d SolarDay) (RabByungDay, error) {
	dn := d.dayNumber()
	i := min(d.Year-RabByungMinYear, len(rabByungYears)-1)
	if i >= 0 && dn < rabByungYears[i].first {
		i--
	}
	if i >= 0 {
		for _, m := range rabByungMonths(RabByungMinYear + i) {
			if off := dn - m.First.dayNumber(); off < m.DayCount {
				return m.Days()[off], nil
			}
		}
	}
	return RabByungDay{}, fmt.Errorf("rab-byung day %s: %w [%d, %d]", d, ErrOutOfRange, RabByungMinYear, RabByungMaxYear)
}

// SolarDay returns the civil day.
func (d RabByungDay) SolarDay() SolarDay {
	off := d.Day - 1
	for _, x := range d.Month.missing {
		if x < d.Day {
			off--
		}
	}
	for _, x := range d.Month.doubled {
		if x < d.Day || (x == d.Day && !d.Leap) {
			off++
		}
	}
	return d.Month.First.Next(off)
}

// Name returns the Chinese day name, prefixed with 闰 for a leap day.
func (d RabByungDay) Name() string {
	if d.Leap {
		return "闰" + lunarDayNames[d.Day-1]
	}
	return lunarDayNames[d.Day-1]
}

// String formats the day as "year month day".
func (d RabByungDay) String() string {
	return d.Month.String() + d.Name()
}
