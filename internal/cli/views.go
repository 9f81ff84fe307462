package cli

import (
	"fmt"
	"strings"

	"github.com/mshafiee/lunisolar"
)

// Result documents carry struct tags for every render format and a Text
// method for the default terminal rendering.

type termView struct {
	Index     int     `json:"index" yaml:"index" toml:"index"`
	Name      string  `json:"name" yaml:"name" toml:"name"`
	Day       string  `json:"day" yaml:"day" toml:"day"`
	Instant   string  `json:"instant" yaml:"instant" toml:"instant"`
	JulianDay float64 `json:"julian_day" yaml:"julian_day" toml:"julian_day"`
}

func newTermView(s lunisolar.SolarTerm) termView {
	return termView{
		Index:     s.Index,
		Name:      s.Name(),
		Day:       s.Day.String(),
		Instant:   s.JulianDay.SolarTime().String(),
		JulianDay: float64(s.JulianDay),
	}
}

type termsDoc struct {
	Year  int        `json:"year" yaml:"year" toml:"year"`
	Terms []termView `json:"terms" yaml:"terms" toml:"terms"`
}

func (d termsDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", d.Year)
	for _, t := range d.Terms {
		fmt.Fprintf(&b, "%2d  %s  %s\n", t.Index, t.Name, t.Instant)
	}
	return b.String()
}

type monthView struct {
	Month  int    `json:"month" yaml:"month" toml:"month"`
	Leap   bool   `json:"leap" yaml:"leap" toml:"leap"`
	Name   string `json:"name" yaml:"name" toml:"name"`
	Days   int    `json:"days" yaml:"days" toml:"days"`
	First  string `json:"first" yaml:"first" toml:"first"`
	Pillar string `json:"pillar" yaml:"pillar" toml:"pillar"`
}

type monthsDoc struct {
	Year      int         `json:"year" yaml:"year" toml:"year"`
	Pillar    string      `json:"pillar" yaml:"pillar" toml:"pillar"`
	LeapMonth int         `json:"leap_month" yaml:"leap_month" toml:"leap_month"`
	Days      int         `json:"days" yaml:"days" toml:"days"`
	Months    []monthView `json:"months" yaml:"months" toml:"months"`
}

func newMonthsDoc(y lunisolar.LunarYear) monthsDoc {
	doc := monthsDoc{
		Year:      y.Year,
		Pillar:    y.SixtyCycle().Name(),
		LeapMonth: y.LeapMonth(),
		Days:      y.DayCount(),
	}
	for _, m := range y.Months() {
		doc.Months = append(doc.Months, monthView{
			Month:  m.Month,
			Leap:   m.Leap,
			Name:   m.Name(),
			Days:   m.DayCount,
			First:  m.First.String(),
			Pillar: m.SixtyCycle().Name(),
		})
	}
	return doc
}

func (d monthsDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s年 %d days", d.Year, d.Pillar, d.Days)
	if d.LeapMonth > 0 {
		fmt.Fprintf(&b, " leap %d", d.LeapMonth)
	}
	b.WriteByte('\n')
	for _, m := range d.Months {
		fmt.Fprintf(&b, "%s\t%s  %d  %s\n", m.Name, m.First, m.Days, m.Pillar)
	}
	return b.String()
}

type dayDoc struct {
	Date      string `json:"date" yaml:"date" toml:"date"`
	Lunar     string `json:"lunar" yaml:"lunar" toml:"lunar"`
	LunarYear int    `json:"lunar_year" yaml:"lunar_year" toml:"lunar_year"`
	Month     int    `json:"month" yaml:"month" toml:"month"`
	Leap      bool   `json:"leap" yaml:"leap" toml:"leap"`
	Day       int    `json:"day" yaml:"day" toml:"day"`
	Pillar    string `json:"pillar" yaml:"pillar" toml:"pillar"`
	Term      string `json:"term" yaml:"term" toml:"term"`
	TermDay   string `json:"term_day" yaml:"term_day" toml:"term_day"`
	Sunrise   string `json:"sunrise,omitempty" yaml:"sunrise,omitempty" toml:"sunrise,omitempty"`
	Sunset    string `json:"sunset,omitempty" yaml:"sunset,omitempty" toml:"sunset,omitempty"`
}

func (d dayDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s日\n", d.Date, d.Lunar, d.Pillar)
	fmt.Fprintf(&b, "term  %s (since %s)\n", d.Term, d.TermDay)
	if d.Sunrise != "" {
		fmt.Fprintf(&b, "sun   %s - %s\n", d.Sunrise, d.Sunset)
	}
	return b.String()
}

type pillarsDoc struct {
	Time      string `json:"time" yaml:"time" toml:"time"`
	Year      string `json:"year" yaml:"year" toml:"year"`
	Month     string `json:"month" yaml:"month" toml:"month"`
	Day       string `json:"day" yaml:"day" toml:"day"`
	Hour      string `json:"hour" yaml:"hour" toml:"hour"`
	LunarHour string `json:"lunar_hour" yaml:"lunar_hour" toml:"lunar_hour"`
	RatHour   string `json:"rat_hour" yaml:"rat_hour" toml:"rat_hour"`
}

func (d pillarsDoc) Text() string {
	return fmt.Sprintf("%s %s %s %s\n", d.Year, d.Month, d.Day, d.Hour)
}

type convertDoc struct {
	Time      string  `json:"time" yaml:"time" toml:"time"`
	JulianDay float64 `json:"julian_day" yaml:"julian_day" toml:"julian_day"`
	RFC3339   string  `json:"rfc3339" yaml:"rfc3339" toml:"rfc3339"`
}

func (d convertDoc) Text() string {
	return fmt.Sprintf("%s  JD %.6f  %s\n", d.Time, d.JulianDay, d.RFC3339)
}

type entryView struct {
	Bucket int `json:"bucket" yaml:"bucket" toml:"bucket"`
	Offset int `json:"offset" yaml:"offset" toml:"offset"`
}

type decodeDoc struct {
	Source  string      `json:"source" yaml:"source" toml:"source"`
	Buckets int         `json:"buckets" yaml:"buckets" toml:"buckets"`
	Entries []entryView `json:"entries" yaml:"entries" toml:"entries"`
}

func (d decodeDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d buckets, %d corrected\n", d.Source, d.Buckets, len(d.Entries))
	for _, e := range d.Entries {
		fmt.Fprintf(&b, "%6d %+d\n", e.Bucket, e.Offset)
	}
	return b.String()
}

type rabByungDoc struct {
	Year        int                 `json:"year" yaml:"year" toml:"year"`
	Name        string              `json:"name" yaml:"name" toml:"name"`
	Cycle       int                 `json:"cycle" yaml:"cycle" toml:"cycle"`
	YearInCycle int                 `json:"year_in_cycle" yaml:"year_in_cycle" toml:"year_in_cycle"`
	Element     string              `json:"element" yaml:"element" toml:"element"`
	Gender      string              `json:"gender" yaml:"gender" toml:"gender"`
	Pillar      string              `json:"pillar" yaml:"pillar" toml:"pillar"`
	First       string              `json:"first" yaml:"first" toml:"first"`
	LeapMonth   int                 `json:"leap_month" yaml:"leap_month" toml:"leap_month"`
	Months      []rabByungMonthView `json:"months" yaml:"months" toml:"months"`
}

type rabByungMonthView struct {
	Month    int    `json:"month" yaml:"month" toml:"month"`
	Leap     bool   `json:"leap" yaml:"leap" toml:"leap"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Alias    string `json:"alias" yaml:"alias" toml:"alias"`
	Days     int    `json:"days" yaml:"days" toml:"days"`
	First    string `json:"first" yaml:"first" toml:"first"`
	Missing  []int  `json:"missing,omitempty" yaml:"missing,omitempty" toml:"missing,omitempty"`
	LeapDays []int  `json:"leap_days,omitempty" yaml:"leap_days,omitempty" toml:"leap_days,omitempty"`
}

func newRabByungDoc(y lunisolar.RabByungYear) rabByungDoc {
	doc := rabByungDoc{
		Year:        y.Year,
		Name:        y.Name(),
		Cycle:       y.Cycle,
		YearInCycle: y.YearInCycle,
		Element:     y.Element.Name(),
		Gender:      y.Gender.Name(),
		Pillar:      y.SixtyCycle.Name(),
		First:       y.First().String(),
		LeapMonth:   y.LeapMonth(),
	}
	for _, m := range y.Months() {
		doc.Months = append(doc.Months, rabByungMonthView{
			Month:    m.Month,
			Leap:     m.Leap,
			Name:     m.Name(),
			Alias:    m.Alias(),
			Days:     m.DayCount,
			First:    m.First.String(),
			Missing:  m.MissingDays(),
			LeapDays: m.LeapDays(),
		})
	}
	return doc
}

func (d rabByungDoc) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d  %s  (%s)  losar %s", d.Year, d.Name, d.Pillar, d.First)
	if d.LeapMonth > 0 {
		fmt.Fprintf(&b, " leap %d", d.LeapMonth)
	}
	b.WriteByte('\n')
	for _, m := range d.Months {
		fmt.Fprintf(&b, "%s\t%s\t%s  %d  skip %v  leap %v\n", m.Name, m.Alias, m.First, m.Days, m.Missing, m.LeapDays)
	}
	return b.String()
}

type newMoonDoc struct {
	Near      string  `json:"near" yaml:"near" toml:"near"`
	Instant   string  `json:"instant" yaml:"instant" toml:"instant"`
	JulianDay float64 `json:"julian_day" yaml:"julian_day" toml:"julian_day"`
}

func (d newMoonDoc) Text() string {
	return d.Instant + "\n"
}

type warmDoc struct {
	From    int    `json:"from" yaml:"from" toml:"from"`
	To      int    `json:"to" yaml:"to" toml:"to"`
	Elapsed string `json:"elapsed" yaml:"elapsed" toml:"elapsed"`
}

func (d warmDoc) Text() string {
	return fmt.Sprintf("warmed %d..%d in %s\n", d.From, d.To, d.Elapsed)
}
