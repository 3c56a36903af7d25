// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"fmt"
	"slices"
)

const (
	// DaysPerMonth is the length of every Shire month.
	DaysPerMonth = 30
	// MonthsPerYear is the number of Shire months.
	MonthsPerYear = 12
	// DaysPerWeek is the length of the Shire week.
	DaysPerWeek = 7
	// WeekdaysPerYear is the number of days in every Shire year,
	// leap or not, that carry a weekday: exactly 52 weeks.
	WeekdaysPerYear = 52 * DaysPerWeek
)

// NameStyle selects which set of names is used when displaying
// months and weekdays.
type NameStyle int

const (
	// ShireStyle uses the Shire (Hobbit) names, eg. Afteryule, Sterday.
	ShireStyle NameStyle = iota
	// BreeStyle uses the names used in Bree for months, eg. Frery; Bree
	// weekday names are the same as in the Shire.
	BreeStyle
	// EnglishStyle uses the modern English equivalents, eg. January, Saturday.
	EnglishStyle
)

var nameStyles = []string{"shire", "bree", "english"}

func (ns NameStyle) String() string {
	if ns < ShireStyle || ns > EnglishStyle {
		return fmt.Sprintf("NameStyle(%d)", int(ns))
	}
	return nameStyles[ns]
}

// Parse parses one of 'shire', 'bree' or 'english'.
func (ns *NameStyle) Parse(val string) error {
	idx := slices.Index(nameStyles, fold(val))
	if idx < 0 {
		return fmt.Errorf("invalid name style %q, expected one of %v", val, nameStyles)
	}
	*ns = NameStyle(idx)
	return nil
}

// Month is a Shire month in the range 1-12.
type Month int

const (
	Afteryule Month = iota + 1
	Solmath
	Rethe
	Astron
	Thrimidge
	Forelithe
	Afterlithe
	Wedmath
	Halimath
	Winterfilth
	Blotmath
	Foreyule
)

type names struct {
	shire, bree, english string
}

var monthNames = [MonthsPerYear]names{
	{"Afteryule", "Frery", "January"},
	{"Solmath", "Solmath", "February"},
	{"Rethe", "Rethe", "March"},
	{"Astron", "Chithing", "April"},
	{"Thrimidge", "Thrimidge", "May"},
	{"Forelithe", "Lithe", "June"},
	{"Afterlithe", "Mede", "July"},
	{"Wedmath", "Wedmath", "August"},
	{"Halimath", "Harvestmath", "September"},
	{"Winterfilth", "Wintring", "October"},
	{"Blotmath", "Blooting", "November"},
	{"Foreyule", "Yulemath", "December"},
}

func (n names) get(style NameStyle) string {
	switch style {
	case BreeStyle:
		return n.bree
	case EnglishStyle:
		return n.english
	}
	return n.shire
}

// Months returns all twelve months in calendar order.
func Months() []Month {
	m := make([]Month, MonthsPerYear)
	for i := range m {
		m[i] = Month(i + 1)
	}
	return m
}

// IsValid returns true if m is one of the twelve months.
func (m Month) IsValid() bool {
	return m >= Afteryule && m <= Foreyule
}

// Name returns the name of the month in the requested style.
func (m Month) Name(style NameStyle) string {
	if !m.IsValid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1].get(style)
}

// String returns the Shire name of the month.
func (m Month) String() string {
	return m.Name(ShireStyle)
}

// Days returns the number of days in the month, which is always 30.
func (m Month) Days() int {
	return DaysPerMonth
}

// Weekday is a day of the Shire week, 0 (Sterday) to 6 (Highday).
type Weekday int

const (
	Sterday Weekday = iota
	Sunday
	Monday
	Trewsday
	Hevensday
	Mersday
	Highday
)

type weekdayInfo struct {
	native, english, meaning string
}

var weekdayNames = [DaysPerWeek]weekdayInfo{
	{"Sterday", "Saturday", "Stars of Varda"},
	{"Sunday", "Sunday", "Sun"},
	{"Monday", "Monday", "Moon"},
	{"Trewsday", "Tuesday", "Two Trees of Valinor"},
	{"Hevensday", "Wednesday", "Heavens"},
	{"Mersday", "Thursday", "Sea"},
	{"Highday", "Friday", "Valar"},
}

// IsValid returns true if w is one of the seven weekdays.
func (w Weekday) IsValid() bool {
	return w >= Sterday && w <= Highday
}

// String returns the Shire name of the weekday.
func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w].native
}

// English returns the modern English equivalent of the weekday.
func (w Weekday) English() string {
	if !w.IsValid() {
		return w.String()
	}
	return weekdayNames[w].english
}

// Meaning returns a short gloss of what the weekday is named for.
func (w Weekday) Meaning() string {
	if !w.IsValid() {
		return ""
	}
	return weekdayNames[w].meaning
}

// Name returns the weekday's name in the requested style. Bree uses the
// Shire weekday names.
func (w Weekday) Name(style NameStyle) string {
	if style == EnglishStyle {
		return w.English()
	}
	return w.String()
}

// SpecialDay is one of the six days that belong to no month.
// The zero value is not a special day.
type SpecialDay int

const (
	// TwoYule is the first day of the year.
	TwoYule SpecialDay = iota + 1
	// OneLithe immediately follows Forelithe.
	OneLithe
	// MidYearsDay has no weekday.
	MidYearsDay
	// Overlithe occurs in leap years only and has no weekday.
	Overlithe
	// TwoLithe immediately precedes Afterlithe.
	TwoLithe
	// OneYule is the last day of the year.
	OneYule
)

type specialDayInfo struct {
	name        string
	description string
	weekday     bool
}

var specialDays = [...]specialDayInfo{
	TwoYule:     {"2 Yule", "The first day of the year, marking the end of Yuletide festivities.", true},
	OneLithe:    {"1 Lithe", "The first of the Lithedays, a time of summer feasting.", true},
	MidYearsDay: {"Mid-year's Day", "The middle of the year, a day without a weekday, standing alone.", false},
	Overlithe:   {"Overlithe", "An extra day in leap years, also without a weekday.", false},
	TwoLithe:    {"2 Lithe", "The last of the Lithedays, returning to regular reckoning.", true},
	OneYule:     {"1 Yule", "The last day of the year, beginning the six-day Yuletide celebration.", true},
}

// SpecialDays returns the six special days in calendar order.
func SpecialDays() []SpecialDay {
	return []SpecialDay{TwoYule, OneLithe, MidYearsDay, Overlithe, TwoLithe, OneYule}
}

// IsValid returns true if sd is one of the six special days.
func (sd SpecialDay) IsValid() bool {
	return sd >= TwoYule && sd <= OneYule
}

func (sd SpecialDay) String() string {
	if !sd.IsValid() {
		return fmt.Sprintf("SpecialDay(%d)", int(sd))
	}
	return specialDays[sd].name
}

// Description returns a short description of the special day.
func (sd SpecialDay) Description() string {
	if !sd.IsValid() {
		return ""
	}
	return specialDays[sd].description
}

// HasWeekday returns false for Mid-year's Day and Overlithe, the two days
// that lie outside of the weekly cycle.
func (sd SpecialDay) HasWeekday() bool {
	return sd.IsValid() && specialDays[sd].weekday
}

// LeapYearOnly returns true for Overlithe.
func (sd SpecialDay) LeapYearOnly() bool {
	return sd == Overlithe
}

func (SpecialDay) isPosition() {}

// Position represents a position within a Shire year, it is either a
// MonthDay or a SpecialDay; no other implementations are possible.
type Position interface {
	fmt.Stringer
	isPosition()
}

// MonthDay is a day within one of the twelve months.
type MonthDay struct {
	Month Month
	Day   int
}

func (MonthDay) isPosition() {}

// IsValid returns true if the month is valid and the day is in 1-30.
func (md MonthDay) IsValid() bool {
	return md.Month.IsValid() && md.Day >= 1 && md.Day <= DaysPerMonth
}

// String returns the day and Shire month name, eg. '14 Afterlithe'.
func (md MonthDay) String() string {
	return fmt.Sprintf("%d %s", md.Day, md.Month)
}

// Span is a contiguous, inclusive, range of days of the year occupied by
// either a month or a special day; exactly one of Month and Special is set.
type Span struct {
	Month      Month
	Special    SpecialDay
	Start, End int
}

func (s Span) String() string {
	if s.Special != 0 {
		return fmt.Sprintf("%v: %d", s.Special, s.Start)
	}
	return fmt.Sprintf("%v: %d-%d", s.Month, s.Start, s.End)
}

func (s Span) cmpDay(doy int) int {
	switch {
	case s.End < doy:
		return -1
	case s.Start > doy:
		return 1
	}
	return 0
}

// Tables indexed by leapIndex(leap).
var (
	layouts         [2][]Span
	specialDayOfDOY [2][len(specialDays)]int // zero if the day does not occur.
	monthStart      [2][MonthsPerYear + 1]int
	noWeekdayDays   [2][]int // days of the year with no weekday, ascending.
)

func leapIndex(leap bool) int {
	if leap {
		return 1
	}
	return 0
}

func buildLayout(leap bool) []Span {
	spans := make([]Span, 0, MonthsPerYear+len(specialDays))
	doy := 1
	special := func(sd SpecialDay) {
		spans = append(spans, Span{Special: sd, Start: doy, End: doy})
		doy++
	}
	months := func(from, to Month) {
		for m := from; m <= to; m++ {
			spans = append(spans, Span{Month: m, Start: doy, End: doy + DaysPerMonth - 1})
			doy += DaysPerMonth
		}
	}
	special(TwoYule)
	months(Afteryule, Forelithe)
	special(OneLithe)
	special(MidYearsDay)
	if leap {
		special(Overlithe)
	}
	special(TwoLithe)
	months(Afterlithe, Foreyule)
	special(OneYule)
	return spans
}

func init() {
	for _, leap := range []bool{false, true} {
		li := leapIndex(leap)
		layouts[li] = buildLayout(leap)
		for _, s := range layouts[li] {
			if s.Special != 0 {
				specialDayOfDOY[li][s.Special] = s.Start
				if !s.Special.HasWeekday() {
					noWeekdayDays[li] = append(noWeekdayDays[li], s.Start)
				}
				continue
			}
			monthStart[li][s.Month] = s.Start
		}
	}
}

// Layout returns a copy of the ordered spans that make up a leap or
// non-leap year.
func Layout(leap bool) []Span {
	return slices.Clone(layouts[leapIndex(leap)])
}

// SpecialDayOfYear returns the day of the year for sd, it returns false
// if sd is invalid or does not occur in the specified kind of year.
func SpecialDayOfYear(sd SpecialDay, leap bool) (int, bool) {
	if !sd.IsValid() {
		return 0, false
	}
	doy := specialDayOfDOY[leapIndex(leap)][sd]
	return doy, doy != 0
}

// MonthSpan returns the first and last day of the year for m.
func MonthSpan(m Month, leap bool) (start, end int) {
	if !m.IsValid() {
		return 0, 0
	}
	start = monthStart[leapIndex(leap)][m]
	return start, start + DaysPerMonth - 1
}

func spanForDay(leap bool, doy int) (Span, bool) {
	spans := layouts[leapIndex(leap)]
	idx, found := slices.BinarySearchFunc(spans, doy, Span.cmpDay)
	if !found {
		return Span{}, false
	}
	return spans[idx], true
}
