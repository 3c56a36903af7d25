// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"fmt"
	"time"
)

const (
	yearStartMonth = time.December
	yearStartDay   = 21
)

// YearStart returns the Gregorian date of 2 Yule, the first day of the
// Shire year, which is Dec 21 of the preceding Gregorian year.
func YearStart(year int) CalendarDate {
	return NewCalendarDate(year-1, yearStartMonth, yearStartDay)
}

// YearEnd returns the Gregorian date of 1 Yule, the last day of the
// Shire year, which is Dec 20 of the same Gregorian year.
func YearEnd(year int) CalendarDate {
	return NewCalendarDate(year, yearStartMonth, yearStartDay-1)
}

// YearOf returns the Shire year that contains the supplied Gregorian date.
// This is the Gregorian year of that Shire year's Mid-year's Day: dates
// on or after Dec 21 belong to the following Shire year.
func YearOf(d CalendarDate) int {
	if d.Month == yearStartMonth && d.Day >= yearStartDay {
		return d.Year + 1
	}
	return d.Year
}

// FromGregorian returns the Shire date for the supplied Gregorian date.
// It fails only for invalid Gregorian dates.
func FromGregorian(d CalendarDate) (Date, error) {
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%v: %w", d, ErrInvalidGregorianDate)
	}
	year := YearOf(d)
	doy := DaysBetween(YearStart(year), d) + 1
	return dateFromDayOfYear(year, doy)
}

// FromTime returns the Shire date for the calendar date of t in t's own
// location. The time of day is ignored.
func FromTime(t time.Time) (Date, error) {
	return FromGregorian(CalendarDateFromTime(t))
}

// ToGregorian returns the Gregorian date of the supplied position in
// the specified Shire year. It is the inverse of FromGregorian, that is
// for any valid CalendarDate cd:
//
//	sd, _ := FromGregorian(cd)
//	ToGregorian(sd.Position(), sd.Year()) == cd
func ToGregorian(p Position, year int) (CalendarDate, error) {
	doy, err := DayOfYear(p, year)
	if err != nil {
		return CalendarDate{}, err
	}
	return YearStart(year).AddDays(doy - 1), nil
}

// MonthDayToGregorian is like ToGregorian for a month and day.
func MonthDayToGregorian(m Month, day, year int) (CalendarDate, error) {
	return ToGregorian(MonthDay{Month: m, Day: day}, year)
}

// SpecialDayToGregorian is like ToGregorian for a special day.
func SpecialDayToGregorian(sd SpecialDay, year int) (CalendarDate, error) {
	return ToGregorian(sd, year)
}

// NewDate returns the Date for the supplied position and year, applying
// the same validation as ToGregorian.
func NewDate(p Position, year int) (Date, error) {
	doy, err := DayOfYear(p, year)
	if err != nil {
		return Date{}, err
	}
	return dateFromDayOfYear(year, doy)
}

// DayOfYear returns the day of the year of the supplied position in the
// specified Shire year.
func DayOfYear(p Position, year int) (int, error) {
	leap := IsLeapYear(year)
	switch v := p.(type) {
	case SpecialDay:
		return specialDayOfYear(v, year, leap)
	case *SpecialDay:
		if v == nil {
			return 0, ErrMalformedInput
		}
		return specialDayOfYear(*v, year, leap)
	case MonthDay:
		return monthDayOfYear(v, leap)
	case *MonthDay:
		if v == nil {
			return 0, ErrMalformedInput
		}
		return monthDayOfYear(*v, leap)
	}
	return 0, ErrMalformedInput
}

func specialDayOfYear(sd SpecialDay, year int, leap bool) (int, error) {
	doy, ok := SpecialDayOfYear(sd, leap)
	if !ok {
		if sd.IsValid() {
			return 0, fmt.Errorf("%v does not occur in S.R. %d, which is not a leap year: %w", sd, year, ErrInvalidSpecialDay)
		}
		return 0, fmt.Errorf("%v: %w", sd, ErrInvalidSpecialDay)
	}
	return doy, nil
}

func monthDayOfYear(md MonthDay, leap bool) (int, error) {
	if !md.Month.IsValid() {
		return 0, fmt.Errorf("month %d is not in the range 1-%d: %w", int(md.Month), MonthsPerYear, ErrInvalidRegularDate)
	}
	if md.Day < 1 || md.Day > DaysPerMonth {
		return 0, fmt.Errorf("day %d of %v is not in the range 1-%d: %w", md.Day, md.Month, DaysPerMonth, ErrInvalidRegularDate)
	}
	start, _ := MonthSpan(md.Month, leap)
	return start + md.Day - 1, nil
}

func dateFromDayOfYear(year, doy int) (Date, error) {
	leap := IsLeapYear(year)
	if doy < 1 || doy > DaysInYear(year) {
		return Date{}, fmt.Errorf("S.R. %d: day %d: %w", year, doy, ErrUnreachableDayOfYear)
	}
	span, ok := spanForDay(leap, doy)
	if !ok {
		return Date{}, fmt.Errorf("S.R. %d: day %d: %w", year, doy, ErrUnreachableDayOfYear)
	}
	d := Date{year: year, dayOfYear: doy, leap: leap}
	if span.Special != 0 {
		d.position = span.Special
	} else {
		d.position = MonthDay{Month: span.Month, Day: doy - span.Start + 1}
	}
	d.weekday, d.hasWeekday = weekdayOf(leap, doy)
	return d, nil
}

// weekdayOf implements the Shire-reform: the days without a weekday are
// skipped when counting through the week so that day 1 is always Sterday.
func weekdayOf(leap bool, doy int) (Weekday, bool) {
	skipped := 0
	for _, nw := range noWeekdayDays[leapIndex(leap)] {
		if nw == doy {
			return 0, false
		}
		if nw < doy {
			skipped++
		}
	}
	return Weekday((doy - skipped - 1) % DaysPerWeek), true
}
