// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const secondsPerDay = 24 * 60 * 60

// CalendarDate represents a date in the proleptic Gregorian calendar.
// The zero value is not a valid date.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the specified year, month and day.
// No validation is performed, use IsValid to check the result.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateFromTime returns the CalendarDate of t in t's location,
// that is, the time of day and the location are discarded.
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// DaysInMonth returns the number of days in the given Gregorian month,
// or zero for a month outside of January to December.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsValid returns true if cd refers to a real day in the proleptic
// Gregorian calendar.
func (cd CalendarDate) IsValid() bool {
	return cd.Day >= 1 && cd.Day <= DaysInMonth(cd.Year, cd.Month)
}

// Time returns midnight UTC at the start of cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after cd, n may be negative.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether cd is before,
// the same as or after other.
func (cd CalendarDate) Compare(other CalendarDate) int {
	switch {
	case cd.Year != other.Year:
		return cmp.Compare(cd.Year, other.Year)
	case cd.Month != other.Month:
		return cmp.Compare(cd.Month, other.Month)
	default:
		return cmp.Compare(cd.Day, other.Day)
	}
}

// DaysBetween returns the number of whole days from a to b, negative if b
// is before a. Unix seconds are used since a time.Duration overflows
// for spans longer than ~292 years.
func DaysBetween(a, b CalendarDate) int {
	return int((b.Time().Unix() - a.Time().Unix()) / secondsPerDay)
}

// String returns cd in ISO 8601 format, ie. YYYY-MM-DD.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

const expectedCalendarDateFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in formats '2006-01-02', '01/02/2006' or
// 'Jan-02-2006' and checks that the result is a valid date.
func (cd *CalendarDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s: %w", expectedCalendarDateFormats, ErrInvalidGregorianDate)
	}
	var (
		date CalendarDate
		err  error
	)
	switch {
	case strings.Contains(val, "/"):
		date, err = parseNumericCalendarDate(val)
	case (val[0] >= 'a' && val[0] <= 'z') || (val[0] >= 'A' && val[0] <= 'Z'):
		date, err = parseNamedCalendarDate(val)
	default:
		date, err = parseISOCalendarDate(val)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", val, expectedCalendarDateFormats, err)
	}
	if !date.IsValid() {
		return fmt.Errorf("invalid date %q: %w", val, ErrInvalidGregorianDate)
	}
	*cd = date
	return nil
}

func parseISOCalendarDate(val string) (CalendarDate, error) {
	// Allow for a leading minus sign on the year.
	neg := strings.HasPrefix(val, "-")
	parts := strings.Split(strings.TrimPrefix(val, "-"), "-")
	if len(parts) != 3 {
		return CalendarDate{}, ErrInvalidGregorianDate
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, ErrInvalidGregorianDate
	}
	month, day, err := atoi2(parts[1], parts[2])
	if err != nil {
		return CalendarDate{}, err
	}
	if neg {
		year = -year
	}
	return NewCalendarDate(year, time.Month(month), day), nil
}

// parseNumericCalendarDate parses MM/DD/YYYY, the month and day are
// validated against the year by datetime.ParseNumericDate.
func parseNumericCalendarDate(val string) (CalendarDate, error) {
	idx := strings.LastIndex(val, "/")
	year, err := strconv.Atoi(val[idx+1:])
	if err != nil {
		return CalendarDate{}, ErrInvalidGregorianDate
	}
	date, err := datetime.ParseNumericDate(year, val[:idx])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%v: %w", err, ErrInvalidGregorianDate)
	}
	return NewCalendarDate(year, time.Month(date.Month()), date.Day()), nil
}

func parseNamedCalendarDate(val string) (CalendarDate, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return CalendarDate{}, ErrInvalidGregorianDate
	}
	// datetime.ParseMonth accepts any prefix, insist on at least 'Jan'.
	if len(parts[0]) < 3 {
		return CalendarDate{}, ErrInvalidGregorianDate
	}
	month, err := datetime.ParseMonth(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%v: %w", err, ErrInvalidGregorianDate)
	}
	day, year, err := atoi2(parts[1], parts[2])
	if err != nil {
		return CalendarDate{}, err
	}
	return NewCalendarDate(year, time.Month(month), day), nil
}

func atoi2(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, ErrInvalidGregorianDate
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, ErrInvalidGregorianDate
	}
	return x, y, nil
}
