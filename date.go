// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

// Date represents a single day in the Shire Reckoning. Dates are only created
// by this package (FromGregorian, FromTime, NewDate and Days) and hence the
// position, weekday, day of year and leap year status are always consistent
// with each other. The zero value is not a valid Date.
type Date struct {
	position   Position
	weekday    Weekday
	hasWeekday bool
	year       int
	dayOfYear  int
	leap       bool
}

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d.position == nil
}

// Position returns the position of the date within its year, either
// a MonthDay or a SpecialDay.
func (d Date) Position() Position {
	return d.position
}

// MonthDay returns the month and day of the date, it returns false
// if the date is a special day.
func (d Date) MonthDay() (MonthDay, bool) {
	md, ok := d.position.(MonthDay)
	return md, ok
}

// SpecialDay returns the special day for the date, it returns false
// if the date lies within a month.
func (d Date) SpecialDay() (SpecialDay, bool) {
	sd, ok := d.position.(SpecialDay)
	return sd, ok
}

// Weekday returns the weekday of the date, it returns false for
// Mid-year's Day and Overlithe.
func (d Date) Weekday() (Weekday, bool) {
	return d.weekday, d.hasWeekday
}

// Year returns the Shire year (S.R.) of the date.
func (d Date) Year() int {
	return d.year
}

// DayOfYear returns the day of the year, 1-365 or 1-366 in leap years.
func (d Date) DayOfYear() int {
	return d.dayOfYear
}

// IsLeapYear returns true if the date falls in a leap year.
func (d Date) IsLeapYear() bool {
	return d.leap
}

// IsHoliday returns true for the special days.
func (d Date) IsHoliday() bool {
	_, ok := d.position.(SpecialDay)
	return ok
}

// HolidayDescription returns the description of a special day or
// the empty string for a day within a month.
func (d Date) HolidayDescription() string {
	if sd, ok := d.position.(SpecialDay); ok {
		return sd.Description()
	}
	return ""
}

// Gregorian returns the Gregorian date corresponding to d.
func (d Date) Gregorian() CalendarDate {
	return YearStart(d.year).AddDays(d.dayOfYear - 1)
}

// String returns the date formatted using ShireStyle names and including
// the year, eg. 'Sterday, 2 Yule, S.R. 2025'.
func (d Date) String() string {
	return d.Format(ShireStyle, true)
}
