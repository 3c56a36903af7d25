// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validate checks the internal consistency of the calendar tables for both
// leap and non-leap years and returns all of the problems found. It is
// intended to be called once, from tests or at process start up.
func Validate() error {
	errs := &errors.M{}
	validateLayout(errs, false)
	validateLayout(errs, true)
	return errs.Err()
}

func validateLayout(errs *errors.M, leap bool) {
	kind := "non-leap"
	year, days, wantSpecials := 2023, 365, len(SpecialDays())-1
	if leap {
		kind, year, days, wantSpecials = "leap", 2024, 366, len(SpecialDays())
	}
	monthDays, specials, next := 0, 0, 1
	for _, s := range layouts[leapIndex(leap)] {
		if s.Start != next {
			errs.Append(fmt.Errorf("%s: %v: starts on day %d, expected %d", kind, s, s.Start, next))
		}
		switch {
		case s.Special != 0 && s.Month != 0:
			errs.Append(fmt.Errorf("%s: %v: is both a month and a special day", kind, s))
		case s.Special != 0:
			specials++
			if s.End != s.Start {
				errs.Append(fmt.Errorf("%s: %v: special days are exactly one day long", kind, s))
			}
		default:
			monthDays += s.End - s.Start + 1
			if got := s.End - s.Start + 1; got != DaysPerMonth {
				errs.Append(fmt.Errorf("%s: %v: has %d days, expected %d", kind, s, got, DaysPerMonth))
			}
		}
		next = s.End + 1
	}
	if got, want := monthDays, MonthsPerYear*DaysPerMonth; got != want {
		errs.Append(fmt.Errorf("%s: months contain %d days, expected %d", kind, got, want))
	}
	if got, want := specials, wantSpecials; got != want {
		errs.Append(fmt.Errorf("%s: %d special days, expected %d", kind, got, want))
	}
	if got, want := next-1, days; got != want {
		errs.Append(fmt.Errorf("%s: year has %d days, expected %d", kind, got, want))
	}

	withWeekday := 0
	for d := range Days(year) {
		if _, ok := d.Weekday(); ok {
			withWeekday++
		}
	}
	if got, want := withWeekday, WeekdaysPerYear; got != want {
		errs.Append(fmt.Errorf("%s: %d days have a weekday, expected %d", kind, got, want))
	}
	if wd, ok := weekdayOf(leap, 1); !ok || wd != Sterday {
		errs.Append(fmt.Errorf("%s: the first day of the year must be %v", kind, Sterday))
	}
	if wd, ok := weekdayOf(leap, days); !ok || wd != Highday {
		errs.Append(fmt.Errorf("%s: the last day of the year must be %v", kind, Highday))
	}
}
