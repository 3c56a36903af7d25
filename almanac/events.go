// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import "cloudeng.io/shire"

// Event represents a day whose date depends on the Shire year.
type Event interface {
	Name() string
	Evaluate(year int) (shire.Date, error)
}

// YearStart implements Event for 2 Yule.
type YearStart struct{}

func (YearStart) Name() string {
	return "YearStart"
}

func (YearStart) Evaluate(year int) (shire.Date, error) {
	return shire.NewDate(shire.TwoYule, year)
}

// MidYear implements Event for Mid-year's Day.
type MidYear struct{}

func (MidYear) Name() string {
	return "MidYear"
}

func (MidYear) Evaluate(year int) (shire.Date, error) {
	return shire.NewDate(shire.MidYearsDay, year)
}

// WinterSolstice implements Event for the December solstice that falls
// within the Shire year. This is normally the solstice of the preceding
// Gregorian year, which falls on or close to 2 Yule.
type WinterSolstice struct{}

func (WinterSolstice) Name() string {
	return "WinterSolstice"
}

func (WinterSolstice) Evaluate(year int) (shire.Date, error) {
	cd := DecemberSolstice(year - 1)
	if shire.YearOf(cd) != year {
		cd = DecemberSolstice(year)
	}
	return shire.FromGregorian(cd)
}

// SummerSolstice implements Event for the June solstice.
type SummerSolstice struct{}

func (SummerSolstice) Name() string {
	return "SummerSolstice"
}

func (SummerSolstice) Evaluate(year int) (shire.Date, error) {
	return shire.FromGregorian(JuneSolstice(year))
}

// Events returns the events known to this package.
func Events() []Event {
	return []Event{YearStart{}, WinterSolstice{}, MidYear{}, SummerSolstice{}}
}
