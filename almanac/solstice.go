// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac relates the Shire Reckoning to the sun: the solstices
// that the calendar's year start and mid-year track, and the times of
// sunrise and sunset for a Shire date at a given place.
package almanac

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/shire"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// unixEpochJD is the julian day at the start of 1970-01-01.
var unixEpochJD = julian.CalendarGregorianToJD(1970, 1, 1)

// JDEToCalendar returns the proleptic Gregorian date of a julian ephemeris
// day. julian.JDToCalendar is not used since it returns Julian calendar
// dates prior to the Gregorian reform of 1582.
func JDEToCalendar(jde float64) shire.CalendarDate {
	secs := math.Floor((jde - unixEpochJD) * 24 * 60 * 60)
	return shire.CalendarDateFromTime(time.Unix(int64(secs), 0).UTC())
}

// DecemberSolstice returns the date of the winter solstice in the
// specified Gregorian year.
func DecemberSolstice(year int) shire.CalendarDate {
	return JDEToCalendar(solstice.December(year))
}

// JuneSolstice returns the date of the summer solstice in the
// specified Gregorian year.
func JuneSolstice(year int) shire.CalendarDate {
	return JDEToCalendar(solstice.June(year))
}

// Alignment describes how closely a Shire year follows the sun. The
// offsets are the number of days from the solstice to the corresponding
// Shire day, so -1 means the Shire day falls the day before the solstice.
type Alignment struct {
	Year             int
	DecemberSolstice shire.CalendarDate
	JuneSolstice     shire.CalendarDate
	YearStartOffset  int
	MidYearOffset    int
}

func (a Alignment) String() string {
	return fmt.Sprintf("S.R. %d: 2 Yule %+d days from the December solstice (%v), Mid-year's Day %+d days from the June solstice (%v)",
		a.Year, a.YearStartOffset, a.DecemberSolstice, a.MidYearOffset, a.JuneSolstice)
}

// Align returns the Alignment for the specified Shire year, comparing
// 2 Yule with the December solstice of the preceding Gregorian year and
// Mid-year's Day with the June solstice.
func Align(year int) (Alignment, error) {
	mid, err := shire.SpecialDayToGregorian(shire.MidYearsDay, year)
	if err != nil {
		return Alignment{}, err
	}
	start := shire.YearStart(year)
	a := Alignment{
		Year:             year,
		DecemberSolstice: DecemberSolstice(year - 1),
		JuneSolstice:     JuneSolstice(year),
	}
	a.YearStartOffset = shire.DaysBetween(a.DecemberSolstice, start)
	a.MidYearOffset = shire.DaysBetween(a.JuneSolstice, mid)
	return a, nil
}
