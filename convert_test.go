// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"cloudeng.io/shire"
)

func newDate(y int, m time.Month, d int) shire.CalendarDate {
	return shire.NewCalendarDate(y, m, d)
}

func md(m shire.Month, d int) shire.MonthDay {
	return shire.MonthDay{Month: m, Day: d}
}

const noWeekday = shire.Weekday(-1)

func TestFromGregorian(t *testing.T) {
	for i, tc := range []struct {
		date    shire.CalendarDate
		year    int
		pos     shire.Position
		doy     int
		weekday shire.Weekday
	}{
		{newDate(2022, 12, 21), 2023, shire.TwoYule, 1, shire.Sterday},
		{newDate(2022, 12, 22), 2023, md(shire.Afteryule, 1), 2, shire.Sunday},
		{newDate(2023, 1, 20), 2023, md(shire.Afteryule, 30), 31, shire.Monday},
		{newDate(2023, 1, 21), 2023, md(shire.Solmath, 1), 32, shire.Trewsday},
		{newDate(2023, 3, 16), 2023, md(shire.Rethe, 25), 86, shire.Sunday},
		{newDate(2023, 6, 19), 2023, md(shire.Forelithe, 30), 181, shire.Mersday},
		{newDate(2023, 6, 20), 2023, shire.OneLithe, 182, shire.Highday},
		{newDate(2023, 6, 21), 2023, shire.MidYearsDay, 183, noWeekday},
		{newDate(2023, 6, 22), 2023, shire.TwoLithe, 184, shire.Sterday},
		{newDate(2023, 6, 23), 2023, md(shire.Afterlithe, 1), 185, shire.Sunday},
		{newDate(2023, 12, 20), 2023, shire.OneYule, 365, shire.Highday},

		{newDate(2023, 12, 21), 2024, shire.TwoYule, 1, shire.Sterday},
		{newDate(2024, 3, 15), 2024, md(shire.Rethe, 25), 86, shire.Sunday},
		{newDate(2024, 6, 18), 2024, md(shire.Forelithe, 30), 181, shire.Mersday},
		{newDate(2024, 6, 19), 2024, shire.OneLithe, 182, shire.Highday},
		{newDate(2024, 6, 20), 2024, shire.MidYearsDay, 183, noWeekday},
		{newDate(2024, 6, 21), 2024, shire.Overlithe, 184, noWeekday},
		{newDate(2024, 6, 22), 2024, shire.TwoLithe, 185, shire.Sterday},
		{newDate(2024, 6, 23), 2024, md(shire.Afterlithe, 1), 186, shire.Sunday},
		{newDate(2024, 12, 20), 2024, shire.OneYule, 366, shire.Highday},

		{newDate(2024, 12, 21), 2025, shire.TwoYule, 1, shire.Sterday},
		{newDate(2024, 12, 31), 2025, md(shire.Afteryule, 10), 11, shire.Trewsday},
		{newDate(2025, 1, 1), 2025, md(shire.Afteryule, 11), 12, shire.Hevensday},
	} {
		d, err := shire.FromGregorian(tc.date)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.date, err)
			continue
		}
		if got, want := d.Year(), tc.year; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		if got, want := d.Position(), tc.pos; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		if got, want := d.DayOfYear(), tc.doy; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		wd, ok := d.Weekday()
		if got, want := ok, tc.weekday != noWeekday; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		if ok && wd != tc.weekday {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, wd, tc.weekday)
		}
		if got, want := d.IsLeapYear(), shire.IsLeapYear(tc.year); got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		_, isSpecial := tc.pos.(shire.SpecialDay)
		if got, want := d.IsHoliday(), isSpecial; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.date, got, want)
		}
		if got, want := d.Gregorian(), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		cd, err := shire.ToGregorian(tc.pos, tc.year)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.date, err)
			continue
		}
		if got, want := cd, tc.date; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestFromTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip(err)
	}
	// 2024-06-20 23:30 UTC is 2024-06-21 in Tokyo.
	tm := time.Date(2024, 6, 20, 23, 30, 0, 0, time.UTC).In(loc)
	d, err := shire.FromTime(tm)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Position(), shire.Position(shire.Overlithe); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	d, err = shire.FromTime(tm.UTC())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Position(), shire.Position(shire.MidYearsDay); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYearBounds(t *testing.T) {
	for _, year := range []int{-400, -1, 0, 1, 1900, 2000, 2023, 2024, 9999} {
		if got, want := shire.YearStart(year), newDate(year-1, 12, 21); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := shire.YearEnd(year), newDate(year, 12, 20); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := shire.YearOf(shire.YearStart(year)), year; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := shire.YearOf(shire.YearEnd(year)), year; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		end, err := shire.FromGregorian(shire.YearEnd(year))
		if err != nil {
			t.Fatal(err)
		}
		if got, want := end.DayOfYear(), shire.DaysInYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestConversionErrors(t *testing.T) {
	for i, tc := range []struct {
		pos  shire.Position
		year int
		err  error
	}{
		{shire.Overlithe, 2023, shire.ErrInvalidSpecialDay},
		{shire.Overlithe, 1900, shire.ErrInvalidSpecialDay},
		{shire.SpecialDay(0), 2024, shire.ErrInvalidSpecialDay},
		{shire.SpecialDay(12), 2024, shire.ErrInvalidSpecialDay},
		{md(shire.Afteryule, 0), 2024, shire.ErrInvalidRegularDate},
		{md(shire.Afteryule, 31), 2024, shire.ErrInvalidRegularDate},
		{md(shire.Month(0), 1), 2024, shire.ErrInvalidRegularDate},
		{md(shire.Month(13), 1), 2024, shire.ErrInvalidRegularDate},
		{nil, 2024, shire.ErrMalformedInput},
		{(*shire.MonthDay)(nil), 2024, shire.ErrMalformedInput},
		{(*shire.SpecialDay)(nil), 2024, shire.ErrMalformedInput},
	} {
		_, err := shire.ToGregorian(tc.pos, tc.year)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.pos, err, tc.err)
		}
		_, err = shire.NewDate(tc.pos, tc.year)
		if !errors.Is(err, tc.err) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.pos, err, tc.err)
		}
	}

	if _, err := shire.FromGregorian(newDate(2023, 2, 29)); !errors.Is(err, shire.ErrInvalidGregorianDate) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := shire.FromGregorian(shire.CalendarDate{}); !errors.Is(err, shire.ErrInvalidGregorianDate) {
		t.Errorf("unexpected error: %v", err)
	}

	sd := shire.Overlithe
	if _, err := shire.ToGregorian(&sd, 2024); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got, err := shire.SpecialDayToGregorian(shire.Overlithe, 2024); err != nil || got != newDate(2024, 6, 21) {
		t.Errorf("got %v, %v", got, err)
	}
	if got, err := shire.MonthDayToGregorian(shire.Rethe, 25, 2024); err != nil || got != newDate(2024, 3, 15) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestRoundTrip(t *testing.T) {
	first, last := 1, 9999
	if testing.Short() {
		first, last = 1890, 2110
	}
	cd := shire.YearStart(first)
	for year := first; year <= last; year++ {
		n, withWeekday := 0, 0
		var prev shire.Weekday = -1
		for d := range shire.Days(year) {
			n++
			if got, want := d.Gregorian(), cd; got != want {
				t.Fatalf("S.R. %v: %v: got %v, want %v", year, d, got, want)
			}
			fd, err := shire.FromGregorian(cd)
			if err != nil {
				t.Fatalf("%v: %v", cd, err)
			}
			if fd != d {
				t.Fatalf("%v: got %v, want %v", cd, fd, d)
			}
			back, err := shire.ToGregorian(d.Position(), d.Year())
			if err != nil || back != cd {
				t.Fatalf("%v: got %v, %v", d, back, err)
			}
			if wd, ok := d.Weekday(); ok {
				withWeekday++
				if prev >= 0 && wd != (prev+1)%shire.DaysPerWeek {
					t.Fatalf("%v: weekday %v does not follow %v", d, wd, prev)
				}
				prev = wd
			}
			cd = cd.AddDays(1)
		}
		if got, want := n, shire.DaysInYear(year); got != want {
			t.Fatalf("S.R. %v: got %v, want %v", year, got, want)
		}
		if got, want := withWeekday, shire.WeekdaysPerYear; got != want {
			t.Fatalf("S.R. %v: got %v, want %v", year, got, want)
		}
	}
}

func TestConcurrentConversions(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 16 {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			for d := range shire.Days(year) {
				got, err := shire.FromGregorian(d.Gregorian())
				if err != nil {
					errs <- err
					return
				}
				if got != d {
					errs <- errors.New(got.String() + " != " + d.String())
					return
				}
				if _, err := shire.ParsePosition(shire.FormatPosition(d.Position(), shire.BreeStyle)); err != nil {
					errs <- err
					return
				}
			}
		}(2000 + i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
