// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/shire"
)

func TestCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		cd    shire.CalendarDate
		valid bool
	}{
		{newDate(2024, 2, 29), true},
		{newDate(2023, 2, 29), false},
		{newDate(1900, 2, 29), false},
		{newDate(2000, 2, 29), true},
		{newDate(2023, 4, 31), false},
		{newDate(2023, 0, 1), false},
		{newDate(2023, 13, 1), false},
		{newDate(2023, 1, 0), false},
		{newDate(-1, 12, 31), true},
	} {
		if got, want := tc.cd.IsValid(), tc.valid; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}

	a, b := newDate(2024, 12, 31), newDate(2025, 1, 1)
	if got, want := a.AddDays(1), b; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.AddDays(-366), newDate(2024, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Compare(a), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.String(), "2024-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{-400, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
		{2024, 0, 0},
		{2024, 13, 0},
		{2024, -1, 0},
	} {
		if got, want := shire.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
	tm := time.Date(2024, 6, 20, 23, 59, 0, 0, time.UTC)
	if got, want := shire.CalendarDateFromTime(tm), newDate(2024, 6, 20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want shire.CalendarDate
	}{
		{"2024-06-20", newDate(2024, 6, 20)},
		{" 2024-6-2 ", newDate(2024, 6, 2)},
		{"-0044-03-15", newDate(-44, 3, 15)},
		{"06/20/2024", newDate(2024, 6, 20)},
		{"Jun-20-2024", newDate(2024, 6, 20)},
		{"december-21-2022", newDate(2022, 12, 21)},
	} {
		var cd shire.CalendarDate
		if err := cd.Parse(tc.val); err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := cd, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{
		"",
		"2024-02-30",
		"2024-06",
		"06/20",
		"Ju-20-2024",
		"Foo-20-2024",
		"20 June 2024",
		"2024/06/xx",
		"02/30/2024",
		"13/01/2024",
		"Feb-29-2023",
	} {
		var cd shire.CalendarDate
		err := cd.Parse(val)
		if !errors.Is(err, shire.ErrInvalidGregorianDate) {
			t.Errorf("%q: unexpected error: %v", val, err)
		}
	}
}
