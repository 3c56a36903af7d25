// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/shire"
)

func today(ctx context.Context, values any, _ []string) error {
	fv := values.(*todayFlags)
	ctx, s, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	return printToday(ctx, os.Stdout, s, time.Now())
}

func printToday(ctx context.Context, out io.Writer, s settings, now time.Time) error {
	d, err := shire.FromTime(now)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("today", "gregorian", d.Gregorian().String(), "day_of_year", d.DayOfYear())
	if s.json {
		return printDate(out, s, d, true)
	}
	fmt.Fprintln(out, d.Format(s.style, s.includeYear))
	if d.IsHoliday() {
		fmt.Fprintln(out, d.HolidayDescription())
	}
	return nil
}

func convert(ctx context.Context, values any, args []string) error {
	fv := values.(*convertFlags)
	ctx, s, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	return convertDates(ctx, os.Stdout, s, args)
}

func convertDates(ctx context.Context, out io.Writer, s settings, args []string) error {
	dates := make([]shire.Date, 0, len(args))
	for _, arg := range args {
		var cd shire.CalendarDate
		if err := cd.Parse(arg); err != nil {
			return err
		}
		d, err := shire.FromGregorian(cd)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("convert", "gregorian", cd.String(), "shire", d.String())
		dates = append(dates, d)
	}
	for _, d := range dates {
		if err := printDate(out, s, d, true); err != nil {
			return err
		}
	}
	return nil
}

func reverse(ctx context.Context, values any, args []string) error {
	fv := values.(*reverseFlags)
	ctx, s, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	year := fv.Year
	if year == 0 {
		year = shire.YearOf(shire.CalendarDateFromTime(time.Now()))
	}
	return reverseDate(ctx, os.Stdout, s, year, strings.Join(args, " "))
}

func reverseDate(ctx context.Context, out io.Writer, s settings, year int, arg string) error {
	p, err := shire.ParsePosition(arg)
	if err != nil {
		return err
	}
	d, err := shire.NewDate(p, year)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("reverse", "shire", d.String(), "gregorian", d.Gregorian().String())
	return printDate(out, s, d, false)
}
