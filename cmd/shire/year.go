// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/shire"
	"cloudeng.io/shire/almanac"
)

// yearArg returns the Shire year named by the optional argument,
// or the current Shire year.
func yearArg(args []string) (int, error) {
	if len(args) == 0 {
		return shire.YearOf(shire.CalendarDateFromTime(time.Now())), nil
	}
	y, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid Shire year %q: %w", args[0], err)
	}
	return y, nil
}

func year(ctx context.Context, values any, args []string) error {
	fv := values.(*yearFlags)
	ctx, s, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	y, err := yearArg(args)
	if err != nil {
		return err
	}
	return listYear(ctx, os.Stdout, s, y, fv.Month)
}

func listYear(ctx context.Context, out io.Writer, s settings, year int, month string) error {
	var days iter.Seq[shire.Date]
	if len(month) > 0 {
		m, err := shire.ParseMonth(month)
		if err != nil {
			return err
		}
		days = shire.MonthDays(m, year)
	} else {
		days = shire.Days(year)
	}
	n := 0
	for d := range days {
		fmt.Fprintf(out, "%3d %v %v\n", d.DayOfYear(), d.Gregorian(), d.Format(s.style, false))
		n++
	}
	ctxlog.Logger(ctx).Info("listed year", "year", year, "days", n, "leap", shire.IsLeapYear(year))
	return nil
}

func almanacCmd(ctx context.Context, values any, args []string) error {
	fv := values.(*almanacFlags)
	ctx, s, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	y, err := yearArg(args)
	if err != nil {
		return err
	}
	for i := range max(fv.Years, 1) {
		if err := printAlmanac(ctx, os.Stdout, s, y+i); err != nil {
			return err
		}
	}
	return nil
}

func printAlmanac(ctx context.Context, out io.Writer, s settings, year int) error {
	a, err := almanac.Align(year)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, a)
	for _, ev := range almanac.Events() {
		d, err := ev.Evaluate(year)
		if err != nil {
			return err
		}
		rise, set := s.place.Daylight(d)
		fmt.Fprintf(out, "  %-15s %v %-35s %s: sunrise %v, sunset %v\n",
			ev.Name(), d.Gregorian(), d.Format(s.style, false), s.place.Name,
			rise.Format(time.TimeOnly), set.Format(time.TimeOnly))
	}
	ctxlog.Logger(ctx).Debug("almanac", "year", year, "place", s.place.Name)
	return nil
}
