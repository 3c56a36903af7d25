// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/shire"
	"cloudeng.io/sync/errgroup"
)

func verify(ctx context.Context, values any, _ []string) error {
	fv := values.(*verifyFlags)
	ctx, _, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	return verifyRange(ctx, os.Stdout, fv.From, fv.To, fv.Concurrency)
}

// verifyRange checks the calendar tables and then that every day in the
// years from..to, inclusive, converts to a Gregorian date and back again.
// The years are split into at most concurrency chunks that are checked
// in parallel.
func verifyRange(ctx context.Context, out io.Writer, from, to, concurrency int) error {
	if err := shire.Validate(); err != nil {
		return err
	}
	if to < from {
		return fmt.Errorf("invalid range of years: %v..%v", from, to)
	}
	concurrency = max(concurrency, 1)
	total := to - from + 1
	chunk := (total + concurrency - 1) / concurrency

	start := time.Now()
	var days atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for first := from; first <= to; first += chunk {
		last := min(first+chunk-1, to)
		g.Go(func() error {
			n, err := verifyYears(ctx, first, last)
			days.Add(n)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("verified", "from", from, "to", to, "days", days.Load(), "duration", time.Since(start))
	fmt.Fprintf(out, "verified %v days in S.R. %v..%v\n", days.Load(), from, to)
	return nil
}

func verifyYears(ctx context.Context, first, last int) (int64, error) {
	var n int64
	for year := first; year <= last; year++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		expected := shire.YearStart(year)
		for d := range shire.Days(year) {
			cd := d.Gregorian()
			if cd != expected {
				return n, fmt.Errorf("%v: maps to %v, expected %v", d, cd, expected)
			}
			back, err := shire.FromGregorian(cd)
			if err != nil {
				return n, err
			}
			if back != d {
				return n, fmt.Errorf("%v: round trips to %v", d, back)
			}
			expected = expected.AddDays(1)
			n++
		}
	}
	return n, nil
}
