// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import "iter"

// Days returns an iterator over every day of the specified Shire year,
// in order, from 2 Yule to 1 Yule.
func Days(year int) iter.Seq[Date] {
	n := DaysInYear(year)
	return func(yield func(Date) bool) {
		for doy := 1; doy <= n; doy++ {
			d, err := dateFromDayOfYear(year, doy)
			if err != nil {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}

// MonthDays returns an iterator over the 30 days of month m in the
// specified year. It yields nothing for an invalid month.
func MonthDays(m Month, year int) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !m.IsValid() {
			return
		}
		start, end := MonthSpan(m, IsLeapYear(year))
		for doy := start; doy <= end; doy++ {
			d, err := dateFromDayOfYear(year, doy)
			if err != nil {
				return
			}
			if !yield(d) {
				return
			}
		}
	}
}
