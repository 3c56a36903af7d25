// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package shire provides a bijective mapping between the proleptic Gregorian
// calendar and the Shire Reckoning.
//
// A Shire year has twelve months of 30 days each together with six days
// that belong to no month: 2 Yule opens the year, 1 Lithe, Mid-year's Day
// and 2 Lithe sit between Forelithe and Afterlithe, with Overlithe added after
// Mid-year's Day in leap years, and 1 Yule closes the year. Shire year Y
// runs from Dec 21 of Gregorian year Y-1 to Dec 20 of Gregorian year Y so
// that Mid-year's Day always falls in Gregorian year Y and Y's leap status
// is that of the Gregorian year Y.
//
// Under the Shire-reform Mid-year's Day and Overlithe have no weekday and
// hence every year contains exactly 52 weeks and any given calendar position
// has the same weekday in every year.
//
// All functions in this package are pure and safe for concurrent use; none
// of them reads the clock.
package shire
