// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import "cloudeng.io/datetime"

// IsLeapYear returns true if year is a leap year under the Gregorian
// 4/100/400 rule. It applies equally to Gregorian years and to Shire years
// since Shire year Y contains Feb of Gregorian year Y.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInYear returns the number of days in the Shire year, 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
