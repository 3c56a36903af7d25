// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPosition returns the name of p using the requested style, eg.
// '14 Afterlithe', '14 Mede', '14 July' or 'Mid-year's Day'. Special days
// have a single name regardless of style. A nil position, including a nil
// *MonthDay or *SpecialDay, is formatted as 'Unknown Date'.
func FormatPosition(p Position, style NameStyle) string {
	switch v := p.(type) {
	case MonthDay:
		return strconv.Itoa(v.Day) + " " + v.Month.Name(style)
	case *MonthDay:
		if v != nil {
			return FormatPosition(*v, style)
		}
	case SpecialDay:
		return v.String()
	case *SpecialDay:
		if v != nil {
			return v.String()
		}
	case nil:
	default:
		return p.String()
	}
	return "Unknown Date"
}

// Format returns d formatted using the requested style, prefixed by the weekday,
// if any, and optionally followed by the year, eg.
// 'Sterday, 2 Yule, S.R. 2025' or 'Mid-year's Day, S.R. 2024'.
func (d Date) Format(style NameStyle, includeYear bool) string {
	var out strings.Builder
	if wd, ok := d.Weekday(); ok {
		out.WriteString(wd.Name(style))
		out.WriteString(", ")
	}
	out.WriteString(FormatPosition(d.position, style))
	if includeYear {
		fmt.Fprintf(&out, ", S.R. %d", d.year)
	}
	return out.String()
}

// FormatShort returns just the position of d, eg. '14 Afterlithe'.
func (d Date) FormatShort(style NameStyle) string {
	return FormatPosition(d.position, style)
}
