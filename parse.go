// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	monthsByName   = map[string]Month{}
	specialsByName = map[string]SpecialDay{}

	apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'", "`", "'")
)

func init() {
	for _, m := range Months() {
		for _, style := range []NameStyle{ShireStyle, BreeStyle, EnglishStyle} {
			monthsByName[fold(m.Name(style))] = m
		}
	}
	for _, sd := range SpecialDays() {
		name := fold(sd.String())
		specialsByName[name] = sd
		specialsByName[strings.ReplaceAll(name, "'", "")] = sd
	}
	specialsByName["midyear's day"] = MidYearsDay
	specialsByName["midyears day"] = MidYearsDay
	specialsByName["yule 2"] = TwoYule
	specialsByName["lithe 1"] = OneLithe
	specialsByName["lithe 2"] = TwoLithe
	specialsByName["yule 1"] = OneYule
}

// fold normalizes user supplied names: NFKC, typographic apostrophes,
// runs of white space and case are all folded away.
func fold(s string) string {
	s = apostrophes.Replace(norm.NFKC.String(s))
	s = strings.Join(strings.Fields(s), " ")
	// A Caser is stateful and must not be shared across goroutines.
	return cases.Fold().String(s)
}

// ParseMonth parses a month name in any of the supported name styles,
// eg. 'Afteryule', 'Frery' or 'January', in any case.
func ParseMonth(val string) (Month, error) {
	if m, ok := monthsByName[fold(val)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unrecognised month %q: %w", val, ErrMalformedInput)
}

// ParseSpecialDay parses the name of a special day, eg. '2 Yule' or
// 'Mid-year's Day', in any case and with or without the apostrophe.
func ParseSpecialDay(val string) (SpecialDay, error) {
	if sd, ok := specialsByName[fold(val)]; ok {
		return sd, nil
	}
	return 0, fmt.Errorf("unrecognised special day %q: %w", val, ErrMalformedInput)
}

// ParsePosition parses a special day name or a month and day in one of the
// forms '<day> <month>', '<month> <day>' or '<month>-<day>' where the month
// may be named in any style. Special day names take precedence, hence
// '1 Lithe' is always the special day rather than the first day of the
// month called Lithe in Bree.
func ParsePosition(val string) (Position, error) {
	if sd, err := ParseSpecialDay(val); err == nil {
		return sd, nil
	}
	fields := strings.Fields(strings.ReplaceAll(fold(val), "-", " "))
	if len(fields) != 2 {
		return nil, fmt.Errorf("%q: expected a special day or '<day> <month>': %w", val, ErrMalformedInput)
	}
	dayField, monthField := fields[0], fields[1]
	if _, err := strconv.Atoi(dayField); err != nil {
		dayField, monthField = monthField, dayField
	}
	day, err := strconv.Atoi(dayField)
	if err != nil {
		return nil, fmt.Errorf("%q: no day of the month: %w", val, ErrMalformedInput)
	}
	month, err := ParseMonth(monthField)
	if err != nil {
		return nil, err
	}
	md := MonthDay{Month: month, Day: day}
	if !md.IsValid() {
		return nil, fmt.Errorf("%q: day %d is not in the range 1-%d: %w", val, day, DaysPerMonth, ErrInvalidRegularDate)
	}
	return md, nil
}
