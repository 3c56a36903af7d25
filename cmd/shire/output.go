// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/shire"
	"github.com/go-json-experiment/json"
)

type dateRecord struct {
	Gregorian string `json:"gregorian"`
	Year      int    `json:"shire_year"`
	DayOfYear int    `json:"day_of_year"`
	Date      string `json:"date"`
	Weekday   string `json:"weekday,omitempty"`
	Holiday   string `json:"holiday,omitempty"`
}

func newDateRecord(d shire.Date, style shire.NameStyle) dateRecord {
	rec := dateRecord{
		Gregorian: d.Gregorian().String(),
		Year:      d.Year(),
		DayOfYear: d.DayOfYear(),
		Date:      d.FormatShort(style),
		Holiday:   d.HolidayDescription(),
	}
	if wd, ok := d.Weekday(); ok {
		rec.Weekday = wd.Name(style)
	}
	return rec
}

// printDate writes d as a single line of text or json. The text form is
// prefixed by the Gregorian date when gregorianFirst is set and followed
// by it otherwise.
func printDate(out io.Writer, s settings, d shire.Date, gregorianFirst bool) error {
	if s.json {
		buf, err := json.Marshal(newDateRecord(d, s.style))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", buf)
		return err
	}
	if gregorianFirst {
		_, err := fmt.Fprintf(out, "%v: %v\n", d.Gregorian(), d.Format(s.style, s.includeYear))
		return err
	}
	_, err := fmt.Fprintf(out, "%v: %v\n", d.Format(s.style, true), d.Gregorian())
	return err
}
