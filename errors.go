// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package shire

import "errors"

var (
	// ErrInvalidSpecialDay is returned when a special day does not exist in
	// the requested year, ie. Overlithe in a non-leap year, or is not one
	// of the six defined special days.
	ErrInvalidSpecialDay = errors.New("invalid special day")

	// ErrInvalidRegularDate is returned for a month outside of 1-12 or
	// a day of the month outside of 1-30.
	ErrInvalidRegularDate = errors.New("invalid month or day of month")

	// ErrMalformedInput is returned when neither a month and day nor
	// a special day is supplied.
	ErrMalformedInput = errors.New("malformed shire date")

	// ErrUnreachableDayOfYear indicates an internal inconsistency between
	// the day-of-year arithmetic and the calendar layout tables.
	ErrUnreachableDayOfYear = errors.New("day of year does not map to a shire date")

	// ErrInvalidGregorianDate is returned for a Gregorian date that does
	// not exist, eg. Feb 30.
	ErrInvalidGregorianDate = errors.New("invalid gregorian date")
)
