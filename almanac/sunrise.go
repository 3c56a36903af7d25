// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"time"

	"cloudeng.io/shire"
	"github.com/nathan-osman/go-sunrise"
)

// Place is a named location.
type Place struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Hobbiton is used when no other place is specified.
var Hobbiton = Place{Name: "Hobbiton", Latitude: 51.75, Longitude: -1.26}

// Daylight returns the time of sunrise and sunset for the specified
// date, latitude and longitude. The returned times are in UTC and are
// both zero when the sun does not rise or set on that day.
func Daylight(d shire.Date, lat, long float64) (rise, set time.Time) {
	cd := d.Gregorian()
	rise, set = sunrise.SunriseSunset(lat, long, cd.Year, cd.Month, cd.Day)
	return
}

// Daylight is like the package level Daylight for p.
func (p Place) Daylight(d shire.Date) (rise, set time.Time) {
	return Daylight(d, p.Latitude, p.Longitude)
}

// SolarNoon returns the midpoint between sunrise and sunset at p.
func (p Place) SolarNoon(d shire.Date) time.Time {
	rise, set := p.Daylight(d)
	return rise.Add(set.Sub(rise) / 2)
}
