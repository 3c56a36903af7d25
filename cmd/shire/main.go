// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command shire converts dates between the Gregorian calendar and the
// Shire Reckoning.
package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: shire
summary: convert dates between the Gregorian calendar and the Shire Reckoning
commands:
  - name: today
    summary: display today's date in the Shire Reckoning
  - name: convert
    summary: convert Gregorian dates, in yyyy-mm-dd, mm/dd/yyyy or Mon-dd-yyyy format, to the Shire Reckoning
    arguments:
      - <date>
      - ...
  - name: reverse
    summary: convert a Shire date, eg. '14 Afterlithe' or 'Mid-year's Day', to the Gregorian calendar
    arguments:
      - <shire-date>
      - ...
  - name: year
    summary: list every day of a Shire year, the current year by default
    arguments:
      - "[shire-year]"
  - name: almanac
    summary: display the solstice alignment and daylight for a Shire year
    arguments:
      - "[shire-year]"
  - name: verify
    summary: validate the calendar tables and check that every day in a range of years converts back and forth
`

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Style  string `subcmd:"style,,'name style to display dates in: shire, bree or english'"`
	Config string `subcmd:"config,,'yaml configuration file'"`
	JSON   bool   `subcmd:"json,false,'write dates as json, one object per line'"`
}

type todayFlags struct {
	CommonFlags
}

type convertFlags struct {
	CommonFlags
}

type reverseFlags struct {
	CommonFlags
	Year int `subcmd:"year,0,'Shire year, defaults to the current Shire year'"`
}

type yearFlags struct {
	CommonFlags
	Month string `subcmd:"month,,'list only the specified month'"`
}

type almanacFlags struct {
	CommonFlags
	Years int `subcmd:"years,1,number of consecutive years to report on"`
}

type verifyFlags struct {
	CommonFlags
	From        int `subcmd:"from,1,first Shire year to verify"`
	To          int `subcmd:"to,9999,last Shire year to verify"`
	Concurrency int `subcmd:"concurrency,8,number of years to verify in parallel"`
}

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	cmdSet.Set("today").MustRunnerAndFlags(today,
		subcmd.MustRegisteredFlagSet(&todayFlags{}))
	cmdSet.Set("convert").MustRunnerAndFlags(convert,
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("reverse").MustRunnerAndFlags(reverse,
		subcmd.MustRegisteredFlagSet(&reverseFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(year,
		subcmd.MustRegisteredFlagSet(&yearFlags{}))
	cmdSet.Set("almanac").MustRunnerAndFlags(almanacCmd,
		subcmd.MustRegisteredFlagSet(&almanacFlags{}))
	cmdSet.Set("verify").MustRunnerAndFlags(verify,
		subcmd.MustRegisteredFlagSet(&verifyFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// setup creates the logger and loads the configuration common to all
// commands. The returned function must be called to close the logger.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, settings, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, settings{}, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	closer := func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	}
	s, err := newSettings(ctx, cf.Config, cf.Style)
	if err != nil {
		closer()
		return ctx, settings{}, nil, err
	}
	s.json = cf.JSON
	ctxlog.Logger(ctx).Debug("settings", "style", s.style, "include_year", s.includeYear, "place", s.place.Name)
	return ctx, s, closer, nil
}
