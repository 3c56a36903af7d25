// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/shire"
	"cloudeng.io/shire/almanac"
)

// Config represents the optional yaml configuration file, eg:
//
//	style: bree
//	include_year: false
//	place:
//	  name: Bree
//	  latitude: 52.4
//	  longitude: -1.9
type Config struct {
	Style       string         `yaml:"style"`
	IncludeYear *bool          `yaml:"include_year"`
	Place       *almanac.Place `yaml:"place"`
}

type settings struct {
	style       shire.NameStyle
	includeYear bool
	place       almanac.Place
	json        bool
}

// newSettings reads the config file, if any, and applies the style
// flag on top of it.
func newSettings(ctx context.Context, configFile, style string) (settings, error) {
	var cfg Config
	if len(configFile) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, configFile, &cfg); err != nil {
			return settings{}, err
		}
	}
	return cfg.settings(style)
}

func (cfg Config) settings(style string) (settings, error) {
	s := settings{
		style:       shire.ShireStyle,
		includeYear: true,
		place:       almanac.Hobbiton,
	}
	if len(style) == 0 {
		style = cfg.Style
	}
	if len(style) > 0 {
		if err := s.style.Parse(style); err != nil {
			return settings{}, err
		}
	}
	if cfg.IncludeYear != nil {
		s.includeYear = *cfg.IncludeYear
	}
	if cfg.Place != nil {
		s.place = *cfg.Place
	}
	return s, nil
}
