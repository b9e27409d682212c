// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/unixdj/qrframe"
)

// A config holds defaults read from a TOML file, e.g.:
//
//	level = "m"
//	mask = "auto"
//	type = "text"
//	dark = "[]"
//	light = "  "
//	margin = 2
//	latin1 = true
//	truncate = false
//
//	[glyphs]
//	full = "#"
//	upper = "\""
//	lower = "_"
//	empty = " "
type config struct {
	Level    string `toml:"level"`
	Mask     string `toml:"mask"`
	Type     string `toml:"type"`
	Dark     string `toml:"dark"`
	Light    string `toml:"light"`
	Margin   int    `toml:"margin"`
	Latin1   bool   `toml:"latin1"`
	Truncate bool   `toml:"truncate"`
	Glyphs   struct {
		Full  string `toml:"full"`
		Upper string `toml:"upper"`
		Lower string `toml:"lower"`
		Empty string `toml:"empty"`
	} `toml:"glyphs"`

	md toml.MetaData
}

// loadConfig reads the configuration file fn.  Unknown keys are errors.
func loadConfig(fn string) (*config, error) {
	var c config
	md, err := toml.DecodeFile(fn, &c)
	if err != nil {
		return nil, err
	}
	if u := md.Undecoded(); len(u) != 0 {
		return nil, fmt.Errorf("%s: unknown key %q", fn, u[0].String())
	}
	c.md = md
	return &c, nil
}

// apply sets the options defined in c, except for those whose flags
// isSet reports as given on the command line.  The values of level,
// mask and type are stored in lev, mask and ff for parsing along with
// the flags.
func (c *config) apply(isSet func(name interface{}) bool,
	lev, mask, ff *string) error {
	for _, o := range []struct {
		key  string
		flag rune
		set  func() error
	}{
		{"level", 'l', func() error {
			*lev = c.Level
			_, err := qr.ParseLevel(c.Level)
			return err
		}},
		{"mask", 'k', func() error {
			*mask = c.Mask
			_, err := parseMask(c.Mask)
			return err
		}},
		{"type", 't', func() error {
			*ff = c.Type
			return parseFormat(c.Type)
		}},
		{"dark", 'D', func() error { g.dark = c.Dark; return nil }},
		{"light", 'W', func() error { g.light = c.Light; return nil }},
		{"margin", 'm', func() error {
			if c.Margin < 0 {
				return fmt.Errorf("margin %d: must not be negative",
					c.Margin)
			}
			g.border = c.Margin
			return nil
		}},
		{"latin1", '1', func() error { g.latin1 = c.Latin1; return nil }},
		{"truncate", 'T', func() error { g.trunc = c.Truncate; return nil }},
	} {
		if !c.md.IsDefined(o.key) || isSet(o.flag) {
			continue
		}
		if err := o.set(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.md.IsDefined("glyphs") {
		g.glyphs = qr.Glyphs(c.Glyphs)
	}
	return nil
}
