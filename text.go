// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// merge returns v, or def if v is the zero value.
func merge[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// TextOptions describe a code rendered as text, one line per row of
// modules.
type TextOptions struct {
	Options
	Dark   string // string for a dark module ["#"]
	Light  string // string for a light module [" "]
	Margin int    // quiet zone width in modules [0]
}

// Glyphs are the strings drawing two vertically adjacent modules.
type Glyphs struct {
	Full  string // both dark ["█"]
	Upper string // upper dark ["▀"]
	Lower string // lower dark ["▄"]
	Empty string // both light [" "]
}

// TwoToneOptions describe a code rendered as text, one line per two
// rows of modules.
type TwoToneOptions struct {
	Options
	Glyphs
	Margin int // quiet zone width in modules [0]
}

// DefaultGlyphs are the block elements used by TwoTone.
var DefaultGlyphs = Glyphs{Full: "█", Upper: "▀", Lower: "▄", Empty: " "}

func (g Glyphs) merge() Glyphs {
	return Glyphs{
		Full:  merge(g.Full, DefaultGlyphs.Full),
		Upper: merge(g.Upper, DefaultGlyphs.Upper),
		Lower: merge(g.Lower, DefaultGlyphs.Lower),
		Empty: merge(g.Empty, DefaultGlyphs.Empty),
	}
}

// Invert returns g with dark and light swapped.
func (g Glyphs) Invert() Glyphs {
	g = g.merge()
	return Glyphs{Full: g.Empty, Upper: g.Lower, Lower: g.Upper, Empty: g.Full}
}

// Text renders the code for value at level L as text with "#" for dark
// and " " for light modules.
func Text(value string) (string, error) {
	return RenderText(TextOptions{Options: Options{Value: value}})
}

// RenderText renders the code described by o as text.  Empty strings
// in o take the defaults.
func RenderText(o TextOptions) (string, error) {
	if o.Margin < 0 {
		return "", ErrArgs
	}
	c, err := Generate(o.Options)
	if err != nil {
		return "", err
	}
	c.Border = o.Margin
	return c.Text(merge(o.Dark, "#"), merge(o.Light, " ")), nil
}

// TwoTone renders the code for value at level L as text using block
// elements, two rows of modules per line.
func TwoTone(value string) (string, error) {
	return RenderTwoTone(TwoToneOptions{Options: Options{Value: value}})
}

// RenderTwoTone renders the code described by o as text, two rows of
// modules per line.  Empty glyphs in o take the defaults.
func RenderTwoTone(o TwoToneOptions) (string, error) {
	if o.Margin < 0 {
		return "", ErrArgs
	}
	c, err := Generate(o.Options)
	if err != nil {
		return "", err
	}
	c.Border = o.Margin
	return c.TwoTone(o.Glyphs), nil
}

// Text returns c drawn with the strings dark and light, one line per
// row, surrounded by c.Border light modules.  Lines are separated by
// newlines; there is no final newline.
func (c *Code) Text(dark, light string) string {
	bord := c.Border
	pix := c.Size + 2*bord
	var b strings.Builder
	b.Grow((max(len(dark), len(light))*pix + 1) * pix)
	for y := -bord; y < c.Size+bord; y++ {
		if y != -bord {
			b.WriteByte('\n')
		}
		for x := -bord; x < c.Size+bord; x++ {
			if c.Black(x, y) {
				b.WriteString(dark)
			} else {
				b.WriteString(light)
			}
		}
	}
	return b.String()
}

// TwoTone returns c drawn with g, each line holding two rows, surrounded
// by c.Border light modules.  When the number of rows is odd, the last
// line holds one row with the modules below it light.  Empty glyphs take
// the defaults.
func (c *Code) TwoTone(g Glyphs) string {
	g = g.merge()
	bord := c.Border
	pix := c.Size + 2*bord
	glyph := [4]string{g.Empty, g.Upper, g.Lower, g.Full}
	var b strings.Builder
	b.Grow((len(g.Full)*pix + 1) * (pix + 1) / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		if y != -bord {
			b.WriteByte('\n')
		}
		for x := -bord; x < c.Size+bord; x++ {
			var i int
			if c.Black(x, y) {
				i |= 1
			}
			// light below the last row
			if c.Black(x, y+1) {
				i |= 2
			}
			b.WriteString(glyph[i])
		}
	}
	return b.String()
}

// String returns c drawn with DefaultGlyphs.
func (c *Code) String() string {
	return c.TwoTone(DefaultGlyphs)
}
