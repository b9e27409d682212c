// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrframe"
)

// saveFlags restores the flag values when t ends.
func saveFlags(t *testing.T) {
	saved := g
	t.Cleanup(func() { g = saved })
}

func TestParseMask(t *testing.T) {
	m, err := parseMask("auto")
	require.NoError(t, err)
	assert.Equal(t, qr.AutoMask, m)
	for n := 0; n < qr.NumMasks; n++ {
		m, err := parseMask(masks[n+1])
		require.NoError(t, err)
		assert.Equal(t, n, m.Pattern())
	}
	for _, s := range []string{"", "8", "-1", "Auto"} {
		_, err := parseMask(s)
		assert.ErrorIs(t, err, qr.ErrMask, "%q", s)
	}
}

func TestParseFormat(t *testing.T) {
	saveFlags(t)
	for _, tt := range []struct {
		s      string
		format int
		rev    bool
	}{
		{"text", textFormat, false},
		{"texti", textFormat, true},
		{"twotone", twoToneFormat, false},
		{"twotonei", twoToneFormat, true},
	} {
		require.NoError(t, parseFormat(tt.s))
		assert.Equal(t, tt.format, g.format, tt.s)
		assert.Equal(t, tt.rev, g.rev, tt.s)
	}
	assert.Error(t, parseFormat("png"))
}

func TestRandr(t *testing.T) {
	saveFlags(t)
	c, err := qr.Encode("randr", qr.Q)
	require.NoError(t, err)
	siz := c.Size
	check := func(name string, f func(x, y int) (int, int)) {
		r := randr(c)
		require.Len(t, r.Bitmap, len(c.Bitmap))
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				xx, yy := f(x, y)
				require.Equal(t, c.Black(xx, yy), r.Black(x, y),
					"%s: %d,%d", name, x, y)
			}
		}
	}

	check("identity", func(x, y int) (int, int) { return x, y })
	assert.Same(t, c, randr(c))
	flip()
	check("flip", func(x, y int) (int, int) { return siz - 1 - x, y })
	flip()
	rotate()
	check("rotate", func(x, y int) (int, int) { return siz - 1 - y, x })
	rotate()
	check("rotate twice", func(x, y int) (int, int) {
		return siz - 1 - x, siz - 1 - y
	})
	rotate()
	rotate()
	check("rotate four times", func(x, y int) (int, int) { return x, y })
	flip()
	rotate()
	rotate()
	check("flip vertically", func(x, y int) (int, int) {
		return x, siz - 1 - y
	})
}

func TestRender(t *testing.T) {
	saveFlags(t)
	g.dark, g.light = "#", "."
	g.format = textFormat
	s, err := render("hello")
	require.NoError(t, err)
	want, err := qr.RenderText(qr.TextOptions{
		Options: qr.Options{Value: "hello"},
		Light:   ".",
	})
	require.NoError(t, err)
	assert.Equal(t, want, s)

	g.rev = true
	s, err = render("hello")
	require.NoError(t, err)
	assert.Equal(t, strings.NewReplacer("#", ".", ".", "#").Replace(want), s)

	g.rev = false
	g.format = twoToneFormat
	g.border = 1
	g.lev = qr.H
	g.mask = qr.MaskPattern(6)
	s, err = render("hello")
	require.NoError(t, err)
	want, err = qr.RenderTwoTone(qr.TwoToneOptions{
		Options: qr.Options{Value: "hello", Level: qr.H, Mask: qr.MaskPattern(6)},
		Margin:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, want, s)
}

func TestRenderLatin1(t *testing.T) {
	saveFlags(t)
	g.latin1 = true
	s, err := render("café")
	require.NoError(t, err)
	c, err := qr.Encode("caf\xe9", qr.L)
	require.NoError(t, err)
	assert.Equal(t, c.Text(g.dark, g.light), s)

	_, err = render("5 €")
	assert.ErrorContains(t, err, "Latin-1")
}

func TestRenderLines(t *testing.T) {
	saveFlags(t)
	g.dark, g.light = "#", "."
	lines := []string{"one", "two", "", "four", "five", "six"}
	out, err := renderLines(lines)
	require.NoError(t, err)
	require.Len(t, out, len(lines))
	for i, s := range lines {
		want, err := render(s)
		require.NoError(t, err)
		assert.Equal(t, want, out[i], "line %d", i+1)
	}

	g.lev = qr.H
	_, err = renderLines([]string{"short", strings.Repeat("x", 1300)})
	assert.EqualError(t, err,
		"line 2: qr: cannot encode 1300 bytes into 1273-byte code")
	g.trunc = true
	_, err = renderLines([]string{"short", strings.Repeat("x", 1300)})
	assert.NoError(t, err)
}

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "qrframe.toml")
	require.NoError(t, os.WriteFile(fn, []byte(s), 0666))
	return fn
}

func noFlags(interface{}) bool { return false }

func TestConfig(t *testing.T) {
	saveFlags(t)
	fn := writeConfig(t, `
level = "Q"
mask = "3"
type = "twotonei"
dark = "[]"
light = ".."
margin = 2
latin1 = true
truncate = true

[glyphs]
full = "#"
upper = "^"
`)
	c, err := loadConfig(fn)
	require.NoError(t, err)
	lev, mask, ff := "l", "auto", ""
	require.NoError(t, c.apply(noFlags, &lev, &mask, &ff))
	assert.Equal(t, "Q", lev)
	assert.Equal(t, "3", mask)
	assert.Equal(t, "twotonei", ff)
	assert.Equal(t, twoToneFormat, g.format)
	assert.True(t, g.rev)
	assert.Equal(t, "[]", g.dark)
	assert.Equal(t, "..", g.light)
	assert.Equal(t, 2, g.border)
	assert.True(t, g.latin1)
	assert.True(t, g.trunc)
	assert.Equal(t, qr.Glyphs{Full: "#", Upper: "^"}, g.glyphs)
}

func TestConfigFlagsOverride(t *testing.T) {
	saveFlags(t)
	fn := writeConfig(t, "level = \"h\"\ndark = \"X\"\nmargin = 3\n")
	c, err := loadConfig(fn)
	require.NoError(t, err)
	g.dark = "##"
	set := func(name interface{}) bool { return name == 'l' || name == 'D' }
	lev, mask, ff := "m", "auto", ""
	require.NoError(t, c.apply(set, &lev, &mask, &ff))
	assert.Equal(t, "m", lev)
	assert.Equal(t, "##", g.dark)
	assert.Equal(t, 3, g.border)
	assert.Equal(t, "auto", mask)
	assert.Equal(t, "", ff)
}

func TestConfigErrors(t *testing.T) {
	saveFlags(t)
	for _, tt := range []struct {
		conf string
		err  string
	}{
		{`level = "x"`, `config: qr: invalid level: "x"`},
		{`mask = "9"`, `config: qr: invalid mask: "9"`},
		{`type = "png"`, `config: "png": bad output format`},
		{`margin = -1`, `config: margin -1: must not be negative`},
	} {
		c, err := loadConfig(writeConfig(t, tt.conf))
		require.NoError(t, err, tt.conf)
		var lev, mask, ff string
		assert.EqualError(t, c.apply(noFlags, &lev, &mask, &ff), tt.err)
	}

	fn := writeConfig(t, "colour = \"red\"\n")
	_, err := loadConfig(fn)
	assert.EqualError(t, err, fn+`: unknown key "colour"`)

	_, err = loadConfig(writeConfig(t, "level = \n"))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
