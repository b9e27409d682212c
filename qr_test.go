// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrframe"
	"github.com/unixdj/qrframe/coding"
)

// hello is "hello" at level L with mask 2, '#' dark, '.' light.
const hello = `#######...###.#######
#.....#.###.#.#.....#
#.###.#...###.#.###.#
#.###.#.##..#.#.###.#
#.###.#..#..#.#.###.#
#.....#.#..#..#.....#
#######.#.#.#.#######
.........#...........
#####.###..#.#.#.#.#.
#.###...##.####..##.#
.#...##..##.#.##.###.
####.#.#...####..##..
..##..###...#..#....#
........##..#..#.#..#
#######.#..#.#..#.##.
#.....#..##....#####.
#.###.#.#..#.#..#..#.
#.###.#.#.######.#...
#.###.#.#...#.##..#..
#.....#.##.####.###..
#######.##..#...#..#.`

func TestParseLevel(t *testing.T) {
	for i, s := range []string{"L", "M", "Q", "H"} {
		for _, s := range []string{s, strings.ToLower(s)} {
			l, err := qr.ParseLevel(s)
			require.NoError(t, err)
			assert.Equal(t, qr.Level(i+1), l)
			assert.Equal(t, strings.ToUpper(s), l.String())
		}
	}
	for _, s := range []string{"", "x", "LL", "low", "1"} {
		_, err := qr.ParseLevel(s)
		assert.ErrorIs(t, err, qr.ErrLevel, "%q", s)
	}
	var l qr.Level
	assert.Equal(t, "L", l.String())
	assert.Equal(t, "Level(7)", qr.Level(7).String())
}

func TestMask(t *testing.T) {
	assert.Equal(t, qr.AutoMask, qr.MaskPattern(-1))
	assert.Equal(t, -1, qr.AutoMask.Pattern())
	assert.Equal(t, "auto", qr.AutoMask.String())
	for n := 0; n < qr.NumMasks; n++ {
		assert.Equal(t, n, qr.MaskPattern(n).Pattern())
		assert.Equal(t, fmt.Sprint(n), qr.MaskPattern(n).String())
	}
}

func TestGenerate(t *testing.T) {
	c, err := qr.Generate(qr.Options{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Version)
	assert.Equal(t, 21, c.Size)
	assert.Equal(t, qr.L, c.Level)
	assert.Equal(t, 2, c.Mask)
	assert.Equal(t, hello, c.Text("#", "."))

	cc, err := coding.Encode([]byte("hello"), coding.L, coding.AutoMask)
	require.NoError(t, err)
	assert.Equal(t, cc.Bitmap, c.Bitmap)

	e, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	assert.Equal(t, c, e)
	assert.NotSame(t, &c.Bitmap[0], &e.Bitmap[0])

	for l := qr.L; l <= qr.H; l++ {
		c, err := qr.Encode("hello", l)
		require.NoError(t, err)
		assert.Equal(t, l, c.Level)
	}
}

// transpose swaps rows and columns of a square text block.
func transpose(s string) string {
	lines := strings.Split(s, "\n")
	var b strings.Builder
	for x := range lines {
		if x != 0 {
			b.WriteByte('\n')
		}
		for _, l := range lines {
			b.WriteByte(l[x])
		}
	}
	return b.String()
}

func TestEncodeMask(t *testing.T) {
	for mask := 0; mask < qr.NumMasks; mask++ {
		want, err := os.ReadFile(fmt.Sprintf(
			"coding/testdata/hello-L-mask%d.txt", mask))
		require.NoError(t, err)
		c, err := qr.EncodeMask("hello", qr.L, mask)
		require.NoError(t, err)
		assert.Equal(t, mask, c.Mask)
		// reference dumps have one line per column
		assert.Equal(t, transpose(strings.TrimSuffix(string(want), "\n")),
			c.Text("#", " "), "mask %d", mask)
	}
	auto, err := qr.EncodeMask("hello", qr.L, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, auto.Mask)
}

func TestGenerateErrors(t *testing.T) {
	for _, l := range []qr.Level{-1, 5, 100} {
		_, err := qr.Encode("x", l)
		assert.ErrorIs(t, err, qr.ErrLevel)
	}
	for _, m := range []qr.Mask{-1, 9, 100} {
		_, err := qr.Generate(qr.Options{Value: "x", Mask: m})
		assert.ErrorIs(t, err, qr.ErrMask)
	}
	_, err := qr.EncodeMask("x", qr.M, 8)
	assert.EqualError(t, err, "qr: invalid mask: 8")

	long := strings.Repeat("z", 1664)
	_, err = qr.Encode(long, qr.H)
	var ce *qr.CapacityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, qr.CapacityError{Len: 1664, Max: 1273}, *ce)

	c, err := qr.Generate(qr.Options{Value: long, Level: qr.H, Truncate: true})
	require.NoError(t, err)
	assert.Equal(t, 40, c.Version)
	short, err := qr.Encode(long[:1273], qr.H)
	require.NoError(t, err)
	assert.Equal(t, short, c)
}

func TestBlack(t *testing.T) {
	c, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	assert.True(t, c.Black(0, 0))
	assert.False(t, c.Black(7, 0))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}, {-5, 30}} {
		assert.False(t, c.Black(p[0], p[1]), "%v", p)
	}
}

func TestText(t *testing.T) {
	s, err := qr.Text("hello")
	require.NoError(t, err)
	assert.Equal(t, strings.NewReplacer(".", " ").Replace(hello), s)
	assert.False(t, strings.HasSuffix(s, "\n"))

	s, err = qr.RenderText(qr.TextOptions{
		Options: qr.Options{Value: "hello"},
		Light:   ".",
	})
	require.NoError(t, err)
	assert.Equal(t, hello, s)

	s, err = qr.RenderText(qr.TextOptions{
		Options: qr.Options{Value: "hello"},
		Dark:    "##",
		Light:   "..",
		Margin:  2,
	})
	require.NoError(t, err)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 25)
	for _, l := range lines {
		assert.Len(t, l, 50)
	}
	assert.Equal(t, strings.Repeat(".", 50), lines[0])
	assert.Equal(t, strings.Repeat(".", 50), lines[24])
	assert.Equal(t, "....##############......######..##############....", lines[2])

	_, err = qr.RenderText(qr.TextOptions{Margin: -1})
	assert.ErrorIs(t, err, qr.ErrArgs)
	_, err = qr.RenderText(qr.TextOptions{Options: qr.Options{Level: 9}})
	assert.ErrorIs(t, err, qr.ErrLevel)
}

var testGlyphs = qr.Glyphs{Full: "#", Upper: "'", Lower: "_", Empty: "."}

func TestTwoTone(t *testing.T) {
	c, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	s := c.TwoTone(testGlyphs)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 11)
	rows := strings.Split(hello, "\n")
	for i, l := range lines {
		require.Len(t, l, 21)
		for x := range l {
			top := rows[2*i][x] == '#'
			bottom := 2*i+1 < len(rows) && rows[2*i+1][x] == '#'
			var want byte
			switch {
			case top && bottom:
				want = '#'
			case top:
				want = '\''
			case bottom:
				want = '_'
			default:
				want = '.'
			}
			assert.Equal(t, string(want), string(l[x]), "line %d col %d", i, x)
		}
	}
	// unpaired last row: upper glyph for dark modules
	assert.Equal(t, "'''''''.''..'...'..'.", lines[10])

	d, err := qr.TwoTone("hello")
	require.NoError(t, err)
	assert.Equal(t, c.String(), d)
	assert.Equal(t, c.TwoTone(qr.Glyphs{}), d)
	assert.True(t, strings.HasPrefix(d, "█▀▀▀▀▀█ ▄▄█▀█ █▀▀▀▀▀█\n"), d)

	s, err = qr.RenderTwoTone(qr.TwoToneOptions{
		Options: qr.Options{Value: "hello"},
		Glyphs:  testGlyphs,
		Margin:  1,
	})
	require.NoError(t, err)
	lines = strings.Split(s, "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "._______...___._______.", lines[0])
	assert.Equal(t, ".#.___.#.''#_#.#.___.#.", lines[1])
	assert.Equal(t, strings.Repeat(".", 23), lines[11])

	_, err = qr.RenderTwoTone(qr.TwoToneOptions{Margin: -2})
	assert.ErrorIs(t, err, qr.ErrArgs)
}

func TestInvert(t *testing.T) {
	assert.Equal(t, qr.Glyphs{Full: " ", Upper: "▄", Lower: "▀", Empty: "█"},
		qr.Glyphs{}.Invert())
	c, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	inv := c.TwoTone(testGlyphs.Invert())
	assert.Equal(t, strings.NewReplacer("#", ".", ".", "#", "'", "_", "_", "'").
		Replace(c.TwoTone(testGlyphs)), inv)
}

func TestImage(t *testing.T) {
	m, err := qr.RenderImage(qr.ImageOptions{Options: qr.Options{Value: "hello"}})
	require.NoError(t, err)
	// 100/21 pixels per module
	assert.Equal(t, image.Rect(0, 0, 84, 84), m.Bounds())
	rows := strings.Split(hello, "\n")
	for y := 0; y < 84; y++ {
		for x := 0; x < 84; x++ {
			want := color.Color(color.White)
			if rows[y/4][x/4] == '#' {
				want = color.Black
			}
			if !assert.Equal(t, want, m.At(x, y), "%d,%d", x, y) {
				return
			}
		}
	}

	fg := color.NRGBA{0x80, 0x00, 0x00, 0xff}
	bg := color.NRGBA{0xff, 0xff, 0xcc, 0x80}
	m, err = qr.RenderImage(qr.ImageOptions{
		Options:    qr.Options{Value: "hello"},
		ImageStyle: qr.ImageStyle{Foreground: fg, Background: bg, Size: 42, Margin: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), m.Bounds())
	assert.Equal(t, color.Color(bg), m.At(2, 2))
	assert.Equal(t, color.Color(fg), m.At(3, 3))
	assert.Equal(t, color.Color(fg), m.At(4, 4))
	assert.Equal(t, color.Color(bg), m.At(5, 5)) // light ring of the position box
	assert.Equal(t, color.Color(bg), m.At(47, 3))
	pm, ok := m.(image.PalettedImage)
	require.True(t, ok)
	assert.Equal(t, uint8(1), pm.ColorIndexAt(3, 3))
	assert.Equal(t, color.Palette{bg, fg}, m.ColorModel())

	c, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	// fewer pixels than modules: one pixel per module
	m = c.Image(qr.ImageStyle{Size: 5})
	assert.Equal(t, image.Rect(0, 0, 21, 21), m.Bounds())

	_, err = qr.RenderImage(qr.ImageOptions{ImageStyle: qr.ImageStyle{Size: -1}})
	assert.ErrorIs(t, err, qr.ErrArgs)
	_, err = qr.RenderImage(qr.ImageOptions{ImageStyle: qr.ImageStyle{Margin: -1}})
	assert.ErrorIs(t, err, qr.ErrArgs)
}

func TestImagePNG(t *testing.T) {
	c, err := qr.Encode("hello", qr.M)
	require.NoError(t, err)
	m := c.Image(qr.ImageStyle{Size: 50, Margin: 8})
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, m))
	d, err := png.Decode(&b)
	require.NoError(t, err)
	require.Equal(t, m.Bounds(), d.Bounds())
	for y := 0; y < d.Bounds().Dy(); y++ {
		for x := 0; x < d.Bounds().Dx(); x++ {
			r, g, b, _ := d.At(x, y).RGBA()
			dark := r|g|b == 0
			assert.Equal(t, c.Black((x-8)/2, (y-8)/2) && x >= 8 && y >= 8,
				dark, "%d,%d", x, y)
		}
	}
}

func TestBorder(t *testing.T) {
	c, err := qr.Encode("hello", qr.L)
	require.NoError(t, err)
	c.Border = 4
	s := c.Text("#", ".")
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 29)
	assert.Equal(t, "....#######...###.#######....", lines[4])
	assert.Equal(t, strings.Repeat(".", 29), lines[28])

	m := c.Image(qr.ImageStyle{Size: 42, Margin: 1})
	assert.Equal(t, image.Rect(0, 0, 60, 60), m.Bounds())
	assert.Equal(t, color.Color(color.White), m.At(8, 8))
	assert.Equal(t, color.Color(color.Black), m.At(9, 9))
	assert.Equal(t, color.Color(color.White), m.At(51, 9))
	assert.Equal(t, color.Color(color.Black), m.At(50, 9))
}
