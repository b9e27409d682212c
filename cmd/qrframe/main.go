// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrframe"
)

var g = struct {
	lev    qr.Level  // QR correction level
	mask   qr.Mask   // mask pattern
	format int       // output format
	rev    bool      // reverse colours
	dark   string    // text: dark module
	light  string    // text: light module
	glyphs qr.Glyphs // twotone glyphs
	border int       // quiet zone
	cx     int       // randr source X coordinate index in inc
	inc    [2]int    // randr source X,Y coordinate increments
	latin1 bool      // Latin-1 byte mode
	trunc  bool      // truncate data
	lines  bool      // one code per line
	config string    // config file
}{
	inc:   [2]int{1, 1},
	dark:  "##",
	light: "  ",
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code frame generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode as given, UTF-8
unless -1 is set.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrframe version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

const (
	textFormat = iota
	twoToneFormat
)

var formats = []string{"text", "texti", "twotone", "twotonei"}

var masks = []string{"auto", "0", "1", "2", "3", "4", "5", "6", "7"}

// parseMask returns the mask named by s, one of masks.
func parseMask(s string) (qr.Mask, error) {
	for i, v := range masks {
		if s == v {
			return qr.Mask(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", qr.ErrMask, s)
}

// parseFormat sets the output format from s, one of formats.
func parseFormat(s string) error {
	for i, v := range formats {
		if s == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			return nil
		}
	}
	return fmt.Errorf("%q: bad output format", s)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.config, "config", 'c', "read defaults from "+
		"TOML file; flags override the file", "file")
	getopt.FlagLong(&g.dark, "dark", 'D', `string for a dark module `+
		`in type text[i] [##]`, "string")
	getopt.FlagLong(&g.light, "light", 'W', `string for a light module `+
		`in type text[i] [two spaces]`, "string")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.trunc, 'T', "truncate data that does not fit")
	getopt.Flag(&g.lines, 'n', "encode each input line as a separate "+
		"code; codes are separated by empty lines")
	getopt.Flag(&g.border, 'm', "quiet zone modules [0]", "margin")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	mask := getopt.Enum('k', masks, "auto",
		"mask pattern, or auto for the lowest penalty", "mask")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if standard output is a TTY, default is twotone, `+
		`otherwise text`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	if g.config != "" {
		c, err := loadConfig(g.config)
		if err == nil {
			err = c.apply(getopt.IsSet, lev, mask, ff)
		}
		if err != nil {
			log.Fatalln(err)
		}
	}
	// values are checked by getopt or apply
	g.lev, _ = qr.ParseLevel(*lev)
	g.mask, _ = parseMask(*mask)
	if *ff == "" {
		if isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "twotone"
		} else {
			*ff = "text"
		}
	}
	parseFormat(*ff)
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	var out []string
	var err error
	if g.lines {
		out, err = renderLines(strings.Split(s, "\n"))
	} else {
		out = make([]string, 1)
		out[0], err = render(s)
	}
	if err != nil {
		log.Fatalln(err)
	}
	if _, err := fmt.Println(strings.Join(out, "\n\n")); err != nil {
		log.Fatalln(err)
	}
}

// renderLines renders a code for each line in parallel.
func renderLines(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range lines {
		eg.Go(func() error {
			var err error
			if out[i], err = render(s); err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			return nil
		})
	}
	return out, eg.Wait()
}

// render returns the code for s drawn as set by the flags.
func render(s string) (string, error) {
	if g.latin1 {
		t, err := charmap.ISO8859_1.NewEncoder().String(s)
		if err != nil {
			return "", fmt.Errorf("cannot convert to Latin-1: %w", err)
		}
		s = t
	}
	c, err := qr.Generate(qr.Options{
		Value:    s,
		Level:    g.lev,
		Mask:     g.mask,
		Truncate: g.trunc,
	})
	if err != nil {
		return "", err
	}
	c = randr(c)
	c.Border = g.border
	if g.format == twoToneFormat {
		gl := g.glyphs
		if g.rev {
			gl = gl.Invert()
		}
		return c.TwoTone(gl), nil
	}
	dark, light := g.dark, g.light
	if g.rev {
		dark, light = light, dark
	}
	return c.Text(dark, light), nil
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	b := make([]byte, 0, len(c.Bitmap))
	var coord [2]int
	siz := c.Size
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			var bb byte
			if c.Black(coord[0], coord[1]) {
				bb = 1
			}
			b = append(b, bb)
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	r := *c
	r.Bitmap = b
	return &r
}
