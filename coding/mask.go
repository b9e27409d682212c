// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "slices"

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// A module is inverted where the pattern is dark.
var masks = [NumMasks]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// Masked returns a copy of bitmap with the mask pattern applied to
// the modules not in the exclusion set.
func (p *Plan) Masked(bitmap []byte, mask int) []byte {
	b := slices.Clone(bitmap)
	p.mask(b, mask)
	return b
}

func (p *Plan) mask(b []byte, mask int) {
	siz, f := p.Size, masks[mask]
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if f(x, y) && !p.Excluded(x, y) {
				b[x+y*siz] ^= 1
			}
		}
	}
}

// format writes the format bits fb to both format strips of b.
// Only dark modules are written.
func (p *Plan) format(b []byte, fb uint16) {
	siz := p.Size
	// bits 0-7: right to left under the top right box,
	// and down the top left box skipping the timing strip
	for i := 0; i < 8; i++ {
		if fb>>i&1 != 0 {
			b[siz-1-i+8*siz] = 1
			y := i
			if i >= 6 {
				y++
			}
			b[8+y*siz] = 1
		}
	}
	// bits 8-14: down the bottom left box,
	// and right to left under the top left box
	for i := 0; i < 7; i++ {
		if fb>>(8+i)&1 != 0 {
			b[8+(siz-7+i)*siz] = 1
			x := 6 - i
			if i == 0 {
				x = 7
			}
			b[x+8*siz] = 1
		}
	}
}

// Finish masks the unmasked bitmap pre drawn for p and adds the format
// bits for level l, returning the finished code.  If mask is AutoMask,
// every mask is tried and the first one with the lowest penalty wins.
// pre is not modified.
func (p *Plan) Finish(pre []byte, l Level, mask int) *Code {
	c := &Code{Size: p.Size, Version: p.Version, Level: l, Mask: mask}
	if mask == AutoMask {
		c.Bitmap = make([]byte, len(pre))
		pen := 1 << 30 // largest penalty is < 1<<20
		for m := range masks {
			copy(c.Bitmap, pre)
			p.mask(c.Bitmap, m)
			if n := c.Penalty(); n < pen {
				pen, c.Mask = n, m
			}
		}
	}
	c.Bitmap = p.Masked(pre, c.Mask)
	p.format(c.Bitmap, ftab[l][c.Mask])
	return c
}

// Penalty weights.
const (
	penRun     = 3  // run of 5 modules, plus 1 for each further module
	penBox     = 3  // 2x2 box
	penFinder  = 40 // 1:1:3:1:1 pattern
	penBalance = 10 // each 10% of imbalance
)

// Penalty returns the penalty value for c, used for choosing the mask.
// The total is the sum of penalties for runs and boxes of same-colour
// modules, patterns resembling position boxes and colour imbalance.
func (c *Code) Penalty() int {
	siz, bm := c.Size, c.Bitmap
	p := 0

	// boxes
	for y := 0; y+1 < siz; y++ {
		for x := 0; x+1 < siz; x++ {
			o := x + y*siz
			switch bm[o] + bm[o+1] + bm[o+siz] + bm[o+siz+1] {
			case 0, 4:
				p += penBox
			}
		}
	}

	// runs and patterns in rows and columns; balance
	runs := make([]int, siz+1)
	line := make([]byte, siz)
	bal := 0
	for y := 0; y < siz; y++ {
		row := bm[y*siz : (y+1)*siz]
		p += linePenalty(row, runs)
		for _, v := range row {
			bal += int(v)<<1 - 1
		}
	}
	for x := 0; x < siz; x++ {
		for y := range line {
			line[y] = bm[x+y*siz]
		}
		p += linePenalty(line, runs)
	}
	sq := siz * siz
	for n := abs(bal) * 10; n > sq; n -= sq {
		p += penBalance
	}
	return p
}

// linePenalty returns the run and pattern penalty for line.
// runs is scratch space at least one longer than line.
func linePenalty(line []byte, runs []int) int {
	// Run lengths alternate between light and dark, starting with
	// a light run that may be empty.
	h := 0
	runs[0] = 0
	var last byte
	for _, v := range line {
		if v == last {
			runs[h]++
		} else {
			h++
			runs[h] = 1
			last = v
		}
	}

	p := 0
	for _, r := range runs[:h+1] {
		if r >= 5 {
			p += penRun + r - 5
		}
	}
	// Dark runs at odd i.  A 1:1:3:1:1 pattern needs a light run
	// of at least 4 units, or the edge, on one side.
	for i := 3; i < h-1; i += 2 {
		u, r := runs[i-1], runs[i]
		if runs[i-2] == u && runs[i+1] == u && runs[i+2] == u &&
			u*3 == r && (runs[i-3] == 0 || i+3 > h ||
			runs[i-3]*3 >= r*4 || runs[i+3]*3 >= r*4) {
			p += penFinder
		}
	}
	return p
}
