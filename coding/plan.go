// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// An Exclusion is the set of modules of a code reserved for function
// patterns and format information.  The set is symmetric about the
// main diagonal: (x, y) and (y, x) are the same element, so only the
// lower triangle is stored, one bit per module.
type Exclusion []byte

func newExclusion(siz int) Exclusion {
	return make(Exclusion, ((siz*(siz+1)+1)>>1+7)>>3)
}

// bit returns the bit number of (x, y).
func bit(x, y int) int {
	if x > y {
		x, y = y, x
	}
	return (y+y*y)>>1 + x
}

// Add adds the module at x, y to e.
func (e Exclusion) Add(x, y int) {
	n := bit(x, y)
	e[n>>3] |= 1 << (n & 7)
}

// Has reports whether e contains the module at x, y.
func (e Exclusion) Has(x, y int) bool {
	n := bit(x, y)
	return e[n>>3]>>(n&7)&1 != 0
}

// A Plan describes the layout of a QR code of a specific version.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	Pattern   []byte    // function patterns, one byte per module, 1 is dark
	Exclusion Exclusion // modules not available for data
}

// NewPlan returns a Plan for a QR code with the given version.
// NewPlan panics if v is out of range.
func NewPlan(v Version) *Plan {
	if v < MinVersion || v > MaxVersion {
		panic(ErrVersion)
	}
	siz := v.Size()
	p := &Plan{
		Version:   v,
		Size:      siz,
		Pattern:   make([]byte, siz*siz),
		Exclusion: newExclusion(siz),
	}

	// Position boxes with separators.
	p.finderBox(0, 0)
	p.finderBox(siz-7, 0)
	p.finderBox(0, siz-7)

	// Alignment boxes, from the bottom right corner up and left,
	// one step at a time, avoiding the position boxes.
	if v > 1 {
		step := atab[v]
		for y := siz - 7; ; {
			for x := siz - 7; x > step-3; x -= step {
				p.alignBox(x, y)
				if x < step {
					break
				}
			}
			if y <= step+9 {
				break
			}
			y -= step
			p.alignBox(6, y)
			p.alignBox(y, 6)
		}
	}

	// Timing strips.  The exclusion set is symmetric, so only the
	// dark modules need drawing twice.
	for i := 8; i < siz-8; i++ {
		p.Exclusion.Add(i, 6)
		if i&1 == 0 {
			p.set(i, 6)
			p.set(6, i)
		}
	}

	// Format strips: 9 around the top left box, plus 8 along the
	// top right and 7 along the bottom left boxes.  The symmetric
	// half around the top left box is implicit.
	for i := 0; i < 9; i++ {
		p.Exclusion.Add(i, 8)
	}
	for i := 0; i < 8; i++ {
		p.Exclusion.Add(siz-8+i, 8)
	}

	// Version pattern: 6x3 modules at (0, siz-11) and transposed.
	if v := vtab[v]; v != 0 {
		for i := 0; i < 18; i++ {
			x, y := i/3, siz-11+i%3
			p.Exclusion.Add(x, y)
			if v>>i&1 != 0 {
				p.set(x, y)
				p.set(y, x)
			}
		}
	}

	// One lonely black module.
	p.set(8, siz-8)

	// Dark modules are never masked.
	for i, c := range p.Pattern {
		if c != 0 {
			p.Exclusion.Add(i%siz, i/siz)
		}
	}
	return p
}

// Excluded reports whether the module at x, y is not available for data.
func (p *Plan) Excluded(x, y int) bool { return p.Exclusion.Has(x, y) }

func (p *Plan) set(x, y int) { p.Pattern[x+y*p.Size] = 1 }

// finderBox draws a position box with its separator at upper left x, y.
// The separator may fall outside the code.
func (p *Plan) finderBox(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= p.Size || yy < 0 || yy >= p.Size {
				continue
			}
			p.Exclusion.Add(xx, yy)
			// rings: 3 dark, 2 light, 1 dark, 0 light separator
			switch max(abs(dx-3), abs(dy-3)) {
			case 0, 1, 3:
				p.set(xx, yy)
			}
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func (p *Plan) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p.Exclusion.Add(x+dx, y+dy)
			if max(abs(dx), abs(dy)) != 1 {
				p.set(x+dx, y+dy)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Serialise writes bits from s to the bitmap in zigzag scan order:
// two columns at a time from the right, upwards and downwards in
// turn, skipping the vertical timing strip and excluded modules.
// Modules left when s runs out stay as they are.
func (p *Plan) Serialise(s BitStream, bitmap []byte) {
	siz := p.Size
	up := true
	for x := siz - 2; x >= 0; x -= 2 {
		if x == 5 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for xx := x + 1; xx >= x; xx-- {
				if !p.Excluded(xx, y) && s.Next() != 0 {
					bitmap[xx+y*siz] ^= 1
				}
			}
		}
		up = !up
	}
}
