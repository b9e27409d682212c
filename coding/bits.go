// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// byteMode is the byte mode indicator.
const byteMode = 4

// Bits is a codeword buffer for a code with a given block structure.
type Bits struct {
	b    []byte
	nbit int
	blk  Blocks
}

// NewBits returns Bits with enough capacity for all codewords of
// a code with the block structure blk.
func NewBits(blk Blocks) *Bits {
	return &Bits{b: make([]byte, 0, blk.Total()), blk: blk}
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

func (b *Bits) growTo(n int) {
	if cap(b.b) < n {
		b.b = append(make([]byte, 0, n), b.b...)
	}
}

// Add adds n bytes to b and returns the added slice.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	b.growTo(len(b.b) + n)
	start := len(b.b)
	b.b = b.b[:start+n]
	clear(b.b[start:])
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// Write writes the low nbit bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes writes a byte mode segment containing data to b and
// returns the number of bytes written.  Data that does not fit is
// truncated to the capacity of b.
func (b *Bits) WriteBytes(data []byte) int {
	n := len(data)
	if nd := b.blk.DataBytes(); n >= nd-2 {
		// header and terminator take 2 bytes, or 3 for 16-bit counts
		n = nd - 2
		if b.blk.Version > 9 {
			n--
		}
	}
	data = data[:n]
	b.Write(byteMode, 4)
	b.Write(uint32(n), b.blk.Version.countBits())
	for ; len(data) >= 4; data = data[4:] {
		v := uint32(data[0])<<24 | uint32(data[1])<<16 |
			uint32(data[2])<<8 | uint32(data[3])
		b.Write(v, 32)
	}
	if len(data) != 0 {
		var v uint32
		for _, c := range data {
			v = v<<8 | uint32(c)
		}
		b.Write(v, 8*len(data))
	}
	return n
}

func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	if len(b.b) < n>>3 {
		buf := b.b[len(b.b) : n>>3]
		b.b = b.b[:n>>3]
		for len(buf) >= 2 {
			buf[0], buf[1] = 0xec, 0x11
			buf = buf[2:]
		}
		if len(buf) > 0 {
			buf[0] = 0xec
		}
	}
	b.nbit = len(b.b) * 8
}

// PadTo adds up to t terminator bits to b and pads it to n bits,
// which must be a multiple of 8.
func (b *Bits) PadTo(t, n int) {
	b.growTo(n >> 3)
	b.padTo(t, n)
}

// AddCheckBytes adds terminator, padding and check bytes to b.
func (b *Bits) AddCheckBytes() {
	blk := b.blk
	nb := blk.DataBytes() * 8
	if b.nbit > nb {
		panic("qr: too much data")
	}
	b.growTo(blk.Total())
	b.padTo(4, nb)

	dat := b.Bytes()
	gen := NewGenerator(blk.CheckLen)
	db := blk.DataLen
	for i := 0; i < blk.NBlock(); i++ {
		if i == blk.Short {
			db++
		}
		gen.ECC(dat[:db], b.Add(blk.CheckLen))
		dat = dat[db:]
	}

	if len(b.Bytes()) != blk.Total() {
		panic("qr: internal error")
	}
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  Blocks longer by one byte go last.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}

// Permute returns a BitStream reading data and check bits in b
// with blocks interleaved.  The BitStream does not share memory
// with b.
func (b *Bits) Permute() BitStream {
	blk := b.blk
	src := b.Bytes()
	if len(src) != blk.Total() {
		panic("qr: wrong data length")
	}
	dst := make([]byte, len(src))
	nd := blk.DataBytes()
	interleave(dst[:nd], src[:nd], blk.NBlock())
	interleave(dst[nd:], src[nd:], blk.NBlock())
	return NewBitStream(dst)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
