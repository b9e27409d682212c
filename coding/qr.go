// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: block
// selection, pattern layout, codewords, Reed-Solomon check bytes,
// interleaving, module placement, masking and format information.
package coding // import "github.com/unixdj/qrframe/coding"

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrMask    = errors.New("qr: invalid mask")
	ErrVersion = errors.New("qr: invalid version")
)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the number of modules on a side of a v code.
func (v Version) Size() int { return int(v)*4 + 17 }

// countBits returns the length of the byte mode character count
// field in version v.
func (v Version) countBits() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Masks.
const (
	AutoMask = -1 // choose the mask with the lowest penalty
	NumMasks = 8  // number of mask patterns
)

// CapacityError is returned when the data does not fit into a
// version 40 code of the requested level.
type CapacityError struct {
	Len int // data length in bytes
	Max int // capacity in bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bytes into %d-byte code",
		e.Len, e.Max)
}

// blocks is a btab entry.
type blocks struct {
	short, long int // number of short and long blocks
	data        int // data bytes in a short block
	check       int // check bytes per block
}

// Blocks describes the error correction block structure of a QR code
// with a specific version and level.  The data is split into Short
// blocks of DataLen bytes followed by Long blocks of DataLen+1 bytes,
// and each block gets CheckLen check bytes.
type Blocks struct {
	Version  Version
	Short    int // number of short blocks
	Long     int // number of long blocks
	DataLen  int // data bytes per short block
	CheckLen int // check bytes per block
}

// Blocks returns the block structure for version v and level l.
func (v Version) Blocks(l Level) Blocks {
	bt := &btab[v][l]
	return Blocks{
		Version:  v,
		Short:    bt.short,
		Long:     bt.long,
		DataLen:  bt.data,
		CheckLen: bt.check,
	}
}

// NBlock returns the total number of blocks.
func (b Blocks) NBlock() int { return b.Short + b.Long }

// DataBytes returns the number of data codewords, including the
// header, terminator and padding.
func (b Blocks) DataBytes() int { return b.DataLen*b.NBlock() + b.Long }

// CheckBytes returns the number of check codewords.
func (b Blocks) CheckBytes() int { return b.CheckLen * b.NBlock() }

// Total returns the number of codewords in the code.
func (b Blocks) Total() int { return b.DataBytes() + b.CheckBytes() }

// Capacity returns the maximum length of data in bytes.
func (b Blocks) Capacity() int {
	// 4 bit mode, count and 4 bit terminator
	return b.DataBytes() - 1 - b.Version.countBits()>>3
}

// Select returns the block structure of the smallest version
// that can hold n bytes of data at level l.  If no version is
// large enough, Select returns the structure of version 40.
func Select(n int, l Level) (Blocks, error) {
	if l < L || l > H {
		return Blocks{}, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if b := v.Blocks(l); n <= b.Capacity() || v == MaxVersion {
			return b, nil
		}
	}
	panic("qr: internal error")
}

// A Code is a square module grid.
type Code struct {
	Bitmap  []byte  // one byte per module at x+y*Size, 1 is dark
	Size    int     // number of modules on a side
	Version Version // QR version
	Level   Level   // error correction level
	Mask    int     // mask pattern
}

// Black reports whether the module at x, y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[x+y*c.Size] != 0
}

// Encode encodes data as a QR code at level l with the given mask, or
// with the mask that yields the lowest penalty if mask is AutoMask.
// If data is longer than the capacity of a version 40 code, Encode
// returns a *CapacityError.
func Encode(data []byte, l Level, mask int) (*Code, error) {
	return encode(data, l, mask, false)
}

// EncodeTruncated is like Encode, but data that does not fit into a
// version 40 code is truncated to its capacity.
func EncodeTruncated(data []byte, l Level, mask int) (*Code, error) {
	return encode(data, l, mask, true)
}

func encode(data []byte, l Level, mask int, truncate bool) (*Code, error) {
	if mask < AutoMask || mask >= NumMasks {
		return nil, ErrMask
	}
	blk, err := Select(len(data), l)
	if err != nil {
		return nil, err
	}
	if n := blk.Capacity(); len(data) > n && !truncate {
		return nil, &CapacityError{Len: len(data), Max: n}
	}
	b := NewBits(blk)
	b.WriteBytes(data)
	b.AddCheckBytes()
	p := NewPlan(blk.Version)
	return p.Finish(p.Draw(b.Permute()), l, mask), nil
}

// Draw returns a new bitmap containing the patterns of p and the bits
// read from s, before masking.
func (p *Plan) Draw(s BitStream) []byte {
	bitmap := slices.Clone(p.Pattern)
	p.Serialise(s, bitmap)
	return bitmap
}
