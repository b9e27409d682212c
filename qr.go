// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr generates QR code symbols holding a string in byte mode.

Generate and its shortcuts Encode and EncodeMask return a Code, a
square matrix of modules.  The matrix can be drawn by the renderers in
this package (Text, TwoTone, RenderImage) or by any other means using
Code.Black.

The encoding itself lives in package coding.
*/
package qr // import "github.com/unixdj/qrframe"

import (
	"fmt"
	"strings"

	"github.com/unixdj/qrframe/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
// The zero Level is L.
type Level int

const (
	L Level = iota + 1 // 20% redundant
	M                  // 38% redundant
	Q                  // 55% redundant
	H                  // 65% redundant
)

var levelNames = "LMQH"

func (l Level) String() string {
	if l == 0 {
		l = L
	}
	if L <= l && l <= H {
		return levelNames[l-1 : l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) coding() (coding.Level, error) {
	switch {
	case l == 0:
		return coding.L, nil
	case L <= l && l <= H:
		return coding.Level(l - 1), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrLevel, int(l))
}

// ParseLevel returns the level named by s, one of "L", "M", "Q" and
// "H" in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(levelNames, s[0]&^0x20); i >= 0 {
			return Level(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLevel, s)
}

// A Mask selects the mask pattern.  The zero Mask is AutoMask.
type Mask int

// AutoMask selects the pattern with the lowest penalty.
const AutoMask Mask = 0

// NumMasks is the number of mask patterns.
const NumMasks = coding.NumMasks

// MaskPattern returns the Mask selecting pattern n, 0 <= n < NumMasks.
// MaskPattern(-1) is AutoMask.
func MaskPattern(n int) Mask { return Mask(n + 1) }

// Pattern returns the pattern number, or -1 for AutoMask.
func (m Mask) Pattern() int { return int(m) - 1 }

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return fmt.Sprint(m.Pattern())
}

// Errors.
var (
	ErrLevel = coding.ErrLevel // invalid error correction level
	ErrMask  = coding.ErrMask  // invalid mask pattern
)

// A CapacityError is returned when the value does not fit in a
// version 40 code.
type CapacityError = coding.CapacityError

// Options describe the code to generate.
type Options struct {
	Value    string // bytes to encode
	Level    Level  // error correction level
	Mask     Mask   // mask pattern
	Truncate bool   // cut Value to fit instead of failing
}

// A Code is a square matrix of modules.
type Code struct {
	Bitmap  []byte // one byte per module at x+y*Size, 1 is dark
	Size    int    // number of modules on a side
	Version int    // QR version, 1 to 40
	Level   Level  // error correction level
	Mask    int    // mask pattern, 0 to 7
	Border  int    // quiet zone width in modules, for rendering
}

// Black reports whether the module at (x, y) is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[x+y*c.Size] != 0
}

// Generate returns the code for o.
func Generate(o Options) (*Code, error) {
	l, err := o.Level.coding()
	if err != nil {
		return nil, err
	}
	m := o.Mask.Pattern()
	if m < coding.AutoMask || m >= NumMasks {
		return nil, fmt.Errorf("%w: %d", ErrMask, m)
	}
	enc := coding.Encode
	if o.Truncate {
		enc = coding.EncodeTruncated
	}
	cc, err := enc([]byte(o.Value), l, m)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Version: int(cc.Version),
		Level:   Level(cc.Level + 1),
		Mask:    cc.Mask,
	}, nil
}

// Encode returns the code for value at level l with the best mask.
func Encode(value string, l Level) (*Code, error) {
	return Generate(Options{Value: value, Level: l})
}

// EncodeMask returns the code for value at level l with the given mask
// pattern, or with the best one if mask is -1.
func EncodeMask(value string, l Level, mask int) (*Code, error) {
	return Generate(Options{Value: value, Level: l, Mask: MaskPattern(mask)})
}
