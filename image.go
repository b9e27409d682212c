// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"image"
	"image/color"
)

// ErrArgs is returned for invalid rendering arguments.
var ErrArgs = errors.New("qr: invalid arguments")

// ImageStyle describes how a code is drawn as an image.
type ImageStyle struct {
	Foreground color.Color // dark modules [color.Black]
	Background color.Color // light modules and margin [color.White]
	Size       int         // target width of the code in pixels [100]
	Margin     int         // pixels around the code [0]
}

// ImageOptions describe a code rendered as an image.
type ImageOptions struct {
	Options
	ImageStyle
}

// DefaultImageStyle holds the defaults for ImageStyle fields.
var DefaultImageStyle = ImageStyle{
	Foreground: color.Black,
	Background: color.White,
	Size:       100,
}

func (s ImageStyle) merge() ImageStyle {
	return ImageStyle{
		Foreground: merge(s.Foreground, DefaultImageStyle.Foreground),
		Background: merge(s.Background, DefaultImageStyle.Background),
		Size:       merge(s.Size, DefaultImageStyle.Size),
		Margin:     s.Margin,
	}
}

// RenderImage renders the code described by o as an image.  Zero
// fields of o.ImageStyle take the defaults.
func RenderImage(o ImageOptions) (image.Image, error) {
	if o.Size < 0 || o.Margin < 0 {
		return nil, ErrArgs
	}
	c, err := Generate(o.Options)
	if err != nil {
		return nil, err
	}
	return c.Image(o.ImageStyle), nil
}

// Image returns an Image displaying the code drawn with s.  Each module
// is a square of Size/c.Size pixels, at least 1.  The code with its
// quiet zone of c.Border modules is surrounded by Margin pixels of
// background.  The image is a PalettedImage, index 0 being the
// background.
func (c *Code) Image(s ImageStyle) image.Image {
	s = s.merge()
	return &codeImage{
		Code:    c,
		palette: color.Palette{s.Background, s.Foreground},
		scale:   max(1, s.Size/c.Size),
		border:  max(0, s.Margin),
	}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	palette color.Palette
	scale   int // pixels per module
	border  int // pixels
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size+2*c.Border)*c.scale + 2*c.border
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	x -= c.border
	y -= c.border
	if x < 0 || y < 0 ||
		!c.Black(x/c.scale-c.Border, y/c.scale-c.Border) {
		return 0
	}
	return 1
}

func (c *codeImage) At(x, y int) color.Color {
	return c.palette[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.palette
}
