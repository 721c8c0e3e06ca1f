// seehuhn.de/go/uvlayout - render UV layouts to raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package uvlayout

import (
	"fmt"

	"seehuhn.de/go/pdf/graphics"
)

// MaxSize is the largest accepted image width or height in pixels.
// In addition, Render rejects images with more than 2^28 pixels
// (for example 16384×16384) with ErrTooLarge.
const MaxSize = 32768

// Options controls how a UV layout is drawn.
// An Options value is not modified by Render or Export.
type Options struct {
	// Width and Height give the image size in pixels.
	// Both must be in the range [1, MaxSize], and Width*Height must not
	// exceed 2^28.
	Width, Height int

	// Opacity is the alpha used for every polygon fill, in [0, 1].
	// The alpha component of the per-polygon colours is ignored.
	Opacity float64

	// DrawFill enables filling the polygon interiors.
	DrawFill bool

	// DrawOutline enables drawing the polygon edges.
	DrawOutline bool

	// OutlineColor is used for all edges, including its own alpha.
	OutlineColor Color

	// BackgroundColor is the initial colour of every pixel.
	BackgroundColor Color

	// AntiAlias enables anti-aliased edges. Fills are never anti-aliased.
	// Without anti-aliasing, outlines lying on the image border are moved
	// half a pixel inwards so that they stay visible.
	AntiAlias bool

	// OutlineWidth is the line width in pixels. Must be positive and at
	// most MaxSize.
	OutlineWidth float64

	// OutlineCap is the cap style used at both ends of every edge.
	OutlineCap graphics.LineCapStyle
}

// DefaultOptions returns the default drawing options: a 1024×1024 image,
// light fills at 25% opacity, 1 pixel wide black anti-aliased outlines
// and a transparent background.
func DefaultOptions() *Options {
	return &Options{
		Width:           1024,
		Height:          1024,
		Opacity:         0.25,
		DrawFill:        true,
		DrawOutline:     true,
		OutlineColor:    Black,
		BackgroundColor: Transparent,
		AntiAlias:       true,
		OutlineWidth:    1,
		OutlineCap:      graphics.LineCapButt,
	}
}

// DefaultFill is the fill colour for faces which have no colour of
// their own.
var DefaultFill = RGB(0.8, 0.8, 0.8)

// Validate checks that all options are in range. The returned error
// wraps ErrInvalidConfig.
func (o *Options) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: missing options", ErrInvalidConfig)
	}
	if o.Width < 1 || o.Width > MaxSize {
		return fmt.Errorf("%w: width %d not in [1, %d]", ErrInvalidConfig, o.Width, MaxSize)
	}
	if o.Height < 1 || o.Height > MaxSize {
		return fmt.Errorf("%w: height %d not in [1, %d]", ErrInvalidConfig, o.Height, MaxSize)
	}
	if !unit(o.Opacity) {
		return fmt.Errorf("%w: opacity %g not in [0, 1]", ErrInvalidConfig, o.Opacity)
	}
	if !o.OutlineColor.IsValid() {
		return fmt.Errorf("%w: outline color %v out of range", ErrInvalidConfig, o.OutlineColor)
	}
	if !o.BackgroundColor.IsValid() {
		return fmt.Errorf("%w: background color %v out of range", ErrInvalidConfig, o.BackgroundColor)
	}
	if o.DrawOutline {
		if !(o.OutlineWidth > 0) || o.OutlineWidth > MaxSize {
			return fmt.Errorf("%w: outline width %g", ErrInvalidConfig, o.OutlineWidth)
		}
		switch o.OutlineCap {
		case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
		default:
			return fmt.Errorf("%w: unknown line cap %v", ErrInvalidConfig, o.OutlineCap)
		}
	}
	return nil
}
