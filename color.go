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

import "math"

// Color is a straight (non-premultiplied) RGBA colour.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// Commonly used colours.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB returns an opaque colour.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a colour with the given alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsValid reports whether all components are finite and within [0, 1].
func (c Color) IsValid() bool {
	return unit(c.R) && unit(c.G) && unit(c.B) && unit(c.A)
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// premultiplied returns the colour as premultiplied float32 samples.
func (c Color) premultiplied() [4]float32 {
	return [4]float32{
		float32(c.R * c.A),
		float32(c.G * c.A),
		float32(c.B * c.A),
		float32(c.A),
	}
}

// unit reports whether x is in [0, 1]. NaN is rejected.
func unit(x float64) bool {
	return x >= 0 && x <= 1
}

// quantize maps a [0, 1] sample to 8 bits by scaling and rounding.
func quantize(x float64) uint8 {
	v := math.Round(x * 255)
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
