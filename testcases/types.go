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

// Package testcases provides UV layouts for testing the renderer.
package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single UV layout to render.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Faces  []Face // the layout, in drawing order
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	// Tiling is set if no two faces overlap and every face is a simple
	// polygon. Filled at a fixed opacity, every pixel is then either
	// untouched or blended exactly once.
	Tiling bool
}

// Face is one polygon of a test layout.
type Face struct {
	UV    []vec.Vec2
	Color [3]float64 // RGB fill colour
}

// Area returns the total unsigned area of the faces in UV units.
// Faces with fewer than three vertices contribute nothing.
func (tc TestCase) Area() float64 {
	var total float64
	for _, f := range tc.Faces {
		n := len(f.UV)
		if n < 3 {
			continue
		}
		var sum float64
		for i, a := range f.UV {
			b := f.UV[(i+1)%n]
			sum += a.X*b.Y - b.X*a.Y
		}
		total += max(sum, -sum) / 2
	}
	return total
}

// pt is a helper to create a vec.Vec2 from u, v coordinates.
func pt(u, v float64) vec.Vec2 {
	return vec.Vec2{X: u, Y: v}
}

var (
	red   = [3]float64{1, 0, 0}
	green = [3]float64{0, 1, 0}
	blue  = [3]float64{0, 0, 1}
	grey  = [3]float64{0.8, 0.8, 0.8}
)
