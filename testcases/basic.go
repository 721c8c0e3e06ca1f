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

package testcases

import "seehuhn.de/go/geom/vec"

var basicCases = []TestCase{
	{
		Name:   "square",
		Faces:  []Face{{UV: rectangle(0.25, 0.25, 0.75, 0.75), Color: red}},
		Width:  100,
		Height: 100,
		Tiling: true,
	},
	{
		Name: "triangle",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.1, 0.1), pt(0.9, 0.2), pt(0.4, 0.9)}, Color: green},
		},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "clockwise_quad",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.2, 0.2), pt(0.3, 0.8), pt(0.8, 0.7), pt(0.7, 0.1)}, Color: blue},
		},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "overlapping_squares",
		Faces: []Face{
			{UV: rectangle(0.1, 0.1, 0.6, 0.6), Color: red},
			{UV: rectangle(0.4, 0.4, 0.9, 0.9), Color: blue},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "partly_outside",
		Faces:  []Face{{UV: rectangle(-0.5, -0.25, 0.5, 0.75), Color: green}},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "wide_canvas",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.05, 0.1), pt(0.95, 0.3), pt(0.5, 0.9)}, Color: grey},
		},
		Width:  160,
		Height: 40,
		Tiling: true,
	},
}

// rectangle returns the counter-clockwise outline of an axis-aligned
// rectangle.
func rectangle(u0, v0, u1, v1 float64) []vec.Vec2 {
	return []vec.Vec2{pt(u0, v0), pt(u1, v0), pt(u1, v1), pt(u0, v1)}
}
