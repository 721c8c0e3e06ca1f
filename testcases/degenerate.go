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

// degenerateCases contain faces which cannot be filled, next to valid
// faces which must still be drawn.
var degenerateCases = []TestCase{
	{
		Name: "two_vertices",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.1, 0.1), pt(0.9, 0.9)}, Color: red},
			{UV: rectangle(0.5, 0.1, 0.9, 0.4), Color: blue},
		},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "collinear",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5)}, Color: red},
			{UV: rectangle(0.1, 0.6, 0.9, 0.9), Color: green},
		},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "coincident",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.3, 0.3), pt(0.3, 0.3), pt(0.3, 0.3), pt(0.3, 0.3)}, Color: red},
			{UV: rectangle(0.5, 0.5, 0.8, 0.8), Color: green},
		},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "repeated_vertex",
		Faces: []Face{{
			UV:    []vec.Vec2{pt(0.2, 0.2), pt(0.8, 0.2), pt(0.8, 0.2), pt(0.8, 0.8), pt(0.2, 0.8)},
			Color: blue,
		}},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name: "single_vertex",
		Faces: []Face{
			{UV: []vec.Vec2{pt(0.5, 0.5)}, Color: red},
			{UV: nil, Color: red},
		},
		Width:  32,
		Height: 32,
		Tiling: true,
	},
}
