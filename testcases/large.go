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

// largeCases contains layouts with many faces or large canvases.
var largeCases = []TestCase{
	{
		Name:   "dense_grid",
		Faces:  quadGrid(0, 0, 1, 1, 32, 32),
		Width:  512,
		Height: 512,
		Tiling: true,
	},
	{
		Name:   "disc",
		Faces:  fan(0.5, 0.5, 0.48, 256),
		Width:  512,
		Height: 512,
		Tiling: true,
	},
	{
		Name:   "single_quad",
		Faces:  []Face{{UV: rectangle(0.02, 0.02, 0.98, 0.98), Color: grey}},
		Width:  600,
		Height: 400,
		Tiling: true,
	},
}
