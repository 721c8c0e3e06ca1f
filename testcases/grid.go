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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var gridCases = []TestCase{
	{
		Name:   "quads",
		Faces:  quadGrid(0, 0, 1, 1, 4, 4),
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name:   "quads_odd",
		Faces:  quadGrid(0.05, 0.05, 0.95, 0.95, 7, 5),
		Width:  100,
		Height: 70,
		Tiling: true,
	},
	{
		Name:   "triangles",
		Faces:  triangleGrid(0.1, 0.1, 0.9, 0.9, 5, 5),
		Width:  80,
		Height: 80,
		Tiling: true,
	},
	{
		Name:   "fan",
		Faces:  fan(0.5, 0.5, 0.4, 17),
		Width:  64,
		Height: 64,
		Tiling: true,
	},
}

var palette = [][3]float64{red, green, blue, grey}

// quadGrid splits a rectangle into cols×rows quads sharing their edges.
func quadGrid(u0, v0, u1, v1 float64, cols, rows int) []Face {
	u := lattice(u0, u1, cols)
	v := lattice(v0, v1, rows)
	var faces []Face
	for j := range rows {
		for i := range cols {
			faces = append(faces, Face{
				UV:    rectangle(u[i], v[j], u[i+1], v[j+1]),
				Color: palette[(i+j)%len(palette)],
			})
		}
	}
	return faces
}

// lattice returns n+1 equally spaced values from a to b. Neighbouring
// cells use the same values, so that shared edges match exactly.
func lattice(a, b float64, n int) []float64 {
	res := make([]float64, n+1)
	for i := range res {
		res[i] = a + (b-a)*float64(i)/float64(n)
	}
	return res
}

// triangleGrid is like quadGrid, but splits every cell into two triangles
// along alternating diagonals.
func triangleGrid(u0, v0, u1, v1 float64, cols, rows int) []Face {
	u := lattice(u0, u1, cols)
	v := lattice(v0, v1, rows)
	var faces []Face
	for j := range rows {
		for i := range cols {
			p00, p10 := pt(u[i], v[j]), pt(u[i+1], v[j])
			p01, p11 := pt(u[i], v[j+1]), pt(u[i+1], v[j+1])
			var t1, t2 []vec.Vec2
			if (i+j)%2 == 0 {
				t1 = []vec.Vec2{p00, p10, p11}
				t2 = []vec.Vec2{p00, p11, p01}
			} else {
				t1 = []vec.Vec2{p00, p10, p01}
				t2 = []vec.Vec2{p10, p11, p01}
			}
			k := 2 * (i + j)
			faces = append(faces,
				Face{UV: t1, Color: palette[k%len(palette)]},
				Face{UV: t2, Color: palette[(k+1)%len(palette)]},
			)
		}
	}
	return faces
}

// fan returns n triangles sharing the centre point, approximating a
// disc of radius r.
func fan(cu, cv, r float64, n int) []Face {
	rim := make([]vec.Vec2, n)
	for i := range rim {
		phi := 2 * math.Pi * float64(i) / float64(n)
		rim[i] = pt(cu+r*math.Cos(phi), cv+r*math.Sin(phi))
	}

	c := pt(cu, cv)
	faces := make([]Face, n)
	for i := range n {
		faces[i] = Face{
			UV:    []vec.Vec2{c, rim[i], rim[(i+1)%n]},
			Color: palette[i%len(palette)],
		}
	}
	return faces
}
