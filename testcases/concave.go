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

var concaveCases = []TestCase{
	{
		Name: "l_shape",
		Faces: []Face{{
			UV: []vec.Vec2{
				pt(0.1, 0.1), pt(0.9, 0.1), pt(0.9, 0.4),
				pt(0.4, 0.4), pt(0.4, 0.9), pt(0.1, 0.9),
			},
			Color: red,
		}},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
	{
		Name:   "star",
		Faces:  []Face{{UV: star(0.5, 0.5, 0.45, 0.18, 5), Color: blue}},
		Width:  96,
		Height: 96,
		Tiling: true,
	},
	{
		Name:   "comb",
		Faces:  []Face{{UV: comb(0.1, 0.1, 0.9, 0.9, 6), Color: green}},
		Width:  128,
		Height: 128,
		Tiling: true,
	},
	{
		Name: "arrow",
		Faces: []Face{{
			UV: []vec.Vec2{
				pt(0.1, 0.4), pt(0.6, 0.4), pt(0.6, 0.2), pt(0.9, 0.5),
				pt(0.6, 0.8), pt(0.6, 0.6), pt(0.1, 0.6),
			},
			Color: grey,
		}},
		Width:  64,
		Height: 64,
		Tiling: true,
	},
}

// star returns a star-shaped polygon with the given number of points,
// alternating between the outer and inner radius.
func star(cu, cv, outer, inner float64, points int) []vec.Vec2 {
	res := make([]vec.Vec2, 2*points)
	for i := range res {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi/2 + float64(i)*math.Pi/float64(points)
		res[i] = pt(cu+r*math.Cos(phi), cv+r*math.Sin(phi))
	}
	return res
}

// comb returns a polygon with the given number of teeth pointing up from
// a base strip along the bottom of the rectangle.
func comb(u0, v0, u1, v1 float64, teeth int) []vec.Vec2 {
	base := v0 + (v1-v0)/4
	w := (u1 - u0) / float64(2*teeth-1)

	res := []vec.Vec2{pt(u0, v0), pt(u1, v0)}
	for i := teeth - 1; i >= 0; i-- {
		left := u0 + float64(2*i)*w
		right := left + w
		if i < teeth-1 {
			res = append(res, pt(right, base))
		}
		res = append(res, pt(right, v1), pt(left, v1))
		if i > 0 {
			res = append(res, pt(left, base))
		}
	}
	return res
}
