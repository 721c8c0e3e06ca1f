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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// NormalizeMatrix maps UV coordinates to normalized device coordinates:
// the unit square [0,1]×[0,1] becomes [-1,1]×[-1,1].
var NormalizeMatrix = matrix.Matrix{2, 0, 0, 2, -1, -1}

// Normalize maps a UV coordinate to normalized device coordinates.
// Points outside the unit square are mapped by the same affine formula.
func Normalize(uv vec.Vec2) vec.Vec2 {
	m := NormalizeMatrix
	return vec.Vec2{
		X: m[0]*uv.X + m[2]*uv.Y + m[4],
		Y: m[1]*uv.X + m[3]*uv.Y + m[5],
	}
}

// viewport returns the matrix which maps normalized device coordinates to
// pixel coordinates of a width×height image. The V axis points up, so that
// UV (0,0) ends up at the bottom-left corner of the image.
func viewport(width, height int) matrix.Matrix {
	w, h := float64(width), float64(height)
	return matrix.Matrix{w / 2, 0, 0, -h / 2, w / 2, h / 2}
}
