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
	"math"

	"github.com/rclancey/earcut"

	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed loop of points. Edge i connects vertex i to vertex
// (i+1) mod n. Polygons must not intersect themselves.
type Polygon []vec.Vec2

// Area returns the signed area of the polygon, positive for
// counter-clockwise vertex order.
func (p Polygon) Area() float64 {
	n := len(p)
	var sum float64
	for i, a := range p {
		b := p[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Triangle holds three indices into the vertex list of a polygon.
type Triangle [3]int

// Area returns the unsigned area of the triangle with vertices taken from p.
func (t Triangle) Area(p Polygon) float64 {
	a, b, c := p[t[0]], p[t[1]], p[t[2]]
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

// Triangulate splits a simple polygon into triangles which exactly cover
// its interior, using only the polygon's own vertices. Concave polygons
// are supported. For self-intersecting polygons the result is
// unspecified.
//
// Polygons with fewer than three vertices, non-finite coordinates, or
// (almost) zero area cannot be triangulated; the returned error wraps
// ErrInvalidGeometry.
func Triangulate(p Polygon) ([]Triangle, error) {
	n := len(p)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d vertices", ErrInvalidGeometry, n)
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, v := range p {
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
			return nil, fmt.Errorf("%w: non-finite vertex %v", ErrInvalidGeometry, v)
		}
		xMin, xMax = min(xMin, v.X), max(xMax, v.X)
		yMin, yMax = min(yMin, v.Y), max(yMax, v.Y)
	}
	dx, dy := xMax-xMin, yMax-yMin
	if area := math.Abs(p.Area()); area <= degenerateAreaRatio*(dx*dx+dy*dy) {
		return nil, fmt.Errorf("%w: zero area", ErrInvalidGeometry)
	}

	if n == 3 {
		return []Triangle{{0, 1, 2}}, nil
	}

	coords := make([]float64, 2*n)
	for i, v := range p {
		coords[2*i] = v.X
		coords[2*i+1] = v.Y
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: ear clipping produced %d indices", ErrInvalidGeometry, len(indices))
	}

	tris := make([]Triangle, len(indices)/3)
	for i := range tris {
		for j := range 3 {
			idx := indices[3*i+j]
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: vertex index %d out of range", ErrInvalidGeometry, idx)
			}
			tris[i][j] = idx
		}
	}
	return tris, nil
}

// degenerateAreaRatio is the smallest accepted ratio between polygon
// area and the squared diagonal of its bounding box.
const degenerateAreaRatio = 1e-12
