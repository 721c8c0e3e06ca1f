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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine renders the segment from a to b (user space) as a line of
// Width device pixels with the given Cap style. The line thickness does
// not depend on the CTM. The emit callback receives coverage row-by-row;
// its slice argument is valid only during the call.
//
// With AntiAlias set, coverage is the exact area of each pixel covered by
// the line. Otherwise pixels are sampled at their centres.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	p0 := r.Apply(a)
	p1 := r.Apply(b)
	if !r.AntiAlias {
		r.snapToClip(&p0, &p1)
	}

	d := p1.Sub(p0)
	length := d.Length()
	if length < zeroLengthThreshold || r.Width <= 0 {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	hw := r.Width / 2

	r.stroke = r.stroke[:0]
	r.buildLineOutline(p0, p1, t, n, hw)

	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	poly := r.stroke
	for j := 1; j < len(poly); j++ {
		r.addDeviceEdge(poly[j-1], poly[j])
	}
	r.addDeviceEdge(poly[len(poly)-1], poly[0])

	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if r.AntiAlias {
		r.fillCoverage(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillSampled(xMin, xMax, yMin, yMax, emit)
	}
}

// snapToClip moves a segment running along a clip border, closer than
// half a pixel, half a pixel inside the clip rectangle. Without this,
// pixel-centre sampling would drop lines on the left and top borders,
// while lines on the right and bottom borders are kept.
func (r *Rasterizer) snapToClip(p0, p1 *vec.Vec2) {
	snap := func(a, b *float64, lo, hi float64) {
		switch {
		case math.Abs(*a-lo) < 0.5 && math.Abs(*b-lo) < 0.5:
			*a, *b = lo+0.5, lo+0.5
		case math.Abs(*a-hi) < 0.5 && math.Abs(*b-hi) < 0.5:
			*a, *b = hi-0.5, hi-0.5
		}
	}
	snap(&p0.X, &p1.X, r.Clip.LLx, r.Clip.URx)
	snap(&p0.Y, &p1.Y, r.Clip.LLy, r.Clip.URy)
}

// buildLineOutline writes the closed outline of a capped line segment
// into r.stroke. The outline runs forward along the +n side, around the
// end cap, backward along the -n side and around the start cap.
func (r *Rasterizer) buildLineOutline(p0, p1, t, n vec.Vec2, hw float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		s := p0.Sub(t.Mul(hw))
		e := p1.Add(t.Mul(hw))
		r.stroke = append(r.stroke,
			s.Add(n.Mul(hw)),
			e.Add(n.Mul(hw)),
			e.Sub(n.Mul(hw)),
			s.Sub(n.Mul(hw)),
		)

	case graphics.LineCapRound:
		r.stroke = append(r.stroke, p0.Add(n.Mul(hw)))
		// Semicircle from +n through t to -n around the end point,
		// then from -n through -t back to +n around the start point.
		r.addArc(p1, hw, n, -math.Pi, true)
		r.addArc(p0, hw, n.Mul(-1), -math.Pi, true)

	default: // graphics.LineCapButt
		r.stroke = append(r.stroke,
			p0.Add(n.Mul(hw)),
			p1.Add(n.Mul(hw)),
			p1.Sub(n.Mul(hw)),
			p0.Sub(n.Mul(hw)),
		)
	}
}

// addArc adds arc vertices (device space) to the stroke outline.
// startDir is the unit vector from center to arc start.
// sweep is the sweep angle in radians (positive = CCW).
// includeStart indicates whether to include the start point.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation (sagitta) is r*(1 - cos(θ/2)). For this to equal tolerance ε:
	//   θ = 2*acos(1 - ε/r)
	n := 1
	if radius > r.Flatness {
		angleStep := 2 * math.Acos(1-r.Flatness/radius)
		if angleStep <= 0 || math.IsNaN(angleStep) {
			angleStep = math.Pi / 4 // fallback
		}
		n = max(int(math.Ceil(math.Abs(sweep)/angleStep)), 1)
	}

	dt := sweep / float64(n)
	startI := 0
	if !includeStart {
		startI = 1
	}
	for i := startI; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
