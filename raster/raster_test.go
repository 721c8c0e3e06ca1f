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
	"fmt"
	"image"
	"math"
	"sort"
	"strings"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polygonPath builds a closed path through the given points.
func polygonPath(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// grid collects emitted coverage into a width×height array.
type grid struct {
	w, h int
	data []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, data: make([]float32, w*h)}
}

// add accumulates coverage, so that overlapping output is detectable.
func (g *grid) add(y, xMin int, coverage []float32) {
	row := g.data[y*g.w:]
	for i, c := range coverage {
		row[xMin+i] += c
	}
}

func (g *grid) at(x, y int) float32 {
	return g.data[y*g.w+x]
}

var referenceShapes = []struct {
	name string
	pts  []vec.Vec2
	w, h int
}{
	{"triangle", []vec.Vec2{pt(10, 50), pt(32, 10), pt(54, 50)}, 64, 64},
	{"rectangle_fractional", []vec.Vec2{pt(10.3, 10.7), pt(44.2, 10.7), pt(44.2, 40.1), pt(10.3, 40.1)}, 64, 64},
	{"arrow_concave", []vec.Vec2{pt(4, 30), pt(30, 4), pt(56, 30), pt(42, 30), pt(42, 58), pt(18, 58), pt(18, 30)}, 64, 64},
	{"thin_sliver", []vec.Vec2{pt(2, 2), pt(61, 5.5), pt(3, 4)}, 64, 64},
	{"large", []vec.Vec2{pt(5, 5), pt(295, 20), pt(280, 290), pt(15, 270)}, 300, 300},
}

// TestAgainstVector compares exact-area coverage with the output of
// golang.org/x/image/vector, which implements the same signed-area model.
func TestAgainstVector(t *testing.T) {
	approaches := []struct {
		name      string
		threshold int
	}{
		{"A", 1 << 30}, // very large threshold forces Approach A
		{"B", 0},       // zero threshold forces Approach B
	}

	for _, shape := range referenceShapes {
		for _, approach := range approaches {
			name := shape.name + "_" + approach.name
			t.Run(name, func(t *testing.T) {
				w, h := shape.w, shape.h

				ref := image.NewAlpha(image.Rect(0, 0, w, h))
				vr := vector.NewRasterizer(w, h)
				vr.MoveTo(float32(shape.pts[0].X), float32(shape.pts[0].Y))
				for _, p := range shape.pts[1:] {
					vr.LineTo(float32(p.X), float32(p.Y))
				}
				vr.ClosePath()
				vr.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

				r := NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
				r.smallPathThreshold = approach.threshold
				actual := make([]byte, w*h)
				r.FillNonZero(polygonPath(shape.pts...), func(y, xMin int, coverage []float32) {
					row := actual[y*w:]
					for i, c := range coverage {
						row[xMin+i] = byte(max(0, min(255, int(math.Round(float64(c)*255)))))
					}
				})

				if err := compareCoverage(ref.Pix, actual); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// compareCoverage checks that two coverage images agree up to rounding:
// at least 95% of pixels are identical, 99% differ by at most 2, and no
// pixel differs by more than 8.
func compareCoverage(expected, actual []byte) error {
	total := len(expected)
	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]
	worst := diffs[total-1]

	var failures []string
	if p95 > 0 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want 0)", p95))
	}
	if p99 > 2 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <=2)", p99))
	}
	if worst > 8 {
		failures = append(failures, fmt.Sprintf("max diff is %d (want <=8)", worst))
	}
	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	trianglePath := polygonPath(pt(0, 0), pt(10, 0), pt(10, 1))

	r := NewRasterizer(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	g := newGrid(10, 1)
	r.FillNonZero(trianglePath, g.add)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := g.at(x, 0)
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

// TestAliasedTiling checks that two triangles splitting a square cover
// every pixel of the square exactly once.
func TestAliasedTiling(t *testing.T) {
	const size = 40
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	g := newGrid(size, size)

	r.FillAliased(polygonPath(pt(10, 10), pt(30, 10), pt(30, 30)), g.add)
	r.FillAliased(polygonPath(pt(10, 10), pt(30, 30), pt(10, 30)), g.add)

	for y := range size {
		for x := range size {
			want := float32(0)
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				want = 1
			}
			if got := g.at(x, y); got != want {
				t.Fatalf("pixel (%d,%d): got coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

// TestAliasedFanTiling checks gap-free coverage for a fan of thin
// triangles with irrational vertex positions.
func TestAliasedFanTiling(t *testing.T) {
	const size = 64
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	g := newGrid(size, size)

	center := pt(31.3, 32.7)
	const n = 17
	ring := make([]vec.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / n
		ring[i] = pt(32+25*math.Cos(angle), 32+25*math.Sin(angle))
	}
	for i := range n {
		r.FillAliased(polygonPath(center, ring[i], ring[(i+1)%n]), g.add)
	}

	for i, c := range g.data {
		if c > 1 {
			t.Fatalf("pixel (%d,%d) covered %g times", i%size, i/size, c)
		}
	}
	// pixels well inside the ring must be covered
	for y := 20; y < 44; y++ {
		for x := 20; x < 44; x++ {
			if g.at(x, y) != 1 {
				t.Fatalf("interior pixel (%d,%d) not covered", x, y)
			}
		}
	}
}

func TestAliasedCTM(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 100, URy: 100})
	// normalized device coordinates to a 100×100 pixel grid, y pointing down
	r.CTM = matrix.Matrix{50, 0, 0, -50, 50, 50}
	g := newGrid(100, 100)

	r.FillAliased(polygonPath(pt(-0.5, -0.5), pt(0.5, -0.5), pt(0.5, 0.5), pt(-0.5, 0.5)), g.add)

	if g.at(50, 50) != 1 {
		t.Error("centre pixel not covered")
	}
	if g.at(1, 1) != 0 {
		t.Error("corner pixel covered")
	}
	if g.at(25, 25) != 1 || g.at(74, 74) != 1 || g.at(75, 75) != 0 || g.at(24, 24) != 0 {
		t.Error("square edges are not at pixels 25 and 75")
	}
}

func TestStrokeLine(t *testing.T) {
	const w, h = 40, 40
	a, b := pt(10, 20), pt(30, 20)

	t.Run("antialiased", func(t *testing.T) {
		r := NewRasterizer(rect.Rect{URx: w, URy: h})
		g := newGrid(w, h)
		r.StrokeLine(a, b, g.add)
		for x := 10; x < 30; x++ {
			if g.at(x, 19) != 0.5 || g.at(x, 20) != 0.5 {
				t.Fatalf("column %d: got coverage %g/%g, want 0.5/0.5", x, g.at(x, 19), g.at(x, 20))
			}
		}
		if g.at(9, 19) != 0 || g.at(30, 19) != 0 {
			t.Error("butt cap extends beyond end points")
		}
	})

	t.Run("aliased", func(t *testing.T) {
		r := NewRasterizer(rect.Rect{URx: w, URy: h})
		r.AntiAlias = false
		g := newGrid(w, h)
		r.StrokeLine(a, b, g.add)
		for x := 10; x < 30; x++ {
			if g.at(x, 19) != 1 || g.at(x, 20) != 0 {
				t.Fatalf("column %d: got coverage %g/%g, want 1/0", x, g.at(x, 19), g.at(x, 20))
			}
		}
		for i, c := range g.data {
			if c != 0 && c != 1 {
				t.Fatalf("pixel %d has partial coverage %g", i, c)
			}
		}
	})

	t.Run("caps", func(t *testing.T) {
		for _, style := range []graphics.LineCapStyle{graphics.LineCapSquare, graphics.LineCapRound} {
			r := NewRasterizer(rect.Rect{URx: w, URy: h})
			r.Cap = style
			r.Width = 4
			g := newGrid(w, h)
			r.StrokeLine(a, b, g.add)
			if g.at(30, 20) == 0 || g.at(9, 19) == 0 {
				t.Errorf("%v cap: no coverage beyond the end points", style)
			}
			if g.at(35, 20) != 0 {
				t.Errorf("%v cap: coverage too far beyond the end point", style)
			}
		}
	})

	t.Run("zero_length", func(t *testing.T) {
		r := NewRasterizer(rect.Rect{URx: w, URy: h})
		r.StrokeLine(a, a, func(y, xMin int, coverage []float32) {
			t.Errorf("unexpected coverage in row %d", y)
		})
	})

	t.Run("clip_borders", func(t *testing.T) {
		const n = 20
		lines := []struct {
			a, b vec.Vec2
			x, y int // pixel which must be covered
		}{
			{pt(5, 0), pt(15, 0), 10, 0},
			{pt(5, n), pt(15, n), 10, n - 1},
			{pt(0, 5), pt(0, 15), 0, 10},
			{pt(n, 5), pt(n, 15), n - 1, 10},
		}
		for _, l := range lines {
			r := NewRasterizer(rect.Rect{URx: n, URy: n})
			r.AntiAlias = false
			g := newGrid(n, n)
			r.StrokeLine(l.a, l.b, g.add)
			if c := g.at(l.x, l.y); c != 1 {
				t.Errorf("line %v-%v: pixel (%d,%d) has coverage %g, want 1",
					l.a, l.b, l.x, l.y, c)
			}
		}
	})

	t.Run("diagonal_connected", func(t *testing.T) {
		r := NewRasterizer(rect.Rect{URx: w, URy: h})
		r.AntiAlias = false
		g := newGrid(w, h)
		r.StrokeLine(pt(5, 5), pt(35, 30), g.add)
		for y := 6; y < 29; y++ {
			found := false
			for x := range w {
				if g.at(x, y) > 0 {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("row %d has no line pixels", y)
			}
		}
	})
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 5
	r.Cap = graphics.LineCapRound
	r.AntiAlias = false
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}

	r.Reset(rect.Rect{URx: 20, URy: 20})
	if r.Width != 1 || r.Cap != graphics.LineCapButt || !r.AntiAlias {
		t.Errorf("stroke parameters not reset: %+v", r)
	}
	if r.Clip.URx != 20 {
		t.Errorf("clip not updated: %v", r.Clip)
	}
	if got := r.Apply(pt(3, 4)); got != pt(3, 4) {
		t.Errorf("CTM not reset: Apply((3,4)) = %v", got)
	}
}
