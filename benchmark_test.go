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
	"testing"

	"seehuhn.de/go/uvlayout/testcases"
)

func findCase(category, name string) testcases.TestCase {
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	panic("unknown test case " + category + "_" + name)
}

// BenchmarkRenderGrid renders 1024 quads with fills and outlines.
func BenchmarkRenderGrid(b *testing.B) {
	tc := findCase("large", "dense_grid")
	opts := DefaultOptions()
	opts.Width, opts.Height = tc.Width, tc.Height
	faces := caseFaces(tc)

	for b.Loop() {
		if _, err := Render(faces, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTriangulate triangulates a concave polygon with 24 vertices.
func BenchmarkTriangulate(b *testing.B) {
	p := Polygon(findCase("concave", "comb").Faces[0].UV)
	for b.Loop() {
		if _, err := Triangulate(p); err != nil {
			b.Fatal(err)
		}
	}
}
