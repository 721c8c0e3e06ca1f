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

// Command export writes all test layouts as JSON files into
// testdata/layouts, for use with the uvexport command.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/uvlayout"
	"seehuhn.de/go/uvlayout/testcases"
)

func main() {
	dir := filepath.Join("testdata", "layouts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(dir, name+".json")
			if err := writeLayout(fname, tc); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func writeLayout(fname string, tc testcases.TestCase) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = uvlayout.WriteLayout(f, uvlayout.NewLayout(faces(tc)))
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

func faces(tc testcases.TestCase) func(yield func(uvlayout.Face) bool) {
	return func(yield func(uvlayout.Face) bool) {
		for _, f := range tc.Faces {
			face := uvlayout.Face{
				UV:   uvlayout.Polygon(f.UV),
				Fill: uvlayout.RGB(f.Color[0], f.Color[1], f.Color[2]),
			}
			if !yield(face) {
				return
			}
		}
	}
}
