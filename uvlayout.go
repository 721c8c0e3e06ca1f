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

// Package uvlayout renders the UV layout of a mesh into an RGBA image.
//
// The input is a sequence of faces, each a polygon in UV space with a fill
// colour. The unit square of UV space covers the whole image, with V
// pointing up. Faces are filled with a global opacity, then outlined, and
// the result is written as a PNG file.
package uvlayout

//go:generate go run ./testcases/export

import (
	"iter"
	"log/slog"
)

// Face is one polygon of a UV layout.
type Face struct {
	// UV lists the polygon vertices in UV space.
	UV Polygon

	// Fill is the colour of the polygon interior. The alpha component is
	// ignored; fills use the global opacity instead.
	Fill Color
}

// Export renders the faces and writes the result to a PNG file at path.
// An existing file is replaced. If an error occurs, no partial file is
// left behind.
func Export(path string, faces iter.Seq[Face], opts *Options) error {
	buf, err := Render(faces, opts)
	if err != nil {
		return err
	}
	err = WritePNG(path, buf)
	if err != nil {
		return err
	}
	Logger().Debug("exported UV layout", slog.String("path", path))
	return nil
}
