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
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Layout is a UV layout in its JSON file form:
//
//	{"faces": [{"uv": [[u, v], ...], "color": [r, g, b]}, ...]}
//
// The colour of a face is optional.
type Layout struct {
	Entries []LayoutFace `json:"faces"`
}

// LayoutFace is one face of a Layout.
type LayoutFace struct {
	UV    [][2]float64 `json:"uv"`
	Color []float64    `json:"color,omitempty"`
}

// ReadLayout decodes a layout from r. Faces with fewer than three
// vertices are kept; Render skips their fill.
func ReadLayout(r io.Reader) (*Layout, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	l := &Layout{}
	if err := dec.Decode(l); err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	for i, f := range l.Entries {
		switch len(f.Color) {
		case 0, 3:
		default:
			return nil, fmt.Errorf("reading layout: face %d: color needs 3 components, got %d", i, len(f.Color))
		}
		if len(f.Color) == 3 && !RGB(f.Color[0], f.Color[1], f.Color[2]).IsValid() {
			return nil, fmt.Errorf("reading layout: face %d: color %v out of range", i, f.Color)
		}
	}
	return l, nil
}

// WriteLayout encodes the layout as indented JSON.
func WriteLayout(w io.Writer, l *Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// Faces returns the faces of the layout. Faces without a colour use
// defaultFill. If ignoreColors is set, all faces use defaultFill.
func (l *Layout) Faces(defaultFill Color, ignoreColors bool) iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, lf := range l.Entries {
			face := Face{
				UV:   make(Polygon, len(lf.UV)),
				Fill: defaultFill,
			}
			for i, p := range lf.UV {
				face.UV[i] = vec.Vec2{X: p[0], Y: p[1]}
			}
			if !ignoreColors && len(lf.Color) == 3 {
				face.Fill = RGB(lf.Color[0], lf.Color[1], lf.Color[2])
			}
			if !yield(face) {
				return
			}
		}
	}
}

// NewLayout converts faces into their file form.
func NewLayout(faces iter.Seq[Face]) *Layout {
	l := &Layout{Entries: []LayoutFace{}}
	for face := range faces {
		lf := LayoutFace{
			UV:    make([][2]float64, len(face.UV)),
			Color: []float64{face.Fill.R, face.Fill.G, face.Fill.B},
		}
		for i, p := range face.UV {
			lf.UV[i] = [2]float64{p.X, p.Y}
		}
		l.Entries = append(l.Entries, lf)
	}
	return l
}
