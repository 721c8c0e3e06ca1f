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
	"iter"
	"log/slog"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/uvlayout/raster"
)

// Render draws the faces into a new pixel buffer.
//
// The buffer starts out in the background colour. If opts.DrawFill is
// set, the interior of every face is filled with the face colour at
// opacity opts.Opacity, in input order. If opts.DrawOutline is set, the
// edges of every face are then drawn on top in opts.OutlineColor.
//
// Faces which cannot be triangulated are not filled, but their outlines
// are still drawn. Invalid options and, when filling, fill colours
// outside [0, 1] are reported before any drawing starts; the returned
// error then wraps ErrInvalidConfig.
//
// The sequence faces is traversed once for each enabled pass, plus once
// more to check the fill colours.
func Render(faces iter.Seq[Face], opts *Options) (*PixelBuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.DrawFill && faces != nil {
		if err := checkFillColors(faces); err != nil {
			return nil, err
		}
	}
	buf, err := newPixelBuffer(opts.Width, opts.Height, opts.BackgroundColor)
	if err != nil {
		return nil, err
	}

	c := &compositor{
		buf: buf,
		r: raster.NewRasterizer(rect.Rect{
			URx: float64(opts.Width),
			URy: float64(opts.Height),
		}),
		opts: opts,
	}
	c.r.CTM = viewport(opts.Width, opts.Height)

	if opts.DrawFill && faces != nil {
		c.fillFaces(faces)
	}
	if opts.DrawOutline && faces != nil {
		c.outlineFaces(faces)
	}

	Logger().Debug("rendered UV layout",
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Int("filled", c.filled),
		slog.Int("skipped", c.skipped),
		slog.Int("edges", c.edges))
	return buf, nil
}

// checkFillColors verifies that the RGB components of all fill colours
// are in range. The alpha component is not used.
func checkFillColors(faces iter.Seq[Face]) error {
	i := 0
	for face := range faces {
		c := face.Fill
		if !unit(c.R) || !unit(c.G) || !unit(c.B) {
			return fmt.Errorf("%w: face %d: fill color (%g, %g, %g) out of range",
				ErrInvalidConfig, i, c.R, c.G, c.B)
		}
		i++
	}
	return nil
}

// compositor holds the state of a single Render call.
type compositor struct {
	buf  *PixelBuffer
	r    *raster.Rasterizer
	opts *Options
	tri  path.Data

	src [4]float32

	filled, skipped, edges int
}

func (c *compositor) emit(y, xMin int, coverage []float32) {
	c.buf.blend(y, xMin, coverage, c.src)
}

func (c *compositor) fillFaces(faces iter.Seq[Face]) {
	i := 0
	for face := range faces {
		idx := i
		i++

		tris, err := Triangulate(face.UV)
		if err != nil {
			c.skipped++
			Logger().Warn("skipping fill",
				slog.Int("face", idx),
				slog.Int("vertices", len(face.UV)),
				slog.Any("error", err))
			continue
		}

		c.src = face.Fill.WithAlpha(c.opts.Opacity).premultiplied()
		for _, t := range tris {
			c.tri.Cmds = c.tri.Cmds[:0]
			c.tri.Coords = c.tri.Coords[:0]
			c.tri.MoveTo(Normalize(face.UV[t[0]]))
			c.tri.LineTo(Normalize(face.UV[t[1]]))
			c.tri.LineTo(Normalize(face.UV[t[2]]))
			c.tri.Close()
			c.r.FillAliased(&c.tri, c.emit)
		}
		c.filled++
	}
}

func (c *compositor) outlineFaces(faces iter.Seq[Face]) {
	c.r.Width = c.opts.OutlineWidth
	c.r.Cap = c.opts.OutlineCap
	c.r.AntiAlias = c.opts.AntiAlias
	c.src = c.opts.OutlineColor.premultiplied()

	for face := range faces {
		n := len(face.UV)
		switch {
		case n < 2:
			continue
		case n == 2:
			// a single edge, which would otherwise be drawn twice
			c.r.StrokeLine(Normalize(face.UV[0]), Normalize(face.UV[1]), c.emit)
			c.edges++
			continue
		}
		for i := range n {
			a := Normalize(face.UV[i])
			b := Normalize(face.UV[(i+1)%n])
			c.r.StrokeLine(a, b, c.emit)
		}
		c.edges += n
	}
}
