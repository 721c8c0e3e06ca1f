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
	"image"
)

// maxPixels limits the number of pixels in a PixelBuffer.
// At 16 bytes per pixel this is 4 GiB.
const maxPixels = 1 << 28

// PixelBuffer is a Width×Height grid of premultiplied RGBA samples.
// Row 0 is the top row of the image.
type PixelBuffer struct {
	Width, Height int

	// Pix holds four float32 samples per pixel, in row-major order.
	Pix []float32
}

func newPixelBuffer(width, height int, bg Color) (*PixelBuffer, error) {
	n := width * height
	if n > maxPixels {
		return nil, fmt.Errorf("%w: %d×%d pixels", ErrTooLarge, width, height)
	}

	buf := &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, 4*n),
	}
	if bg != Transparent {
		c := bg.premultiplied()
		for i := 0; i < len(buf.Pix); i += 4 {
			copy(buf.Pix[i:i+4], c[:])
		}
	}
	return buf, nil
}

// At returns the straight-alpha colour of the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) Color {
	i := 4 * (y*b.Width + x)
	s := b.Pix[i : i+4 : i+4]
	a := float64(s[3])
	if a <= 0 {
		return Transparent
	}
	return Color{
		R: min(float64(s[0])/a, 1),
		G: min(float64(s[1])/a, 1),
		B: min(float64(s[2])/a, 1),
		A: min(a, 1),
	}
}

// blend composites the premultiplied colour src over one row segment,
// weighted by the given coverage values.
func (b *PixelBuffer) blend(y, xMin int, coverage []float32, src [4]float32) {
	row := b.Pix[4*y*b.Width : 4*(y+1)*b.Width]
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		cov = min(cov, 1)
		p := row[4*(xMin+i) : 4*(xMin+i)+4 : 4*(xMin+i)+4]
		k := 1 - src[3]*cov
		p[0] = src[0]*cov + p[0]*k
		p[1] = src[1]*cov + p[1]*k
		p[2] = src[2]*cov + p[2]*k
		p[3] = src[3]*cov + p[3]*k
	}
}

// Image converts the buffer into an 8-bit straight-alpha image.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := range b.Height {
		out := img.Pix[y*img.Stride : y*img.Stride+4*b.Width]
		for x := range b.Width {
			c := b.At(x, y)
			o := out[4*x : 4*x+4 : 4*x+4]
			o[0] = quantize(c.R)
			o[1] = quantize(c.G)
			o[2] = quantize(c.B)
			o[3] = quantize(c.A)
		}
	}
	return img
}
