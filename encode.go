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
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// EncodePNG writes the buffer to w as an 8-bit RGBA PNG image.
func EncodePNG(w io.Writer, buf *PixelBuffer) error {
	return png.Encode(w, buf.Image())
}

// WritePNG writes the buffer to a PNG file at path, replacing any
// existing file. The image is first written to a temporary file in the
// same directory, which is then renamed to path. On failure the
// temporary file is removed and the returned error is a *WriteError.
func WritePNG(path string, buf *PixelBuffer) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
			err = &WriteError{Path: path, Err: err}
		}
	}()

	err = EncodePNG(f, buf)
	if err != nil {
		return err
	}
	err = f.Sync()
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	// CreateTemp uses mode 0600
	err = os.Chmod(tmp, 0o644)
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
