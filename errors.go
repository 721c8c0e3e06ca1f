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

import "errors"

var (
	// ErrInvalidGeometry indicates a polygon that cannot be triangulated.
	// Render recovers from it by skipping the polygon's fill.
	ErrInvalidGeometry = errors.New("invalid polygon geometry")

	// ErrInvalidConfig indicates out-of-range drawing options.
	ErrInvalidConfig = errors.New("invalid drawing options")

	// ErrTooLarge indicates that the pixel buffer could not be allocated.
	ErrTooLarge = errors.New("image too large")

	// ErrWrite indicates that the output file could not be written.
	ErrWrite = errors.New("cannot write image")
)

// WriteError records a failure to write the image file at Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "uvlayout: write " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrWrite) true for all write errors.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
