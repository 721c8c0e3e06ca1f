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

// Command uvexport renders a UV layout, given as a JSON file, to a PNG
// image.
//
// Usage:
//
//	uvexport [flags] layout.json
//
// The layout file has the form
//
//	{"faces": [{"uv": [[u, v], ...], "color": [r, g, b]}, ...]}
//
// Use "-" to read the layout from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/uvlayout"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "uvexport:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	def := uvlayout.DefaultOptions()

	flags := flag.NewFlagSet("uvexport", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		output       = flags.String("o", "", "output file (default: input name with .png extension)")
		width        = flags.Int("width", def.Width, "image width in pixels")
		height       = flags.Int("height", def.Height, "image height in pixels")
		opacity      = flags.Float64("opacity", def.Opacity, "fill opacity, from 0 to 1")
		fillColor    = flags.String("fill-color", "#cccccc", "fill colour for faces without a colour")
		ignoreColors = flags.Bool("ignore-colors", false, "use the fill colour for all faces")
		outlineColor = flags.String("outline-color", "#000000", "outline colour")
		outlineAlpha = flags.Float64("outline-alpha", def.OutlineColor.A, "outline opacity, from 0 to 1")
		background   = flags.String("background", "#000000", "background colour")
		bgAlpha      = flags.Float64("background-alpha", def.BackgroundColor.A, "background opacity, from 0 to 1")
		noFill       = flags.Bool("no-fill", false, "do not fill the faces")
		noOutline    = flags.Bool("no-outline", false, "do not draw the face outlines")
		noAntiAlias  = flags.Bool("no-aa", false, "disable anti-aliasing of outlines")
		outlineWidth = flags.Float64("outline-width", def.OutlineWidth, "outline width in pixels")
		capStyle     = flags.String("cap", "butt", "outline cap style: butt, round or square")
		verbose      = flags.Bool("v", false, "log progress to standard error")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: uvexport [flags] layout.json")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return flag.ErrHelp
	}
	input := flags.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	uvlayout.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	opts := &uvlayout.Options{
		Width:        *width,
		Height:       *height,
		Opacity:      *opacity,
		DrawFill:     !*noFill,
		DrawOutline:  !*noOutline,
		AntiAlias:    !*noAntiAlias,
		OutlineWidth: *outlineWidth,
	}
	var err error
	if opts.OutlineColor, err = parseColor(*outlineColor, *outlineAlpha); err != nil {
		return fmt.Errorf("-outline-color: %w", err)
	}
	if opts.BackgroundColor, err = parseColor(*background, *bgAlpha); err != nil {
		return fmt.Errorf("-background: %w", err)
	}
	fill, err := parseColor(*fillColor, 1)
	if err != nil {
		return fmt.Errorf("-fill-color: %w", err)
	}
	if opts.OutlineCap, err = parseCap(*capStyle); err != nil {
		return fmt.Errorf("-cap: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	layout, err := readLayout(input, stdin)
	if err != nil {
		return err
	}

	out := outputPath(*output, input)
	err = uvlayout.Export(out, layout.Faces(fill, *ignoreColors), opts)
	if err != nil {
		return err
	}
	uvlayout.Logger().Info("wrote image",
		slog.String("path", out),
		slog.Int("faces", len(layout.Entries)))
	return nil
}

func readLayout(input string, stdin io.Reader) (*uvlayout.Layout, error) {
	if input == "-" {
		return uvlayout.ReadLayout(stdin)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return uvlayout.ReadLayout(f)
}

// parseColor parses a hex colour like "#ff8000" or "f80".
func parseColor(s string, alpha float64) (uvlayout.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return uvlayout.Color{}, err
	}
	res := uvlayout.RGBA(c.R, c.G, c.B, alpha)
	if !res.IsValid() {
		return uvlayout.Color{}, fmt.Errorf("alpha %g not in [0, 1]", alpha)
	}
	return res, nil
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown cap style %q", s)
	}
}

// outputPath returns the name of the image file. If no name is given, it
// is derived from the input file name. A missing ".png" extension is
// added.
func outputPath(output, input string) string {
	if output == "" {
		if input == "-" {
			output = "layout"
		} else {
			output = strings.TrimSuffix(input, filepath.Ext(input))
		}
	}
	if !strings.EqualFold(filepath.Ext(output), ".png") {
		output += ".png"
	}
	return output
}
