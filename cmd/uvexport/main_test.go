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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/uvlayout"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		output, input, want string
	}{
		{"", "mesh.json", "mesh.png"},
		{"", filepath.Join("a", "b.layout.json"), filepath.Join("a", "b.layout.png")},
		{"", "-", "layout.png"},
		{"out", "mesh.json", "out.png"},
		{"out.png", "mesh.json", "out.png"},
		{"OUT.PNG", "mesh.json", "OUT.PNG"},
		{"out.jpg", "mesh.json", "out.jpg.png"},
	}
	for _, c := range cases {
		if got := outputPath(c.output, c.input); got != c.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", c.output, c.input, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#ff0000", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if c != uvlayout.RGBA(1, 0, 0, 0.5) {
		t.Errorf("got %v", c)
	}

	c, err = parseColor("00f", 1)
	if err != nil {
		t.Fatal(err)
	}
	if c != uvlayout.RGB(0, 0, 1) {
		t.Errorf("got %v", c)
	}

	for _, bad := range []string{"", "#12", "red", "#gg0000"} {
		if _, err := parseColor(bad, 1); err == nil {
			t.Errorf("%q: missing error", bad)
		}
	}
	if _, err := parseColor("#000000", 2); err == nil {
		t.Error("alpha 2: missing error")
	}
}

func TestParseCap(t *testing.T) {
	for s, want := range map[string]graphics.LineCapStyle{
		"butt":   graphics.LineCapButt,
		"Round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	} {
		got, err := parseCap(s)
		if err != nil || got != want {
			t.Errorf("parseCap(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := parseCap("miter"); err == nil {
		t.Error("missing error")
	}
}

func TestRun(t *testing.T) {
	defer uvlayout.SetLogger(nil)

	dir := t.TempDir()
	in := filepath.Join(dir, "mesh.json")
	layout := `{"faces": [{"uv": [[0.1, 0.1], [0.9, 0.1], [0.5, 0.9]], "color": [1, 0, 0]}]}`
	if err := os.WriteFile(in, []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	err := run([]string{"-width", "32", "-height", "16", "-opacity", "1", "-v", in}, nil, &stderr)
	if err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if !strings.Contains(stderr.String(), "mesh.png") {
		t.Errorf("missing log output:\n%s", stderr.String())
	}

	f, err := os.Open(filepath.Join(dir, "mesh.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("image size %v", b)
	}
	r, g, _, a := img.At(16, 10).RGBA()
	if r != 0xffff || g != 0 || a != 0xffff {
		t.Errorf("centre pixel %04x %04x %04x", r, g, a)
	}
}

func TestRunStdin(t *testing.T) {
	defer uvlayout.SetLogger(nil)

	out := filepath.Join(t.TempDir(), "stdin")
	stdin := strings.NewReader(`{"faces": []}`)
	var stderr bytes.Buffer
	err := run([]string{"-o", out, "-width", "8", "-height", "8", "-"}, stdin, &stderr)
	if err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if _, err := os.Stat(out + ".png"); err != nil {
		t.Error(err)
	}
}

func TestRunErrors(t *testing.T) {
	defer uvlayout.SetLogger(nil)

	dir := t.TempDir()
	in := filepath.Join(dir, "mesh.json")
	if err := os.WriteFile(in, []byte(`{"faces": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := [][]string{
		{},
		{"-width", "0", in},
		{"-opacity", "1.5", in},
		{"-outline-color", "nope", in},
		{"-cap", "miter", in},
		{filepath.Join(dir, "missing.json")},
	}
	for _, args := range cases {
		var stderr bytes.Buffer
		if err := run(args, nil, &stderr); err == nil {
			t.Errorf("%q: missing error", args)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "mesh.png")); !os.IsNotExist(err) {
		t.Errorf("image written despite errors: %v", err)
	}
}
