// seehuhn.de/go/knit - machine knitting patterns from garment outlines
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

package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/knit"
	"seehuhn.de/go/knit/styles"
)

func TestCanvas(t *testing.T) {
	c := NewCanvas(32, 32, color.White)
	c.Fill(box(8, 8, 16, 16), color.Black, false)
	c.Fill(box(20, 8, 28, 16), color.NRGBA{R: 255, A: 128}, false)

	if got := c.Img.RGBAAt(10, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("inside: got %v", got)
	}
	if got := c.Img.RGBAAt(2, 2); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside: got %v", got)
	}
	got := c.Img.RGBAAt(24, 12)
	if got.R != 255 || got.G < 125 || got.G > 129 || got.A != 255 {
		t.Errorf("translucent: got %v", got)
	}
}

func TestLabel(t *testing.T) {
	c := NewCanvas(64, 20, color.White)
	c.Label(2, 14, "front", color.Black)

	dark := 0
	for y := range 20 {
		for x := range 64 {
			if c.Img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text drawn")
	}
	if w := TextWidth("front"); w != 35 {
		t.Errorf("text width %d, want 35", w)
	}
}

func tshirt(t *testing.T) *knit.Garment {
	t.Helper()
	g, err := styles.TShirt.Build(styles.SamplePerson, styles.SampleBody, styles.SampleGauge)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGarmentFigure(t *testing.T) {
	f, err := GarmentFigure(tshirt(t), styles.SampleBody)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(f.Items))
	}

	m, err := f.Transform()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.Bounds()
	top := float64(figureMargin + f.legendHeight())
	for _, v := range []vec.Vec2{{X: b.LLx, Y: b.LLy}, {X: b.URx, Y: b.URy}} {
		x := m[0]*v.X + m[2]*v.Y + m[4]
		y := m[1]*v.X + m[3]*v.Y + m[5]
		if x < figureMargin-1e-6 || x > float64(f.Width-figureMargin)+1e-6 ||
			y < top-1e-6 || y > float64(f.Height-figureMargin)+1e-6 {
			t.Errorf("corner %v maps to (%g, %g), outside the plot area", v, x, y)
		}
	}

	img, err := f.Render()
	if err != nil {
		t.Fatal(err)
	}
	// the middle of the front panel is tinted by the panel fills
	cx := int(m[4] + 0.5)
	cy := int(m[3]*10 + m[5] + 0.5)
	if got := img.RGBAAt(cx, cy); got.R == 255 && got.G == 255 && got.B == 255 {
		t.Errorf("pixel (%d,%d) inside the panels is white", cx, cy)
	}

	buf := &bytes.Buffer{}
	if err := f.WritePNG(buf); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if dec.Bounds().Dx() != f.Width || dec.Bounds().Dy() != f.Height {
		t.Errorf("image size %v", dec.Bounds())
	}
}

func TestEmptyFigure(t *testing.T) {
	f := &Figure{Width: 100, Height: 100}
	if _, err := f.Render(); err != ErrEmptyFigure {
		t.Errorf("got %v, want ErrEmptyFigure", err)
	}
}

func TestStitchCells(t *testing.T) {
	s, err := knit.NewShape([]vec.Vec2{
		{X: -20, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 100}, {X: 5, Y: 100},
		{X: 5, Y: 80}, {X: -5, Y: 80}, {X: -5, Y: 100}, {X: -20, Y: 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := knit.BuildChart("front", s, knit.Gauge{Stitches: 10, Rows: 10}, 0)
	if err != nil {
		t.Fatal(err)
	}

	img := StitchCells(c)
	if b := img.Bounds(); b.Dx() != 41 || b.Dy() != 101 {
		t.Fatalf("got size %v, want 41x101", b)
	}

	// image row h-1-i shows chart row i; column x shows needle x-20
	cases := []struct {
		x, row int
		want   color.NRGBA
	}{
		{0, 0, MarkerColor},      // cast-on
		{0, 50, WorkingColor},    // plain row
		{20, 90, OutOfWorkColor}, // neck opening
		{10, 90, WorkingColor},   // left of the neck
		{30, 90, HeldColor},      // right of the neck, on hold
		{30, 80, HeldColor},      // split row
		{10, 80, MarkerColor},
	}
	for _, tc := range cases {
		if got := img.NRGBAAt(tc.x, 100-tc.row); got != tc.want {
			t.Errorf("needle %d, row %d: got %v, want %v", tc.x-20, tc.row, got, tc.want)
		}
	}

	big := StitchMap(c, 3, 2)
	if b := big.Bounds(); b.Dx() != 123 || b.Dy() != 202 {
		t.Fatalf("scaled size %v", b)
	}
	if got := big.NRGBAAt(3*30+1, 2*(100-90)+1); got != HeldColor {
		t.Errorf("scaled cell: got %v", got)
	}
}

func TestWritePDF(t *testing.T) {
	f, err := GarmentFigure(tshirt(t), styles.SampleBody)
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), "tshirt.pdf")
	if err := f.WritePDF(fname); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF file")
	}
}
