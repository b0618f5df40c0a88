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
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const size = 32

// grid collects coverage values into a size x size array.
type grid [size][size]float32

func (g *grid) emit(y, xMin int, coverage []float32) {
	for i, c := range coverage {
		g[y][xMin+i] = c
	}
}

func (g *grid) total() float64 {
	var sum float64
	for y := range g {
		for x := range g[y] {
			sum += float64(g[y][x])
		}
	}
	return sum
}

func newTestRasteriser() *Rasteriser {
	return NewRasteriser(rect.Rect{URx: size, URy: size})
}

func polygon(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, v := range pts[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

func box(x0, y0, x1, y1 float64) *path.Data {
	return polygon(
		vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y0},
		vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x0, Y: y1})
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestFillRectangle(t *testing.T) {
	r := newTestRasteriser()
	var g grid
	r.FillNonZero(box(10, 10, 20, 20), g.emit)

	for y := range size {
		for x := range size {
			want := float32(0)
			if x >= 10 && x < 20 && y >= 10 && y < 20 {
				want = 1
			}
			if !near(g[y][x], want) {
				t.Fatalf("pixel (%d,%d): got %g, want %g", x, y, g[y][x], want)
			}
		}
	}
}

func TestFillOrientation(t *testing.T) {
	// the same rectangle, traversed clockwise and counter-clockwise
	cw := box(4, 4, 12, 12)
	ccw := polygon(
		vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 4, Y: 12},
		vec.Vec2{X: 12, Y: 12}, vec.Vec2{X: 12, Y: 4})

	r := newTestRasteriser()
	var a, b grid
	r.FillNonZero(cw, a.emit)
	r.FillNonZero(ccw, b.emit)
	if a != b {
		t.Error("coverage depends on orientation")
	}
}

func TestFillPartialPixels(t *testing.T) {
	r := newTestRasteriser()
	var g grid
	r.FillNonZero(box(10.5, 10, 20, 20.25), g.emit)

	if !near(g[15][10], 0.5) {
		t.Errorf("left column: got %g, want 0.5", g[15][10])
	}
	if !near(g[20][15], 0.25) {
		t.Errorf("bottom row: got %g, want 0.25", g[20][15])
	}
	if !near(g[20][10], 0.125) {
		t.Errorf("corner: got %g, want 0.125", g[20][10])
	}
}

func TestFillArea(t *testing.T) {
	tri := polygon(vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 29, Y: 7}, vec.Vec2{X: 11, Y: 30})
	r := newTestRasteriser()
	var g grid
	r.FillNonZero(tri, g.emit)

	if got := g.total(); math.Abs(got-344) > 0.01 {
		t.Errorf("total coverage %g, want 344", got)
	}
}

func TestFillRules(t *testing.T) {
	outer := box(4, 4, 28, 28)
	inner := box(12, 12, 20, 20)
	p := &path.Data{
		Cmds:   append(append([]path.Command{}, outer.Cmds...), inner.Cmds...),
		Coords: append(append([]vec.Vec2{}, outer.Coords...), inner.Coords...),
	}

	r := newTestRasteriser()
	var nz, eo grid
	r.FillNonZero(p, nz.emit)
	r.FillEvenOdd(p, eo.emit)

	if !near(nz[16][16], 1) {
		t.Errorf("nonzero: centre coverage %g", nz[16][16])
	}
	if !near(eo[16][16], 0) {
		t.Errorf("even-odd: centre coverage %g", eo[16][16])
	}
	if !near(eo[6][6], 1) {
		t.Errorf("even-odd: ring coverage %g", eo[6][6])
	}
}

func TestFillClip(t *testing.T) {
	r := newTestRasteriser()
	var g grid
	r.FillNonZero(box(-10, -10, 100, 5), g.emit)
	for x := range size {
		if !near(g[4][x], 1) || !near(g[5][x], 0) {
			t.Fatalf("column %d: got %g, %g", x, g[4][x], g[5][x])
		}
	}
}

func TestCTM(t *testing.T) {
	r := newTestRasteriser()
	r.CTM = matrix.Matrix{2, 0, 0, -2, 0, size}
	var g grid
	r.FillNonZero(box(5, 5, 10, 10), g.emit)

	// user space y = 5..10 maps to device rows 12..22
	if !near(g[15][15], 1) || !near(g[11][15], 0) || !near(g[22][15], 0) {
		t.Errorf("unexpected coverage: %g %g %g", g[15][15], g[11][15], g[22][15])
	}
	if got := g.total(); math.Abs(got-100) > 1e-3 {
		t.Errorf("total coverage %g, want 100", got)
	}

	r.Reset(rect.Rect{URx: size, URy: size})
	if r.CTM != matrix.Identity || r.Width != 1 || r.Dash != nil {
		t.Error("Reset did not restore the defaults")
	}
}

func TestCurve(t *testing.T) {
	// a circle of radius 10 built from four cubic arcs
	const k = 0.5522847498 * 10
	c := vec.Vec2{X: 16, Y: 16}
	p := (&path.Data{}).
		MoveTo(c.Add(vec.Vec2{X: 10})).
		CubeTo(c.Add(vec.Vec2{X: 10, Y: k}), c.Add(vec.Vec2{X: k, Y: 10}), c.Add(vec.Vec2{Y: 10})).
		CubeTo(c.Add(vec.Vec2{X: -k, Y: 10}), c.Add(vec.Vec2{X: -10, Y: k}), c.Add(vec.Vec2{X: -10})).
		CubeTo(c.Add(vec.Vec2{X: -10, Y: -k}), c.Add(vec.Vec2{X: -k, Y: -10}), c.Add(vec.Vec2{Y: -10})).
		CubeTo(c.Add(vec.Vec2{X: k, Y: -10}), c.Add(vec.Vec2{X: 10, Y: -k}), c.Add(vec.Vec2{X: 10})).
		Close()

	r := newTestRasteriser()
	r.Flatness = 0.01
	var g grid
	r.FillNonZero(p, g.emit)
	if got := g.total(); math.Abs(got-100*math.Pi) > 1 {
		t.Errorf("circle area %g, want %g", got, 100*math.Pi)
	}
}

func line(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).MoveTo(vec.Vec2{X: x0, Y: y0}).LineTo(vec.Vec2{X: x1, Y: y1})
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{graphics.LineCapButt, 96 - 1e-3, 96 + 1e-3},
		{graphics.LineCapSquare, 112 - 1e-3, 112 + 1e-3},
		{graphics.LineCapRound, 106, 109},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := newTestRasteriser()
			r.Width = 4
			r.Cap = tc.cap
			var g grid
			r.Stroke(line(4, 16, 28, 16), g.emit)

			if got := g.total(); got < tc.min || got > tc.max {
				t.Errorf("stroke area %g, want in [%g, %g]", got, tc.min, tc.max)
			}
			if !near(g[15][10], 1) || !near(g[18][10], 0) {
				t.Errorf("unexpected coverage %g %g", g[15][10], g[18][10])
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	square := box(8, 8, 24, 24)
	cases := []struct {
		join     graphics.LineJoinStyle
		min, max float32
	}{
		{graphics.LineJoinMiter, 1 - 1e-4, 1 + 1e-4},
		{graphics.LineJoinBevel, 0.5 - 1e-4, 0.5 + 1e-4},
		{graphics.LineJoinRound, 0.7, 0.8},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			r := newTestRasteriser()
			r.Width = 2
			r.Join = tc.join
			var g grid
			r.Stroke(square, g.emit)

			corner := g[7][7]
			if corner < tc.min || corner > tc.max {
				t.Errorf("corner coverage %g, want in [%g, %g]", corner, tc.min, tc.max)
			}
			if !near(g[8][16], 1) || !near(g[16][16], 0) {
				t.Errorf("unexpected coverage %g %g", g[8][16], g[16][16])
			}
		})
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	r := newTestRasteriser()
	r.Width = 2
	r.MiterLimit = 1.2
	var g grid
	r.Stroke(box(8, 8, 24, 24), g.emit)
	if !near(g[7][7], 0.5) {
		t.Errorf("corner coverage %g, want bevel", g[7][7])
	}
}

func TestStrokeDash(t *testing.T) {
	r := newTestRasteriser()
	r.Width = 2
	r.Dash = []float64{4, 4}
	var g grid
	r.Stroke(line(0, 16, 32, 16), g.emit)

	for x := range size {
		want := float32(0)
		if (x/4)%2 == 0 {
			want = 1
		}
		if !near(g[15][x], want) {
			t.Errorf("pixel %d: got %g, want %g", x, g[15][x], want)
		}
	}

	r.DashPhase = 2
	g = grid{}
	r.Stroke(line(0, 16, 32, 16), g.emit)
	if !near(g[15][0], 1) || !near(g[15][2], 0) || !near(g[15][6], 1) {
		t.Errorf("phase: got %g %g %g", g[15][0], g[15][2], g[15][6])
	}
}

func TestStrokeDot(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 16, Y: 16}).LineTo(vec.Vec2{X: 16, Y: 16})

	r := newTestRasteriser()
	r.Width = 4
	var g grid
	r.Stroke(p, g.emit)
	if g.total() != 0 {
		t.Error("butt caps must not draw a dot")
	}

	r.Cap = graphics.LineCapSquare
	r.Stroke(p, g.emit)
	if got := g.total(); math.Abs(got-16) > 1e-3 {
		t.Errorf("square dot area %g, want 16", got)
	}
}
