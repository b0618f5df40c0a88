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

// Package plot draws garment panels, body outlines and needle charts.
//
// Drawing is done by a small anti-aliasing scan-line rasteriser which
// computes the exact area coverage of every pixel.  Figures can be written
// as PNG images or as single page PDF files.
package plot

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes pixel coverage for filled and stroked paths.
// A Rasteriser can be reused for many paths; internal buffers are kept
// between calls.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the device space output region.  The coordinates must be
	// integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the line width for strokes, in user space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash gives alternating lengths of dashes and gaps, in user space
	// units.  Nil draws solid lines.
	Dash      []float64
	DashPhase float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// polygons built by the stroker, all in user space
	outline      []vec.Vec2
	outlineStart []int
}

// NewRasteriser returns a rasteriser with the identity transformation and
// default stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]
}

const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	// edges with a smaller vertical extent do not contribute coverage
	flatEdge = 1e-10
)

// FillNonZero computes the coverage of p under the nonzero winding rule.
// emit is called once per pixel row which has non-zero coverage, in order
// of increasing y.  The coverage slice is reused after emit returns.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.addPath(p)
	r.scan(false, emit)
}

// FillEvenOdd is like [Rasteriser.FillNonZero], but uses the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.addPath(p)
	r.scan(true, emit)
}

func (r *Rasteriser) toDevice(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// scale returns the factor by which the CTM changes lengths, on average.
func (r *Rasteriser) scale() float64 {
	m := r.CTM
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// addPath converts all subpaths of p into edges.  Every subpath is
// implicitly closed.
func (r *Rasteriser) addPath(p *path.Data) {
	var cur, start vec.Vec2
	open := false
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.addLine(cur, start)
			}
			cur, start = p.Coords[i], p.Coords[i]
			open = true
			i++
		case path.CmdLineTo:
			r.addLine(cur, p.Coords[i])
			cur = p.Coords[i]
			i++
		case path.CmdQuadTo:
			r.flatten(cur, p.Coords[i:i+2], r.addLine)
			cur = p.Coords[i+1]
			i += 2
		case path.CmdCubeTo:
			r.flatten(cur, p.Coords[i:i+3], r.addLine)
			cur = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			r.addLine(cur, start)
			cur = start
			open = false
		}
	}
	if open {
		r.addLine(cur, start)
	}
}

// flatten approximates a Bézier curve starting at p0 with the given control
// points by line segments.  The number of segments is chosen from the
// second differences of the control polygon in device space.
func (r *Rasteriser) flatten(p0 vec.Vec2, ctrl []vec.Vec2, line func(a, b vec.Vec2)) {
	pts := append([]vec.Vec2{p0}, ctrl...)
	var dev float64
	for k := 0; k+2 < len(pts); k++ {
		d := pts[k].Sub(pts[k+1].Mul(2)).Add(pts[k+2])
		dev = max(dev, d.Length())
	}
	dev *= r.scale()
	deg := float64(len(pts) - 1)
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(deg*(deg-1)*dev/(8*r.Flatness)))))
	}

	prev := p0
	for k := 1; k <= n; k++ {
		next := bezier(pts, float64(k)/float64(n))
		line(prev, next)
		prev = next
	}
}

// bezier evaluates a Bézier curve using de Casteljau's algorithm.
func bezier(pts []vec.Vec2, t float64) vec.Vec2 {
	var buf [4]vec.Vec2
	q := buf[:copy(buf[:], pts)]
	for len(q) > 1 {
		for k := range len(q) - 1 {
			q[k] = q[k].Mul(1 - t).Add(q[k+1].Mul(t))
		}
		q = q[:len(q)-1]
	}
	return q[0]
}

// addLine adds the user space segment from a to b to the edge list.
func (r *Rasteriser) addLine(a, b vec.Vec2) {
	p, q := r.toDevice(a), r.toDevice(b)
	dy := q.Y - p.Y
	if math.Abs(dy) < flatEdge {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})
}

// scan sweeps the edge list from top to bottom.  For every pixel the
// signed area to the right of each edge is accumulated in two parts: area
// holds the contribution inside the pixel where the edge passes, cover the
// amount which carries over to all pixels further right.
func (r *Rasteriser) scan(evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin, xMax := int(r.Clip.LLx), int(r.Clip.URx)
	yMin, yMax := int(r.Clip.LLy), int(r.Clip.URy)
	top, bottom := math.Inf(1), math.Inf(-1)
	left := math.Inf(1)
	right := math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		top = min(top, e.yMin())
		bottom = max(bottom, e.yMax())
		left = min(left, e.x0, e.x1)
		right = max(right, e.x0, e.x1)
	}
	xMin = max(xMin, int(math.Floor(left)))
	xMax = min(xMax, int(math.Floor(right))+1)
	yMin = max(yMin, int(math.Floor(top)))
	yMax = min(yMax, int(math.Ceil(bottom)))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}

		k := 0
		for _, idx := range r.active {
			if r.edges[idx].yMax() > yTop {
				r.active[k] = idx
				k++
			}
		}
		r.active = r.active[:k]
		if k == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], yTop, yBot, xMin, xMax)
		}

		coverage := r.resolve(evenOdd)
		lo, hi := 0, len(coverage)
		for lo < hi && coverage[lo] == 0 {
			lo++
		}
		for hi > lo && coverage[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, xMin+lo, coverage[lo:hi])
		}
	}
}

// accumulate adds the part of e between heights yTop and yBot to the
// cover and area buffers of the current row.
func (r *Rasteriser) accumulate(e *edge, yTop, yBot float64, xMin, xMax int) {
	yTop = max(yTop, e.yMin())
	yBot = min(yBot, e.yMax())
	if yBot <= yTop {
		return
	}
	var sign float32 = 1
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	col := int(math.Floor(xa))
	last := int(math.Floor(xb))
	step := 1
	if last < col {
		step = -1
	}

	// Walk through the pixel columns crossed by the edge.  y0 is the
	// height where the edge enters the current column.
	y0 := yTop
	for {
		y1 := yBot
		if col != last {
			bx := float64(col)
			if step > 0 {
				bx++
			}
			y1 = yTop + (bx-xa)/(xb-xa)*(yBot-yTop)
			y1 = min(max(y1, y0), yBot)
		}
		r.deposit(col, sign*float32(y1-y0), e.xAt((y0+y1)/2), xMin, xMax)
		if col == last {
			break
		}
		col += step
		y0 = y1
	}
}

// deposit records a vertical extent dy of an edge inside pixel column col,
// with x the mean horizontal position of the edge within the column.
func (r *Rasteriser) deposit(col int, dy float32, x float64, xMin, xMax int) {
	if dy == 0 || col >= xMax {
		return
	}
	if col < xMin {
		r.cover[0] += dy
		r.area[0] += dy
		return
	}
	frac := float32(x - float64(col))
	i := col - xMin
	r.cover[i] += dy
	r.area[i] += dy * (1 - frac)
}

// resolve integrates the buffers along the row and applies the fill rule.
// The result is stored in the cover buffer.
func (r *Rasteriser) resolve(evenOdd bool) []float32 {
	var acc float32
	for i, c := range r.cover {
		w := acc + r.area[i]
		acc += c
		if w < 0 {
			w = -w
		}
		if evenOdd {
			w = float32(math.Mod(float64(w), 2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		r.cover[i] = w
	}
	return r.cover
}
