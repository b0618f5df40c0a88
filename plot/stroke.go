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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polyline is a flattened subpath in user space.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// Stroke computes the coverage of the outline of p, using the current line
// width, caps, joins and dash pattern.  Coverage is reported as for
// [Rasteriser.FillNonZero].
//
// The outline is built as a union of simple pieces: one quadrilateral per
// segment, plus separate polygons for joins and caps.  All pieces are
// oriented the same way, so that the nonzero rule yields their union.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]

	for _, pl := range r.subpaths(p) {
		if len(r.Dash) > 0 {
			for _, piece := range dashPolyline(pl, r.Dash, r.DashPhase) {
				r.strokePolyline(piece)
			}
		} else {
			r.strokePolyline(pl)
		}
	}

	r.edges = r.edges[:0]
	for k, start := range r.outlineStart {
		end := len(r.outline)
		if k+1 < len(r.outlineStart) {
			end = r.outlineStart[k+1]
		}
		poly := r.outline[start:end]
		for i := range poly {
			r.addLine(poly[i], poly[(i+1)%len(poly)])
		}
	}
	r.scan(false, emit)
}

// subpaths flattens p into polylines, dropping repeated points.  Subpaths
// which consist of a single MoveTo are omitted.
func (r *Rasteriser) subpaths(p *path.Data) []polyline {
	var res []polyline
	var drawn []bool
	cur := -1
	begin := func(start vec.Vec2) {
		res = append(res, polyline{pts: []vec.Vec2{start}})
		drawn = append(drawn, false)
		cur = len(res) - 1
	}
	last := func() vec.Vec2 {
		if cur < 0 {
			begin(vec.Vec2{})
		}
		return res[cur].pts[len(res[cur].pts)-1]
	}
	add := func(_, b vec.Vec2) {
		if last() != b {
			res[cur].pts = append(res[cur].pts, b)
		}
		drawn[cur] = true
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			begin(p.Coords[i])
			i++
		case path.CmdLineTo:
			add(vec.Vec2{}, p.Coords[i])
			i++
		case path.CmdQuadTo:
			r.flatten(last(), p.Coords[i:i+2], add)
			i += 2
		case path.CmdCubeTo:
			r.flatten(last(), p.Coords[i:i+3], add)
			i += 3
		case path.CmdClose:
			if cur < 0 || res[cur].closed {
				continue
			}
			pts := res[cur].pts
			if n := len(pts); n > 1 && pts[n-1] == pts[0] {
				res[cur].pts = pts[:n-1]
			}
			res[cur].closed = true
			begin(pts[0])
		}
	}

	out := res[:0]
	for k, pl := range res {
		if drawn[k] {
			out = append(out, pl)
		}
	}
	return out
}

// dashPolyline cuts pl into the "on" pieces of a dash pattern.
func dashPolyline(pl polyline, dash []float64, phase float64) []polyline {
	var total float64
	for _, d := range dash {
		total += d
	}
	if len(dash)%2 == 1 {
		total *= 2
	}
	if total <= 0 {
		return []polyline{pl}
	}

	pts := pl.pts
	if pl.closed && len(pts) > 1 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}

	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= dash[idx%len(dash)] {
		phase -= dash[idx%len(dash)]
		idx++
	}
	left := dash[idx%len(dash)] - phase
	on := idx%2 == 0

	var res []polyline
	var cur []vec.Vec2
	if on {
		cur = []vec.Vec2{pts[0]}
	}
	for k := 1; k < len(pts); k++ {
		a, b := pts[k-1], pts[k]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > left {
			pos += left
			q := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				res = append(res, polyline{pts: append(cur, q)})
				cur = nil
			} else {
				cur = []vec.Vec2{q}
			}
			on = !on
			idx++
			left = dash[idx%len(dash)]
		}
		left -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 0 {
		res = append(res, polyline{pts: cur})
	}
	return res
}

// strokePolyline adds the outline pieces for one polyline.
func (r *Rasteriser) strokePolyline(pl polyline) {
	d := r.Width / 2
	pts := pl.pts
	n := len(pts)

	if n == 1 {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], d)
		case graphics.LineCapSquare:
			r.addPolygon(
				pts[0].Add(vec.Vec2{X: -d, Y: -d}), pts[0].Add(vec.Vec2{X: d, Y: -d}),
				pts[0].Add(vec.Vec2{X: d, Y: d}), pts[0].Add(vec.Vec2{X: -d, Y: d}))
		}
		return
	}

	segs := n - 1
	if pl.closed && n > 2 {
		segs = n
	}
	for k := range segs {
		a, b := pts[k], pts[(k+1)%n]
		t := unit(b.Sub(a))
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	// joins at interior vertices, and at the start of a closed polyline
	for k := range n {
		if !pl.closed || n == 2 {
			if k == 0 || k == n-1 {
				continue
			}
		}
		prev, next := pts[(k+n-1)%n], pts[(k+1)%n]
		r.addJoin(pts[k], unit(pts[k].Sub(prev)), unit(next.Sub(pts[k])), d)
	}

	if !pl.closed || n == 2 {
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// addJoin covers the wedge between two consecutive segments meeting at p,
// with incoming direction t1 and outgoing direction t2.
func (r *Rasteriser) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < 1e-9 && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// offsets on the outer side of the turn
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	a, b := p.Add(n1.Mul(d)), p.Add(n2.Mul(d))

	if r.Join == graphics.LineJoinMiter {
		sum := n1.Add(n2)
		l := sum.Length()
		if l > 1e-9 && 2/l <= r.MiterLimit {
			tip := p.Add(sum.Mul(2 * d / (l * l)))
			r.addPolygon(p, a, tip, b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addCap adds the cap at the end point p of a line, where t points away
// from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		ext := t.Mul(d)
		r.addPolygon(p.Add(nrm), p.Add(nrm).Add(ext), p.Sub(nrm).Add(ext), p.Sub(nrm))
	}
}

// addDisc adds a regular polygon approximating a circle.  The number of
// corners is chosen so that the error in device space stays below the
// flatness.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	dev := radius * r.scale()
	n := 8
	if dev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/dev)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	n = min(n, 512)

	pts := make([]vec.Vec2, n)
	for k := range pts {
		phi := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = c.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(radius))
	}
	r.addPolygon(pts...)
}

// addPolygon stores a counter-clockwise copy of the polygon.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) < 1e-15 {
		return
	}
	r.outlineStart = append(r.outlineStart, len(r.outline))
	if area > 0 {
		r.outline = append(r.outline, pts...)
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		r.outline = append(r.outline, pts[i])
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return v.Mul(1 / l)
}
