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

package knit

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// minArea is the smallest absolute enclosed area accepted by [NewShape].
const minArea = 1e-12

// Shape is a simple closed polygon.  The last point implicitly connects back
// to the first one.  Garment panels and body outlines are both shapes; they
// only differ in how their points are constructed.
//
// A Shape is immutable once created.
type Shape struct {
	points []vec.Vec2
}

// NewShape creates a closed polygon from the given points.  The points are
// copied.  At least three points are required, and the polygon must enclose
// a non-zero area.
func NewShape(points []vec.Vec2) (*Shape, error) {
	if len(points) < 3 {
		return nil, &DegenerateShapeError{
			Points: len(points),
			Reason: "at least 3 points are required",
		}
	}
	s := &Shape{points: slices.Clone(points)}
	if a := s.Area(); math.IsNaN(a) || math.Abs(a) < minArea {
		return nil, &DegenerateShapeError{
			Points: len(points),
			Reason: "polygon encloses no area",
		}
	}
	return s, nil
}

// Points returns a copy of the outline points, without repeating the first
// point at the end.
func (s *Shape) Points() []vec.Vec2 {
	return slices.Clone(s.points)
}

// Len returns the number of outline points.
func (s *Shape) Len() int {
	return len(s.points)
}

// XValues returns the x coordinates of the outline, with the first point
// repeated at the end to close the polygon.
func (s *Shape) XValues() []float64 {
	res := make([]float64, 0, len(s.points)+1)
	for _, p := range s.points {
		res = append(res, p.X)
	}
	return append(res, s.points[0].X)
}

// YValues returns the y coordinates of the outline, with the first point
// repeated at the end to close the polygon.
func (s *Shape) YValues() []float64 {
	res := make([]float64, 0, len(s.points)+1)
	for _, p := range s.points {
		res = append(res, p.Y)
	}
	return append(res, s.points[0].Y)
}

// Segments returns the edges of the polygon: one segment for each pair of
// consecutive points, followed by the closing segment from the last point
// back to the first.
func (s *Shape) Segments() []Segment {
	n := len(s.points)
	res := make([]Segment, n)
	for i := range n - 1 {
		res[i] = Segment{A: s.points[i], B: s.points[i+1]}
	}
	res[n-1] = Segment{A: s.points[n-1], B: s.points[0]}
	return res
}

// Bounds returns the axis-aligned bounding box of the outline.
func (s *Shape) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: s.points[0].X, LLy: s.points[0].Y,
		URx: s.points[0].X, URy: s.points[0].Y,
	}
	for _, p := range s.points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Area returns the signed area enclosed by the outline.  The result is
// positive for counter-clockwise point order.
func (s *Shape) Area() float64 {
	var sum float64
	n := len(s.points)
	for i, p := range s.points {
		q := s.points[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Path returns the outline as a closed path, for drawing.
func (s *Shape) Path() *path.Data {
	p := (&path.Data{}).MoveTo(s.points[0])
	for _, pt := range s.points[1:] {
		p = p.LineTo(pt)
	}
	return p.Close()
}
