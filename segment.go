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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Segment is a directed line segment between two outline points.
type Segment struct {
	A, B vec.Vec2
}

// YRange returns the lowest and highest y value of the segment.
func (s Segment) YRange() (lo, hi float64) {
	return min(s.A.Y, s.B.Y), max(s.A.Y, s.B.Y)
}

// IsHorizontal reports whether both end points have the same height.
func (s Segment) IsHorizontal() bool {
	return s.A.Y == s.B.Y
}

// ContainsY reports whether y lies in the closed y-range of the segment.
func (s Segment) ContainsY(y float64) bool {
	lo, hi := s.YRange()
	return !(y < lo || y > hi)
}

// XIntercept returns the x coordinate where the horizontal line at height y
// crosses the segment.  The interpolation always runs from the lower end
// point to the upper one, so the result does not depend on the direction of
// the segment.  At the end point heights the end point x values are returned
// exactly.  For a horizontal segment the x value of A is returned.
//
// If y is outside the y-range of the segment, an error wrapping
// [ErrOutOfRange] is returned.
func (s Segment) XIntercept(y float64) (float64, error) {
	if !s.ContainsY(y) {
		return 0, fmt.Errorf("x intercept at %g: %w", y, ErrOutOfRange)
	}

	lo, hi := s.A, s.B
	if lo.Y > hi.Y {
		lo, hi = hi, lo
	}
	switch {
	case s.A.Y == s.B.Y:
		return s.A.X, nil
	case y == lo.Y:
		return lo.X, nil
	case y == hi.Y:
		return hi.X, nil
	}

	t := (y - lo.Y) / (hi.Y - lo.Y)
	return lo.X + t*(hi.X-lo.X), nil
}
