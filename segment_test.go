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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestSegmentContainsY(t *testing.T) {
	segs := []Segment{
		{A: vec.Vec2{X: 1, Y: 2}, B: vec.Vec2{X: 5, Y: 10}},
		{A: vec.Vec2{X: 5, Y: 10}, B: vec.Vec2{X: 1, Y: 2}},
	}
	for _, s := range segs {
		for _, y := range []float64{2, 2.5, 6, 9.999, 10} {
			assert.True(t, s.ContainsY(y), "%v should contain %g", s, y)
		}
		for _, y := range []float64{1.999, -3, 10.001, 100} {
			assert.False(t, s.ContainsY(y), "%v should not contain %g", s, y)
		}
	}
}

func TestSegmentXIntercept(t *testing.T) {
	a := vec.Vec2{X: 0.1, Y: 0.3}
	b := vec.Vec2{X: 7.7, Y: 13.9}
	for _, s := range []Segment{{A: a, B: b}, {A: b, B: a}} {
		x, err := s.XIntercept(a.Y)
		require.NoError(t, err)
		assert.Equal(t, a.X, x)

		x, err = s.XIntercept(b.Y)
		require.NoError(t, err)
		assert.Equal(t, b.X, x)

		prev := a.X
		for i := 1; i < 100; i++ {
			y := a.Y + (b.Y-a.Y)*float64(i)/100
			x, err := s.XIntercept(y)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, x, prev)
			assert.LessOrEqual(t, x, b.X)
			prev = x
		}

		mid, err := s.XIntercept((a.Y + b.Y) / 2)
		require.NoError(t, err)
		assert.InDelta(t, (a.X+b.X)/2, mid, 1e-12)
	}
}

func TestSegmentXInterceptOutOfRange(t *testing.T) {
	s := Segment{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 1, Y: 1}}
	for _, y := range []float64{-0.5, 1.5} {
		_, err := s.XIntercept(y)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("XIntercept(%g): got %v, want ErrOutOfRange", y, err)
		}
	}
}

func TestSegmentHorizontal(t *testing.T) {
	s := Segment{A: vec.Vec2{X: 3, Y: 5}, B: vec.Vec2{X: -3, Y: 5}}
	require.True(t, s.IsHorizontal())
	x, err := s.XIntercept(5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, x)
}
