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

var testBody = Landmarks{
	"highHip":       {Meas: 98, Height: -12, Circumferential: true},
	"waist":         {Meas: 77, Height: 0, Circumferential: true},
	"fullBust":      {Meas: 97, Height: 19, Circumferential: true},
	"highBust":      {Meas: 90, Height: 29, Circumferential: true},
	"underArm1":     {Meas: 40, Height: 29, Circumferential: false},
	"outerShoulder": {Meas: 96, Height: 38, Circumferential: true},
	"shoulderNeck":  {Meas: 38, Height: 47, Circumferential: true},
	"frontNeck":     {Meas: 38, Height: 36, Circumferential: true},
	"backNeck":      {Meas: 38, Height: 44, Circumferential: true},
}

func TestBuildPanel(t *testing.T) {
	ease := Ease{
		{Landmark: "highHip", Percent: 10},
		{Landmark: "underArm1", Percent: 0},
		{Landmark: "outerShoulder", Percent: -50},
	}
	s, err := BuildPanel(testBody, ease)
	require.NoError(t, err)

	want := []vec.Vec2{
		{X: -26.95, Y: -12},
		{X: -20, Y: 29},
		{X: -12, Y: 38},
		{X: 12, Y: 38},
		{X: 20, Y: 29},
		{X: 26.95, Y: -12},
	}
	got := s.Points()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-12, "point %d", i)
		assert.Equal(t, want[i].Y, got[i].Y, "point %d", i)
	}
}

func TestBuildPanelSymmetric(t *testing.T) {
	ease := Ease{{"highHip", 0}, {"waist", 0}, {"fullBust", 0}, {"outerShoulder", 0}}
	s, err := BuildPanel(testBody, ease)
	require.NoError(t, err)
	pts := s.Points()
	n := len(pts)
	for i := range n / 2 {
		assert.Equal(t, -pts[i].X, pts[n-1-i].X)
		assert.Equal(t, pts[i].Y, pts[n-1-i].Y)
	}
}

func TestBuildPanelMissingLandmark(t *testing.T) {
	_, err := BuildPanel(testBody, Ease{{"highHip", 0}, {"elbow", 0}})
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "elbow", cfgErr.Landmark)

	_, err = BuildPanel(testBody, nil)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestBuildPanelDegenerate(t *testing.T) {
	// a single landmark gives a flat line
	_, err := BuildPanel(testBody, Ease{{"waist", 0}})
	var dErr *DegenerateShapeError
	assert.True(t, errors.As(err, &dErr), "got %v", err)
}

func TestBodyOutline(t *testing.T) {
	s, err := BodyOutline(testBody)
	require.NoError(t, err)
	pts := s.Points()
	require.Len(t, pts, 2*(len(testBody)-2)+4)

	// left side runs upwards
	for i := 1; i < len(testBody)-2; i++ {
		assert.GreaterOrEqual(t, pts[i].Y, pts[i-1].Y)
		assert.Less(t, pts[i].X, 0.0)
	}
	assert.Equal(t, vec.Vec2{X: 0, Y: 44}, pts[len(testBody)-1])
	assert.Equal(t, vec.Vec2{X: 0, Y: 36}, pts[len(testBody)])

	missing := Landmarks{"waist": testBody["waist"], "frontNeck": testBody["frontNeck"]}
	_, err = BodyOutline(missing)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, BackNeck, cfgErr.Landmark)
}

func TestInterpolate(t *testing.T) {
	lm, err := testBody.Interpolate("hem", -6)
	require.NoError(t, err)
	assert.InDelta(t, 87.5, lm["hem"].Meas, 1e-12)
	assert.True(t, lm["hem"].Circumferential)
	_, inBody := testBody["hem"]
	assert.False(t, inBody)

	lm, err = testBody.Interpolate("waist2", 0)
	require.NoError(t, err)
	assert.Equal(t, 77.0, lm["waist2"].Meas)

	_, err = testBody.Interpolate("floor", -100)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
