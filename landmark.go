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
	"cmp"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Landmark is one body measurement.
type Landmark struct {
	// Meas is the measured length.  For circumferential landmarks this is
	// the full circumference, otherwise a straight span such as the width
	// across the chest.
	Meas float64 `json:"meas" yaml:"meas"`

	// Height is the vertical position of the measurement.
	Height float64 `json:"height" yaml:"height"`

	// Circumferential is true for measurements taken around the body.
	Circumferential bool `json:"circumferential" yaml:"circumferential"`
}

// halfWidth returns the horizontal distance of the landmark point from the
// centre line.  Circumferences are halved (front or back) and then halved
// again (left or right); straight spans are halved once.
func (l Landmark) halfWidth() float64 {
	if l.Circumferential {
		return l.Meas / 4
	}
	return l.Meas / 2
}

// Landmarks maps landmark names to body measurements.
type Landmarks map[string]Landmark

// Interpolate returns a copy of l with an additional circumferential
// landmark at the given height.  The measurement is interpolated linearly
// between the nearest circumferential landmarks below and above.
func (l Landmarks) Interpolate(name string, height float64) (Landmarks, error) {
	var below, above *Landmark
	for _, key := range slices.Sorted(maps.Keys(l)) {
		lm := l[key]
		if !lm.Circumferential {
			continue
		}
		if lm.Height <= height && (below == nil || lm.Height > below.Height) {
			below = &lm
		}
		if lm.Height >= height && (above == nil || lm.Height < above.Height) {
			above = &lm
		}
	}
	if below == nil || above == nil {
		return nil, &ConfigurationError{
			Landmark: name,
			Reason:   fmt.Sprintf("height %g outside the measured range", height),
		}
	}

	meas := below.Meas
	if above.Height > below.Height {
		t := (height - below.Height) / (above.Height - below.Height)
		meas = below.Meas + t*(above.Meas-below.Meas)
	}

	res := maps.Clone(l)
	res[name] = Landmark{Meas: meas, Height: height, Circumferential: true}
	return res, nil
}

// EaseEntry gives the ease, in percent, applied to one landmark.
type EaseEntry struct {
	Landmark string  `json:"landmark" yaml:"landmark" mapstructure:"landmark"`
	Percent  float64 `json:"percent" yaml:"percent" mapstructure:"percent"`
}

// Ease lists the landmarks of a panel, from the bottom of the left side
// upwards, together with the ease for each.
type Ease []EaseEntry

// BuildPanel constructs the outline of a pattern panel.  The left side is
// laid down in the order of the ease list, then the right side is added
// in reverse order, mirrored about the vertical centre line.  Each point
// is moved outwards by its ease percentage.
func BuildPanel(landmarks Landmarks, ease Ease) (*Shape, error) {
	if len(ease) == 0 {
		return nil, &ConfigurationError{Reason: "empty ease list"}
	}

	points := make([]vec.Vec2, 0, 2*len(ease))
	for _, e := range ease {
		lm, ok := landmarks[e.Landmark]
		if !ok {
			return nil, &ConfigurationError{
				Landmark: e.Landmark,
				Reason:   "not in landmark set",
			}
		}
		w := lm.halfWidth() * (1 + e.Percent/100)
		points = append(points, vec.Vec2{X: -w, Y: lm.Height})
	}
	for i := len(ease) - 1; i >= 0; i-- {
		p := points[i]
		points = append(points, vec.Vec2{X: -p.X, Y: p.Y})
	}

	return NewShape(points)
}

// The neck landmarks are placed separately in the body outline.
const (
	FrontNeck = "frontNeck"
	BackNeck  = "backNeck"
)

// BodyOutline constructs the silhouette of the body described by the
// landmarks, for use in plots.  All landmarks apart from the neck are
// sorted by height; the outline runs up the left side, across the neck
// opening and back down the right side.
func BodyOutline(landmarks Landmarks) (*Shape, error) {
	front, ok := landmarks[FrontNeck]
	if !ok {
		return nil, &ConfigurationError{Landmark: FrontNeck, Reason: "not in landmark set"}
	}
	back, ok := landmarks[BackNeck]
	if !ok {
		return nil, &ConfigurationError{Landmark: BackNeck, Reason: "not in landmark set"}
	}

	var names []string
	for name := range landmarks {
		if name != FrontNeck && name != BackNeck {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(landmarks[a].Height, landmarks[b].Height); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	points := make([]vec.Vec2, 0, 2*len(names)+4)
	for _, name := range names {
		lm := landmarks[name]
		points = append(points, vec.Vec2{X: -lm.halfWidth(), Y: lm.Height})
	}
	points = append(points,
		vec.Vec2{X: -back.halfWidth(), Y: back.Height},
		vec.Vec2{X: 0, Y: back.Height},
		vec.Vec2{X: 0, Y: front.Height},
		vec.Vec2{X: front.Meas / 6, Y: front.Height},
	)
	for _, name := range slices.Backward(names) {
		lm := landmarks[name]
		points = append(points, vec.Vec2{X: lm.halfWidth(), Y: lm.Height})
	}

	return NewShape(points)
}
