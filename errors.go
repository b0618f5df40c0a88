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
	"fmt"
)

// ErrOutOfRange is returned by [Segment.XIntercept] when the requested
// height lies outside the y-range of the segment.
var ErrOutOfRange = errors.New("height outside segment range")

// GeometryError reports a scan line which cannot be resolved into pairs of
// needle boundaries.  This always indicates an ill-formed panel outline.
type GeometryError struct {
	Panel     string
	Row       int
	Height    float64
	Crossings int // number of outline crossings found on the row
	Reason    string
}

func (e *GeometryError) Error() string {
	panel := e.Panel
	if panel == "" {
		panel = "panel"
	}
	return fmt.Sprintf("%s: row %d (height %g): %s (%d crossings)",
		panel, e.Row, e.Height, e.Reason, e.Crossings)
}

// ConfigurationError reports invalid input data, for example a landmark
// which is referenced by an ease list but missing from the landmark set.
type ConfigurationError struct {
	Panel    string
	Landmark string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Landmark != "" {
		msg = fmt.Sprintf("landmark %q: %s", e.Landmark, msg)
	}
	if e.Panel != "" {
		msg = e.Panel + ": " + msg
	}
	return msg
}

// DegenerateShapeError is returned when a polygon has too few points or
// encloses no area.
type DegenerateShapeError struct {
	Points int
	Reason string
}

func (e *DegenerateShapeError) Error() string {
	return fmt.Sprintf("degenerate shape with %d points: %s", e.Points, e.Reason)
}
