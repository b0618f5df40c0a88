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

import "fmt"

// Gauge is the knitting density: the number of stitches and rows in 10
// distance units of fabric.
type Gauge struct {
	Stitches float64
	Rows     float64
}

// Validate checks that both components of the gauge are positive.
func (g Gauge) Validate() error {
	if !(g.Stitches > 0) || !(g.Rows > 0) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("invalid gauge %g x %g: both components must be positive",
				g.Stitches, g.Rows),
		}
	}
	return nil
}

// StitchWidth returns the width of one stitch.
func (g Gauge) StitchWidth() float64 {
	return 10 / g.Stitches
}

// RowHeight returns the height of one row.
func (g Gauge) RowHeight() float64 {
	return 10 / g.Rows
}

func (g Gauge) String() string {
	return fmt.Sprintf("%g stitches and %g rows per 10 cm", g.Stitches, g.Rows)
}
