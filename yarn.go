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

// YarnPerStitch estimates the yarn used by one stitch, in metres, as the
// perimeter of a stitch-sized rectangle.  Distances are assumed to be in
// centimetres.
func YarnPerStitch(g Gauge) float64 {
	return (g.StitchWidth() + g.RowHeight()) * 2 / 100
}

// EstimateYarn returns the yarn needed to knit the given number of copies of
// a chart, in metres.
func EstimateYarn(c *Chart, multiplicity int) float64 {
	return YarnPerStitch(c.Gauge) * float64(c.InWork()) * float64(multiplicity)
}
