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
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/knit"
)

// Colours of the cells in a stitch map.
var (
	OutOfWorkColor = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	WorkingColor   = color.NRGBA{R: 40, G: 70, B: 140, A: 255}
	HeldColor      = color.NRGBA{R: 230, G: 150, B: 30, A: 255}
	MarkerColor    = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// StitchCells returns an image with one pixel per needle and row.  Row 0
// is at the bottom, the leftmost needle of the chart at the left.  Working
// needles on cast-on, hem, split and cast-off rows are drawn in
// MarkerColor.
func StitchCells(c *knit.Chart) *image.NRGBA {
	w := c.MaxNeedle - c.MinNeedle + 1
	h := len(c.Rows)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range c.Rows {
		row := &c.Rows[i]
		y := h - 1 - i
		marked := row.Kind != knit.Regular
		for x := range w {
			var col color.NRGBA
			switch row.State(c.MinNeedle + x) {
			case knit.Working:
				col = WorkingColor
				if marked {
					col = MarkerColor
				}
			case knit.Held:
				col = HeldColor
			default:
				col = OutOfWorkColor
			}
			img.SetNRGBA(x, y, col)
		}
	}
	return img
}

// StitchMap returns the stitch cells of c scaled up so that every needle
// is cellW pixels wide and every row cellH pixels high.
func StitchMap(c *knit.Chart, cellW, cellH int) *image.NRGBA {
	src := StitchCells(c)
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*max(cellW, 1), b.Dy()*max(cellH, 1)))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// WriteStitchMap writes the stitch map of c in PNG format.  The cell size
// is chosen to give roughly the proportions of the knitted fabric.
func WriteStitchMap(w io.Writer, c *knit.Chart) error {
	cellH := 2
	cellW := max(1, int(2*c.Gauge.StitchWidth()/c.Gauge.RowHeight()+0.5))
	return png.Encode(w, StitchMap(c, cellW, cellH))
}
