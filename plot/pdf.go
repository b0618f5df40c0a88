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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// PointsPerUnit is the PDF scale: one user space unit (cm) in PDF points.
const PointsPerUnit = 72 / 2.54

const pdfMargin = 36 // points

// WritePDF writes the item outlines of f to a single page PDF file, at
// true size.  Colours are converted to grey levels; dashed items keep
// their dash pattern, scaled from pixels to points.
func (f *Figure) WritePDF(fileName string) error {
	b, err := f.Bounds()
	if err != nil {
		return err
	}
	s := PointsPerUnit
	paper := &pdf.Rectangle{
		URx: (b.URx-b.LLx)*s + 2*pdfMargin,
		URy: (b.URy-b.LLy)*s + 2*pdfMargin,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Matrix{s, 0, 0, s, pdfMargin - s*b.LLx, pdfMargin - s*b.LLy})
	draw := func(p *path.Data) {
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapRound)

	if f.Grid > 0 {
		page.SetLineWidth(0.25 / s)
		page.SetStrokeColor(pdfcolor.DeviceGray(0.85))
		draw(gridPath(b, f.Grid))
		page.Stroke()
	}

	// Solid outlines first, so that the dash pattern never needs to be
	// reset.
	page.SetLineWidth(1 / s)
	for _, it := range f.Items {
		if len(it.Dash) > 0 {
			continue
		}
		page.SetStrokeColor(pdfcolor.DeviceGray(grey(it.Color)))
		draw(it.Shape.Path())
		page.Stroke()
	}
	for _, it := range f.Items {
		if len(it.Dash) == 0 {
			continue
		}
		dash := make([]float64, len(it.Dash))
		for i, d := range it.Dash {
			dash[i] = d / s
		}
		page.SetLineDash(dash, 0)
		page.SetStrokeColor(pdfcolor.DeviceGray(grey(it.Color)))
		draw(it.Shape.Path())
		page.Stroke()
	}

	return page.Close()
}

// grey returns the luminance of c, between 0 and 1.
func grey(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
