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
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Canvas is an RGBA image together with a rasteriser to draw on it.
type Canvas struct {
	Img *image.RGBA
	R   *Rasteriser
}

// NewCanvas allocates a canvas of the given size, filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{Img: img, R: NewRasteriser(clip)}
}

// SetTransform sets the map from user space to pixel coordinates.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.R.CTM = m
}

// Fill paints the inside of p.
func (c *Canvas) Fill(p *path.Data, col color.Color, evenOdd bool) {
	paint := c.painter(col)
	if evenOdd {
		c.R.FillEvenOdd(p, paint)
	} else {
		c.R.FillNonZero(p, paint)
	}
}

// Stroke paints the outline of p with the given line width and dash
// pattern.  Width and dash lengths are in user space units.
func (c *Canvas) Stroke(p *path.Data, col color.Color, width float64, dash []float64) {
	c.R.Width = width
	c.R.Dash = dash
	c.R.Stroke(p, c.painter(col))
	c.R.Dash = nil
}

// painter returns an emit function which composes col over the image,
// weighted by pixel coverage.
func (c *Canvas) painter(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA()
	return func(y, xMin int, coverage []float32) {
		row := c.Img.Pix[y*c.Img.Stride:]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			cov = min(cov, 1)
			keep := 1 - float32(sa)/0xffff*cov
			o := (xMin + i) * 4
			px := row[o : o+4 : o+4]
			px[0] = blend(px[0], sr, cov, keep)
			px[1] = blend(px[1], sg, cov, keep)
			px[2] = blend(px[2], sb, cov, keep)
			px[3] = blend(px[3], sa, cov, keep)
		}
	}
}

// blend composes a premultiplied 16-bit source channel, scaled by the
// coverage, over an 8-bit destination channel.
func blend(dst uint8, src uint32, cov, keep float32) uint8 {
	v := float32(src)/257*cov + float32(dst)*keep
	return uint8(min(max(v+0.5, 0), 255))
}

// Label draws a line of text with its baseline starting at pixel (x, y).
func (c *Canvas) Label(x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// TextWidth returns the width of text in pixels, as drawn by
// [Canvas.Label].
func TextWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
