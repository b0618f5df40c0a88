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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/knit"
)

// Item is one outline in a figure.
type Item struct {
	Label string
	Shape *knit.Shape
	Color color.NRGBA

	// Fill paints the inside of the shape with a translucent version of
	// Color, in addition to the outline.
	Fill bool

	// Dash is a dash pattern in pixels, or nil for a solid line.
	Dash []float64
}

// Figure is a plot of several outlines in a common coordinate system.
type Figure struct {
	Title  string
	Items  []Item
	Width  int // pixels
	Height int // pixels

	// Grid is the spacing of background grid lines, in user space units.
	// Zero disables the grid.
	Grid float64

	// LineWidth is the width of outlines in pixels.
	LineWidth float64
}

const (
	figureMargin = 24
	legendLine   = 16
)

var (
	background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	gridColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	textColor  = color.NRGBA{A: 255}
)

// Palette holds the colours used for garment panels, in order.
var Palette = []color.NRGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	{R: 0xd6, G: 0x27, B: 0x28, A: 255},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255},
	{R: 0x94, G: 0x67, B: 0xbd, A: 255},
}

// ErrEmptyFigure is returned when a figure has nothing to draw.
var ErrEmptyFigure = errors.New("figure has no items")

// Bounds returns the smallest rectangle containing all items.
func (f *Figure) Bounds() (rect.Rect, error) {
	if len(f.Items) == 0 {
		return rect.Rect{}, ErrEmptyFigure
	}
	b := f.Items[0].Shape.Bounds()
	for _, it := range f.Items[1:] {
		ib := it.Shape.Bounds()
		b.LLx = min(b.LLx, ib.LLx)
		b.LLy = min(b.LLy, ib.LLy)
		b.URx = max(b.URx, ib.URx)
		b.URy = max(b.URy, ib.URy)
	}
	return b, nil
}

// Transform returns the map from user space to pixel coordinates.  The
// items are scaled uniformly to fit the area below the legend, and the
// y-axis is flipped so that user space y grows upwards.
func (f *Figure) Transform() (matrix.Matrix, error) {
	b, err := f.Bounds()
	if err != nil {
		return matrix.Matrix{}, err
	}
	top := figureMargin + f.legendHeight()
	w := float64(f.Width - 2*figureMargin)
	h := float64(f.Height - top - figureMargin)
	if w <= 0 || h <= 0 {
		return matrix.Matrix{}, fmt.Errorf("figure size %dx%d too small", f.Width, f.Height)
	}
	dx, dy := b.URx-b.LLx, b.URy-b.LLy
	if dx <= 0 || dy <= 0 {
		return matrix.Matrix{}, ErrEmptyFigure
	}
	s := math.Min(w/dx, h/dy)

	// centre the drawing in the available area
	x0 := figureMargin + (w-s*dx)/2 - s*b.LLx
	y0 := float64(top) + (h-s*dy)/2 + s*b.URy
	return matrix.Matrix{s, 0, 0, -s, x0, y0}, nil
}

func (f *Figure) legendHeight() int {
	n := len(f.Items)
	if f.Title != "" {
		n++
	}
	return n * legendLine
}

// Render draws the figure.
func (f *Figure) Render() (*image.RGBA, error) {
	m, err := f.Transform()
	if err != nil {
		return nil, err
	}
	c := NewCanvas(f.Width, f.Height, background)
	scale := m[0]

	lw := f.LineWidth
	if lw <= 0 {
		lw = 1.5
	}

	if f.Grid > 0 {
		c.SetTransform(m)
		b, _ := f.Bounds()
		c.Stroke(gridPath(b, f.Grid), gridColor, 1/scale, nil)
	}

	c.SetTransform(m)
	for _, it := range f.Items {
		p := it.Shape.Path()
		if it.Fill {
			fill := it.Color
			fill.A = 48
			c.Fill(p, fill, false)
		}
		var dash []float64
		for _, d := range it.Dash {
			dash = append(dash, d/scale)
		}
		c.Stroke(p, it.Color, lw/scale, dash)
	}

	// legend, in pixel coordinates
	c.SetTransform(matrix.Identity)
	y := figureMargin
	if f.Title != "" {
		c.Label(figureMargin, y+10, f.Title, textColor)
		y += legendLine
	}
	for _, it := range f.Items {
		swatch := (&path.Data{}).
			MoveTo(vec.Vec2{X: figureMargin, Y: float64(y + 5)}).
			LineTo(vec.Vec2{X: figureMargin + 20, Y: float64(y + 5)})
		c.Stroke(swatch, it.Color, lw, it.Dash)
		c.Label(figureMargin+28, y+10, it.Label, textColor)
		y += legendLine
	}

	return c.Img, nil
}

// WritePNG renders the figure and writes it in PNG format.
func (f *Figure) WritePNG(w io.Writer) error {
	img, err := f.Render()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// gridPath returns grid lines at multiples of step covering b.
func gridPath(b rect.Rect, step float64) *path.Data {
	p := &path.Data{}
	x0 := math.Floor(b.LLx/step) * step
	y0 := math.Floor(b.LLy/step) * step
	for x := x0; x <= b.URx; x += step {
		p.MoveTo(vec.Vec2{X: x, Y: y0}).LineTo(vec.Vec2{X: x, Y: b.URy})
	}
	for y := y0; y <= b.URy; y += step {
		p.MoveTo(vec.Vec2{X: x0, Y: y}).LineTo(vec.Vec2{X: b.URx, Y: y})
	}
	return p
}

// GarmentFigure shows all panels of a garment on top of the body outline
// they were fitted to.
func GarmentFigure(g *knit.Garment, body knit.Landmarks) (*Figure, error) {
	outline, err := knit.BodyOutline(body)
	if err != nil {
		return nil, err
	}
	f := &Figure{
		Title:  fmt.Sprintf("%s for %s, %s", g.Style, g.Person, g.GaugeString()),
		Width:  640,
		Height: 800,
		Grid:   10,
		Items: []Item{{
			Label: "body",
			Shape: outline,
			Color: color.NRGBA{R: 96, G: 96, B: 96, A: 255},
			Dash:  []float64{6, 4},
		}},
	}
	for i, p := range g.Panels() {
		label := p.Name
		if p.Multiplicity > 1 {
			label = fmt.Sprintf("%s (x%d)", p.Name, p.Multiplicity)
		}
		f.Items = append(f.Items, Item{
			Label: label,
			Shape: p.Shape,
			Color: Palette[i%len(Palette)],
			Fill:  true,
		})
	}
	return f, nil
}
