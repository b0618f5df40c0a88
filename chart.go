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
	"math"
	"slices"
)

// RowKind classifies a row of a needle chart.
type RowKind int

// These are the row kinds used in a [Chart].
const (
	Regular RowKind = iota
	CastOn
	Hem
	Split
	CastOff
)

func (k RowKind) String() string {
	switch k {
	case Regular:
		return "regular"
	case CastOn:
		return "cast-on"
	case Hem:
		return "hem"
	case Split:
		return "split"
	case CastOff:
		return "cast-off"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// NeedleState describes the use of one machine needle in a row.
type NeedleState uint8

// These are the possible needle states.
const (
	OutOfWork NeedleState = iota
	Working               // knitted in the first (leftmost) region
	Held                  // part of a region which is put on hold
)

func (s NeedleState) String() string {
	switch s {
	case OutOfWork:
		return "out of work"
	case Working:
		return "working"
	case Held:
		return "held"
	default:
		return fmt.Sprintf("NeedleState(%d)", int(s))
	}
}

// Row is one row of a needle chart.
type Row struct {
	Index  int
	Height float64
	Kind   RowKind

	// Boundaries lists the first and last needle of every region of fabric
	// on this row, from left to right.  There are always two entries per
	// region.
	Boundaries []int

	// Needles gives the state of every needle in the chart's needle range,
	// starting at Chart.MinNeedle.
	Needles []NeedleState

	minNeedle int
}

// Count returns the number of region boundaries on the row.
func (r *Row) Count() int {
	return len(r.Boundaries)
}

// Leftmost returns the leftmost needle of the working region.
func (r *Row) Leftmost() int {
	return r.Boundaries[0]
}

// Rightmost returns the rightmost needle of the working region.
func (r *Row) Rightmost() int {
	return r.Boundaries[1]
}

// IsSplit reports whether the fabric on this row consists of more than one
// region.
func (r *Row) IsSplit() bool {
	return len(r.Boundaries) > 2
}

// Regions returns the needle intervals of the row as [first, last] pairs.
func (r *Row) Regions() [][2]int {
	res := make([][2]int, 0, len(r.Boundaries)/2)
	for i := 0; i+1 < len(r.Boundaries); i += 2 {
		res = append(res, [2]int{r.Boundaries[i], r.Boundaries[i+1]})
	}
	return res
}

// InWork returns the number of needles in work on this row, over all
// regions.
func (r *Row) InWork() int {
	n := 0
	for i := 0; i+1 < len(r.Boundaries); i += 2 {
		n += r.Boundaries[i+1] - r.Boundaries[i] + 1
	}
	return n
}

// State returns the state of the given needle.
func (r *Row) State(needle int) NeedleState {
	i := needle - r.minNeedle
	if i < 0 || i >= len(r.Needles) {
		return OutOfWork
	}
	return r.Needles[i]
}

// Chart is the needle chart of one panel at one gauge.  A chart is built
// once by [BuildChart] and is not modified afterwards.  If the shape or the
// gauge changes, a new chart must be built.
type Chart struct {
	Panel string
	Gauge Gauge

	// HemRow is the number of rows knitted for the hem.  Zero means that
	// the panel has no hem.
	HemRow int

	// TotalRows is the index of the last (cast-off) row.
	TotalRows int

	// MinNeedle and MaxNeedle give the range of needles used anywhere in
	// the chart.
	MinNeedle, MaxNeedle int

	Rows []Row
}

// InWork returns the total number of in-work needles, summed over all rows.
func (c *Chart) InWork() int {
	n := 0
	for i := range c.Rows {
		n += c.Rows[i].InWork()
	}
	return n
}

// Kinds returns the classification of every row, in row order.
func (c *Chart) Kinds() []RowKind {
	res := make([]RowKind, len(c.Rows))
	for i := range c.Rows {
		res[i] = c.Rows[i].Kind
	}
	return res
}

// rowTolerance is the relative tolerance used when converting distances
// into row counts, and when snapping scan heights to outline vertices.
const rowTolerance = 1e-9

// BuildChart slices the panel outline at the height of every machine row and
// records the needle intervals covered by fabric.
//
// Row r is scanned at height r*RowHeight above the bottom of the shape; row
// 0 is the cast-on row and the last row, at the top of the shape, is the
// cast-off row.  Intercepts are converted to needle positions by dividing
// by the stitch width and truncating towards zero, so that needle 0 is on
// the centre line.
//
// An outline which does not cross a scan line in left/right pairs results
// in a [*GeometryError].
func BuildChart(name string, shape *Shape, g Gauge, hemLength float64) (*Chart, error) {
	if err := g.Validate(); err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Panel = name
		}
		return nil, err
	}
	if hemLength < 0 || math.IsNaN(hemLength) {
		return nil, &ConfigurationError{
			Panel:  name,
			Reason: fmt.Sprintf("invalid hem length %g", hemLength),
		}
	}

	stitchWidth := g.StitchWidth()
	rowHeight := g.RowHeight()
	bounds := shape.Bounds()
	totalRows := rowCount(bounds.URy-bounds.LLy, rowHeight)

	c := &Chart{
		Panel:     name,
		Gauge:     g,
		HemRow:    rowCount(hemLength, rowHeight),
		TotalRows: totalRows,
		Rows:      make([]Row, 0, totalRows+1),
	}

	sc := &scanner{
		segments:    shape.Segments(),
		stitchWidth: stitchWidth,
		top:         bounds.URy,
	}
	for _, seg := range sc.segments {
		sc.vertexY = append(sc.vertexY, seg.A.Y)
	}
	slices.Sort(sc.vertexY)
	sc.vertexY = slices.Compact(sc.vertexY)
	snap := rowHeight * 1e-6

	prevCount := 0
	for r := 0; r <= totalRows; r++ {
		y := min(float64(r)*rowHeight+bounds.LLy, bounds.URy)
		y = sc.snap(y, snap)

		boundaries, crossings, err := sc.scan(y)
		if err != nil {
			return nil, &GeometryError{
				Panel:     name,
				Row:       r,
				Height:    y,
				Crossings: crossings,
				Reason:    err.Error(),
			}
		}

		row := Row{
			Index:      r,
			Height:     y,
			Boundaries: boundaries,
		}
		switch {
		case r == 0:
			row.Kind = CastOn
		case r == c.HemRow:
			row.Kind = Hem
		case r == totalRows:
			row.Kind = CastOff
		case len(boundaries) > 2 && prevCount == 2:
			row.Kind = Split
		default:
			row.Kind = Regular
		}
		if len(boundaries) > 2 && prevCount == 2 {
			Logger().Debug("split detected",
				"panel", name, "row", r, "boundaries", boundaries)
		}
		prevCount = len(boundaries)
		c.Rows = append(c.Rows, row)
	}

	c.MinNeedle, c.MaxNeedle = c.Rows[0].Boundaries[0], c.Rows[0].Boundaries[0]
	for i := range c.Rows {
		b := c.Rows[i].Boundaries
		c.MinNeedle = min(c.MinNeedle, b[0])
		c.MaxNeedle = max(c.MaxNeedle, b[len(b)-1])
	}
	width := c.MaxNeedle - c.MinNeedle + 1
	for i := range c.Rows {
		row := &c.Rows[i]
		row.minNeedle = c.MinNeedle
		row.Needles = make([]NeedleState, width)
		for j, reg := range row.Regions() {
			state := Working
			if j > 0 {
				state = Held
			}
			for n := reg[0]; n <= reg[1]; n++ {
				row.Needles[n-c.MinNeedle] = state
			}
		}
	}

	Logger().Debug("needle chart built",
		"panel", name,
		"gauge", g.String(),
		"rows", len(c.Rows),
		"needles", width,
		"hemRow", c.HemRow)
	return c, nil
}

// rowCount returns the number of whole rows of the given height which fit
// into the distance d.
func rowCount(d, rowHeight float64) int {
	return int(math.Floor(d/rowHeight*(1+rowTolerance) + rowTolerance))
}

// scanner finds the needle boundaries of a shape at given heights.
type scanner struct {
	segments    []Segment
	vertexY     []float64 // sorted, unique vertex heights
	stitchWidth float64
	top         float64

	crossings []float64
}

// snap moves y onto a vertex height if it is within tol of one, so that
// rounding errors in the row height do not delay a change in the outline
// by one row.
func (sc *scanner) snap(y, tol float64) float64 {
	i, _ := slices.BinarySearch(sc.vertexY, y)
	for _, j := range []int{i - 1, i} {
		if j >= 0 && j < len(sc.vertexY) && math.Abs(sc.vertexY[j]-y) <= tol {
			return sc.vertexY[j]
		}
	}
	return y
}

// scan returns the needle boundaries of the fabric at height y, together
// with the number of outline crossings found.
//
// Horizontal segments are skipped; their end points are reported by the
// neighbouring segments.  A segment counts at its lower end but not at its
// upper end, except on the top scan line.  This gives an even number of
// crossings for every closed outline, and a step in the outline at height y
// takes effect on the row scanned at y.
func (sc *scanner) scan(y float64) ([]int, int, error) {
	sc.crossings = sc.crossings[:0]
	atTop := y >= sc.top
	for _, seg := range sc.segments {
		if seg.IsHorizontal() || !seg.ContainsY(y) {
			continue
		}
		if _, hi := seg.YRange(); y == hi && !atTop {
			continue
		}
		x, err := seg.XIntercept(y)
		if err != nil {
			return nil, len(sc.crossings), err
		}
		sc.crossings = append(sc.crossings, x)
	}
	return resolveBoundaries(sc.crossings, sc.stitchWidth)
}

// resolveBoundaries pairs up the outline crossings of a scan line and
// converts them into needle intervals.  Intervals which overlap or touch
// after conversion to needles are merged; this includes openings narrower
// than one stitch.  A row which covers only a single needle is an error.
// The crossings slice is sorted in place.
func resolveBoundaries(crossings []float64, stitchWidth float64) ([]int, int, error) {
	n := len(crossings)
	if n < 2 {
		return nil, n, errors.New("no fabric on scan line")
	}
	if n%2 != 0 {
		return nil, n, errors.New("odd number of outline crossings")
	}
	slices.Sort(crossings)

	res := make([]int, 0, n)
	for i := 0; i < n; i += 2 {
		left := int(crossings[i] / stitchWidth)
		right := int(crossings[i+1] / stitchWidth)
		if k := len(res); k > 0 && left <= res[k-1] {
			res[k-1] = max(res[k-1], right)
			continue
		}
		res = append(res, left, right)
	}
	if len(res) == 2 && res[0] == res[1] {
		return nil, n, errors.New("fewer than two distinct needles on scan line")
	}
	return res, n, nil
}
