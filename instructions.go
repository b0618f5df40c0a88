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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StepKind identifies the kind of an instruction step.
type StepKind int

// These are the kinds of steps emitted by [WriteInstructions].
const (
	StepCastOn StepKind = iota
	StepCounter
	StepHem
	StepKnitTo
	StepShaping
	StepSplit
	StepCarriage
	StepCastOff
	StepOppositeSide
)

func (k StepKind) String() string {
	switch k {
	case StepCastOn:
		return "cast-on"
	case StepCounter:
		return "counter"
	case StepHem:
		return "hem"
	case StepKnitTo:
		return "knit-to"
	case StepShaping:
		return "shaping"
	case StepSplit:
		return "split"
	case StepCarriage:
		return "carriage"
	case StepCastOff:
		return "cast-off"
	case StepOppositeSide:
		return "opposite-side"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one operator instruction.
type Step struct {
	Row  int
	Kind StepKind
	Text string
}

// Instructions holds the knitting instructions for one panel.
type Instructions struct {
	Panel string
	Steps []Step
}

// Text returns the text of all steps, in order.
func (in *Instructions) Text() []string {
	res := make([]string, len(in.Steps))
	for i, s := range in.Steps {
		res[i] = s.Text
	}
	return res
}

// DefaultWidth is the line width used by [Instructions.String].
const DefaultWidth = 120

// Format writes the instructions to w, wrapping lines at the given width.
// Shaping steps are indented by a tab.  A blank line follows every
// carriage directive and every ritual block.
func (in *Instructions) Format(w io.Writer, width int) error {
	bw := bufio.NewWriter(w)
	for _, s := range in.Steps {
		prefix := ""
		if s.Kind == StepShaping {
			prefix = "\t"
		}
		for _, line := range wrap(s.Text, width) {
			bw.WriteString(prefix)
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		switch s.Kind {
		case StepCounter, StepHem, StepCarriage, StepKnitTo:
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func (in *Instructions) String() string {
	b := &strings.Builder{}
	in.Format(b, DefaultWidth)
	return b.String()
}

// wrap breaks text into lines of at most width characters.  Words longer
// than width are put on a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// carriageFor returns the side where the carriage starts on the given row,
// and the direction of travel.  Odd rows start on the left.
func carriageFor(row int) (side, direction string) {
	if row%2 != 0 {
		return "left", "from left to right"
	}
	return "right", "from right to left"
}

// WriteInstructions converts a needle chart into operator instructions.
// Rows are processed in order.  Runs of rows with unchanged working edges
// are coalesced into a single "continue knitting" step.
func WriteInstructions(c *Chart) (*Instructions, error) {
	k := &knitter{
		chart: c,
		in:    &Instructions{Panel: c.Panel},
	}
	for i := range c.Rows {
		row := &c.Rows[i]
		if n := row.Count(); n < 2 || n%2 != 0 {
			return nil, &GeometryError{
				Panel:     c.Panel,
				Row:       row.Index,
				Height:    row.Height,
				Crossings: n,
				Reason:    "row needs a left and a right boundary for every region",
			}
		}

		if row.Index == 0 {
			k.castOn(row)
		} else {
			if row.Index == c.HemRow && row.Index < c.TotalRows {
				k.hem(row)
			}
			k.advance(row)
		}
		if row.Index == c.TotalRows {
			k.castOff(row)
		}
	}
	return k.in, nil
}

// knitter carries the state of the instruction writer from row to row.
type knitter struct {
	chart *Chart
	in    *Instructions

	left, right int // working edges of the last emitted row
	unchanged   int // rows knitted since then without a change

	split    bool
	splitRow int
}

func (k *knitter) emit(row int, kind StepKind, format string, args ...any) {
	k.in.Steps = append(k.in.Steps, Step{
		Row:  row,
		Kind: kind,
		Text: fmt.Sprintf(format, args...),
	})
}

// reached reports whether a step for row r has already been emitted, in
// which case the operator is already at that row.
func (k *knitter) reached(r int) bool {
	n := len(k.in.Steps)
	return n > 0 && k.in.Steps[n-1].Row == r
}

func (k *knitter) castOn(row *Row) {
	left, right := row.Leftmost(), row.Rightmost()
	side, direction := carriageFor(0)
	b := &strings.Builder{}
	fmt.Fprintf(b, "Begin with the carriage on the %s side. ", side)
	fmt.Fprintf(b, "Place needles from position %d to position %d into working position. ", left, right)
	b.WriteString("Thread the carriage with waste yarn and fasten a clothespin to the yarn end. ")
	fmt.Fprintf(b, "Push the carriage %s to cast on %d needles. ", direction, right-left+1)
	b.WriteString("Push the knitted row against the needle bed and slowly knit one more row. ")
	b.WriteString("Hang claw weights evenly along the knitting. ")
	b.WriteString("Knit a few centimetres with waste yarn. ")
	fmt.Fprintf(b, "With the carriage on the %s side, break the waste yarn and secure the tail with a clothespin. ", side)
	b.WriteString("Thread the carriage with the main yarn.")
	if h := k.chart.HemRow; h > 0 && h < k.chart.TotalRows {
		fmt.Fprintf(b, " Knit %d rows to form the hem.", h)
	}
	k.emit(0, StepCastOn, "%s", b.String())
	k.emit(0, StepCounter, "Set the row counter to 0.")

	k.left, k.right = left, right
	if row.IsSplit() {
		k.split = true
		k.splitRow = 0
	}
}

func (k *knitter) hem(row *Row) {
	_, direction := carriageFor(row.Index)
	k.emit(row.Index, StepKnitTo, "Continue knitting %d needles until row counter reads %d.",
		k.right-k.left+1, row.Index)
	k.emit(row.Index, StepHem,
		"Pull all working needles forward and remove the claw weights. "+
			"Taking care not to drop stitches from the extended needles, rehang the hem "+
			"by placing the purl bumps from the first row of main yarn stitches on the needles. "+
			"You will be short one purl bump; this is expected. "+
			"Push the knitting against the needle bed and rehang the claw weights. "+
			"Loosen the tension and slowly knit 1 row %s. Reset the tension. "+
			"The waste yarn can now be removed, or left in place until the knitting comes off the machine.",
		direction)
}

// advance handles one row after the cast-on row.
func (k *knitter) advance(row *Row) {
	r := row.Index
	opening := row.IsSplit() && !k.split
	if !row.IsSplit() && k.split {
		Logger().Debug("split closed", "panel", k.chart.Panel, "row", r)
		k.split = false
	}

	left, right := row.Leftmost(), row.Rightmost()
	if !opening && left == k.left && right == k.right {
		k.unchanged++
		return
	}

	if !k.reached(r) {
		k.emit(r, StepKnitTo, "Continue knitting until row counter reads %d.", r)
	}
	if opening {
		b := row.Boundaries
		k.emit(r, StepSplit,
			"This is a split row. Cast off between needles %d and %d. Place needles %d through %d on hold.",
			b[1], b[2], b[2], b[3])
		k.split = true
		k.splitRow = r
	} else {
		switch {
		case left > k.left:
			k.emit(r, StepShaping, "Decrease %d stitch(es) at left edge.", left-k.left)
		case left < k.left:
			k.emit(r, StepShaping, "Increase %d stitch(es) at left edge.", k.left-left)
		}
		switch {
		case right < k.right:
			k.emit(r, StepShaping, "Decrease %d stitch(es) at right edge.", k.right-right)
		case right > k.right:
			k.emit(r, StepShaping, "Increase %d stitch(es) at right edge.", right-k.right)
		}
	}

	side, direction := carriageFor(r)
	k.emit(r, StepCarriage,
		"With carriage on the %s, move carriage %s, knitting needles from %d to %d. %d total stitches.",
		side, direction, left, right, right-left+1)

	k.left, k.right = left, right
	k.unchanged = 0
}

func (k *knitter) castOff(row *Row) {
	r := row.Index
	if k.unchanged > 0 {
		k.emit(r, StepKnitTo, "Continue knitting until row counter reads %d.", r)
	}
	k.emit(r, StepCastOff, "Cast off all remaining stitches.")
	if k.split {
		k.emit(r, StepOppositeSide,
			"Reset the row counter to %d and complete the opposite side, reversing left and right instructions.",
			k.splitRow)
	}
}
