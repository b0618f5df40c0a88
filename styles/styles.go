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

// Package styles holds a catalogue of garment styles, together with a set
// of sample body measurements to try them on.
package styles

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/knit"
)

// Synthetic describes a landmark which is not measured on the body but
// interpolated from the neighbouring measurements, for example the height
// of a skirt hem.
type Synthetic struct {
	Name   string  `mapstructure:"name"`
	Height float64 `mapstructure:"height"`
}

// Design is a garment style together with the synthetic landmarks its
// panels refer to.
type Design struct {
	knit.Style `mapstructure:",squash"`

	Synthetic []Synthetic `mapstructure:"synthetic"`
}

// Landmarks returns a copy of body, extended by the synthetic landmarks of
// the design.
func (d *Design) Landmarks(body knit.Landmarks) (knit.Landmarks, error) {
	res := maps.Clone(body)
	for _, s := range d.Synthetic {
		var err error
		res, err = res.Interpolate(s.Name, s.Height)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return res, nil
}

// Build fits the design to the given body.
func (d *Design) Build(person string, body knit.Landmarks, g knit.Gauge) (*knit.Garment, error) {
	landmarks, err := d.Landmarks(body)
	if err != nil {
		return nil, err
	}
	return knit.NewGarment(d.Style, person, landmarks, g)
}

// All lists the built-in designs, keyed by a short identifier.
var All = map[string]*Design{
	"tshirt":       TShirt,
	"pencil-skirt": PencilSkirt,
	"dress":        Dress,
}

// Names returns the keys of [All] in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

// Lookup returns the built-in design with the given key.
func Lookup(key string) (*Design, error) {
	d, ok := All[key]
	if !ok {
		return nil, &knit.ConfigurationError{
			Reason: fmt.Sprintf("unknown style %q (available: %v)", key, Names()),
		}
	}
	return d, nil
}

// TShirt is a straight T-shirt with a front and a back panel.  The neck
// opening is cut as a split row at the front or back neck height.
var TShirt = &Design{
	Style: knit.Style{
		Name:      "T Shirt",
		HemLength: 4,
		Panels: []knit.PanelSpec{
			{Name: "front", Ease: knit.Ease{
				{Landmark: "highHip", Percent: -5},
				{Landmark: "fullBust", Percent: -5},
				{Landmark: "highBust", Percent: 0},
				{Landmark: "outerShoulder", Percent: 0},
				{Landmark: "shoulderNeck", Percent: 0},
				{Landmark: knit.FrontNeck, Percent: 0},
			}},
			{Name: "back", Ease: knit.Ease{
				{Landmark: "highHip", Percent: -5},
				{Landmark: "fullBust", Percent: -5},
				{Landmark: "highBust", Percent: 0},
				{Landmark: "outerShoulder", Percent: 0},
				{Landmark: "shoulderNeck", Percent: 0},
				{Landmark: knit.BackNeck, Percent: 0},
			}},
		},
	},
}

// skirtEase is the ease of a close fitting skirt from just below the knee
// up to the waist.
var skirtEase = knit.Ease{
	{Landmark: "skirtHem", Percent: -2},
	{Landmark: "aboveKnees", Percent: 0},
	{Landmark: "midThighs", Percent: 4},
	{Landmark: "fullThighs", Percent: 4},
	{Landmark: "seatDepth", Percent: 4},
	{Landmark: "lowHip", Percent: 4},
	{Landmark: "highHip", Percent: 4},
	{Landmark: "waist", Percent: 4},
}

// PencilSkirt is a narrow skirt ending just below the knee, knitted as two
// identical panels.
var PencilSkirt = &Design{
	Style: knit.Style{
		Name:      "Pencil Skirt",
		HemLength: 3,
		Panels: []knit.PanelSpec{
			{Name: "panel", Ease: skirtEase, Multiplicity: 2},
		},
	},
	Synthetic: []Synthetic{
		{Name: "skirtHem", Height: -60},
	},
}

func dressEase(neck string) knit.Ease {
	return knit.Ease{
		{Landmark: "dressHem", Percent: 8},
		{Landmark: "aboveKnees", Percent: 8},
		{Landmark: "midThighs", Percent: 6},
		{Landmark: "fullThighs", Percent: 6},
		{Landmark: "seatDepth", Percent: 6},
		{Landmark: "lowHip", Percent: 6},
		{Landmark: "highHip", Percent: 6},
		{Landmark: "waist", Percent: 10},
		{Landmark: "underBust", Percent: 5},
		{Landmark: "fullBust", Percent: 0},
		{Landmark: "highBust", Percent: 0},
		{Landmark: "outerShoulder", Percent: 0},
		{Landmark: "shoulderNeck", Percent: 0},
		{Landmark: neck, Percent: 0},
	}
}

// Dress is a sleeveless knee length dress.
var Dress = &Design{
	Style: knit.Style{
		Name:      "Dress",
		HemLength: 4,
		Panels: []knit.PanelSpec{
			{Name: "front", Ease: dressEase(knit.FrontNeck)},
			{Name: "back", Ease: dressEase(knit.BackNeck)},
		},
	},
	Synthetic: []Synthetic{
		{Name: "dressHem", Height: -62},
	},
}
