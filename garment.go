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

// PanelSpec describes one panel of a garment style.
type PanelSpec struct {
	Name string `mapstructure:"name"`
	Ease Ease   `mapstructure:"ease"`

	// Multiplicity is the number of identical copies to knit.  Zero is
	// treated as one.
	Multiplicity int `mapstructure:"multiplicity"`
}

// Style describes a garment style: the panels it is made of and the length
// of the hem.
type Style struct {
	Name      string      `mapstructure:"name"`
	HemLength float64     `mapstructure:"hem"`
	Panels    []PanelSpec `mapstructure:"panels"`
}

// Panel is one panel of a garment, together with everything derived from it.
type Panel struct {
	Name         string
	Ease         Ease
	Gauge        Gauge
	Multiplicity int

	Shape        *Shape
	Chart        *Chart
	Instructions *Instructions
}

// Yarn returns the yarn needed for all copies of this panel, in metres.
func (p *Panel) Yarn() float64 {
	return EstimateYarn(p.Chart, p.Multiplicity)
}

// Garment is a garment style fitted to one body.
type Garment struct {
	Style  string
	Person string
	Gauge  Gauge

	panels []*Panel
	byName map[string]*Panel
}

// NewGarment builds all panels of a style for the given body measurements
// and gauge.  Processing stops at the first panel which cannot be built;
// the returned error names the panel.
func NewGarment(style Style, person string, landmarks Landmarks, g Gauge) (*Garment, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", style.Name, err)
	}
	if len(style.Panels) == 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("style %q has no panels", style.Name)}
	}

	res := &Garment{
		Style:  style.Name,
		Person: person,
		Gauge:  g,
		byName: make(map[string]*Panel, len(style.Panels)),
	}
	for _, spec := range style.Panels {
		if _, dup := res.byName[spec.Name]; dup {
			return nil, &ConfigurationError{Panel: spec.Name, Reason: "duplicate panel name"}
		}
		p, err := buildPanel(spec, landmarks, g, style.HemLength)
		if err != nil {
			return nil, err
		}
		res.panels = append(res.panels, p)
		res.byName[p.Name] = p
	}

	Logger().Info("garment built",
		"style", style.Name,
		"person", person,
		"panels", len(res.panels),
		"yarn", res.TotalYarn())
	return res, nil
}

func buildPanel(spec PanelSpec, landmarks Landmarks, g Gauge, hemLength float64) (*Panel, error) {
	mult := spec.Multiplicity
	if mult == 0 {
		mult = 1
	}
	if mult < 0 {
		return nil, &ConfigurationError{
			Panel:  spec.Name,
			Reason: fmt.Sprintf("invalid multiplicity %d", mult),
		}
	}

	shape, err := BuildPanel(landmarks, spec.Ease)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Panel = spec.Name
			return nil, cfgErr
		}
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	chart, err := BuildChart(spec.Name, shape, g, hemLength)
	if err != nil {
		return nil, err
	}
	instructions, err := WriteInstructions(chart)
	if err != nil {
		return nil, err
	}

	return &Panel{
		Name:         spec.Name,
		Ease:         spec.Ease,
		Gauge:        g,
		Multiplicity: mult,
		Shape:        shape,
		Chart:        chart,
		Instructions: instructions,
	}, nil
}

// Panels returns the panels of the garment, in the order given by the style.
func (g *Garment) Panels() []*Panel {
	return g.panels
}

// Panel returns the panel with the given name, or nil if there is none.
func (g *Garment) Panel(name string) *Panel {
	return g.byName[name]
}

// TotalYarn returns the yarn needed for the whole garment, in metres.
func (g *Garment) TotalYarn() float64 {
	var total float64
	for _, p := range g.panels {
		total += p.Yarn()
	}
	return total
}

// GaugeString describes the gauge of the garment.
func (g *Garment) GaugeString() string {
	return g.Gauge.String()
}
