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

// Command export writes the needle charts of all built-in styles, fitted to
// the sample body, to testdata/charts.json.  The file can be used to check
// other implementations against this one.
package main

import (
	"encoding/json"
	"os"

	"seehuhn.de/go/knit"
	"seehuhn.de/go/knit/styles"
)

func main() {
	out := struct {
		Person string        `json:"person"`
		Gauge  string        `json:"gauge"`
		Styles []jsonGarment `json:"styles"`
	}{
		Person: styles.SamplePerson,
		Gauge:  styles.SampleGauge.String(),
	}

	for _, key := range styles.Names() {
		g, err := styles.All[key].Build(styles.SamplePerson, styles.SampleBody, styles.SampleGauge)
		if err != nil {
			panic(err)
		}
		out.Styles = append(out.Styles, toJSON(key, g))
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/charts.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonGarment struct {
	Key    string      `json:"key"`
	Name   string      `json:"name"`
	Yarn   float64     `json:"yarn_meters"`
	Panels []jsonPanel `json:"panels"`
}

type jsonPanel struct {
	Name         string      `json:"name"`
	Multiplicity int         `json:"multiplicity"`
	Outline      [][]float64 `json:"outline"`
	HemRow       int         `json:"hem_row"`
	TotalRows    int         `json:"total_rows"`
	Rows         []jsonRow   `json:"rows"`
	Steps        []string    `json:"steps"`
}

type jsonRow struct {
	Index      int    `json:"index"`
	Kind       string `json:"kind"`
	Boundaries []int  `json:"boundaries"`
}

func toJSON(key string, g *knit.Garment) jsonGarment {
	res := jsonGarment{
		Key:  key,
		Name: g.Style,
		Yarn: g.TotalYarn(),
	}
	for _, p := range g.Panels() {
		jp := jsonPanel{
			Name:         p.Name,
			Multiplicity: p.Multiplicity,
			HemRow:       p.Chart.HemRow,
			TotalRows:    p.Chart.TotalRows,
			Steps:        p.Instructions.Text(),
		}
		for _, v := range p.Shape.Points() {
			jp.Outline = append(jp.Outline, []float64{v.X, v.Y})
		}
		for _, row := range p.Chart.Rows {
			jp.Rows = append(jp.Rows, jsonRow{
				Index:      row.Index,
				Kind:       row.Kind.String(),
				Boundaries: row.Boundaries,
			})
		}
		res.Panels = append(res.Panels, jp)
	}
	return res
}
