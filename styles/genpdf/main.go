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

// Command genpdf draws every built-in style, fitted to the sample body, as
// a true-size PDF pattern in testdata/pdf.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/knit/plot"
	"seehuhn.de/go/knit/styles"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}

	for _, key := range styles.Names() {
		d := styles.All[key]
		g, err := d.Build(styles.SamplePerson, styles.SampleBody, styles.SampleGauge)
		if err != nil {
			panic(fmt.Errorf("%s: %w", key, err))
		}
		landmarks, err := d.Landmarks(styles.SampleBody)
		if err != nil {
			panic(fmt.Errorf("%s: %w", key, err))
		}
		fig, err := plot.GarmentFigure(g, landmarks)
		if err != nil {
			panic(fmt.Errorf("%s: %w", key, err))
		}

		fileName := filepath.Join(outDir, key+".pdf")
		if err := fig.WritePDF(fileName); err != nil {
			panic(fmt.Errorf("%s: %w", key, err))
		}
		fmt.Println("wrote", fileName)
	}
}
