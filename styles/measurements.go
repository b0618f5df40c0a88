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

package styles

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/knit"
)

// Measurements is the content of a measurements file.
//
// A measurements file is a YAML document of the form
//
//	person: Jane Doe
//	landmarks:
//	  waist: {meas: 77, height: 0, circumferential: true}
//	  underArm1: {meas: 40, height: 29}
type Measurements struct {
	Person    string         `yaml:"person"`
	Landmarks knit.Landmarks `yaml:"landmarks"`
}

// ReadMeasurements decodes a measurements file.
func ReadMeasurements(r io.Reader) (*Measurements, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	m := &Measurements{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &knit.ConfigurationError{Reason: "empty measurements file"}
		}
		return nil, fmt.Errorf("measurements: %w", err)
	}
	if len(m.Landmarks) == 0 {
		return nil, &knit.ConfigurationError{Reason: "no landmarks in measurements file"}
	}
	for name, lm := range m.Landmarks {
		if !(lm.Meas > 0) {
			return nil, &knit.ConfigurationError{
				Landmark: name,
				Reason:   fmt.Sprintf("invalid measurement %g", lm.Meas),
			}
		}
	}
	return m, nil
}

// WriteMeasurements encodes m in the format read by [ReadMeasurements].
func WriteMeasurements(w io.Writer, m *Measurements) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}
