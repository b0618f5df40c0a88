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

import "seehuhn.de/go/knit"

// SamplePerson is the name used for [SampleBody] in reports.
const SamplePerson = "Sample Body"

// SampleGauge is a typical gauge for fine yarn on a standard gauge machine.
var SampleGauge = knit.Gauge{Stitches: 32, Rows: 38}

// SampleBody is a complete set of landmarks for one person.  Heights are
// in cm relative to the natural waist.
var SampleBody = knit.Landmarks{
	"floor":         {Meas: 80, Height: -105, Circumferential: true},
	"belowCalves":   {Meas: 80, Height: -88, Circumferential: true},
	"aboveCalves":   {Meas: 83, Height: -73, Circumferential: true},
	"belowKnees":    {Meas: 83, Height: -67, Circumferential: true},
	"aboveKnees":    {Meas: 93, Height: -57, Circumferential: true},
	"midThighs":     {Meas: 100, Height: -44, Circumferential: true},
	"fullThighs":    {Meas: 111, Height: -40, Circumferential: true},
	"seatDepth":     {Meas: 112, Height: -27, Circumferential: true},
	"lowHip":        {Meas: 110, Height: -17, Circumferential: true},
	"highHip":       {Meas: 98, Height: -12, Circumferential: true},
	"waist":         {Meas: 77, Height: 0, Circumferential: true},
	"underBust":     {Meas: 84, Height: 10, Circumferential: true},
	"fullBust":      {Meas: 97, Height: 19, Circumferential: true},
	"highBust":      {Meas: 90, Height: 29, Circumferential: true},
	"underArm1":     {Meas: 40, Height: 29},
	"underArm2":     {Meas: 34, Height: 31},
	"underArm3":     {Meas: 32, Height: 43},
	"outerShoulder": {Meas: 96, Height: 38, Circumferential: true},
	"shoulderNeck":  {Meas: 38, Height: 47, Circumferential: true},
	"frontNeck":     {Meas: 38, Height: 36, Circumferential: true},
	"backNeck":      {Meas: 38, Height: 44, Circumferential: true},
}
