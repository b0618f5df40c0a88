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

package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/knit"
	"seehuhn.de/go/knit/styles"
)

// Configuration keys.
const (
	cfgStyle        = "style"
	cfgStyles       = "styles"
	cfgMeasurements = "measurements"
	cfgStitches     = "gauge.stitches"
	cfgRows         = "gauge.rows"
	cfgOutputDir    = "output.dir"
	cfgWidth        = "output.width"
	cfgPlot         = "output.plot"
	cfgStitchMaps   = "output.stitchmaps"
	cfgPDF          = "output.pdf"
)

// newConfig reads the configuration file, if any.  Every setting can also
// be given by an environment variable, for example KNIT_GAUGE_STITCHES.
func newConfig(fileName string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgStyle, "tshirt")
	v.SetDefault(cfgStitches, styles.SampleGauge.Stitches)
	v.SetDefault(cfgRows, styles.SampleGauge.Rows)
	v.SetDefault(cfgOutputDir, ".")
	v.SetDefault(cfgWidth, knit.DefaultWidth)
	v.SetDefault(cfgPlot, true)
	v.SetDefault(cfgStitchMaps, true)
	v.SetDefault(cfgPDF, false)

	v.SetEnvPrefix("KNIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fileName != "" {
		v.SetConfigFile(fileName)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", fileName, err)
		}
	}
	return v, nil
}

// gauge returns the configured gauge.
func gauge(v *viper.Viper) (knit.Gauge, error) {
	g := knit.Gauge{
		Stitches: v.GetFloat64(cfgStitches),
		Rows:     v.GetFloat64(cfgRows),
	}
	if err := g.Validate(); err != nil {
		return knit.Gauge{}, err
	}
	return g, nil
}

// designs returns the built-in designs, extended or overridden by the
// styles defined in the configuration file.
func designs(v *viper.Viper) (map[string]*styles.Design, error) {
	res := maps.Clone(styles.All)
	if !v.IsSet(cfgStyles) {
		return res, nil
	}

	var custom map[string]*styles.Design
	if err := v.UnmarshalKey(cfgStyles, &custom); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgStyles, err)
	}
	for key, d := range custom {
		if d.Name == "" {
			d.Name = key
		}
		res[key] = d
	}
	return res, nil
}
