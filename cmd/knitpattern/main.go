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

// Command knitpattern writes knitting machine instructions, stitch maps and
// a yarn estimate for a garment fitted to a set of body measurements.
//
// Usage:
//
//	knitpattern [-config file] [-style name] [-measurements file] [-o dir] [-v]
//
// Without a measurements file, the built-in sample body is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/knit"
	"seehuhn.de/go/knit/plot"
	"seehuhn.de/go/knit/styles"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "knitpattern:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("knitpattern", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "configuration file (YAML, TOML or JSON)")
	styleName := flags.String("style", "", "garment style")
	measFile := flags.String("measurements", "", "body measurements (YAML)")
	outDir := flags.String("o", "", "output directory")
	verbose := flags.Bool("v", false, "log details to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	knit.SetLogger(logger)
	defer knit.SetLogger(nil)

	v, err := newConfig(*configFile)
	if err != nil {
		return err
	}
	// explicit flags take precedence over the configuration file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "style":
			v.Set(cfgStyle, *styleName)
		case "measurements":
			v.Set(cfgMeasurements, *measFile)
		case "o":
			v.Set(cfgOutputDir, *outDir)
		}
	})

	g, err := gauge(v)
	if err != nil {
		return err
	}
	all, err := designs(v)
	if err != nil {
		return err
	}
	// viper stores map keys in lower case
	key := strings.ToLower(v.GetString(cfgStyle))
	design, ok := all[key]
	if !ok {
		return &knit.ConfigurationError{
			Reason: fmt.Sprintf("unknown style %q (available: %v)", key, slices.Sorted(maps.Keys(all))),
		}
	}

	person, body := styles.SamplePerson, styles.SampleBody
	if name := v.GetString(cfgMeasurements); name != "" {
		m, err := readMeasurements(name)
		if err != nil {
			return err
		}
		body = m.Landmarks
		if m.Person != "" {
			person = m.Person
		}
	}

	garment, err := design.Build(person, body, g)
	if err != nil {
		return err
	}

	dir := v.GetString(cfgOutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeOutputs(v, dir, key, design, garment, body); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "This design requires %.1f meters of yarn at your chosen gauge of %s.\n",
		garment.TotalYarn(), garment.GaugeString())
	fmt.Fprintf(stdout, "%s for %s finished.\n", garment.Style, garment.Person)
	return nil
}

func readMeasurements(name string) (*styles.Measurements, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	m, err := styles.ReadMeasurements(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func writeOutputs(v *viper.Viper, dir, key string, design *styles.Design, g *knit.Garment, body knit.Landmarks) error {
	width := v.GetInt(cfgWidth)
	for _, p := range g.Panels() {
		base := filepath.Join(dir, key+"-"+p.Name)
		err := writeFile(base+".txt", func(w io.Writer) error {
			return p.Instructions.Format(w, width)
		})
		if err != nil {
			return err
		}
		if v.GetBool(cfgStitchMaps) {
			err := writeFile(base+"-stitches.png", func(w io.Writer) error {
				return plot.WriteStitchMap(w, p.Chart)
			})
			if err != nil {
				return err
			}
		}
		knit.Logger().Info("panel written",
			"panel", p.Name,
			"rows", p.Chart.TotalRows+1,
			"yarn", p.Yarn())
	}

	if !v.GetBool(cfgPlot) && !v.GetBool(cfgPDF) {
		return nil
	}
	landmarks, err := design.Landmarks(body)
	if err != nil {
		return err
	}
	fig, err := plot.GarmentFigure(g, landmarks)
	if err != nil {
		return err
	}
	if v.GetBool(cfgPlot) {
		err := writeFile(filepath.Join(dir, key+".png"), fig.WritePNG)
		if err != nil {
			return err
		}
	}
	if v.GetBool(cfgPDF) {
		if err := fig.WritePDF(filepath.Join(dir, key+".pdf")); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(fd); err != nil {
		fd.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return fd.Close()
}
