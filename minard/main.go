// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command minard plots tabular data as SVG.
//
// minard reads CSV files or Go benchmark results [1] and draws the
// layers described by a YAML configuration file:
//
//	width: 640
//	height: 480
//	x: [0, 100]
//	layers:
//	- type: histogram
//	  x: latency
//	  fill: [server]
//	  position: overlaid
//	- type: line
//	  x: time
//	  y: latency
//
// Layer types are "histogram", "heatmap" and "line". With -table,
// minard prints the table each layer draws instead of a plot.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ggtable "github.com/aclements/go-gg/table"
	"github.com/aclements/go-minard/internal/benchtab"
	"github.com/aclements/go-minard/internal/csvtab"
	"github.com/aclements/go-minard/internal/svgplot"
	"github.com/aclements/go-minard/layers"
	"github.com/aclements/go-minard/plotenv"
	"github.com/aclements/go-minard/table"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxSettle bounds the rounds of layer refreshes after setup.
const maxSettle = 8

func main() {
	var (
		flagConfig  = flag.String("config", "", "read plot configuration from `file`")
		flagFormat  = flag.String("format", "", "input `format`: csv or bench (default: from file extension)")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output layer tables instead of a plot")
		flagWidth   = flag.Float64("width", 0, "plot width in pixels (overrides config)")
		flagHeight  = flag.Float64("height", 0, "plot height in pixels (overrides config)")
		flagVerbose = flag.Bool("v", false, "log plot actions")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *flagVerbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "minard: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	fatal := func(msg string, err error) {
		logger.Fatal(msg, zap.Error(err))
	}

	cfg := defaultConfig()
	if *flagConfig != "" {
		f, err := os.Open(*flagConfig)
		if err != nil {
			fatal("opening config", err)
		}
		cfg, err = parseConfig(f)
		f.Close()
		if err != nil {
			fatal("parsing config", err)
		}
	}
	if *flagWidth > 0 {
		cfg.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Height = *flagHeight
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	format := *flagFormat
	if format == "" {
		format = detectFormat(paths[0])
	}
	tab, err := loadTables(paths, format)
	if err != nil {
		fatal("loading input", err)
	}
	logger.Debug("loaded input", zap.Int("rows", tab.Len()), zap.Strings("columns", tab.Columns()))

	p := plotenv.NewPlot(plotenv.WithLogger(logger), plotenv.WithMeasurer(svgplot.Measure))
	mounted, err := build(p, cfg, tab)
	if err != nil {
		fatal("building plot", err)
	}

	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			fatal("creating output", err)
		}
		defer f.Close()
	}

	if *flagTable {
		printTables(f, p.Env(), mounted)
		return
	}
	if err := svgplot.Render(f, p.Env()); err != nil {
		fatal("rendering", err)
	}
}

func detectFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv"
	}
	return "bench"
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// loadTables reads paths concurrently and combines them into one
// table. Benchmark results from all paths form a single table, since
// their configuration keys may differ between files.
func loadTables(paths []string, format string) (*table.Table, error) {
	var g errgroup.Group
	switch format {
	case "csv":
		tabs := make([]*table.Table, len(paths))
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				f, err := open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				t, err := csvtab.Read(f)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				tabs[i] = t
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return table.Concat(tabs...)

	case "bench":
		results := make([][]*benchtab.Result, len(paths))
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				f, err := open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				rs, err := benchtab.Parse(f)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results[i] = rs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		var all []*benchtab.Result
		for _, rs := range results {
			all = append(all, rs...)
		}
		t, _, _, err := benchtab.ToTable(all)
		return t, err
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// build sets up p to draw tab as cfg describes and returns the mounted
// layers in configuration order.
func build(p *plotenv.Plot, cfg *Config, tab *table.Table) ([]*layers.Mounted, error) {
	actions := append([]plotenv.Action{plotenv.SetTable{Table: tab}}, cfg.actions()...)
	for _, a := range actions {
		if err := p.Dispatch(a); err != nil {
			return nil, err
		}
	}

	var mounted []*layers.Mounted
	for i, lc := range cfg.Layers {
		spec, err := lc.Spec()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		m, err := layers.Mount(p, spec)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		mounted = append(mounted, m)
	}

	// Each layer's bins depend on the plot's domains, which depend on
	// every layer. Refresh until they agree.
	for round := 0; round < maxSettle; round++ {
		changed := false
		for i, m := range mounted {
			c, err := m.Refresh()
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
			changed = changed || c
		}
		if !changed {
			break
		}
	}
	return mounted, nil
}

func printTables(w io.Writer, env *plotenv.Env, mounted []*layers.Mounted) {
	for i, m := range mounted {
		if i > 0 {
			fmt.Fprintln(w)
		}
		l := m.Layer(env)
		fmt.Fprintf(w, "# layer %d: %s\n", i, l.Geom.Name())
		ggtable.Fprint(w, env.TableOf(l).GG())
	}
}
