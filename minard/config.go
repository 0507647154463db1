// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-minard/bin"
	"github.com/aclements/go-minard/layers"
	"github.com/aclements/go-minard/plotenv"
	"github.com/aclements/go-minard/scales"
	"gopkg.in/yaml.v3"
)

// Config describes a plot.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// X and Y, if set, are [min, max] pairs that pin the domains.
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`

	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig describes one layer. Which fields apply depends on Type.
type LayerConfig struct {
	// Type is "histogram", "heatmap" or "line".
	Type string `yaml:"type"`

	X      string   `yaml:"x"`
	Y      string   `yaml:"y"`
	Fill   []string `yaml:"fill"`
	Colors []string `yaml:"colors"`

	// Histogram options.
	Position string `yaml:"position"`
	Bins     int    `yaml:"bins"`

	// Heatmap options.
	BinSize float64 `yaml:"binSize"`
}

var defaultColors = []string{"#31c0f6", "#a500a5", "#ff7e27"}

func defaultConfig() *Config {
	return &Config{Width: 640, Height: 480}
}

// parseConfig reads a YAML plot description. Missing dimensions keep
// their defaults.
func parseConfig(r io.Reader) (*Config, error) {
	c := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, err
	}
	for _, d := range [][]float64{c.X, c.Y} {
		if d != nil && len(d) != 2 {
			return nil, fmt.Errorf("domain must be [min, max]; got %v", d)
		}
	}
	return c, nil
}

func domain(d []float64) scales.Domain {
	if len(d) != 2 {
		return scales.Domain{}
	}
	return scales.NewDomain(d[0], d[1])
}

// Spec returns the layer c describes.
func (c LayerConfig) Spec() (layers.Spec, error) {
	colors := c.Colors
	if len(colors) == 0 {
		colors = defaultColors
	}
	switch c.Type {
	case "histogram":
		pos, err := bin.ParsePosition(c.Position)
		if err != nil {
			return nil, err
		}
		return layers.Histogram{X: c.X, Fill: c.Fill, Colors: colors, Position: pos, BinCount: c.Bins}, nil
	case "heatmap":
		return layers.Heatmap{X: c.X, Y: c.Y, Colors: colors, BinSize: c.BinSize}, nil
	case "line":
		return layers.Line{X: c.X, Y: c.Y, Fill: c.Fill, Colors: colors}, nil
	}
	return nil, fmt.Errorf("unknown layer type %q", c.Type)
}

// actions returns the actions that set up a plot as c describes,
// before its layers are mounted.
func (c *Config) actions() []plotenv.Action {
	return []plotenv.Action{
		plotenv.SetDimensions{Width: c.Width, Height: c.Height},
		plotenv.SetControlledXDomain{Domain: domain(c.X)},
		plotenv.SetControlledYDomain{Domain: domain(c.Y)},
	}
}
