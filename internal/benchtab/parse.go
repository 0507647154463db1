// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads Go benchmark results files as tables.
//
// The format is specified at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package benchtab

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is one benchmark result line.
type Result struct {
	// Name is the benchmark name without the "Benchmark" prefix,
	// sub-benchmark keys, or GOMAXPROCS suffix.
	Name string

	Iterations int

	// Config holds the raw configuration values in effect for
	// this line, from configuration blocks, sub-benchmark
	// "key:value" name parts, and the "-N" GOMAXPROCS suffix.
	Config map[string]string

	// Metrics maps units, such as "ns/op", to values.
	Metrics map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads benchmark results from r.
func Parse(r io.Reader) ([]*Result, error) {
	results := []*Result{}
	config := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if res := parseLine(line, config); res != nil {
				results = append(results, res)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseLine(line string, config map[string]string) *Result {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil
	}

	res := &Result{
		Iterations: n,
		Config:     make(map[string]string, len(config)+1),
		Metrics:    make(map[string]float64),
	}
	for k, v := range config {
		res.Config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	res.Config["gomaxprocs"] = "1"
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			res.Config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	res.Name = parts[0]
	for _, part := range parts[1:] {
		if k, v, ok := strings.Cut(part, ":"); ok {
			res.Config[k] = v
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		res.Metrics[f[i+1]] = val
	}
	return res
}
