// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	ggtable "github.com/aclements/go-gg/table"
	"github.com/aclements/go-minard/table"
)

// A valueParser converts every raw value of a configuration key, or
// fails.
type valueParser func(raw []string) (ggtable.Slice, bool)

// valueParsers are tried in order. Keys none of them accept are
// string columns.
var valueParsers = []valueParser{
	func(raw []string) (ggtable.Slice, bool) {
		out := make([]int, len(raw))
		for i, s := range raw {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	},
	func(raw []string) (ggtable.Slice, bool) {
		out := make([]float64, len(raw))
		for i, s := range raw {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, false
			}
			out[i] = x
		}
		return out, true
	},
	func(raw []string) (ggtable.Slice, bool) {
		out := make([]time.Duration, len(raw))
		for i, s := range raw {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, false
			}
			out[i] = d
		}
		return out, true
	},
}

// ToTable returns a table with one row per result. It has a "name"
// column, a column per configuration key, and a column per metric
// unit. Configuration columns are typed by the values they hold.
// Metrics missing from a result are NaN. The "ns/op" metric becomes a
// "time/op" column of nanoseconds.
//
// Dashes in keys and units become spaces.
func ToTable(rs []*Result) (t *table.Table, configCols, resultCols []string, err error) {
	nan := math.NaN()
	names := make([]string, len(rs))
	configs, metrics := map[string][]string{}, map[string][]float64{}
	for i, r := range rs {
		names[i] = r.Name
		for k, v := range r.Config {
			seq, ok := configs[k]
			if !ok {
				seq = make([]string, len(rs))
				configs[k] = seq
			}
			seq[i] = v
		}
		for k, v := range r.Metrics {
			seq, ok := metrics[k]
			if !ok {
				seq = make([]float64, len(rs))
				for i := range seq {
					seq[i] = nan
				}
				metrics[k] = seq
			}
			seq[i] = v
		}
	}

	gb := new(ggtable.Builder).Add("name", names)
	for _, key := range sortedKeys(configs) {
		nicekey := strings.Replace(key, "-", " ", -1)
		gb.Add(nicekey, parseValues(configs[key]))
		configCols = append(configCols, nicekey)
	}
	for _, key := range sortedKeys(metrics) {
		nicekey := strings.Replace(key, "-", " ", -1)
		if nicekey == "ns/op" {
			nicekey = "time/op"
			durations := make([]time.Duration, len(metrics[key]))
			for i, x := range metrics[key] {
				durations[i] = time.Duration(x)
			}
			gb.Add(nicekey, durations)
		} else {
			gb.Add(nicekey, metrics[key])
		}
		resultCols = append(resultCols, nicekey)
	}

	t, err = table.FromGG(gb.Done())
	if err != nil {
		return nil, nil, nil, err
	}
	return t, configCols, resultCols, nil
}

func parseValues(raw []string) ggtable.Slice {
	for _, vp := range valueParsers {
		if data, ok := vp(raw); ok {
			return data
		}
	}
	return raw
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
