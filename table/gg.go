// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	ggtable "github.com/aclements/go-gg/table"
)

// FromGG converts a go-gg table or grouping to a Table. The rows of
// all groups are concatenated in group order.
//
// Float and integer columns of any width become Float and Int
// columns, respectively (so time.Duration becomes Int). Columns of
// strings, or of any other type with a String method, become String
// columns.
func FromGG(g ggtable.Grouping) (*Table, error) {
	b := new(Builder)
	for _, name := range g.Columns() {
		var acc interface{}
		for _, gid := range g.Tables() {
			data, err := convertGG(name, g.Table(gid).Column(name))
			if err != nil {
				return nil, err
			}
			if acc == nil {
				// Copy so appending later groups never writes
				// into go-gg's backing arrays.
				acc = cloneData(data)
				continue
			}
			if acc, err = appendData(name, acc, data); err != nil {
				return nil, err
			}
		}
		if acc == nil {
			acc = []float64{}
		}
		b.Add(name, acc)
	}
	return b.Done(), nil
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func convertGG(name string, data ggtable.Slice) (interface{}, error) {
	switch data := data.(type) {
	case []float64, []int64, []string, []time.Time:
		return data, nil
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("column %q has non-slice type %T: %w", name, data, ErrInvalidColumn)
	}
	et := rv.Type().Elem()
	switch et.Kind() {
	case reflect.Float32, reflect.Float64:
		var fs []float64
		slice.Convert(&fs, data)
		return fs, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var is []int64
		slice.Convert(&is, data)
		return is, nil

	case reflect.String:
		ss := make([]string, rv.Len())
		for i := range ss {
			ss[i] = rv.Index(i).String()
		}
		return ss, nil
	}

	if et.Implements(stringerType) {
		ss := make([]string, rv.Len())
		for i := range ss {
			ss[i] = rv.Index(i).Interface().(fmt.Stringer).String()
		}
		return ss, nil
	}
	return nil, fmt.Errorf("column %q has unsupported type %T: %w", name, data, ErrInvalidColumn)
}

func appendData(name string, acc, data interface{}) (interface{}, error) {
	switch a := acc.(type) {
	case []float64:
		if d, ok := data.([]float64); ok {
			return append(a, d...), nil
		}
	case []int64:
		if d, ok := data.([]int64); ok {
			return append(a, d...), nil
		}
	case []string:
		if d, ok := data.([]string); ok {
			return append(a, d...), nil
		}
	case []time.Time:
		if d, ok := data.([]time.Time); ok {
			return append(a, d...), nil
		}
	}
	return nil, fmt.Errorf("column %q changes type from %T to %T between groups: %w", name, acc, data, ErrInvalidColumn)
}

func cloneData(data interface{}) interface{} {
	switch d := data.(type) {
	case []float64:
		return append([]float64(nil), d...)
	case []int64:
		return append([]int64(nil), d...)
	case []string:
		return append([]string(nil), d...)
	case []time.Time:
		return append([]time.Time(nil), d...)
	}
	return data
}

// GG returns t as a go-gg table, for use with go-gg's printing and
// plotting functions.
func (t *Table) GG() *ggtable.Table {
	b := new(ggtable.Builder)
	if t == nil {
		return b.Done()
	}
	for _, name := range t.names {
		b.Add(name, t.cols[name].data)
	}
	return b.Done()
}
