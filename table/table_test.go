// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"
	"time"

	ggtable "github.com/aclements/go-gg/table"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

func TestEmptyTable(t *testing.T) {
	for _, tab := range []*Table{nil, new(Table), new(Builder).Done()} {
		if v := tab.Len(); v != 0 {
			t.Errorf("Len() should be 0; got %v", v)
		}
		if v := tab.Columns(); v != nil {
			t.Errorf("Columns() should be nil; got %v", v)
		}
		if v := tab.Column("x"); v != nil {
			t.Errorf("Column(\"x\") should be nil; got %v", v)
		}
		if _, err := tab.Floats("x"); !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("Floats(\"x\") should fail with ErrInvalidColumn; got %v", err)
		}
	}
}

func TestBuilder(t *testing.T) {
	tab := new(Builder).
		Add("name", []string{"a", "b", "c"}).
		Add("n", []int{1, 2, 3}).
		Add("v", []float64{0.5, math.NaN(), 2}).
		Done()
	if tab.Len() != 3 {
		t.Fatalf("want Len 3; got %d", tab.Len())
	}
	if w := []string{"name", "n", "v"}; !de(w, tab.Columns()) {
		t.Errorf("want columns %v; got %v", w, tab.Columns())
	}
	if typ := tab.Column("n").Type(); typ != Int {
		t.Errorf("want []int stored as Int; got %v", typ)
	}
	if w := []int64{1, 2, 3}; !de(w, tab.Column("n").Data()) {
		t.Errorf("want %v; got %v", w, tab.Column("n").Data())
	}

	shouldPanic(t, `column "bad" has length 2`, func() {
		new(Builder).Add("x", []float64{1, 2, 3}).Add("bad", []float64{1, 2})
	})
	shouldPanic(t, "unsupported column type", func() {
		new(Builder).Add("x", []bool{true})
	})

	// Replacing the only column may change the length.
	tab = new(Builder).Add("x", []float64{1}).Add("x", []float64{1, 2}).Done()
	if tab.Len() != 2 || len(tab.Columns()) != 1 {
		t.Errorf("want 1 column of length 2; got %v columns of length %d", tab.Columns(), tab.Len())
	}
}

func TestNewBuilderCopies(t *testing.T) {
	base := new(Builder).Add("x", []float64{1, 2}).Done()
	derived := NewBuilder(base).Add("y", []string{"a", "b"}).Done()
	if base.Column("y") != nil {
		t.Errorf("NewBuilder modified its input table")
	}
	if derived.Len() != 2 || derived.Column("x") == nil || derived.Column("y") == nil {
		t.Errorf("want x and y in derived table; got %v", derived.Columns())
	}
}

func TestNumeric(t *testing.T) {
	t0 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	tab := new(Builder).
		Add("f", []float64{1.5, 2.5}).
		Add("i", []int64{3, 4}).
		Add("s", []string{"x", "y"}).
		Add("t", []time.Time{t0, {}}).
		Done()

	for _, test := range []struct {
		col  string
		want []float64
		ok   bool
	}{
		{"f", []float64{1.5, 2.5}, true},
		{"i", []float64{3, 4}, true},
		{"t", []float64{float64(t0.UnixNano()) / 1e6, math.NaN()}, true},
		{"s", nil, false},
		{"missing", nil, false},
	} {
		got, err := tab.Floats(test.col)
		if !test.ok {
			if !errors.Is(err, ErrInvalidColumn) {
				t.Errorf("Floats(%q): want ErrInvalidColumn; got %v", test.col, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Floats(%q): unexpected error %v", test.col, err)
			continue
		}
		if len(got) != len(test.want) {
			t.Errorf("Floats(%q): want %v; got %v", test.col, test.want, got)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] && !(math.IsNaN(got[i]) && math.IsNaN(test.want[i])) {
				t.Errorf("Floats(%q): want %v; got %v", test.col, test.want, got)
				break
			}
		}
	}
}

func TestGroupKeysNumeric(t *testing.T) {
	tab := new(Builder).
		Add("f", []float64{10, math.NaN(), 2, 10, -1.5}).
		Add("i", []int64{10, 9, 100, 9, 9}).
		Done()
	if w, g := []string{"-1.5", "2", "10", "NaN"}, GroupKeys(tab, []string{"f"}); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
	if w, g := []string{"9", "10", "100"}, GroupKeys(tab, []string{"i"}); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
	// Composite keys sort as strings.
	if w, g := []string{"-1.5 9", "10 10", "10 9", "2 100", "NaN 9"}, GroupKeys(tab, []string{"f", "i"}); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
}

func TestGroupKeys(t *testing.T) {
	tab := new(Builder).
		Add("host", []string{"b", "a", "b", "a"}).
		Add("cpu", []int{1, 0, 1, 1}).
		Done()

	if k := GroupKey(tab, []string{"host", "cpu"}, 0); k != "b 1" {
		t.Errorf("want group key %q; got %q", "b 1", k)
	}
	if w, g := []string{"a 0", "a 1", "b 1"}, GroupKeys(tab, []string{"host", "cpu"}); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
	if w, g := []string{"a", "b"}, GroupKeys(tab, []string{"host"}); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
	if g := GroupKeys(tab, nil); g != nil {
		t.Errorf("want no keys without grouping columns; got %v", g)
	}
	if err := Require(tab, "host", "nope"); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("want ErrInvalidColumn for missing column; got %v", err)
	}
}

type level struct{ n int }

func (l level) String() string { return fmt.Sprintf("L%d", l.n) }

func TestFromGG(t *testing.T) {
	gt := new(ggtable.Builder).
		Add("name", []string{"Washington", "Adams", "Jefferson"}).
		Add("terms", []int{2, 1, 2}).
		Add("state", []string{"Virginia", "Massachusetts", "Virginia"}).
		Add("dur", []time.Duration{1, 2, 3}).
		Add("level", []level{{1}, {2}, {3}}).
		Add("ratio", []float32{0.5, 1, 1.5}).
		Done()

	tab, err := FromGG(ggtable.GroupBy(gt, "state"))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 3 {
		t.Fatalf("want 3 rows; got %d", tab.Len())
	}
	if w, g := []string{"Washington", "Jefferson", "Adams"}, tab.Column("name").Data(); !de(w, g) {
		t.Errorf("want rows in group order %v; got %v", w, g)
	}
	if w, g := []int64{2, 2, 1}, tab.Column("terms").Data(); !de(w, g) {
		t.Errorf("want terms %v; got %v", w, g)
	}
	if typ := tab.Column("dur").Type(); typ != Int {
		t.Errorf("want durations as Int; got %v", typ)
	}
	if w, g := []string{"L1", "L3", "L2"}, tab.Column("level").Data(); !de(w, g) {
		t.Errorf("want Stringer column %v; got %v", w, g)
	}
	if typ := tab.Column("ratio").Type(); typ != Float {
		t.Errorf("want float32 as Float; got %v", typ)
	}

	// Back to go-gg.
	back := tab.GG()
	if back.Len() != 3 || !de(back.Columns(), tab.Columns()) {
		t.Errorf("want GG() to keep columns %v; got %v", tab.Columns(), back.Columns())
	}
	if w, g := []int64{2, 2, 1}, back.Column("terms"); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
}

func TestFromGGUnsupported(t *testing.T) {
	gt := new(ggtable.Builder).Add("b", []bool{true, false}).Done()
	if _, err := FromGG(gt); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("want ErrInvalidColumn for []bool column; got %v", err)
	}
}

func TestConcat(t *testing.T) {
	a := new(Builder).Add("x", []float64{1, 2}).Add("s", []string{"a", "b"}).Done()
	b := new(Builder).Add("s", []string{"c"}).Add("x", []float64{3}).Done()
	c, err := Concat(a, nil, b)
	if err != nil {
		t.Fatal(err)
	}
	if w, g := []float64{1, 2, 3}, c.Column("x").Data(); !de(w, g) {
		t.Errorf("want %v; got %v", w, g)
	}
	if w, g := []string{"x", "s"}, c.Columns(); !de(w, g) {
		t.Errorf("want column order %v; got %v", w, g)
	}
	if a.Len() != 2 {
		t.Errorf("Concat modified its input")
	}

	bad := new(Builder).Add("x", []int64{1}).Add("s", []string{"d"}).Done()
	if _, err := Concat(a, bad); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("want ErrInvalidColumn for type change; got %v", err)
	}
	other := new(Builder).Add("y", []float64{1}).Add("s", []string{"d"}).Done()
	if _, err := Concat(a, other); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("want ErrInvalidColumn for different columns; got %v", err)
	}
	if empty, err := Concat(); err != nil || empty.Len() != 0 {
		t.Errorf("Concat(): want empty table; got %v, %v", empty, err)
	}
}
