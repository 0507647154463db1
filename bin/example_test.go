// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin_test

import (
	"fmt"

	"github.com/aclements/go-minard/bin"
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

func ExampleBin1D() {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 2, 5}).
		Add("g", []string{"a", "b", "a", "b"}).
		Done()
	out, _, err := bin.Bin1D(tab, "x", scales.NewDomain(0, 6), []string{"g"}, 2, bin.Stacked)
	if err != nil {
		fmt.Println(err)
		return
	}
	cols := []string{bin.ColXMin, bin.ColXMax, "g", bin.ColYMin, bin.ColYMax}
	for row := 0; row < out.Len(); row++ {
		for i, name := range cols {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(out.Column(name).Format(row))
		}
		fmt.Println()
	}
	// Output:
	// 0 3 a 0 2
	// 0 3 b 2 3
	// 3 6 a 0 0
	// 3 6 b 0 1
}
