// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/gardencraft/farm"
	"github.com/katalvlaran/gardencraft/loop"
)

// ExampleHasSingleClosedLoop contrasts a fenced plot with a figure-eight fence.
//
// Fenced plot (one ring around a terrain cell):
//
//	1 1 1
//	1 2 1
//	1 1 1
//
// Figure-eight (two rings sharing the center cell):
//
//	1 1 1 0 0
//	1 2 1 0 0
//	1 1 1 1 1
//	0 0 1 3 1
//	0 0 1 1 1
func ExampleHasSingleClosedLoop() {
	plot, _ := farm.FromCells(3, 3, [][]int{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	})
	eight, _ := farm.FromCells(5, 5, [][]int{
		{1, 1, 1, 0, 0},
		{1, 2, 1, 0, 0},
		{1, 1, 1, 1, 1},
		{0, 0, 1, 3, 1},
		{0, 0, 1, 1, 1},
	})

	fmt.Println("plot:", loop.HasSingleClosedLoop(plot), loop.CountClosedLoops(plot))
	fmt.Println("eight:", loop.HasSingleClosedLoop(eight), loop.CountClosedLoops(eight))

	// Output:
	// plot: true 1
	// eight: false 2
}
