// File: farm/example_test.go
package farm_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gardencraft/farm"
)

// ExampleFromCells builds a small fenced plot and shows how a bad code is reported.
func ExampleFromCells() {
	g, err := farm.FromCells(3, 3, [][]int{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g)
	fmt.Println("border cells:", g.Count(farm.Border))
	fmt.Println("center:", g.At(1, 1))

	_, err = farm.FromCells(2, 1, [][]int{{1, 5}})
	fmt.Println(errors.Is(err, farm.ErrInvalidCellCode))

	// Output:
	// 1 1 1
	// 1 2 1
	// 1 1 1
	// border cells: 8
	// center: terrain
	// true
}
