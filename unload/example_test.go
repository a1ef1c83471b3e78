// File: unload/example_test.go
package unload_test

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/unload"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve with both algorithms
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve unloads a 3×3 harbor with a building in the middle.
// Scenario:
//
//	0 3 0
//	2 X 5
//	1 4 1
//
// The best route runs along the north edge and then down the east edge:
// 0 + 3 + 0 + 5 + 1 = 9 cranes. Both algorithms agree on the score.
func ExampleSolve() {
	g, _ := grid.ParseString("0 3 0\n2 X 5\n1 4 1\n")

	for _, algo := range []unload.Algorithm{unload.ExhaustiveSearch, unload.DynProg} {
		res, _ := unload.Solve(g, unload.Options{Algo: algo})
		fmt.Printf("%s: %d cranes via %v\n", res.Algo, res.Path.TotalCranes(), res.Path.Steps())
	}
	res, _ := unload.Solve(g, unload.DefaultOptions())
	fmt.Print(res.Path.Render())

	// Output:
	// exhaustive: 9 cranes via [east east south south]
	// dynprog: 9 cranes via [east east south south]
	// * * *
	// . X *
	// . . *
}

////////////////////////////////////////////////////////////////////////////////
// Example: DynamicProgramming stops at an interior cell
////////////////////////////////////////////////////////////////////////////////

// ExampleDynamicProgramming shows the global-maximum scan: the south-east
// corner is a building, so the best route ends at the interior cell (1,1).
func ExampleDynamicProgramming() {
	g, _ := grid.FromCounts([][]int{
		{1, 0, 0},
		{0, 9, grid.BuildingMark},
		{0, grid.BuildingMark, grid.BuildingMark},
	})

	p, _ := unload.DynamicProgramming(g, nil)
	fmt.Println(p)

	// Output:
	// path{steps=2 end=(1,1) cranes=10}
}
