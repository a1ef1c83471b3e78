// Package cranes solves the crane-unloading problem: on a rectangular map of
// empty lots (each holding some cranes) and buildings, find the East/South
// route from the north-west corner that never enters a building and passes
// the most cranes.
//
// 🚀 What is inside?
//
//	grid/    — immutable crane map: construction, text parsing, rendering, random generation
//	path/    — monotone East/South routes with cheap, shareable move history
//	unload/  — the solvers: Exhaustive (ground truth) and DynamicProgramming (O(R·C)),
//	           plus the Solve dispatcher
//	cmd/cranes — CLI harness: solve a grid, compare solvers, run timing sweeps
//
// Quick ASCII example:
//
//	1 X        * X
//	1 1   →    * *     3 cranes via [south east]
//
//	go get github.com/katalvlaran/cranes
package cranes
