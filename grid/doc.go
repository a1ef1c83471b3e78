// Package grid models the crane-unloading map: a rectangular, immutable
// array of cells where every cell is either EMPTY (holding a non-negative
// number of cranes) or a BUILDING that no path may enter.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell and answers bounds and cell queries in O(1).
//   - FromCounts builds a grid from plain integers, using BuildingMark for buildings.
//   - Parse / ParseString read the text form; Grid.String writes it back.
//   - Random generates reproducible grids from a seed for tests and benchmarks.
//
// Text format:
//
//	// comment lines and blank lines are ignored
//	0 3 X
//	. 1 2
//	# 4 .
//
//	X or #  — building
//	.       — empty, 0 cranes
//	N       — empty, N cranes (N ≥ 0)
//
// Complexity:
//
//   - New, FromCounts, Parse, Random: O(R×C) time and memory.
//   - Get, Kind, Cranes, InBounds:     O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCranes: an EMPTY cell carries a negative count.
//   - ErrBadCellKind: a cell is neither Empty nor Building.
//   - ErrBadToken: unparsable token in the text form.
//   - ErrBadProbability, ErrBadMaxCranes: invalid RandomOptions.
package grid
