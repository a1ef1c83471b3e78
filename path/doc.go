// Package path describes monotone crane-collecting routes over a grid.Grid.
//
// A Path starts at the origin (0,0) and grows one Step at a time, either
// East (column+1) or South (row+1). It never leaves the grid and never
// enters a building; its score is the sum of crane counts of every visited
// cell, origin included.
//
// Path is a small value. Its move history is a persistent parent-linked
// list, so copying a Path is O(1) and two copies can be extended
// independently while sharing their common prefix. Dynamic-programming
// tables therefore store one Path per cell without O(R+C) copies.
//
//	p := path.New(g)
//	if p.IsStepValid(path.South) {
//		p.AddStep(path.South)
//	}
//	fmt.Println(p.TotalCranes(), p.Steps())
//
// Errors (from Validate):
//
//   - ErrBadStep: a step other than East or South.
//   - ErrOutOfBounds: a step leaves the grid.
//   - ErrBuilding: a visited cell is a building.
//   - ErrScoreMismatch: the cached total disagrees with the grid.
package path
