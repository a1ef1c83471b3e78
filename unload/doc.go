// Package unload finds the crane-unloading route: the monotone East/South
// path from the top-left cell of a grid.Grid that never enters a building
// and collects the most cranes. The route may stop at any cell.
//
// 🚀 Algorithms:
//
//   - Exhaustive — enumerates every East/South arrangement of length R+C-2,
//     replaying each from the origin until the first blocked step. Exact and
//     exponential; used as ground truth. Requires R+C-2 < 64.
//   - DynamicProgramming — fills a table of best-path-to-cell entries with
//     one reachability recurrence and returns the best entry anywhere in
//     the table. Exact, O(R·C).
//
// ⚙️ Usage:
//
//	g, _ := grid.ParseString("1 X\n1 1\n")
//
//	res, err := unload.Solve(g, unload.DefaultOptions())
//	if err != nil {
//	  // handle ErrNilGrid / ErrPathTooLong / ErrUnsupportedAlgorithm
//	}
//	fmt.Println(res.Path.TotalCranes(), res.Path.Steps())
//
// Both solvers consume the same grid and return the same path.Path contract,
// so their scores can be diffed directly for validation.
//
// Complexity:
//
//   - Exhaustive:         Time O(2^(R+C-2)·(R+C)), Memory O(R+C).
//   - DynamicProgramming: Time O(R·C), Memory O(R·C) (FullTable) or O(C + R·C links) (TwoRows).
//
// Errors:
//
//   - ErrNilGrid              — grid is nil.
//   - ErrPathTooLong          — R+C-2 ≥ 64 for Exhaustive.
//   - ErrBadMemoryMode        — unknown DPOptions.MemoryMode.
//   - ErrUnsupportedAlgorithm — unknown Options.Algo.
package unload
