// Package pourpath solves liquid-sort puzzles: tubes of fixed capacity hold
// stacked colored liquid, and the goal is a sequence of pours that leaves
// every tube full of a single color or empty.
//
// Under the hood, everything is organized in small packages:
//
//	tube/          one container: the empty-prefix invariant and the pour rule
//	state/         a configuration of tubes, canonical keys, moves and the sorted target
//	core/          thread-safe directed graph holding the transition graph
//	solver/        breadth-first search with hooks, limits and parallel layers
//	level/         level lines and YAML level packs, builtin levels
//	render/        DOT, JSON and text output of results
//	store/         SQLite cache of solved levels
//	metrics/       Prometheus counters for traversals
//	cmd/pourpath/  the CLI
//
// Quick example:
//
//	res, _ := solver.Solve(state.MustParse("RY,YR,EE"))
//	fmt.Println(res.Moves) // [0->2 1->0 1->2]
//
// Tube strings list slots top first; 'E' marks empty space, so "EERR" is a
// tube half full of red.
package pourpath
