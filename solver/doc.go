// Package solver runs a breadth-first search over the configurations of a
// liquid-sort puzzle, building the transition graph and extracting a
// shortest move sequence to the sorted configuration.
//
// What
//
//   - Explore configurations in non-decreasing move count from the initial one.
//   - Deduplicate by canonical key (state.Key), so tube order never matters.
//   - Returns a Result containing:
//   - Graph: directed core.Graph, one vertex per canonical key, one edge
//     per first-discovery transition labelled "i->j"
//   - Solution, Moves: first visit of the target and its move history
//   - Order, Depth, Parent, Via: visit sequence and BFS-tree bookkeeping
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a configuration is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth, MaxStates and StopAtSolution.
//
// Determinism
//
//	Successors are generated in move order (source outer, destination inner)
//	and merged in frontier order, so Order, Depth, Moves and the graph are
//	reproducible. WithWorkers(n) computes the successors of a layer on n
//	goroutines but keeps a single writer for the seen set and the graph,
//	so a parallel run returns exactly what a sequential one does.
//
// Exhaustive by default
//
//	The traversal continues after the solution is found until the reachable
//	space is exhausted, which gives the complete graph for rendering.
//	WithStopAtSolution returns as soon as the target is visited; the moves
//	are the same either way.
//
// Unsolvable puzzles
//
//	If the target is never reached, Solve returns a Result with a nil
//	Solution and a nil error. Stats.Complete tells a real dead end apart
//	from a run cut short by MaxDepth.
//
// Complexity (S = reachable configurations, n tubes, capacity c)
//
//   - Time:   O(S·n²·c)
//   - Memory: O(S·(n·c + depth))
//
// Usage
//
//	res, err := solver.Solve(state.MustParse("RY,YR,EE"),
//	    solver.WithContext(ctx),
//	    solver.WithStopAtSolution(),
//	    solver.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrStateNil, ErrOptionViolation, ErrStateLimit, state construction
//	    // errors, context errors, or a wrapped OnVisit error
//	}
//	if res.Solved() {
//	    fmt.Println(res.Moves) // [0->2 1->0 1->2]
//	}
//
// Errors
//
//   - ErrStateNil         if the initial state is nil.
//   - ErrOptionViolation  for invalid options (negative MaxDepth, Workers < 1).
//   - ErrStateLimit       when discovery would exceed MaxStates before the
//     target was visited. A solved run that reaches the limit just stops.
//   - state.ErrUnevenColor and friends when no sorted target exists.
//   - Wrapped user-supplied hook errors from OnVisit.
package solver
