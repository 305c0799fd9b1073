package solver_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pourpath/solver"
	"github.com/katalvlaran/pourpath/state"
)

// BenchmarkSolve_ThreeColors measures an exhaustive run on a capacity-four level.
func BenchmarkSolve_ThreeColors(b *testing.B) {
	initial := state.MustParse(threeCaps)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(initial)
	}
}

// BenchmarkSolve_Workers compares layer expansion across worker counts.
func BenchmarkSolve_Workers(b *testing.B) {
	initial := state.MustParse(threeCaps)
	for _, n := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = solver.Solve(initial, solver.WithWorkers(n))
			}
		})
	}
}

// BenchmarkSolve_StopAtSolution measures the pure-solver mode.
func BenchmarkSolve_StopAtSolution(b *testing.B) {
	initial := state.MustParse(threeCaps)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(initial, solver.WithStopAtSolution())
	}
}
