package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pourpath/core"
	"github.com/katalvlaran/pourpath/metrics"
	"github.com/katalvlaran/pourpath/state"
)

// Sentinel errors for solver execution.
var (
	// ErrStateNil is returned if a nil initial state is passed.
	ErrStateNil = errors.New("solver: initial state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrStateLimit is returned when discovery would exceed MaxStates.
	ErrStateLimit = errors.New("solver: state limit exceeded")
)

// Vertex metadata keys set on every discovered configuration.
const (
	// MetaDepth holds the BFS depth (int) of the configuration.
	MetaDepth = "depth"
	// MetaState holds the positional form (string) of the first
	// representative discovered for the canonical key.
	MetaState = "state"
	// MetaSolved reports (bool) whether every tube is full-monochrome or empty.
	MetaSolved = "solved"
)

// Option configures the solver via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a configuration is first discovered.
	OnEnqueue func(s *state.State, depth int)

	// OnDequeue is called immediately before visiting a configuration.
	OnDequeue func(s *state.State, depth int)

	// OnVisit is called when visiting a configuration. A returned error
	// aborts the traversal and is propagated wrapped.
	OnVisit func(s *state.State, depth int) error

	// MaxDepth, if > 0, stops expanding configurations at that depth.
	MaxDepth int

	// MaxStates, if > 0, caps the number of distinct configurations.
	// Hitting it after the target was visited ends the run without error.
	MaxStates int

	// StopAtSolution ends the traversal as soon as the target is visited.
	// The default explores the whole reachable space.
	StopAtSolution bool

	// Workers > 1 computes successors of a BFS layer concurrently.
	Workers int

	// Logger receives progress records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Recorder receives traversal counters. Defaults to metrics.Nop.
	Recorder metrics.Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - exhaustive exploration, single worker
//   - no-op hooks, discarding logger, no-op recorder.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(*state.State, int) {},
		OnDequeue: func(*state.State, int) {},
		OnVisit:   func(*state.State, int) error { return nil },
		Workers:   1,
		Logger:    slog.New(slog.DiscardHandler),
		Recorder:  metrics.Nop{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(s *state.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s *state.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(s *state.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion at the given depth.
//
//	d > 0: configurations at depth d are visited but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates aborts with ErrStateLimit once more than n distinct
// configurations would be discovered. Zero disables the limit.
// If the target was already visited, the traversal stops instead and Solve
// returns the solved Result with Stats.Complete false and a nil error.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithStopAtSolution ends the traversal at the first visit of the target.
func WithStopAtSolution() Option {
	return func(o *Options) { o.StopAtSolution = true }
}

// WithWorkers sets how many goroutines compute successors per layer.
// n must be at least 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes progress records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder routes traversal counters to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// Stats summarizes one traversal.
type Stats struct {
	Expanded    int           // configurations dequeued
	Discovered  int           // distinct configurations, initial included
	Duplicates  int           // successors skipped as already seen
	Edges       int           // transitions added to the graph
	MaxFrontier int           // widest BFS layer
	Depth       int           // deepest layer visited
	Elapsed     time.Duration // wall time
	Complete    bool          // true when the reachable space was exhausted
}

// Result holds the outcome of a traversal:
//   - Graph: directed, one vertex per canonical key, one edge per
//     first-discovery transition labelled with its move.
//   - Solution, Moves: the first visit of the target and its move history;
//     nil when the target is unreachable.
//   - Order: canonical keys in visit sequence.
//   - Depth, Parent, Via: BFS-tree bookkeeping keyed by canonical key.
type Result struct {
	Graph    *core.Graph
	Initial  *state.State
	Target   *state.State
	Solution *state.State
	Moves    []state.Move
	Order    []string
	Depth    map[string]int
	Parent   map[string]string
	Via      map[string]state.Move
	Stats    Stats
}

// Solved reports whether the target configuration was reached.
func (r *Result) Solved() bool { return r.Solution != nil }

// PathTo reconstructs the canonical keys from the initial configuration to
// dest. Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("solver: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// MovesTo rebuilds the move sequence to dest from back-pointers alone.
// It matches Moves for the target.
func (r *Result) MovesTo(dest string) ([]state.Move, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	moves := make([]state.Move, 0, len(path)-1)
	for _, key := range path[1:] {
		moves = append(moves, r.Via[key])
	}

	return moves, nil
}
