package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pourpath/core"
	"github.com/katalvlaran/pourpath/state"
)

// errCapped ends a traversal that hit MaxStates after the solution was
// recorded. Solve reports it as an incomplete, successful run.
var errCapped = errors.New("solver: state limit reached after solution")

// queueItem pairs a configuration with its BFS depth.
type queueItem struct {
	st    *state.State
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	opts   Options
	ctx    context.Context
	target string
	queue  []queueItem
	seen   map[string]struct{}
	res    *Result
	cut    bool // MaxDepth left a configuration unexpanded
}

// Solve explores the configurations reachable from initial breadth-first,
// applying any number of functional Options.
//
// The returned Result always carries the transition graph built so far.
// An unsolvable puzzle is not an error: Solution is nil.
// Returns ErrStateNil, ErrOptionViolation, construction errors from
// state.Target (malformed input), ErrStateLimit, context errors, or a
// wrapped OnVisit error.
//
// Complexity: O(S·n²·c) for S reachable configurations of n tubes with
// capacity c.
func Solve(initial *state.State, opts ...Option) (*Result, error) {
	if initial == nil {
		return nil, ErrStateNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	target, err := initial.Target()
	if err != nil {
		return nil, err
	}

	w := &walker{
		opts:   o,
		ctx:    o.Ctx,
		target: target.Key(),
		seen:   make(map[string]struct{}),
		res: &Result{
			Graph:   core.NewGraph(),
			Initial: initial,
			Target:  target,
			Depth:   make(map[string]int),
			Parent:  make(map[string]string),
			Via:     make(map[string]state.Move),
		},
	}

	o.Logger.Info("solve started",
		slog.String("initial", initial.String()),
		slog.Int("tubes", initial.Len()),
		slog.Int("capacity", initial.Cap()),
		slog.Int("workers", o.Workers),
		slog.Bool("stop_at_solution", o.StopAtSolution))

	start := time.Now()
	if err = w.discover(initial, 0, nil); err == nil {
		err = w.loop()
	}
	if errors.Is(err, errCapped) {
		o.Logger.Info("state limit reached after solution",
			slog.Int("max_states", o.MaxStates))
		err = nil
	}
	w.finish(time.Since(start), err)

	return w.res, err
}

// discover marks s seen at depth d, adds its vertex and the edge from
// parent, calls OnEnqueue, and appends it to the queue.
func (w *walker) discover(s *state.State, d int, parent *state.State) error {
	key := s.Key()
	if w.opts.MaxStates > 0 && len(w.seen) >= w.opts.MaxStates {
		if w.res.Solution != nil {
			return errCapped
		}
		return fmt.Errorf("%w: %d states discovered", ErrStateLimit, len(w.seen))
	}
	w.seen[key] = struct{}{}
	w.res.Depth[key] = d

	g := w.res.Graph
	if err := g.AddVertex(key); err != nil {
		return err
	}
	if err := g.SetVertexMetadata(key, MetaDepth, d); err != nil {
		return err
	}
	if err := g.SetVertexMetadata(key, MetaState, s.String()); err != nil {
		return err
	}
	if err := g.SetVertexMetadata(key, MetaSolved, s.Solved()); err != nil {
		return err
	}

	if parent != nil {
		m, _ := s.LastMove()
		w.res.Parent[key] = parent.Key()
		w.res.Via[key] = m
		if _, err := g.AddEdge(parent.Key(), key, core.WithEdgeLabel(m.String())); err != nil {
			return err
		}
		w.res.Stats.Edges++
	}
	w.res.Stats.Discovered++
	w.opts.Recorder.StateDiscovered()
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem{st: s, depth: d})

	return nil
}

// loop processes the queue one layer at a time until it is empty,
// the solution is found in stop mode, an error occurs, or the context ends.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		layer := w.queue
		w.queue = nil
		if len(layer) > w.res.Stats.MaxFrontier {
			w.res.Stats.MaxFrontier = len(layer)
		}

		var succ [][]*state.State
		if w.opts.Workers > 1 {
			var err error
			if succ, err = w.expandLayer(layer); err != nil {
				return err
			}
		}

		for i, item := range layer {
			// cancellation check (once per dequeue)
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			w.opts.OnDequeue(item.st, item.depth)
			if err := w.visit(item); err != nil {
				return err
			}
			if w.opts.StopAtSolution && w.res.Solution != nil {
				return nil
			}
			if !w.expandable(item) {
				w.cut = true
				continue
			}

			var next []*state.State
			if succ != nil {
				next = succ[i]
			} else {
				var err error
				if next, err = item.st.Successors(); err != nil {
					return err
				}
			}
			if err := w.merge(item, next); err != nil {
				return err
			}
		}

		w.opts.Logger.Debug("layer done",
			slog.Int("depth", layer[0].depth),
			slog.Int("frontier", len(layer)),
			slog.Int("discovered", w.res.Stats.Discovered))
	}
	w.res.Stats.Complete = !w.cut

	return nil
}

// visit records the configuration in Order, calls OnVisit, and checks
// it against the target.
func (w *walker) visit(item queueItem) error {
	key := item.st.Key()
	w.res.Order = append(w.res.Order, key)
	w.res.Stats.Expanded++
	if item.depth > w.res.Stats.Depth {
		w.res.Stats.Depth = item.depth
	}
	w.opts.Recorder.StateExpanded()
	if err := w.opts.OnVisit(item.st, item.depth); err != nil {
		return fmt.Errorf("solver: OnVisit error at %q: %w", key, err)
	}

	if w.res.Solution == nil && key == w.target {
		w.res.Solution = item.st
		w.res.Moves = item.st.Moves()
		w.opts.Logger.Info("solution found",
			slog.Int("depth", item.depth),
			slog.Int("expanded", w.res.Stats.Expanded),
			slog.Int("discovered", w.res.Stats.Discovered))
	}

	return nil
}

// expandable reports whether item lies within MaxDepth.
func (w *walker) expandable(item queueItem) bool {
	return w.opts.MaxDepth == 0 || item.depth < w.opts.MaxDepth
}

// merge discovers every unseen successor of item in move order.
func (w *walker) merge(item queueItem, next []*state.State) error {
	for _, s := range next {
		if _, ok := w.seen[s.Key()]; ok {
			w.res.Stats.Duplicates++
			w.opts.Recorder.DuplicateSkipped()
			continue
		}
		if err := w.discover(s, item.depth+1, item.st); err != nil {
			return err
		}
	}

	return nil
}

// expandLayer computes successors of every expandable item concurrently.
// The result is indexed like layer so merging stays in frontier order.
func (w *walker) expandLayer(layer []queueItem) ([][]*state.State, error) {
	out := make([][]*state.State, len(layer))
	g, ctx := errgroup.WithContext(w.ctx)
	g.SetLimit(w.opts.Workers)
	for i, item := range layer {
		if !w.expandable(item) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, err := item.st.Successors()
			if err != nil {
				return err
			}
			out[i] = next

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// finish stamps elapsed time and reports the outcome.
func (w *walker) finish(d time.Duration, err error) {
	st := &w.res.Stats
	st.Elapsed = d
	w.opts.Recorder.SolveFinished(d, w.res.Solved())

	attrs := []any{
		slog.Bool("solved", w.res.Solved()),
		slog.Int("moves", len(w.res.Moves)),
		slog.Int("expanded", st.Expanded),
		slog.Int("discovered", st.Discovered),
		slog.Int("duplicates", st.Duplicates),
		slog.Int("max_frontier", st.MaxFrontier),
		slog.Bool("complete", st.Complete),
		slog.Duration("elapsed", d),
	}
	if err != nil {
		w.opts.Logger.Warn("solve aborted", append(attrs, slog.Any("error", err))...)
		return
	}
	w.opts.Logger.Info("solve finished", attrs...)
}
