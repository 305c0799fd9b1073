package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pourpath/render"
	"github.com/katalvlaran/pourpath/solver"
	"github.com/katalvlaran/pourpath/state"
	"github.com/katalvlaran/pourpath/store"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		tubes string
		steps bool
	)
	cmd := &cobra.Command{
		Use:   "solve [level]",
		Short: "Print the shortest pour sequence for a level",
		Long: `Solve a builtin or packed level by name, or any configuration given
with --tubes, e.g. --tubes RY,YR,EE. Moves are printed as "from -> to" with
0-based tube positions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, name, err := a.initial(tubes, args)
			if err != nil {
				return err
			}
			moves, solvable, err := a.solve(cmd, initial)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !solvable {
				fmt.Fprintf(out, "%s has no solution\n", label(name, initial))
				return nil
			}
			if !steps {
				return render.Moves(out, moves)
			}
			p, err := a.pack()
			if err != nil {
				return err
			}

			return render.Steps(out, initial, moves, p.ColorName)
		},
	}
	cmd.Flags().StringVar(&tubes, "tubes", "", "raw configuration, comma-separated tubes, top first")
	cmd.Flags().BoolVar(&steps, "steps", false, "describe every pour and the resulting tubes")

	return cmd
}

// solve answers from the cache when possible, otherwise runs the solver
// and caches the outcome. An unsolved run cut short by a limit is not cached;
// a solved one is, since BFS moves are already minimal.
func (a *app) solve(cmd *cobra.Command, initial *state.State) ([]state.Move, bool, error) {
	ctx := cmd.Context()
	var db *store.SQLiteStore
	if a.cfg.Cache != "" {
		var err error
		if db, err = store.Open(a.cfg.Cache); err != nil {
			return nil, false, err
		}
		defer db.Close()

		rec, err := db.Get(ctx, initial.Key())
		switch {
		case err == nil:
			a.logger.Info("cache hit", slog.String("key", rec.Key), slog.String("id", rec.ID.String()))
			moves, err := rec.MovesFor(initial)
			return moves, rec.Solvable, err
		case !errors.Is(err, store.ErrNotFound):
			return nil, false, err
		}
	}

	res, err := solver.Solve(initial, a.solverOptions(cmd)...)
	if err != nil {
		return nil, false, err
	}
	if !res.Solved() && !res.Stats.Complete {
		return nil, false, fmt.Errorf("no solution within limits (%d configurations, depth %d)",
			res.Stats.Discovered, res.Stats.Depth)
	}
	if db != nil {
		if err := db.Put(ctx, store.NewRecord(res)); err != nil {
			return nil, false, err
		}
	}

	return res.Moves, res.Solved(), nil
}

func label(name string, s *state.State) string {
	if name != "" {
		return name
	}

	return s.String()
}
