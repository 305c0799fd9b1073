package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pourpath/render"
	"github.com/katalvlaran/pourpath/solver"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		tubes      string
		format     string
		output     string
		labels     bool
		positional bool
	)
	cmd := &cobra.Command{
		Use:   "graph [level]",
		Short: "Export the transition graph of a level",
		Long: `Explore every configuration reachable from a level and write the
transition graph as Graphviz DOT or JSON. The solution path is highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "json" {
				return fmt.Errorf("unknown format %q (want dot or json)", format)
			}
			initial, name, err := a.initial(tubes, args)
			if err != nil {
				return err
			}
			res, err := solver.Solve(initial, a.solverOptions(cmd)...)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if format == "json" {
				return render.JSON(w, res)
			}

			return render.DOT(w, res, render.DOTOptions{
				Name:              label(name, initial),
				EdgeLabels:        labels,
				Positional:        positional,
				HighlightSolution: true,
			})
		},
	}
	cmd.Flags().StringVar(&tubes, "tubes", "", "raw configuration, comma-separated tubes, top first")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "dot or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&labels, "labels", true, "label edges with their move")
	cmd.Flags().BoolVar(&positional, "positional", false, "label vertices with tube positions instead of canonical keys")

	return cmd
}
