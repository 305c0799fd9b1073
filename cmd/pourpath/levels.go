package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLevelsCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the available levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.pack()
			if err != nil {
				return err
			}
			if asYAML {
				return p.Encode(cmd.OutOrStdout())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTUBES\tCOLORS\tNOTE")
			for _, l := range p.Levels {
				s, err := l.State()
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", l.Name, l.Tubes, len(s.Colors()), l.Note)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the pack as YAML")

	return cmd
}
