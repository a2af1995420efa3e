package main

import (
	"github.com/bastiangx/wordindex/internal/cli"
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <file> [prefix]",
		Short: "List indexed entries under a prefix with their positions",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.buildIndex(args[0])
			if err != nil {
				reportFileError(cmd.OutOrStdout(), err)
				return err
			}
			prefix := ""
			if len(args) == 2 {
				prefix = args[1]
			}
			out := cmd.OutOrStdout()
			return cli.WriteEntries(out, idx.Entries(prefix, limit), a.colorize(out))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum entries to list (0 for all)")
	return cmd
}
