package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Aligner.Command))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				detail := status.Detail
				if status.Available {
					state = "ok"
					detail = ""
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail, status.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Dependency", "Command", "Status", "Detail", "Purpose"},
				rows,
			))

			return deps.Missing(statuses)
		},
	}
}
