package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database utilities",
	}
	dbCmd.AddCommand(newDBSmokeCommand(ctx))
	return dbCmd
}

func newDBSmokeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Check the database connection and count rows per table",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			inspector, err := ctx.newInspector(cmd.Context())
			if err != nil {
				return err
			}

			counts, err := inspector.Smoke(cmd.Context())
			if err != nil {
				return fmt.Errorf("smoke test: %w", err)
			}

			rows := make([][]string, 0, len(counts))
			for _, tc := range counts {
				rows = append(rows, []string{tc.Table, humanize.Comma(tc.Rows)})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]column{leftColumn("Table"), rightColumn("Rows")}, rows))
			fmt.Fprintln(out, "Database OK")
			return nil
		},
	}
}
