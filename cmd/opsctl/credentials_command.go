package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/services"
)

func newCredentialsCommand(ctx *commandContext) *cobra.Command {
	credsCmd := &cobra.Command{
		Use:   "credentials",
		Short: "ML service credentials utilities",
	}
	credsCmd.AddCommand(newCredentialsCheckCommand(ctx))
	return credsCmd
}

func newCredentialsCheckCommand(ctx *commandContext) *cobra.Command {
	var concurrency int
	var rate float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe every stored set of credentials against its ML service",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer ctx.close()

			checker, err := ctx.newChecker(cmd.Context(), services.CheckOptions{
				Concurrency: concurrency,
				Rate:        rate,
			})
			if err != nil {
				return err
			}

			results, err := checker.CheckAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("check credentials: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No credentials stored")
				return nil
			}

			fmt.Fprintln(out, renderCredentialsResults(results))

			failed := 0
			for _, r := range results {
				if !r.OK {
					failed++
				}
			}
			fmt.Fprintf(out, "%d checked, %d failed\n", len(results), failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d credentials failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Maximum parallel probes (default from CREDENTIALS_CHECK_CONCURRENCY)")
	cmd.Flags().Float64Var(&rate, "rate", -1, "Probes per second, 0 for unlimited (default from CREDENTIALS_CHECK_RATE)")
	return cmd
}

func renderCredentialsResults(results []domain.CredentialsCheckResult) string {
	columns := []column{
		leftColumn("ID"),
		leftColumn("Class"),
		leftColumn("Service"),
		leftColumn("URL"),
		leftColumn("Status"),
		rightColumn("Latency"),
		leftColumn("Error"),
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "FAIL"
		if r.OK {
			status = "OK"
		}
		if r.StatusCode != 0 {
			status += " " + strconv.Itoa(r.StatusCode)
		}
		latency := ""
		if r.Latency > 0 {
			latency = r.Latency.Round(time.Millisecond).String()
		}
		rows = append(rows, []string{
			r.CredentialsID.String(),
			r.ClassID,
			string(r.ServiceType),
			r.URL,
			status,
			latency,
			r.Error,
		})
	}
	return renderTable(columns, rows)
}
