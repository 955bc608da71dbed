package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/commitlint-go/commitlint/internal/history"
	"github.com/commitlint-go/commitlint/internal/storage"
)

// createHistoryCommand creates the history command.
func createHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "Show recent lint runs",
		SilenceUsage: true,
		RunE:         runHistoryCommand,
	}

	cmd.Flags().Int("limit", 10, "Number of runs to show")
	cmd.Flags().Bool("violations", false, "Show the violations of failed runs")
	return cmd
}

func runHistoryCommand(cmd *cobra.Command, _ []string) error {
	env, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}
	showViolations, err := cmd.Flags().GetBool("violations")
	if err != nil {
		return fmt.Errorf("failed to get violations flag: %w", err)
	}

	dbPath, err := storage.New(env.fs).HistoryPath()
	if err != nil {
		return err
	}

	store, err := history.Open(env.ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.RecentRuns(env.ctx, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No recorded lint runs")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		status := color.GreenString("ok")
		if !run.Valid {
			status = color.RedString("failed")
		}
		_, _ = fmt.Fprintf(out, "#%d  %s  %s  %d commit(s), %d failed  [%s]\n",
			run.ID, run.RecordedAt.Format("2006-01-02 15:04:05"), run.Source,
			run.Total, run.Failed, status)

		if showViolations && !run.Valid {
			violations, err := store.Violations(env.ctx, run.ID)
			if err != nil {
				return err
			}
			for _, v := range violations {
				_, _ = fmt.Fprintf(out, "    %s: %s [%s]\n", v.Header, v.Message, v.RuleID)
			}
		}
	}

	return nil
}
