package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mselser95/signbench/internal/ranking"
	"github.com/mselser95/signbench/internal/report"
	"github.com/mselser95/signbench/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rankCmd = &cobra.Command{
	Use:   "rank <run.json>",
	Short: "Re-rank and print a previously exported run",
	Long: `Loads a benchmark run exported with 'run --export', recomputes the
per-chain leaderboards from the stored statistics and prints the full
report. Useful for inspecting old runs without re-hitting any provider.`,
	Args: cobra.ExactArgs(1),
	RunE: rankRun,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(rankCmd)
}

func rankRun(cmd *cobra.Command, args []string) error {
	logger, err := config.NewLogger("info")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	run, err := report.LoadRun(args[0])
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}

	// Rankings are derived data; recompute them so the leaderboard
	// reflects the stats even if the file was edited by hand.
	run.Rankings = ranking.RankAll(run.Services, run.Config.Chains)

	report.NewConsolePrinter(logger).PrintRun(run)

	return nil
}
