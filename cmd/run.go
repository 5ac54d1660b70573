package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mselser95/signbench/internal/app"
	"github.com/mselser95/signbench/internal/report"
	"github.com/mselser95/signbench/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the benchmark",
	Long: `Executes the benchmark against every configured service:
1. Initialize each provider (a failing provider is skipped, not fatal)
2. Run warmup iterations, discarded from statistics
3. Run measured iterations and verify every returned signature
4. Reduce per-chain statistics and rank services by median latency

Services and iteration counts come from the environment (BENCH_* variables).
Use --export to also write the run to a JSON file.`,
	RunE: runBenchmark,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("export", "e", "", "Write the completed run to a JSON file")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	// Optional .env, same variables as the real environment
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	exportPath, _ := cmd.Flags().GetString("export")

	application, err := app.New(cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	defer func() {
		_ = application.Shutdown()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.Start()

	run, err := application.Run(ctx)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	application.PrintRun(run)

	if exportPath != "" {
		err = report.ExportRun(exportPath, run)
		if err != nil {
			return fmt.Errorf("export run: %w", err)
		}
	}

	return nil
}
