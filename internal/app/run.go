package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/ranking"
	"github.com/mselser95/signbench/internal/stats"
	"github.com/mselser95/signbench/pkg/types"
)

// Start brings up the optional HTTP server and marks the application
// ready. It returns immediately; the server runs in the background
// until Shutdown.
func (a *App) Start() {
	if a.httpServer != nil {
		a.wg.Add(1)

		go func() {
			defer a.wg.Done()

			err := a.httpServer.Start()
			if err != nil {
				a.logger.Error("http-server-failed", zap.Error(err))
			}
		}()
	}

	a.healthChecker.SetReady(true)
}

// Run executes one full benchmark pass over the configured services
// and chains, reduces the statistics, computes the rankings and
// returns the assembled run. The run is also handed to storage and
// published for the HTTP API.
func (a *App) Run(ctx context.Context) (*types.BenchmarkRun, error) {
	startedAt := time.Now().UTC()

	a.logger.Info("benchmark-starting",
		zap.Strings("services", a.registry.Names()),
		zap.Int("warmup_iterations", a.cfg.WarmupIterations),
		zap.Int("measured_iterations", a.cfg.MeasuredIteration),
		zap.Duration("request_delay", a.cfg.RequestDelay),
	)

	results := a.batch.Run(ctx, a.chains)
	if len(results) == 0 {
		return nil, fmt.Errorf("no service produced results")
	}

	serviceStats := stats.BuildAll(results)
	rankings := ranking.RankAll(serviceStats, a.chains)

	run := &types.BenchmarkRun{
		ID:          uuid.NewString(),
		StartedAt:   startedAt,
		CompletedAt: time.Now().UTC(),
		Config: types.RunConfigSummary{
			Message:           a.cfg.Message,
			WarmupIterations:  a.cfg.WarmupIterations,
			MeasuredIteration: a.cfg.MeasuredIteration,
			RequestDelay:      a.cfg.RequestDelay,
			Chains:            a.chains,
		},
		Services: serviceStats,
		Rankings: rankings,
	}

	a.latest.Store(run)

	err := a.store.StoreRun(ctx, run)
	if err != nil {
		// Persistence failure must not discard a completed run.
		a.logger.Error("store-run-failed", zap.Error(err))
	}

	a.logger.Info("benchmark-completed",
		zap.String("run_id", run.ID),
		zap.Duration("elapsed", run.CompletedAt.Sub(run.StartedAt)),
		zap.Int("services", len(run.Services)),
	)

	return run, nil
}

// PrintRun renders the run to the console.
func (a *App) PrintRun(run *types.BenchmarkRun) {
	a.printer.PrintRun(run)
}
