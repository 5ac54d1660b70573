package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

// ConsoleStorage implements Storage by printing a compact run summary.
// The full report rendering lives in the report package; this is the
// persistence fallback when no database is configured.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// StoreRun prints a one-line summary per service and chain.
func (c *ConsoleStorage) StoreRun(ctx context.Context, run *types.BenchmarkRun) error {
	fmt.Printf("💾 RUN %s (%d services, not persisted, console storage)\n", run.ID, len(run.Services))

	for _, ss := range run.Services {
		if ss.Ethereum != nil {
			fmt.Printf("  %s/ethereum: median %.2fms over %d iterations\n",
				ss.ServiceName, ss.Ethereum.Median, ss.Ethereum.Iterations)
		}
		if ss.Solana != nil {
			fmt.Printf("  %s/solana: median %.2fms over %d iterations\n",
				ss.ServiceName, ss.Solana.Median, ss.Solana.Iterations)
		}
	}

	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
