package storage

import (
	"context"

	"github.com/mselser95/signbench/pkg/types"
)

// Storage is the interface for persisting benchmark runs.
type Storage interface {
	// StoreRun stores a completed benchmark run.
	StoreRun(ctx context.Context, run *types.BenchmarkRun) error

	// Close closes the storage connection.
	Close() error
}
