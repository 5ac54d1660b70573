package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

// PostgresStorage implements Storage using PostgreSQL. One row goes
// into benchmark_runs per run, one into benchmark_chain_stats per
// (service, chain) statistics record, consolidated included.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// StoreRun persists the run header and every chain statistics row in a
// single transaction, so a partially stored run never exists.
func (p *PostgresStorage) StoreRun(ctx context.Context, run *types.BenchmarkRun) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO benchmark_runs (
			id, started_at, completed_at, message,
			warmup_iterations, measured_iterations, request_delay_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		run.ID,
		run.StartedAt,
		run.CompletedAt,
		run.Config.Message,
		run.Config.WarmupIterations,
		run.Config.MeasuredIteration,
		run.Config.RequestDelay.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, ss := range run.Services {
		err = p.insertChainStats(ctx, tx, run.ID, ss.ServiceName, "ethereum", ss.Ethereum)
		if err != nil {
			return err
		}
		err = p.insertChainStats(ctx, tx, run.ID, ss.ServiceName, "solana", ss.Solana)
		if err != nil {
			return err
		}
		err = p.insertChainStats(ctx, tx, run.ID, ss.ServiceName, "consolidated", ss.Consolidated)
		if err != nil {
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	p.logger.Debug("run-stored",
		zap.String("run-id", run.ID),
		zap.Int("service-count", len(run.Services)))

	return nil
}

func (p *PostgresStorage) insertChainStats(ctx context.Context, tx *sql.Tx, runID, service, chain string, cs *types.ChainStats) error {
	if cs == nil {
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO benchmark_chain_stats (
			run_id, service_name, chain, iterations,
			mean_ms, median_ms, min_ms, max_ms, p95_ms, p99_ms,
			stddev_ms, variance, total_latency_ms,
			success_count, error_count, success_rate,
			verified_count, verification_failures
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18
		)
	`,
		runID,
		service,
		chain,
		cs.Iterations,
		cs.Mean,
		cs.Median,
		cs.Min,
		cs.Max,
		cs.P95,
		cs.P99,
		cs.StandardDeviation,
		cs.Variance,
		cs.TotalLatency,
		cs.SuccessCount,
		cs.ErrorCount,
		cs.SuccessRate,
		cs.VerifiedCount,
		cs.VerificationFailures,
	)
	if err != nil {
		return fmt.Errorf("insert chain stats for %s/%s: %w", service, chain, err)
	}

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
