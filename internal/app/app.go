package app

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/bench"
	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/internal/report"
	"github.com/mselser95/signbench/internal/storage"
	"github.com/mselser95/signbench/pkg/cache"
	"github.com/mselser95/signbench/pkg/config"
	"github.com/mselser95/signbench/pkg/healthprobe"
	"github.com/mselser95/signbench/pkg/httpserver"
	"github.com/mselser95/signbench/pkg/types"
)

// App wires the benchmark components together: the provider registry,
// the verification gate, the batch orchestrator, reporting, storage and
// the optional metrics HTTP server.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	registry    *provider.Registry
	gate        *bench.Gate
	batch       *bench.BatchOrchestrator
	verifyCache cache.Cache
	store       storage.Storage
	printer     *report.ConsolePrinter
	chains      []types.Chain

	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server

	latest atomic.Pointer[types.BenchmarkRun]
	wg     sync.WaitGroup
}

// Options customizes application construction.
type Options struct {
	// Registry lets callers supply pre-built providers. When nil, the
	// registry is populated from cfg.Services with local signers.
	Registry *provider.Registry
}

// New creates the application and all its components.
func New(cfg *config.Config, logger *zap.Logger, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	a := &App{
		cfg:           cfg,
		logger:        logger,
		healthChecker: healthprobe.New(),
		printer:       report.NewConsolePrinter(logger),
	}

	err := a.setupChains()
	if err != nil {
		return nil, err
	}

	err = a.setupRegistry(opts.Registry)
	if err != nil {
		return nil, err
	}

	err = a.setupVerification()
	if err != nil {
		return nil, err
	}

	a.setupOrchestrator()

	err = a.setupStorage()
	if err != nil {
		return nil, err
	}

	a.setupHTTPServer()

	return a, nil
}

// LatestRun returns the most recently completed benchmark run, or nil
// if none has completed yet. It implements httpserver.RunSource.
func (a *App) LatestRun() *types.BenchmarkRun {
	return a.latest.Load()
}
