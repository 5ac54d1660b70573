package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/bench"
	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/internal/storage"
	"github.com/mselser95/signbench/internal/verify"
	"github.com/mselser95/signbench/pkg/cache"
	"github.com/mselser95/signbench/pkg/httpserver"
	"github.com/mselser95/signbench/pkg/types"
)

func (a *App) setupChains() error {
	chains, err := types.ParseChains(a.cfg.ChainSelector)
	if err != nil {
		return fmt.Errorf("parse chain selector: %w", err)
	}

	a.chains = chains

	return nil
}

// setupRegistry populates the provider registry. A caller-supplied
// registry wins; otherwise every configured service name gets a local
// signer, which keeps the benchmark runnable without any external
// credentials. Registration order is preserved because it breaks
// ranking ties.
func (a *App) setupRegistry(external *provider.Registry) error {
	if external != nil {
		a.registry = external
		return nil
	}

	a.registry = provider.NewRegistry()

	for _, name := range a.cfg.Services {
		signer := provider.NewLocalSigner(provider.LocalConfig{
			Name:     name,
			SimDelay: a.cfg.LocalSimDelay,
			Logger:   a.logger,
		})

		err := a.registry.Register(signer)
		if err != nil {
			return fmt.Errorf("register service %q: %w", name, err)
		}
	}

	return nil
}

func (a *App) setupVerification() error {
	if a.cfg.VerifyCacheEnabled {
		c, err := cache.NewRistrettoCache(&cache.RistrettoConfig{
			NumCounters: a.cfg.VerifyCacheSize * 10,
			MaxCost:     a.cfg.VerifyCacheSize,
			BufferItems: 64,
			Logger:      a.logger,
		})
		if err != nil {
			return fmt.Errorf("create verify cache: %w", err)
		}

		a.verifyCache = c
	}

	verifiers := map[types.Chain]bench.Verifier{
		types.ChainEthereum: verify.NewEthereumVerifier(a.logger),
		types.ChainSolana:   verify.NewSolanaVerifier(a.logger),
	}

	a.gate = bench.NewGate(verifiers, a.verifyCache, a.logger)

	return nil
}

func (a *App) setupOrchestrator() {
	runCfg := bench.RunConfig{
		Message:            a.cfg.Message,
		WarmupIterations:   a.cfg.WarmupIterations,
		MeasuredIterations: a.cfg.MeasuredIteration,
		RequestDelay:       a.cfg.RequestDelay,
	}

	a.batch = bench.NewBatchOrchestrator(a.registry, a.gate, runCfg, a.logger)
}

func (a *App) setupStorage() error {
	switch a.cfg.StorageMode {
	case "postgres":
		store, err := storage.NewPostgresStorage(&storage.PostgresConfig{
			Host:     a.cfg.PostgresHost,
			Port:     a.cfg.PostgresPort,
			User:     a.cfg.PostgresUser,
			Password: a.cfg.PostgresPass,
			Database: a.cfg.PostgresDB,
			SSLMode:  a.cfg.PostgresSSL,
			Logger:   a.logger,
		})
		if err != nil {
			return fmt.Errorf("create postgres storage: %w", err)
		}

		a.store = store
	default:
		a.store = storage.NewConsoleStorage(a.logger)
	}

	return nil
}

func (a *App) setupHTTPServer() {
	if !a.cfg.HTTPEnabled {
		return
	}

	a.httpServer = httpserver.New(&httpserver.Config{
		Port:          a.cfg.HTTPPort,
		Logger:        a.logger,
		HealthChecker: a.healthChecker,
		RunSource:     a,
	})

	a.logger.Info("http-server-configured", zap.String("port", a.cfg.HTTPPort))
}
