package bench

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/pkg/types"
)

// ServiceOrchestrator runs every requested chain of one service.
// Initialization happens exactly once, before any chain runs; an init
// failure aborts the whole service. Chains the provider does not
// advertise are skipped without failing the service.
type ServiceOrchestrator struct {
	gate   *Gate
	cfg    RunConfig
	logger *zap.Logger
}

// NewServiceOrchestrator creates a per-service orchestrator.
func NewServiceOrchestrator(gate *Gate, cfg RunConfig, logger *zap.Logger) *ServiceOrchestrator {
	return &ServiceOrchestrator{
		gate:   gate,
		cfg:    cfg,
		logger: logger,
	}
}

// Run benchmarks one service across the requested chains.
func (o *ServiceOrchestrator) Run(ctx context.Context, signer provider.Signer, chains []types.Chain) (*types.ServiceResult, error) {
	service := signer.Name()

	err := signer.Initialize(ctx)
	if err != nil {
		ServiceInitFailuresTotal.Inc()
		return nil, &InitError{Service: service, Err: err}
	}

	sr := &types.ServiceResult{ServiceName: service}

	for _, chain := range chains {
		if chain == types.ChainSolana && !provider.SupportsSolana(signer) {
			o.logger.Info("chain-unsupported-skipping",
				zap.String("service", service),
				zap.String("chain", string(chain)))
			continue
		}

		runner := NewChainRunner(signer, chain, o.gate, o.cfg, o.logger)
		cr, err := runner.Run(ctx)
		if err != nil {
			o.logger.Warn("chain-run-not-possible",
				zap.String("service", service),
				zap.String("chain", string(chain)),
				zap.Error(err))
			continue
		}

		sr.SetChainResult(chain, cr)
	}

	return sr, nil
}

// BatchOrchestrator runs a collection of services sequentially, in
// registry order. Services run one after another, never concurrently,
// so every provider is measured under identical system load.
type BatchOrchestrator struct {
	registry *provider.Registry
	service  *ServiceOrchestrator
	logger   *zap.Logger
}

// NewBatchOrchestrator creates the batch orchestrator over an explicit
// provider registry built by the caller; no discovery happens here.
func NewBatchOrchestrator(registry *provider.Registry, gate *Gate, cfg RunConfig, logger *zap.Logger) *BatchOrchestrator {
	return &BatchOrchestrator{
		registry: registry,
		service:  NewServiceOrchestrator(gate, cfg, logger),
		logger:   logger,
	}
}

// Run benchmarks every registered service. A service whose
// initialization fails is excluded from the returned collection and the
// batch carries on; output order matches registration order.
func (b *BatchOrchestrator) Run(ctx context.Context, chains []types.Chain) []*types.ServiceResult {
	results := make([]*types.ServiceResult, 0, b.registry.Len())

	for _, signer := range b.registry.Signers() {
		sr, err := b.service.Run(ctx, signer, chains)
		if err != nil {
			var initErr *InitError
			if errors.As(err, &initErr) {
				b.logger.Error("service-initialization-failed",
					zap.String("service", initErr.Service),
					zap.Error(initErr.Err))
			} else {
				b.logger.Error("service-run-failed",
					zap.String("service", signer.Name()),
					zap.Error(err))
			}
			continue
		}

		if sr.Empty() {
			b.logger.Warn("service-produced-no-chain-results",
				zap.String("service", signer.Name()))
			continue
		}

		results = append(results, sr)
	}

	return results
}
