package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/pkg/types"
)

// RunConfig holds the iteration parameters of one benchmark run.
type RunConfig struct {
	Message            string
	WarmupIterations   int
	MeasuredIterations int
	RequestDelay       time.Duration
}

// ChainRunner sequences the warmup and measured iterations for one
// (service, chain) pair. The run is a strict single pass: warmups
// first, then measured iterations, no retries. Iterations execute
// strictly sequentially; every provider must see the same request
// cadence, so this must never be parallelized.
type ChainRunner struct {
	signer provider.Signer
	chain  types.Chain
	gate   *Gate
	cfg    RunConfig
	logger *zap.Logger

	// sleep is swapped out in tests to keep them fast.
	sleep func(time.Duration)
}

// NewChainRunner creates a runner for one (service, chain) pair.
func NewChainRunner(signer provider.Signer, chain types.Chain, gate *Gate, cfg RunConfig, logger *zap.Logger) *ChainRunner {
	return &ChainRunner{
		signer: signer,
		chain:  chain,
		gate:   gate,
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// signOperation resolves the chain's signing operation on the provider.
// A missing optional capability means "chain unsupported", not an error
// condition worth failing the service over.
func (r *ChainRunner) signOperation() (signFunc, error) {
	switch r.chain {
	case types.ChainEthereum:
		return r.signer.SignEthereum, nil
	case types.ChainSolana:
		sol, ok := r.signer.(provider.SolanaSigner)
		if !ok {
			return nil, fmt.Errorf("service %q does not support chain %s", r.signer.Name(), r.chain)
		}
		return sol.SignSolana, nil
	default:
		return nil, fmt.Errorf("unknown chain %s", r.chain)
	}
}

// Run executes the full iteration sequence and returns the measured
// results. Warmup outcomes are discarded after execution: they exist
// only to prime provider-side caches and connections and must not
// influence statistics. A failed iteration never aborts the run.
func (r *ChainRunner) Run(ctx context.Context) (*types.ChainResult, error) {
	sign, err := r.signOperation()
	if err != nil {
		return nil, err
	}

	service := r.signer.Name()
	r.logger.Info("chain-run-starting",
		zap.String("service", service),
		zap.String("chain", string(r.chain)),
		zap.Int("warmup-iterations", r.cfg.WarmupIterations),
		zap.Int("measured-iterations", r.cfg.MeasuredIterations),
		zap.Duration("request-delay", r.cfg.RequestDelay))

	start := time.Now()
	total := r.cfg.WarmupIterations + r.cfg.MeasuredIterations
	results := make([]types.VerifiedOutcome, 0, r.cfg.MeasuredIterations)

	for i := 0; i < total; i++ {
		outcome := runIteration(ctx, sign, r.cfg.Message)

		if i < r.cfg.WarmupIterations {
			r.logger.Debug("warmup-iteration-discarded",
				zap.String("service", service),
				zap.String("chain", string(r.chain)),
				zap.Int("iteration", i),
				zap.Bool("success", outcome.IsSuccess()))
		} else {
			results = append(results, r.recordMeasured(ctx, service, outcome))
		}

		// Fixed pause between consecutive iterations, skipped after the
		// last one. The pause is never part of any latency sample.
		if i < total-1 && r.cfg.RequestDelay > 0 {
			r.sleep(r.cfg.RequestDelay)
		}
	}

	cr := types.NewChainResult(r.chain, service, results)

	ChainRunDurationSeconds.WithLabelValues(service, string(r.chain)).Observe(time.Since(start).Seconds())
	r.logger.Info("chain-run-complete",
		zap.String("service", service),
		zap.String("chain", string(r.chain)),
		zap.Int("success-count", cr.SuccessCount),
		zap.Int("error-count", cr.ErrorCount))

	return cr, nil
}

// recordMeasured verifies a successful measured outcome and updates the
// per-iteration metrics. Verification runs only after the latency sample
// is already finalized inside the outcome.
func (r *ChainRunner) recordMeasured(ctx context.Context, service string, outcome types.IterationOutcome) types.VerifiedOutcome {
	if !outcome.IsSuccess() {
		IterationsTotal.WithLabelValues(service, string(r.chain), "error").Inc()
		r.logger.Warn("iteration-failed",
			zap.String("service", service),
			zap.String("chain", string(r.chain)),
			zap.String("diagnostic", outcome.ErrorMessage))
		return types.Unverified(outcome)
	}

	IterationsTotal.WithLabelValues(service, string(r.chain), "success").Inc()
	SignLatencyMS.WithLabelValues(service, string(r.chain)).Observe(outcome.APILatencyMS)

	verdict := r.gate.Check(ctx, r.chain, r.cfg.Message, outcome.Signature, outcome.WalletAddress)
	if !verdict.Valid {
		VerificationFailuresTotal.WithLabelValues(service, string(r.chain)).Inc()
	}

	return types.WithVerification(outcome, verdict.Valid, verdict.Error)
}
