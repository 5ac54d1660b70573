package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/cache"
	"github.com/mselser95/signbench/pkg/types"
)

// Verifier is the chain-specific verification capability the gate
// consumes. Implementations trap their internal errors into the
// result's Error field.
type Verifier interface {
	Verify(ctx context.Context, message, signature, address string) types.VerifyResult
}

// verdictTTL bounds cached verdicts to roughly one benchmark run.
const verdictTTL = 15 * time.Minute

// Gate runs post-hoc signature verification. It is invoked strictly
// after the latency sample for an iteration has been finalized, so
// verification cost is never attributed to signing latency. A verifier
// that errors or panics yields valid=false with a diagnostic, never a
// fatal failure of the run.
type Gate struct {
	verifiers map[types.Chain]Verifier
	cache     cache.Cache
	logger    *zap.Logger
}

// NewGate creates a verification gate. The cache is optional; when
// present, identical (chain, message, signature, address) tuples are
// verified once.
func NewGate(verifiers map[types.Chain]Verifier, c cache.Cache, logger *zap.Logger) *Gate {
	return &Gate{
		verifiers: verifiers,
		cache:     c,
		logger:    logger,
	}
}

// Check verifies one signed message and returns the verdict.
func (g *Gate) Check(ctx context.Context, chain types.Chain, message, signature, address string) types.VerifyResult {
	verifier, ok := g.verifiers[chain]
	if !ok {
		return types.VerifyResult{Error: fmt.Sprintf("no verifier configured for chain %s", chain)}
	}

	key := verdictKey(chain, message, signature, address)
	if g.cache != nil {
		cached, found := g.cache.Get(key)
		if found {
			verdict, castOK := cached.(types.VerifyResult)
			if castOK {
				return verdict
			}
		}
	}

	result := g.checkUncached(ctx, verifier, message, signature, address)

	if !result.Valid {
		g.logger.Warn("signature-verification-failed",
			zap.String("chain", string(chain)),
			zap.String("address", address),
			zap.String("diagnostic", result.Error))
	}

	if g.cache != nil {
		g.cache.Set(key, result, verdictTTL)
	}

	return result
}

// checkUncached invokes the verifier with a panic trap. The Verifier
// contract already forbids raising past the boundary; the trap covers
// misbehaving implementations.
func (g *Gate) checkUncached(ctx context.Context, verifier Verifier, message, signature, address string) (result types.VerifyResult) {
	defer func() {
		r := recover()
		if r != nil {
			result = types.VerifyResult{Error: fmt.Sprintf("verifier panic: %v", r)}
		}
	}()

	return verifier.Verify(ctx, message, signature, address)
}

func verdictKey(chain types.Chain, message, signature, address string) string {
	return string(chain) + "|" + message + "|" + signature + "|" + address
}
