package bench

import (
	"context"
	"fmt"

	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/pkg/types"
)

// signFunc is one chain's signing operation of a provider.
type signFunc func(ctx context.Context, message string) (*provider.SignResult, error)

// runIteration executes exactly one signing attempt and isolates any
// failure into the outcome: the caller never sees an error or panic
// from this boundary. The latency is taken verbatim from the provider's
// self-report; the capability controls what is measured, which keeps
// the comparison fair across providers with different transports.
func runIteration(ctx context.Context, sign signFunc, message string) (outcome types.IterationOutcome) {
	defer func() {
		r := recover()
		if r != nil {
			outcome = types.NewFailureOutcome(fmt.Sprintf("provider panic: %v", r))
		}
	}()

	res, err := sign(ctx, message)
	if err != nil {
		return types.NewFailureOutcome(err.Error())
	}

	if res == nil {
		return types.NewFailureOutcome("provider returned no result")
	}

	if res.Signature == "" {
		return types.NewFailureOutcome("provider returned empty signature")
	}

	if res.APILatencyMS < 0 {
		return types.NewFailureOutcome(fmt.Sprintf("provider reported negative latency %.3fms", res.APILatencyMS))
	}

	return types.NewSuccessOutcome(res.Signature, res.APILatencyMS, res.WalletAddress)
}
