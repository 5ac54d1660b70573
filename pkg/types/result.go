package types

// ChainResult holds the measured iterations of one (service, chain) run.
// Warmup iterations are executed before measurement and are never recorded
// here. Invariant: SuccessCount+ErrorCount == len(Results).
type ChainResult struct {
	Chain        Chain             `json:"chain"`
	ServiceName  string            `json:"service_name"`
	Results      []VerifiedOutcome `json:"results"`
	SuccessCount int               `json:"success_count"`
	ErrorCount   int               `json:"error_count"`
}

// NewChainResult tallies the outcome variants and builds the result record,
// establishing the SuccessCount+ErrorCount == len(Results) invariant.
func NewChainResult(chain Chain, serviceName string, results []VerifiedOutcome) *ChainResult {
	cr := &ChainResult{
		Chain:       chain,
		ServiceName: serviceName,
		Results:     results,
	}
	for _, r := range results {
		if r.IsSuccess() {
			cr.SuccessCount++
		} else {
			cr.ErrorCount++
		}
	}
	return cr
}

// ServiceResult aggregates the per-chain results of one service.
// At least one chain is present; a service run in "both" mode without
// Solana support carries only the Ethereum result.
type ServiceResult struct {
	ServiceName string       `json:"service_name"`
	Ethereum    *ChainResult `json:"ethereum,omitempty"`
	Solana      *ChainResult `json:"solana,omitempty"`
}

// ChainResult returns the result for the given chain, or nil if that
// chain was not run.
func (s *ServiceResult) ChainResult(chain Chain) *ChainResult {
	switch chain {
	case ChainEthereum:
		return s.Ethereum
	case ChainSolana:
		return s.Solana
	default:
		return nil
	}
}

// SetChainResult stores the result under the given chain.
func (s *ServiceResult) SetChainResult(chain Chain, cr *ChainResult) {
	switch chain {
	case ChainEthereum:
		s.Ethereum = cr
	case ChainSolana:
		s.Solana = cr
	}
}

// Empty reports whether no chain produced a result.
func (s *ServiceResult) Empty() bool {
	return s.Ethereum == nil && s.Solana == nil
}
