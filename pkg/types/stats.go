package types

// ChainStats is the reduced statistics record for one (service, chain)
// run. Derived once from a ChainResult and never mutated afterwards.
// All latency fields are in milliseconds. With zero successful samples
// every latency-derived field is zero and SuccessRate is 0.
type ChainStats struct {
	Iterations           int       `json:"iterations"`
	Mean                 float64   `json:"mean"`
	Median               float64   `json:"median"`
	Min                  float64   `json:"min"`
	Max                  float64   `json:"max"`
	P95                  float64   `json:"p95"`
	P99                  float64   `json:"p99"`
	StandardDeviation    float64   `json:"standard_deviation"`
	Variance             float64   `json:"variance"`
	TotalLatency         float64   `json:"total_latency"`
	SuccessCount         int       `json:"success_count"`
	ErrorCount           int       `json:"error_count"`
	SuccessRate          float64   `json:"success_rate"`
	Latencies            []float64 `json:"latencies"`
	VerifiedCount        int       `json:"verified_count"`
	VerificationFailures int       `json:"verification_failures"`
}

// ServiceStats holds the reduced statistics of one service across the
// chains it ran. Consolidated spans both chains (union of successful
// latencies, re-sorted) and is present only when both chains ran.
type ServiceStats struct {
	ServiceName  string      `json:"service_name"`
	Ethereum     *ChainStats `json:"ethereum,omitempty"`
	Solana       *ChainStats `json:"solana,omitempty"`
	Consolidated *ChainStats `json:"consolidated,omitempty"`
}

// ChainStats returns the stats for the given chain, or nil if absent.
func (s *ServiceStats) ChainStats(chain Chain) *ChainStats {
	switch chain {
	case ChainEthereum:
		return s.Ethereum
	case ChainSolana:
		return s.Solana
	default:
		return nil
	}
}

// ServiceRanking is one row of the per-chain leaderboard.
// Rank is 1-based and dense; ties keep input order.
type ServiceRanking struct {
	ServiceName string  `json:"service_name"`
	Chain       Chain   `json:"chain"`
	Rank        int     `json:"rank"`
	Median      float64 `json:"median"`
	Mean        float64 `json:"mean"`
	P95         float64 `json:"p95"`
	SuccessRate float64 `json:"success_rate"`
}
