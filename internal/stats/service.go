package stats

import "github.com/mselser95/signbench/pkg/types"

// BuildServiceStats reduces every chain of one service result. The
// consolidated record spans both chains (union of their successful
// latencies re-sorted, counters summed) and is present only when
// both chains ran.
func BuildServiceStats(sr *types.ServiceResult) *types.ServiceStats {
	ss := &types.ServiceStats{ServiceName: sr.ServiceName}

	if sr.Ethereum != nil {
		ss.Ethereum = FromChainResult(sr.Ethereum)
	}
	if sr.Solana != nil {
		ss.Solana = FromChainResult(sr.Solana)
	}

	if ss.Ethereum != nil && ss.Solana != nil {
		ss.Consolidated = consolidate(ss.Ethereum, ss.Solana)
	}

	return ss
}

// BuildAll reduces a batch of service results, preserving order.
func BuildAll(results []*types.ServiceResult) []*types.ServiceStats {
	all := make([]*types.ServiceStats, 0, len(results))
	for _, sr := range results {
		all = append(all, BuildServiceStats(sr))
	}
	return all
}

func consolidate(a, b *types.ChainStats) *types.ChainStats {
	merged := make([]float64, 0, len(a.Latencies)+len(b.Latencies))
	merged = append(merged, a.Latencies...)
	merged = append(merged, b.Latencies...)

	return Reduce(merged,
		a.SuccessCount+b.SuccessCount,
		a.ErrorCount+b.ErrorCount,
		a.VerifiedCount+b.VerifiedCount,
		a.VerificationFailures+b.VerificationFailures)
}
