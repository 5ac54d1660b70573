package ranking

import (
	"sort"

	"github.com/mselser95/signbench/pkg/types"
)

// Rank builds the leaderboard for one chain. Services without stats for
// the chain and services with a zero success rate are filtered out; a
// service with no valid completed iteration cannot be meaningfully
// ranked. The sort is ascending by median latency and stable, so ties
// keep their input order; ranks are the dense 1-based positions of the
// sorted sequence.
func Rank(services []*types.ServiceStats, chain types.Chain) []types.ServiceRanking {
	rankings := make([]types.ServiceRanking, 0, len(services))

	for _, ss := range services {
		cs := ss.ChainStats(chain)
		if cs == nil {
			continue
		}
		if cs.SuccessRate == 0 {
			continue
		}

		rankings = append(rankings, types.ServiceRanking{
			ServiceName: ss.ServiceName,
			Chain:       chain,
			Median:      cs.Median,
			Mean:        cs.Mean,
			P95:         cs.P95,
			SuccessRate: cs.SuccessRate,
		})
	}

	// Stability is load-bearing: it decides medal assignment on ties.
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Median < rankings[j].Median
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings
}

// RankAll builds the leaderboards for every requested chain.
func RankAll(services []*types.ServiceStats, chains []types.Chain) map[types.Chain][]types.ServiceRanking {
	all := make(map[types.Chain][]types.ServiceRanking, len(chains))
	for _, chain := range chains {
		all[chain] = Rank(services, chain)
	}
	return all
}
