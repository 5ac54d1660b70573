package types

import "fmt"

// Chain identifies a blockchain whose signing flow is benchmarked.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainSolana   Chain = "solana"
)

// ParseChains converts a chain selector ("ethereum", "solana" or "both")
// into the ordered list of chains to benchmark.
func ParseChains(selector string) ([]Chain, error) {
	switch selector {
	case "ethereum":
		return []Chain{ChainEthereum}, nil
	case "solana":
		return []Chain{ChainSolana}, nil
	case "both":
		return []Chain{ChainEthereum, ChainSolana}, nil
	default:
		return nil, fmt.Errorf("unknown chain selector %q (want ethereum, solana or both)", selector)
	}
}
