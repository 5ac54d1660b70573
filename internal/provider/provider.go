package provider

import "context"

// SignResult is a provider's self-reported signing result. The latency
// is measured by the provider adapter itself, so every provider controls
// exactly what its reported number covers. The benchmark core never adds
// its own timing on top.
type SignResult struct {
	Signature     string
	APILatencyMS  float64
	WalletAddress string
}

// Signer is the minimal signing capability every benchmarked service
// must expose. Initialize is called exactly once before any iteration.
type Signer interface {
	// Name returns the service name used in results and rankings.
	Name() string

	// Initialize performs one-time provider setup (sessions, wallets).
	Initialize(ctx context.Context) error

	// SignEthereum signs a plaintext message on the Ethereum chain.
	SignEthereum(ctx context.Context, message string) (*SignResult, error)
}

// SolanaSigner is the optional Solana capability. A Signer that does not
// implement it is treated as "chain unsupported", which skips the chain
// rather than failing the service.
type SolanaSigner interface {
	SignSolana(ctx context.Context, message string) (*SignResult, error)
}

// SupportsSolana reports whether the signer advertises the Solana
// capability.
func SupportsSolana(s Signer) bool {
	_, ok := s.(SolanaSigner)
	return ok
}
