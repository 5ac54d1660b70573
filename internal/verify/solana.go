package verify

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/cosmos/btcutil/base58"
	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

// SolanaVerifier validates ed25519 signatures over the raw message
// bytes, with the public key and signature base58-encoded as Solana
// tooling produces them. Internal errors are trapped into the result.
type SolanaVerifier struct {
	logger *zap.Logger
}

// NewSolanaVerifier creates a Solana signature verifier.
func NewSolanaVerifier(logger *zap.Logger) *SolanaVerifier {
	return &SolanaVerifier{logger: logger}
}

// Verify checks that signature over message validates under address.
func (v *SolanaVerifier) Verify(ctx context.Context, message, signature, address string) (result types.VerifyResult) {
	defer func() {
		r := recover()
		if r != nil {
			result = types.VerifyResult{Error: fmt.Sprintf("solana verify panic: %v", r)}
			VerificationsTotal.WithLabelValues(string(types.ChainSolana), "error").Inc()
		}
	}()

	pubKey := base58.Decode(address)
	if len(pubKey) != ed25519.PublicKeySize {
		VerificationsTotal.WithLabelValues(string(types.ChainSolana), "error").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("address must decode to %d bytes, got %d", ed25519.PublicKeySize, len(pubKey))}
	}

	sig := base58.Decode(signature)
	if len(sig) != ed25519.SignatureSize {
		VerificationsTotal.WithLabelValues(string(types.ChainSolana), "error").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("signature must decode to %d bytes, got %d", ed25519.SignatureSize, len(sig))}
	}

	if !ed25519.Verify(ed25519.PublicKey(pubKey), []byte(message), sig) {
		v.logger.Debug("solana-signature-invalid", zap.String("address", address))
		VerificationsTotal.WithLabelValues(string(types.ChainSolana), "invalid").Inc()
		return types.VerifyResult{Error: "ed25519 signature does not validate"}
	}

	VerificationsTotal.WithLabelValues(string(types.ChainSolana), "valid").Inc()
	return types.VerifyResult{Valid: true}
}
