package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

// EthereumVerifier validates personal-sign (EIP-191) signatures by
// recovering the signer address and comparing it to the claimed wallet.
// It traps every internal error into the result's Error field; nothing
// escapes past this boundary.
type EthereumVerifier struct {
	logger *zap.Logger
}

// NewEthereumVerifier creates an Ethereum signature verifier.
func NewEthereumVerifier(logger *zap.Logger) *EthereumVerifier {
	return &EthereumVerifier{logger: logger}
}

// Verify checks that signature over message recovers to address.
func (v *EthereumVerifier) Verify(ctx context.Context, message, signature, address string) (result types.VerifyResult) {
	defer func() {
		r := recover()
		if r != nil {
			result = types.VerifyResult{Error: fmt.Sprintf("ethereum verify panic: %v", r)}
			VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "error").Inc()
		}
	}()

	sig, err := hexutil.Decode(signature)
	if err != nil {
		VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "error").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("decode signature: %v", err)}
	}

	if len(sig) != crypto.SignatureLength {
		VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "error").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))}
	}

	// Providers report the recovery id as 27/28 (personal_sign
	// convention); SigToPub expects 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "error").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("recover public key: %v", err)}
	}

	recovered := crypto.PubkeyToAddress(*pubKey).Hex()
	if !strings.EqualFold(recovered, address) {
		v.logger.Debug("ethereum-signature-mismatch",
			zap.String("claimed", address),
			zap.String("recovered", recovered))
		VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "invalid").Inc()
		return types.VerifyResult{Error: fmt.Sprintf("recovered address %s does not match claimed %s", recovered, address)}
	}

	VerificationsTotal.WithLabelValues(string(types.ChainEthereum), "valid").Inc()
	return types.VerifyResult{Valid: true}
}
