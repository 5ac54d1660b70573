package provider

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/cosmos/btcutil/base58"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// LocalSigner is an in-process provider that signs with ephemeral keys.
// It is the benchmark's paper-trading analogue: it runs end-to-end without
// external credentials and doubles as the reference implementation of the
// Signer and SolanaSigner capabilities. SimDelay adds an artificial pause
// inside the timed section to approximate a remote API round trip.
type LocalSigner struct {
	name     string
	simDelay time.Duration
	logger   *zap.Logger

	ethKey     *ecdsa.PrivateKey
	ethAddress string

	solPriv    ed25519.PrivateKey
	solAddress string
}

// LocalConfig holds local signer configuration.
type LocalConfig struct {
	Name     string
	SimDelay time.Duration
	Logger   *zap.Logger
}

// NewLocalSigner creates an uninitialized local signer. Keys are
// generated in Initialize, mirroring providers that set up wallets on
// their first call.
func NewLocalSigner(cfg LocalConfig) *LocalSigner {
	name := cfg.Name
	if name == "" {
		name = "local"
	}

	return &LocalSigner{
		name:     name,
		simDelay: cfg.SimDelay,
		logger:   cfg.Logger,
	}
}

// Name returns the service name used in results and rankings.
func (l *LocalSigner) Name() string {
	return l.name
}

// Initialize generates the ephemeral Ethereum and Solana keypairs.
func (l *LocalSigner) Initialize(ctx context.Context) error {
	ethKey, err := crypto.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate ethereum key: %w", err)
	}

	solPub, solPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate solana key: %w", err)
	}

	l.ethKey = ethKey
	l.ethAddress = crypto.PubkeyToAddress(ethKey.PublicKey).Hex()
	l.solPriv = solPriv
	l.solAddress = base58.Encode(solPub)

	if l.logger != nil {
		l.logger.Debug("local-signer-initialized",
			zap.String("service", l.name),
			zap.String("eth-address", l.ethAddress),
			zap.String("sol-address", l.solAddress))
	}

	return nil
}

// SignEthereum produces a personal-sign signature over the message and
// self-reports the elapsed time in milliseconds.
func (l *LocalSigner) SignEthereum(ctx context.Context, message string) (*SignResult, error) {
	if l.ethKey == nil {
		return nil, fmt.Errorf("local signer %q not initialized", l.name)
	}

	start := time.Now()

	if l.simDelay > 0 {
		time.Sleep(l.simDelay)
	}

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), l.ethKey)
	if err != nil {
		return nil, fmt.Errorf("sign ethereum message: %w", err)
	}

	// Recovery id to the 27/28 convention used by personal_sign.
	sig[crypto.RecoveryIDOffset] += 27

	return &SignResult{
		Signature:     hexutil.Encode(sig),
		APILatencyMS:  float64(time.Since(start)) / float64(time.Millisecond),
		WalletAddress: l.ethAddress,
	}, nil
}

// SignSolana produces an ed25519 signature over the raw message bytes,
// base58-encoded as Solana tooling expects.
func (l *LocalSigner) SignSolana(ctx context.Context, message string) (*SignResult, error) {
	if l.solPriv == nil {
		return nil, fmt.Errorf("local signer %q not initialized", l.name)
	}

	start := time.Now()

	if l.simDelay > 0 {
		time.Sleep(l.simDelay)
	}

	sig := ed25519.Sign(l.solPriv, []byte(message))

	return &SignResult{
		Signature:     base58.Encode(sig),
		APILatencyMS:  float64(time.Since(start)) / float64(time.Millisecond),
		WalletAddress: l.solAddress,
	}, nil
}
