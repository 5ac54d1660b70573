package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/internal/provider"
	"github.com/mselser95/signbench/pkg/types"
)

// fakeSigner scripts per-call Ethereum signing results. It implements
// only the Ethereum capability.
type fakeSigner struct {
	name      string
	initErr   error
	initCalls int
	ethCalls  int
	ethSign   func(call int) (*provider.SignResult, error)
}

func (f *fakeSigner) Name() string { return f.name }

func (f *fakeSigner) Initialize(ctx context.Context) error {
	f.initCalls++
	return f.initErr
}

func (f *fakeSigner) SignEthereum(ctx context.Context, message string) (*provider.SignResult, error) {
	call := f.ethCalls
	f.ethCalls++
	return f.ethSign(call)
}

// fakeDualSigner adds the Solana capability.
type fakeDualSigner struct {
	fakeSigner
	solCalls int
	solSign  func(call int) (*provider.SignResult, error)
}

func (f *fakeDualSigner) SignSolana(ctx context.Context, message string) (*provider.SignResult, error) {
	call := f.solCalls
	f.solCalls++
	return f.solSign(call)
}

func fixedResult(latencyMS float64) func(int) (*provider.SignResult, error) {
	return func(int) (*provider.SignResult, error) {
		return &provider.SignResult{Signature: "0xsig", APILatencyMS: latencyMS, WalletAddress: "0xaddr"}, nil
	}
}

func validGate() *Gate {
	return NewGate(map[types.Chain]Verifier{
		types.ChainEthereum: &fakeVerifier{result: types.VerifyResult{Valid: true}},
		types.ChainSolana:   &fakeVerifier{result: types.VerifyResult{Valid: true}},
	}, nil, zap.NewNop())
}

func newTestRunner(signer provider.Signer, chain types.Chain, gate *Gate, cfg RunConfig) *ChainRunner {
	r := NewChainRunner(signer, chain, gate, cfg, zap.NewNop())
	r.sleep = func(time.Duration) {}
	return r
}

func TestChainRunner_WarmupsExecutedButDiscarded(t *testing.T) {
	// Warmup iterations report deliberately inflated latencies; if any
	// of them leaked into the measured results the counts and samples
	// below would show it.
	signer := &fakeSigner{
		name: "privy",
		ethSign: func(call int) (*provider.SignResult, error) {
			latency := 10.0
			if call < 3 {
				latency = 99999.0 // warmup calls
			}
			return &provider.SignResult{Signature: "0xsig", APILatencyMS: latency, WalletAddress: "0xaddr"}, nil
		},
	}

	runner := newTestRunner(signer, types.ChainEthereum, validGate(), RunConfig{
		Message:            "msg",
		WarmupIterations:   3,
		MeasuredIterations: 5,
	})

	cr, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if signer.ethCalls != 8 {
		t.Errorf("expected 8 signing calls (3 warmup + 5 measured), got %d", signer.ethCalls)
	}
	if len(cr.Results) != 5 {
		t.Fatalf("expected 5 measured results, got %d", len(cr.Results))
	}
	for i, r := range cr.Results {
		if r.APILatencyMS != 10.0 {
			t.Errorf("result %d: warmup latency leaked into measured results: %f", i, r.APILatencyMS)
		}
	}
}

func TestChainRunner_FailureDoesNotAbortRun(t *testing.T) {
	signer := &fakeSigner{
		name: "turnkey",
		ethSign: func(call int) (*provider.SignResult, error) {
			if call == 1 || call == 3 {
				return nil, errors.New("rate limited")
			}
			return &provider.SignResult{Signature: "0xsig", APILatencyMS: 20, WalletAddress: "0xaddr"}, nil
		},
	}

	runner := newTestRunner(signer, types.ChainEthereum, validGate(), RunConfig{
		Message:            "msg",
		MeasuredIterations: 6,
	})

	cr, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if cr.SuccessCount != 4 {
		t.Errorf("expected 4 successes, got %d", cr.SuccessCount)
	}
	if cr.ErrorCount != 2 {
		t.Errorf("expected 2 errors, got %d", cr.ErrorCount)
	}
	if cr.SuccessCount+cr.ErrorCount != len(cr.Results) {
		t.Errorf("count invariant broken: %d+%d != %d", cr.SuccessCount, cr.ErrorCount, len(cr.Results))
	}

	// Failure outcomes are never verified: verdict is absent, not false.
	for i, r := range cr.Results {
		if r.IsSuccess() && r.Verified == nil {
			t.Errorf("result %d: successful outcome missing verification verdict", i)
		}
		if !r.IsSuccess() && r.Verified != nil {
			t.Errorf("result %d: failure outcome carries a verification verdict", i)
		}
	}
}

func TestChainRunner_VerificationFailureRecorded(t *testing.T) {
	signer := &fakeSigner{name: "dfns", ethSign: fixedResult(15)}

	gate := NewGate(map[types.Chain]Verifier{
		types.ChainEthereum: &fakeVerifier{result: types.VerifyResult{Error: "address mismatch"}},
	}, nil, zap.NewNop())

	runner := newTestRunner(signer, types.ChainEthereum, gate, RunConfig{
		Message:            "msg",
		MeasuredIterations: 2,
	})

	cr, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// A failed verification is a warning, not an aborted run.
	if cr.SuccessCount != 2 {
		t.Errorf("expected both iterations to count as successes, got %d", cr.SuccessCount)
	}
	for i, r := range cr.Results {
		if r.VerifiedOK() {
			t.Errorf("result %d: expected failed verification", i)
		}
		if r.VerifyNote == "" {
			t.Errorf("result %d: expected verification diagnostic", i)
		}
	}
}

func TestChainRunner_DelayBetweenIterationsOnly(t *testing.T) {
	signer := &fakeSigner{name: "privy", ethSign: fixedResult(5)}

	runner := NewChainRunner(signer, types.ChainEthereum, validGate(), RunConfig{
		Message:            "msg",
		WarmupIterations:   2,
		MeasuredIterations: 3,
		RequestDelay:       250 * time.Millisecond,
	}, zap.NewNop())

	sleeps := 0
	runner.sleep = func(d time.Duration) {
		if d != 250*time.Millisecond {
			t.Errorf("expected 250ms delay, got %s", d)
		}
		sleeps++
	}

	_, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// 5 iterations total, delay between consecutive ones, none after
	// the last.
	if sleeps != 4 {
		t.Errorf("expected 4 delays, got %d", sleeps)
	}
}

func TestChainRunner_SolanaUnsupported(t *testing.T) {
	signer := &fakeSigner{name: "eth-only", ethSign: fixedResult(5)}

	runner := newTestRunner(signer, types.ChainSolana, validGate(), RunConfig{
		Message:            "msg",
		MeasuredIterations: 1,
	})

	_, err := runner.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for unsupported chain")
	}
	if signer.ethCalls != 0 {
		t.Error("no signing call should happen for an unsupported chain")
	}
}

func TestChainRunner_SolanaSupported(t *testing.T) {
	signer := &fakeDualSigner{
		fakeSigner: fakeSigner{name: "dual", ethSign: fixedResult(5)},
		solSign: func(int) (*provider.SignResult, error) {
			return &provider.SignResult{Signature: "solSig", APILatencyMS: 30, WalletAddress: "solAddr"}, nil
		},
	}

	runner := newTestRunner(signer, types.ChainSolana, validGate(), RunConfig{
		Message:            "msg",
		MeasuredIterations: 2,
	})

	cr, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if signer.solCalls != 2 {
		t.Errorf("expected 2 solana calls, got %d", signer.solCalls)
	}
	if signer.ethCalls != 0 {
		t.Errorf("ethereum capability must not be touched on a solana run, got %d calls", signer.ethCalls)
	}
	if cr.Chain != types.ChainSolana {
		t.Errorf("expected solana chain result, got %s", cr.Chain)
	}
}

// Iterations are executed strictly sequentially by design: concurrent
// requests to the same provider would introduce queueing effects that
// break cross-provider comparability. This test pins the call ordering
// so a future "optimization" cannot silently parallelize the loop.
func TestChainRunner_StrictlySequential(t *testing.T) {
	inFlight := 0
	signer := &fakeSigner{
		name: "sequential",
		ethSign: func(int) (*provider.SignResult, error) {
			inFlight++
			if inFlight != 1 {
				t.Errorf("overlapping signing calls detected: %d in flight", inFlight)
			}
			time.Sleep(time.Millisecond)
			inFlight--
			return &provider.SignResult{Signature: "0xsig", APILatencyMS: 1, WalletAddress: "0xaddr"}, nil
		},
	}

	runner := newTestRunner(signer, types.ChainEthereum, validGate(), RunConfig{
		Message:            "msg",
		WarmupIterations:   1,
		MeasuredIterations: 4,
	})

	_, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}
