package bench

import (
	"context"
	"errors"
	"testing"

	"github.com/mselser95/signbench/internal/provider"
)

func TestRunIteration_Success(t *testing.T) {
	sign := func(ctx context.Context, message string) (*provider.SignResult, error) {
		return &provider.SignResult{
			Signature:     "0xsigned",
			APILatencyMS:  123.4,
			WalletAddress: "0xwallet",
		}, nil
	}

	outcome := runIteration(context.Background(), sign, "msg")

	if !outcome.IsSuccess() {
		t.Fatalf("expected success, got failure: %s", outcome.ErrorMessage)
	}
	if outcome.Signature != "0xsigned" {
		t.Errorf("expected signature passthrough, got %q", outcome.Signature)
	}
	// Latency must be the provider's self-reported number, untouched.
	if outcome.APILatencyMS != 123.4 {
		t.Errorf("expected latency 123.4, got %f", outcome.APILatencyMS)
	}
	if outcome.WalletAddress != "0xwallet" {
		t.Errorf("expected wallet passthrough, got %q", outcome.WalletAddress)
	}
}

func TestRunIteration_ErrorBecomesFailureOutcome(t *testing.T) {
	sign := func(ctx context.Context, message string) (*provider.SignResult, error) {
		return nil, errors.New("provider timeout after 30s")
	}

	outcome := runIteration(context.Background(), sign, "msg")

	if outcome.IsSuccess() {
		t.Fatal("expected failure outcome")
	}
	if outcome.ErrorMessage != "provider timeout after 30s" {
		t.Errorf("expected diagnostic to carry the provider error, got %q", outcome.ErrorMessage)
	}
}

func TestRunIteration_PanicIsTrapped(t *testing.T) {
	sign := func(ctx context.Context, message string) (*provider.SignResult, error) {
		panic("sdk blew up")
	}

	outcome := runIteration(context.Background(), sign, "msg")

	if outcome.IsSuccess() {
		t.Fatal("expected failure outcome from panicking provider")
	}
	if outcome.ErrorMessage == "" {
		t.Error("expected diagnostic message")
	}
}

func TestRunIteration_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		res  *provider.SignResult
	}{
		{name: "nil-result", res: nil},
		{name: "empty-signature", res: &provider.SignResult{APILatencyMS: 10}},
		{name: "negative-latency", res: &provider.SignResult{Signature: "0xsig", APILatencyMS: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign := func(ctx context.Context, message string) (*provider.SignResult, error) {
				return tt.res, nil
			}

			outcome := runIteration(context.Background(), sign, "msg")
			if outcome.IsSuccess() {
				t.Error("expected malformed response to become a failure outcome")
			}
			if outcome.ErrorMessage == "" {
				t.Error("expected diagnostic message")
			}
		})
	}
}
