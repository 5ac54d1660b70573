package types

// IterationOutcome is the result of a single signing attempt.
// It is a tagged variant: either a success carrying the provider-reported
// signature and latency, or a failure carrying a diagnostic. The empty
// ErrorMessage marks the success variant. Outcomes are value objects and
// never mutated after construction.
type IterationOutcome struct {
	Signature     string  `json:"signature,omitempty"`
	APILatencyMS  float64 `json:"api_latency_ms,omitempty"`
	WalletAddress string  `json:"wallet_address,omitempty"`
	ErrorMessage  string  `json:"error_message,omitempty"`
}

// NewSuccessOutcome wraps a provider-reported signing result.
// The latency is taken verbatim from the provider; the benchmark core
// performs no timing of its own.
func NewSuccessOutcome(signature string, apiLatencyMS float64, walletAddress string) IterationOutcome {
	return IterationOutcome{
		Signature:     signature,
		APILatencyMS:  apiLatencyMS,
		WalletAddress: walletAddress,
	}
}

// NewFailureOutcome records a failed signing attempt.
func NewFailureOutcome(errorMessage string) IterationOutcome {
	return IterationOutcome{ErrorMessage: errorMessage}
}

// IsSuccess reports whether the iteration produced a signature.
func (o IterationOutcome) IsSuccess() bool {
	return o.ErrorMessage == ""
}

// VerifiedOutcome is a measured iteration outcome augmented with the
// post-hoc verification verdict. Verified is nil for failure outcomes:
// verification never runs for them, so the verdict is absent rather
// than false.
type VerifiedOutcome struct {
	IterationOutcome
	Verified   *bool  `json:"verified,omitempty"`
	VerifyNote string `json:"verify_note,omitempty"`
}

// Unverified wraps a failure outcome without a verification verdict.
func Unverified(o IterationOutcome) VerifiedOutcome {
	return VerifiedOutcome{IterationOutcome: o}
}

// WithVerification attaches a verification verdict to a success outcome.
func WithVerification(o IterationOutcome, valid bool, note string) VerifiedOutcome {
	return VerifiedOutcome{IterationOutcome: o, Verified: &valid, VerifyNote: note}
}

// VerifiedOK reports whether the outcome was verified and passed.
func (v VerifiedOutcome) VerifiedOK() bool {
	return v.Verified != nil && *v.Verified
}
