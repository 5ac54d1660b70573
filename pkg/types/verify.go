package types

// VerifyResult is the verdict of a chain-specific signature verification.
// Verifiers trap their internal errors into the Error field; an errored
// verification is reported as Valid=false, never as a raised failure.
type VerifyResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
