package types

import "time"

// RunConfigSummary captures the benchmark parameters a run was produced
// with, so stored and exported runs remain interpretable.
type RunConfigSummary struct {
	Message           string        `json:"message"`
	WarmupIterations  int           `json:"warmup_iterations"`
	MeasuredIteration int           `json:"measured_iterations"`
	RequestDelay      time.Duration `json:"request_delay"`
	Chains            []Chain       `json:"chains"`
}

// BenchmarkRun is the complete record of one benchmark invocation:
// reduced statistics for every surviving service plus the per-chain
// leaderboards. This is the interface the presentation and persistence
// layers consume.
type BenchmarkRun struct {
	ID          string                     `json:"id"`
	StartedAt   time.Time                  `json:"started_at"`
	CompletedAt time.Time                  `json:"completed_at"`
	Config      RunConfigSummary           `json:"config"`
	Services    []*ServiceStats            `json:"services"`
	Rankings    map[Chain][]ServiceRanking `json:"rankings"`
}
