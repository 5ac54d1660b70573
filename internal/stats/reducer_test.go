package stats

import (
	"math"
	"testing"

	"github.com/mselser95/signbench/pkg/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestReduce_ReferenceExample(t *testing.T) {
	// Five samples with a known hand-computed reduction.
	latencies := []float64{100, 120, 110, 130, 105}

	st := Reduce(latencies, 5, 0, 5, 0)

	if st.Mean != 113 {
		t.Errorf("mean: expected 113, got %f", st.Mean)
	}
	if st.Median != 110 {
		t.Errorf("median: expected 110, got %f", st.Median)
	}
	// p95 index = 0.95*4 = 3.8 → 120 + 0.8*(130-120) = 128
	if !almostEqual(st.P95, 128) {
		t.Errorf("p95: expected 128, got %f", st.P95)
	}
	// p99 index = 0.99*4 = 3.96 → 120 + 0.96*(130-120) = 129.6
	if !almostEqual(st.P99, 129.6) {
		t.Errorf("p99: expected 129.6, got %f", st.P99)
	}
	if st.Min != 100 || st.Max != 130 {
		t.Errorf("min/max: expected 100/130, got %f/%f", st.Min, st.Max)
	}
	if st.Variance != 104 {
		t.Errorf("population variance: expected 104, got %f", st.Variance)
	}
	if !almostEqual(st.StandardDeviation, math.Sqrt(104)) {
		t.Errorf("stddev: expected %f, got %f", math.Sqrt(104), st.StandardDeviation)
	}
	if st.TotalLatency != 565 {
		t.Errorf("total: expected 565, got %f", st.TotalLatency)
	}
	if st.SuccessRate != 100 {
		t.Errorf("success rate: expected 100, got %f", st.SuccessRate)
	}

	// Latencies come back sorted ascending.
	expected := []float64{100, 105, 110, 120, 130}
	for i, want := range expected {
		if st.Latencies[i] != want {
			t.Errorf("latencies[%d]: expected %f, got %f", i, want, st.Latencies[i])
		}
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	latencies := []float64{300, 100, 200}

	Reduce(latencies, 3, 0, 3, 0)

	if latencies[0] != 300 || latencies[1] != 100 || latencies[2] != 200 {
		t.Error("input slice was mutated")
	}
}

func TestReduce_EmptySampleSet(t *testing.T) {
	st := Reduce(nil, 0, 0, 0, 0)

	if st.Mean != 0 || st.Median != 0 || st.Min != 0 || st.Max != 0 ||
		st.P95 != 0 || st.P99 != 0 || st.Variance != 0 || st.StandardDeviation != 0 {
		t.Error("expected all latency fields to be zero for empty input")
	}
	if st.SuccessRate != 0 {
		t.Errorf("expected success rate 0, got %f", st.SuccessRate)
	}
	if len(st.Latencies) != 0 {
		t.Errorf("expected empty latencies, got %v", st.Latencies)
	}
	if math.IsNaN(st.Mean) || math.IsNaN(st.StandardDeviation) {
		t.Error("no field may be NaN")
	}
}

func TestReduce_AllFailures(t *testing.T) {
	// Errors counted but no latency samples at all.
	st := Reduce(nil, 0, 5, 0, 0)

	if st.Iterations != 5 {
		t.Errorf("expected 5 iterations, got %d", st.Iterations)
	}
	if st.SuccessRate != 0 {
		t.Errorf("expected success rate 0, got %f", st.SuccessRate)
	}
	if st.Mean != 0 {
		t.Errorf("expected zero mean, got %f", st.Mean)
	}
}

func TestReduce_SingleSample(t *testing.T) {
	st := Reduce([]float64{42}, 1, 0, 1, 0)

	if st.Mean != 42 || st.Median != 42 || st.Min != 42 || st.Max != 42 ||
		st.P95 != 42 || st.P99 != 42 {
		t.Error("all location statistics must equal the single sample")
	}
	if st.Variance != 0 || st.StandardDeviation != 0 {
		t.Error("dispersion of a single sample must be zero")
	}
}

func TestReduce_SuccessRate(t *testing.T) {
	tests := []struct {
		name     string
		success  int
		errors   int
		expected float64
	}{
		{name: "all-success", success: 10, errors: 0, expected: 100},
		{name: "half", success: 5, errors: 5, expected: 50},
		{name: "one-third", success: 1, errors: 2, expected: 100.0 / 3.0},
		{name: "all-errors", success: 0, errors: 10, expected: 0},
		{name: "zero-denominator", success: 0, errors: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latencies := make([]float64, tt.success)
			for i := range latencies {
				latencies[i] = 100
			}

			st := Reduce(latencies, tt.success, tt.errors, tt.success, 0)
			if !almostEqual(st.SuccessRate, tt.expected) {
				t.Errorf("expected success rate %f, got %f", tt.expected, st.SuccessRate)
			}
		})
	}
}

func TestReduce_OrderingInvariants(t *testing.T) {
	samples := [][]float64{
		{1},
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{0.1, 900, 3.5, 42, 42, 17, 250.25},
	}

	for _, latencies := range samples {
		st := Reduce(latencies, len(latencies), 0, len(latencies), 0)

		if st.Min > st.Median || st.Median > st.Max {
			t.Errorf("min<=median<=max violated for %v: %f/%f/%f", latencies, st.Min, st.Median, st.Max)
		}
		if st.Min > st.P95 || st.P95 > st.P99 || st.P99 > st.Max {
			t.Errorf("min<=p95<=p99<=max violated for %v: %f/%f/%f/%f",
				latencies, st.Min, st.P95, st.P99, st.Max)
		}
	}
}

func TestPercentile_Interpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		p        float64
		expected float64
	}{
		{p: 0, expected: 10},
		{p: 50, expected: 25},  // index 1.5 → midpoint of 20 and 30
		{p: 75, expected: 32.5}, // index 2.25
		{p: 100, expected: 40},
	}

	for _, tt := range tests {
		got := Percentile(sorted, tt.p)
		if !almostEqual(got, tt.expected) {
			t.Errorf("p%.0f: expected %f, got %f", tt.p, tt.expected, got)
		}
	}
}

func TestFromChainResult_TalliesVerification(t *testing.T) {
	outcomes := []types.VerifiedOutcome{
		types.WithVerification(types.NewSuccessOutcome("0xa", 100, "0xw"), true, ""),
		types.WithVerification(types.NewSuccessOutcome("0xb", 200, "0xw"), false, "mismatch"),
		types.Unverified(types.NewFailureOutcome("timeout")),
		types.WithVerification(types.NewSuccessOutcome("0xc", 300, "0xw"), true, ""),
	}
	cr := types.NewChainResult(types.ChainEthereum, "privy", outcomes)

	st := FromChainResult(cr)

	if st.Iterations != 4 {
		t.Errorf("expected 4 iterations, got %d", st.Iterations)
	}
	if st.SuccessCount != 3 || st.ErrorCount != 1 {
		t.Errorf("expected 3/1 success/error, got %d/%d", st.SuccessCount, st.ErrorCount)
	}
	if st.VerifiedCount != 2 {
		t.Errorf("expected 2 verified, got %d", st.VerifiedCount)
	}
	if st.VerificationFailures != 1 {
		t.Errorf("expected 1 verification failure, got %d", st.VerificationFailures)
	}
	if st.Mean != 200 {
		t.Errorf("expected mean 200, got %f", st.Mean)
	}
	// Failed iterations contribute no latency sample.
	if len(st.Latencies) != 3 {
		t.Errorf("expected 3 samples, got %d", len(st.Latencies))
	}
}
