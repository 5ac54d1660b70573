package stats

import (
	"math"
	"sort"

	"github.com/mselser95/signbench/pkg/types"
)

// FromChainResult extracts the successful latency samples and the
// verification tallies of one chain run and reduces them.
func FromChainResult(cr *types.ChainResult) *types.ChainStats {
	latencies := make([]float64, 0, cr.SuccessCount)
	verified := 0
	verifyFailures := 0

	for _, r := range cr.Results {
		if !r.IsSuccess() {
			continue
		}
		latencies = append(latencies, r.APILatencyMS)
		if r.VerifiedOK() {
			verified++
		} else {
			verifyFailures++
		}
	}

	return Reduce(latencies, cr.SuccessCount, cr.ErrorCount, verified, verifyFailures)
}

// Reduce computes the full statistics record over a set of successful
// latency samples and the run's counters. It is a pure function: the
// input slice is copied, never mutated. An empty sample set yields an
// all-zero record with SuccessRate 0, never an error or NaN.
func Reduce(latencies []float64, successCount, errorCount, verifiedCount, verificationFailures int) *types.ChainStats {
	sorted := make([]float64, len(latencies))
	copy(sorted, latencies)
	sort.Float64s(sorted)

	st := &types.ChainStats{
		Iterations:           successCount + errorCount,
		SuccessCount:         successCount,
		ErrorCount:           errorCount,
		VerifiedCount:        verifiedCount,
		VerificationFailures: verificationFailures,
		Latencies:            sorted,
	}

	if st.Iterations > 0 {
		st.SuccessRate = float64(successCount) / float64(st.Iterations) * 100
	}

	n := len(sorted)
	if n == 0 {
		return st
	}

	total := 0.0
	for _, l := range sorted {
		total += l
	}

	st.TotalLatency = total
	st.Mean = total / float64(n)
	st.Min = sorted[0]
	st.Max = sorted[n-1]
	st.Median = Percentile(sorted, 50)
	st.P95 = Percentile(sorted, 95)
	st.P99 = Percentile(sorted, 99)

	// Population variance: divide by n, not n-1.
	sumSq := 0.0
	for _, l := range sorted {
		d := l - st.Mean
		sumSq += d * d
	}
	st.Variance = sumSq / float64(n)
	st.StandardDeviation = math.Sqrt(st.Variance)

	return st
}

// Percentile evaluates the p-th percentile of an ascending-sorted
// sample by linear interpolation at index (p/100)*(n-1), weighting the
// two bracketing samples by the fractional remainder. Nearest-rank
// would produce different tails on small samples.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p / 100 * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}

	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
