package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mselser95/signbench/pkg/types"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// ConsolePrinter renders a benchmark run as a human-readable report:
// per-service latency statistics followed by the per-chain leaderboards.
type ConsolePrinter struct {
	logger *zap.Logger
}

// NewConsolePrinter creates a console report printer.
func NewConsolePrinter(logger *zap.Logger) *ConsolePrinter {
	return &ConsolePrinter{logger: logger}
}

// PrintRun pretty-prints the full run report.
func (p *ConsolePrinter) PrintRun(run *types.BenchmarkRun) {
	fmt.Println("\n" + rule)
	fmt.Printf("⏱️  SIGNING LATENCY BENCHMARK\n")
	fmt.Println(rule)
	fmt.Printf("Run:       %s\n", run.ID)
	fmt.Printf("Started:   %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Message:   %q\n", run.Config.Message)
	fmt.Printf("Sequence:  %d warmup + %d measured, %s between requests\n",
		run.Config.WarmupIterations, run.Config.MeasuredIteration, run.Config.RequestDelay)
	fmt.Println(rule)

	for _, ss := range run.Services {
		p.printService(ss)
	}

	for _, chain := range run.Config.Chains {
		p.printLeaderboard(chain, run.Rankings[chain])
	}
}

func (p *ConsolePrinter) printService(ss *types.ServiceStats) {
	fmt.Printf("📊 %s\n", ss.ServiceName)

	if ss.Ethereum != nil {
		p.printChainStats("ethereum", ss.Ethereum)
	}
	if ss.Solana != nil {
		p.printChainStats("solana", ss.Solana)
	}
	if ss.Consolidated != nil {
		p.printChainStats("consolidated", ss.Consolidated)
	}

	fmt.Println(rule)
}

func (p *ConsolePrinter) printChainStats(label string, cs *types.ChainStats) {
	fmt.Printf("  %-13s median %8.2fms  mean %8.2fms  p95 %8.2fms  p99 %8.2fms\n",
		label, cs.Median, cs.Mean, cs.P95, cs.P99)
	fmt.Printf("  %-13s min %11.2fms  max %9.2fms  stddev %6.2fms\n",
		"", cs.Min, cs.Max, cs.StandardDeviation)
	fmt.Printf("  %-13s %d/%d ok (%.1f%%), %d verified, %d verification failures\n",
		"", cs.SuccessCount, cs.Iterations, cs.SuccessRate, cs.VerifiedCount, cs.VerificationFailures)

	if cs.VerificationFailures > 0 {
		fmt.Printf("  ⚠️  %d signature(s) failed verification\n", cs.VerificationFailures)
	}
}

func (p *ConsolePrinter) printLeaderboard(chain types.Chain, rankings []types.ServiceRanking) {
	fmt.Printf("🏆 RANKING (%s)\n", chain)

	if len(rankings) == 0 {
		fmt.Println("  no service completed a valid iteration")
		fmt.Println(rule)
		return
	}

	for _, r := range rankings {
		fmt.Printf("  %s #%d %-16s median %8.2fms  mean %8.2fms  p95 %8.2fms  %.1f%% ok\n",
			medal(r.Rank), r.Rank, r.ServiceName, r.Median, r.Mean, r.P95, r.SuccessRate)
	}

	fmt.Println(rule)
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "  "
	}
}
