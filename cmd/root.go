package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "signbench",
	Short: "Signing API latency benchmark",
	Long: `Benchmarks the message-signing latency of wallet provider APIs
across Ethereum and Solana, verifies every returned signature
cryptographically, and ranks the providers per chain by median latency.

Each provider runs the same warmup and measured iteration sequence
strictly sequentially, so every service sees an identical request
cadence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	// Flags can be added here if needed
}
