package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
//
//nolint:gochecknoglobals // build-time injection target
var Version = "dev"

//nolint:gochecknoglobals // Cobra boilerplate
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the signbench version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("signbench", Version)
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(versionCmd)
}
