package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var timeout time.Duration

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "curatorctl",
	Short: "Run curator data-quality checks and fixes from the command line",
	Long: `curatorctl loads locations, products and titles from the configured store
and runs the same checks and fixes the curator API exposes.

Configuration is read from config/config.yaml with environment overrides.
Results are printed to stdout as JSON; logs go to stderr.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	titlesCmd.AddCommand(titlesListCmd)
	titlesCmd.AddCommand(titlesChecksCmd)
	titlesCmd.AddCommand(titlesAliasCmd)
	titlesCmd.AddCommand(titlesApplyCmd)

	rootCmd.AddCommand(checksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(ancestorsCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(titlesCmd)
	rootCmd.AddCommand(relevanceCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
