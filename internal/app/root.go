// Package app contains the Cobra command tree for lexpath.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "lexpath",
	Short: "Lexical path joining, cleaning, and benchmarking",
	Long: `lexpath joins and cleans slash-separated paths purely textually:
"." and ".." segments are resolved, redundant separators collapse, and the
filesystem is never touched. It also ships a timing harness for the join
routine and a pair of CPU/allocation demo workloads for profiler testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("lexpath", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  join      Join two paths and print the cleaned result")
		fmt.Println("  clean     Clean one or more paths")
		fmt.Println("  bench     Measure join throughput and record the run")
		fmt.Println("  history   Show recorded benchmark runs and trends")
		fmt.Println("  primes    Run the prime-counting demo workload")
		fmt.Println("  allocs    Run the allocation-tracing demo workload")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupColor applies the --no-color flag and TTY detection before a command
// renders styled output.
func setupColor() {
	if flagNoColor {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/lexpath/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
