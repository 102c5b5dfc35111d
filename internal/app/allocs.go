package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/allocdemo"
)

var allocsCmd = &cobra.Command{
	Use:   "allocs",
	Short: "Run the allocation-tracing demo workload",
	Long: `Allocs performs a short chain of function calls that each allocate a
known size, printing every allocation. Point a memory profiler at the process
to check that samples land on the expected call sites.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		allocdemo.Run(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allocsCmd)
}
