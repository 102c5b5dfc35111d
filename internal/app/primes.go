package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/primes"
)

var (
	primesLimit    int
	primesDuration time.Duration
)

var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "Run the prime-counting demo workload",
	Long: `Primes counts primes by trial division, a steady CPU burner useful as a
profiling target. Bound the run with --limit (highest candidate to check) or
--duration; with both set, --limit wins. Ctrl-C stops a duration-bound run.`,
	RunE: runPrimes,
}

func init() {
	primesCmd.Flags().IntVar(&primesLimit, "limit", 0, "Check candidates up to this value")
	primesCmd.Flags().DurationVar(&primesDuration, "duration", 5*time.Second, "How long to run when no limit is set")
	rootCmd.AddCommand(primesCmd)
}

func runPrimes(cmd *cobra.Command, args []string) error {
	var rep primes.Report
	if primesLimit > 0 {
		rep = primes.CountUpTo(primesLimit)
	} else {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		rep = primes.RunFor(ctx, primesDuration)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Printf("checked %d candidates in %v\n", rep.Checked, rep.Elapsed.Round(time.Millisecond))
	fmt.Printf("primes found: %d, largest: %d\n", rep.Count, rep.Largest)
	return nil
}
