package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/bench"
	"github.com/lexpath/lexpath/internal/config"
	"github.com/lexpath/lexpath/internal/store"
)

var (
	benchCount    int64
	benchRounds   int
	benchParallel int
	benchNoSave   bool
)

var benchCmd = &cobra.Command{
	Use:     "bench [dir] [file]",
	Aliases: []string{"test"},
	Short:   "Measure join throughput and record the run",
	Long: `Bench runs rounds of repeated join calls over a fixed input pair and
prints one benchmark line per round, Go-tool style. Results are recorded in
the local database so later runs can be compared; pass --no-save to skip
recording. Interrupting with Ctrl-C stops after the current round.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().Int64Var(&benchCount, "count", 0, "Join calls per round (default from config)")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 0, "Number of measured rounds (default from config)")
	benchCmd.Flags().IntVar(&benchParallel, "parallel", 0, "Workers to split each round across (default from config)")
	benchCmd.Flags().BoolVar(&benchNoSave, "no-save", false, "Do not record the run in the database")
	rootCmd.AddCommand(benchCmd)
}

// benchOutput is the JSON-serializable output for the bench command.
type benchOutput struct {
	Dir     string         `json:"dir"`
	File    string         `json:"file"`
	Results []bench.Result `json:"results"`
	Mean    float64        `json:"mean_ns_per_op"`
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	runner := &bench.Runner{
		Dir:         cfg.Join.Dir,
		File:        cfg.Join.File,
		Count:       cfg.Bench.Count,
		Rounds:      cfg.Bench.Rounds,
		Parallelism: cfg.Bench.Parallelism,
	}
	if len(args) > 0 {
		runner.Dir = args[0]
	}
	if len(args) > 1 {
		runner.File = args[1]
	}
	if benchCount > 0 {
		runner.Count = benchCount
	}
	if benchRounds > 0 {
		runner.Rounds = benchRounds
	}
	if benchParallel > 0 {
		runner.Parallelism = benchParallel
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "bench: dir=%q file=%q count=%d rounds=%d parallelism=%d\n",
			runner.Dir, runner.File, runner.Count, runner.Rounds, runner.Parallelism)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if !flagJSON {
		for _, line := range bench.Preamble() {
			fmt.Println(line)
		}
		runner.OnRound = func(res bench.Result) {
			fmt.Println(bench.FormatLine(res))
		}
	}

	results, err := runner.Run(ctx)
	// An interrupt stops between rounds; the rounds already measured are
	// still reported and recorded.
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if jerr := enc.Encode(benchOutput{
			Dir:     runner.Dir,
			File:    runner.File,
			Results: results,
			Mean:    bench.Mean(results),
		}); jerr != nil {
			return jerr
		}
	} else if interrupted {
		fmt.Println("interrupted")
	} else {
		fmt.Println("PASS")
	}

	if benchNoSave || !cfg.Bench.Save || len(results) == 0 {
		return nil
	}
	return saveRun(runner, results)
}

func saveRun(runner *bench.Runner, results []bench.Result) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runID, err := db.CreateRun(&store.Run{
		Command:     "bench",
		Version:     appVersion,
		Dir:         runner.Dir,
		File:        runner.File,
		Iterations:  results[0].Iterations,
		Rounds:      len(results),
		Parallelism: runner.Parallelism,
	})
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	for _, res := range results {
		if err := db.InsertRoundResult(runID, res.Round, res.NsPerOp, res.Elapsed.Nanoseconds()); err != nil {
			return fmt.Errorf("recording round %d: %w", res.Round, err)
		}
	}
	return nil
}
