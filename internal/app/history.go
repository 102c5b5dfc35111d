package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lexpath/lexpath/internal/config"
	"github.com/lexpath/lexpath/internal/output"
	"github.com/lexpath/lexpath/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded benchmark runs and trends",
	Long: `History lists benchmark runs recorded by the bench command, newest
first, with each run's mean ns/op and the change against the run before it.
Lower ns/op is better.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum runs to list (default from config)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupColor()

	limit := cfg.History.Limit
	if historyLimit > 0 {
		limit = historyLimit
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	summaries, err := db.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No benchmark runs recorded yet. Run 'lexpath bench' first.")
		return nil
	}

	fmt.Println(output.Section("Benchmark history"))
	fmt.Println()

	tbl := output.NewTable("WHEN", "DIR", "FILE", "ITERS", "ROUNDS", "NS/OP", "TREND").
		AlignRight(3, 4, 5)
	for i, s := range summaries {
		trend := output.StyleMuted.Render("─")
		// Summaries are newest first; compare each run to the one after it.
		if i+1 < len(summaries) {
			trend = output.TrendArrow(s.MeanNsPerOp-summaries[i+1].MeanNsPerOp, false)
		}
		tbl.AddRow(
			s.Run.StartedAt.Local().Format(time.DateTime),
			s.Run.Dir,
			s.Run.File,
			fmt.Sprintf("%d", s.Run.Iterations),
			fmt.Sprintf("%d", s.Run.Rounds),
			fmt.Sprintf("%.2f", s.MeanNsPerOp),
			trend,
		)
	}
	tbl.Print()
	return nil
}
