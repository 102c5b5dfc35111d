// Package bench provides the timing harness that measures Join throughput.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lexpath/lexpath/internal/pathclean"
)

// DefaultCount is the number of join operations per round, matching the
// fixed iteration count the harness has always used.
const DefaultCount = 20_000_000

// Runner drives repeated rounds of pathclean.Join over a fixed input pair.
type Runner struct {
	// Dir and File are the two arguments passed to every Join call.
	Dir  string
	File string

	// Count is the number of Join calls per round.
	Count int64

	// Rounds is the number of measured rounds to run.
	Rounds int

	// Parallelism is the number of workers the per-round iterations are
	// split across. Values below 2 run the classic sequential loop.
	Parallelism int

	// OnRound, when set, is called with each round's result as soon as the
	// round finishes, so output can stream during long runs.
	OnRound func(Result)
}

// Result captures the timing of one measured round.
type Result struct {
	Round      int           `json:"round"`
	Iterations int64         `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	NsPerOp    float64       `json:"ns_per_op"`
}

// sink defeats dead-code elimination of the Join result in the sequential
// loop. Parallel workers each keep their own local; see runParallel.
var sink string

// Run executes all rounds and returns one Result per round. The context is
// checked between rounds (and between worker chunks in parallel mode), so a
// cancelled run returns the rounds completed so far along with ctx.Err().
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	count := r.Count
	if count <= 0 {
		count = DefaultCount
	}
	rounds := r.Rounds
	if rounds <= 0 {
		rounds = 1
	}

	results := make([]Result, 0, rounds)
	for round := 1; round <= rounds; round++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		var elapsed time.Duration
		var err error
		if r.Parallelism > 1 {
			elapsed, err = r.runParallel(ctx, count)
		} else {
			elapsed = r.runSequential(count)
		}
		if err != nil {
			return results, err
		}

		res := Result{
			Round:      round,
			Iterations: count,
			Elapsed:    elapsed,
			NsPerOp:    float64(elapsed.Nanoseconds()) / float64(count),
		}
		results = append(results, res)
		if r.OnRound != nil {
			r.OnRound(res)
		}
	}
	return results, nil
}

func (r *Runner) runSequential(count int64) time.Duration {
	start := time.Now()
	for i := int64(0); i < count; i++ {
		sink = pathclean.Join(r.Dir, r.File)
	}
	return time.Since(start)
}

// chunkSize is the number of iterations a parallel worker runs between
// cancellation checks.
const chunkSize = 1 << 20

func (r *Runner) runParallel(ctx context.Context, count int64) (time.Duration, error) {
	workers := r.Parallelism
	if workers > runtime.GOMAXPROCS(0) {
		workers = runtime.GOMAXPROCS(0)
	}

	per := count / int64(workers)
	remainder := count % int64(workers)

	// Each worker accumulates into its own local and publishes once to its
	// own slot, so no two goroutines ever write the same location.
	last := make([]string, workers)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := per
		if w == 0 {
			n += remainder
		}
		slot := &last[w]
		g.Go(func() error {
			var local string
			for done := int64(0); done < n; done += chunkSize {
				if err := ctx.Err(); err != nil {
					return err
				}
				step := n - done
				if step > chunkSize {
					step = chunkSize
				}
				for i := int64(0); i < step; i++ {
					local = pathclean.Join(r.Dir, r.File)
				}
			}
			*slot = local
			return nil
		})
	}
	err := g.Wait()
	runtime.KeepAlive(last)
	return time.Since(start), err
}

// Preamble returns the header lines printed before benchmark output, in the
// same shape the Go tool uses.
func Preamble() []string {
	return []string{
		"goos: " + runtime.GOOS,
		"goarch: " + runtime.GOARCH,
		"pkg: github.com/lexpath/lexpath/internal/pathclean",
	}
}

// FormatLine renders one round as a benchmark output line.
func FormatLine(res Result) string {
	return fmt.Sprintf("BenchmarkJoinPath/#%02d        %d\t% 10.2f ns/op", res.Round-1, res.Iterations, res.NsPerOp)
}

// Mean returns the average ns/op across results, or 0 for an empty slice.
func Mean(results []Result) float64 {
	if len(results) == 0 {
		return 0
	}
	var total float64
	for _, res := range results {
		total += res.NsPerOp
	}
	return total / float64(len(results))
}
