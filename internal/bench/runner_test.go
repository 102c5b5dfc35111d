package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSequential(t *testing.T) {
	r := &Runner{Dir: "/a", File: "../b", Count: 1000, Rounds: 3}
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, i+1, res.Round)
		assert.Equal(t, int64(1000), res.Iterations)
		assert.GreaterOrEqual(t, res.NsPerOp, 0.0)
	}
}

func TestRunParallel(t *testing.T) {
	r := &Runner{Dir: "a/b", File: "../../x", Count: 10_000, Rounds: 2, Parallelism: 4}
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Equal(t, int64(10_000), res.Iterations)
	}
}

// Workers must not share a result variable; with the race detector on, any
// cross-goroutine write here fails the run.
func TestRunParallelWorkersOverlap(t *testing.T) {
	r := &Runner{Dir: "/usr/local/lib", File: "../bin/./go", Count: 2_000_000, Rounds: 1, Parallelism: 4}
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(2_000_000), results[0].Iterations)
}

func TestRunDefaultsRounds(t *testing.T) {
	r := &Runner{Dir: ".", File: ".", Count: 10}
	results, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Dir: "a", File: "b", Count: 10, Rounds: 5}
	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunCancelledMidRunKeepsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &Runner{Dir: "a", File: "b", Count: 10, Rounds: 5}
	r.OnRound = func(Result) { cancel() }

	results, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	// The round that finished before the cancellation is still reported.
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Round)
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(Result{Round: 1, Iterations: 20_000_000, NsPerOp: 42.5})
	assert.True(t, strings.HasPrefix(line, "BenchmarkJoinPath/#00"), "line = %q", line)
	assert.Contains(t, line, "20000000")
	assert.Contains(t, line, "ns/op")
}

func TestPreamble(t *testing.T) {
	lines := Preamble()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "goos: "))
	assert.True(t, strings.HasPrefix(lines[1], "goarch: "))
	assert.True(t, strings.HasPrefix(lines[2], "pkg: "))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))

	results := []Result{
		{NsPerOp: 10, Elapsed: 10 * time.Nanosecond},
		{NsPerOp: 20, Elapsed: 20 * time.Nanosecond},
	}
	assert.Equal(t, 15.0, Mean(results))
}
