// Package store provides SQLite persistence for lexpath benchmark runs.
package store

import "time"

// Run represents one invocation of the benchmark harness.
type Run struct {
	ID          int64     `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Command     string    `json:"command"`
	Version     string    `json:"version"`
	Dir         string    `json:"dir"`
	File        string    `json:"file"`
	Iterations  int64     `json:"iterations"`
	Rounds      int       `json:"rounds"`
	Parallelism int       `json:"parallelism"`
}

// RoundResult represents the timing of one round within a run.
type RoundResult struct {
	ID        int64   `json:"id"`
	RunID     int64   `json:"run_id"`
	Round     int     `json:"round"`
	NsPerOp   float64 `json:"ns_per_op"`
	ElapsedNs int64   `json:"elapsed_ns"`
}

// RunSummary pairs a run with its mean ns/op across rounds.
type RunSummary struct {
	Run         Run     `json:"run"`
	MeanNsPerOp float64 `json:"mean_ns_per_op"`
}

// RunDiff represents the comparison between two runs.
type RunDiff struct {
	Previous *RunSummary `json:"previous"`
	Current  *RunSummary `json:"current"`
	Delta    float64     `json:"delta"`
}
