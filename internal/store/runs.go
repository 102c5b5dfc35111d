package store

import (
	"database/sql"
	"time"
)

// CreateRun inserts a new run and returns its ID.
func (db *DB) CreateRun(run *Run) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO runs (started_at, command, version, dir, file, iterations, rounds, parallelism)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), run.Command, run.Version,
		run.Dir, run.File, run.Iterations, run.Rounds, run.Parallelism,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertRoundResult records the timing of one round of a run.
func (db *DB) InsertRoundResult(runID int64, round int, nsPerOp float64, elapsedNs int64) error {
	_, err := db.conn.Exec(
		"INSERT INTO round_results (run_id, round, ns_per_op, elapsed_ns) VALUES (?, ?, ?, ?)",
		runID, round, nsPerOp, elapsedNs,
	)
	return err
}

// GetRunResults returns all round results for a run, in round order.
func (db *DB) GetRunResults(runID int64) ([]RoundResult, error) {
	rows, err := db.conn.Query(
		"SELECT id, run_id, round, ns_per_op, elapsed_ns FROM round_results WHERE run_id = ? ORDER BY round",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var rr RoundResult
		if err := rows.Scan(&rr.ID, &rr.RunID, &rr.Round, &rr.NsPerOp, &rr.ElapsedNs); err != nil {
			return nil, err
		}
		results = append(results, rr)
	}
	return results, rows.Err()
}

const summarySelect = `
	SELECT r.id, r.started_at, r.command, r.version, r.dir, r.file,
	       r.iterations, r.rounds, r.parallelism,
	       COALESCE(AVG(rr.ns_per_op), 0)
	FROM runs r
	LEFT JOIN round_results rr ON rr.run_id = r.id
`

// ListRuns returns the most recent runs with their mean ns/op, newest first.
func (db *DB) ListRuns(limit int) ([]RunSummary, error) {
	rows, err := db.conn.Query(
		summarySelect+" GROUP BY r.id ORDER BY r.id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	return summaries, rows.Err()
}

// LatestRun returns the most recent run, or nil if none exist.
func (db *DB) LatestRun() (*RunSummary, error) {
	return db.runByOffset(0)
}

// PreviousRun returns the second most recent run, or nil if none exists.
func (db *DB) PreviousRun() (*RunSummary, error) {
	return db.runByOffset(1)
}

func (db *DB) runByOffset(offset int) (*RunSummary, error) {
	rows, err := db.conn.Query(
		summarySelect+" GROUP BY r.id ORDER BY r.id DESC LIMIT 1 OFFSET ?", offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanSummary(rows)
}

// CompareRuns returns the latest run against the previous one. Either side
// of the diff may be nil when fewer than two runs exist.
func (db *DB) CompareRuns() (*RunDiff, error) {
	current, err := db.LatestRun()
	if err != nil {
		return nil, err
	}
	previous, err := db.PreviousRun()
	if err != nil {
		return nil, err
	}

	diff := &RunDiff{Previous: previous, Current: current}
	if current != nil && previous != nil {
		diff.Delta = current.MeanNsPerOp - previous.MeanNsPerOp
	}
	return diff, nil
}

func scanSummary(rows *sql.Rows) (*RunSummary, error) {
	var s RunSummary
	var startedAt string
	err := rows.Scan(
		&s.Run.ID, &startedAt, &s.Run.Command, &s.Run.Version,
		&s.Run.Dir, &s.Run.File, &s.Run.Iterations, &s.Run.Rounds,
		&s.Run.Parallelism, &s.MeanNsPerOp,
	)
	if err != nil {
		return nil, err
	}
	// started_at is always written in RFC3339 by CreateRun; a value that no
	// longer parses (hand-edited database) is tolerated and left as the zero
	// time rather than failing the whole listing.
	if t, perr := time.Parse(time.RFC3339, startedAt); perr == nil {
		s.Run.StartedAt = t
	}
	return &s, nil
}
