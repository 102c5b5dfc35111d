package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertRun(t *testing.T, db *DB, nsPerOp ...float64) int64 {
	t.Helper()
	id, err := db.CreateRun(&Run{
		Command:     "bench",
		Version:     "test",
		Dir:         "/a",
		File:        "../b",
		Iterations:  1000,
		Rounds:      len(nsPerOp),
		Parallelism: 1,
	})
	require.NoError(t, err)
	for i, ns := range nsPerOp {
		require.NoError(t, db.InsertRoundResult(id, i+1, ns, int64(ns*1000)))
	}
	return id
}

func TestCreateRunAndResults(t *testing.T) {
	db := openTestDB(t)

	id := insertRun(t, db, 40.0, 42.0)
	results, err := db.GetRunResults(id)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Round)
	assert.Equal(t, 40.0, results[0].NsPerOp)
	assert.Equal(t, 2, results[1].Round)
}

func TestLatestRunEmpty(t *testing.T) {
	db := openTestDB(t)

	latest, err := db.LatestRun()
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestListRuns(t *testing.T) {
	db := openTestDB(t)

	first := insertRun(t, db, 50.0)
	second := insertRun(t, db, 30.0, 40.0)

	summaries, err := db.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest first, mean across rounds.
	assert.Equal(t, second, summaries[0].Run.ID)
	assert.InDelta(t, 35.0, summaries[0].MeanNsPerOp, 0.001)
	assert.Equal(t, first, summaries[1].Run.ID)
	assert.InDelta(t, 50.0, summaries[1].MeanNsPerOp, 0.001)
}

func TestListRunsLimit(t *testing.T) {
	db := openTestDB(t)

	insertRun(t, db, 10.0)
	insertRun(t, db, 20.0)
	insertRun(t, db, 30.0)

	summaries, err := db.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestCompareRuns(t *testing.T) {
	db := openTestDB(t)

	insertRun(t, db, 50.0)
	insertRun(t, db, 42.0)

	diff, err := db.CompareRuns()
	require.NoError(t, err)
	require.NotNil(t, diff.Current)
	require.NotNil(t, diff.Previous)
	assert.InDelta(t, -8.0, diff.Delta, 0.001)
}

func TestCompareRunsSingle(t *testing.T) {
	db := openTestDB(t)

	insertRun(t, db, 42.0)

	diff, err := db.CompareRuns()
	require.NoError(t, err)
	require.NotNil(t, diff.Current)
	assert.Nil(t, diff.Previous)
	assert.Equal(t, 0.0, diff.Delta)
}

func TestRunFieldsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	insertRun(t, db, 42.0)
	latest, err := db.LatestRun()
	require.NoError(t, err)
	require.NotNil(t, latest)

	assert.Equal(t, "bench", latest.Run.Command)
	assert.Equal(t, "/a", latest.Run.Dir)
	assert.Equal(t, "../b", latest.Run.File)
	assert.Equal(t, int64(1000), latest.Run.Iterations)
	assert.False(t, latest.Run.StartedAt.IsZero())
}
