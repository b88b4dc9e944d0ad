package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveRunRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := RunRecord{
		ID:         "run-1",
		StartedAt:  "2026-08-25T10:00:00Z",
		ElapsedMS:  1500,
		Rows:       4,
		Cols:       4,
		Replicates: 2,
		Seed:       123,
		AssetCol:   1,
		HitCount:   1,
		HitRate:    0.5,
		MeanLoss:   200,
		MaxLoss:    400,
	}
	require.NoError(t, db.SaveRun(rec, []float64{400, 0}, []bool{true, false}))

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, rec, runs[0])

	losses, err := db.ReplicateLosses("run-1")
	require.NoError(t, err)
	assert.Equal(t, []ReplicateLoss{
		{Replicate: 1, Loss: 400, Hit: true},
		{Replicate: 2, Loss: 0, Hit: false},
	}, losses)
}

func TestSaveRunZeroLossHit(t *testing.T) {
	db := openTestDB(t)

	// The hit flag survives archival even when the replicate lost nothing.
	rec := RunRecord{ID: "run-1", StartedAt: "2026-08-25T10:00:00Z", Rows: 4, Cols: 4,
		Replicates: 1, HitCount: 1, HitRate: 1}
	require.NoError(t, db.SaveRun(rec, []float64{0}, []bool{true}))

	losses, err := db.ReplicateLosses("run-1")
	require.NoError(t, err)
	require.Len(t, losses, 1)
	assert.Zero(t, losses[0].Loss)
	assert.True(t, losses[0].Hit)
}

func TestSaveRunMismatchedHits(t *testing.T) {
	db := openTestDB(t)

	rec := RunRecord{ID: "run-1", StartedAt: "2026-08-25T10:00:00Z", Rows: 4, Cols: 4, Replicates: 2}
	err := db.SaveRun(rec, []float64{400, 0}, []bool{true})
	assert.ErrorContains(t, err, "2 losses but 1 hit flags")
}

func TestRecentRunsOrdering(t *testing.T) {
	db := openTestDB(t)

	older := RunRecord{ID: "run-old", StartedAt: "2026-08-24T09:00:00Z", Rows: 4, Cols: 4, Replicates: 1}
	newer := RunRecord{ID: "run-new", StartedAt: "2026-08-25T09:00:00Z", Rows: 4, Cols: 4, Replicates: 1}
	require.NoError(t, db.SaveRun(older, []float64{0}, []bool{false}))
	require.NoError(t, db.SaveRun(newer, []float64{0}, []bool{false}))

	runs, err := db.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-new", runs[0].ID)
}

func TestSaveRunDuplicateID(t *testing.T) {
	db := openTestDB(t)

	rec := RunRecord{ID: "run-1", StartedAt: "2026-08-25T10:00:00Z", Rows: 4, Cols: 4, Replicates: 1}
	require.NoError(t, db.SaveRun(rec, []float64{0}, []bool{false}))

	err := db.SaveRun(rec, []float64{0}, []bool{false})
	assert.Error(t, err, "run IDs are unique")
}
