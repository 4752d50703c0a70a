package runstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := New(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRun(id string, created time.Time) Run {
	return Run{
		ID:        id,
		CreatedAt: created,
		Motif:     "GATTACA",
		Score:     35,
		MotifLen:  7,
		Samples:   100,
		Sequences: 4,
		SeqLen:    20,
		Profile:   "Pos    1\nA      4\n",
	}
}

func TestSaveAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRun(ctx, testRun("run-1", created)))

	got, ok, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "GATTACA", got.Motif)
	assert.Equal(t, 35.0, got.Score)
	assert.Equal(t, 7, got.MotifLen)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Equal(t, "Pos    1\nA      4\n", got.Profile)
}

func TestGetRunMissing(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.GetRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveRunOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := testRun("run-1", time.Now())
	require.NoError(t, store.SaveRun(ctx, run))

	run.Motif = "TTTTTTT"
	run.Score = 12
	require.NoError(t, store.SaveRun(ctx, run))

	got, ok, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "TTTTTTT", got.Motif)
	assert.Equal(t, 12.0, got.Score)
}

func TestListRunsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveRun(ctx, testRun("old", base)))
	require.NoError(t, store.SaveRun(ctx, testRun("mid", base.Add(time.Minute))))
	require.NoError(t, store.SaveRun(ctx, testRun("new", base.Add(2*time.Minute))))

	runs, err := store.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
	assert.Equal(t, "old", runs[2].ID)

	limited, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestUninitializedStore(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "runs.db"))

	err := store.SaveRun(context.Background(), testRun("x", time.Now()))
	require.Error(t, err)

	_, _, err = store.GetRun(context.Background(), "x")
	require.Error(t, err)
}

func TestInitRequiresPath(t *testing.T) {
	store := New("")
	require.Error(t, store.Init(context.Background()))
}
