package runlog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "runs.db") + "?mode=rwc&_txlock=immediate"
	s, err := New(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	id1, err := s.Record(ctx, domain.RefreshSummary{Trigger: domain.TriggerSchedule, StartedAt: base,
		FinishedAt: base.Add(20 * time.Second), Sources: 15, Updated: 14, Failed: 1,
		NewPosts: []domain.Post{{ID: "a:1"}, {ID: "a:2"}}, AuthorsUpdated: 15, AggregatedInserted: 3})
	require.NoError(t, err)
	assert.Positive(t, id1)

	id2, err := s.Record(ctx, domain.RefreshSummary{Trigger: domain.TriggerAPI, StartedAt: base.Add(time.Hour),
		FinishedAt: base.Add(time.Hour + time.Second), Sources: 15})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, domain.TriggerAPI, runs[0].Trigger)
	assert.False(t, runs[0].NewContentFound)

	r := runs[1]
	assert.Equal(t, id1, r.ID)
	assert.Equal(t, 14, r.Updated)
	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, 2, r.NewPostsCount)
	assert.True(t, r.NewContentFound)
	assert.Equal(t, 3, r.AggregatedInserted)
	assert.Equal(t, 20*time.Second, r.Duration())
	assert.True(t, base.Equal(r.StartedAt))

	runs, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, isLockError(errors.New("no such table")))
}
