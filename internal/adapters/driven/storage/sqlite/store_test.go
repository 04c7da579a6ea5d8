package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
	assert.FileExists(t, store.Path())

	v, err := store.version()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.HistoryStore().Save(ctx, domain.LookupEntry{
		ID: "keep", CropName: "사과", DiseaseName: "탄저병", Outcome: domain.OutcomeMatched,
	}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.HistoryStore().Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].ID)

	v, err := reopened.version()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "migrations are not re-applied")
}

func TestHistoryStore_SaveAndRecent(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, history.Save(ctx, domain.LookupEntry{
			ID:          fmt.Sprintf("lookup-%d", i),
			CropName:    "고추",
			DiseaseName: "탄저병",
			Outcome:     domain.OutcomeMatched,
			ResultCount: i,
			SourceFile:  "고추.xlsx",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := history.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "lookup-4", entries[0].ID)
	assert.Equal(t, "lookup-2", entries[2].ID)

	first := entries[0]
	assert.Equal(t, "고추", first.CropName)
	assert.Equal(t, "탄저병", first.DiseaseName)
	assert.Equal(t, domain.OutcomeMatched, first.Outcome)
	assert.Equal(t, 4, first.ResultCount)
	assert.Equal(t, "고추.xlsx", first.SourceFile)
	assert.True(t, base.Add(4*time.Minute).Equal(first.CreatedAt))

	all, err := history.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestHistoryStore_SameTimestampNewestInsertFirst(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	at := time.Now()

	require.NoError(t, history.Save(ctx, domain.LookupEntry{ID: "a", Outcome: domain.OutcomeNoMatch, CreatedAt: at}))
	require.NoError(t, history.Save(ctx, domain.LookupEntry{ID: "b", Outcome: domain.OutcomeNoData, CreatedAt: at}))

	entries, err := history.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
}

func TestHistoryStore_SaveValidation(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, history.Save(ctx, domain.LookupEntry{}), domain.ErrInvalidInput)

	require.NoError(t, history.Save(ctx, domain.LookupEntry{ID: "dup", Outcome: domain.OutcomeFailed}))
	assert.Error(t, history.Save(ctx, domain.LookupEntry{ID: "dup", Outcome: domain.OutcomeFailed}))
}

func TestHistoryStore_SaveDefaultsTimestamp(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Save(ctx, domain.LookupEntry{ID: "now", Outcome: domain.OutcomeMatched}))

	entries, err := history.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.WithinDuration(t, time.Now(), entries[0].CreatedAt, time.Minute)
}

func TestHistoryStore_Clear(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx := context.Background()
	require.NoError(t, history.Save(ctx, domain.LookupEntry{ID: "x", Outcome: domain.OutcomeMatched}))

	require.NoError(t, history.Clear(ctx))

	entries, err := history.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryStore_CancelledContext(t *testing.T) {
	history := setupTestStore(t).HistoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := history.Save(ctx, domain.LookupEntry{ID: "late", Outcome: domain.OutcomeMatched})

	assert.Error(t, err)
}
