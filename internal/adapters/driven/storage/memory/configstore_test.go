package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("search.match", "exact"))
	require.NoError(t, store.Set("links.watch", true))
	require.NoError(t, store.Set("data.extensions", []any{".xlsx", 3, ".csv"}))

	assert.Equal(t, "exact", store.GetString("search.match"))
	assert.True(t, store.GetBool("links.watch"))
	assert.Equal(t, []string{".xlsx", ".csv"}, store.GetStringSlice("data.extensions"))
	assert.Equal(t, []string{"data.extensions", "links.watch", "search.match"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())

	assert.Empty(t, store.GetString("links.watch"))
	assert.False(t, store.GetBool("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}
