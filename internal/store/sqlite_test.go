package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	require.NoError(t, kv.Migrate(context.Background()))
	return kv
}

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	kv := newTestSQLite(t)

	t.Run("missing key returns nil", func(t *testing.T) {
		v, err := kv.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set get roundtrip", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, KeyViewed, []byte(`["a","b"]`)))
		v, err := kv.Get(ctx, KeyViewed)
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b"]`, string(v))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, KeyNotes, []byte(`{"a":"x"}`)))
		require.NoError(t, kv.Set(ctx, KeyNotes, []byte(`{"a":"y"}`)))
		v, err := kv.Get(ctx, KeyNotes)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"y"}`, string(v))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, KeyApplied, []byte(`["a"]`)))
		require.NoError(t, kv.Delete(ctx, KeyApplied))
		v, err := kv.Get(ctx, KeyApplied)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestTrackerOnSQLite(t *testing.T) {
	ctx := context.Background()
	kv := newTestSQLite(t)

	tr := NewTracker(ctx, kv)
	require.NoError(t, tr.MarkViewed(ctx, "c1"))
	_, err := tr.ToggleApplied(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, tr.SetNote(ctx, "c1", "Bewerbung bis März"))

	tr2 := NewTracker(ctx, kv)
	assert.True(t, tr2.Viewed("c1"))
	assert.True(t, tr2.Applied("c1"))
	assert.Equal(t, "Bewerbung bis März", tr2.Note("c1"))
}
