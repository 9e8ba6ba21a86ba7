package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	tr := NewTracker(ctx, kv)
	require.NoError(t, tr.MarkViewed(ctx, "a"))
	require.NoError(t, tr.MarkViewed(ctx, "b"))
	_, err := tr.ToggleApplied(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, tr.SetNote(ctx, "b", "nachfragen"))

	// A fresh tracker over the same KV sees the persisted state.
	tr2 := NewTracker(ctx, kv)
	assert.True(t, tr2.Viewed("a"))
	assert.True(t, tr2.Viewed("b"))
	assert.False(t, tr2.Viewed("c"))
	assert.Equal(t, 2, tr2.ViewedCount())
	assert.True(t, tr2.Applied("a"))
	assert.False(t, tr2.Applied("b"))
	assert.Equal(t, "nachfragen", tr2.Note("b"))
	assert.Equal(t, "", tr2.Note("a"))
}

func TestTrackerToggleAndClear(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(ctx, NewMemory())

	on, err := tr.ToggleApplied(ctx, "x")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := tr.ToggleApplied(ctx, "x")
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, tr.Applied("x"))

	require.NoError(t, tr.SetNote(ctx, "x", "hallo"))
	require.NoError(t, tr.SetNote(ctx, "x", ""))
	assert.Equal(t, "", tr.Note("x"))
}

func TestTrackerResetViewed(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	tr := NewTracker(ctx, kv)

	require.NoError(t, tr.MarkViewed(ctx, "a"))
	require.NoError(t, tr.ResetViewed(ctx))
	assert.Equal(t, 0, tr.ViewedCount())

	tr2 := NewTracker(ctx, kv)
	assert.False(t, tr2.Viewed("a"))
}

func TestTrackerCorruptStateLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	require.NoError(t, kv.Set(ctx, KeyViewed, []byte(`{not json`)))
	require.NoError(t, kv.Set(ctx, KeyApplied, []byte(`42`)))
	require.NoError(t, kv.Set(ctx, KeyNotes, []byte(`["wrong","shape"]`)))

	tr := NewTracker(ctx, kv)
	assert.Equal(t, 0, tr.ViewedCount())
	assert.False(t, tr.Applied("a"))
	assert.Equal(t, "", tr.Note("a"))

	// Mutations still work and replace the corrupt blobs.
	require.NoError(t, tr.MarkViewed(ctx, "a"))
	tr2 := NewTracker(ctx, kv)
	assert.True(t, tr2.Viewed("a"))
}
