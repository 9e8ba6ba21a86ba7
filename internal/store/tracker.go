package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Tracker owns the mutable user state: viewed ids, applied ids, and
// notes, keyed by the company's stable id. It loads once at start and
// writes back after each mutation. A missing, corrupted, or
// unavailable store loads as empty state and is never surfaced to the
// caller; the first successful save overwrites whatever was there.
type Tracker struct {
	kv      KV
	viewed  map[string]bool
	applied map[string]bool
	notes   map[string]string
}

// NewTracker loads user state from kv.
func NewTracker(ctx context.Context, kv KV) *Tracker {
	t := &Tracker{
		kv:      kv,
		viewed:  loadIDSet(ctx, kv, KeyViewed),
		applied: loadIDSet(ctx, kv, KeyApplied),
		notes:   loadNotes(ctx, kv),
	}
	return t
}

func loadIDSet(ctx context.Context, kv KV, key string) map[string]bool {
	set := make(map[string]bool)
	raw, err := kv.Get(ctx, key)
	if err != nil || raw == nil {
		if err != nil {
			zap.L().Debug("state unavailable, starting empty", zap.String("key", key), zap.Error(err))
		}
		return set
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		zap.L().Debug("state corrupted, starting empty", zap.String("key", key), zap.Error(err))
		return set
	}
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func loadNotes(ctx context.Context, kv KV) map[string]string {
	notes := make(map[string]string)
	raw, err := kv.Get(ctx, KeyNotes)
	if err != nil || raw == nil {
		if err != nil {
			zap.L().Debug("state unavailable, starting empty", zap.String("key", KeyNotes), zap.Error(err))
		}
		return notes
	}
	if err := json.Unmarshal(raw, &notes); err != nil {
		zap.L().Debug("state corrupted, starting empty", zap.String("key", KeyNotes), zap.Error(err))
		return map[string]string{}
	}
	return notes
}

func (t *Tracker) saveIDSet(ctx context.Context, key string, set map[string]bool) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return eris.Wrapf(err, "tracker: marshal %s", key)
	}
	return t.kv.Set(ctx, key, raw)
}

func (t *Tracker) saveNotes(ctx context.Context) error {
	raw, err := json.Marshal(t.notes)
	if err != nil {
		return eris.Wrap(err, "tracker: marshal notes")
	}
	return t.kv.Set(ctx, KeyNotes, raw)
}

// Viewed reports whether the company was opened before.
func (t *Tracker) Viewed(id string) bool { return t.viewed[id] }

// ViewedCount returns the size of the viewed set.
func (t *Tracker) ViewedCount() int { return len(t.viewed) }

// MarkViewed records that the company was opened.
func (t *Tracker) MarkViewed(ctx context.Context, id string) error {
	if t.viewed[id] {
		return nil
	}
	t.viewed[id] = true
	return t.saveIDSet(ctx, KeyViewed, t.viewed)
}

// ResetViewed clears the viewing history.
func (t *Tracker) ResetViewed(ctx context.Context) error {
	t.viewed = make(map[string]bool)
	return t.kv.Delete(ctx, KeyViewed)
}

// Applied reports whether the user marked the company as applied-to.
func (t *Tracker) Applied(id string) bool { return t.applied[id] }

// SetApplied sets or clears the applied mark.
func (t *Tracker) SetApplied(ctx context.Context, id string, applied bool) error {
	if applied {
		t.applied[id] = true
	} else {
		delete(t.applied, id)
	}
	return t.saveIDSet(ctx, KeyApplied, t.applied)
}

// ToggleApplied flips the applied mark and returns the new value.
func (t *Tracker) ToggleApplied(ctx context.Context, id string) (bool, error) {
	next := !t.applied[id]
	return next, t.SetApplied(ctx, id, next)
}

// Note returns the stored note for the company, "" when none.
func (t *Tracker) Note(id string) string { return t.notes[id] }

// SetNote stores a note; an empty text removes the entry.
func (t *Tracker) SetNote(ctx context.Context, id, text string) error {
	if text == "" {
		delete(t.notes, id)
	} else {
		t.notes[id] = text
	}
	return t.saveNotes(ctx)
}
