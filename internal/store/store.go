// Package store persists per-device user progress: which companies
// were viewed, which were applied to, and free-text notes. State is
// kept as JSON blobs under fixed keys in a small key-value store so
// the derivation core never touches persistence directly.
package store

import "context"

// Fixed state keys.
const (
	KeyViewed  = "viewed_companies"
	KeyApplied = "applied_companies"
	KeyNotes   = "company_notes"
)

// KV is the minimal key-value interface the tracker persists through.
// Get returns (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
