package ports

import (
	"context"
	"encoding/json"
)

// Store is a namespaced key-value store for JSON-serializable blobs, the
// durable profile-scoped storage behind accounts, the session slot, and
// category records.
//
// Get returns the raw payload so that typed decoding happens at the caller:
// a corrupt value surfaces there as a decode failure and the caller decides
// on recovery. Absence of a key is a valid state, reported as (nil, false,
// nil) and never as an error.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	// Ping reports whether the backing store is reachable (readiness probe).
	Ping(ctx context.Context) error
}
