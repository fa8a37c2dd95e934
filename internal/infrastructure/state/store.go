// Package state provides durable snapshot storage for the client-side
// stores. Each store persists its full JSON snapshot under a fixed
// namespace key and rehydrates it on startup.
package state

import "context"

// Namespace keys, one per store. Each is an opaque string distinct from
// the others.
const (
	SessionKey  = "formermobilya:session"
	CartKey     = "formermobilya:cart"
	CheckoutKey = "formermobilya:checkout"
)

// SnapshotStore persists opaque JSON snapshots keyed by namespace.
// Load reports found=false for a missing key; callers treat missing and
// corrupt snapshots the same way and fall back to defaults.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
