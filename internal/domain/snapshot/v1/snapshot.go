// Package v1 defines the persisted book snapshot: every live order plus
// the sequence counter needed to keep FIFO tie-breaks stable across a
// restore.
package v1

import (
	"context"

	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Snapshot is the JSON-serialized state persisted by the engine's
// snapshot manager: on each tick it saves one if at least
// SnapshotOffsetDelta messages were processed since the last save.
type Snapshot struct {
	SnapshotID   string          `json:"snapshot_id"`
	MessageOffset int64          `json:"message_offset"`
	Sequence     int64           `json:"sequence"`
	Orders       []orderv1.Order `json:"orders"`
}

// Store persists and restores Snapshots, keyed by trading pair.
type Store interface {
	Save(ctx context.Context, pair typesv1.Symbol, snap Snapshot) error
	Load(ctx context.Context, pair typesv1.Symbol) (Snapshot, bool, error)
}
