package engine

import "time"

// Options configures the streaming engine's snapshot cadence.
type Options struct {
	SnapshotInterval    time.Duration
	SnapshotOffsetDelta int64
}

// DefaultOptions returns the engine's default snapshot cadence.
func DefaultOptions() *Options {
	return &Options{
		SnapshotInterval:    30 * time.Second,
		SnapshotOffsetDelta: 1000,
	}
}
