package redis

import (
	"context"
	"time"
)

// Client defines the subset of Redis operations the snapshot store needs:
// connection lifecycle plus a plain string get/set. The teacher's client
// also exposed hash, sorted-set, pub/sub and stream operations for its own
// market-data/live-viewer concerns; none of those are exercised by
// anything in this repo, so they were trimmed rather than carried as dead
// surface (see DESIGN.md).
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
	Reconnect(ctx context.Context) bool

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}
