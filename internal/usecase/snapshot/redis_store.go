// Package snapshot implements snapshotv1.Store on top of the ambient
// pkg/redis client, grounded on the teacher's
// matching-service/internal/usecase/snapshot/store.go: JSON-marshal the
// snapshot and Set it under a pair-scoped key, Get-and-unmarshal to load.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	snapshotv1 "github.com/quaystack/ladderbook/internal/domain/snapshot/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
	"github.com/quaystack/ladderbook/pkg/errors"
	"github.com/quaystack/ladderbook/pkg/logger"
	"github.com/quaystack/ladderbook/pkg/redis"
)

// RedisStore persists snapshots as JSON blobs in Redis. Keys never
// expire: a snapshot is only ever superseded by a newer one for the same
// pair, never aged out.
type RedisStore struct {
	client redis.Client
	logger *logger.Logger
	prefix string
}

var _ snapshotv1.Store = (*RedisStore)(nil)

// NewRedisStore returns a Store backed by client, namespacing keys under prefix.
func NewRedisStore(client redis.Client, logger *logger.Logger, prefix string) *RedisStore {
	return &RedisStore{client: client, logger: logger, prefix: prefix}
}

func (s *RedisStore) key(pair typesv1.Symbol) string {
	return fmt.Sprintf("%ssnapshot:%s", s.prefix, pair)
}

// Save marshals snap to JSON and stores it under pair's key.
func (s *RedisStore) Save(ctx context.Context, pair typesv1.Symbol, snap snapshotv1.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if err := s.client.Set(ctx, s.key(pair), payload, 0); err != nil {
		s.logger.Error(errors.TracerFromError(err), logger.NewField("pair", pair))
		return errors.NewTracer("snapshot: save failed").Wrap(err)
	}

	s.logger.Info("snapshot saved", logger.NewField("pair", pair), logger.NewField("orders", len(snap.Orders)))
	return nil
}

// Load fetches and unmarshals pair's snapshot. ok is false if no
// snapshot has ever been saved for pair.
func (s *RedisStore) Load(ctx context.Context, pair typesv1.Symbol) (snapshotv1.Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.key(pair))
	if err != nil {
		return snapshotv1.Snapshot{}, false, errors.NewTracer("snapshot: load failed").Wrap(err)
	}
	if raw == "" {
		return snapshotv1.Snapshot{}, false, nil
	}

	var snap snapshotv1.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return snapshotv1.Snapshot{}, false, errors.TracerFromError(err)
	}
	return snap, true, nil
}
