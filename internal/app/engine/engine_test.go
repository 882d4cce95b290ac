package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchv1 "github.com/quaystack/ladderbook/internal/domain/match/v1"
	orderreaderv1 "github.com/quaystack/ladderbook/internal/domain/order-reader/v1"
	snapshotv1 "github.com/quaystack/ladderbook/internal/domain/snapshot/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
	"github.com/quaystack/ladderbook/pkg/logger"
)

// fakeReader replays a fixed slice of lines and then blocks until the
// context is cancelled, standing in for a Kafka source in tests.
type fakeReader struct {
	mu       sync.Mutex
	lines    []string
	offset   int64
	closed   bool
	commits  []int64
}

func newFakeReader(lines []string) *fakeReader {
	return &fakeReader{lines: lines}
}

func (r *fakeReader) ReadMessage(ctx context.Context) (orderreaderv1.Message, error) {
	r.mu.Lock()
	if len(r.lines) > 0 {
		line := r.lines[0]
		r.lines = r.lines[1:]
		r.offset++
		off := r.offset
		r.mu.Unlock()
		return orderreaderv1.Message{Line: line, Offset: off}, nil
	}
	r.mu.Unlock()

	<-ctx.Done()
	return orderreaderv1.Message{}, ctx.Err()
}

func (r *fakeReader) SetOffset(offset int64) error { return nil }

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...orderreaderv1.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.commits = append(r.commits, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

// fakePublisher records every trade event it is asked to publish.
type fakePublisher struct {
	mu     sync.Mutex
	events []matchv1.TradeEvent
}

func (p *fakePublisher) PublishMatchEvent(ctx context.Context, event matchv1.TradeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// fakeStore is an in-memory snapshotv1.Store.
type fakeStore struct {
	mu   sync.Mutex
	data map[typesv1.Symbol]snapshotv1.Snapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[typesv1.Symbol]snapshotv1.Snapshot)}
}

func (s *fakeStore) Save(ctx context.Context, pair typesv1.Symbol, snap snapshotv1.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[pair] = snap
	return nil
}

func (s *fakeStore) Load(ctx context.Context, pair typesv1.Symbol) (snapshotv1.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.data[pair]
	return snap, ok, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(logger.WithOutputPaths([]string{"stdout"}))
	require.NoError(t, err)
	return log
}

func TestEngine_ProcessesCommandsAndPublishesTrades(t *testing.T) {
	reader := newFakeReader([]string{
		"N,1,1,IBM,L,B,10.05,10",
		"N,2,2,IBM,L,S,10.00,10",
		"M,3,IBM",
	})
	publisher := &fakePublisher{}
	store := newFakeStore()

	eng := New(reader, publisher, store, newTestLogger(t), "IBM")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	eng.Start(ctx)
	<-ctx.Done()
	require.NoError(t, eng.Stop(context.Background()))

	assert.Equal(t, 1, publisher.count())
	assert.Equal(t, int64(1), eng.TotalTrades())
}

func TestEngine_RestoresFromSnapshotOnConstruction(t *testing.T) {
	store := newFakeStore()
	store.data["IBM"] = snapshotv1.Snapshot{
		MessageOffset: 42,
		Sequence:      7,
	}

	eng := New(newFakeReader(nil), &fakePublisher{}, store, newTestLogger(t), "IBM")
	assert.Equal(t, int64(42), eng.GetOffset())
}
