// Package engine wires the matching core to a Kafka command stream and a
// Redis-backed snapshot store, grounded on the teacher's
// matching-service/internal/app/engine/engine.go: a single goroutine
// reads and applies commands in order, a second goroutine snapshots on a
// ticker/offset-delta cadence. Command application itself never runs on
// more than one goroutine at a time, preserving the core's
// single-threaded processing model.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	matchpublisherv1 "github.com/quaystack/ladderbook/internal/domain/match-publisher/v1"
	orderreaderv1 "github.com/quaystack/ladderbook/internal/domain/order-reader/v1"
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	snapshotv1 "github.com/quaystack/ladderbook/internal/domain/snapshot/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
	"github.com/quaystack/ladderbook/internal/usecase/dispatcher"
	"github.com/quaystack/ladderbook/internal/usecase/match"
	"github.com/quaystack/ladderbook/internal/usecase/orderbook"
	"github.com/quaystack/ladderbook/internal/usecase/parser"
	"github.com/quaystack/ladderbook/pkg/errors"
	"github.com/quaystack/ladderbook/pkg/logger"
	"github.com/quaystack/ladderbook/pkg/util"
)

// Engine runs the matching core as a long-lived streaming service.
type Engine struct {
	book       *orderbook.Book
	dispatcher *dispatcher.Dispatcher
	nextID     match.IDGenerator
	reader     orderreaderv1.Source
	publisher  matchpublisherv1.Publisher
	store      snapshotv1.Store
	logger     *logger.Logger
	pair       typesv1.Symbol

	snapshotInterval    time.Duration
	snapshotOffsetDelta int64

	mu                sync.RWMutex
	offset            int64
	lastSnapshotAt    int64
	totalTradesMu     sync.Mutex
	totalTrades       int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New constructs an Engine with the default snapshot cadence, restoring
// prior state from store if a snapshot for pair exists.
func New(
	reader orderreaderv1.Source,
	publisher matchpublisherv1.Publisher,
	store snapshotv1.Store,
	log *logger.Logger,
	pair typesv1.Symbol,
) *Engine {
	return NewWithOptions(reader, publisher, store, log, pair, DefaultOptions())
}

// NewWithOptions is New with an explicit snapshot cadence.
func NewWithOptions(
	reader orderreaderv1.Source,
	publisher matchpublisherv1.Publisher,
	store snapshotv1.Store,
	log *logger.Logger,
	pair typesv1.Symbol,
	opts *Options,
) *Engine {
	book := orderbook.New()
	nextID := func() string { return ulid.Make().String() }

	e := &Engine{
		book:                book,
		dispatcher:          dispatcher.New(book, nextID),
		nextID:              nextID,
		reader:              reader,
		publisher:           publisher,
		store:               store,
		logger:              log,
		pair:                pair,
		snapshotInterval:    opts.SnapshotInterval,
		snapshotOffsetDelta: opts.SnapshotOffsetDelta,
	}

	if err := e.loadSnapshot(); err != nil {
		e.logger.Error(errors.NewTracer("engine: failed to load snapshot").Wrap(err))
	}

	return e
}

// Start launches the order-processing and snapshot-management goroutines.
func (e *Engine) Start(ctx context.Context) {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runOrderProcessor()
	go e.runSnapshotManager()
}

// Stop cancels the engine's goroutines and waits up to ctx's deadline for
// them to exit.
func (e *Engine) Stop(ctx context.Context) error {
	e.cancel()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) runOrderProcessor() {
	defer e.wg.Done()

	if err := e.reader.SetOffset(e.getOffset()); err != nil {
		e.logger.Error(errors.NewTracer("engine: failed to set initial offset").Wrap(err))
	}

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
		}

		msg, err := e.reader.ReadMessage(e.ctx)
		if err != nil {
			if e.ctx.Err() != nil {
				return
			}
			e.logger.Error(errors.NewTracer("engine: read failed").Wrap(err))
			time.Sleep(100 * time.Millisecond)
			continue
		}

		msgCtx := util.WithRequestID(e.ctx, "")

		e.processLine(msgCtx, msg.Line)
		e.setOffset(msg.Offset)

		if err := e.reader.CommitMessages(e.ctx, msg); err != nil {
			e.logger.ErrorContext(msgCtx, errors.NewTracer("engine: commit failed").Wrap(err))
		}
	}
}

// processLine handles one command line under ctx, a per-message context
// stamped with a request id so every log line it produces — including
// those from a resulting Match's trade prints — can be correlated back to
// the same Kafka message.
func (e *Engine) processLine(ctx context.Context, line string) {
	cmd, err := parser.ParseLine(line)
	if err != nil {
		e.logger.WarnContext(ctx, "parse ignored", logger.NewField("line", line), logger.NewField("reason", err.Error()))
		return
	}

	if m, ok := cmd.(requestv1.Match); ok {
		e.processMatch(ctx, m)
		return
	}

	ack := e.dispatcher.Dispatch(cmd)
	e.logger.InfoContext(ctx, "command processed", logger.NewField("ack", ack))
}

func (e *Engine) processMatch(ctx context.Context, m requestv1.Match) {
	events := match.Handle(e.book, m, e.nextID)

	e.totalTradesMu.Lock()
	e.totalTrades += int64(len(events))
	e.totalTradesMu.Unlock()

	for _, ev := range events {
		e.logger.InfoContext(ctx, "trade",
			logger.NewField("symbol", ev.Symbol),
			logger.NewField("price", ev.Price.String()),
			logger.NewField("size", ev.SizeFilled),
			logger.NewField("buy_order_id", ev.BuyOrder.ID),
			logger.NewField("sell_order_id", ev.SellOrder.ID),
		)

		if err := e.publisher.PublishMatchEvent(ctx, ev); err != nil {
			e.logger.ErrorContext(ctx, errors.NewTracer("engine: publish trade failed").Wrap(err))
		}
	}
}

// TotalTrades returns the number of trades executed since startup.
func (e *Engine) TotalTrades() int64 {
	e.totalTradesMu.Lock()
	defer e.totalTradesMu.Unlock()
	return e.totalTrades
}

func (e *Engine) runSnapshotManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			e.maybeSnapshot()
		}
	}
}

func (e *Engine) maybeSnapshot() {
	offset := e.getOffset()
	if offset-e.lastSnapshotAt < e.snapshotOffsetDelta {
		return
	}
	if err := e.createAndStoreSnapshot(); err != nil {
		e.logger.Error(errors.NewTracer("engine: snapshot failed").Wrap(err))
		return
	}
	e.lastSnapshotAt = offset
}

func (e *Engine) createAndStoreSnapshot() error {
	snap := snapshotv1.Snapshot{
		SnapshotID:    ulid.Make().String(),
		MessageOffset: e.getOffset(),
		Sequence:      e.book.NextSequence(),
		Orders:        e.book.Snapshot(),
	}
	return e.store.Save(e.ctx, e.pair, snap)
}

func (e *Engine) loadSnapshot() error {
	snap, ok, err := e.store.Load(context.Background(), e.pair)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := e.book.Restore(snap.Orders, snap.Sequence); err != nil {
		return err
	}
	e.setOffset(snap.MessageOffset)
	return nil
}

func (e *Engine) getOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.offset
}

func (e *Engine) setOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.offset = offset
}

// GetOffset returns the last processed message offset.
func (e *Engine) GetOffset() int64 {
	return e.getOffset()
}

var _ orderbookv1.Book = (*orderbook.Book)(nil)
