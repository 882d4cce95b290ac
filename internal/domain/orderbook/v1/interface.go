// Package v1 declares the order book's contract. The book is the single
// source of truth for what is currently resting; handlers never keep
// their own copies of live orders.
package v1

import (
	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Book is the price-time-priority limit order book. Implementations are
// not safe for concurrent use: the core is deliberately single-threaded
// (see the engine for how commands are serialized onto one goroutine).
type Book interface {
	// Add inserts a new live order at the tail of its price level. It
	// returns false without mutating the book if the order id is already
	// live.
	Add(o *orderv1.Order) bool

	// Cancel removes a live order from its price level and marks it
	// not-live. It returns false if the id is not currently live.
	Cancel(id typesv1.OrderId) bool

	// AmendInPlace updates an order's live quantity without changing its
	// position in the FIFO queue. Callers must only use this when the
	// amend preserves priority (quantity-decrease-only at an unchanged
	// price); the book does not itself decide that policy.
	AmendInPlace(id typesv1.OrderId, newQuantity int64) bool

	// AmendReinsert removes the order from its current position and
	// re-adds it at the tail of the (possibly new) price level, forfeiting
	// its queue priority. Timestamp is set to newTimestamp and Sequence to
	// a fresh value, as if the order were newly admitted. It returns false
	// if the id was not live or the re-add failed.
	AmendReinsert(id typesv1.OrderId, newPrice typesv1.Price, newQuantity int64, newTimestamp typesv1.Timestamp) bool

	// Get returns the live order for id, if any.
	Get(id typesv1.OrderId) (*orderv1.Order, bool)

	// IsLive reports whether id currently rests on the book.
	IsLive(id typesv1.OrderId) bool

	// BestBid returns the highest-priced live buy order for symbol, if any.
	BestBid(symbol typesv1.Symbol) (*orderv1.Order, bool)

	// BestAsk returns the lowest-priced live sell order for symbol, if any.
	BestAsk(symbol typesv1.Symbol) (*orderv1.Order, bool)

	// NextSequence returns a fresh, monotonically increasing tie-break
	// value for a newly admitted order.
	NextSequence() int64

	// Symbols returns every symbol with at least one live order, in no
	// particular order.
	Symbols() []typesv1.Symbol

	// Snapshot returns a value copy of every live order, for persistence.
	Snapshot() []orderv1.Order

	// Restore replaces the book's contents with the given orders. It is
	// only valid to call on an empty, freshly constructed book.
	Restore(orders []orderv1.Order, seq int64) error

	// Dump writes a plain-text, human-readable rendering of both sides of
	// symbol's book. Its format is a diagnostic convenience, not part of
	// the wire protocol.
	Dump(symbol typesv1.Symbol, w Writer) error
}

// Writer is the minimal io.Writer surface Dump needs, kept local so this
// package does not need to import io just for one method signature.
type Writer interface {
	Write(p []byte) (n int, err error)
}
