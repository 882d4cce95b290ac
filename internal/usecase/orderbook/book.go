// Package orderbook implements the price-time-priority limit order book
// described by orderbookv1.Book: per-symbol, per-side FIFO price levels
// plus a flat index of every live order id, generalized from the
// teacher's single-symbol map-of-Limit design to the multi-symbol,
// integer-cents book this engine needs.
package orderbook

import (
	"fmt"

	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

type symbolBook struct {
	buy  *sideBook
	sell *sideBook
}

func newSymbolBook() *symbolBook {
	return &symbolBook{
		buy:  newSideBook(typesv1.Buy),
		sell: newSideBook(typesv1.Sell),
	}
}

func (b *symbolBook) sideFor(side typesv1.Side) *sideBook {
	if side == typesv1.Buy {
		return b.buy
	}
	return b.sell
}

// Book is the concrete, single-threaded implementation of orderbookv1.Book.
type Book struct {
	symbols map[typesv1.Symbol]*symbolBook
	live    map[typesv1.OrderId]*orderv1.Order
	seq     int64
}

// New returns an empty order book.
func New() *Book {
	return &Book{
		symbols: make(map[typesv1.Symbol]*symbolBook),
		live:    make(map[typesv1.OrderId]*orderv1.Order),
	}
}

var _ orderbookv1.Book = (*Book)(nil)

func (b *Book) symbolBookFor(symbol typesv1.Symbol, create bool) *symbolBook {
	sb, ok := b.symbols[symbol]
	if !ok {
		if !create {
			return nil
		}
		sb = newSymbolBook()
		b.symbols[symbol] = sb
	}
	return sb
}

// NextSequence returns a fresh FIFO tie-break value.
func (b *Book) NextSequence() int64 {
	b.seq++
	return b.seq
}

// Add inserts o at the tail of its price level.
func (b *Book) Add(o *orderv1.Order) bool {
	if _, exists := b.live[o.ID]; exists {
		return false
	}
	sb := b.symbolBookFor(o.Symbol, true)
	lvl := sb.sideFor(o.Side).levelFor(o.Price, true)
	lvl.append(o)
	o.Live = true
	b.live[o.ID] = o
	return true
}

// Cancel removes id from its price level.
func (b *Book) Cancel(id typesv1.OrderId) bool {
	o, ok := b.live[id]
	if !ok {
		return false
	}
	b.removeFromLevel(o)
	o.Live = false
	delete(b.live, id)
	return true
}

func (b *Book) removeFromLevel(o *orderv1.Order) {
	sb := b.symbolBookFor(o.Symbol, false)
	if sb == nil {
		return
	}
	side := sb.sideFor(o.Side)
	lvl, ok := side.levels[o.Price]
	if !ok {
		return
	}
	lvl.removeByID(o.ID)
	side.removeLevelIfEmpty(o.Price)
}

// AmendInPlace updates the order's live quantity without moving it in its
// queue. Quantity (the originally-admitted size) is left untouched;
// Remaining is the single source of truth for how much of the order is
// still live.
func (b *Book) AmendInPlace(id typesv1.OrderId, newQuantity int64) bool {
	o, ok := b.live[id]
	if !ok {
		return false
	}
	o.Remaining = newQuantity
	return true
}

// AmendReinsert removes and re-adds id at the tail of its (possibly new)
// level, forfeiting its FIFO priority. Sequence and Timestamp are
// refreshed exactly as they would be for a brand-new admission (see
// neworder.Handle), since a reinserted order arrives at its level no
// differently than one submitted fresh: without this, a later Match
// could mistake it for the more-senior side of a cross by comparing a
// stale Sequence.
func (b *Book) AmendReinsert(id typesv1.OrderId, newPrice typesv1.Price, newQuantity int64, newTimestamp typesv1.Timestamp) bool {
	o, ok := b.live[id]
	if !ok {
		return false
	}
	b.removeFromLevel(o)
	o.Price = newPrice
	o.Quantity = newQuantity
	o.Remaining = newQuantity
	o.Timestamp = newTimestamp
	o.Sequence = b.NextSequence()
	sb := b.symbolBookFor(o.Symbol, true)
	lvl := sb.sideFor(o.Side).levelFor(o.Price, true)
	lvl.append(o)
	return true
}

// Get returns the live order for id, if any.
func (b *Book) Get(id typesv1.OrderId) (*orderv1.Order, bool) {
	o, ok := b.live[id]
	return o, ok
}

// IsLive reports whether id currently rests on the book.
func (b *Book) IsLive(id typesv1.OrderId) bool {
	_, ok := b.live[id]
	return ok
}

// BestBid returns the highest-priced live buy order for symbol.
func (b *Book) BestBid(symbol typesv1.Symbol) (*orderv1.Order, bool) {
	sb := b.symbolBookFor(symbol, false)
	if sb == nil {
		return nil, false
	}
	lvl := sb.buy.best()
	if lvl == nil {
		return nil, false
	}
	return lvl.front(), true
}

// BestAsk returns the lowest-priced live sell order for symbol.
func (b *Book) BestAsk(symbol typesv1.Symbol) (*orderv1.Order, bool) {
	sb := b.symbolBookFor(symbol, false)
	if sb == nil {
		return nil, false
	}
	lvl := sb.sell.best()
	if lvl == nil {
		return nil, false
	}
	return lvl.front(), true
}

// Symbols returns every symbol with at least one live order.
func (b *Book) Symbols() []typesv1.Symbol {
	out := make([]typesv1.Symbol, 0, len(b.symbols))
	for sym, sb := range b.symbols {
		if len(sb.buy.prices) > 0 || len(sb.sell.prices) > 0 {
			out = append(out, sym)
		}
	}
	return out
}

// Snapshot returns a value copy of every live order. Within each price
// level the orders come in queue order, so Restore rebuilds the same FIFO
// queues.
func (b *Book) Snapshot() []orderv1.Order {
	out := make([]orderv1.Order, 0, len(b.live))
	for _, sb := range b.symbols {
		for _, side := range []*sideBook{sb.buy, sb.sell} {
			for _, price := range side.prices {
				for _, o := range side.levels[price].orders {
					out = append(out, o.Clone())
				}
			}
		}
	}
	return out
}

// Restore rebuilds the book from a prior snapshot. It is only valid on a
// freshly constructed, empty book.
func (b *Book) Restore(orders []orderv1.Order, seq int64) error {
	if len(b.live) != 0 {
		return fmt.Errorf("orderbook: Restore called on a non-empty book")
	}
	for i := range orders {
		o := orders[i]
		if !b.Add(&o) {
			return fmt.Errorf("orderbook: duplicate order id %d in snapshot", o.ID)
		}
	}
	b.seq = seq
	return nil
}

// Dump writes a plain-text rendering of symbol's book: sells from the
// highest price down to the best ask, then buys from the best bid down,
// matching the conventional "sell side above the spread" ladder view.
func (b *Book) Dump(symbol typesv1.Symbol, w orderbookv1.Writer) error {
	sb := b.symbolBookFor(symbol, false)
	if sb == nil {
		_, err := fmt.Fprintf(w, "%s: <empty>\n", symbol)
		return err
	}
	for i := len(sb.sell.prices) - 1; i >= 0; i-- {
		price := sb.sell.prices[i]
		lvl := sb.sell.levels[price]
		if _, err := fmt.Fprintf(w, "%s SELL %s x%d\n", symbol, price, lvl.totalQty()); err != nil {
			return err
		}
	}
	for _, price := range sb.buy.prices {
		lvl := sb.buy.levels[price]
		if _, err := fmt.Fprintf(w, "%s BUY  %s x%d\n", symbol, price, lvl.totalQty()); err != nil {
			return err
		}
	}
	return nil
}
