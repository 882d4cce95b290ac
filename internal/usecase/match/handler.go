// Package match implements the Match command handler (C7). A Match
// command names either one symbol (filtered mode) or none (unfiltered
// mode); either way, matching only ever crosses orders on the same
// symbol, since crossing global best-bid/best-ask across symbols would
// print nonsensical trades (see the open-question decision in
// SPEC_FULL.md §12.1). After the crossing loop for a symbol settles, any
// order still live with type IOC is swept from the book: an
// immediate-or-cancel order is never allowed to keep resting once a
// match attempt has run against it.
package match

import (
	matchv1 "github.com/quaystack/ladderbook/internal/domain/match/v1"
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// IDGenerator produces the ambient correlation id stamped on each trade
// event. It is a function type, not a fixed dependency, so the caller can
// pass a closure returning ulid.Make().String() or a fake in tests.
type IDGenerator func() string

// Handle runs the matching algorithm for req and returns every trade it produced.
func Handle(book orderbookv1.Book, req requestv1.Match, nextID IDGenerator) []matchv1.TradeEvent {
	symbols := []typesv1.Symbol{req.Symbol}
	if req.Symbol == "" {
		symbols = book.Symbols()
	}

	var events []matchv1.TradeEvent
	for _, symbol := range symbols {
		events = append(events, matchSymbol(book, symbol, nextID)...)
		sweepIOC(book, symbol)
	}
	return events
}

func matchSymbol(book orderbookv1.Book, symbol typesv1.Symbol, nextID IDGenerator) []matchv1.TradeEvent {
	var events []matchv1.TradeEvent
	for {
		bid, okBid := book.BestBid(symbol)
		ask, okAsk := book.BestAsk(symbol)
		if !okBid || !okAsk || bid.Price < ask.Price {
			break
		}

		qty := bid.Remaining
		if ask.Remaining < qty {
			qty = ask.Remaining
		}

		// The resting order — the one that arrived first at its level —
		// sets the execution price.
		price := bid.Price
		if ask.Sequence < bid.Sequence {
			price = ask.Price
		}

		bid.Remaining -= qty
		ask.Remaining -= qty

		events = append(events, matchv1.TradeEvent{
			TradeID:    nextID(),
			Symbol:     symbol,
			BuyOrder:   bid.Clone(),
			SellOrder:  ask.Clone(),
			Price:      price,
			SizeFilled: qty,
		})

		if bid.IsFilled() {
			book.Cancel(bid.ID)
		}
		if ask.IsFilled() {
			book.Cancel(ask.ID)
		}
	}
	return events
}

func sweepIOC(book orderbookv1.Book, symbol typesv1.Symbol) {
	for _, o := range book.Snapshot() {
		if o.Symbol == symbol && o.Type == typesv1.IOC {
			book.Cancel(o.ID)
		}
	}
}
