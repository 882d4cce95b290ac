// Package dispatcher implements the command dispatcher (C8): it type
// switches over a parsed command, routes it to the matching handler, and
// formats that handler's result into the wire acknowledgement or trade
// print line(s) the spec's external interface defines.
package dispatcher

import (
	"fmt"

	matchv1 "github.com/quaystack/ladderbook/internal/domain/match/v1"
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	rejectv1 "github.com/quaystack/ladderbook/internal/domain/reject/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	"github.com/quaystack/ladderbook/internal/usecase/amend"
	"github.com/quaystack/ladderbook/internal/usecase/cancel"
	"github.com/quaystack/ladderbook/internal/usecase/match"
	"github.com/quaystack/ladderbook/internal/usecase/neworder"
)

// Dispatcher routes parsed commands to their handlers and formats the
// wire response. It holds no state of its own beyond the book and id
// generator it was constructed with.
type Dispatcher struct {
	book   orderbookv1.Book
	nextID match.IDGenerator
}

// New returns a Dispatcher over book. nextID generates the ambient
// correlation id stamped on each trade event.
func New(book orderbookv1.Book, nextID match.IDGenerator) *Dispatcher {
	return &Dispatcher{book: book, nextID: nextID}
}

// Dispatch routes a New, Amend or Cancel command and returns its single
// wire acknowledgement line.
func (d *Dispatcher) Dispatch(cmd any) string {
	switch req := cmd.(type) {
	case requestv1.NewOrder:
		return formatNew(neworder.Handle(d.book, req))
	case requestv1.Amend:
		return formatAmend(amend.Handle(d.book, req))
	case requestv1.Cancel:
		return formatCancel(cancel.Handle(d.book, req))
	default:
		panic(fmt.Sprintf("dispatcher: Dispatch called with unsupported command type %T", cmd))
	}
}

// DispatchMatch runs a Match command and returns one trade-print line per
// execution it produced, in the order they occurred.
func (d *Dispatcher) DispatchMatch(req requestv1.Match) []string {
	events := match.Handle(d.book, req, d.nextID)
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, FormatTrade(e))
	}
	return lines
}

func formatNew(res neworder.Result) string {
	if res.Accepted {
		return fmt.Sprintf("%d - Accept", res.OrderID)
	}
	return fmt.Sprintf("%d - Reject - %s - %s", res.OrderID, res.Code, rejectv1.Message(res.Code, false))
}

func formatCancel(res cancel.Result) string {
	if res.Accepted {
		return fmt.Sprintf("%d - CancelAccept", res.OrderID)
	}
	return fmt.Sprintf("%d - CancelReject - %s - %s", res.OrderID, res.Code, rejectv1.Message(res.Code, false))
}

func formatAmend(res amend.Result) string {
	if res.Accepted {
		return fmt.Sprintf("%d - AmendAccept", res.OrderID)
	}
	return fmt.Sprintf("%d - AmendReject - %s - %s", res.OrderID, res.Code, rejectv1.Message(res.Code, true))
}

// FormatTrade renders a trade event into its wire trade-print line. The
// price field is the raw integer cents value (e.g. 6090 for $60.90), per
// spec.md §4.6 — not the decimal wire form New/Amend/Cancel use. It is
// exported so the Kafka match publisher can print the same line it puts
// on stdout.
func FormatTrade(e matchv1.TradeEvent) string {
	return fmt.Sprintf("%s|%d,%c,%d,%d|%d,%d,%c,%d",
		e.Symbol,
		e.BuyOrder.ID, e.BuyOrder.Type.Char(), e.SizeFilled, int64(e.Price),
		int64(e.Price), e.SizeFilled, e.SellOrder.Type.Char(), e.SellOrder.ID,
	)
}
