// Package v1 defines the Order entity that the order book indexes and the
// handlers in internal/usecase mutate.
package v1

import (
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Order is a single resting or in-flight order. The book owns the
// authoritative copy once an order is accepted; handlers receive pointers
// into the book's index rather than private copies, matching how the
// order book keeps a single mutable Order per id.
type Order struct {
	ID        typesv1.OrderId
	Symbol    typesv1.Symbol
	Type      typesv1.OrderType
	Side      typesv1.Side
	Price     typesv1.Price
	Quantity  int64
	Remaining int64
	Timestamp typesv1.Timestamp
	// Sequence records admission order: the New handler takes it from
	// Book.NextSequence and a priority-forfeiting amend refreshes it. The
	// matcher compares it to tell which side of a cross arrived first. It
	// is not part of the wire protocol.
	Sequence int64
	// Live is false once an order has been fully filled, cancelled, or
	// swept as an unfilled IOC remainder. A non-live order is never
	// present in a price level.
	Live bool
}

// IsBuy reports whether the order rests in the bid book.
func (o *Order) IsBuy() bool {
	return o.Side == typesv1.Buy
}

// IsFilled reports whether the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Remaining <= 0
}

// Clone returns a value copy of the order, used when handing a snapshot of
// book state to a caller that must not observe further mutation.
func (o *Order) Clone() Order {
	return *o
}
