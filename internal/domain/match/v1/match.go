// Package v1 defines the trade event a successful match produces.
package v1

import (
	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// TradeEvent records one execution between a resting buy and a resting
// sell order. Price is the execution price chosen by the matcher (the
// resting order's price, see the match handler); SizeFilled is the
// quantity crossed, which may be less than either order's original
// quantity on a partial fill.
type TradeEvent struct {
	// TradeID is an ambient correlation id, not part of the wire trade
	// print, generated fresh per event by the matcher's caller.
	TradeID    string
	Symbol     typesv1.Symbol
	BuyOrder   orderv1.Order
	SellOrder  orderv1.Order
	Price      typesv1.Price
	SizeFilled int64
}

// BuyFilled reports whether the buy side of the trade has no remaining quantity.
func (m TradeEvent) BuyFilled() bool {
	return m.BuyOrder.Remaining <= 0
}

// SellFilled reports whether the sell side of the trade has no remaining quantity.
func (m TradeEvent) SellFilled() bool {
	return m.SellOrder.Remaining <= 0
}
