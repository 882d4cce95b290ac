package orderbook

import (
	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// level is one price level's FIFO queue. Orders are kept in admission
// order; index 0 is always the order with the oldest priority at this
// price, mirroring the teacher's Limit.Orders slice.
type level struct {
	orders []*orderv1.Order
}

func newLevel() *level {
	return &level{orders: make([]*orderv1.Order, 0, 4)}
}

func (l *level) append(o *orderv1.Order) {
	l.orders = append(l.orders, o)
}

func (l *level) removeByID(id typesv1.OrderId) (int, bool) {
	for i, o := range l.orders {
		if o.ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return i, true
		}
	}
	return -1, false
}

func (l *level) isEmpty() bool {
	return len(l.orders) == 0
}

func (l *level) totalQty() int64 {
	var total int64
	for _, o := range l.orders {
		total += o.Remaining
	}
	return total
}

func (l *level) front() *orderv1.Order {
	if l.isEmpty() {
		return nil
	}
	return l.orders[0]
}

// popFilled drops any fully-filled order sitting at the front of the
// queue, so the next front() call always sees remaining liquidity.
func (l *level) popFilled() {
	i := 0
	for i < len(l.orders) && l.orders[i].IsFilled() {
		i++
	}
	if i > 0 {
		l.orders = l.orders[i:]
	}
}
