// Package neworder implements the New command handler (C4): validate an
// incoming order and, if accepted, admit it to the book at the tail of
// its price level.
package neworder

import (
	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	rejectv1 "github.com/quaystack/ladderbook/internal/domain/reject/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Result is the outcome of handling a New command.
type Result struct {
	OrderID  typesv1.OrderId
	Accepted bool
	Code     rejectv1.Code
}

// Handle validates req and, if valid, admits it to book.
func Handle(book orderbookv1.Book, req requestv1.NewOrder) Result {
	if !valid(req) || book.IsLive(req.ID) {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.InvalidOrderDetails}
	}

	o := &orderv1.Order{
		ID:        req.ID,
		Symbol:    req.Symbol,
		Type:      req.Type,
		Side:      req.Side,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Remaining: req.Quantity,
		Timestamp: req.Timestamp,
		Sequence:  book.NextSequence(),
	}
	book.Add(o)

	return Result{OrderID: req.ID, Accepted: true}
}

func valid(req requestv1.NewOrder) bool {
	if req.ID <= 0 || req.Timestamp < 0 || req.Quantity <= 0 {
		return false
	}
	if !isAlphaSymbol(req.Symbol) {
		return false
	}
	if req.Type != typesv1.Market && req.Price <= 0 {
		return false
	}
	if req.Type == typesv1.Market && req.Price != 0 {
		return false
	}
	return true
}

// isAlphaSymbol reports whether s is non-empty and every character is an
// ASCII letter, per spec.md §4.3.
func isAlphaSymbol(s typesv1.Symbol) bool {
	if s == "" {
		return false
	}
	for _, ch := range []byte(s) {
		if !isASCIILetter(ch) {
			return false
		}
	}
	return true
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
