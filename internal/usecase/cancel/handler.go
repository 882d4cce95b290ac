// Package cancel implements the Cancel command handler (C6).
package cancel

import (
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	rejectv1 "github.com/quaystack/ladderbook/internal/domain/reject/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Result is the outcome of handling a Cancel command.
type Result struct {
	OrderID  typesv1.OrderId
	Accepted bool
	Code     rejectv1.Code
}

// Handle validates req, checks that the order is live, and removes it.
func Handle(book orderbookv1.Book, req requestv1.Cancel) Result {
	if req.ID <= 0 || req.Timestamp < 0 {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.InvalidCancelOrAmendDetails}
	}
	if !book.IsLive(req.ID) {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.OrderNotFound}
	}

	book.Cancel(req.ID)
	return Result{OrderID: req.ID, Accepted: true}
}
