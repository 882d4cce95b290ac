// Package amend implements the Amend command handler (C5), including the
// priority rule that decides whether an amend keeps or forfeits its
// position in the FIFO queue: a quantity-decrease at an unchanged price
// updates in place; anything else (a price change, or a quantity
// increase) re-admits the order at the tail of its (possibly new) level.
package amend

import (
	orderbookv1 "github.com/quaystack/ladderbook/internal/domain/orderbook/v1"
	rejectv1 "github.com/quaystack/ladderbook/internal/domain/reject/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// Result is the outcome of handling an Amend command.
type Result struct {
	OrderID  typesv1.OrderId
	Accepted bool
	Code     rejectv1.Code
}

// Handle validates req, checks the order's identity fields still match,
// and applies whichever of the two amend paths preserves the rule above.
func Handle(book orderbookv1.Book, req requestv1.Amend) Result {
	if !structurallyValid(req) {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.InvalidCancelOrAmendDetails}
	}

	existing, ok := book.Get(req.ID)
	if !ok {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.OrderNotFound}
	}

	if existing.Symbol != req.Symbol || existing.Type != req.Type || existing.Side != req.Side {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.InvalidCancelOrAmendDetails}
	}

	newPrice := existing.Price
	if req.NewPrice != nil {
		newPrice = *req.NewPrice
	}
	newQuantity := existing.Remaining
	if req.NewQuantity != nil {
		newQuantity = *req.NewQuantity
	}

	priceChanged := newPrice != existing.Price
	quantityDecreased := newQuantity < existing.Remaining
	onlyQuantityDownNoPriceChange := !priceChanged && quantityDecreased

	if onlyQuantityDownNoPriceChange {
		book.AmendInPlace(req.ID, newQuantity)
		return Result{OrderID: req.ID, Accepted: true}
	}

	if !book.AmendReinsert(req.ID, newPrice, newQuantity, req.Timestamp) {
		return Result{OrderID: req.ID, Accepted: false, Code: rejectv1.InvalidCancelOrAmendDetails}
	}
	return Result{OrderID: req.ID, Accepted: true}
}

func structurallyValid(req requestv1.Amend) bool {
	if req.ID <= 0 || req.Timestamp < 0 {
		return false
	}
	if !isAlphaSymbol(req.Symbol) {
		return false
	}
	if req.NewPrice == nil && req.NewQuantity == nil {
		return false
	}
	if req.NewQuantity != nil && *req.NewQuantity <= 0 {
		return false
	}
	if req.NewPrice != nil {
		if req.Type == typesv1.Market {
			if *req.NewPrice != 0 {
				return false
			}
		} else if *req.NewPrice <= 0 {
			return false
		}
	}
	return true
}

// isAlphaSymbol reports whether s is non-empty and every character is an
// ASCII letter, per spec.md §4.5.
func isAlphaSymbol(s typesv1.Symbol) bool {
	if s == "" {
		return false
	}
	for _, ch := range []byte(s) {
		if !((ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')) {
			return false
		}
	}
	return true
}
