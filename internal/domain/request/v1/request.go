// Package v1 defines the parsed command payloads the dispatcher routes to
// the New/Amend/Cancel/Match handlers. These are the parser's output and
// the handlers' input; they carry no wire-format concerns of their own.
package v1

import typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"

// NewOrder is the parsed payload of an "N" command.
type NewOrder struct {
	ID        typesv1.OrderId
	Timestamp typesv1.Timestamp
	Symbol    typesv1.Symbol
	Type      typesv1.OrderType
	Side      typesv1.Side
	Price     typesv1.Price
	Quantity  int64
}

// Amend is the parsed payload of an "A" command. NewPrice and NewQuantity
// are pointers so a field can be left unspecified (partial amend); a nil
// pointer means "leave this field unchanged".
type Amend struct {
	ID          typesv1.OrderId
	Timestamp   typesv1.Timestamp
	Symbol      typesv1.Symbol
	Type        typesv1.OrderType
	Side        typesv1.Side
	NewPrice    *typesv1.Price
	NewQuantity *int64
}

// Cancel is the parsed payload of an "X" command.
type Cancel struct {
	ID        typesv1.OrderId
	Timestamp typesv1.Timestamp
}

// Match is the parsed payload of an "M" command. Symbol is empty when the
// command did not name one, which triggers the fold-over-live-symbols
// behavior described in the match handler.
type Match struct {
	Timestamp typesv1.Timestamp
	Symbol    typesv1.Symbol
}
