package parser

import (
	"fmt"

	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

func symbolOf(field string) typesv1.Symbol {
	return typesv1.Symbol(field)
}

// ParseLine tokenizes and parses one command line, returning one of
// requestv1.{NewOrder,Amend,Cancel,Match}. A non-nil error means the line
// must be skipped without touching the book; the caller decides how to
// surface that (e.g. a stderr diagnostic), the parser itself never logs.
func ParseLine(line string) (any, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, fmt.Errorf("empty command line")
	}

	switch tokens[0] {
	case "N":
		return parseNew(tokens)
	case "A":
		return parseAmend(tokens)
	case "X":
		return parseCancel(tokens)
	case "M":
		return parseMatch(tokens)
	default:
		return nil, fmt.Errorf("unknown command letter %q", tokens[0])
	}
}

func parseNew(tokens []string) (requestv1.NewOrder, error) {
	var req requestv1.NewOrder
	if len(tokens) != 8 {
		return req, fmt.Errorf("N command needs 8 fields, got %d", len(tokens))
	}

	id, err := parseOrderID(tokens[1])
	if err != nil {
		return req, err
	}
	ts, err := parseTimestamp(tokens[2])
	if err != nil {
		return req, err
	}
	if tokens[3] == "" {
		return req, fmt.Errorf("empty symbol")
	}
	orderType, err := parseOrderType(tokens[4])
	if err != nil {
		return req, err
	}
	side, err := parseSide(tokens[5])
	if err != nil {
		return req, err
	}
	price, err := parsePriceCents(tokens[6])
	if err != nil {
		return req, err
	}
	qty, err := parseQuantity(tokens[7])
	if err != nil {
		return req, err
	}

	return requestv1.NewOrder{
		ID: id, Timestamp: ts, Symbol: symbolOf(tokens[3]),
		Type: orderType, Side: side, Price: price, Quantity: qty,
	}, nil
}

func parseAmend(tokens []string) (requestv1.Amend, error) {
	var req requestv1.Amend
	if len(tokens) != 8 {
		return req, fmt.Errorf("A command needs 8 fields, got %d", len(tokens))
	}

	id, err := parseOrderID(tokens[1])
	if err != nil {
		return req, err
	}
	ts, err := parseTimestamp(tokens[2])
	if err != nil {
		return req, err
	}
	if tokens[3] == "" {
		return req, fmt.Errorf("empty symbol")
	}
	orderType, err := parseOrderType(tokens[4])
	if err != nil {
		return req, err
	}
	side, err := parseSide(tokens[5])
	if err != nil {
		return req, err
	}

	var newPrice *typesv1.Price
	if tokens[6] != "" {
		p, err := parsePriceCents(tokens[6])
		if err != nil {
			return req, err
		}
		newPrice = &p
	}
	var newQty *int64
	if tokens[7] != "" {
		q, err := parseQuantity(tokens[7])
		if err != nil {
			return req, err
		}
		newQty = &q
	}

	req = requestv1.Amend{
		ID: id, Timestamp: ts, Symbol: symbolOf(tokens[3]),
		Type: orderType, Side: side,
		NewPrice: newPrice, NewQuantity: newQty,
	}
	return req, nil
}

func parseCancel(tokens []string) (requestv1.Cancel, error) {
	var req requestv1.Cancel
	if len(tokens) != 3 {
		return req, fmt.Errorf("X command needs 3 fields, got %d", len(tokens))
	}

	id, err := parseOrderID(tokens[1])
	if err != nil {
		return req, err
	}
	ts, err := parseTimestamp(tokens[2])
	if err != nil {
		return req, err
	}

	return requestv1.Cancel{ID: id, Timestamp: ts}, nil
}

func parseMatch(tokens []string) (requestv1.Match, error) {
	var req requestv1.Match
	if len(tokens) != 2 && len(tokens) != 3 {
		return req, fmt.Errorf("M command needs 2 or 3 fields, got %d", len(tokens))
	}

	ts, err := parseTimestamp(tokens[1])
	if err != nil {
		return req, err
	}

	req = requestv1.Match{Timestamp: ts}
	if len(tokens) == 3 {
		if tokens[2] == "" {
			return req, fmt.Errorf("empty symbol")
		}
		req.Symbol = symbolOf(tokens[2])
	}
	return req, nil
}
