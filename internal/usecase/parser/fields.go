package parser

import (
	"fmt"
	"strconv"

	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// parseInt64Strict parses a field as a base-10 integer with no leading
// '+', no leading/trailing whitespace and no trailing garbage. It is
// deliberately stricter than strconv.ParseInt's default tolerance so a
// field like "12abc" or "+12" is rejected rather than silently truncated.
func parseInt64Strict(field string) (int64, error) {
	if field == "" {
		return 0, fmt.Errorf("empty field")
	}
	for i, r := range field {
		if r == '-' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric field %q", field)
		}
	}
	return strconv.ParseInt(field, 10, 64)
}

func parseOrderID(field string) (typesv1.OrderId, error) {
	v, err := parseInt64Strict(field)
	if err != nil {
		return 0, err
	}
	return typesv1.OrderId(v), nil
}

func parseTimestamp(field string) (typesv1.Timestamp, error) {
	v, err := parseInt64Strict(field)
	if err != nil {
		return 0, err
	}
	return typesv1.Timestamp(v), nil
}

func parseQuantity(field string) (int64, error) {
	return parseInt64Strict(field)
}

func parseSide(field string) (typesv1.Side, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("side must be a single character, got %q", field)
	}
	side, ok := typesv1.ParseSide(field[0])
	if !ok {
		return 0, fmt.Errorf("unknown side %q", field)
	}
	return side, nil
}

func parseOrderType(field string) (typesv1.OrderType, error) {
	if len(field) != 1 {
		return 0, fmt.Errorf("order type must be a single character, got %q", field)
	}
	t, ok := typesv1.ParseOrderType(field[0])
	if !ok {
		return 0, fmt.Errorf("unknown order type %q", field)
	}
	return t, nil
}

// parsePriceCents requires the exact format d+.dd: at least one leading
// digit, a single decimal point, and exactly two fractional digits. It
// returns the value as integer cents.
func parsePriceCents(field string) (typesv1.Price, error) {
	dot := -1
	for i, r := range field {
		if r == '.' {
			if dot != -1 {
				return 0, fmt.Errorf("malformed price %q", field)
			}
			dot = i
		}
	}
	if dot < 1 || dot != len(field)-3 {
		return 0, fmt.Errorf("price %q must have the form d+.dd", field)
	}

	whole, err := parseInt64Strict(field[:dot])
	if err != nil || whole < 0 {
		return 0, fmt.Errorf("malformed price whole part %q", field)
	}
	frac, err := parseInt64Strict(field[dot+1:])
	if err != nil || frac < 0 || frac > 99 {
		return 0, fmt.Errorf("malformed price fractional part %q", field)
	}

	return typesv1.Price(whole*100 + frac), nil
}
