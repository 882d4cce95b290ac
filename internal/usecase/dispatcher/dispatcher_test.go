package dispatcher

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
	orderbook "github.com/quaystack/ladderbook/internal/usecase/orderbook"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestDispatch_NewAccept(t *testing.T) {
	d := New(orderbook.New(), sequentialIDs())
	line := d.Dispatch(requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 1000, Quantity: 10,
	})
	assert.Equal(t, "1 - Accept", line)
}

func TestDispatch_NewReject(t *testing.T) {
	d := New(orderbook.New(), sequentialIDs())
	line := d.Dispatch(requestv1.NewOrder{ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit, Side: typesv1.Buy})
	assert.Equal(t, "1 - Reject - 303 - Invalid order details", line)
}

func TestDispatch_CancelNotFound(t *testing.T) {
	d := New(orderbook.New(), sequentialIDs())
	line := d.Dispatch(requestv1.Cancel{ID: 5, Timestamp: 1})
	assert.Equal(t, "5 - CancelReject - 404 - Order does not exist", line)
}

func TestDispatch_AmendRejectSpellingPreserved(t *testing.T) {
	d := New(orderbook.New(), sequentialIDs())
	line := d.Dispatch(requestv1.Amend{ID: 5, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit, Side: typesv1.Buy})
	assert.Equal(t, "5 - AmendReject - 101 - Invalid amendement details", line)
}

func TestDispatchMatch_FormatsTradeLine(t *testing.T) {
	book := orderbook.New()
	d := New(book, sequentialIDs())

	d.Dispatch(requestv1.NewOrder{ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit, Side: typesv1.Buy, Price: 1005, Quantity: 10})
	d.Dispatch(requestv1.NewOrder{ID: 2, Timestamp: 2, Symbol: "IBM", Type: typesv1.Limit, Side: typesv1.Sell, Price: 1000, Quantity: 10})

	lines := d.DispatchMatch(requestv1.Match{Timestamp: 3, Symbol: "IBM"})
	assert.Equal(t, []string{"IBM|1,L,10,1005|1005,10,L,2"}, lines)
}
