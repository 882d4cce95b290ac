package neworder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbook "github.com/quaystack/ladderbook/internal/usecase/orderbook"

	rejectv1 "github.com/quaystack/ladderbook/internal/domain/reject/v1"
	requestv1 "github.com/quaystack/ladderbook/internal/domain/request/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

func TestHandle_AcceptsValidLimitOrder(t *testing.T) {
	book := orderbook.New()
	res := Handle(book, requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 1000, Quantity: 10,
	})

	require.True(t, res.Accepted)
	assert.True(t, book.IsLive(1))
}

func TestHandle_RejectsZeroQuantity(t *testing.T) {
	book := orderbook.New()
	res := Handle(book, requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 1000, Quantity: 0,
	})

	assert.False(t, res.Accepted)
	assert.Equal(t, rejectv1.InvalidOrderDetails, res.Code)
}

func TestHandle_RejectsLimitOrderWithoutPrice(t *testing.T) {
	book := orderbook.New()
	res := Handle(book, requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 0, Quantity: 10,
	})

	assert.False(t, res.Accepted)
}

func TestHandle_AcceptsMarketOrderWithZeroPrice(t *testing.T) {
	book := orderbook.New()
	res := Handle(book, requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Market,
		Side: typesv1.Buy, Price: 0, Quantity: 10,
	})

	assert.True(t, res.Accepted)
}

func TestHandle_RejectsNonAlphaSymbol(t *testing.T) {
	book := orderbook.New()
	res := Handle(book, requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IB9", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 1000, Quantity: 10,
	})

	assert.False(t, res.Accepted)
	assert.Equal(t, rejectv1.InvalidOrderDetails, res.Code)
	assert.False(t, book.IsLive(1))
}

func TestHandle_RejectsDuplicateID(t *testing.T) {
	book := orderbook.New()
	req := requestv1.NewOrder{
		ID: 1, Timestamp: 1, Symbol: "IBM", Type: typesv1.Limit,
		Side: typesv1.Buy, Price: 1000, Quantity: 10,
	}
	require.True(t, Handle(book, req).Accepted)

	res := Handle(book, req)
	assert.False(t, res.Accepted)
	assert.Equal(t, rejectv1.InvalidOrderDetails, res.Code)
}
