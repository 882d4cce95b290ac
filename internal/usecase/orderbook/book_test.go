package orderbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/quaystack/ladderbook/internal/domain/order/v1"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

func newOrder(b *Book, id int64, symbol string, side typesv1.Side, price, qty int64) *orderv1.Order {
	return &orderv1.Order{
		ID:        typesv1.OrderId(id),
		Symbol:    typesv1.Symbol(symbol),
		Type:      typesv1.Limit,
		Side:      side,
		Price:     typesv1.Price(price),
		Quantity:  qty,
		Remaining: qty,
		Timestamp: typesv1.Timestamp(id),
		Sequence:  b.NextSequence(),
	}
}

func TestBook_AddRejectsDuplicateID(t *testing.T) {
	b := New()
	o1 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10)
	require.True(t, b.Add(o1))

	o2 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 5)
	assert.False(t, b.Add(o2))
}

func TestBook_BestBidAskOrdering(t *testing.T) {
	b := New()
	b.Add(newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10))
	b.Add(newOrder(b, 2, "IBM", typesv1.Buy, 1005, 10))
	b.Add(newOrder(b, 3, "IBM", typesv1.Sell, 1010, 10))
	b.Add(newOrder(b, 4, "IBM", typesv1.Sell, 1008, 10))

	bid, ok := b.BestBid("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.Price(1005), bid.Price)

	ask, ok := b.BestAsk("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.Price(1008), ask.Price)
}

func TestBook_FIFOWithinLevel(t *testing.T) {
	b := New()
	o1 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10)
	o2 := newOrder(b, 2, "IBM", typesv1.Buy, 1000, 10)
	b.Add(o1)
	b.Add(o2)

	bid, ok := b.BestBid("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.OrderId(1), bid.ID, "earlier order at the same price keeps priority")
}

func TestBook_CancelRemovesFromLevel(t *testing.T) {
	b := New()
	b.Add(newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10))
	require.True(t, b.Cancel(1))
	assert.False(t, b.IsLive(1))

	_, ok := b.BestBid("IBM")
	assert.False(t, ok)

	assert.False(t, b.Cancel(1), "cancelling a non-live id fails")
}

func TestBook_AmendInPlacePreservesPriority(t *testing.T) {
	b := New()
	o1 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10)
	o2 := newOrder(b, 2, "IBM", typesv1.Buy, 1000, 10)
	b.Add(o1)
	b.Add(o2)

	require.True(t, b.AmendInPlace(1, 5))

	bid, ok := b.BestBid("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.OrderId(1), bid.ID, "in-place amend keeps queue position")
	assert.Equal(t, int64(5), bid.Remaining)
}

func TestBook_AmendReinsertForfeitsPriority(t *testing.T) {
	b := New()
	o1 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10)
	o2 := newOrder(b, 2, "IBM", typesv1.Buy, 1000, 10)
	b.Add(o1)
	b.Add(o2)

	require.True(t, b.AmendReinsert(1, 1000, 20, 99))

	bid, ok := b.BestBid("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.OrderId(2), bid.ID, "quantity increase forfeits priority to the other order")
}

func TestBook_AmendReinsertRefreshesSequenceAndTimestamp(t *testing.T) {
	b := New()
	o1 := newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10)
	b.Add(o1)
	staleSeq := o1.Sequence

	require.True(t, b.AmendReinsert(1, 1005, 10, 42))

	o1After, ok := b.Get(1)
	require.True(t, ok)
	assert.Greater(t, o1After.Sequence, staleSeq, "reinsert must assign a fresh sequence")
	assert.Equal(t, typesv1.Timestamp(42), o1After.Timestamp, "reinsert must stamp the amend's timestamp")
}

func TestBook_EmptyLevelIsRemoved(t *testing.T) {
	b := New()
	b.Add(newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10))
	b.Cancel(1)

	sb := b.symbolBookFor("IBM", false)
	require.NotNil(t, sb)
	assert.Empty(t, sb.buy.prices)
	assert.Empty(t, sb.buy.levels)
}

func TestBook_SnapshotRestoreRoundTrip(t *testing.T) {
	b := New()
	b.Add(newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10))
	b.Add(newOrder(b, 2, "IBM", typesv1.Sell, 1010, 5))

	snap := b.Snapshot()
	seq := b.NextSequence()

	restored := New()
	require.NoError(t, restored.Restore(snap, seq))

	assert.True(t, restored.IsLive(1))
	assert.True(t, restored.IsLive(2))

	bid, ok := restored.BestBid("IBM")
	require.True(t, ok)
	assert.Equal(t, typesv1.Price(1000), bid.Price)
}

func TestBook_DumpRendersBothSides(t *testing.T) {
	b := New()
	b.Add(newOrder(b, 1, "IBM", typesv1.Buy, 1000, 10))
	b.Add(newOrder(b, 2, "IBM", typesv1.Sell, 1010, 5))

	var buf strings.Builder
	require.NoError(t, b.Dump("IBM", &buf))

	out := buf.String()
	assert.Contains(t, out, "SELL")
	assert.Contains(t, out, "BUY")
}
