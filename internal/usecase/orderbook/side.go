package orderbook

import (
	"sort"

	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
)

// sideBook holds one side (buy or sell) of one symbol's book: a map of
// price to level plus a slice of prices kept sorted with the best price
// first, so BestBid/BestAsk are O(1) and inserting/removing a level is a
// single sorted-slice splice.
type sideBook struct {
	side   typesv1.Side
	levels map[typesv1.Price]*level
	// prices is sorted best-first: descending for Buy, ascending for Sell.
	prices []typesv1.Price
}

func newSideBook(side typesv1.Side) *sideBook {
	return &sideBook{
		side:   side,
		levels: make(map[typesv1.Price]*level),
	}
}

// better reports whether price a ranks ahead of price b on this side.
func (s *sideBook) better(a, b typesv1.Price) bool {
	if s.side == typesv1.Buy {
		return a > b
	}
	return a < b
}

func (s *sideBook) levelFor(price typesv1.Price, create bool) *level {
	if lvl, ok := s.levels[price]; ok {
		return lvl
	}
	if !create {
		return nil
	}
	lvl := newLevel()
	s.levels[price] = lvl

	i := sort.Search(len(s.prices), func(i int) bool {
		return !s.better(s.prices[i], price)
	})
	s.prices = append(s.prices, 0)
	copy(s.prices[i+1:], s.prices[i:])
	s.prices[i] = price
	return lvl
}

func (s *sideBook) removeLevelIfEmpty(price typesv1.Price) {
	lvl, ok := s.levels[price]
	if !ok || !lvl.isEmpty() {
		return
	}
	delete(s.levels, price)
	for i, p := range s.prices {
		if p == price {
			s.prices = append(s.prices[:i], s.prices[i+1:]...)
			break
		}
	}
}

func (s *sideBook) best() *level {
	for len(s.prices) > 0 {
		lvl := s.levels[s.prices[0]]
		lvl.popFilled()
		if !lvl.isEmpty() {
			return lvl
		}
		s.removeLevelIfEmpty(s.prices[0])
	}
	return nil
}
