// Package v1 declares the sink the engine publishes trade prints to when
// running as a streaming service.
package v1

import (
	"context"

	matchv1 "github.com/quaystack/ladderbook/internal/domain/match/v1"
)

// Publisher publishes one trade event at a time. Implementations decide
// the wire encoding; the Kafka implementation publishes the same
// plain-text trade-print line the batch CLI writes to stdout.
type Publisher interface {
	PublishMatchEvent(ctx context.Context, event matchv1.TradeEvent) error
}
