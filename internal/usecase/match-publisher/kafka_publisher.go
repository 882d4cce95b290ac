// Package matchpublisher implements match-publisher-v1.Publisher over
// Kafka, grounded on the teacher's matching-service/internal/usecase/match-publisher/publisher.go.
package matchpublisher

import (
	"context"

	kafka "github.com/segmentio/kafka-go"

	matchv1 "github.com/quaystack/ladderbook/internal/domain/match/v1"
	matchpublisherv1 "github.com/quaystack/ladderbook/internal/domain/match-publisher/v1"
	"github.com/quaystack/ladderbook/internal/usecase/dispatcher"
	"github.com/quaystack/ladderbook/pkg/errors"
)

// KafkaPublisher writes trade prints to a Kafka topic, one message per trade.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ matchpublisherv1.Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher returns a Publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishMatchEvent writes event's trade-print line as a Kafka message.
func (p *KafkaPublisher) PublishMatchEvent(ctx context.Context, event matchv1.TradeEvent) error {
	line := dispatcher.FormatTrade(event)
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Symbol),
		Value: []byte(line),
	})
	if err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.KafkaWriteError), "publish")
	}
	return nil
}

// Close closes the underlying Kafka writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
