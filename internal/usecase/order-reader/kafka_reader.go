// Package orderreader implements order-reader-v1.Source over Kafka,
// grounded on the teacher's matching-service/internal/usecase/order-reader/consumer.go:
// each Kafka message carries one command line, offsets are tracked and
// committed explicitly rather than via the consumer group's auto-commit.
package orderreader

import (
	"context"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	orderreaderv1 "github.com/quaystack/ladderbook/internal/domain/order-reader/v1"
	"github.com/quaystack/ladderbook/pkg/errors"
	"github.com/quaystack/ladderbook/pkg/logger"
)

// KafkaReader reads command lines from a Kafka topic.
type KafkaReader struct {
	reader *kafka.Reader
	logger *logger.Logger
}

var _ orderreaderv1.Source = (*KafkaReader)(nil)

// NewKafkaReader returns a Source consuming topic on brokers as groupID.
func NewKafkaReader(brokers []string, topic, groupID string, log *logger.Logger) *KafkaReader {
	return &KafkaReader{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		logger: log,
	}
}

// ReadMessage blocks until the next command line is available.
func (r *KafkaReader) ReadMessage(ctx context.Context) (orderreaderv1.Message, error) {
	msg, err := r.reader.FetchMessage(ctx)
	if err != nil {
		r.logger.Error(errors.NewTracer("order-reader: fetch failed").Wrap(err))
		return orderreaderv1.Message{}, errors.NewErrorDetails(err.Error(), string(errors.KafkaReadError), "read")
	}

	return orderreaderv1.Message{
		Line:   string(msg.Value),
		Offset: msg.Offset,
		Raw:    msg,
	}, nil
}

// SetOffset seeks the underlying reader to offset. kafka-go does not
// allow this on a reader with a GroupID: then it returns an error and the
// reader keeps the consumer group's committed offset.
func (r *KafkaReader) SetOffset(offset int64) error {
	if err := r.reader.SetOffset(offset); err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.KafkaReadError), "set_offset")
	}
	return nil
}

// CommitMessages commits the given messages' offsets.
func (r *KafkaReader) CommitMessages(ctx context.Context, msgs ...orderreaderv1.Message) error {
	kafkaMsgs := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km, ok := m.Raw.(kafka.Message)
		if !ok {
			return fmt.Errorf("order-reader: message %d has no underlying kafka.Message to commit", m.Offset)
		}
		kafkaMsgs = append(kafkaMsgs, km)
	}

	if err := r.reader.CommitMessages(ctx, kafkaMsgs...); err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.KafkaCommitError), "commit")
	}
	return nil
}

// Close closes the underlying Kafka reader.
func (r *KafkaReader) Close() error {
	return r.reader.Close()
}
