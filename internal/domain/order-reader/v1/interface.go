// Package v1 declares the source the engine pulls command lines from
// when running as a streaming service rather than a batch CLI.
package v1

import "context"

// Message is one command line plus enough transport metadata to commit
// it once processed.
type Message struct {
	Line   string
	Offset int64
	// Raw is the transport-specific message, kept opaque so CommitMessages
	// can hand it straight back to the underlying client.
	Raw any
}

// Source reads command lines from a stream, one message at a time.
type Source interface {
	ReadMessage(ctx context.Context) (Message, error)
	SetOffset(offset int64) error
	CommitMessages(ctx context.Context, msgs ...Message) error
	Close() error
}
