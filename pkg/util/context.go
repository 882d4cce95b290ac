package util

import "context"

type key string

const contextKey = key("x-request-id")

// WithRequestID returns a context carrying a request id, generating one
// if id is empty. The gateway stamps one per Kafka message so every log
// line for that message can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return ContextWithRequestID(ctx, id)
}

// GetRequestID returns the request id carried by ctx, or "" if none is
// present.
func GetRequestID(ctx context.Context) string {
	return FromContext(ctx)
}
