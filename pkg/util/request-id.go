package util

import (
	"context"

	"github.com/google/uuid"
)

// ContextWithRequestID returns a context with a request id. It generates a
// fresh uuid-v4 if the provided id is empty.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return context.WithValue(ctx, contextKey, generate())
	}
	return context.WithValue(ctx, contextKey, id)
}

// generate returns a uuid-v4 string to use as a request id.
func generate() string {
	return uuid.NewString()
}

// FromContext returns the request id carried by ctx, or "" if none is set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey).(string)
	return id
}
