// Package correlation carries a per-request ID across HTTP, logs and Kafka.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// Header names the ID on inbound requests and outbound hops, HTTP and Kafka
// alike.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// Ensure stores id on the context, minting a fresh UUID when id is empty.
// The second return is the ID actually stored.
func Ensure(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, ctxKey{}, id), id
}

// FromContext returns the stored ID, or "" when the context carries none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
