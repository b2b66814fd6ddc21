package eventqueue

import "context"

// EventQueue publishes lifecycle events for downstream consumers. Publishing
// is best effort: callers log failures and never fail the caller's request on
// a broker error.
type EventQueue interface {
	Publish(ctx context.Context, queueName, eventType string, payload interface{}) error
}
