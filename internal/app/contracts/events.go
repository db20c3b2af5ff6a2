package contracts

import "context"

// EventPublisher is fire-and-forget: callers log publish failures and move on,
// domain operations never fail because the bus is down.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}
