package ports

import (
	"context"

	"eshift/internal/core/domain/events"
)

// EventPublisher delivers domain events after the transaction that raised them committed.
type EventPublisher interface {
	Publish(ctx context.Context, events []events.Event) error
}
