package attendance

import "context"

// EventLog is the append-only row store holding attendance events.
type EventLog interface {
	// Append writes one event. Exactly one row is appended per call;
	// a failure must be surfaced to the caller.
	Append(ctx context.Context, event Event) error

	// ListEvents returns all events in insertion order.
	ListEvents(ctx context.Context) ([]Event, error)
}
