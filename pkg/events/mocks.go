package events

import "context"

// NoOpPublisher is a publisher that drops every event. Useful for tests and
// deployments without an activity-log queue.
type NoOpPublisher struct{}

// PublishLedgerEvent does nothing.
func (p *NoOpPublisher) PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error {
	return nil
}

// RecordingPublisher captures published events for assertions in tests.
type RecordingPublisher struct {
	Events []LedgerEvent
}

// PublishLedgerEvent appends the event to the recorded list.
func (p *RecordingPublisher) PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error {
	p.Events = append(p.Events, *event)
	return nil
}
