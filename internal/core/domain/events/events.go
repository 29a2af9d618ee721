// Package events defines the domain events raised by eshift aggregates and the
// Recorder aggregates embed to collect them until the unit of work commits.
package events

import (
	"time"

	"eshift/internal/core/domain/model/kernel"
)

const (
	JobRequested      = "job.requested"
	JobStatusChanged  = "job.status_changed"
	JobDetailsUpdated = "job.details_updated"

	LoadTransportUnitAssigned   = "load.transport_unit_assigned"
	LoadTransportUnitUnassigned = "load.transport_unit_unassigned"
	LoadStatusChanged           = "load.status_changed"

	ProductValidationToggled = "product.validation_toggled"
)

// Event is something that happened to an aggregate.
type Event interface {
	Type() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
	Payload() map[string]any
}

// Source is implemented by aggregates that record events.
type Source interface {
	DomainEvents() []Event
	ClearDomainEvents()
}

type BaseEvent struct {
	EventType   string
	Aggregate   kernel.UUID
	Time        time.Time
	EventFields map[string]any
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) AggregateID() kernel.UUID {
	return e.Aggregate
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Time
}

func (e BaseEvent) Payload() map[string]any {
	return e.EventFields
}

// NewEvent stamps an event with the current UTC time.
func NewEvent(eventType string, aggregateID kernel.UUID, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return BaseEvent{
		EventType:   eventType,
		Aggregate:   aggregateID,
		Time:        time.Now().UTC(),
		EventFields: payload,
	}
}

// Recorder collects events in the order they were raised. The zero value is ready to use.
type Recorder struct {
	events []Event
}

func (r *Recorder) Record(e Event) {
	r.events = append(r.events, e)
}

// DomainEvents returns a copy of the recorded events.
func (r *Recorder) DomainEvents() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) ClearDomainEvents() {
	r.events = nil
}
