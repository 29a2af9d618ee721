package events_test

import (
	"testing"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r events.Recorder
	id := kernel.NewUUID()

	r.Record(events.NewEvent(events.JobRequested, id, nil))
	r.Record(events.NewEvent(events.JobStatusChanged, id, map[string]any{"to": "Cancelled"}))

	recorded := r.DomainEvents()
	require.Len(t, recorded, 2)
	assert.Equal(t, events.JobRequested, recorded[0].Type())
	assert.True(t, id.IsEqual(recorded[1].AggregateID()))
	assert.Equal(t, "Cancelled", recorded[1].Payload()["to"])
	assert.NotNil(t, recorded[0].Payload())
	assert.False(t, recorded[0].OccurredAt().IsZero())

	recorded[0] = nil
	assert.NotNil(t, r.DomainEvents()[0], "returned slice is a copy")

	r.ClearDomainEvents()
	assert.Empty(t, r.DomainEvents())
}
