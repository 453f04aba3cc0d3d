package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KoIa247/SeatingApp/internal/imports"
)

type capturingProducer struct {
	event *ImportEvent
}

func (p *capturingProducer) PublishImportEvent(_ context.Context, event *ImportEvent) error {
	p.event = event
	return nil
}

func (p *capturingProducer) Close() error { return nil }

func TestImportCompletedBuildsAuditEvent(t *testing.T) {
	producer := &capturingProducer{}
	adapter := NewImportPublisherAdapter(producer)

	result := imports.Result{Added: 3, Skipped: 1, Failed: 2}
	instances := []string{"2024-02-14|1:00 PM", "2024-02-14|3:00 PM"}

	require.NoError(t, adapter.ImportCompleted(context.Background(), result, instances))

	require.NotNil(t, producer.event)
	assert.Equal(t, EventTypeImportCompleted, producer.event.Type)
	assert.Equal(t, 3, producer.event.Added)
	assert.Equal(t, 1, producer.event.Skipped)
	assert.Equal(t, 2, producer.event.Failed)
	assert.Equal(t, "Added: 3, Skipped: 1, Failed/Full: 2", producer.event.Summary)
	assert.Equal(t, instances, producer.event.Instances)
	assert.Equal(t, "2024-02-14|1:00 PM", producer.event.PartitionKey())
}
