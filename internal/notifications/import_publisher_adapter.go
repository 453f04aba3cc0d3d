package notifications

import (
	"context"

	"github.com/KoIa247/SeatingApp/internal/imports"
)

// ImportPublisherAdapter bridges the import service to the Kafka audit
// producer without the imports package depending on sarama.
type ImportPublisherAdapter struct {
	producer AuditProducer
}

func NewImportPublisherAdapter(producer AuditProducer) *ImportPublisherAdapter {
	return &ImportPublisherAdapter{producer: producer}
}

func (a *ImportPublisherAdapter) ImportCompleted(ctx context.Context, result imports.Result, instances []string) error {
	event := &ImportEvent{
		Type:      EventTypeImportCompleted,
		Added:     result.Added,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
		Summary:   result.Summary(),
		Instances: instances,
	}
	return a.producer.PublishImportEvent(ctx, event)
}
