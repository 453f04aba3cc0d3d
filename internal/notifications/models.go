package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventTypeImportCompleted = "import.completed"

// ImportEvent is the audit record published after each batch import.
type ImportEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Added     int       `json:"added"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Summary   string    `json:"summary"`
	Instances []string  `json:"instances"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *ImportEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ImportEventFromJSON(data []byte) (*ImportEvent, error) {
	var event ImportEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PartitionKey routes events for the same show instances to the same
// partition so the audit log stays ordered per instance.
func (e *ImportEvent) PartitionKey() string {
	if len(e.Instances) > 0 {
		return e.Instances[0]
	}
	return e.ID.String()
}
