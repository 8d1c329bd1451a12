package audit

import (
	"time"

	"github.com/imrishuroy/go-ecom-admin/internal/events"
)

// Entry is the item stored in the audit DynamoDB table.
type Entry struct {
	EventID       string    `dynamodbav:"event_id" json:"eventId"` // PK
	ResourceID    string    `dynamodbav:"resource_id" json:"resourceId"`
	Tag           string    `dynamodbav:"tag" json:"tag"`
	Action        string    `dynamodbav:"action" json:"action"`
	Actor         string    `dynamodbav:"actor,omitempty" json:"actor,omitempty"`
	CorrelationID string    `dynamodbav:"correlation_id,omitempty" json:"correlationId,omitempty"`
	OccurredAt    time.Time `dynamodbav:"occurred_at" json:"occurredAt"`
	RecordedAt    time.Time `dynamodbav:"recorded_at" json:"recordedAt"`
}

// noResource groups mutations that carry no resource id (e.g. creates
// whose id the remote API did not echo).
const noResource = "-"

// FromMutation converts a mutation event into an audit entry.
func FromMutation(m events.Mutation) Entry {
	rid := m.ResourceID
	if rid == "" {
		rid = noResource
	}
	return Entry{
		EventID:       m.EventID,
		ResourceID:    rid,
		Tag:           m.Tag,
		Action:        m.Action,
		Actor:         m.Actor,
		CorrelationID: m.CorrelationID,
		OccurredAt:    m.OccurredAt,
	}
}
