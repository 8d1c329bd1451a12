// Package events publishes a record of every successful admin mutation.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Mutation describes one successful write against the remote API.
type Mutation struct {
	EventID       string    `json:"eventId"`
	Tag           string    `json:"tag"`    // invalidation tag, e.g. "Product"
	Action        string    `json:"action"` // create, update, delete, status, ...
	ResourceID    string    `json:"resourceId,omitempty"`
	Actor         string    `json:"actor,omitempty"`
	CorrelationID string    `json:"correlationId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewMutation stamps a new event id and the current time.
func NewMutation(tag, action, resourceID, actor, correlationID string) Mutation {
	return Mutation{
		EventID:       uuid.NewString(),
		Tag:           tag,
		Action:        action,
		ResourceID:    resourceID,
		Actor:         actor,
		CorrelationID: correlationID,
		OccurredAt:    time.Now().UTC(),
	}
}
