package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher delivers mutations to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, m Mutation) error
}

// MessageSender is satisfied by aws.Publisher.
type MessageSender interface {
	SendMessage(ctx context.Context, body string, attributes map[string]string) error
}

// QueuePublisher sends mutations as JSON messages.
type QueuePublisher struct {
	sender MessageSender
}

func NewQueuePublisher(sender MessageSender) *QueuePublisher {
	return &QueuePublisher{sender: sender}
}

func (p *QueuePublisher) Publish(ctx context.Context, m Mutation) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mutation: %w", err)
	}
	attrs := map[string]string{
		"event_id": m.EventID,
		"tag":      m.Tag,
		"action":   m.Action,
	}
	if m.CorrelationID != "" {
		attrs["correlation_id"] = m.CorrelationID
	}
	if err := p.sender.SendMessage(ctx, string(body), attrs); err != nil {
		return fmt.Errorf("publish %s %s: %w", m.Tag, m.Action, err)
	}
	return nil
}

// Nop drops every mutation. Used when no queue is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Mutation) error { return nil }
