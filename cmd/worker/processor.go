package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	lambdaevents "github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/audit"
	"github.com/imrishuroy/go-ecom-admin/internal/events"
)

// AuditRecorder stores audit entries once per event id.
type AuditRecorder interface {
	Record(ctx context.Context, e audit.Entry) error
}

// Processor turns mutation events from SQS into audit entries.
type Processor struct {
	audit AuditRecorder
	log   *zap.Logger
	now   func() time.Time
}

// NewProcessor creates a worker processor writing to store.
func NewProcessor(store AuditRecorder, log *zap.Logger) *Processor {
	return &Processor{audit: store, log: log, now: time.Now}
}

// Handle receives an SQS batch and records each message. The first failure
// is returned so Lambda redelivers the batch; entries already recorded are
// skipped on redelivery.
func (p *Processor) Handle(ctx context.Context, ev lambdaevents.SQSEvent) error {
	p.log.Debug("received batch", zap.Int("records", len(ev.Records)))
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.log.Error("worker error", zap.String("message_id", rec.MessageId), zap.Error(err))
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec lambdaevents.SQSMessage) error {
	var m events.Mutation
	if err := json.Unmarshal([]byte(rec.Body), &m); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if m.EventID == "" || m.Tag == "" || m.Action == "" {
		return fmt.Errorf("invalid mutation %q: event id, tag and action are required", rec.MessageId)
	}

	entry := audit.FromMutation(m)
	entry.RecordedAt = p.now().UTC()

	err := p.audit.Record(ctx, entry)
	if errors.Is(err, audit.ErrDuplicateEvent) {
		p.log.Info("duplicate event", zap.String("event_id", m.EventID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("record event %s: %w", m.EventID, err)
	}

	p.log.Info("recorded mutation",
		zap.String("event_id", m.EventID),
		zap.String("tag", m.Tag),
		zap.String("action", m.Action),
		zap.String("resource_id", entry.ResourceID),
		zap.String("correlation_id", m.CorrelationID))
	return nil
}
