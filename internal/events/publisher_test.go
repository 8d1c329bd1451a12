package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	body  string
	attrs map[string]string
	err   error
}

func (f *fakeSender) SendMessage(ctx context.Context, body string, attributes map[string]string) error {
	f.body, f.attrs = body, attributes
	return f.err
}

func TestQueuePublisher_Publish(t *testing.T) {
	s := &fakeSender{}
	p := NewQueuePublisher(s)

	m := NewMutation("discount", "create", "d1", "admin@example.com", "req-1")
	require.NoError(t, p.Publish(context.Background(), m))

	var got Mutation
	require.NoError(t, json.Unmarshal([]byte(s.body), &got))
	assert.Equal(t, m.EventID, got.EventID)
	assert.Equal(t, "d1", got.ResourceID)
	assert.True(t, m.OccurredAt.Equal(got.OccurredAt))
	assert.Equal(t, map[string]string{
		"event_id":       m.EventID,
		"tag":            "discount",
		"action":         "create",
		"correlation_id": "req-1",
	}, s.attrs)
}

func TestQueuePublisher_WrapsSendError(t *testing.T) {
	boom := errors.New("boom")
	p := NewQueuePublisher(&fakeSender{err: boom})

	err := p.Publish(context.Background(), NewMutation("Brand", "delete", "b1", "", ""))
	assert.ErrorIs(t, err, boom)
}

func TestNewMutation_UniqueIDs(t *testing.T) {
	a := NewMutation("Brand", "create", "", "", "")
	b := NewMutation("Brand", "create", "", "", "")
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.NoError(t, Nop{}.Publish(context.Background(), a))
}
