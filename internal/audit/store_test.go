package audit

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/imrishuroy/go-ecom-admin/internal/events"
)

// mockDynamo stores items keyed by event_id and answers resource_id
// queries by scanning.
type mockDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func str(item map[string]types.AttributeValue, k string) string {
	if v, ok := item[k].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pk := str(params.Item, "event_id")
	if pk == "" {
		return nil, errors.New("no primary key in put item")
	}
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(event_id)" {
		if _, exists := m.items[pk]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	m.items[pk] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[str(params.Key, "event_id")]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	return nil, errors.New("update not supported")
}

func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rid := params.ExpressionAttributeValues[":rid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, item := range m.items {
		if str(item, "resource_id") == rid {
			out = append(out, item)
		}
	}
	// occurred_at is RFC 3339, so string order is time order
	sort.Slice(out, func(i, j int) bool {
		return str(out[i], "occurred_at") > str(out[j], "occurred_at")
	})
	if params.Limit != nil && int(*params.Limit) < len(out) {
		out = out[:*params.Limit]
	}
	return &dyn.QueryOutput{Items: out}, nil
}

func TestRecord_KeepsCallerTimestamp(t *testing.T) {
	s := NewStore(newMockDynamo(), "audit-table")
	s.nowFunc = func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := FromMutation(events.NewMutation("Brand", "create", "b1", "", ""))
	e.RecordedAt = at
	if err := s.Record(ctx, e); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	got, err := s.Get(ctx, e.EventID)
	if err != nil || got == nil {
		t.Fatalf("Get: (%+v, %v)", got, err)
	}
	if !got.RecordedAt.Equal(at) {
		t.Fatalf("recorded at %v, want %v", got.RecordedAt, at)
	}

	e2 := FromMutation(events.NewMutation("Brand", "delete", "b1", "", ""))
	if err := s.Record(ctx, e2); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	got, _ = s.Get(ctx, e2.EventID)
	if got == nil || got.RecordedAt.Year() != 2030 {
		t.Fatalf("zero timestamp not stamped: %+v", got)
	}
}

func TestRecord_GetAndDuplicate(t *testing.T) {
	mock := newMockDynamo()
	s := NewStore(mock, "audit-table")
	ctx := context.Background()

	m := events.NewMutation("Product", "update", "p1", "admin@example.com", "req-9")
	if err := s.Record(ctx, FromMutation(m)); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	got, err := s.Get(ctx, m.EventID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry, got nil")
	}
	if got.ResourceID != "p1" || got.Action != "update" || got.Actor != "admin@example.com" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.RecordedAt.IsZero() {
		t.Fatal("recorded_at not set")
	}

	if err := s.Record(ctx, FromMutation(m)); !errors.Is(err, ErrDuplicateEvent) {
		t.Fatalf("expected ErrDuplicateEvent, got %v", err)
	}

	missing, err := s.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", missing, err)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	mock := newMockDynamo()
	s := NewStore(mock, "audit-table")
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"create", "update", "status"} {
		m := events.NewMutation("discount", action, "d1", "", "")
		m.OccurredAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Record(ctx, FromMutation(m)); err != nil {
			t.Fatalf("Record %s: %v", action, err)
		}
	}
	if err := s.Record(ctx, FromMutation(events.NewMutation("discount", "create", "d2", "", ""))); err != nil {
		t.Fatalf("Record other: %v", err)
	}

	hist, err := s.History(ctx, "d1", 2)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hist))
	}
	if hist[0].Action != "status" || hist[1].Action != "update" {
		t.Fatalf("unexpected order: %s, %s", hist[0].Action, hist[1].Action)
	}
}

func TestFromMutation_EmptyResource(t *testing.T) {
	e := FromMutation(events.NewMutation("Brand", "create", "", "", ""))
	if e.ResourceID != noResource {
		t.Fatalf("expected placeholder resource id, got %q", e.ResourceID)
	}
}
