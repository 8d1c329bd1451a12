package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCreateIfNotExists_Get_MarkDone_MarkFailed(t *testing.T) {
	mock := newSimpleMock()
	s := NewStore(mock, "idempotency-table", 48*time.Hour)

	ctx := context.Background()
	key := "test-key-1"
	scope := "discount.create"

	created, err := s.CreateIfNotExists(ctx, key, scope)
	if err != nil {
		t.Fatalf("CreateIfNotExists error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}

	// second create should return created=false (exists)
	created2, err := s.CreateIfNotExists(ctx, key, scope)
	if err != nil {
		t.Fatalf("second CreateIfNotExists error: %v", err)
	}
	if created2 {
		t.Fatalf("expected created=false on duplicate create")
	}

	rec, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected record, got nil")
	}
	if rec.Status != StatusInProgress {
		t.Fatalf("expected IN_PROGRESS, got %s", rec.Status)
	}
	if rec.Scope != scope {
		t.Fatalf("scope mismatch: %s", rec.Scope)
	}

	if err := s.MarkDone(ctx, key, "{\"ok\":true}", 201); err != nil {
		t.Fatalf("MarkDone error: %v", err)
	}

	item := mock.table[key]
	if st, ok := item["status"].(*types.AttributeValueMemberS); !ok || st.Value != StatusDone {
		t.Fatalf("status not updated to DONE, got %+v", item["status"])
	}
	if rb, ok := item["response_body"].(*types.AttributeValueMemberS); !ok || rb.Value != "{\"ok\":true}" {
		t.Fatalf("response_body not set correctly: %+v", item["response_body"])
	}

	if err := s.MarkFailed(ctx, key, "failed-reason"); err != nil {
		t.Fatalf("MarkFailed error: %v", err)
	}
	item2 := mock.table[key]
	if st, ok := item2["status"].(*types.AttributeValueMemberS); !ok || st.Value != StatusFailed {
		t.Fatalf("status not updated to FAILED, got %+v", item2["status"])
	}
	if n, ok := item2["note"].(*types.AttributeValueMemberS); !ok || n.Value != "failed-reason" {
		t.Fatalf("note not set, got %+v", item2["note"])
	}
}

func TestGet_Missing(t *testing.T) {
	s := NewStore(newSimpleMock(), "idempotency-table", 0)

	rec, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}
}

func TestBegin_Lifecycle(t *testing.T) {
	mock := newSimpleMock()
	s := NewStore(mock, "idempotency-table", time.Hour)
	ctx := context.Background()

	d, _, err := s.Begin(ctx, "k", "product.create")
	if err != nil || d != Proceed {
		t.Fatalf("first Begin: decision=%v err=%v", d, err)
	}

	// still running
	d, rec, err := s.Begin(ctx, "k", "product.create")
	if err != nil || d != Busy {
		t.Fatalf("second Begin: decision=%v err=%v", d, err)
	}
	if rec == nil || rec.Status != StatusInProgress {
		t.Fatalf("expected in-progress record, got %+v", rec)
	}

	// failed attempts may be retried exactly once
	if err := s.MarkFailed(ctx, "k", "remote 500"); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}
	d, _, err = s.Begin(ctx, "k", "product.create")
	if err != nil || d != Proceed {
		t.Fatalf("retry Begin: decision=%v err=%v", d, err)
	}
	d, _, err = s.Begin(ctx, "k", "product.create")
	if err != nil || d != Busy {
		t.Fatalf("concurrent retry Begin: decision=%v err=%v", d, err)
	}

	// completed submissions replay
	if err := s.MarkDone(ctx, "k", `{"success":true}`, 201); err != nil {
		t.Fatalf("MarkDone: %v", err)
	}
	d, rec, err = s.Begin(ctx, "k", "product.create")
	if err != nil || d != Replay {
		t.Fatalf("replay Begin: decision=%v err=%v", d, err)
	}
	if rec.ResponseStatus != 201 || rec.ResponseBody != `{"success":true}` {
		t.Fatalf("unexpected stored response: %+v", rec)
	}
}

func TestBegin_KeyReused(t *testing.T) {
	s := NewStore(newSimpleMock(), "idempotency-table", time.Hour)
	ctx := context.Background()

	if _, _, err := s.Begin(ctx, "k", "brand.create"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	_, _, err := s.Begin(ctx, "k", "shipping.create")
	if !errors.Is(err, ErrKeyReused) {
		t.Fatalf("expected ErrKeyReused, got %v", err)
	}
}

func TestAttributevalueMarshal_Unmarshal(t *testing.T) {
	rec := Record{
		IdempotencyKey: "k1",
		Scope:          "brand.create",
		Status:         StatusInProgress,
		CreatedAt:      time.Now().Round(time.Second),
		UpdatedAt:      time.Now().Round(time.Second),
		ExpiresAt:      time.Now().Add(24 * time.Hour).Unix(),
	}
	m, err := attributevalue.MarshalMap(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Record
	if err := attributevalue.UnmarshalMap(m, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.IdempotencyKey != rec.IdempotencyKey || out.Scope != rec.Scope {
		t.Fatalf("unmarshal mismatch: %+v", out)
	}
}
