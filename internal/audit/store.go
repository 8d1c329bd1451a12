// Package audit persists the mutation history of admin resources.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/imrishuroy/go-ecom-admin/internal/aws"
)

// ResourceIndex is the GSI keyed by resource_id, sorted by occurred_at.
const ResourceIndex = "resource_id-occurred_at-index"

// ErrDuplicateEvent is returned when an event id was already recorded.
var ErrDuplicateEvent = errors.New("audit event already recorded")

// Store writes and reads audit entries.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Record stores e once. A second write of the same event id returns
// ErrDuplicateEvent and leaves the first entry untouched. A zero RecordedAt
// is stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.nowFunc().UTC()
	}
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: sdkaws.String("attribute_not_exists(event_id)"),
	})
	if err != nil {
		var sc *types.ConditionalCheckFailedException
		if errors.As(err, &sc) {
			return ErrDuplicateEvent
		}
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// Get fetches an entry by event id. Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, eventID string) (*Entry, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var e Entry
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry: %w", err)
	}
	return &e, nil
}

// History returns up to limit entries for a resource, newest first.
func (s *Store) History(ctx context.Context, resourceID string, limit int32) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	out, err := s.client.Query(ctx, &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              sdkaws.String(ResourceIndex),
		KeyConditionExpression: sdkaws.String("resource_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: resourceID},
		},
		ScanIndexForward: sdkaws.Bool(false),
		Limit:            sdkaws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	entries := make([]Entry, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return entries, nil
}
