package handlers

import (
	"context"
	"errors"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// memDynamo backs the idempotency and audit stores in handler tests. It
// only understands the expressions the idempotency store issues.
type memDynamo struct {
	mu     sync.Mutex
	items  map[string]map[string]types.AttributeValue
	limits []int32
}

func newMemDynamo() *memDynamo {
	return &memDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idemKey(attrs map[string]types.AttributeValue) string {
	if v, ok := attrs["idempotency_key"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (m *memDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := idemKey(params.Item)
	if params.ConditionExpression != nil {
		if _, ok := m.items[k]; ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	m.items[k] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *memDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[idemKey(params.Key)]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *memDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[idemKey(params.Key)]
	if !ok {
		return nil, errors.New("item not found")
	}
	vals := params.ExpressionAttributeValues
	if params.ConditionExpression != nil {
		got, _ := item["status"].(*types.AttributeValueMemberS)
		if got == nil || got.Value != vals[":failed"].(*types.AttributeValueMemberS).Value {
			return nil, &types.ConditionalCheckFailedException{}
		}
		item["status"] = vals[":inprogress"]
		return &dyn.UpdateItemOutput{}, nil
	}
	for attr, placeholder := range map[string]string{
		"response_body": ":rb", "response_status": ":rs", "note": ":n",
		"updated_at": ":ua", "status": ":done",
	} {
		if v, ok := vals[placeholder]; ok {
			item[attr] = v
		}
	}
	if v, ok := vals[":failed"]; ok {
		item["status"] = v
	}
	return &dyn.UpdateItemOutput{}, nil
}

// Query answers with no items and remembers the requested limits.
func (m *memDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if params.Limit != nil {
		m.limits = append(m.limits, *params.Limit)
	}
	return &dyn.QueryOutput{}, nil
}
