package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/discount"
)

func (c *Client) ListDiscounts(ctx context.Context, p Page) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/discount/all", Query: p.query(),
		Tags: []string{TagDiscount}, Fail: "Failed to fetch discounts!"})
}

func (c *Client) GetDiscount(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/discount/" + pathID(id),
		Tags: []string{TagDiscount}, Fail: "Failed to fetch single discount!"})
}

func (c *Client) CreateDiscount(ctx context.Context, d discount.Payload) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/discount/create", JSON: d,
		Fail: "Create discount failed!"})
}

func (c *Client) UpdateDiscount(ctx context.Context, id string, d discount.Payload) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/discount/" + pathID(id), JSON: d,
		Fail: "Update discount failed!"})
}

func (c *Client) DeleteDiscount(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/discount/" + pathID(id),
		Fail: "Failed to delete discount!"})
}

func (c *Client) SetDiscountStatus(ctx context.Context, id string, in discount.StatusInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/discount/active-inactive/" + pathID(id), JSON: in,
		Fail: "Failed to active/inactive discount!"})
}

func (c *Client) ListDiscountTiers(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/discount/all-tier",
		Tags: []string{TagDiscountTier}, Fail: "Failed to fetch discount tiers!"})
}

func (c *Client) CreateDiscountTier(ctx context.Context, t discount.Tier) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/discount/create-tier", JSON: t,
		Fail: "Create discount tier failed!"})
}

func (c *Client) DeleteDiscountTier(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/discount/tier/" + pathID(id),
		Fail: "Failed to delete discount tier!"})
}
