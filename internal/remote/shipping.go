package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (c *Client) ListShipping(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/shipping/all",
		Tags: []string{TagShipping}, NoStore: true, Fail: "Failed to fetch shipping costs!"})
}

func (c *Client) GetShipping(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/shipping/" + pathID(id),
		Tags: []string{TagShipping}, NoStore: true, Fail: "Failed to fetch single shipping cost!"})
}

func (c *Client) CreateShipping(ctx context.Context, in validation.ShippingInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/shipping/create", JSON: in,
		Fail: "Failed to create shipping!"})
}

func (c *Client) UpdateShipping(ctx context.Context, id string, in validation.ShippingUpdateInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/shipping/" + pathID(id), JSON: in.Payload(),
		Fail: "Failed to update shipping!"})
}

func (c *Client) DeleteShipping(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/shipping/" + pathID(id),
		Fail: "Failed to delete shipping cost!"})
}
