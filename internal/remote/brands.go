package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (c *Client) ListBrands(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/brand/all",
		Tags: []string{TagBrand}, NoStore: true, Fail: "Failed to fetch brands!"})
}

func (c *Client) GetBrand(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/brand/" + pathID(id),
		Tags: []string{TagBrand}, NoStore: true, Fail: "Failed to fetch brand!"})
}

func (c *Client) CreateBrand(ctx context.Context, in validation.BrandInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/brand/create", JSON: in,
		Fail: "Failed to create brand!"})
}

func (c *Client) UpdateBrand(ctx context.Context, id string, in validation.BrandUpdateInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/brand/" + pathID(id), JSON: in,
		Fail: "Failed to update brand!"})
}

func (c *Client) DeleteBrand(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/brand/" + pathID(id),
		Fail: "Failed to delete brand!"})
}
