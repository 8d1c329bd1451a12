package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

func (c *Client) ListVariants(ctx context.Context, p Page) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/varient/all", Query: p.query(),
		Tags: []string{TagVariant}, Fail: "Failed to fetch varients!"})
}

func (c *Client) GetVariant(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/varient/" + pathID(id),
		Tags: []string{TagVariant}, Fail: "Failed to fetch varient!"})
}

func (c *Client) CreateVariant(ctx context.Context, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/varient/create", Form: form,
		Fail: "Create varient failed!"})
}

func (c *Client) UpdateVariant(ctx context.Context, id string, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/varient/" + pathID(id), Form: form,
		Fail: "Update varient failed!"})
}

func (c *Client) DeleteVariant(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/varient/" + pathID(id),
		Fail: "Failed to delete varient!"})
}

func (c *Client) ListVariantAttributes(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/varient-attribute/all",
		Tags: []string{TagVariantAttr}, NoStore: true, Fail: "Failed to fetch varient attributes!"})
}

func (c *Client) CreateVariantAttribute(ctx context.Context, in variant.AttributeInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/varient-attribute/create", JSON: in,
		Fail: "Create varient attributes failed!"})
}

func (c *Client) DeleteVariantAttribute(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/varient-attribute/" + pathID(id),
		Fail: "Failed to delete varient attributes!"})
}
