package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/catalog"
)

func (c *Client) FlatCategories(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/category/flat-all",
		Tags: []string{TagCategory}, NoStore: true, Fail: "Failed to fetch categories!"})
}

// CategoryList returns the flat category list decoded for tree building.
func (c *Client) CategoryList(ctx context.Context) ([]catalog.Category, error) {
	body, err := c.FlatCategories(ctx)
	if err != nil {
		return nil, err
	}
	var cats []catalog.Category
	if err := DecodeField(body, "categories", &cats); err != nil {
		return nil, &APIError{Message: "Failed to fetch categories!", Err: err}
	}
	return cats, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/category/" + pathID(id),
		Tags: []string{TagCategory}, NoStore: true, Fail: "Failed to fetch category!"})
}

func (c *Client) CreateCategory(ctx context.Context, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/category/create", Form: form,
		Fail: "Create category failed!"})
}

func (c *Client) UpdateCategory(ctx context.Context, id string, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/category/" + pathID(id), Form: form,
		Fail: "Update category failed!"})
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/category/" + pathID(id),
		Fail: "Failed to delete category!"})
}
