package remote

import (
	"context"
	"encoding/json"
	"net/http"
)

// ProductQuery filters the product list.
type ProductQuery struct {
	Page
	Category string `form:"category" json:"category"`
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (json.RawMessage, error) {
	query := q.Page.query()
	query.Set("category", q.Category)
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/product/all", Query: query,
		Tags: []string{TagProduct}, NoStore: true, Fail: "Failed to fetch products!"})
}

func (c *Client) GetProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/product/" + pathID(id),
		Tags: []string{TagProduct}, NoStore: true, Fail: "Failed to fetch product!"})
}

func (c *Client) CreateProduct(ctx context.Context, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/product/create", Form: form,
		Fail: "Create product failed!"})
}

func (c *Client) UpdateProduct(ctx context.Context, id string, form *Multipart) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/product/" + pathID(id), Form: form,
		Fail: "Update product failed"})
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/product/" + pathID(id),
		Fail: "Product delete failed"})
}

func (c *Client) DeleteProductImage(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/product-image/" + pathID(id),
		Fail: "Product image delete failed"})
}
