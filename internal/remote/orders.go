package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (c *Client) ListOrders(ctx context.Context, p Page) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/order/all", Query: p.query(),
		Tags: []string{TagOrder}, NoStore: true, Fail: "Failed to fetch orders!"})
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, in validation.OrderStatusInput) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/order/" + pathID(id), JSON: in,
		Fail: "Failed to change order status!"})
}

func (c *Client) DeleteOrder(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/order/" + pathID(id),
		Fail: "Failed to delete order!"})
}

func (c *Client) MonthlySales(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/order/monthly-sales",
		Fail: "Failed to get monthly sales!"})
}

func (c *Client) ProfitSummary(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/order/profit-summery",
		Fail: "Failed to get profit summery!"})
}

func (c *Client) StockOverview(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/order/stock-overview",
		Fail: "Failed to get stock overview!"})
}
