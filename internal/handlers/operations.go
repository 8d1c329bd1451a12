package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (h *handler) shippingRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) { forward(c, h.client.ListShipping) })
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetShipping(ctx, c.Param("id")) })
	})
	g.POST("", h.idempotent(), func(c *gin.Context) {
		var in validation.ShippingInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.CreateShipping(c.Request.Context(), caller(c), in))
	})
	g.PUT("/:id", func(c *gin.Context) {
		var in validation.ShippingUpdateInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.UpdateShipping(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteShipping(c.Request.Context(), caller(c), c.Param("id")))
	})
}

func (h *handler) orderRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		p := pageOf(c)
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.ListOrders(ctx, p) })
	})
	g.PUT("/:id", func(c *gin.Context) {
		var in validation.OrderStatusInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.UpdateOrderStatus(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteOrder(c.Request.Context(), caller(c), c.Param("id")))
	})
}

func (h *handler) userRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		p := pageOf(c)
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.ListUsers(ctx, p) })
	})
	g.PUT("/:id/status", func(c *gin.Context) {
		var in validation.StatusInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.SetUserStatus(c.Request.Context(), caller(c), c.Param("id"), in))
	})
}

const maxHistoryLimit = 100

// historyLimit parses the limit query: 20 when absent, clamped to
// 1..maxHistoryLimit.
func historyLimit(raw string) (int32, error) {
	if raw == "" {
		return 20, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit %q: %w", raw, err)
	}
	switch {
	case n < 1:
		n = 1
	case n > maxHistoryLimit:
		n = maxHistoryLimit
	}
	return int32(n), nil
}

// auditHistory lists the recorded mutations of one resource, newest first.
func (h *handler) auditHistory(c *gin.Context) {
	limit, err := historyLimit(c.Query("limit"))
	if err != nil {
		badRequest(c, "limit must be a number")
		return
	}
	entries, err := h.audit.History(c.Request.Context(), c.Param("resourceId"), limit)
	if err != nil {
		h.log.Error("audit history failed", zap.String("resource_id", c.Param("resourceId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, actions.Result{Message: "Failed to fetch history!"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": entries})
}
