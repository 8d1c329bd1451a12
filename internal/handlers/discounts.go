package handlers

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-ecom-admin/internal/discount"
)

func (h *handler) discountRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		p := pageOf(c)
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.ListDiscounts(ctx, p) })
	})
	g.GET("/new", h.discountFormPage)
	g.GET("/tiers", func(c *gin.Context) { forward(c, h.client.ListDiscountTiers) })
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetDiscount(ctx, c.Param("id")) })
	})

	g.POST("/validate", func(c *gin.Context) {
		var in discount.Input
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.ValidateDiscount(in))
	})
	g.POST("", h.idempotent(), func(c *gin.Context) {
		var in discount.Input
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.CreateDiscount(c.Request.Context(), caller(c), in))
	})
	g.PUT("/:id", func(c *gin.Context) {
		var in discount.Input
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.UpdateDiscount(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.PUT("/:id/status", func(c *gin.Context) {
		var in discount.StatusInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.SetDiscountStatus(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteDiscount(c.Request.Context(), caller(c), c.Param("id")))
	})

	g.POST("/tiers", h.idempotent(), func(c *gin.Context) {
		var in discount.TierInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.CreateDiscountTier(c.Request.Context(), caller(c), in))
	})
	g.DELETE("/tiers/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteDiscountTier(c.Request.Context(), caller(c), c.Param("id")))
	})
}
