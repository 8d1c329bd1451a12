package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

func (h *handler) variantRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		p := pageOf(c)
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.ListVariants(ctx, p) })
	})
	g.GET("/new", h.variantFormPage)
	g.GET("/attributes", func(c *gin.Context) { forward(c, h.client.ListVariantAttributes) })
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetVariant(ctx, c.Param("id")) })
	})

	g.POST("/sku", h.suggestSKU)
	g.POST("", h.idempotent(), func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		respond(c, h.actions.CreateVariant(c.Request.Context(), caller(c), variantInput(form)))
	})
	g.PUT("/:id", func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		respond(c, h.actions.UpdateVariant(c.Request.Context(), caller(c), c.Param("id"), variantUpdateInput(form)))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteVariant(c.Request.Context(), caller(c), c.Param("id")))
	})

	g.POST("/attributes", h.idempotent(), func(c *gin.Context) {
		var in variant.AttributeInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.CreateVariantAttribute(c.Request.Context(), caller(c), in))
	})
	g.DELETE("/attributes/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteVariantAttribute(c.Request.Context(), caller(c), c.Param("id")))
	})
}

type skuRequest struct {
	ProductID   string              `json:"productId"`
	ProductName string              `json:"productName"`
	Attributes  []variant.Attribute `json:"attributes"`
}

// suggestSKU proposes a SKU. The product name is looked up when only the
// product id is given.
func (h *handler) suggestSKU(c *gin.Context) {
	var req skuRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.ProductName)
	if name == "" && req.ProductID != "" {
		body, err := h.client.GetProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			respond(c, actions.FromError(err))
			return
		}
		name = gjson.GetBytes(body, "product.name").String()
	}
	if name == "" {
		badRequest(c, "Product is required!")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sku": h.actions.SuggestSKU(name, req.Attributes)})
}
