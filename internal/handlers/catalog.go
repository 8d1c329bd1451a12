package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/catalog"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (h *handler) productRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) {
		var q remote.ProductQuery
		_ = c.ShouldBindQuery(&q)
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.ListProducts(ctx, q) })
	})
	g.GET("/new", h.productFormPage)
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetProduct(ctx, c.Param("id")) })
	})
	g.GET("/:id/edit", h.productEditPage)

	g.POST("", h.idempotent(), func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		respond(c, h.actions.CreateProduct(c.Request.Context(), caller(c), productInput(form)))
	})
	g.PUT("/:id", func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		respond(c, h.actions.UpdateProduct(c.Request.Context(), caller(c), c.Param("id"), productUpdateInput(form)))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteProduct(c.Request.Context(), caller(c), c.Param("id")))
	})
	g.DELETE("/images/:imageId", func(c *gin.Context) {
		respond(c, h.actions.DeleteProductImage(c.Request.Context(), caller(c), c.Param("imageId")))
	})
}

func (h *handler) categoryRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) { forward(c, h.client.FlatCategories) })
	g.GET("/levels", h.categoryLevels)
	g.POST("/levels/select", h.selectCategory)
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetCategory(ctx, c.Param("id")) })
	})

	g.POST("", h.idempotent(), func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		in := validation.CategoryInput{Name: value(form, "name"), ParentID: value(form, "parentId"), Image: file(form, "image")}
		respond(c, h.actions.CreateCategory(c.Request.Context(), caller(c), in))
	})
	g.PUT("/:id", func(c *gin.Context) {
		form, ok := multipartForm(c)
		if !ok {
			return
		}
		in := validation.CategoryUpdateInput{Name: value(form, "name"), ParentID: value(form, "parentId"), Image: file(form, "image")}
		respond(c, h.actions.UpdateCategory(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteCategory(c.Request.Context(), caller(c), c.Param("id")))
	})
}

// categoryLevels returns the cascading selects for ?selected=<category id>,
// or only the root level when nothing is selected.
func (h *handler) categoryLevels(c *gin.Context) {
	tree, ok := h.categoryTree(c)
	if !ok {
		return
	}
	sel, err := tree.SelectionFor(c.Query("selected"))
	if err != nil {
		selectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "selection": sel, "categoryId": sel.CategoryID()})
}

type selectRequest struct {
	Picks []string `json:"picks"`
	Level int      `json:"level"`
	ID    string   `json:"id"`
}

// selectCategory applies one pick to the selection described by the
// earlier picks and returns the new selects.
func (h *handler) selectCategory(c *gin.Context) {
	var req selectRequest
	if !bindJSON(c, &req) {
		return
	}
	tree, ok := h.categoryTree(c)
	if !ok {
		return
	}
	sel, err := tree.Replay(req.Picks)
	if err == nil {
		sel, err = tree.Select(sel, req.Level, req.ID)
	}
	if err != nil {
		selectionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "selection": sel, "categoryId": sel.CategoryID()})
}

func (h *handler) categoryTree(c *gin.Context) (*catalog.Tree, bool) {
	cats, err := h.client.CategoryList(c.Request.Context())
	if err != nil {
		respond(c, actions.FromError(err))
		return nil, false
	}
	return catalog.BuildTree(cats), true
}

func selectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCategory):
		c.JSON(http.StatusNotFound, actions.Result{Message: err.Error()})
	case errors.Is(err, catalog.ErrCycle), errors.Is(err, catalog.ErrDetached):
		c.JSON(http.StatusUnprocessableEntity, actions.Result{Message: err.Error()})
	default:
		badRequest(c, err.Error())
	}
}

func (h *handler) brandRoutes(g *gin.RouterGroup) {
	g.GET("", func(c *gin.Context) { forward(c, h.client.ListBrands) })
	g.GET("/:id", func(c *gin.Context) {
		forward(c, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetBrand(ctx, c.Param("id")) })
	})
	g.POST("", h.idempotent(), func(c *gin.Context) {
		var in validation.BrandInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.CreateBrand(c.Request.Context(), caller(c), in))
	})
	g.PUT("/:id", func(c *gin.Context) {
		var in validation.BrandUpdateInput
		if !bindJSON(c, &in) {
			return
		}
		respond(c, h.actions.UpdateBrand(c.Request.Context(), caller(c), c.Param("id"), in))
	})
	g.DELETE("/:id", func(c *gin.Context) {
		respond(c, h.actions.DeleteBrand(c.Request.Context(), caller(c), c.Param("id")))
	})
}
