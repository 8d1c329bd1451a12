package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/imrishuroy/go-ecom-admin/internal/actions"
	"github.com/imrishuroy/go-ecom-admin/internal/catalog"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
)

// Page data handlers load everything a form or dashboard needs in one
// round trip. Reads run concurrently; the first failure aborts the page.

type readFunc func(ctx context.Context) (json.RawMessage, error)

// fetch runs read in eg and stores the value at path of its body in dst.
func fetch(ctx context.Context, eg *errgroup.Group, read readFunc, path string, dst *json.RawMessage) {
	eg.Go(func() error {
		body, err := read(ctx)
		if err != nil {
			return err
		}
		if path == "" {
			*dst = body
		} else {
			*dst = remote.Field(body, path)
		}
		return nil
	})
}

func orEmptyList(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return json.RawMessage("[]")
	}
	return raw
}

func (h *handler) dashboardPage(c *gin.Context) {
	var sales, summary, lowStock json.RawMessage
	eg, ctx := errgroup.WithContext(c.Request.Context())
	fetch(ctx, eg, h.client.MonthlySales, "", &sales)
	fetch(ctx, eg, h.client.ProfitSummary, "summary", &summary)
	fetch(ctx, eg, h.client.StockOverview, "lowStockProducts", &lowStock)
	if err := eg.Wait(); err != nil {
		respond(c, actions.FromError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"monthlySales": gin.H{
			"data": orEmptyList(remote.Field(sales, "data")),
			"year": remote.Field(sales, "year"),
		},
		"profitSummary":    summary,
		"lowStockProducts": orEmptyList(lowStock),
	})
}

func (h *handler) productFormPage(c *gin.Context) {
	var cats []catalog.Category
	var brands json.RawMessage
	eg, ctx := errgroup.WithContext(c.Request.Context())
	eg.Go(func() error {
		var err error
		cats, err = h.client.CategoryList(ctx)
		return err
	})
	fetch(ctx, eg, h.client.ListBrands, "brands", &brands)
	if err := eg.Wait(); err != nil {
		respond(c, actions.FromError(err))
		return
	}

	tree := catalog.BuildTree(cats)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": cats,
		"selection":  tree.Initial(),
		"brands":     orEmptyList(brands),
	})
}

// productEditPage also rebuilds the category selects of the product's
// current category. A category that no longer resolves leaves only the
// root level, so the form still loads.
func (h *handler) productEditPage(c *gin.Context) {
	id := c.Param("id")
	var product, brands json.RawMessage
	var cats []catalog.Category
	eg, ctx := errgroup.WithContext(c.Request.Context())
	fetch(ctx, eg, func(ctx context.Context) (json.RawMessage, error) { return h.client.GetProduct(ctx, id) }, "product", &product)
	eg.Go(func() error {
		var err error
		cats, err = h.client.CategoryList(ctx)
		return err
	})
	fetch(ctx, eg, h.client.ListBrands, "brands", &brands)
	if err := eg.Wait(); err != nil {
		respond(c, actions.FromError(err))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, actions.Result{Message: "Product not found!"})
		return
	}

	tree := catalog.BuildTree(cats)
	sel, err := tree.SelectionFor(productCategoryID(product))
	if err != nil {
		h.log.Sugar().Warnf("product %s: category selection: %v", id, err)
		sel = tree.Initial()
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"product":    product,
		"categories": cats,
		"selection":  sel,
		"brands":     orEmptyList(brands),
	})
}

// productCategoryID reads categoryId whether the remote API sent the id or
// the populated category.
func productCategoryID(product json.RawMessage) string {
	r := gjson.GetBytes(product, "categoryId")
	if r.IsObject() {
		return r.Get("_id").String()
	}
	return r.String()
}

func (h *handler) discountFormPage(c *gin.Context) {
	var tiers, products, categories json.RawMessage
	eg, ctx := errgroup.WithContext(c.Request.Context())
	fetch(ctx, eg, h.client.ListDiscountTiers, "discountTiers", &tiers)
	fetch(ctx, eg, func(ctx context.Context) (json.RawMessage, error) {
		return h.client.ListProducts(ctx, remote.ProductQuery{Page: remote.All})
	}, "products", &products)
	fetch(ctx, eg, h.client.FlatCategories, "categories", &categories)
	if err := eg.Wait(); err != nil {
		respond(c, actions.FromError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"discountTiers": orEmptyList(tiers),
		"products":      orEmptyList(products),
		"categories":    orEmptyList(categories),
	})
}

func (h *handler) variantFormPage(c *gin.Context) {
	var products, attributes json.RawMessage
	eg, ctx := errgroup.WithContext(c.Request.Context())
	fetch(ctx, eg, func(ctx context.Context) (json.RawMessage, error) {
		return h.client.ListProducts(ctx, remote.ProductQuery{Page: remote.All})
	}, "products", &products)
	fetch(ctx, eg, h.client.ListVariantAttributes, "attributes", &attributes)
	if err := eg.Wait(); err != nil {
		respond(c, actions.FromError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   orEmptyList(products),
		"attributes": orEmptyList(attributes),
	})
}
