package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

// maxFormMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const maxFormMemory = 32 << 20

// bindJSON decodes the body into out, writing a 400 when it is not JSON.
// Validation happens in the actions, not here.
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindWith(out, binding.JSON); err != nil {
		badRequest(c, "Invalid request body!")
		return false
	}
	return true
}

// multipartForm parses the body; a body that is not multipart yields an
// empty form so url-encoded submissions without files still bind.
func multipartForm(c *gin.Context) (*multipart.Form, bool) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err == nil {
		return c.Request.MultipartForm, true
	}
	if errors.Is(err, http.ErrNotMultipart) {
		// ParseMultipartForm has already parsed a url-encoded body
		return &multipart.Form{Value: c.Request.PostForm}, true
	}
	badRequest(c, "Invalid form data!")
	return nil, false
}

func value(f *multipart.Form, name string) string {
	if v := f.Value[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func number(f *multipart.Form, name string) validation.Number {
	if v, ok := f.Value[name]; ok && len(v) > 0 {
		return validation.ParseNumber(v[0])
	}
	return validation.Number{}
}

func file(f *multipart.Form, name string) *multipart.FileHeader {
	if fs := f.File[name]; len(fs) > 0 {
		return fs[0]
	}
	return nil
}

func productInput(f *multipart.Form) validation.ProductInput {
	return validation.ProductInput{
		Name:          value(f, "name"),
		CategoryID:    value(f, "categoryId"),
		BrandID:       value(f, "brandId"),
		Description:   value(f, "description"),
		Price:         number(f, "price"),
		PreviousPrice: number(f, "previousPrice"),
		ExtraPrice:    number(f, "extraPrice"),
		Stock:         number(f, "stock"),
		Featured:      value(f, "featured"),
		Location:      value(f, "location"),
		FreeDelivery:  value(f, "freeDelivery"),
		Images:        f.File["images"],
	}
}

func productUpdateInput(f *multipart.Form) validation.ProductUpdateInput {
	return validation.ProductUpdateInput{
		Name:          value(f, "name"),
		CategoryID:    value(f, "categoryId"),
		BrandID:       value(f, "brandId"),
		Description:   value(f, "description"),
		Price:         number(f, "price"),
		PreviousPrice: number(f, "previousPrice"),
		ExtraPrice:    number(f, "extraPrice"),
		Stock:         number(f, "stock"),
		Featured:      value(f, "featured"),
		Location:      value(f, "location"),
		FreeDelivery:  value(f, "freeDelivery"),
		Status:        value(f, "status"),
		Images:        f.File["images"],
	}
}

func variantInput(f *multipart.Form) variant.Input {
	return variant.Input{
		ProductID: value(f, "productId"),
		SKU:       value(f, "sku"),
		Price:     number(f, "price"),
		Stock:     number(f, "stock"),
		Image:     file(f, "image"),
	}
}

func variantUpdateInput(f *multipart.Form) variant.UpdateInput {
	return variant.UpdateInput{
		ProductID: value(f, "productId"),
		SKU:       value(f, "sku"),
		Price:     number(f, "price"),
		Stock:     number(f, "stock"),
		Image:     file(f, "image"),
	}
}
