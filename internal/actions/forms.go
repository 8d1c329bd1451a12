package actions

import (
	"mime/multipart"

	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

// Multipart bodies forwarded to the remote API. Unset optional values are
// left out by Multipart.Field.

func productCreateForm(in validation.ProductInput) *remote.Multipart {
	m := productFields(in.Name, in.CategoryID, in.BrandID, in.Description,
		in.Price, in.PreviousPrice, in.ExtraPrice, in.Stock, in.Featured, in.Location, in.FreeDelivery)
	for _, fh := range in.Images {
		m.File("images", fh)
	}
	return m
}

func productUpdateForm(in validation.ProductUpdateInput) *remote.Multipart {
	m := productFields(in.Name, in.CategoryID, in.BrandID, in.Description,
		in.Price, in.PreviousPrice, in.ExtraPrice, in.Stock, in.Featured, in.Location, in.FreeDelivery)
	m.Field("status", in.Status)
	for _, fh := range in.Images {
		m.File("images", fh)
	}
	return m
}

func productFields(name, categoryID, brandID, description string,
	price, previousPrice, extraPrice, stock validation.Number,
	featured, location, freeDelivery string) *remote.Multipart {
	m := &remote.Multipart{}
	return m.Field("name", name).
		Field("categoryId", categoryID).
		Field("brandId", brandID).
		Field("description", description).
		Field("price", price.String()).
		Field("previousPrice", previousPrice.String()).
		Field("extraPrice", extraPrice.String()).
		Field("stock", stock.String()).
		Field("featured", featured).
		Field("location", location).
		Field("freeDelivery", freeDelivery)
}

func categoryForm(name, parentID string, image *multipart.FileHeader) *remote.Multipart {
	m := &remote.Multipart{}
	return m.Field("name", name).Field("parentId", parentID).File("image", image)
}

func variantCreateForm(in variant.Input) *remote.Multipart {
	m := &remote.Multipart{}
	return m.Field("productId", in.ProductID).
		Field("sku", in.SKU).
		Field("price", in.Price.String()).
		Field("stock", in.Stock.String()).
		File("image", in.Image)
}

func variantUpdateForm(in variant.UpdateInput) *remote.Multipart {
	m := &remote.Multipart{}
	return m.Field("productId", in.ProductID).
		Field("sku", in.SKU).
		Field("price", in.Price.String()).
		Field("stock", in.Stock.String()).
		File("image", in.Image)
}
