package actions

import (
	"context"
	"encoding/json"

	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

func (s *Service) CreateProduct(ctx context.Context, c Caller, in validation.ProductInput) Result {
	return s.run(ctx, c, mutation{name: "product.create", tag: remote.TagProduct, action: "create"},
		validation.Check(s.forms, in, validation.ProductMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateProduct(ctx, productCreateForm(in))
		})
}

func (s *Service) UpdateProduct(ctx context.Context, c Caller, id string, in validation.ProductUpdateInput) Result {
	return s.run(ctx, c, mutation{name: "product.update", tag: remote.TagProduct, action: "update", resourceID: id},
		validation.Check(s.forms, in, validation.ProductMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateProduct(ctx, id, productUpdateForm(in))
		})
}

func (s *Service) DeleteProduct(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "product.delete", tag: remote.TagProduct, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteProduct(ctx, id)
		})
}

// DeleteProductImage removes one image from a product gallery.
func (s *Service) DeleteProductImage(ctx context.Context, c Caller, imageID string) Result {
	return s.run(ctx, c, mutation{name: "product.image.delete", tag: remote.TagProduct, action: "delete-image", resourceID: imageID}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteProductImage(ctx, imageID)
		})
}

func (s *Service) CreateCategory(ctx context.Context, c Caller, in validation.CategoryInput) Result {
	return s.run(ctx, c, mutation{name: "category.create", tag: remote.TagCategory, action: "create"},
		validation.Check(s.forms, in, validation.CategoryMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateCategory(ctx, categoryForm(in.Name, in.ParentID, in.Image))
		})
}

func (s *Service) UpdateCategory(ctx context.Context, c Caller, id string, in validation.CategoryUpdateInput) Result {
	return s.run(ctx, c, mutation{name: "category.update", tag: remote.TagCategory, action: "update", resourceID: id},
		validation.Check(s.forms, in, validation.CategoryMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateCategory(ctx, id, categoryForm(in.Name, in.ParentID, in.Image))
		})
}

// DeleteCategory also drops cached product reads, which embed categories.
func (s *Service) DeleteCategory(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "category.delete", tag: remote.TagCategory, action: "delete", resourceID: id,
		also: []string{remote.TagProduct}}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteCategory(ctx, id)
		})
}

func (s *Service) CreateBrand(ctx context.Context, c Caller, in validation.BrandInput) Result {
	return s.run(ctx, c, mutation{name: "brand.create", tag: remote.TagBrand, action: "create"},
		validation.Check(s.forms, in, validation.BrandMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateBrand(ctx, in)
		})
}

func (s *Service) UpdateBrand(ctx context.Context, c Caller, id string, in validation.BrandUpdateInput) Result {
	return s.run(ctx, c, mutation{name: "brand.update", tag: remote.TagBrand, action: "update", resourceID: id},
		validation.Check(s.forms, in, validation.BrandMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateBrand(ctx, id, in)
		})
}

func (s *Service) DeleteBrand(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "brand.delete", tag: remote.TagBrand, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteBrand(ctx, id)
		})
}

func (s *Service) CreateShipping(ctx context.Context, c Caller, in validation.ShippingInput) Result {
	return s.run(ctx, c, mutation{name: "shipping.create", tag: remote.TagShipping, action: "create"},
		validation.Check(s.forms, in, validation.ShippingMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateShipping(ctx, in)
		})
}

func (s *Service) UpdateShipping(ctx context.Context, c Caller, id string, in validation.ShippingUpdateInput) Result {
	return s.run(ctx, c, mutation{name: "shipping.update", tag: remote.TagShipping, action: "update", resourceID: id},
		validation.Check(s.forms, in, validation.ShippingMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateShipping(ctx, id, in)
		})
}

func (s *Service) DeleteShipping(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "shipping.delete", tag: remote.TagShipping, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteShipping(ctx, id)
		})
}

// UpdateOrderStatus changes fulfilment and/or payment status.
func (s *Service) UpdateOrderStatus(ctx context.Context, c Caller, id string, in validation.OrderStatusInput) Result {
	return s.run(ctx, c, mutation{name: "order.status", tag: remote.TagOrder, action: "status", resourceID: id},
		validation.Check(s.forms, in, validation.OrderMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateOrderStatus(ctx, id, in)
		})
}

func (s *Service) DeleteOrder(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "order.delete", tag: remote.TagOrder, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteOrder(ctx, id)
		})
}
