package actions

import (
	"context"
	"encoding/json"

	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/variant"
)

// CreateVariant also drops product reads, which list their variants.
func (s *Service) CreateVariant(ctx context.Context, c Caller, in variant.Input) Result {
	return s.run(ctx, c, mutation{name: "variant.create", tag: remote.TagVariant, action: "create",
		also: []string{remote.TagProduct}}, s.variants.Validate(in),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateVariant(ctx, variantCreateForm(in))
		})
}

func (s *Service) UpdateVariant(ctx context.Context, c Caller, id string, in variant.UpdateInput) Result {
	return s.run(ctx, c, mutation{name: "variant.update", tag: remote.TagVariant, action: "update", resourceID: id,
		also: []string{remote.TagProduct}}, s.variants.ValidateUpdate(in),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateVariant(ctx, id, variantUpdateForm(in))
		})
}

func (s *Service) DeleteVariant(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "variant.delete", tag: remote.TagVariant, action: "delete", resourceID: id,
		also: []string{remote.TagProduct}}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteVariant(ctx, id)
		})
}

func (s *Service) CreateVariantAttribute(ctx context.Context, c Caller, in variant.AttributeInput) Result {
	return s.run(ctx, c, mutation{name: "variant-attr.create", tag: remote.TagVariantAttr, action: "create"},
		s.variants.ValidateAttribute(in),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateVariantAttribute(ctx, in)
		})
}

func (s *Service) DeleteVariantAttribute(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "variant-attr.delete", tag: remote.TagVariantAttr, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteVariantAttribute(ctx, id)
		})
}

// SuggestSKU proposes a SKU for a variant of productName.
func (s *Service) SuggestSKU(productName string, attrs []variant.Attribute) string {
	return variant.GenerateSKU(productName, attrs)
}
