package actions

import (
	"context"
	"encoding/json"

	"github.com/imrishuroy/go-ecom-admin/internal/discount"
	"github.com/imrishuroy/go-ecom-admin/internal/remote"
	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// ValidateDiscount is a dry run of CreateDiscount: it reports the field
// errors or the payload that would be sent.
func (s *Service) ValidateDiscount(in discount.Input) Result {
	d, errs := s.discounts.Validate(in)
	if errs != nil {
		return invalid(errs)
	}
	body, err := json.Marshal(d.Payload())
	if err != nil {
		return failed(err)
	}
	return ok(body)
}

func (s *Service) CreateDiscount(ctx context.Context, c Caller, in discount.Input) Result {
	d, errs := s.discounts.Validate(in)
	return s.run(ctx, c, mutation{name: "discount.create", tag: remote.TagDiscount, action: "create"}, errs,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateDiscount(ctx, d.Payload())
		})
}

func (s *Service) UpdateDiscount(ctx context.Context, c Caller, id string, in discount.Input) Result {
	d, errs := s.discounts.Validate(in)
	return s.run(ctx, c, mutation{name: "discount.update", tag: remote.TagDiscount, action: "update", resourceID: id}, errs,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.UpdateDiscount(ctx, id, d.Payload())
		})
}

func (s *Service) DeleteDiscount(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "discount.delete", tag: remote.TagDiscount, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteDiscount(ctx, id)
		})
}

func (s *Service) SetDiscountStatus(ctx context.Context, c Caller, id string, in discount.StatusInput) Result {
	return s.run(ctx, c, mutation{name: "discount.status", tag: remote.TagDiscount, action: "status", resourceID: id},
		s.discounts.ValidateStatus(in),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.SetDiscountStatus(ctx, id, in)
		})
}

func (s *Service) CreateDiscountTier(ctx context.Context, c Caller, in discount.TierInput) Result {
	t, errs := s.discounts.ValidateTier(in)
	return s.run(ctx, c, mutation{name: "discount-tier.create", tag: remote.TagDiscountTier, action: "create"}, errs,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.CreateDiscountTier(ctx, t)
		})
}

func (s *Service) DeleteDiscountTier(ctx context.Context, c Caller, id string) Result {
	return s.run(ctx, c, mutation{name: "discount-tier.delete", tag: remote.TagDiscountTier, action: "delete", resourceID: id}, nil,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.DeleteDiscountTier(ctx, id)
		})
}

// SetUserStatus blocks or unblocks a user.
func (s *Service) SetUserStatus(ctx context.Context, c Caller, id string, in validation.StatusInput) Result {
	return s.run(ctx, c, mutation{name: "user.status", tag: remote.TagUser, action: "status", resourceID: id},
		validation.Check(s.forms, in, validation.StatusMessages),
		func(ctx context.Context) (json.RawMessage, error) {
			return s.client.SetUserStatus(ctx, id, in)
		})
}
