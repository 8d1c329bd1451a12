package discount

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

var baseMessages = validation.Messages{
	"name":   "Discount name is required",
	"type":   "Invalid type!",
	"method": "Invalid method!",
}

var tierMessages = validation.Messages{
	"min.required":   "Tier minimum value is required!",
	"min.gte":        "Tier minimum value must be positive!",
	"value.required": "Tier value is required!",
	"value.gte":      "Tier value must be positive!",
}

var statusMessages = validation.Messages{
	"status": "Invalid status",
}

// Validator checks discount submissions.
type Validator struct {
	v *validatorv10.Validate
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	dateOrder bool
}

// WithDateOrderCheck rejects discounts whose start date is after the end
// date. Without it inverted ranges are accepted.
func WithDateOrderCheck() Option {
	return func(o *options) { o.dateOrder = true }
}

// New returns a Validator.
func New(opts ...Option) *Validator {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := validation.New()
	v.RegisterStructValidation(rulesFor(o), Input{})

	return &Validator{v: v}
}

// Validate checks in and returns the normalized discount. Every violated
// rule is reported; a non-nil FieldErrors means the Discount is unusable.
func (val *Validator) Validate(in Input) (Discount, validation.FieldErrors) {
	if errs := validation.Check(val.v, in, baseMessages); errs != nil {
		return Discount{}, errs
	}
	return normalize(in), nil
}

// ValidateTier checks a tier submission.
func (val *Validator) ValidateTier(in TierInput) (Tier, validation.FieldErrors) {
	if errs := validation.Check(val.v, in, tierMessages); errs != nil {
		return Tier{}, errs
	}
	return Tier{Min: in.Min.Float, Value: in.Value.Float}, nil
}

// ValidateStatus checks a status toggle.
func (val *Validator) ValidateStatus(in StatusInput) validation.FieldErrors {
	return validation.Check(val.v, in, statusMessages)
}

func normalize(in Input) Discount {
	return Discount{
		Name:         in.Name,
		Type:         in.Type,
		Method:       in.Method,
		Value:        in.Value.Ptr(),
		Code:         in.Code,
		MinQty:       in.MinQty.Ptr(),
		ProductIDs:   in.ProductIDs,
		CategoryIDs:  in.CategoryIDs,
		TierIDs:      in.TierIDs,
		MinCartValue: in.MinCartValue.Ptr(),
		UsageLimit:   in.UsageLimit.Ptr(),
		StartDate:    in.StartDate.Time,
		EndDate:      in.EndDate.Time,
	}
}
