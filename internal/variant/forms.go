package variant

import (
	"mime/multipart"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// Input is the multipart form for creating a variant.
type Input struct {
	ProductID string                `json:"productId" validate:"notblank"`
	SKU       string                `json:"sku" validate:"notblank"`
	Price     validation.Number     `json:"price" validate:"required,gte=1"`
	Stock     validation.Number     `json:"stock" validate:"required,gte=1"`
	Image     *multipart.FileHeader `json:"image" validate:"-"`
}

// UpdateInput is the multipart form for editing a variant.
type UpdateInput struct {
	ProductID string                `json:"productId"`
	SKU       string                `json:"sku"`
	Price     validation.Number     `json:"price" validate:"omitempty,gt=0"`
	Stock     validation.Number     `json:"stock" validate:"omitempty,gt=0"`
	Image     *multipart.FileHeader `json:"image" validate:"-"`
}

// AttributeInput is the form for creating a variant attribute.
type AttributeInput struct {
	Name  string `json:"name" validate:"notblank"`
	Value string `json:"value" validate:"notblank"`
}

var formMessages = validation.Messages{
	"productId":      "Product Id is required!",
	"sku":            "SKU is required!",
	"price.required": "Varient price is required!",
	"price":          "Varient price must be positive",
	"stock.required": "Stock is required!",
	"stock":          "Stock must be positive",
	"name":           "Attribute name is required!",
	"value":          "Attribute value is required!",
}

// Validator checks variant and attribute forms.
type Validator struct {
	v *validatorv10.Validate
}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	v := validation.New()
	v.RegisterStructValidation(createImageRule, Input{})
	v.RegisterStructValidation(updateImageRule, UpdateInput{})
	return &Validator{v: v}
}

func (val *Validator) Validate(in Input) validation.FieldErrors {
	return validation.Check(val.v, in, formMessages)
}

func (val *Validator) ValidateUpdate(in UpdateInput) validation.FieldErrors {
	return validation.Check(val.v, in, formMessages)
}

func (val *Validator) ValidateAttribute(in AttributeInput) validation.FieldErrors {
	return validation.Check(val.v, in, formMessages)
}

func createImageRule(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(Input)
	if in.Image == nil {
		validation.Report(sl, in.Image, "image", "Varient image is required!")
		return
	}
	if msg := validation.PhotoProblem(in.Image); msg != "" {
		validation.Report(sl, in.Image, "image", msg)
	}
}

func updateImageRule(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(UpdateInput)
	if msg := validation.PhotoProblem(in.Image); msg != "" {
		validation.Report(sl, in.Image, "image", msg)
	}
}
