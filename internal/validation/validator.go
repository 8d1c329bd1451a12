package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New returns a validator configured for the admin forms:
//   - field errors are keyed by JSON field name
//   - Number fields are validated by their float value (unset reads as empty)
//   - notblank rejects whitespace-only strings
//   - struct-level rules cover the image uploads of the multipart forms
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(numberValue, Number{})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	v.RegisterStructValidation(categoryCreateStructValidation, CategoryInput{})
	v.RegisterStructValidation(categoryUpdateStructValidation, CategoryUpdateInput{})
	v.RegisterStructValidation(productCreateStructValidation, ProductInput{})
	v.RegisterStructValidation(productUpdateStructValidation, ProductUpdateInput{})

	return v
}

// Check validates in and translates any failure into FieldErrors.
// It returns nil when in is valid.
func Check(v *validatorv10.Validate, in interface{}, messages Messages) FieldErrors {
	if err := v.Struct(in); err != nil {
		return ToFieldErrors(err, messages)
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func numberValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(Number)
	if !ok || !n.Set {
		return nil
	}
	return n.Float
}
