package variant

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

var skuPattern = regexp.MustCompile(`^REDSHIRT-CO-RED-[0-9A-Z]{4}$`)

func TestGenerateSKU_Shape(t *testing.T) {
	attrs := []Attribute{{Name: "Color", Value: "Red"}}

	for i := 0; i < 100; i++ {
		sku := GenerateSKU("Red Shirt", attrs)
		assert.Regexp(t, skuPattern, sku)
	}
}

func TestGenerateSKU_NotIdempotent(t *testing.T) {
	attrs := []Attribute{{Name: "Color", Value: "Red"}}

	// 36^4 suffixes; a few tries rule out a chance collision
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		seen[GenerateSKU("Red Shirt", attrs)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerator_Deterministic(t *testing.T) {
	next := 0
	g := Generator{Rand: func(n int) int {
		next++
		return (next * 11) % n
	}}

	sku := g.SKU(" slim  fit\tjeans ", []Attribute{
		{Name: "size", Value: "xl"},
		{Name: "Material", Value: "cotton"},
	})
	assert.Equal(t, "SLIMFITJEANS-SI-XL-MA-COT-BMX8", sku)
}

func TestGenerator_NoAttributes(t *testing.T) {
	g := Generator{Rand: func(int) int { return 0 }}
	assert.Equal(t, "MUG-0000", g.SKU("mug", nil))
}

func header(contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "v", Header: h, Size: size}
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	errs := v.Validate(Input{
		ProductID: "p1",
		SKU:       "MUG-0000",
		Price:     validation.NumberOf(120),
		Stock:     validation.NumberOf(3),
		Image:     header("image/png", 100),
	})
	assert.Nil(t, errs)

	errs = v.Validate(Input{Price: validation.NumberOf(0.5)})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"image", "price", "productId", "sku", "stock"}, errs.Fields())
	assert.Equal(t, []string{"Varient price must be positive"}, errs["price"])
	assert.Equal(t, []string{"Stock is required!"}, errs["stock"])
	assert.Equal(t, []string{"Varient image is required!"}, errs["image"])
}

func TestValidateUpdate(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.ValidateUpdate(UpdateInput{}))

	errs := v.ValidateUpdate(UpdateInput{Stock: validation.NumberOf(-1), Image: header("image/gif", 10)})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Only JPEG, PNG images are allowed!"}, errs["image"])
	assert.Equal(t, []string{"Stock must be positive"}, errs["stock"])
}

func TestValidateAttribute(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.ValidateAttribute(AttributeInput{Name: "Color", Value: "Red"}))
	errs := v.ValidateAttribute(AttributeInput{Name: " "})
	assert.Equal(t, []string{"name", "value"}, errs.Fields())
}
