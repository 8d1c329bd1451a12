package validation

import "mime/multipart"

// Divisions accepted for product locations and shipping costs.
var Divisions = []string{
	"Barishal", "Chattogram", "Dhaka", "Khulna",
	"Mymensingh", "Rajshahi", "Rangpur", "Sylhet",
}

// BrandInput is the payload for creating a brand.
type BrandInput struct {
	Name string `json:"name" validate:"notblank"`
}

// BrandUpdateInput is the payload for renaming a brand.
type BrandUpdateInput struct {
	Name string `json:"name,omitempty"`
}

// CategoryInput is the multipart form for creating a category.
type CategoryInput struct {
	Name     string                `json:"name" validate:"notblank"`
	ParentID string                `json:"parentId"`
	Image    *multipart.FileHeader `json:"image" validate:"-"`
}

// CategoryUpdateInput is the multipart form for editing a category.
type CategoryUpdateInput struct {
	Name     string                `json:"name"`
	ParentID string                `json:"parentId"`
	Image    *multipart.FileHeader `json:"image" validate:"-"`
}

// ProductInput is the multipart form for creating a product.
type ProductInput struct {
	Name          string                  `json:"name" validate:"notblank"`
	CategoryID    string                  `json:"categoryId" validate:"notblank"`
	BrandID       string                  `json:"brandId"`
	Description   string                  `json:"description" validate:"notblank"`
	Price         Number                  `json:"price" validate:"required,gte=1"`
	PreviousPrice Number                  `json:"previousPrice" validate:"omitempty,gte=0"`
	ExtraPrice    Number                  `json:"extraPrice" validate:"omitempty,gte=0"`
	Stock         Number                  `json:"stock" validate:"required,gte=1"`
	Featured      string                  `json:"featured" validate:"omitempty,oneof=true false"`
	Location      string                  `json:"location" validate:"omitempty,oneof=Barishal Chattogram Dhaka Khulna Mymensingh Rajshahi Rangpur Sylhet"`
	FreeDelivery  string                  `json:"freeDelivery" validate:"omitempty,oneof=true false"`
	Images        []*multipart.FileHeader `json:"images" validate:"-"`
}

// ProductUpdateInput is the multipart form for editing a product. Every
// field is optional.
type ProductUpdateInput struct {
	Name          string                  `json:"name"`
	CategoryID    string                  `json:"categoryId"`
	BrandID       string                  `json:"brandId"`
	Description   string                  `json:"description"`
	Price         Number                  `json:"price" validate:"omitempty,gte=0"`
	PreviousPrice Number                  `json:"previousPrice" validate:"omitempty,gte=0"`
	ExtraPrice    Number                  `json:"extraPrice" validate:"omitempty,gte=0"`
	Stock         Number                  `json:"stock" validate:"omitempty,gte=0"`
	Featured      string                  `json:"featured" validate:"omitempty,oneof=true false"`
	Location      string                  `json:"location" validate:"omitempty,oneof=Barishal Chattogram Dhaka Khulna Mymensingh Rajshahi Rangpur Sylhet"`
	FreeDelivery  string                  `json:"freeDelivery" validate:"omitempty,oneof=true false"`
	Status        string                  `json:"status" validate:"omitempty,oneof=active inactive"`
	Images        []*multipart.FileHeader `json:"images" validate:"-"`
}

// ShippingInput is the payload for creating a shipping cost.
type ShippingInput struct {
	Division string `json:"division" validate:"oneof=Barishal Chattogram Dhaka Khulna Mymensingh Rajshahi Rangpur Sylhet"`
	Cost     Number `json:"cost" validate:"required,gte=1"`
}

// ShippingUpdateInput is the payload for editing a shipping cost.
type ShippingUpdateInput struct {
	Division string `json:"division,omitempty" validate:"omitempty,oneof=Barishal Chattogram Dhaka Khulna Mymensingh Rajshahi Rangpur Sylhet"`
	Cost     Number `json:"cost,omitempty" validate:"omitempty,gte=0"`
}

// OrderStatusInput changes an order's fulfilment and/or payment status.
type OrderStatusInput struct {
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=placed processing shipping delivered cancelled returned refunded"`
	PaymentStatus string `json:"paymentStatus,omitempty" validate:"omitempty,oneof=not_paid paid"`
}

// LoginInput holds admin credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// ForgotPasswordInput requests a reset mail.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput sets a new password through a reset token.
type ResetPasswordInput struct {
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
}

// StatusInput toggles an entity between active and inactive.
type StatusInput struct {
	Status string `json:"status" validate:"oneof=active inactive"`
}

// Payload is the update body: only the fields that were submitted.
func (in ShippingUpdateInput) Payload() map[string]interface{} {
	out := map[string]interface{}{}
	if in.Division != "" {
		out["division"] = in.Division
	}
	if p := in.Cost.Ptr(); p != nil {
		out["cost"] = *p
	}
	return out
}
