package discount

import (
	"time"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// Type is the dimension a discount applies to.
type Type string

const (
	TypeProduct  Type = "product"
	TypeCategory Type = "category"
	TypeCoupon   Type = "coupon"
	TypeQuantity Type = "quantity"
)

// Method is how a discount is calculated.
type Method string

const (
	MethodPercentage Method = "percentage"
	MethodFlat       Method = "flat"
	MethodTier       Method = "tier"
	MethodBogo       Method = "bogo"
)

// Status of a discount or tier.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Input is a discount as submitted by the authoring form. Numbers and dates
// are loose: "" leaves them unset.
type Input struct {
	Name         string            `json:"name" validate:"notblank"`
	Type         Type              `json:"type" validate:"oneof=product category coupon quantity"`
	Method       Method            `json:"method" validate:"oneof=percentage flat tier bogo"`
	Value        validation.Number `json:"value"`
	Code         string            `json:"code"`
	MinQty       validation.Number `json:"minQty"`
	ProductIDs   []string          `json:"productIds"`
	CategoryIDs  []string          `json:"categoryIds"`
	TierIDs      []string          `json:"tierIds"`
	MinCartValue validation.Number `json:"minCartValue"`
	UsageLimit   validation.Number `json:"usageLimit"`
	StartDate    validation.Date   `json:"startDate"`
	EndDate      validation.Date   `json:"endDate"`
}

// Discount is a validated discount. Dates are parsed and numbers that were
// not submitted stay nil.
type Discount struct {
	Name         string    `json:"name"`
	Type         Type      `json:"type"`
	Method       Method    `json:"method"`
	Value        *float64  `json:"value,omitempty"`
	Code         string    `json:"code,omitempty"`
	MinQty       *float64  `json:"minQty,omitempty"`
	ProductIDs   []string  `json:"productIds,omitempty"`
	CategoryIDs  []string  `json:"categoryIds,omitempty"`
	TierIDs      []string  `json:"tierIds,omitempty"`
	MinCartValue *float64  `json:"minCartValue,omitempty"`
	UsageLimit   *float64  `json:"usageLimit,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// TierInput is a (min, value) threshold for quantity+tier discounts.
type TierInput struct {
	Min   validation.Number `json:"min" validate:"required,gte=1"`
	Value validation.Number `json:"value" validate:"required,gte=1"`
}

// Tier is a validated tier.
type Tier struct {
	Min   float64 `json:"min"`
	Value float64 `json:"value"`
}

// StatusInput toggles a discount between active and inactive.
type StatusInput struct {
	Status Status `json:"status" validate:"oneof=active inactive"`
}
