package discount

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

// rulesFor returns the struct-level rules for Input. They depend on the
// (type, method) pair and are all evaluated, so one submission reports
// every problem.
func rulesFor(o options) validatorv10.StructLevelFunc {
	return func(sl validatorv10.StructLevel) {
		in := sl.Current().Interface().(Input)

		checkDate(sl, in.StartDate, "startDate")
		checkDate(sl, in.EndDate, "endDate")
		if o.dateOrder && in.StartDate.Valid && in.EndDate.Valid && in.StartDate.Time.After(in.EndDate.Time) {
			validation.Report(sl, in.EndDate, "endDate", "End date must be after start date!")
		}

		switch in.Type {
		case TypeProduct:
			requireFlatOrPercentage(sl, in.Method, "Product discounts must use method: 'percentage' or 'flat'!")
			requireIDs(sl, in.ProductIDs, "productIds", "At least one product is required!")
			requirePositive(sl, in.Value, "value", "Value is required for product discounts!")

		case TypeCategory:
			requireFlatOrPercentage(sl, in.Method, "Category discounts must use method: 'percentage' or 'flat'!")
			requireIDs(sl, in.CategoryIDs, "categoryIds", "At least one category is required!")
			requirePositive(sl, in.Value, "value", "Value is required for category discounts!")

		case TypeCoupon:
			if in.Code == "" {
				validation.Report(sl, in.Code, "code", "Coupon code is required!")
			}
			requireFlatOrPercentage(sl, in.Method, "Coupon discounts must use method: 'percentage' or 'flat'!")
			requirePositive(sl, in.Value, "value", "Value is required for coupon discounts!")
			requirePositive(sl, in.MinCartValue, "minCartValue", "Minimum cart value is required!")
			requirePositive(sl, in.UsageLimit, "usageLimit", "Usage limit is required!")

		case TypeQuantity:
			switch in.Method {
			case MethodTier:
				requireIDs(sl, in.ProductIDs, "productIds", "At least one product is required!")
				requireIDs(sl, in.TierIDs, "tierIds", "At least one tier is required!")
			case MethodBogo:
				requireIDs(sl, in.ProductIDs, "productIds", "At least one product is required!")
				requirePositive(sl, in.MinQty, "minQty", "MinQty is required for BOGO!")
				requirePositive(sl, in.Value, "value", "Value (free items) is required for BOGO!")
			case MethodPercentage, MethodFlat:
				validation.Report(sl, in.Method, "method", "Quantity discounts must use method: 'tier' or 'bogo'!")
			}
		}
	}
}

func checkDate(sl validatorv10.StructLevel, d validation.Date, field string) {
	switch {
	case !d.Set:
		validation.Report(sl, d, field, field+" is required!")
	case !d.Valid:
		validation.Report(sl, d, field, "Invalid "+field+" string")
	}
}

func requireFlatOrPercentage(sl validatorv10.StructLevel, m Method, msg string) {
	if m != MethodPercentage && m != MethodFlat {
		validation.Report(sl, m, "method", msg)
	}
}

func requireIDs(sl validatorv10.StructLevel, ids []string, field, msg string) {
	if len(ids) == 0 {
		validation.Report(sl, ids, field, msg)
	}
}

func requirePositive(sl validatorv10.StructLevel, n validation.Number, field, msg string) {
	if !n.Positive() {
		validation.Report(sl, n, field, msg)
	}
}
