package discount

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imrishuroy/go-ecom-admin/internal/validation"
)

var (
	jan1  = validation.DateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	jan31 = validation.DateOf(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
)

func dated(in Input) Input {
	in.Name = "Summer"
	in.StartDate = jan1
	in.EndDate = jan31
	return in
}

func TestValidate_ProductReportsEveryViolation(t *testing.T) {
	v := New()

	_, errs := v.Validate(dated(Input{
		Type:       TypeProduct,
		Method:     MethodTier,
		ProductIDs: []string{},
		Value:      validation.NumberOf(0),
	}))

	require.NotNil(t, errs)
	assert.Equal(t, []string{"method", "productIds", "value"}, errs.Fields())
	assert.Equal(t, []string{"Product discounts must use method: 'percentage' or 'flat'!"}, errs["method"])
	assert.Equal(t, []string{"At least one product is required!"}, errs["productIds"])
	assert.Equal(t, []string{"Value is required for product discounts!"}, errs["value"])
}

func TestValidate_ProductSingleViolation(t *testing.T) {
	v := New()
	valid := dated(Input{
		Type:       TypeProduct,
		Method:     MethodFlat,
		ProductIDs: []string{"p1"},
		Value:      validation.NumberOf(10),
	})

	_, errs := v.Validate(valid)
	require.Nil(t, errs)

	cases := map[string]func(*Input){
		"method":     func(in *Input) { in.Method = MethodBogo },
		"productIds": func(in *Input) { in.ProductIDs = nil },
		"value":      func(in *Input) { in.Value = validation.Number{} },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, errs := v.Validate(in)
			require.NotNil(t, errs)
			assert.Equal(t, []string{field}, errs.Fields())
		})
	}
}

func TestValidate_CategoryDiscount(t *testing.T) {
	v := New()

	_, errs := v.Validate(dated(Input{Type: TypeCategory, Method: MethodPercentage}))
	require.NotNil(t, errs)
	assert.Equal(t, []string{"categoryIds", "value"}, errs.Fields())

	d, errs := v.Validate(dated(Input{
		Type:        TypeCategory,
		Method:      MethodPercentage,
		CategoryIDs: []string{"c1"},
		Value:       validation.NumberOf(15),
	}))
	require.Nil(t, errs)
	assert.Equal(t, 15.0, *d.Value)
}

func TestValidate_CouponReportsExactlyTheMissingSubset(t *testing.T) {
	v := New()
	full := dated(Input{
		Type:         TypeCoupon,
		Method:       MethodPercentage,
		Code:         "SAVE10",
		Value:        validation.NumberOf(10),
		MinCartValue: validation.NumberOf(500),
		UsageLimit:   validation.NumberOf(100),
	})

	_, errs := v.Validate(full)
	require.Nil(t, errs)

	unset := map[string]func(*Input){
		"code":         func(in *Input) { in.Code = "" },
		"value":        func(in *Input) { in.Value = validation.Number{} },
		"minCartValue": func(in *Input) { in.MinCartValue = validation.NumberOf(0) },
		"usageLimit":   func(in *Input) { in.UsageLimit = validation.ParseNumber("") },
	}
	fields := []string{"code", "minCartValue", "usageLimit", "value"}

	// every non-empty subset of the four required fields
	for mask := 1; mask < 1<<len(fields); mask++ {
		in := full
		var want []string
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				unset[f](&in)
				want = append(want, f)
			}
		}
		_, errs := v.Validate(in)
		require.NotNil(t, errs, "mask %b", mask)
		assert.Equal(t, want, errs.Fields(), "mask %b", mask)
	}
}

func TestValidate_QuantityTier(t *testing.T) {
	v := New()

	_, errs := v.Validate(dated(Input{Type: TypeQuantity, Method: MethodTier}))
	require.NotNil(t, errs)
	assert.Equal(t, []string{"productIds", "tierIds"}, errs.Fields())
	assert.Equal(t, []string{"At least one tier is required!"}, errs["tierIds"])

	_, errs = v.Validate(dated(Input{
		Type:       TypeQuantity,
		Method:     MethodTier,
		ProductIDs: []string{"p1"},
		TierIDs:    []string{"t1", "t2"},
	}))
	assert.Nil(t, errs)
}

func TestValidate_QuantityRejectsFlatMethods(t *testing.T) {
	v := New()

	_, errs := v.Validate(dated(Input{Type: TypeQuantity, Method: MethodFlat, ProductIDs: []string{"p1"}}))
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Quantity discounts must use method: 'tier' or 'bogo'!"}, errs["method"])
}

func TestValidate_BogoPassesAndKeepsShape(t *testing.T) {
	v := New()

	d, errs := v.Validate(dated(Input{
		Type:       TypeQuantity,
		Method:     MethodBogo,
		ProductIDs: []string{"p1"},
		MinQty:     validation.NumberOf(2),
		Value:      validation.NumberOf(1),
	}))
	require.Nil(t, errs)

	body, err := json.Marshal(d.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Summer",
		"type": "quantity",
		"method": "bogo",
		"productIds": ["p1"],
		"minQty": 2,
		"value": 1,
		"startDate": "2024-01-01T00:00:00Z",
		"endDate": "2024-01-31T00:00:00Z"
	}`, string(body))
}

func TestValidate_BogoMissingFields(t *testing.T) {
	v := New()

	_, errs := v.Validate(dated(Input{Type: TypeQuantity, Method: MethodBogo, MinQty: validation.ParseNumber("abc")}))
	require.NotNil(t, errs)
	assert.Equal(t, []string{"minQty", "productIds", "value"}, errs.Fields())
	assert.Equal(t, []string{"Value (free items) is required for BOGO!"}, errs["value"])
}

func TestValidate_EmptyValueIsAbsentNotZero(t *testing.T) {
	var in Input
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Coupon",
		"type": "coupon",
		"method": "flat",
		"code": "X",
		"value": "",
		"minCartValue": "100",
		"usageLimit": 5,
		"startDate": "2024-01-01",
		"endDate": "2024-02-01"
	}`), &in))

	assert.False(t, in.Value.Set)

	_, errs := New().Validate(in)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Value is required for coupon discounts!"}, errs["value"])
}

func TestValidate_BaseFields(t *testing.T) {
	var in Input
	require.NoError(t, json.Unmarshal([]byte(`{"type": "gift", "method": "free", "startDate": "not a date"}`), &in))

	_, errs := New().Validate(in)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Discount name is required"}, errs["name"])
	assert.Equal(t, []string{"Invalid type!"}, errs["type"])
	assert.Equal(t, []string{"Invalid method!"}, errs["method"])
	assert.Equal(t, []string{"Invalid startDate string"}, errs["startDate"])
	assert.Equal(t, []string{"endDate is required!"}, errs["endDate"])
}

func TestValidate_InvertedDatesAcceptedByDefault(t *testing.T) {
	in := dated(Input{Type: TypeProduct, Method: MethodFlat, ProductIDs: []string{"p1"}, Value: validation.NumberOf(5)})
	in.StartDate, in.EndDate = jan31, jan1

	d, errs := New().Validate(in)
	require.Nil(t, errs)
	assert.True(t, d.StartDate.After(d.EndDate))
}

func TestValidate_DateOrderCheckFlagsInvertedDates(t *testing.T) {
	in := dated(Input{Type: TypeProduct, Method: MethodFlat, ProductIDs: []string{"p1"}, Value: validation.NumberOf(5)})
	in.StartDate, in.EndDate = jan31, jan1

	_, errs := New(WithDateOrderCheck()).Validate(in)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"End date must be after start date!"}, errs["endDate"])
}

func TestValidateTier(t *testing.T) {
	v := New()

	tier, errs := v.ValidateTier(TierInput{Min: validation.ParseNumber("3"), Value: validation.ParseNumber(10)})
	require.Nil(t, errs)
	assert.Equal(t, Tier{Min: 3, Value: 10}, tier)

	_, errs = v.ValidateTier(TierInput{Value: validation.NumberOf(0)})
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Tier minimum value is required!"}, errs["min"])
	assert.Equal(t, []string{"Tier value must be positive!"}, errs["value"])
}

func TestValidateStatus(t *testing.T) {
	v := New()

	assert.Nil(t, v.ValidateStatus(StatusInput{Status: StatusInactive}))
	errs := v.ValidateStatus(StatusInput{Status: "paused"})
	assert.Equal(t, []string{"Invalid status"}, errs["status"])
}
