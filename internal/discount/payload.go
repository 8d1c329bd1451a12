package discount

import "time"

// Payload is the body the remote API expects for create and update.
type Payload struct {
	Name         string   `json:"name"`
	Type         Type     `json:"type"`
	Method       Method   `json:"method"`
	Value        *float64 `json:"value,omitempty"`
	Code         string   `json:"code,omitempty"`
	MinQty       *float64 `json:"minQty,omitempty"`
	ProductIDs   []string `json:"productIds,omitempty"`
	CategoryIDs  []string `json:"categoryIds,omitempty"`
	TierIDs      []string `json:"tierIds,omitempty"`
	MinCartValue *float64 `json:"minCartValue,omitempty"`
	UsageLimit   *float64 `json:"usageLimit,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// Payload renders d for the remote API. Dates are sent as UTC RFC 3339
// timestamps and numbers that were not submitted are omitted.
func (d Discount) Payload() Payload {
	return Payload{
		Name:         d.Name,
		Type:         d.Type,
		Method:       d.Method,
		Value:        d.Value,
		Code:         d.Code,
		MinQty:       d.MinQty,
		ProductIDs:   d.ProductIDs,
		CategoryIDs:  d.CategoryIDs,
		TierIDs:      d.TierIDs,
		MinCartValue: d.MinCartValue,
		UsageLimit:   d.UsageLimit,
		StartDate:    d.StartDate.UTC().Format(time.RFC3339),
		EndDate:      d.EndDate.UTC().Format(time.RFC3339),
	}
}
