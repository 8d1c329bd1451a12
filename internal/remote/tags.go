package remote

import (
	"net/url"
	"strconv"
)

// Invalidation tags, one per remote resource.
const (
	TagDiscount      = "discount"
	TagDiscountTier  = "discount-tier"
	TagProduct       = "Product"
	TagCategory      = "Category"
	TagBrand         = "Brand"
	TagVariant       = "Varient"
	TagVariantAttr   = "varient-attr"
	TagShipping      = "shipping"
	TagOrder         = "Order"
	TagUser          = "User"
	defaultPage      = 1
	defaultPageLimit = 5
)

// Page selects a page of a list endpoint. Zero values mean page 1 of 5.
type Page struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (p Page) query() url.Values {
	page, limit := p.Page, p.Limit
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}

// All is a page large enough to list every item in a select.
var All = Page{Page: 1, Limit: 100000}
