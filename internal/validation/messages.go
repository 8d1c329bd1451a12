package validation

// Message tables for the forms in types.go.
var (
	BrandMessages = Messages{
		"name": "Brand name is required!",
	}

	CategoryMessages = Messages{
		"name": "Category name is required!",
	}

	ProductMessages = Messages{
		"name":                 "Product name is required!",
		"categoryId":           "Category id is required!",
		"description":          "Product description is required!",
		"price.required":       "Product price is required!",
		"price.gte":            "Product price must be positive",
		"previousPrice":        "Previous price must be 0 or positive",
		"extraPrice":           "Extra price must be 0 or positive",
		"stock.required":       "Product stock is required!",
		"stock.gte":            "Stock must be positive",
		"featured":             "Invalid featured status",
		"location":             "Invalid location",
		"freeDelivery":         "Invalid free delivery status",
		"status":               "Invalid status",
	}

	ShippingMessages = Messages{
		"division":      "Invalid division name!",
		"cost.required": "Cost is required!",
		"cost.gte":      "Cost must be positive!",
	}

	OrderMessages = Messages{
		"status":        "Invalid staus",
		"paymentStatus": "Invalid payment status",
	}

	LoginMessages = Messages{
		"email.required": "Email is required!",
		"email.email":    "Invalid email!",
		"password":       "Password is required!",
	}

	ResetPasswordMessages = Messages{
		"newPassword.required":     "New password is required!",
		"newPassword.min":          "New password must be at least 8 character!",
		"confirmPassword.required": "Confirm password is required!",
		"confirmPassword.min":      "Confirm password must be at least 8 character!",
	}

	StatusMessages = Messages{
		"status": "Invalid status!",
	}
)
