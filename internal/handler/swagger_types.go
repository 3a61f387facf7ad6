package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// UpsertDiscountRequest is the body for PUT /tenant-discounts. A null rate
// removes the override.
type UpsertDiscountRequest struct {
	TenantID    string   `json:"tenantId" binding:"required" example:"3f1c2a9e-1111-4d4e-9d1b-aaaa00000001"`
	VendorName  string   `json:"vendorName" binding:"required" example:"Microsoft"`
	ProductName string   `json:"productName" binding:"required" example:"Microsoft 365 E5"`
	Rate        *float64 `json:"rate" example:"12.5"`
}

// DeleteDiscountRequest is the body for DELETE /tenant-discounts.
type DeleteDiscountRequest struct {
	TenantID    string `json:"tenantId" binding:"required" example:"3f1c2a9e-1111-4d4e-9d1b-aaaa00000001"`
	VendorName  string `json:"vendorName" binding:"required" example:"Microsoft"`
	ProductName string `json:"productName" binding:"required" example:"Microsoft 365 E5"`
}

// --- Response Types ---

// DiscountsResponse wraps the stored overrides grouped as
// tenantId -> productKey -> rate.
type DiscountsResponse struct {
	Discounts map[string]map[string]float64 `json:"discounts"`
}
