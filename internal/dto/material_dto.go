package dto

import "github.com/shopspring/decimal"

type CreateMaterialRequest struct {
	Name       string          `json:"name"        validate:"required,min=1"`
	Category   string          `json:"category"    validate:"required"`
	Unit       string          `json:"unit"        validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"    validate:"required,gt=0"`
	TotalPrice decimal.Decimal `json:"total_price" validate:"min=0"`
	Warehouse  string          `json:"warehouse"`
	ExpiresAt  *string         `json:"expires_at"  validate:"omitempty,datetime=2006-01-02"`
}

// UpdateMaterialRequest uses pointers so absent fields are left untouched.
// Unit price is always re-derived server-side; it cannot be set directly.
type UpdateMaterialRequest struct {
	Name       *string          `json:"name"        validate:"omitempty,min=1"`
	Category   *string          `json:"category"`
	Unit       *string          `json:"unit"`
	Quantity   *decimal.Decimal `json:"quantity"    validate:"omitempty,gt=0"`
	TotalPrice *decimal.Decimal `json:"total_price" validate:"omitempty,min=0"`
	Warehouse  *string          `json:"warehouse"`
	ExpiresAt  *string          `json:"expires_at"  validate:"omitempty,datetime=2006-01-02"`
}

type MaterialFilter struct {
	Name      string `form:"name"`
	Category  string `form:"category"`
	Warehouse string `form:"warehouse"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type MaterialResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Warehouse  string          `json:"warehouse"`
	ExpiresAt  *string         `json:"expires_at,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

type MaterialListResponse struct {
	Data  []MaterialResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
