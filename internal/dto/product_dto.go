package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1"`
	SKU           *string         `json:"sku"            validate:"omitempty,min=1"`
	Category      string          `json:"category"       validate:"required"`
	OrderQuantity decimal.Decimal `json:"order_quantity" validate:"required,gt=0"`
	TotalCost     decimal.Decimal `json:"total_cost"     validate:"min=0"`
	Unit          string          `json:"unit"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=1"`
	SKU           *string          `json:"sku"`
	Category      *string          `json:"category"`
	OrderQuantity *decimal.Decimal `json:"order_quantity" validate:"omitempty,gt=0"`
	TotalCost     *decimal.Decimal `json:"total_cost"     validate:"omitempty,min=0"`
	Unit          *string          `json:"unit"`
}

type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           *string         `json:"sku,omitempty"`
	Category      string          `json:"category"`
	OrderQuantity decimal.Decimal `json:"order_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Unit          string          `json:"unit"`
	CreatedAt     string          `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
