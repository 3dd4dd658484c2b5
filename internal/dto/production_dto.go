package dto

import "github.com/shopspring/decimal"

type CreateProductionPlanRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required,gt=0"`
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type UpdateProductionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}

type ProductionPlanFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductionPlanResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	RecipeUnitCost decimal.Decimal `json:"recipe_unit_cost"`
	BatchCost      decimal.Decimal `json:"batch_cost"`
	Status         string          `json:"status"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	CreatedAt      string          `json:"created_at"`
}

type ProductionPlanListResponse struct {
	Data  []ProductionPlanResponse `json:"data"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}
