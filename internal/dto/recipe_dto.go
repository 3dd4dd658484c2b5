package dto

import "github.com/shopspring/decimal"

type RecipeComponentRequest struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity"    validate:"required,gt=0"`
}

type CreateRecipeRequest struct {
	ProductID  string                   `json:"product_id" validate:"required,uuid"`
	Components []RecipeComponentRequest `json:"components" validate:"required,min=1,dive"`
	// OutputUnits enables BOM mode: unit cost = total material cost / output units.
	OutputUnits *decimal.Decimal `json:"output_units" validate:"omitempty"`
}

type UpdateRecipeRequest struct {
	Components  []RecipeComponentRequest `json:"components"   validate:"required,min=1,dive"`
	OutputUnits *decimal.Decimal         `json:"output_units" validate:"omitempty"`
}

type BreakdownItemResponse struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name,omitempty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Quantity     decimal.Decimal `json:"quantity"`
	Cost         decimal.Decimal `json:"cost"`
}

type RecipeResponse struct {
	ID                string                  `json:"id"`
	ProductID         string                  `json:"product_id"`
	OutputUnits       *decimal.Decimal        `json:"output_units,omitempty"`
	Breakdown         []BreakdownItemResponse `json:"breakdown"`
	TotalMaterialCost decimal.Decimal         `json:"total_material_cost"`
	UnitCost          decimal.Decimal         `json:"unit_cost"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
}

type RecipeListResponse struct {
	Data  []RecipeResponse `json:"data"`
	Total int64            `json:"total"`
}
