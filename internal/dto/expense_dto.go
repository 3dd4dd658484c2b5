package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Category    string          `json:"category"    validate:"required"`
	Description *string         `json:"description"`
	IncurredOn  string          `json:"incurred_on" validate:"required,datetime=2006-01-02"`
}

type ExpenseFilter struct {
	Category string `form:"category"`
	Month    string `form:"month" validate:"omitempty,datetime=2006-01"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	IncurredOn  string          `json:"incurred_on"`
	CreatedAt   string          `json:"created_at"`
}

type ExpenseListResponse struct {
	Data  []ExpenseResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type ExpenseCategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type ExpenseSummaryResponse struct {
	Month      string                 `json:"month,omitempty"`
	Total      decimal.Decimal        `json:"total"`
	ByCategory []ExpenseCategoryTotal `json:"by_category"`
}
