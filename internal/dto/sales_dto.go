package dto

import "github.com/shopspring/decimal"

type CreateInvoiceRequest struct {
	ProductID           string          `json:"product_id"             validate:"required,uuid"`
	Quantity            decimal.Decimal `json:"quantity"               validate:"required,gt=0"`
	SellingPricePerUnit decimal.Decimal `json:"selling_price_per_unit" validate:"required,gt=0"`
	PaymentStatus       string          `json:"payment_status"         validate:"required,oneof=pending paid"`
	CustomerName        *string         `json:"customer_name"`
	CustomerEmail       *string         `json:"customer_email" validate:"omitempty,email"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=paid"`
}

type InvoiceFilter struct {
	PaymentStatus string `form:"payment_status"` // pending | paid | all
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type InvoiceResponse struct {
	ID                  string          `json:"id"`
	InvoiceNumber       int64           `json:"invoice_number"`
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name,omitempty"`
	Quantity            decimal.Decimal `json:"quantity"`
	SellingPricePerUnit decimal.Decimal `json:"selling_price_per_unit"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	PaymentStatus       string          `json:"payment_status"`
	CustomerName        *string         `json:"customer_name,omitempty"`
	CreatedAt           string          `json:"created_at"`
}

type InvoiceListResponse struct {
	Data  []InvoiceResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type ReceivableResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	InvoiceNumber int64           `json:"invoice_number,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
}

// ReceivablesSummaryResponse reports money still owed (pending only).
type ReceivablesSummaryResponse struct {
	Outstanding  decimal.Decimal `json:"outstanding"`
	PendingCount int64           `json:"pending_count"`
}
