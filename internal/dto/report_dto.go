package dto

import "github.com/shopspring/decimal"

// BusinessSummaryResponse aggregates the dashboard headline figures.
type BusinessSummaryResponse struct {
	Revenue                decimal.Decimal `json:"revenue"`       // sum of paid invoices
	PendingRevenue         decimal.Decimal `json:"pending_revenue"` // sum of pending invoices
	Expenses               decimal.Decimal `json:"expenses"`
	OutstandingReceivables decimal.Decimal `json:"outstanding_receivables"`
	PlannedProductionCost  decimal.Decimal `json:"planned_production_cost"`
	InvoiceCount           int64           `json:"invoice_count"`
	MaterialCount          int64           `json:"material_count"`
	ProductCount           int64           `json:"product_count"`
}
