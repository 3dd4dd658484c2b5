package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// SaleInvoice records a sale of a product.
// TotalAmount == SellingPricePerUnit * Quantity, computed server-side.
// A pending invoice creates a linked Receivable in the same transaction.
type SaleInvoice struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNumber       int64     `gorm:"uniqueIndex;not null"`
	ProductID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity            decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	SellingPricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentStatus       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CustomerName        *string
	CustomerEmail       *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
