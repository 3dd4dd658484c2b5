package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a finished good offered for sale.
// CostPerUnit is derived from TotalCost / OrderQuantity with the same
// zero-guard as RawMaterial.UnitPrice.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	SKU           *string   `gorm:"uniqueIndex"`
	Category      string    `gorm:"not null"`
	OrderQuantity decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPerUnit   decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Unit          string          `gorm:"not null;default:'unit'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
