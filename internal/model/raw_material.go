package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMaterial is a purchased input tracked per warehouse.
// UnitPrice is derived (TotalPrice / Quantity when Quantity > 0, else 0) and
// never accepted from clients — it is recomputed on every mutation that
// touches TotalPrice or Quantity.
type RawMaterial struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string          `gorm:"index;not null"`
	Category   string          `gorm:"not null"`
	Unit       string          `gorm:"not null;default:'kg'"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Warehouse  string          `gorm:"not null;default:'main'"`
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
