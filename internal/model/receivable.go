package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receivable tracks money owed on a pending invoice ("to be paid").
// Created alongside a pending SaleInvoice; transitions pending → paid when
// the linked invoice is marked paid.
type Receivable struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Invoice *SaleInvoice `gorm:"foreignKey:InvoiceID"`
}
