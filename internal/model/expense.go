package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a simple dated outgoing with no derived fields.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Category    string          `gorm:"index;not null"`
	Description *string
	IncurredOn  time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
}
