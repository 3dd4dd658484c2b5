package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Production plan statuses. Planned plans may start or be cancelled;
// completed and cancelled are terminal.
const (
	ProductionPlanned    = "planned"
	ProductionInProgress = "in_progress"
	ProductionCompleted  = "completed"
	ProductionCancelled  = "cancelled"
)

// ProductionPlan schedules a manufacturing batch. BatchCost is computed once
// at creation from the recipe's unit cost at that time (snapshot semantics —
// it does not follow later recipe changes).
type ProductionPlan struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	// RecipeUnitCost is the recipe unit cost snapshotted at creation.
	RecipeUnitCost decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	BatchCost      decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'planned'"`
	StartDate      time.Time       `gorm:"not null"`
	EndDate        time.Time       `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
