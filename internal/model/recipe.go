package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is the bill of materials for a product. Items carry both the
// declared component (MaterialID + Quantity) and the cost snapshot taken when
// the recipe was last computed. Costs do NOT track later raw material price
// changes; recomputation is an explicit action (refresh-cost).
//
// OutputUnits distinguishes the two costing modes:
//   - nil:     UnitCost == TotalMaterialCost (plain recipe, no output scaling)
//   - present: UnitCost == TotalMaterialCost / OutputUnits when > 0, else 0
type Recipe struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	OutputUnits       *decimal.Decimal `gorm:"type:decimal(12,3)"`
	TotalMaterialCost decimal.Decimal  `gorm:"type:decimal(12,4);not null"`
	UnitCost          decimal.Decimal  `gorm:"type:decimal(12,4);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items   []RecipeItem `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Product *Product     `gorm:"foreignKey:ProductID"`
}

// RecipeItem is one component of a recipe plus its cost snapshot.
// Position preserves the order components were declared in.
type RecipeItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	// UnitCost is the material's unit price as of the last computation.
	UnitCost decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Cost     decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Position int             `gorm:"not null"`

	Material *RawMaterial `gorm:"foreignKey:MaterialID"`
}
