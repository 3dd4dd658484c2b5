package model

import (
	"time"

	"github.com/google/uuid"
)

// Staff request states. Pending requests may be approved or rejected by the
// owner only; active and rejected are terminal.
const (
	StaffPending  = "pending"
	StaffActive   = "active"
	StaffRejected = "rejected"
)

// StaffRequest gates a staff account behind owner approval. Approval flips
// the request to active and activates the linked User in the same transaction.
type StaffRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name       string    `gorm:"not null"`
	Email      string    `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *User `gorm:"foreignKey:UserID"`
}
