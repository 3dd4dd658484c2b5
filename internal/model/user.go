package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system accounts with role-based access.
// Role: "owner" | "staff"
// Staff accounts start inactive and are activated when the owner approves
// the linked StaffRequest.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	BusinessName *string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
