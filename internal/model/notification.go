package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification delivery states for the async email channel.
// "none" means the notification is in-app only.
const (
	DeliveryNone   = "none"
	DeliveryQueued = "queued"
	DeliverySent   = "sent"
	DeliveryFailed = "failed"
)

// Notification is a domain event surfaced to the user. The record itself is
// persisted synchronously; email delivery (when Email is set) is best-effort
// and handled by the worker pool — its failure never affects the mutation
// that emitted the notification.
type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type    string    `gorm:"type:varchar(40);not null"`
	Title   string    `gorm:"not null"`
	Message string    `gorm:"not null"`
	Link    *string
	Read    bool `gorm:"not null;default:false;index"`

	// Email delivery — used by the notify worker and retry cron.
	Email          *string
	DeliveryStatus string     `gorm:"type:varchar(20);not null;default:'none'"`
	RetryCount     int        `gorm:"not null;default:0"`
	NextRetryAt    *time.Time `gorm:"column:next_retry_at"`
	LastError      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
