package service

import (
	"context"
	"errors"

	"insygth/internal/dto"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Domain sentinel errors. Handlers map these to HTTP statuses; anything else
// is treated as an opaque storage error and surfaces as a 500.
var (
	// ErrNoRecipe distinguishes "no recipe exists for this product" from
	// "recipe legitimately costs zero". Production planning must fail on it
	// rather than record a zero-cost batch.
	ErrNoRecipe = errors.New("no recipe exists for this product")

	// ErrOwnerOnly rejects a staff-approval transition attempted by a
	// non-owner principal. State is left unchanged.
	ErrOwnerOnly = errors.New("only the owner can perform this action")

	ErrNotFound           = errors.New("record not found")
	ErrRecipeExists       = errors.New("a recipe already exists for this product")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("account is awaiting owner approval")
	ErrWrongRole          = errors.New("wrong sign-in endpoint for this account role")
)

// notFound normalizes GORM's record-not-found into the domain sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Notifier emits a domain notification. The concrete implementation persists
// the record and may fan out an email; services only see this one method.
type Notifier interface {
	Notify(ctx context.Context, ev dto.NotificationEvent) error
}

// notifyBestEffort emits ev and swallows any failure. Notification emission
// is never part of the transactional contract of a mutation: the persisted
// record stands even when the notifier is down.
func notifyBestEffort(ctx context.Context, n Notifier, ev dto.NotificationEvent) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, ev); err != nil {
		log.Warn().Err(err).Str("type", ev.Type).Msg("notification emission failed, ignoring")
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
