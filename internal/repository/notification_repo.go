package repository

import (
	"context"
	"time"

	"insygth/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository is the data access contract for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	List(ctx context.Context, unreadOnly bool) ([]model.Notification, int64, int64, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	MarkAllRead(ctx context.Context) error
	Update(ctx context.Context, n *model.Notification) error
	// ListPendingDeliveries backs the retry cron: queued emails whose
	// next_retry_at has elapsed.
	ListPendingDeliveries(ctx context.Context, before time.Time, limit int) ([]model.Notification, error)
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).First(&n, id).Error
	return &n, err
}

func (r *notificationRepo) List(ctx context.Context, unreadOnly bool) ([]model.Notification, int64, int64, error) {
	var notifications []model.Notification
	var total, unread int64

	base := r.db.WithContext(ctx).Model(&model.Notification{})
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Notification{}).Where("read = false").Count(&unread).Error; err != nil {
		return nil, 0, 0, err
	}

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if unreadOnly {
		q = q.Where("read = false")
	}
	err := q.Find(&notifications).Error
	return notifications, total, unread, err
}

func (r *notificationRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update("read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).Where("read = false").Update("read", true).Error
}

func (r *notificationRepo) Update(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *notificationRepo) ListPendingDeliveries(ctx context.Context, before time.Time, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("delivery_status = ? AND next_retry_at IS NOT NULL AND next_retry_at <= ?", model.DeliveryQueued, before).
		Order("next_retry_at ASC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}
