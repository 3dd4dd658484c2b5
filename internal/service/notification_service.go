package service

import (
	"context"
	"time"

	"insygth/internal/dto"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DeliveryQueue hands a notification's email job to the async worker pool.
// The worker package implements it; services never touch Redis directly.
type DeliveryQueue interface {
	EnqueueEmail(ctx context.Context, notificationID uuid.UUID) error
}

// NotificationService persists domain notifications and exposes the inbox
// operations. It is also the concrete Notifier the mutating services emit
// through.
type NotificationService interface {
	Notifier
	Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	List(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	repo        repository.NotificationRepository
	queue       DeliveryQueue
	notifyEmail string
}

// NewNotificationService wires the inbox store and the delivery queue.
// notifyEmail, when non-empty, receives an email copy of every notification.
func NewNotificationService(repo repository.NotificationRepository, queue DeliveryQueue, notifyEmail string) NotificationService {
	return &notificationService{repo: repo, queue: queue, notifyEmail: notifyEmail}
}

// Notify persists the notification synchronously and queues email delivery.
// A queue failure is logged and ignored: the retry cron re-scans queued rows,
// so the email is delayed, not lost.
func (s *notificationService) Notify(ctx context.Context, ev dto.NotificationEvent) error {
	n := &model.Notification{
		Type:           ev.Type,
		Title:          ev.Title,
		Message:        ev.Message,
		Link:           ev.Link,
		DeliveryStatus: model.DeliveryNone,
	}
	if s.notifyEmail != "" {
		now := time.Now()
		email := s.notifyEmail
		n.Email = &email
		n.DeliveryStatus = model.DeliveryQueued
		n.NextRetryAt = &now
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if n.DeliveryStatus == model.DeliveryQueued && s.queue != nil {
		if err := s.queue.EnqueueEmail(ctx, n.ID); err != nil {
			log.Warn().Err(err).Str("notification_id", n.ID.String()).
				Msg("email enqueue failed, retry cron will pick it up")
		}
	}
	return nil
}

func (s *notificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if err := s.Notify(ctx, dto.NotificationEvent{
		Type:    req.Type,
		Title:   req.Title,
		Message: req.Message,
		Link:    req.Link,
	}); err != nil {
		return nil, err
	}
	// Notify does not return the created row; re-list is wasteful, so build
	// the response from the request. ID-less on purpose for manual creates.
	return &dto.NotificationResponse{
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Link:      req.Link,
		CreatedAt: time.Now().Format(time.RFC3339),
	}, nil
}

func (s *notificationService) List(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error) {
	notifications, total, unread, err := s.repo.List(ctx, unreadOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		items = append(items, dto.NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.NotificationListResponse{Data: items, Total: total, UnreadCount: unread}, nil
}

func (s *notificationService) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	return notFound(s.repo.SetRead(ctx, id, read))
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
