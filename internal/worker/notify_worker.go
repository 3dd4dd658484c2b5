package worker

// notify_worker.go
// Delivers the email copy of a domain notification. Delivery is best-effort:
// the notification row already exists, this only moves its delivery_status
// through queued → sent | failed, with exponential backoff between attempts.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"insygth/internal/infra"
	"insygth/internal/model"
	"insygth/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxDeliveryRetries before a queued email is abandoned to the DLQ.
const MaxDeliveryRetries = 5

// computeRetryBackoff doubles per attempt: 1m, 2m, 4m, 8m, capped at 30m.
func computeRetryBackoff(retryCount int) time.Duration {
	d := time.Minute << uint(retryCount-1)
	if d > 30*time.Minute {
		return 30 * time.Minute
	}
	return d
}

// NotifyWorker sends notification emails through the SMTP circuit breaker.
type NotifyWorker struct {
	notifications repository.NotificationRepository
	mailer        *infra.Mailer
	cb            *infra.CircuitBreaker
	rdb           *redis.Client
}

func NewNotifyWorker(
	notifications repository.NotificationRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	rdb *redis.Client,
) *NotifyWorker {
	return &NotifyWorker{notifications: notifications, mailer: mailer, cb: cb, rdb: rdb}
}

// Process handles one dequeued email job.
func (w *NotifyWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_worker: invalid payload")
		return
	}
	id, err := uuid.Parse(payload.NotificationID)
	if err != nil {
		log.Error().Str("notification_id", payload.NotificationID).Msg("notify_worker: invalid notification id")
		return
	}

	n, err := w.notifications.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("notification_id", id.String()).Msg("notify_worker: notification not found")
		return
	}
	w.Deliver(ctx, n)
}

// Deliver attempts the SMTP send and records the outcome on the notification
// row. Shared by the pool worker and the retry cron.
func (w *NotifyWorker) Deliver(ctx context.Context, n *model.Notification) {
	if n.Email == nil || *n.Email == "" || n.DeliveryStatus != model.DeliveryQueued {
		return
	}

	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(*n.Email, n.Title, n.Message)
	})

	if sendErr == nil {
		n.DeliveryStatus = model.DeliverySent
		n.NextRetryAt = nil
		n.LastError = nil
		if err := w.notifications.Update(ctx, n); err != nil {
			log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("notify_worker: failed to record sent status")
		}
		log.Info().Str("to", *n.Email).Str("notification_id", n.ID.String()).Msg("notify_worker: email sent")
		return
	}

	n.RetryCount++
	errMsg := sendErr.Error()
	n.LastError = &errMsg

	if n.RetryCount >= MaxDeliveryRetries {
		n.DeliveryStatus = model.DeliveryFailed
		n.NextRetryAt = nil
		log.Error().
			Str("notification_id", n.ID.String()).
			Int("retries", n.RetryCount).
			Msg("notify_worker: max retries exceeded, abandoning delivery")

		payload := fmt.Sprintf(`{"notification_id":%q}`, n.ID.String())
		SendToDLQ(ctx, w.rdb, QueueNotifyEmail, "notify_email", []byte(payload),
			fmt.Sprintf("max retries (%d) exceeded: %s", MaxDeliveryRetries, errMsg),
			n.RetryCount)
	} else {
		next := time.Now().Add(computeRetryBackoff(n.RetryCount))
		n.NextRetryAt = &next
		log.Warn().
			Str("notification_id", n.ID.String()).
			Int("retry_count", n.RetryCount).
			Time("next_retry_at", next).
			Msg("notify_worker: send failed, scheduled next attempt")
	}

	if err := w.notifications.Update(ctx, n); err != nil {
		log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("notify_worker: failed to record delivery failure")
	}
}
