package worker

// retry_cron.go
// Periodic sweep over notifications whose email delivery failed transiently.
// Picks up rows in delivery_status=queued whose next_retry_at has elapsed and
// hands them back to the notify worker. This also covers notifications whose
// initial enqueue to Redis failed: they are stored with next_retry_at=now and
// the cron is the one that finds them.

import (
	"context"
	"time"

	"insygth/internal/infra"
	"insygth/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	retrySweepInterval = time.Minute
	retrySweepLimit    = 50
)

// RetryCron re-attempts queued email deliveries on a fixed interval.
type RetryCron struct {
	notifications repository.NotificationRepository
	nw            *NotifyWorker
	cb            *infra.CircuitBreaker
}

func NewRetryCron(notifications repository.NotificationRepository, nw *NotifyWorker, cb *infra.CircuitBreaker) *RetryCron {
	return &RetryCron{notifications: notifications, nw: nw, cb: cb}
}

// Start runs the sweep loop until ctx is cancelled.
func (c *RetryCron) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(retrySweepInterval)
		defer ticker.Stop()
		log.Info().Dur("interval", retrySweepInterval).Msg("retry_cron: started")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				c.sweep(ctx)
			}
		}
	}()
}

func (c *RetryCron) sweep(ctx context.Context) {
	// Skip the whole sweep while SMTP is known-bad; the rows keep their
	// next_retry_at and are picked up once the breaker lets traffic through.
	if c.cb.State() == infra.CBOpen {
		log.Warn().Msg("retry_cron: circuit breaker open, skipping sweep")
		return
	}

	pending, err := c.notifications.ListPendingDeliveries(ctx, time.Now(), retrySweepLimit)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to list pending deliveries")
		return
	}
	if len(pending) == 0 {
		return
	}

	log.Info().Int("count", len(pending)).Msg("retry_cron: retrying queued email deliveries")
	for i := range pending {
		c.nw.Deliver(ctx, &pending[i])
		// Stop mid-sweep if the breaker trips; the rest waits for the next tick.
		if c.cb.State() == infra.CBOpen {
			log.Warn().Msg("retry_cron: circuit breaker tripped mid-sweep, stopping")
			return
		}
	}
}
