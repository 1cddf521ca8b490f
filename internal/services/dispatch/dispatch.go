// Package dispatch runs the delivery sequence for one lead: append the
// spreadsheet row, then send the SMS notification. Both sinks are
// best-effort; a failure is logged and never blocks the other sink or the
// webhook acknowledgment.
package dispatch

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/lifeline-restoration/call-intake-api/internal/services/leadextract"
)

// RecordAppender appends one lead as a row to the system of record.
type RecordAppender interface {
	AppendLead(ctx context.Context, lead leadextract.Lead) error
}

// Notifier sends a human-readable notification for one lead.
type Notifier interface {
	NotifyLead(ctx context.Context, lead leadextract.Lead) error
}

// Result reports the per-sink outcome of one delivery.
type Result struct {
	Recorded bool `json:"recorded"`
	Notified bool `json:"notified"`
}

// Dispatcher delivers leads to the two sinks and suppresses redelivered
// webhook events. Safe for concurrent use.
type Dispatcher struct {
	appender RecordAppender
	notifier Notifier
	seen     *cache.Cache
	timeout  time.Duration
	logger   zerolog.Logger
}

// New creates a Dispatcher. dedupeTTL is how long call IDs are remembered;
// timeout bounds both downstream calls for a single delivery.
func New(appender RecordAppender, notifier Notifier, dedupeTTL, timeout time.Duration, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		appender: appender,
		notifier: notifier,
		seen:     cache.New(dedupeTTL, dedupeTTL),
		timeout:  timeout,
		logger:   logger,
	}
}

// AlreadyDelivered marks callID as seen and reports whether it had been seen
// before. The platform retries webhook deliveries, and the spreadsheet is
// append-only, so a redelivered call must not produce a second row.
func (d *Dispatcher) AlreadyDelivered(callID string) bool {
	if callID == "" {
		return false
	}
	return d.seen.Add(callID, struct{}{}, cache.DefaultExpiration) != nil
}

// Deliver runs both sink calls sequentially. Sink errors are logged and
// reflected in the Result; Deliver itself never fails.
func (d *Dispatcher) Deliver(ctx context.Context, lead leadextract.Lead) Result {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var result Result
	if err := d.appender.AppendLead(ctx, lead); err != nil {
		d.logger.Error().Err(err).Str("leadId", lead.ID).Msg("Failed to append lead to sheet")
	} else {
		result.Recorded = true
	}

	if err := d.notifier.NotifyLead(ctx, lead); err != nil {
		d.logger.Error().Err(err).Str("leadId", lead.ID).Msg("Failed to send lead notification")
	} else {
		result.Notified = true
	}

	return result
}
