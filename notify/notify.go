package notify

import (
	"context"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// SummaryID is the reserved ID of the group summary placeholder.
const SummaryID = -1

// Notification is one entry in the notification tray.
type Notification struct {
	// ID is the platform notification ID. SummaryID marks the group summary.
	ID int `json:"id"`

	// Key uniquely identifies the entry within the tray.
	Key string `json:"key"`

	// GroupKey is the group the entry is filed under (optional).
	GroupKey string `json:"group_key,omitempty"`

	// Title is the visible title (optional).
	Title string `json:"title,omitempty"`

	// PostedAt is when the entry was posted.
	PostedAt time.Time `json:"posted_at"`
}

// IsSummary reports whether n is the group summary placeholder.
func (n Notification) IsSummary() bool {
	return n.ID == SummaryID
}

// Tray is the platform notification service.
type Tray interface {
	// Active returns the notifications currently shown.
	Active(ctx context.Context) ([]Notification, error)

	// CancelAll removes every notification.
	CancelAll(ctx context.Context) error
}

// OnlySummaryLeft reports whether active is empty or holds nothing but the
// group summary placeholder.
func OnlySummaryLeft(active []Notification) bool {
	return len(active) == 0 || (len(active) == 1 && active[0].IsSummary())
}

// TryCancelSummary clears the tray when no real notification is left under
// the group summary. It issues at most one CancelAll.
//
// Errors from the tray are logged and otherwise ignored.
func TryCancelSummary(ctx context.Context, tray Tray, opts ...Option) {
	cfg := newConfig(opts...)
	logger := cfg.logger.With("component", "notify")

	var span trace.Span
	if cfg.tracer != nil {
		ctx, span = cfg.tracer.Start(ctx, "notify.try_cancel_summary")
		defer span.End()
	}

	logger.Debug("attempting to cancel notification summary")

	active, err := tray.Active(ctx)
	if err != nil {
		logger.Warn("failed to list active notifications", "error", err)
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "list active notifications")
		}
		return
	}

	logger.Debug("notification count", "count", len(active))
	cancel := OnlySummaryLeft(active)

	if span != nil {
		span.SetAttributes(
			attribute.Int("notify.active_count", len(active)),
			attribute.Bool("notify.cancelled", cancel),
		)
	}

	if !cancel {
		return
	}

	logger.Debug("cancelling the notification summary")

	result := "ok"
	if err := tray.CancelAll(ctx); err != nil {
		result = "error"
		logger.Warn("failed to cancel notifications", "error", err)
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancel all notifications")
		}
	}

	cfg.recordCancel(ctx, result)
}

// recordCancel increments the summary cancel counter if a meter is set.
func (c *config) recordCancel(ctx context.Context, result string) {
	if c.meter == nil {
		return
	}

	counter, err := c.meter.Int64Counter("notify.summary_cancels",
		metric.WithDescription("Number of cancel-all requests issued for an empty notification group"),
		metric.WithUnit("1"),
	)
	if err != nil {
		c.logger.Debug("failed to create summary cancel counter", "component", "notify", "error", err)
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(attribute.String("notify.result", result)))
}

// sortNotifications orders entries by posting time, then ID, then key.
func sortNotifications(list []Notification) {
	slices.SortFunc(list, func(a, b Notification) int {
		if c := a.PostedAt.Compare(b.PostedAt); c != 0 {
			return c
		}
		if a.ID != b.ID {
			if a.ID < b.ID {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Key, b.Key)
	})
}
