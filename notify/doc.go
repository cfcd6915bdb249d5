// Package notify manages the notification group summary of the messaging client.
//
// Message notifications are posted under one group, and the platform shows a
// summary entry for that group. The summary is a placeholder with ID
// SummaryID (-1). When the last real notification is dismissed, the summary is
// left behind. TryCancelSummary clears the tray in that state.
//
// # Trays
//
// The platform notification service is abstracted as a Tray:
//
//	type Tray interface {
//	    Active(ctx context.Context) ([]Notification, error)
//	    CancelAll(ctx context.Context) error
//	}
//
// Two implementations are included. MemoryTray keeps notifications in
// process. RedisTray stores them in a Redis hash, so several processes can
// share one tray.
//
// # Usage
//
//	tray, err := notify.NewRedisTray(opts)
//	if err != nil {
//	    return err
//	}
//	defer helpers.CloseWithLog(tray, logger, "redis tray")
//
//	// after a message notification is dismissed
//	notify.TryCancelSummary(ctx, tray,
//	    notify.WithLogger(logger),
//	    notify.WithTracer(otel.Tracer("notify")),
//	)
//
// TryCancelSummary never returns an error. Tray failures are logged and the
// tray is left as it was.
package notify
