package admin

import "context"

// NotificationsClient publishes record events to an external notification
// bus.
type NotificationsClient interface {
	PublishAdminEvent(ctx context.Context, channel string, event RecordEvent) error
}

// NotificationsHook forwards record events to a notifications client. A nil
// client makes the hook a no-op, and publish failures never propagate to the
// mutation path.
type NotificationsHook struct {
	Client  NotificationsClient
	Channel string
}

var _ RefreshHook = NotificationsHook{}

// RecordChanged publishes the event.
func (h NotificationsHook) RecordChanged(event RecordEvent) {
	if h.Client == nil {
		return
	}
	channel := h.Channel
	if channel == "" {
		channel = "admin.records"
	}
	_ = h.Client.PublishAdminEvent(context.Background(), channel, event)
}
