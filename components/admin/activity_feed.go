package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-admin/pkg/activity"
)

// ActivityItem is one row of the overview activity feed.
type ActivityItem struct {
	User    string `json:"user"`
	Action  string `json:"action"`
	Details string `json:"details"`
	Ago     string `json:"ago"`
}

// ActivityFeed supplies recent admin activity for the overview page.
type ActivityFeed interface {
	Recent(ctx context.Context, viewer ViewerContext, limit int) ([]ActivityItem, error)
}

// StaticActivityFeed serves a fixed item list.
type StaticActivityFeed struct {
	Items []ActivityItem
}

// Recent returns up to limit items.
func (f StaticActivityFeed) Recent(_ context.Context, _ ViewerContext, limit int) ([]ActivityItem, error) {
	if limit <= 0 || limit > len(f.Items) {
		limit = len(f.Items)
	}
	out := make([]ActivityItem, limit)
	copy(out, f.Items[:limit])
	return out, nil
}

// HookActivityFeed reads the feed from a capture hook wired into the
// service's activity hooks, so the overview shows real mutations.
type HookActivityFeed struct {
	Capture *activity.CaptureHook
	Now     func() time.Time
}

// Recent maps captured events to feed items, newest first.
func (f HookActivityFeed) Recent(_ context.Context, _ ViewerContext, limit int) ([]ActivityItem, error) {
	if f.Capture == nil {
		return nil, nil
	}
	now := time.Now().UTC()
	if f.Now != nil {
		now = f.Now()
	}
	events := f.Capture.Recent(limit)
	items := make([]ActivityItem, 0, len(events))
	for _, event := range events {
		items = append(items, ActivityItem{
			User:    eventUser(event),
			Action:  event.Verb,
			Details: eventDetails(event),
			Ago:     humanizeAgo(now.Sub(event.OccurredAt)),
		})
	}
	return items, nil
}

func eventUser(event activity.Event) string {
	if event.UserID != "" {
		return event.UserID
	}
	if event.ActorID != "" {
		return event.ActorID
	}
	return "system"
}

func eventDetails(event activity.Event) string {
	resource, _ := event.Metadata["resource_id"].(string)
	switch {
	case resource != "" && event.ObjectID != "":
		return resource + "/" + event.ObjectID
	case resource != "":
		return resource
	default:
		return event.ObjectID
	}
}

func humanizeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// DefaultActivityFeed is the placeholder feed shown before any activity
// hooks are wired.
func DefaultActivityFeed() StaticActivityFeed {
	return StaticActivityFeed{Items: []ActivityItem{
		{User: "system", Action: "admin.panel.start", Details: "panel bootstrapped", Ago: "just now"},
	}}
}
