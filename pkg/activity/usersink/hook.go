// Package usersink bridges admin activity events into a go-users activity
// sink so panel mutations land in the host application's audit trail.
package usersink

import (
	"context"

	"github.com/goliatone/go-admin/pkg/activity"
	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

// Sink persists activity records, usually go-users' activity repository.
type Sink interface {
	Log(ctx context.Context, record types.ActivityRecord) error
}

// Hook maps admin events onto go-users activity records.
type Hook struct {
	Sink Sink
}

var _ activity.Hook = Hook{}

// Notify converts and logs the event. Events without a verb, or hooks
// without a sink, are dropped silently.
func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil || event.Verb == "" {
		return nil
	}
	data := make(map[string]any, len(event.Metadata)+3)
	for key, value := range event.Metadata {
		data[key] = value
	}
	if event.DefinitionCode != "" {
		data["definition_code"] = event.DefinitionCode
	}
	if event.Locale != "" {
		data["locale"] = event.Locale
	}
	if len(event.Recipients) > 0 {
		data["recipients"] = event.Recipients
	}
	return h.Sink.Log(ctx, types.ActivityRecord{
		ActorID:    parseID(event.ActorID),
		UserID:     parseID(event.UserID),
		TenantID:   parseID(event.TenantID),
		Verb:       event.Verb,
		ObjectType: event.ObjectType,
		ObjectID:   event.ObjectID,
		Channel:    event.Channel,
		OccurredAt: event.OccurredAt,
		Data:       data,
	})
}

func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
