// Package activity defines the audit events the admin panel emits after
// record mutations and the hook plumbing that delivers them.
package activity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Event is one audit entry. Verb is required; everything else is optional
// and passed through to sinks as-is after normalization.
type Event struct {
	Verb           string         `json:"verb"`
	ActorID        string         `json:"actor_id,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	TenantID       string         `json:"tenant_id,omitempty"`
	ObjectType     string         `json:"object_type,omitempty"`
	ObjectID       string         `json:"object_id,omitempty"`
	Channel        string         `json:"channel,omitempty"`
	Locale         string         `json:"locale,omitempty"`
	DefinitionCode string         `json:"definition_code,omitempty"`
	Recipients     []string       `json:"recipients,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// Hook receives normalized events. Implementations must not block for long;
// emission happens on the mutating request path.
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(ctx context.Context, event Event) error

// Notify calls f.
func (f HookFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Hooks fans an event out to every hook after normalizing it once. Events
// without a verb are dropped. Hook errors are joined, never short-circuited.
type Hooks []Hook

// Notify normalizes the event and delivers it to each non-nil hook.
func (h Hooks) Notify(ctx context.Context, event Event) error {
	normalized := NormalizeEvent(event)
	if normalized.Verb == "" {
		return nil
	}
	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(ctx, normalized); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NormalizeEvent trims identifying fields, stamps a missing occurrence time,
// and clones the metadata and recipients so hooks cannot share mutable state
// with the emitter.
func NormalizeEvent(event Event) Event {
	event.Verb = strings.TrimSpace(event.Verb)
	event.ActorID = strings.TrimSpace(event.ActorID)
	event.UserID = strings.TrimSpace(event.UserID)
	event.TenantID = strings.TrimSpace(event.TenantID)
	event.ObjectType = strings.TrimSpace(event.ObjectType)
	event.ObjectID = strings.TrimSpace(event.ObjectID)
	event.Channel = strings.TrimSpace(event.Channel)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if event.Metadata != nil {
		metadata := make(map[string]any, len(event.Metadata))
		for key, value := range event.Metadata {
			metadata[key] = value
		}
		event.Metadata = metadata
	}
	if event.Recipients != nil {
		recipients := make([]string, len(event.Recipients))
		copy(recipients, event.Recipients)
		event.Recipients = recipients
	}
	return event
}
