package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// SaveListPreferencesInput captures viewer overrides for list customization.
type SaveListPreferencesInput struct {
	Viewer      admin.ViewerContext   `json:"viewer"`
	ResourceID  string                `json:"resource_id"`
	Preferences admin.ListPreferences `json:"preferences"`
}

type preferenceService interface {
	SavePreferences(ctx context.Context, viewer admin.ViewerContext, resourceID string, prefs admin.ListPreferences) error
}

// SaveListPreferencesCommand persists per-user list preferences.
type SaveListPreferencesCommand struct {
	service   preferenceService
	telemetry Telemetry
}

// NewSaveListPreferencesCommand creates the command.
func NewSaveListPreferencesCommand(service preferenceService, telemetry Telemetry) *SaveListPreferencesCommand {
	return &SaveListPreferencesCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveListPreferencesInput] = (*SaveListPreferencesCommand)(nil)

// Execute stores the provided preferences for the viewer.
func (c *SaveListPreferencesCommand) Execute(ctx context.Context, msg SaveListPreferencesInput) error {
	if c.service == nil {
		return errors.New("preferences command requires service")
	}
	if msg.Viewer.UserID == "" {
		return errors.New("preferences command requires viewer user id")
	}
	if err := c.service.SavePreferences(ctx, msg.Viewer, msg.ResourceID, msg.Preferences); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.command.save_preferences", map[string]any{
		"user_id":     msg.Viewer.UserID,
		"resource_id": msg.ResourceID,
		"hidden_cnt":  len(msg.Preferences.HiddenColumns),
	})
	return nil
}
