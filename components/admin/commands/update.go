package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// UpdateRecordInput captures record update payloads.
type UpdateRecordInput struct {
	ResourceID string              `json:"resource_id"`
	RecordID   string              `json:"record_id"`
	Params     map[string]any      `json:"params"`
	Viewer     admin.ViewerContext `json:"-"`
	ActorID    string              `json:"actor_id"`
	UserID     string              `json:"user_id"`
	TenantID   string              `json:"tenant_id"`
}

type updateService interface {
	UpdateRecord(ctx context.Context, req admin.UpdateRecordRequest) (admin.Record, error)
}

// UpdateRecordCommand wraps Service.UpdateRecord.
type UpdateRecordCommand struct {
	service   updateService
	telemetry Telemetry
}

// NewUpdateRecordCommand creates the command.
func NewUpdateRecordCommand(service updateService, telemetry Telemetry) *UpdateRecordCommand {
	return &UpdateRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateRecordInput] = (*UpdateRecordCommand)(nil)

// Execute merges the params over the stored record.
func (c *UpdateRecordCommand) Execute(ctx context.Context, msg UpdateRecordInput) error {
	if c.service == nil {
		return errors.New("update command requires service")
	}
	if msg.RecordID == "" {
		return errors.New("update command requires record id")
	}
	ctx = admin.ContextWithActivity(ctx, admin.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	req := admin.UpdateRecordRequest{
		ResourceID: msg.ResourceID,
		RecordID:   msg.RecordID,
		Params:     msg.Params,
		Viewer:     msg.Viewer,
		ActorID:    msg.ActorID,
		UserID:     msg.UserID,
		TenantID:   msg.TenantID,
	}
	if _, err := c.service.UpdateRecord(ctx, req); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.command.update_record", map[string]any{
		"resource_id": msg.ResourceID,
		"record_id":   msg.RecordID,
	})
	return nil
}
