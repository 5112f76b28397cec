package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// DeleteRecordInput identifies the record to remove.
type DeleteRecordInput struct {
	ResourceID string              `json:"resource_id"`
	RecordID   string              `json:"record_id"`
	Viewer     admin.ViewerContext `json:"-"`
	ActorID    string              `json:"actor_id"`
	UserID     string              `json:"user_id"`
	TenantID   string              `json:"tenant_id"`
}

type deleteService interface {
	DeleteRecord(ctx context.Context, req admin.DeleteRecordRequest) error
}

// DeleteRecordCommand removes records through the service and records
// telemetry for auditing purposes.
type DeleteRecordCommand struct {
	service   deleteService
	telemetry Telemetry
}

// NewDeleteRecordCommand builds a command instance.
func NewDeleteRecordCommand(service deleteService, telemetry Telemetry) *DeleteRecordCommand {
	return &DeleteRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteRecordInput] = (*DeleteRecordCommand)(nil)

// Execute removes the record.
func (c *DeleteRecordCommand) Execute(ctx context.Context, msg DeleteRecordInput) error {
	if c.service == nil {
		return errors.New("delete command requires service")
	}
	if msg.RecordID == "" {
		return errors.New("delete command requires record id")
	}
	ctx = admin.ContextWithActivity(ctx, admin.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	if err := c.service.DeleteRecord(ctx, admin.DeleteRecordRequest{
		ResourceID: msg.ResourceID,
		RecordID:   msg.RecordID,
		Viewer:     msg.Viewer,
		ActorID:    msg.ActorID,
		UserID:     msg.UserID,
		TenantID:   msg.TenantID,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.command.delete_record", map[string]any{
		"resource_id": msg.ResourceID,
		"record_id":   msg.RecordID,
	})
	return nil
}
