package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// BulkDeleteRecordsInput contains the bulk delete selection.
type BulkDeleteRecordsInput struct {
	ResourceID string              `json:"resource_id"`
	RecordIDs  []string            `json:"record_ids"`
	Viewer     admin.ViewerContext `json:"-"`
	ActorID    string              `json:"actor_id"`
	UserID     string              `json:"user_id"`
	TenantID   string              `json:"tenant_id"`
}

type bulkDeleteService interface {
	BulkDeleteRecords(ctx context.Context, req admin.BulkDeleteRecordsRequest) (int, error)
}

// BulkDeleteRecordsCommand wraps Service.BulkDeleteRecords. Partial failures
// surface as the service's joined error after the telemetry event records how
// many records actually went away.
type BulkDeleteRecordsCommand struct {
	service   bulkDeleteService
	telemetry Telemetry
}

// NewBulkDeleteRecordsCommand builds the command.
func NewBulkDeleteRecordsCommand(service bulkDeleteService, telemetry Telemetry) *BulkDeleteRecordsCommand {
	return &BulkDeleteRecordsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[BulkDeleteRecordsInput] = (*BulkDeleteRecordsCommand)(nil)

// Execute removes the selection.
func (c *BulkDeleteRecordsCommand) Execute(ctx context.Context, msg BulkDeleteRecordsInput) error {
	if c.service == nil {
		return errors.New("bulk delete command requires service")
	}
	if len(msg.RecordIDs) == 0 {
		return errors.New("bulk delete command requires record ids")
	}
	ctx = admin.ContextWithActivity(ctx, admin.ActivityContext{
		ActorID:  msg.ActorID,
		UserID:   msg.UserID,
		TenantID: msg.TenantID,
	})
	deleted, err := c.service.BulkDeleteRecords(ctx, admin.BulkDeleteRecordsRequest{
		ResourceID: msg.ResourceID,
		RecordIDs:  msg.RecordIDs,
		Viewer:     msg.Viewer,
		ActorID:    msg.ActorID,
		UserID:     msg.UserID,
		TenantID:   msg.TenantID,
	})
	c.telemetry.Record(ctx, "admin.command.bulk_delete", map[string]any{
		"resource_id": msg.ResourceID,
		"requested":   len(msg.RecordIDs),
		"deleted":     deleted,
	})
	return err
}
