package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

type createService interface {
	CreateRecord(ctx context.Context, req admin.CreateRecordRequest) (admin.Record, error)
}

// CreateRecordCommand wraps Service.CreateRecord so transports can create
// records without linking directly against the service.
type CreateRecordCommand struct {
	service   createService
	telemetry Telemetry
}

// NewCreateRecordCommand creates a command instance.
func NewCreateRecordCommand(service createService, telemetry Telemetry) *CreateRecordCommand {
	return &CreateRecordCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[admin.CreateRecordRequest] = (*CreateRecordCommand)(nil)

// Execute delegates to the admin service.
func (c *CreateRecordCommand) Execute(ctx context.Context, msg admin.CreateRecordRequest) error {
	if c.service == nil {
		return errors.New("create command requires service")
	}
	record, err := c.service.CreateRecord(ctx, msg)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.command.create_record", map[string]any{
		"resource_id": msg.ResourceID,
		"record_id":   record.ID,
	})
	return nil
}
