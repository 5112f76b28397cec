package commands

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// SeedAdminInput controls bootstrap behavior.
type SeedAdminInput struct {
	SeedRecords bool
}

// SeedAdminCommand registers the demo resources and optionally seeds starter
// records.
type SeedAdminCommand struct {
	registry  *admin.Registry
	store     admin.RecordStore
	telemetry Telemetry
}

// NewSeedAdminCommand wires dependencies.
func NewSeedAdminCommand(registry *admin.Registry, store admin.RecordStore, telemetry Telemetry) *SeedAdminCommand {
	return &SeedAdminCommand{
		registry:  registry,
		store:     store,
		telemetry: normalizeTelemetry(telemetry),
	}
}

var _ gocommand.Commander[SeedAdminInput] = (*SeedAdminCommand)(nil)

// Execute runs the bootstrap pipeline.
func (c *SeedAdminCommand) Execute(ctx context.Context, msg SeedAdminInput) error {
	if c.registry == nil {
		return errors.New("seed command requires registry")
	}
	if err := admin.RegisterDefaultResources(c.registry); err != nil {
		return err
	}
	if msg.SeedRecords {
		if err := admin.SeedRecords(ctx, c.store); err != nil {
			return err
		}
	}
	c.telemetry.Record(ctx, "admin.command.seed", map[string]any{"seed_records": msg.SeedRecords})
	return nil
}
