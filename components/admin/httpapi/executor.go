package httpapi

import (
	"context"
	"errors"

	admin "github.com/goliatone/go-admin/components/admin"
	"github.com/goliatone/go-admin/components/admin/commands"
	gocommand "github.com/goliatone/go-command"
)

// Executor abstracts the mutation commands for transports that mount their
// own routing, like the go-router adapter.
type Executor interface {
	Create(ctx context.Context, req admin.CreateRecordRequest) error
	Update(ctx context.Context, input commands.UpdateRecordInput) error
	Delete(ctx context.Context, input commands.DeleteRecordInput) error
	BulkDelete(ctx context.Context, input commands.BulkDeleteRecordsInput) error
	SavePreferences(ctx context.Context, input commands.SaveListPreferencesInput) error
}

// CommandExecutor implements Executor over the shared commands. Unset
// commanders reject their operation instead of panicking.
type CommandExecutor struct {
	CreateCommander      gocommand.Commander[admin.CreateRecordRequest]
	UpdateCommander      gocommand.Commander[commands.UpdateRecordInput]
	DeleteCommander      gocommand.Commander[commands.DeleteRecordInput]
	BulkDeleteCommander  gocommand.Commander[commands.BulkDeleteRecordsInput]
	PreferencesCommander gocommand.Commander[commands.SaveListPreferencesInput]
}

var _ Executor = (*CommandExecutor)(nil)

func (e *CommandExecutor) Create(ctx context.Context, req admin.CreateRecordRequest) error {
	if e.CreateCommander == nil {
		return errors.New("httpapi: create command not configured")
	}
	return e.CreateCommander.Execute(ctx, req)
}

func (e *CommandExecutor) Update(ctx context.Context, input commands.UpdateRecordInput) error {
	if e.UpdateCommander == nil {
		return errors.New("httpapi: update command not configured")
	}
	return e.UpdateCommander.Execute(ctx, input)
}

func (e *CommandExecutor) Delete(ctx context.Context, input commands.DeleteRecordInput) error {
	if e.DeleteCommander == nil {
		return errors.New("httpapi: delete command not configured")
	}
	return e.DeleteCommander.Execute(ctx, input)
}

func (e *CommandExecutor) BulkDelete(ctx context.Context, input commands.BulkDeleteRecordsInput) error {
	if e.BulkDeleteCommander == nil {
		return errors.New("httpapi: bulk delete command not configured")
	}
	return e.BulkDeleteCommander.Execute(ctx, input)
}

func (e *CommandExecutor) SavePreferences(ctx context.Context, input commands.SaveListPreferencesInput) error {
	if e.PreferencesCommander == nil {
		return errors.New("httpapi: preferences command not configured")
	}
	return e.PreferencesCommander.Execute(ctx, input)
}
