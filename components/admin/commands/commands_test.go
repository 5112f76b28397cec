package commands

import (
	"context"
	"errors"
	"testing"

	admin "github.com/goliatone/go-admin/components/admin"
)

func TestSeedAdminCommand(t *testing.T) {
	registry := admin.NewRegistry()
	store := admin.NewMemoryRecordStore()
	telemetry := &stubTelemetry{}
	cmd := NewSeedAdminCommand(registry, store, telemetry)
	if err := cmd.Execute(context.Background(), SeedAdminInput{SeedRecords: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := len(registry.Resources()); got != len(admin.DefaultResources()) {
		t.Fatalf("expected %d resources, got %d", len(admin.DefaultResources()), got)
	}
	result, err := store.ListRecords(context.Background(), admin.ListRecordsInput{ResourceID: "Users"})
	if err != nil {
		t.Fatalf("ListRecords returned error: %v", err)
	}
	if result.Total == 0 {
		t.Fatalf("expected seeded records")
	}
	if telemetry.calls == 0 {
		t.Fatalf("expected telemetry to record events")
	}
}

func TestSeedAdminCommandRequiresRegistry(t *testing.T) {
	cmd := NewSeedAdminCommand(nil, nil, nil)
	if err := cmd.Execute(context.Background(), SeedAdminInput{}); err == nil {
		t.Fatalf("expected an error without a registry")
	}
}

func TestCreateRecordCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewCreateRecordCommand(service, nil)
	req := admin.CreateRecordRequest{ResourceID: "Users", Params: map[string]any{"email": "ada@example.com"}}
	if err := cmd.Execute(context.Background(), req); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.createCalls != 1 {
		t.Fatalf("expected create call")
	}
}

func TestUpdateRecordCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewUpdateRecordCommand(service, nil)
	if err := cmd.Execute(context.Background(), UpdateRecordInput{
		ResourceID: "Users",
		RecordID:   "r-1",
		Params:     map[string]any{"name": "Ada"},
		ActorID:    "actor-1",
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.updateCalls != 1 {
		t.Fatalf("expected update call")
	}
	if service.lastUpdate.ActorID != "actor-1" {
		t.Fatalf("expected actor forwarded, got %+v", service.lastUpdate)
	}
}

func TestUpdateRecordCommandRequiresRecordID(t *testing.T) {
	cmd := NewUpdateRecordCommand(&stubService{}, nil)
	if err := cmd.Execute(context.Background(), UpdateRecordInput{ResourceID: "Users"}); err == nil {
		t.Fatalf("expected an error without a record id")
	}
}

func TestDeleteRecordCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewDeleteRecordCommand(service, nil)
	if err := cmd.Execute(context.Background(), DeleteRecordInput{ResourceID: "Users", RecordID: "r-1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.deleteCalls != 1 {
		t.Fatalf("expected delete call")
	}
}

func TestBulkDeleteRecordsCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewBulkDeleteRecordsCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), BulkDeleteRecordsInput{
		ResourceID: "Users",
		RecordIDs:  []string{"r-1", "r-2"},
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.bulkCalls != 1 {
		t.Fatalf("expected bulk delete call")
	}
	if telemetry.calls != 1 {
		t.Fatalf("expected telemetry even for clean runs")
	}
}

func TestBulkDeleteRecordsCommandSurfacesPartialFailure(t *testing.T) {
	boom := errors.New("gone already")
	service := &stubService{bulkErr: boom}
	telemetry := &stubTelemetry{}
	cmd := NewBulkDeleteRecordsCommand(service, telemetry)
	err := cmd.Execute(context.Background(), BulkDeleteRecordsInput{
		ResourceID: "Users",
		RecordIDs:  []string{"r-1"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the service error surfaced, got %v", err)
	}
	if telemetry.calls != 1 {
		t.Fatalf("expected telemetry recorded before the error returns")
	}
}

func TestSaveListPreferencesCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSaveListPreferencesCommand(service, nil)
	if err := cmd.Execute(context.Background(), SaveListPreferencesInput{
		Viewer:      admin.ViewerContext{UserID: "u-1"},
		ResourceID:  "Users",
		Preferences: admin.ListPreferences{PerPage: 25},
	}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.prefCalls != 1 {
		t.Fatalf("expected preferences call")
	}
}

func TestSaveListPreferencesCommandRequiresViewer(t *testing.T) {
	cmd := NewSaveListPreferencesCommand(&stubService{}, nil)
	if err := cmd.Execute(context.Background(), SaveListPreferencesInput{ResourceID: "Users"}); err == nil {
		t.Fatalf("expected an error without a viewer")
	}
}

type stubService struct {
	createCalls int
	updateCalls int
	deleteCalls int
	bulkCalls   int
	prefCalls   int
	bulkErr     error
	lastUpdate  admin.UpdateRecordRequest
}

func (s *stubService) CreateRecord(_ context.Context, req admin.CreateRecordRequest) (admin.Record, error) {
	s.createCalls++
	return admin.Record{ID: "r-new", ResourceID: req.ResourceID, Params: req.Params}, nil
}

func (s *stubService) UpdateRecord(_ context.Context, req admin.UpdateRecordRequest) (admin.Record, error) {
	s.updateCalls++
	s.lastUpdate = req
	return admin.Record{ID: req.RecordID, ResourceID: req.ResourceID}, nil
}

func (s *stubService) DeleteRecord(context.Context, admin.DeleteRecordRequest) error {
	s.deleteCalls++
	return nil
}

func (s *stubService) BulkDeleteRecords(_ context.Context, req admin.BulkDeleteRecordsRequest) (int, error) {
	s.bulkCalls++
	if s.bulkErr != nil {
		return 0, s.bulkErr
	}
	return len(req.RecordIDs), nil
}

func (s *stubService) SavePreferences(context.Context, admin.ViewerContext, string, admin.ListPreferences) error {
	s.prefCalls++
	return nil
}

type stubTelemetry struct {
	calls int
}

func (s *stubTelemetry) Record(context.Context, string, map[string]any) {
	s.calls++
}
