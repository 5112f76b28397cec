package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	admin "github.com/goliatone/go-admin/components/admin"
	"github.com/goliatone/go-admin/components/admin/commands"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

func TestHandleCreateRecord(t *testing.T) {
	create := &stubCommander[admin.CreateRecordRequest]{}
	api := &Handlers{Create: create}
	payload := admin.CreateRecordRequest{ResourceID: "Users", Params: map[string]any{"email": "ada@example.com"}}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleCreateRecord(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if create.calls != 1 {
		t.Fatalf("expected create to execute")
	}
	if create.last.ResourceID != "Users" {
		t.Fatalf("expected payload propagation, got %+v", create.last)
	}
}

func TestHandleCreateRecordBadPayload(t *testing.T) {
	api := &Handlers{Create: &stubCommander[admin.CreateRecordRequest]{}}
	req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	api.HandleCreateRecord(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleUpdateRecord(t *testing.T) {
	update := &stubCommander[commands.UpdateRecordInput]{}
	api := &Handlers{Update: update}
	payload := commands.UpdateRecordInput{ResourceID: "Users", Params: map[string]any{"name": "Ada"}}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/records/r-1", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleUpdateRecord(rec, req, "r-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if update.last.RecordID != "r-1" {
		t.Fatalf("expected record id from the path, got %+v", update.last)
	}
}

func TestHandleDeleteRecord(t *testing.T) {
	remove := &stubCommander[commands.DeleteRecordInput]{}
	api := &Handlers{Delete: remove}
	req := httptest.NewRequest(http.MethodDelete, "/resources/Users/records/r-1", nil)
	rec := httptest.NewRecorder()
	api.HandleDeleteRecord(rec, req, "Users", "r-1")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if remove.last.ResourceID != "Users" || remove.last.RecordID != "r-1" {
		t.Fatalf("expected ids propagated, got %+v", remove.last)
	}
}

func TestHandleBulkDeleteRecords(t *testing.T) {
	bulk := &stubCommander[commands.BulkDeleteRecordsInput]{}
	api := &Handlers{BulkDelete: bulk}
	payload := commands.BulkDeleteRecordsInput{ResourceID: "Users", RecordIDs: []string{"r-1", "r-2"}}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/records/bulk-delete", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleBulkDeleteRecords(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(bulk.last.RecordIDs) != 2 {
		t.Fatalf("expected record ids propagated, got %+v", bulk.last)
	}
}

func TestHandleSavePreferences(t *testing.T) {
	prefs := &stubCommander[commands.SaveListPreferencesInput]{}
	api := &Handlers{Preferences: prefs}
	payload := commands.SaveListPreferencesInput{
		Viewer:      admin.ViewerContext{UserID: "u-1"},
		ResourceID:  "Users",
		Preferences: admin.ListPreferences{PerPage: 50},
	}
	buf, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/preferences", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	api.HandleSavePreferences(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if prefs.last.Preferences.PerPage != 50 {
		t.Fatalf("expected preferences propagated, got %+v", prefs.last)
	}
}
