package httpapi

import (
	"encoding/json"
	"net/http"

	admin "github.com/goliatone/go-admin/components/admin"
	"github.com/goliatone/go-admin/components/admin/commands"
	gocommand "github.com/goliatone/go-command"
)

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	Create      gocommand.Commander[admin.CreateRecordRequest]
	Update      gocommand.Commander[commands.UpdateRecordInput]
	Delete      gocommand.Commander[commands.DeleteRecordInput]
	BulkDelete  gocommand.Commander[commands.BulkDeleteRecordsInput]
	Preferences gocommand.Commander[commands.SaveListPreferencesInput]
}

func (h *Handlers) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var payload admin.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Create.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleUpdateRecord(w http.ResponseWriter, r *http.Request, recordID string) {
	var payload commands.UpdateRecordInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	payload.RecordID = recordID
	if err := h.Update.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleDeleteRecord(w http.ResponseWriter, r *http.Request, resourceID, recordID string) {
	input := commands.DeleteRecordInput{ResourceID: resourceID, RecordID: recordID}
	if err := h.Delete.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleBulkDeleteRecords(w http.ResponseWriter, r *http.Request) {
	var payload commands.BulkDeleteRecordsInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.BulkDelete.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleSavePreferences(w http.ResponseWriter, r *http.Request) {
	var payload commands.SaveListPreferencesInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Preferences.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
