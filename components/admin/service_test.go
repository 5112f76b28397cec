package admin

import (
	"context"
	"errors"
	"testing"
)

type fakeRecordStore struct {
	createFn func(input CreateRecordInput) (Record, error)
	updateFn func(input UpdateRecordInput) (Record, error)
	deleteFn func(resourceID, recordID string) error
	findFn   func(resourceID, recordID string) (Record, error)
	listFn   func(input ListRecordsInput) (ListResult, error)

	listCalls []ListRecordsInput
	deleted   []string
}

func (f *fakeRecordStore) CreateRecord(_ context.Context, input CreateRecordInput) (Record, error) {
	if f.createFn != nil {
		return f.createFn(input)
	}
	return Record{ID: "r1", ResourceID: input.ResourceID, Params: input.Params}, nil
}

func (f *fakeRecordStore) UpdateRecord(_ context.Context, input UpdateRecordInput) (Record, error) {
	if f.updateFn != nil {
		return f.updateFn(input)
	}
	return Record{ID: input.RecordID, ResourceID: input.ResourceID, Params: input.Params}, nil
}

func (f *fakeRecordStore) DeleteRecord(_ context.Context, resourceID, recordID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(resourceID, recordID)
	}
	f.deleted = append(f.deleted, recordID)
	return nil
}

func (f *fakeRecordStore) FindRecord(_ context.Context, resourceID, recordID string) (Record, error) {
	if f.findFn != nil {
		return f.findFn(resourceID, recordID)
	}
	return Record{ID: recordID, ResourceID: resourceID, Params: map[string]any{}}, nil
}

func (f *fakeRecordStore) ListRecords(_ context.Context, input ListRecordsInput) (ListResult, error) {
	f.listCalls = append(f.listCalls, input)
	if f.listFn != nil {
		return f.listFn(input)
	}
	return ListResult{}, nil
}

type allowListAuthorizer struct {
	resources map[string]bool
}

func (a allowListAuthorizer) CanAccessResource(_ ViewerContext, resourceID string) bool {
	return a.resources[resourceID]
}

func (a allowListAuthorizer) CanPerformAction(_ ViewerContext, resourceID, _ string) bool {
	return a.resources[resourceID]
}

type denyActionAuthorizer struct {
	denied map[string]bool
}

func (denyActionAuthorizer) CanAccessResource(ViewerContext, string) bool { return true }

func (a denyActionAuthorizer) CanPerformAction(_ ViewerContext, _ string, actionName string) bool {
	return !a.denied[actionName]
}

type collectingHook struct {
	events []RecordEvent
}

func (h *collectingHook) RecordChanged(event RecordEvent) {
	h.events = append(h.events, event)
}

var _ RefreshHook = (*collectingHook)(nil)

type testTelemetry struct {
	events []string
}

func (t *testTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	t.events = append(t.events, event)
}

func registryWithDefaults(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := RegisterDefaultResources(registry); err != nil {
		t.Fatalf("RegisterDefaultResources returned error: %v", err)
	}
	return registry
}

func TestListRecordsAppliesPreferredPaging(t *testing.T) {
	store := &fakeRecordStore{}
	prefs := NewInMemoryPreferenceStore()
	viewer := ViewerContext{UserID: "user-1"}
	_ = prefs.SaveListPreferences(context.Background(), viewer, "Users", ListPreferences{PerPage: 5, SortBy: "email", Direction: "desc"})

	service := NewService(Options{
		Registry:        registryWithDefaults(t),
		RecordStore:     store,
		PreferenceStore: prefs,
	})
	if _, err := service.ListRecords(context.Background(), ListRecordsRequest{ResourceID: "Users", Viewer: viewer}); err != nil {
		t.Fatalf("ListRecords returned error: %v", err)
	}
	if len(store.listCalls) != 1 {
		t.Fatalf("expected one store call, got %d", len(store.listCalls))
	}
	call := store.listCalls[0]
	if call.Limit != 5 || call.Offset != 0 {
		t.Fatalf("expected preferred paging, got %#v", call)
	}
	if call.SortBy != "email" || call.Direction != SortDesc {
		t.Fatalf("expected preferred sorting, got %#v", call)
	}
}

func TestListRecordsUnknownResource(t *testing.T) {
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: &fakeRecordStore{},
	})
	_, err := service.ListRecords(context.Background(), ListRecordsRequest{ResourceID: "Ghosts"})
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestListRecordsRequiresStore(t *testing.T) {
	service := NewService(Options{Registry: registryWithDefaults(t)})
	_, err := service.ListRecords(context.Background(), ListRecordsRequest{ResourceID: "Users"})
	if err == nil {
		t.Fatalf("expected error when record store missing")
	}
}

func TestCreateRecordValidatesBeforeStore(t *testing.T) {
	created := false
	store := &fakeRecordStore{
		createFn: func(input CreateRecordInput) (Record, error) {
			created = true
			return Record{ID: "r1", ResourceID: input.ResourceID, Params: input.Params}, nil
		},
	}
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: store,
	})
	_, err := service.CreateRecord(context.Background(), CreateRecordRequest{
		ResourceID: "Users",
		Params:     map[string]any{"name": "no email"},
	})
	if err == nil {
		t.Fatalf("expected validation error for missing required property")
	}
	if created {
		t.Fatalf("store must not be called when validation fails")
	}
}

func TestCreateRecordEmitsRefreshAndTelemetry(t *testing.T) {
	hook := &collectingHook{}
	telemetry := &testTelemetry{}
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: &fakeRecordStore{},
		RefreshHook: hook,
		Telemetry:   telemetry,
	})
	record, err := service.CreateRecord(context.Background(), CreateRecordRequest{
		ResourceID: "Users",
		Params:     map[string]any{"email": "kay@example.com"},
	})
	if err != nil {
		t.Fatalf("CreateRecord returned error: %v", err)
	}
	if record.ID == "" {
		t.Fatalf("expected created record id")
	}
	if len(hook.events) != 1 || hook.events[0].Action != "create" {
		t.Fatalf("expected one create refresh event, got %#v", hook.events)
	}
	found := false
	for _, event := range telemetry.events {
		if event == "admin.record.create" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected create telemetry, got %v", telemetry.events)
	}
}

func TestUpdateRecordValidatesMergedParams(t *testing.T) {
	var validated map[string]any
	store := &fakeRecordStore{
		findFn: func(resourceID, recordID string) (Record, error) {
			return Record{ID: recordID, ResourceID: resourceID, Params: map[string]any{"email": "kay@example.com"}}, nil
		},
	}
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: store,
		Validator: recordValidatorFunc(func(_ context.Context, _ Resource, params map[string]any) error {
			validated = params
			return nil
		}),
	})
	_, err := service.UpdateRecord(context.Background(), UpdateRecordRequest{
		ResourceID: "Users",
		RecordID:   "r1",
		Params:     map[string]any{"name": "Kay"},
	})
	if err != nil {
		t.Fatalf("UpdateRecord returned error: %v", err)
	}
	if validated["email"] != "kay@example.com" || validated["name"] != "Kay" {
		t.Fatalf("expected merged params validated, got %#v", validated)
	}
}

type recordValidatorFunc func(ctx context.Context, resource Resource, params map[string]any) error

func (f recordValidatorFunc) Validate(ctx context.Context, resource Resource, params map[string]any) error {
	return f(ctx, resource, params)
}

func TestUpdateRecordMissingRecord(t *testing.T) {
	store := &fakeRecordStore{
		findFn: func(resourceID, recordID string) (Record, error) {
			return Record{}, ErrRecordNotFound
		},
	}
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: store,
	})
	_, err := service.UpdateRecord(context.Background(), UpdateRecordRequest{ResourceID: "Users", RecordID: "missing"})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteRecordForbiddenAction(t *testing.T) {
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: &fakeRecordStore{},
		Authorizer:  denyActionAuthorizer{denied: map[string]bool{ActionDelete: true}},
	})
	err := service.DeleteRecord(context.Background(), DeleteRecordRequest{ResourceID: "Users", RecordID: "r1"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBulkDeleteRecordsAccumulatesFailures(t *testing.T) {
	store := &fakeRecordStore{
		deleteFn: func(resourceID, recordID string) error {
			if recordID == "r2" {
				return ErrRecordNotFound
			}
			return nil
		},
	}
	service := NewService(Options{
		Registry:    registryWithDefaults(t),
		RecordStore: store,
	})
	deleted, err := service.BulkDeleteRecords(context.Background(), BulkDeleteRecordsRequest{
		ResourceID: "Users",
		RecordIDs:  []string{"r1", "r2", "r3"},
	})
	if deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", deleted)
	}
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected joined ErrRecordNotFound, got %v", err)
	}
}

func TestPerformActionDispatchesCustomHandler(t *testing.T) {
	registry := registryWithDefaults(t)
	invoked := false
	resource := DefaultResources()[0]
	resource.Actions = append(resource.Actions, Action{
		Name: "deactivate",
		Type: ActionTypeRecord,
		Handler: func(_ context.Context, req ActionRequest) (ActionResponse, error) {
			invoked = true
			return ActionResponse{Notice: Notice{Message: "userDeactivated", Type: "success"}}, nil
		},
	})
	if err := registry.RegisterResource(resource); err != nil {
		t.Fatalf("RegisterResource returned error: %v", err)
	}
	service := NewService(Options{Registry: registry, RecordStore: &fakeRecordStore{}})
	resp, err := service.PerformAction(context.Background(), "deactivate", ActionRequest{
		Resource: Resource{ID: "Users"},
		RecordID: "r1",
	})
	if err != nil {
		t.Fatalf("PerformAction returned error: %v", err)
	}
	if !invoked {
		t.Fatalf("expected custom handler to run")
	}
	if resp.Notice.Message != "userDeactivated" {
		t.Fatalf("expected handler notice, got %#v", resp.Notice)
	}
}

func TestPerformActionBuiltinDelete(t *testing.T) {
	store := &fakeRecordStore{}
	service := NewService(Options{Registry: registryWithDefaults(t), RecordStore: store})
	resp, err := service.PerformAction(context.Background(), ActionDelete, ActionRequest{
		Resource: Resource{ID: "Users"},
		RecordID: "r9",
	})
	if err != nil {
		t.Fatalf("PerformAction returned error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "r9" {
		t.Fatalf("expected record deleted, got %v", store.deleted)
	}
	if resp.Notice.Message != "recordDeleted" || resp.Notice.Type != "success" {
		t.Fatalf("expected delete notice, got %#v", resp.Notice)
	}
}

func TestPerformActionUnknownAction(t *testing.T) {
	service := NewService(Options{Registry: registryWithDefaults(t), RecordStore: &fakeRecordStore{}})
	_, err := service.PerformAction(context.Background(), "explode", ActionRequest{Resource: Resource{ID: "Users"}})
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("expected ErrActionNotFound, got %v", err)
	}
}

func TestSavePreferencesClampsPerPage(t *testing.T) {
	prefs := NewInMemoryPreferenceStore()
	service := NewService(Options{Registry: registryWithDefaults(t), PreferenceStore: prefs})
	viewer := ViewerContext{UserID: "user-2"}
	if err := service.SavePreferences(context.Background(), viewer, "Users", ListPreferences{PerPage: 1000, Direction: "sideways"}); err != nil {
		t.Fatalf("SavePreferences returned error: %v", err)
	}
	stored, err := prefs.ListPreferences(context.Background(), viewer, "Users")
	if err != nil {
		t.Fatalf("ListPreferences returned error: %v", err)
	}
	if stored.PerPage != MaxPerPage {
		t.Fatalf("expected per page clamped to %d, got %d", MaxPerPage, stored.PerPage)
	}
	if stored.Direction != "" {
		t.Fatalf("expected invalid direction dropped, got %q", stored.Direction)
	}
}

func TestSavePreferencesRequiresResource(t *testing.T) {
	service := NewService(Options{})
	if err := service.SavePreferences(context.Background(), ViewerContext{UserID: "u"}, "", ListPreferences{}); err == nil {
		t.Fatalf("expected error when resource id missing")
	}
}

func TestResourcesFilteredByAuthorizer(t *testing.T) {
	service := NewService(Options{
		Registry:   registryWithDefaults(t),
		Authorizer: allowListAuthorizer{resources: map[string]bool{"Articles": true}},
	})
	resources := service.Resources(ViewerContext{UserID: "user-1"})
	if len(resources) != 1 || resources[0].ID != "Articles" {
		t.Fatalf("expected only allowed resources, got %#v", resources)
	}
}

func TestServiceResolveProperty(t *testing.T) {
	service := NewService(Options{Registry: registryWithDefaults(t)})
	property, ok := service.ResolveProperty("Users", "meta.title")
	if !ok {
		t.Fatalf("expected nested property resolved")
	}
	if property.Path != "meta.title" || property.Type != PropertyString {
		t.Fatalf("unexpected property %#v", property)
	}
	if _, ok := service.ResolveProperty("Ghosts", "meta.title"); ok {
		t.Fatalf("expected miss for unknown resource")
	}
}

func TestServiceTranslateFunctionsUseProvider(t *testing.T) {
	catalog := NewCatalog("es", map[string]map[string]string{
		"es": {"actions.delete": "Eliminar"},
	})
	service := NewService(Options{
		Registry:     registryWithDefaults(t),
		Translations: staticTranslatorProvider{engine: catalog},
	})
	tr := service.TranslateFunctions("es")
	if got := tr.TA("delete"); got != "Eliminar" {
		t.Fatalf("expected catalog translation, got %q", got)
	}
}
