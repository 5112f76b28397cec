package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-admin/pkg/activity"
)

var (
	errMissingRecordStore = errors.New("admin: record store is required")
	errMissingResourceID  = errors.New("admin: resource id is required")
)

// Default list paging applied when neither the request nor the viewer's
// preferences say otherwise.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// TranslatorProvider yields a translation engine for a locale. Providers are
// expected to fall back to their default locale for unknown inputs.
type TranslatorProvider interface {
	Engine(locale string) Engine
}

type staticTranslatorProvider struct {
	engine Engine
}

func (p staticTranslatorProvider) Engine(string) Engine { return p.engine }

// Options wires a Service. Nil collaborators are replaced with permissive or
// in-memory defaults so small deployments configure only what they need.
type Options struct {
	Registry        *Registry
	RecordStore     RecordStore
	Authorizer      Authorizer
	PreferenceStore PreferenceStore
	Validator       RecordValidator
	RefreshHook     RefreshHook
	Telemetry       Telemetry
	Translations    TranslatorProvider
	ActivityHooks   activity.Hooks
	ActivityConfig  activity.Config
}

// Service orchestrates record operations across the registry, store,
// authorizer, validator, and the notification hooks.
type Service struct {
	registry     *Registry
	store        RecordStore
	authorizer   Authorizer
	preferences  PreferenceStore
	validator    RecordValidator
	refreshHook  RefreshHook
	telemetry    Telemetry
	translations TranslatorProvider
	activity     *activity.Emitter
}

// NewService builds a service, filling missing collaborators with defaults.
func NewService(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Authorizer == nil {
		opts.Authorizer = allowAllAuthorizer{}
	}
	if opts.PreferenceStore == nil {
		opts.PreferenceStore = NewInMemoryPreferenceStore()
	}
	if opts.Validator == nil {
		opts.Validator = NewSchemaValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.Translations == nil {
		opts.Translations = NewCatalogTranslatorProvider(nil)
	}
	return &Service{
		registry:     opts.Registry,
		store:        opts.RecordStore,
		authorizer:   opts.Authorizer,
		preferences:  opts.PreferenceStore,
		validator:    opts.Validator,
		refreshHook:  opts.RefreshHook,
		telemetry:    normalizeTelemetry(opts.Telemetry),
		translations: opts.Translations,
		activity:     activity.NewEmitter(opts.ActivityHooks, opts.ActivityConfig),
	}
}

// Registry exposes the resource registry backing this service.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Resource looks up a registered resource.
func (s *Service) Resource(id string) (Resource, bool) {
	return s.registry.Resource(id)
}

// Resources lists the resources the viewer may access, in registration
// order.
func (s *Service) Resources(viewer ViewerContext) []Resource {
	var out []Resource
	for _, resource := range s.registry.Resources() {
		if s.authorizer.CanAccessResource(viewer, resource.ID) {
			out = append(out, resource)
		}
	}
	return out
}

// TranslateFunctions builds the scoped translation helpers for a locale.
func (s *Service) TranslateFunctions(locale string) *TranslateFunctions {
	return NewTranslateFunctions(s.translations.Engine(locale))
}

// ResolveProperty resolves a dotted path against a resource's decorated
// properties.
func (s *Service) ResolveProperty(resourceID, path string) (*Property, bool) {
	resource, ok := s.registry.Resource(resourceID)
	if !ok {
		return nil, false
	}
	return ResolveProperty(path, resource.Properties)
}

// ListRecordsRequest asks for one page of records.
type ListRecordsRequest struct {
	ResourceID string
	Viewer     ViewerContext
	Query      string
	Filters    map[string]string
	SortBy     string
	Direction  SortDirection
	Page       int
	PerPage    int
}

// ListRecords returns a page of records, applying the viewer's saved list
// preferences for paging and sorting when the request leaves them unset.
func (s *Service) ListRecords(ctx context.Context, req ListRecordsRequest) (ListResult, error) {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionList)
	if err != nil {
		return ListResult{}, err
	}
	prefs, err := s.preferences.ListPreferences(ctx, req.Viewer, resource.ID)
	if err != nil {
		return ListResult{}, fmt.Errorf("load list preferences: %w", err)
	}
	req = applyListDefaults(req, prefs)

	result, err := s.store.ListRecords(ctx, ListRecordsInput{
		ResourceID: resource.ID,
		Query:      req.Query,
		Filters:    req.Filters,
		SortBy:     req.SortBy,
		Direction:  req.Direction,
		Offset:     (req.Page - 1) * req.PerPage,
		Limit:      req.PerPage,
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("list records for %s: %w", resource.ID, err)
	}
	s.telemetry.Record(ctx, "admin.record.list", map[string]any{
		"resource_id": resource.ID,
		"total":       result.Total,
		"page":        req.Page,
	})
	return result, nil
}

func applyListDefaults(req ListRecordsRequest, prefs ListPreferences) ListRecordsRequest {
	if req.PerPage <= 0 {
		req.PerPage = prefs.PerPage
	}
	if req.PerPage <= 0 {
		req.PerPage = DefaultPerPage
	}
	if req.PerPage > MaxPerPage {
		req.PerPage = MaxPerPage
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.SortBy == "" {
		req.SortBy = prefs.SortBy
		if req.Direction == "" && prefs.Direction != "" {
			req.Direction = SortDirection(prefs.Direction)
		}
	}
	if req.Direction == "" {
		req.Direction = SortAsc
	}
	return req
}

// GetRecordRequest fetches a single record.
type GetRecordRequest struct {
	ResourceID string
	RecordID   string
	Viewer     ViewerContext
}

// GetRecord returns one record after authorizing the show action.
func (s *Service) GetRecord(ctx context.Context, req GetRecordRequest) (Record, error) {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionShow)
	if err != nil {
		return Record{}, err
	}
	record, err := s.store.FindRecord(ctx, resource.ID, req.RecordID)
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// CreateRecordRequest creates a record. Actor fields feed the audit trail.
type CreateRecordRequest struct {
	ResourceID string         `json:"resource_id"`
	Params     map[string]any `json:"params"`
	Viewer     ViewerContext  `json:"-"`
	ActorID    string         `json:"actor_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	TenantID   string         `json:"tenant_id,omitempty"`
}

// CreateRecord validates and stores a new record, then fans out refresh,
// telemetry, and activity events.
func (s *Service) CreateRecord(ctx context.Context, req CreateRecordRequest) (Record, error) {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionNew)
	if err != nil {
		return Record{}, err
	}
	if err := s.validator.Validate(ctx, resource, req.Params); err != nil {
		return Record{}, err
	}
	record, err := s.store.CreateRecord(ctx, CreateRecordInput{ResourceID: resource.ID, Params: req.Params})
	if err != nil {
		return Record{}, fmt.Errorf("create record for %s: %w", resource.ID, err)
	}
	s.recordChanged(ctx, resource, record, "create")
	s.emitActivity(ctx, "admin.record.create", resource, record.ID, req.Viewer, actorIDs{req.ActorID, req.UserID, req.TenantID}, nil)
	return record, nil
}

// UpdateRecordRequest merges params over an existing record.
type UpdateRecordRequest struct {
	ResourceID string         `json:"resource_id"`
	RecordID   string         `json:"record_id"`
	Params     map[string]any `json:"params"`
	Viewer     ViewerContext  `json:"-"`
	ActorID    string         `json:"actor_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	TenantID   string         `json:"tenant_id,omitempty"`
}

// UpdateRecord validates the merged params and stores the update.
func (s *Service) UpdateRecord(ctx context.Context, req UpdateRecordRequest) (Record, error) {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionEdit)
	if err != nil {
		return Record{}, err
	}
	existing, err := s.store.FindRecord(ctx, resource.ID, req.RecordID)
	if err != nil {
		return Record{}, err
	}
	merged := cloneParams(existing.Params)
	for key, value := range req.Params {
		merged[key] = value
	}
	if err := s.validator.Validate(ctx, resource, merged); err != nil {
		return Record{}, err
	}
	record, err := s.store.UpdateRecord(ctx, UpdateRecordInput{
		ResourceID: resource.ID,
		RecordID:   req.RecordID,
		Params:     req.Params,
	})
	if err != nil {
		return Record{}, fmt.Errorf("update record for %s: %w", resource.ID, err)
	}
	s.recordChanged(ctx, resource, record, "update")
	s.emitActivity(ctx, "admin.record.update", resource, record.ID, req.Viewer, actorIDs{req.ActorID, req.UserID, req.TenantID}, nil)
	return record, nil
}

// DeleteRecordRequest removes one record.
type DeleteRecordRequest struct {
	ResourceID string        `json:"resource_id"`
	RecordID   string        `json:"record_id"`
	Viewer     ViewerContext `json:"-"`
	ActorID    string        `json:"actor_id,omitempty"`
	UserID     string        `json:"user_id,omitempty"`
	TenantID   string        `json:"tenant_id,omitempty"`
}

// DeleteRecord removes a record and fans out the delete event.
func (s *Service) DeleteRecord(ctx context.Context, req DeleteRecordRequest) error {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionDelete)
	if err != nil {
		return err
	}
	if err := s.store.DeleteRecord(ctx, resource.ID, req.RecordID); err != nil {
		return err
	}
	s.recordChanged(ctx, resource, Record{ID: req.RecordID, ResourceID: resource.ID}, "delete")
	s.emitActivity(ctx, "admin.record.delete", resource, req.RecordID, req.Viewer, actorIDs{req.ActorID, req.UserID, req.TenantID}, nil)
	return nil
}

// BulkDeleteRecordsRequest removes a selection of records.
type BulkDeleteRecordsRequest struct {
	ResourceID string        `json:"resource_id"`
	RecordIDs  []string      `json:"record_ids"`
	Viewer     ViewerContext `json:"-"`
	ActorID    string        `json:"actor_id,omitempty"`
	UserID     string        `json:"user_id,omitempty"`
	TenantID   string        `json:"tenant_id,omitempty"`
}

// BulkDeleteRecords removes every selected record, accumulating partial
// failures instead of stopping at the first.
func (s *Service) BulkDeleteRecords(ctx context.Context, req BulkDeleteRecordsRequest) (int, error) {
	resource, err := s.guard(req.Viewer, req.ResourceID, ActionBulkDelete)
	if err != nil {
		return 0, err
	}
	var errs []error
	deleted := 0
	for _, recordID := range req.RecordIDs {
		if err := s.store.DeleteRecord(ctx, resource.ID, recordID); err != nil {
			errs = append(errs, err)
			continue
		}
		deleted++
		s.recordChanged(ctx, resource, Record{ID: recordID, ResourceID: resource.ID}, "delete")
	}
	if deleted > 0 {
		s.emitActivity(ctx, "admin.record.bulk_delete", resource, "", req.Viewer, actorIDs{req.ActorID, req.UserID, req.TenantID}, map[string]any{
			"count": deleted,
		})
	}
	return deleted, errors.Join(errs...)
}

// SearchRecordsRequest backs reference pickers and the search action.
type SearchRecordsRequest struct {
	ResourceID string
	Viewer     ViewerContext
	Query      string
	Limit      int
}

// SearchRecords returns records matching a free-text query.
func (s *Service) SearchRecords(ctx context.Context, req SearchRecordsRequest) (ListResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultPerPage
	}
	return s.ListRecords(ctx, ListRecordsRequest{
		ResourceID: req.ResourceID,
		Viewer:     req.Viewer,
		Query:      req.Query,
		PerPage:    limit,
		Page:       1,
	})
}

// PerformAction dispatches a named action: custom handlers first, then the
// built-in record operations.
func (s *Service) PerformAction(ctx context.Context, name string, req ActionRequest) (ActionResponse, error) {
	resource, ok := s.registry.Resource(req.Resource.ID)
	if !ok {
		return ActionResponse{}, fmt.Errorf("resource %s: %w", req.Resource.ID, ErrResourceNotFound)
	}
	req.Resource = resource
	action, ok := FindAction(resource, name)
	if !ok {
		return ActionResponse{}, fmt.Errorf("action %s on %s: %w", name, resource.ID, ErrActionNotFound)
	}
	if !s.authorizer.CanPerformAction(req.Viewer, resource.ID, action.Name) {
		return ActionResponse{}, fmt.Errorf("action %s on %s: %w", action.Name, resource.ID, ErrForbidden)
	}
	if action.Handler != nil {
		return action.Handler(ctx, req)
	}
	return s.builtinAction(ctx, action, req)
}

func (s *Service) builtinAction(ctx context.Context, action Action, req ActionRequest) (ActionResponse, error) {
	switch action.Name {
	case ActionList, ActionSearch:
		result, err := s.ListRecords(ctx, ListRecordsRequest{
			ResourceID: req.Resource.ID,
			Viewer:     req.Viewer,
			Query:      req.Query,
			Filters:    req.Filters,
			SortBy:     req.SortBy,
			Direction:  req.Direction,
			Page:       req.Page,
			PerPage:    req.PerPage,
		})
		if err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Records: result.Records, Total: result.Total}, nil
	case ActionShow:
		record, err := s.GetRecord(ctx, GetRecordRequest{ResourceID: req.Resource.ID, RecordID: req.RecordID, Viewer: req.Viewer})
		if err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Record: &record}, nil
	case ActionNew:
		record, err := s.CreateRecord(ctx, CreateRecordRequest{ResourceID: req.Resource.ID, Params: req.Params, Viewer: req.Viewer})
		if err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Record: &record, Notice: Notice{Message: "recordCreated", Type: "success"}}, nil
	case ActionEdit:
		record, err := s.UpdateRecord(ctx, UpdateRecordRequest{ResourceID: req.Resource.ID, RecordID: req.RecordID, Params: req.Params, Viewer: req.Viewer})
		if err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Record: &record, Notice: Notice{Message: "recordUpdated", Type: "success"}}, nil
	case ActionDelete:
		if err := s.DeleteRecord(ctx, DeleteRecordRequest{ResourceID: req.Resource.ID, RecordID: req.RecordID, Viewer: req.Viewer}); err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Notice: Notice{Message: "recordDeleted", Type: "success"}}, nil
	case ActionBulkDelete:
		deleted, err := s.BulkDeleteRecords(ctx, BulkDeleteRecordsRequest{ResourceID: req.Resource.ID, RecordIDs: req.RecordIDs, Viewer: req.Viewer})
		if err != nil {
			return ActionResponse{}, err
		}
		return ActionResponse{Total: deleted, Notice: Notice{Message: "recordsDeleted", Type: "success"}}, nil
	default:
		return ActionResponse{}, fmt.Errorf("action %s on %s: %w", action.Name, req.Resource.ID, ErrActionNotFound)
	}
}

// Preferences returns the viewer's saved list preferences for a resource.
func (s *Service) Preferences(ctx context.Context, viewer ViewerContext, resourceID string) (ListPreferences, error) {
	return s.preferences.ListPreferences(ctx, viewer, resourceID)
}

// SavePreferences stores list preferences after normalizing them.
func (s *Service) SavePreferences(ctx context.Context, viewer ViewerContext, resourceID string, prefs ListPreferences) error {
	if resourceID == "" {
		return errMissingResourceID
	}
	return s.preferences.SaveListPreferences(ctx, viewer, resourceID, normalizePreferences(prefs))
}

// NotifyRecordChanged fans an event out to the refresh hook, for callers that
// mutate stores out of band.
func (s *Service) NotifyRecordChanged(event RecordEvent) {
	s.refreshHook.RecordChanged(event)
}

// guard resolves the resource and checks both resource access and the action
// permission.
func (s *Service) guard(viewer ViewerContext, resourceID, actionName string) (Resource, error) {
	if s.store == nil {
		return Resource{}, errMissingRecordStore
	}
	if resourceID == "" {
		return Resource{}, errMissingResourceID
	}
	resource, ok := s.registry.Resource(resourceID)
	if !ok {
		return Resource{}, fmt.Errorf("resource %s: %w", resourceID, ErrResourceNotFound)
	}
	if !s.authorizer.CanAccessResource(viewer, resource.ID) {
		return Resource{}, fmt.Errorf("resource %s: %w", resource.ID, ErrForbidden)
	}
	if !s.authorizer.CanPerformAction(viewer, resource.ID, actionName) {
		return Resource{}, fmt.Errorf("action %s on %s: %w", actionName, resource.ID, ErrForbidden)
	}
	return resource, nil
}

func (s *Service) recordChanged(ctx context.Context, resource Resource, record Record, action string) {
	event := RecordEvent{ResourceID: resource.ID, Record: record, Action: action}
	s.refreshHook.RecordChanged(event)
	s.telemetry.Record(ctx, "admin.record."+action, map[string]any{
		"resource_id": resource.ID,
		"record_id":   record.ID,
	})
}

type actorIDs struct {
	actor  string
	user   string
	tenant string
}

func (s *Service) emitActivity(ctx context.Context, verb string, resource Resource, recordID string, viewer ViewerContext, ids actorIDs, metadata map[string]any) {
	if !s.activity.Enabled() {
		return
	}
	if ac, ok := activityContextFrom(ctx); ok {
		if ids.actor == "" {
			ids.actor = ac.ActorID
		}
		if ids.user == "" {
			ids.user = ac.UserID
		}
		if ids.tenant == "" {
			ids.tenant = ac.TenantID
		}
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["resource_id"] = resource.ID
	s.activity.Emit(ctx, activity.Event{
		Verb:       verb,
		ActorID:    ids.actor,
		UserID:     ids.user,
		TenantID:   ids.tenant,
		ObjectType: "record",
		ObjectID:   recordID,
		Locale:     viewer.Locale,
		Metadata:   metadata,
	})
}

type allowAllAuthorizer struct{}

func (allowAllAuthorizer) CanAccessResource(ViewerContext, string) bool        { return true }
func (allowAllAuthorizer) CanPerformAction(ViewerContext, string, string) bool { return true }

type noopRefreshHook struct{}

func (noopRefreshHook) RecordChanged(RecordEvent) {}
