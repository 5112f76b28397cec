package admin

import (
	"context"
	"errors"
	"time"
)

// RecordStore persists resource records. Implementations are expected to
// return ErrRecordNotFound for lookups of missing records.
type RecordStore interface {
	CreateRecord(ctx context.Context, input CreateRecordInput) (Record, error)
	UpdateRecord(ctx context.Context, input UpdateRecordInput) (Record, error)
	DeleteRecord(ctx context.Context, resourceID, recordID string) error
	FindRecord(ctx context.Context, resourceID, recordID string) (Record, error)
	ListRecords(ctx context.Context, input ListRecordsInput) (ListResult, error)
}

// Authorizer guards resource access and actions for a viewer.
type Authorizer interface {
	CanAccessResource(viewer ViewerContext, resourceID string) bool
	CanPerformAction(viewer ViewerContext, resourceID, actionName string) bool
}

// PreferenceStore persists per-viewer list preferences.
type PreferenceStore interface {
	ListPreferences(ctx context.Context, viewer ViewerContext, resourceID string) (ListPreferences, error)
	SaveListPreferences(ctx context.Context, viewer ViewerContext, resourceID string, prefs ListPreferences) error
}

// RefreshHook is notified after every record mutation so transports can push
// updates to connected admin sessions.
type RefreshHook interface {
	RecordChanged(event RecordEvent)
}

// RecordValidator checks record params against a resource before writes.
type RecordValidator interface {
	Validate(ctx context.Context, resource Resource, params map[string]any) error
}

// Sentinel errors shared across the package.
var (
	ErrResourceNotFound = errors.New("admin: resource not found")
	ErrRecordNotFound   = errors.New("admin: record not found")
	ErrActionNotFound   = errors.New("admin: action not found")
	ErrForbidden        = errors.New("admin: viewer is not allowed")
)

// Resource describes one administered entity: its identity, decorated
// properties, and the actions the panel exposes for it.
type Resource struct {
	ID             string
	Label          string
	LabelLocalized map[string]string
	NavGroup       string
	Icon           string
	TitleProperty  string
	Properties     *DecoratedProperties
	Actions        []Action
	Metadata       map[string]any
}

// Record is one row of a resource. Params is a flat map keyed by full dotted
// property paths, mirroring how stores surface nested columns.
type Record struct {
	ID         string         `json:"id"`
	ResourceID string         `json:"resource_id"`
	Params     map[string]any `json:"params"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Title resolves the record's display title through the resource's title
// property, falling back to the record id.
func (r Record) Title(resource Resource) string {
	if resource.TitleProperty != "" {
		if value, ok := r.Params[resource.TitleProperty]; ok {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}
	return r.ID
}

// ViewerContext identifies the admin user a request is resolved for.
type ViewerContext struct {
	UserID string
	Roles  []string
	Locale string
}

// RecordEvent describes a record mutation broadcast to refresh hooks.
type RecordEvent struct {
	ResourceID string `json:"resource_id"`
	Record     Record `json:"record"`
	Action     string `json:"action"`
}

// CreateRecordInput is the store-level payload for new records.
type CreateRecordInput struct {
	ResourceID string
	Params     map[string]any
}

// UpdateRecordInput is the store-level payload for record updates. Params are
// merged over the stored ones key by key.
type UpdateRecordInput struct {
	ResourceID string
	RecordID   string
	Params     map[string]any
}

// SortDirection orders list output.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListRecordsInput is the store-level query for record pages.
type ListRecordsInput struct {
	ResourceID string
	Query      string
	Filters    map[string]string
	SortBy     string
	Direction  SortDirection
	Offset     int
	Limit      int
}

// ListResult is one page of records plus the unpaginated total.
type ListResult struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

// ListPreferences captures a viewer's list-view customization for one
// resource.
type ListPreferences struct {
	ColumnOrder   []string `json:"column_order,omitempty"`
	HiddenColumns []string `json:"hidden_columns,omitempty"`
	PerPage       int      `json:"per_page,omitempty"`
	SortBy        string   `json:"sort_by,omitempty"`
	Direction     string   `json:"direction,omitempty"`
}
