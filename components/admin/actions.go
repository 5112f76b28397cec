package admin

import "context"

// ActionType distinguishes what an action operates on.
type ActionType string

const (
	ActionTypeResource ActionType = "resource"
	ActionTypeRecord   ActionType = "record"
	ActionTypeBulk     ActionType = "bulk"
)

// Built-in action names. Every resource carries these unless its manifest
// overrides the action list.
const (
	ActionList       = "list"
	ActionSearch     = "search"
	ActionNew        = "new"
	ActionShow       = "show"
	ActionEdit       = "edit"
	ActionDelete     = "delete"
	ActionBulkDelete = "bulkDelete"
)

// ActionRequest carries everything a handler needs to run an action.
type ActionRequest struct {
	Resource  Resource
	Viewer    ViewerContext
	RecordID  string
	RecordIDs []string
	Params    map[string]any
	Query     string
	Filters   map[string]string
	SortBy    string
	Direction SortDirection
	Page      int
	PerPage   int
}

// Notice is a user-facing outcome message. Message holds a catalog key from
// the messages scope so the UI can translate it.
type Notice struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ActionResponse is what an action hands back to the UI layer.
type ActionResponse struct {
	Record     *Record  `json:"record,omitempty"`
	Records    []Record `json:"records,omitempty"`
	Total      int      `json:"total,omitempty"`
	Notice     Notice   `json:"notice,omitempty"`
	RedirectTo string   `json:"redirect_to,omitempty"`
}

// ActionHandler implements a custom action. Built-in actions leave Handler
// nil and are dispatched by the service.
type ActionHandler func(ctx context.Context, req ActionRequest) (ActionResponse, error)

// Action describes one operation the panel exposes for a resource.
type Action struct {
	Name      string
	Type      ActionType
	Icon      string
	Component string
	Guard     string
	Hidden    bool
	Handler   ActionHandler `json:"-" yaml:"-"`
}

// DefaultActions returns the built-in CRUD action set in display order.
// Handlers stay nil so the service dispatches its own record operations.
func DefaultActions() []Action {
	return []Action{
		{Name: ActionList, Type: ActionTypeResource, Icon: "list"},
		{Name: ActionSearch, Type: ActionTypeResource, Icon: "search", Hidden: true},
		{Name: ActionNew, Type: ActionTypeResource, Icon: "plus"},
		{Name: ActionShow, Type: ActionTypeRecord, Icon: "eye"},
		{Name: ActionEdit, Type: ActionTypeRecord, Icon: "edit"},
		{Name: ActionDelete, Type: ActionTypeRecord, Icon: "trash", Guard: "confirmDelete"},
		{Name: ActionBulkDelete, Type: ActionTypeBulk, Icon: "trash", Guard: "confirmBulkDelete"},
	}
}

// FindAction returns the named action from the resource's set, falling back
// to the built-in set when the resource declares none.
func FindAction(resource Resource, name string) (Action, bool) {
	actions := resource.Actions
	if len(actions) == 0 {
		actions = DefaultActions()
	}
	for _, action := range actions {
		if action.Name == name {
			return action, true
		}
	}
	return Action{}, false
}
