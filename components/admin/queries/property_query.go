package queries

import (
	"context"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// ResolvePropertyInput identifies a property lookup against one resource.
type ResolvePropertyInput struct {
	ResourceID string `json:"resource_id"`
	Path       string `json:"path"`
}

// PropertyResolution is the lookup outcome. A missing property is reported
// through Found, never as an error.
type PropertyResolution struct {
	Property *admin.Property `json:"property,omitempty"`
	Found    bool            `json:"found"`
}

type propertyService interface {
	ResolveProperty(resourceID, path string) (*admin.Property, bool)
}

// PropertyQuery resolves dotted property paths through the service.
type PropertyQuery struct {
	service propertyService
}

// NewPropertyQuery builds the query.
func NewPropertyQuery(service propertyService) *PropertyQuery {
	return &PropertyQuery{service: service}
}

var _ gocommand.Querier[ResolvePropertyInput, PropertyResolution] = (*PropertyQuery)(nil)

// Query resolves the property for the input path.
func (q *PropertyQuery) Query(_ context.Context, input ResolvePropertyInput) (PropertyResolution, error) {
	property, ok := q.service.ResolveProperty(input.ResourceID, input.Path)
	return PropertyResolution{Property: property, Found: ok}, nil
}
