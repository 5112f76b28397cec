package queries

import (
	"context"
	"fmt"

	admin "github.com/goliatone/go-admin/components/admin"
	gocommand "github.com/goliatone/go-command"
)

// TranslateInput names one scoped translation for a locale.
type TranslateInput struct {
	Locale     string         `json:"locale"`
	Scope      admin.Scope    `json:"scope"`
	Name       string         `json:"name"`
	ResourceID string         `json:"resource_id,omitempty"`
	Default    string         `json:"default,omitempty"`
	HasDefault bool           `json:"has_default,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

type translateService interface {
	TranslateFunctions(locale string) *admin.TranslateFunctions
}

// TranslateQuery resolves scoped translations through the service's
// translation facade.
type TranslateQuery struct {
	service translateService
}

// NewTranslateQuery builds the query.
func NewTranslateQuery(service translateService) *TranslateQuery {
	return &TranslateQuery{service: service}
}

var _ gocommand.Querier[TranslateInput, string] = (*TranslateQuery)(nil)

// Query resolves the scoped translation.
func (q *TranslateQuery) Query(_ context.Context, input TranslateInput) (string, error) {
	tr := q.service.TranslateFunctions(input.Locale)

	var fn admin.TranslateFunc
	switch input.Scope {
	case admin.ScopeActions:
		fn = tr.TA
	case admin.ScopeButtons:
		fn = tr.TB
	case admin.ScopeLabels:
		fn = tr.TL
	case admin.ScopeProperties:
		fn = tr.TP
	case admin.ScopeMessages:
		fn = tr.TM
	case admin.ScopeComponents:
		fn = tr.TC
	case admin.ScopePages:
		fn = tr.TranslatePage
	default:
		return "", fmt.Errorf("translate query: unknown scope %q", input.Scope)
	}

	var opts []admin.TranslateOption
	if input.ResourceID != "" {
		opts = append(opts, admin.ForResource(input.ResourceID))
	}
	if input.HasDefault {
		opts = append(opts, admin.WithDefault(input.Default))
	}
	if input.Data != nil {
		opts = append(opts, admin.WithData(input.Data))
	}
	return fn(input.Name, opts...), nil
}
