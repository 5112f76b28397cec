package admin

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// DefaultTemplate is the shell template rendered by the controller.
const DefaultTemplate = "admin.html"

// DefaultNavGroup collects resources that declare no nav group.
const DefaultNavGroup = "general"

// PageService is the slice of the Service the controller needs. *Service
// satisfies it.
type PageService interface {
	Resources(viewer ViewerContext) []Resource
	Resource(id string) (Resource, bool)
	TranslateFunctions(locale string) *TranslateFunctions
	ListRecords(ctx context.Context, req ListRecordsRequest) (ListResult, error)
	GetRecord(ctx context.Context, req GetRecordRequest) (Record, error)
	Preferences(ctx context.Context, viewer ViewerContext, resourceID string) (ListPreferences, error)
}

// OverviewResolver assembles the overview payload for a viewer.
type OverviewResolver interface {
	Build(ctx context.Context, viewer ViewerContext) (Overview, error)
}

// ControllerOptions wires a Controller.
type ControllerOptions struct {
	Service  PageService
	Overview OverviewResolver
	Renderer Renderer
	Template string
	Branding Branding
	Theme    ThemeSelector
}

// Controller assembles page payloads for the admin shell and its resource
// views, and renders the shell template.
type Controller struct {
	service  PageService
	overview OverviewResolver
	renderer Renderer
	template string
	branding Branding
	theme    ThemeSelector
}

// NewController wires the service into a controller, defaulting the shell
// template and branding when unset.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Branding.Title == "" && opts.Branding.Theme.Name == "" {
		opts.Branding = DefaultBranding()
	}
	return &Controller{
		service:  opts.Service,
		overview: opts.Overview,
		renderer: opts.Renderer,
		template: opts.Template,
		branding: opts.Branding,
		theme:    opts.Theme,
	}
}

// NavItem is one resource entry in the sidebar.
type NavItem struct {
	ResourceID string `json:"resource_id"`
	Label      string `json:"label"`
	Icon       string `json:"icon,omitempty"`
	Href       string `json:"href"`
}

// NavSection groups sidebar entries under a translated heading.
type NavSection struct {
	Group string    `json:"group"`
	Label string    `json:"label"`
	Items []NavItem `json:"items"`
}

// AdminPage is the shell payload: branding, navigation, and the optional
// overview section.
type AdminPage struct {
	Branding Branding       `json:"branding"`
	Theme    ThemeSelection `json:"theme"`
	Styles   string         `json:"styles"`
	Locale   string         `json:"locale"`
	Nav      []NavSection   `json:"nav"`
	Overview *Overview      `json:"overview,omitempty"`
}

// Page assembles the shell payload for a viewer.
func (c *Controller) Page(ctx context.Context, viewer ViewerContext) (AdminPage, error) {
	if c.service == nil {
		return AdminPage{}, fmt.Errorf("admin: controller has no service")
	}
	locale := viewerLocale(viewer)
	theme := c.branding.Theme
	if c.theme != nil {
		theme = c.theme(viewer)
	}
	page := AdminPage{
		Branding: c.branding,
		Theme:    theme,
		Styles:   theme.CSSVariablesInline(),
		Locale:   locale,
		Nav:      c.navSections(viewer, locale),
	}
	if c.overview != nil {
		overview, err := c.overview.Build(ctx, viewer)
		if err != nil {
			return AdminPage{}, fmt.Errorf("build overview: %w", err)
		}
		page.Overview = &overview
	}
	return page, nil
}

// navSections groups accessible resources by nav group, keeping the order
// resources were registered in.
func (c *Controller) navSections(viewer ViewerContext, locale string) []NavSection {
	tr := c.service.TranslateFunctions(locale)
	var sections []NavSection
	index := map[string]int{}
	for _, resource := range c.service.Resources(viewer) {
		group := resource.NavGroup
		if group == "" {
			group = DefaultNavGroup
		}
		pos, ok := index[group]
		if !ok {
			pos = len(sections)
			index[group] = pos
			sections = append(sections, NavSection{
				Group: group,
				Label: tr.TL(group),
			})
		}
		sections[pos].Items = append(sections[pos].Items, NavItem{
			ResourceID: resource.ID,
			Label:      resourceLabel(tr, resource, locale),
			Icon:       resource.Icon,
			Href:       "/admin/resources/" + resource.ID,
		})
	}
	return sections
}

// resourceLabel resolves a resource's display name: catalog keys win, then
// the per-locale label from the manifest, then the plain label.
func resourceLabel(tr *TranslateFunctions, resource Resource, locale string) string {
	return tr.TL(resource.ID, ForResource(resource.ID), WithDefault(resource.LabelForLocale(locale)))
}

// ListColumn is one table column on the list page.
type ListColumn struct {
	Path     string       `json:"path"`
	Label    string       `json:"label"`
	Type     PropertyType `json:"type"`
	Sortable bool         `json:"sortable"`
}

// RecordRow is one table row, cells aligned with the page's columns.
type RecordRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cells []any  `json:"cells"`
}

// ListPage is the list view payload for one resource.
type ListPage struct {
	Resource Resource     `json:"resource"`
	Title    string       `json:"title"`
	Columns  []ListColumn `json:"columns"`
	Rows     []RecordRow  `json:"rows"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PerPage  int          `json:"per_page"`
	Query    string       `json:"query,omitempty"`
	Actions  []Action     `json:"actions"`
}

// ListPage assembles the table payload for a resource: visible columns with
// the viewer's saved order and hiding applied, translated headers, and one
// page of records.
func (c *Controller) ListPage(ctx context.Context, viewer ViewerContext, req ListRecordsRequest) (ListPage, error) {
	resource, ok := c.service.Resource(req.ResourceID)
	if !ok {
		return ListPage{}, fmt.Errorf("resource %s: %w", req.ResourceID, ErrResourceNotFound)
	}
	req.Viewer = viewer
	result, err := c.service.ListRecords(ctx, req)
	if err != nil {
		return ListPage{}, err
	}
	prefs, err := c.service.Preferences(ctx, viewer, resource.ID)
	if err != nil {
		return ListPage{}, fmt.Errorf("load list preferences: %w", err)
	}

	locale := viewerLocale(viewer)
	tr := c.service.TranslateFunctions(locale)
	columns := c.listColumns(tr, resource, prefs)

	rows := make([]RecordRow, 0, len(result.Records))
	for _, record := range result.Records {
		row := RecordRow{ID: record.ID, Title: record.Title(resource)}
		for _, column := range columns {
			row.Cells = append(row.Cells, paramValue(record.Params, column.Path))
		}
		rows = append(rows, row)
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	return ListPage{
		Resource: resource,
		Title:    resourceLabel(tr, resource, locale),
		Columns:  columns,
		Rows:     rows,
		Total:    result.Total,
		Page:     page,
		PerPage:  req.PerPage,
		Query:    req.Query,
		Actions:  visibleActions(resource, ActionTypeResource, ActionTypeBulk),
	}, nil
}

func (c *Controller) listColumns(tr *TranslateFunctions, resource Resource, prefs ListPreferences) []ListColumn {
	var paths []string
	byPath := map[string]*Property{}
	for _, p := range resource.Properties.Visible("list") {
		paths = append(paths, p.Path)
		byPath[p.Path] = p
	}
	paths = applyColumnOrder(paths, prefs.ColumnOrder)
	paths = applyHiddenColumns(paths, prefs.HiddenColumns)

	columns := make([]ListColumn, 0, len(paths))
	for _, path := range paths {
		p := byPath[path]
		columns = append(columns, ListColumn{
			Path:     path,
			Label:    propertyLabel(tr, resource.ID, p),
			Type:     p.Type,
			Sortable: p.IsSortable,
		})
	}
	return columns
}

// FieldView is one property rendered on a show or edit page.
type FieldView struct {
	Path      string       `json:"path"`
	Label     string       `json:"label"`
	Type      PropertyType `json:"type"`
	Component string       `json:"component,omitempty"`
	Value     any          `json:"value"`
	Required  bool         `json:"required"`
	Array     bool         `json:"array"`
	Fields    []FieldView  `json:"fields,omitempty"`
}

// DetailPage is the show or edit payload for one record.
type DetailPage struct {
	Resource Resource    `json:"resource"`
	Title    string      `json:"title"`
	Record   Record      `json:"record"`
	Fields   []FieldView `json:"fields"`
	Actions  []Action    `json:"actions"`
}

// ShowPage assembles the read-only detail payload for a record.
func (c *Controller) ShowPage(ctx context.Context, viewer ViewerContext, resourceID, recordID string) (DetailPage, error) {
	return c.detailPage(ctx, viewer, resourceID, recordID, "show")
}

// EditPage assembles the form payload for a record.
func (c *Controller) EditPage(ctx context.Context, viewer ViewerContext, resourceID, recordID string) (DetailPage, error) {
	return c.detailPage(ctx, viewer, resourceID, recordID, "edit")
}

// NewPage assembles the empty form payload used to create a record.
func (c *Controller) NewPage(viewer ViewerContext, resourceID string) (DetailPage, error) {
	resource, ok := c.service.Resource(resourceID)
	if !ok {
		return DetailPage{}, fmt.Errorf("resource %s: %w", resourceID, ErrResourceNotFound)
	}
	locale := viewerLocale(viewer)
	tr := c.service.TranslateFunctions(locale)
	return DetailPage{
		Resource: resource,
		Title:    resourceLabel(tr, resource, locale),
		Fields:   fieldViews(tr, resource.ID, resource.Properties.Visible("edit"), nil),
		Actions:  visibleActions(resource, ActionTypeRecord),
	}, nil
}

func (c *Controller) detailPage(ctx context.Context, viewer ViewerContext, resourceID, recordID, view string) (DetailPage, error) {
	resource, ok := c.service.Resource(resourceID)
	if !ok {
		return DetailPage{}, fmt.Errorf("resource %s: %w", resourceID, ErrResourceNotFound)
	}
	record, err := c.service.GetRecord(ctx, GetRecordRequest{
		ResourceID: resourceID,
		RecordID:   recordID,
		Viewer:     viewer,
	})
	if err != nil {
		return DetailPage{}, err
	}
	locale := viewerLocale(viewer)
	tr := c.service.TranslateFunctions(locale)
	return DetailPage{
		Resource: resource,
		Title:    record.Title(resource),
		Record:   record,
		Fields:   fieldViews(tr, resource.ID, resource.Properties.Visible(view), record.Params),
		Actions:  visibleActions(resource, ActionTypeRecord),
	}, nil
}

// fieldViews flattens visible properties into renderable fields, descending
// into composite properties so nested values keep their own labels.
func fieldViews(tr *TranslateFunctions, resourceID string, props []*Property, params map[string]any) []FieldView {
	views := make([]FieldView, 0, len(props))
	for _, p := range props {
		view := FieldView{
			Path:      p.Path,
			Label:     propertyLabel(tr, resourceID, p),
			Type:      p.Type,
			Component: p.Component,
			Required:  p.IsRequired,
			Array:     p.IsArray,
		}
		if p.Type == PropertyMixed && len(p.SubProperties) > 0 {
			view.Fields = fieldViews(tr, resourceID, p.SubProperties, params)
		} else {
			view.Value = paramValue(params, p.Path)
		}
		views = append(views, view)
	}
	return views
}

// propertyLabel translates a property header: catalog keys win, then the
// manifest label, then the start-cased trailing path segment.
func propertyLabel(tr *TranslateFunctions, resourceID string, p *Property) string {
	fallback := p.Label
	if fallback == "" {
		segments := strings.Split(p.Path, ".")
		fallback = StartCase(segments[len(segments)-1])
	}
	return tr.TP(p.Path, ForResource(resourceID), WithDefault(fallback))
}

// paramValue reads a dotted path out of record params. Flat dotted keys win;
// otherwise the path is walked through nested maps.
func paramValue(params map[string]any, path string) any {
	if params == nil {
		return nil
	}
	if value, ok := params[path]; ok {
		return value
	}
	segments := strings.Split(path, ".")
	var current any = params
	for _, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func visibleActions(resource Resource, types ...ActionType) []Action {
	include := make(map[ActionType]bool, len(types))
	for _, t := range types {
		include[t] = true
	}
	var out []Action
	for _, action := range resource.Actions {
		if action.Hidden || !include[action.Type] {
			continue
		}
		out = append(out, action)
	}
	return out
}

func viewerLocale(viewer ViewerContext) string {
	if viewer.Locale != "" {
		return viewer.Locale
	}
	return "en"
}

// RenderTemplate renders the admin shell for a viewer into out.
func (c *Controller) RenderTemplate(ctx context.Context, viewer ViewerContext, out io.Writer) error {
	if c.renderer == nil {
		return fmt.Errorf("admin: controller has no renderer")
	}
	page, err := c.Page(ctx, viewer)
	if err != nil {
		return err
	}
	payload := map[string]any{
		"page":     page,
		"branding": page.Branding,
		"theme":    page.Theme,
		"styles":   page.Styles,
		"locale":   page.Locale,
		"nav":      page.Nav,
		"overview": page.Overview,
	}
	if _, err := c.renderer.Render(c.template, payload, out); err != nil {
		return fmt.Errorf("render %s: %w", c.template, err)
	}
	return nil
}
