package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"
	"golang.org/x/text/language"

	admin "github.com/goliatone/go-admin/components/admin"
	"github.com/goliatone/go-admin/components/admin/commands"
	"github.com/goliatone/go-admin/components/admin/httpapi"
)

// ViewerResolver converts a router.Context into an admin.ViewerContext.
type ViewerResolver func(router.Context) admin.ViewerContext

// Config wires go-router with go-admin controllers, APIs, and hooks.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *admin.Controller
	API            httpapi.Executor
	Broadcast      *admin.BroadcastHook
	ViewerResolver ViewerResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for admin endpoints.
type RouteConfig struct {
	HTML        string
	Page        string
	Records     string
	RecordNew   string
	RecordID    string
	RecordEdit  string
	BulkDelete  string
	Preferences string
	WebSocket   string
	Assets      string
}

// Register mounts admin routes (HTML shell, page JSON, record CRUD, WebSocket)
// on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	viewerResolver := cfg.ViewerResolver
	if viewerResolver == nil {
		viewerResolver = defaultViewerResolver
	}

	if routes.Assets != "" {
		cfg.Router.Static(routes.Assets, ".", router.Static{
			FS:     admin.AssetsFS(),
			Root:   ".",
			MaxAge: 86400,
		})
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		var buf bytes.Buffer
		if err := cfg.Controller.RenderTemplate(ctx.Context(), viewer, &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.Page, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		payload, err := cfg.Controller.Page(ctx.Context(), viewer)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	group.Get(routes.Records, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		page, err := cfg.Controller.ListPage(ctx.Context(), viewer, listRequest(ctx))
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, page)
	}))

	group.Get(routes.RecordNew, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		page, err := cfg.Controller.NewPage(viewer, ctx.Param("resource"))
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, page)
	}))

	group.Get(routes.RecordEdit, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		page, err := cfg.Controller.EditPage(ctx.Context(), viewer, ctx.Param("resource"), ctx.Param("id"))
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, page)
	}))

	group.Get(routes.RecordID, router.WrapHandler(func(ctx router.Context) error {
		viewer := viewerResolver(ctx)
		page, err := cfg.Controller.ShowPage(ctx.Context(), viewer, ctx.Param("resource"), ctx.Param("id"))
		if err != nil {
			return respondError(ctx, statusFor(err), err)
		}
		return ctx.JSON(http.StatusOK, page)
	}))

	if cfg.API != nil {
		registerAPI(group, cfg.API, viewerResolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, resolver ViewerResolver, routes RouteConfig) {
	r.Post(routes.Records, router.WrapHandler(func(ctx router.Context) error {
		var payload admin.CreateRecordRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ResourceID = ctx.Param("resource")
		payload.Viewer = resolver(ctx)
		if err := api.Create(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	// Bulk delete is registered before the :id update so the literal
	// segment is matched first.
	r.Post(routes.BulkDelete, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.BulkDeleteRecordsInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ResourceID = ctx.Param("resource")
		payload.Viewer = resolver(ctx)
		if err := api.BulkDelete(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}))

	r.Post(routes.RecordID, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.UpdateRecordInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ResourceID = ctx.Param("resource")
		payload.RecordID = ctx.Param("id")
		payload.Viewer = resolver(ctx)
		if err := api.Update(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Delete(routes.RecordID, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("record id is required"))
		}
		input := commands.DeleteRecordInput{
			ResourceID: ctx.Param("resource"),
			RecordID:   id,
			Viewer:     resolver(ctx),
		}
		if err := api.Delete(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusNoContent, map[string]string{"status": "deleted"})
	}))

	r.Post(routes.Preferences, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.SaveListPreferencesInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		payload.ResourceID = ctx.Param("resource")
		payload.Viewer = resolver(ctx)
		if err := api.SavePreferences(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *admin.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

// listRequest reads list parameters from the query string. Filters beyond the
// free-text query travel through the service API instead of URL parameters.
func listRequest(ctx router.Context) admin.ListRecordsRequest {
	req := admin.ListRecordsRequest{
		ResourceID: ctx.Param("resource"),
		Query:      strings.TrimSpace(ctx.Query("q")),
		SortBy:     strings.TrimSpace(ctx.Query("sort")),
		Page:       queryInt(ctx, "page"),
		PerPage:    queryInt(ctx, "per_page"),
	}
	switch strings.ToLower(strings.TrimSpace(ctx.Query("direction"))) {
	case "desc":
		req.Direction = admin.SortDesc
	case "asc":
		req.Direction = admin.SortAsc
	}
	return req
}

func queryInt(ctx router.Context, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(ctx.Query(name)))
	if err != nil {
		return 0
	}
	return value
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, admin.ErrResourceNotFound), errors.Is(err, admin.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, admin.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func defaultViewerResolver(ctx router.Context) admin.ViewerContext {
	var viewer admin.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	if roles, ok := ctx.Locals("roles").([]string); ok {
		viewer.Roles = roles
	}
	viewer.Locale = inferLocale(ctx)
	return viewer
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Param("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if header := ctx.Header("Accept-Language"); header != "" {
		if lang := parseAcceptLanguage(header); lang != "" {
			return lang
		}
	}
	return ""
}

// parseAcceptLanguage returns the highest-quality language the client asked
// for. Matching against the loaded catalogs happens in the translation
// provider.
func parseAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return strings.ToLower(tags[0].String())
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	routes := defaultRouteConfig(cfg.Routes)
	return routes
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/panel"
	}
	if routes.Page == "" {
		routes.Page = "/panel/_page"
	}
	if routes.Records == "" {
		routes.Records = "/resources/:resource/records"
	}
	if routes.RecordNew == "" {
		routes.RecordNew = "/resources/:resource/records/new"
	}
	if routes.RecordID == "" {
		routes.RecordID = "/resources/:resource/records/:id"
	}
	if routes.RecordEdit == "" {
		routes.RecordEdit = "/resources/:resource/records/:id/edit"
	}
	if routes.BulkDelete == "" {
		routes.BulkDelete = "/resources/:resource/records/bulk-delete"
	}
	if routes.Preferences == "" {
		routes.Preferences = "/resources/:resource/preferences"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/panel/ws"
	}
	if routes.Assets == "" {
		routes.Assets = admin.DefaultAssetsPath
	}
	return routes
}
