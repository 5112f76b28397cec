package admin

import (
	"fmt"
	"sync"
)

// ResourceHook customizes a registry as it is constructed. Hooks registered
// through RegisterResourceHook run for every new registry, letting packages
// contribute resources from init functions.
type ResourceHook func(*Registry)

var (
	globalHookMu sync.Mutex
	globalHooks  []ResourceHook
)

// RegisterResourceHook appends a construction hook applied to every registry
// created afterwards.
func RegisterResourceHook(hook ResourceHook) {
	if hook == nil {
		return
	}
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, hook)
}

func snapshotHooks() []ResourceHook {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	hooks := make([]ResourceHook, len(globalHooks))
	copy(hooks, globalHooks)
	return hooks
}

// ResourceMeta records where a manifest-loaded resource came from.
type ResourceMeta struct {
	Source      string
	Package     string
	Maintainers []string
}

// Registry tracks the resources an admin panel administers.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
	order     []string
	meta      map[string]ResourceMeta
}

// NewRegistry builds an empty registry and applies the global hooks.
func NewRegistry() *Registry {
	r := &Registry{
		resources: make(map[string]Resource),
		meta:      make(map[string]ResourceMeta),
	}
	r.ApplyHooks()
	return r
}

// ApplyHooks runs the globally registered construction hooks.
func (r *Registry) ApplyHooks() {
	for _, hook := range snapshotHooks() {
		hook(r)
	}
}

// RegisterResource stores a resource keyed by its id. Re-registering replaces
// the stored resource while keeping its original position.
func (r *Registry) RegisterResource(resource Resource) error {
	if resource.ID == "" {
		return fmt.Errorf("admin: resource id is required")
	}
	normalized := normalizeResource(resource)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resources[normalized.ID]; !ok {
		r.order = append(r.order, normalized.ID)
	}
	r.resources[normalized.ID] = normalized
	return nil
}

// Resource returns the registered resource for an id.
func (r *Registry) Resource(id string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resource, ok := r.resources[id]
	return resource, ok
}

// Resources lists resources in registration order.
func (r *Registry) Resources() []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resource, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.resources[id])
	}
	return out
}

// ResourceMetadata returns manifest provenance for a resource, when known.
func (r *Registry) ResourceMetadata(id string) (ResourceMeta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.meta[id]
	return meta, ok
}

func (r *Registry) recordResourceMetadata(id string, meta ResourceMeta) {
	if meta.Source == "" && meta.Package == "" && len(meta.Maintainers) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta[id] = meta
}

// LoadManifestFile reads a resource manifest from disk and registers every
// resource it declares.
func (r *Registry) LoadManifestFile(path string) error {
	doc, err := LoadManifestFile(path)
	if err != nil {
		return err
	}
	return r.LoadManifestDocument(doc)
}

// LoadManifestDocument registers every resource in an already-decoded
// manifest.
func (r *Registry) LoadManifestDocument(doc ResourceManifestDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	for _, entry := range doc.Resources {
		resource := entry.Resource()
		if err := r.RegisterResource(resource); err != nil {
			return fmt.Errorf("admin: manifest %s: %w", doc.Name, err)
		}
		r.recordResourceMetadata(resource.ID, ResourceMeta{
			Source:      doc.Source,
			Package:     doc.Package,
			Maintainers: entry.Maintainers,
		})
	}
	return nil
}

// normalizeResource fills derivable fields: decorated properties from nil,
// the default action set, and a title property picked from the flagged
// property, the id property, or the first one.
func normalizeResource(resource Resource) Resource {
	if resource.Properties == nil {
		resource.Properties = NewDecoratedProperties()
	}
	if len(resource.Actions) == 0 {
		resource.Actions = DefaultActions()
	}
	if resource.Label == "" {
		resource.Label = StartCase(resource.ID)
	}
	if resource.TitleProperty == "" {
		resource.TitleProperty = pickTitleProperty(resource.Properties)
	}
	return resource
}

func pickTitleProperty(props *DecoratedProperties) string {
	var fallback string
	props.Range(func(path string, p *Property) bool {
		if p.IsTitle {
			fallback = path
			return false
		}
		if fallback == "" && !p.IsID {
			fallback = path
		}
		return true
	})
	if fallback == "" {
		if _, ok := props.Get("id"); ok {
			return "id"
		}
	}
	return fallback
}
