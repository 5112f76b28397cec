package admin

import (
	core "github.com/goliatone/go-admin/components/admin"
)

// Service exposes the underlying components/admin.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// Property resolution surface.
type (
	Property            = core.Property
	PropertyType        = core.PropertyType
	DecoratedProperties = core.DecoratedProperties
)

// ResolveProperty resolves a dotted property path against a decorated set.
func ResolveProperty(path string, props *DecoratedProperties) (*Property, bool) {
	return core.ResolveProperty(path, props)
}

// DecorateProperties nests flat raw columns into an ordered property set.
func DecorateProperties(raw []Property) *DecoratedProperties {
	return core.DecorateProperties(raw)
}

// Translation surface.
type (
	Engine             = core.Engine
	LookupOptions      = core.LookupOptions
	TranslateFunctions = core.TranslateFunctions
	TranslateOption    = core.TranslateOption
)

// NewTranslateFunctions builds the scoped translation helpers for an engine.
func NewTranslateFunctions(engine Engine) *TranslateFunctions {
	return core.NewTranslateFunctions(engine)
}

// ForResource scopes a translation lookup to one resource.
func ForResource(resourceID string) TranslateOption {
	return core.ForResource(resourceID)
}

// WithDefault overrides the computed fallback text.
func WithDefault(value string) TranslateOption {
	return core.WithDefault(value)
}

// WithData supplies interpolation values.
func WithData(data map[string]any) TranslateOption {
	return core.WithData(data)
}

// StartCase converts an identifier to spaced title case.
func StartCase(s string) string {
	return core.StartCase(s)
}
