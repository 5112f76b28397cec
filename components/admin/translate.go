package admin

import (
	"github.com/ettle/strcase"
)

// DebugLocale short-circuits every scoped translation to its catalog key so
// integrators can audit which keys a page resolves.
const DebugLocale = "cimode"

// Scope names a translation namespace within the catalog.
type Scope string

const (
	ScopeActions    Scope = "actions"
	ScopeButtons    Scope = "buttons"
	ScopeLabels     Scope = "labels"
	ScopeProperties Scope = "properties"
	ScopeMessages   Scope = "messages"
	ScopeComponents Scope = "components"
	ScopePages      Scope = "pages"
)

// LookupOptions carries the fallback text and interpolation values for a
// catalog lookup.
type LookupOptions struct {
	Default string
	Data    map[string]any
}

// Engine is the translation backend the facade wraps. Lookup probes the
// candidate keys in order and returns the text of the first key the catalog
// knows, falling back to opts.Default.
type Engine interface {
	Language() string
	Lookup(keys []string, opts LookupOptions) string
}

type translateConfig struct {
	resourceID string
	fallback   string
	hasDefault bool
	data       map[string]any
}

// TranslateOption adjusts a single scoped translation call.
type TranslateOption func(*translateConfig)

// ForResource scopes the lookup to one resource, probing
// "resources.<id>.<scope>.<name>" before the unscoped key.
func ForResource(resourceID string) TranslateOption {
	return func(cfg *translateConfig) {
		cfg.resourceID = resourceID
	}
}

// WithDefault overrides the computed fallback text. An explicitly empty
// default is honored.
func WithDefault(value string) TranslateOption {
	return func(cfg *translateConfig) {
		cfg.fallback = value
		cfg.hasDefault = true
	}
}

// WithData supplies interpolation values for placeholders in the resolved
// text.
func WithData(data map[string]any) TranslateOption {
	return func(cfg *translateConfig) {
		cfg.data = data
	}
}

// TranslateFunc is a scoped translation helper.
type TranslateFunc func(name string, opts ...TranslateOption) string

// LookupFunc is the raw engine lookup exposed alongside the scoped helpers.
type LookupFunc func(keys []string, opts LookupOptions) string

// TranslateFunctions bundles the scoped translation helpers for one engine.
// Fields are plain funcs so callers can pass the bundle around or rebind
// individual helpers.
type TranslateFunctions struct {
	Translate LookupFunc
	T         LookupFunc

	TranslateAction    TranslateFunc
	TA                 TranslateFunc
	TranslateButton    TranslateFunc
	TB                 TranslateFunc
	TranslateLabel     TranslateFunc
	TL                 TranslateFunc
	TranslateProperty  TranslateFunc
	TP                 TranslateFunc
	TranslateMessage   TranslateFunc
	TM                 TranslateFunc
	TranslateComponent TranslateFunc
	TC                 TranslateFunc
	TranslatePage      TranslateFunc
}

// NewTranslateFunctions builds the scoped helpers over an engine. Every scope
// falls back to the start-cased name except messages, which fall back to the
// name verbatim.
func NewTranslateFunctions(engine Engine) *TranslateFunctions {
	lookup := func(keys []string, opts LookupOptions) string {
		return engine.Lookup(keys, opts)
	}
	action := scopedTranslator(engine, ScopeActions, StartCase)
	button := scopedTranslator(engine, ScopeButtons, StartCase)
	label := scopedTranslator(engine, ScopeLabels, StartCase)
	property := scopedTranslator(engine, ScopeProperties, StartCase)
	message := scopedTranslator(engine, ScopeMessages, func(name string) string { return name })
	component := scopedTranslator(engine, ScopeComponents, StartCase)
	page := scopedTranslator(engine, ScopePages, StartCase)

	return &TranslateFunctions{
		Translate:          lookup,
		T:                  lookup,
		TranslateAction:    action,
		TA:                 action,
		TranslateButton:    button,
		TB:                 button,
		TranslateLabel:     label,
		TL:                 label,
		TranslateProperty:  property,
		TP:                 property,
		TranslateMessage:   message,
		TM:                 message,
		TranslateComponent: component,
		TC:                 component,
		TranslatePage:      page,
	}
}

// scopedTranslator binds one scope to the engine. Under the debug locale the
// helper returns "<scope>.<name>" and ignores every option, resource scoping
// included.
func scopedTranslator(engine Engine, scope Scope, fallback func(string) string) TranslateFunc {
	return func(name string, opts ...TranslateOption) string {
		if engine.Language() == DebugLocale {
			return string(scope) + "." + name
		}
		var cfg translateConfig
		for _, opt := range opts {
			opt(&cfg)
		}
		def := cfg.fallback
		if !cfg.hasDefault {
			def = fallback(name)
		}
		return engine.Lookup(candidateKeys(scope, name, cfg.resourceID), LookupOptions{
			Default: def,
			Data:    cfg.data,
		})
	}
}

// candidateKeys orders the catalog keys most specific first. Resource scoping
// contributes "resources.<id>.<scope>.<name>" ahead of the shared
// "<scope>.<name>".
func candidateKeys(scope Scope, name, resourceID string) []string {
	scoped := string(scope) + "." + name
	if resourceID == "" {
		return []string{scoped}
	}
	return []string{"resources." + resourceID + "." + scoped, scoped}
}

// StartCase converts an identifier to spaced title case, the default label
// shown when no catalog entry exists: "userProfile" becomes "User Profile".
func StartCase(s string) string {
	return strcase.ToCase(s, strcase.TitleCase, ' ')
}
