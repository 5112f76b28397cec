package admin

import (
	"fmt"
	"strings"
	"sync"
)

// Catalog is an in-memory translation engine: locale to key to text. It is
// immutable after construction and safe for concurrent lookups without
// locking.
type Catalog struct {
	language string
	fallback string
	messages map[string]map[string]string
}

// CatalogOption configures NewCatalog.
type CatalogOption func(*Catalog)

// WithFallbackLocale sets the locale consulted when the active locale has no
// text for any candidate key.
func WithFallbackLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		c.fallback = locale
	}
}

// NewCatalog copies the message tables and fixes the active language. The
// fallback locale defaults to "en".
func NewCatalog(language string, messages map[string]map[string]string, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		language: language,
		fallback: "en",
		messages: make(map[string]map[string]string, len(messages)),
	}
	for locale, table := range messages {
		copied := make(map[string]string, len(table))
		for key, text := range table {
			copied[key] = text
		}
		c.messages[locale] = copied
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language reports the active locale.
func (c *Catalog) Language() string {
	return c.language
}

// Lookup probes the candidate keys in order against the active locale, then
// the fallback locale, and interpolates the first hit. Key order outranks
// locale: a specific key served from the fallback locale beats a generic key
// in the active one.
func (c *Catalog) Lookup(keys []string, opts LookupOptions) string {
	for _, key := range keys {
		if text, ok := c.Text(c.language, key); ok {
			return interpolate(text, opts.Data)
		}
		if c.fallback != "" && c.fallback != c.language {
			if text, ok := c.Text(c.fallback, key); ok {
				return interpolate(text, opts.Data)
			}
		}
	}
	return interpolate(opts.Default, opts.Data)
}

// Text returns the raw catalog entry for a locale and key.
func (c *Catalog) Text(locale, key string) (string, bool) {
	table, ok := c.messages[locale]
	if !ok {
		return "", false
	}
	text, ok := table[key]
	return text, ok
}

// Locales lists the locales the catalog carries text for.
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		locales = append(locales, locale)
	}
	return locales
}

// CatalogTranslatorProvider serves per-locale catalog engines over one set of
// message tables. Engines are cached per normalized locale, so the debug
// locale yields an engine whose language reports as such and scoped helpers
// short-circuit to their keys.
type CatalogTranslatorProvider struct {
	mu       sync.Mutex
	messages map[string]map[string]string
	fallback string
	engines  map[string]*Catalog
}

var _ TranslatorProvider = (*CatalogTranslatorProvider)(nil)

// NewCatalogTranslatorProvider copies the message tables. The fallback locale
// defaults to "en".
func NewCatalogTranslatorProvider(messages map[string]map[string]string) *CatalogTranslatorProvider {
	copied := make(map[string]map[string]string, len(messages))
	for locale, table := range messages {
		inner := make(map[string]string, len(table))
		for key, text := range table {
			inner[key] = text
		}
		copied[normalizeLocale(locale)] = inner
	}
	return &CatalogTranslatorProvider{
		messages: copied,
		fallback: "en",
		engines:  make(map[string]*Catalog),
	}
}

// Engine returns the catalog fixed to the requested locale, building it on
// first use.
func (p *CatalogTranslatorProvider) Engine(locale string) Engine {
	key := normalizeLocale(locale)
	if key == "" {
		key = p.fallback
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if engine, ok := p.engines[key]; ok {
		return engine
	}
	engine := NewCatalog(key, p.messages, WithFallbackLocale(p.fallback))
	p.engines[key] = engine
	return engine
}

// interpolate substitutes "{{name}}" placeholders from data. Unknown
// placeholders stay verbatim.
func interpolate(text string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	var b strings.Builder
	for {
		start := strings.Index(text, "{{")
		if start < 0 {
			b.WriteString(text)
			break
		}
		end := strings.Index(text[start:], "}}")
		if end < 0 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:start])
		name := strings.TrimSpace(text[start+2 : start+end])
		if value, ok := data[name]; ok {
			fmt.Fprintf(&b, "%v", value)
		} else {
			b.WriteString(text[start : start+end+2])
		}
		text = text[start+end+2:]
	}
	return b.String()
}
