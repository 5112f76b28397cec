package admin

import (
	"sort"
	"strings"
)

// Branding controls the admin shell chrome: titles, logo, and theme tokens.
type Branding struct {
	Title      string
	LogoURL    string
	FaviconURL string
	Theme      ThemeSelection
}

// ThemeSelection is one resolved theme: design tokens plus asset locations.
type ThemeSelection struct {
	Name       string
	Variant    string
	Tokens     map[string]string
	Assets     ThemeAssets
	ChartTheme string
}

// ThemeAssets locates static files for a theme. Resolver wins over the
// static Values map; Prefix is prepended to bare names.
type ThemeAssets struct {
	Values   map[string]string
	Prefix   string
	Resolver func(name string) string
}

// AssetURL resolves a logical asset name to a URL.
func (a ThemeAssets) AssetURL(name string) string {
	if a.Resolver != nil {
		if url := a.Resolver(name); url != "" {
			return url
		}
	}
	if url, ok := a.Values[name]; ok && url != "" {
		return url
	}
	if a.Prefix == "" {
		return name
	}
	return strings.TrimSuffix(a.Prefix, "/") + "/" + strings.TrimPrefix(name, "/")
}

// ThemeSelector resolves a theme per viewer, letting hosts vary themes by
// role or tenant.
type ThemeSelector func(viewer ViewerContext) ThemeSelection

// CSSVariables returns the tokens keyed as CSS custom properties.
func (s ThemeSelection) CSSVariables() map[string]string {
	out := make(map[string]string, len(s.Tokens))
	for name, value := range s.Tokens {
		out[normalizeCSSVariable(name)] = value
	}
	return out
}

// CSSVariablesInline renders the tokens as an inline style declaration,
// sorted for stable output.
func (s ThemeSelection) CSSVariablesInline() string {
	variables := s.CSSVariables()
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(variables[name])
		b.WriteString(";")
	}
	return b.String()
}

func normalizeCSSVariable(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + strings.TrimPrefix(name, "-")
}

// DefaultBranding is the stock look used when hosts do not configure one.
func DefaultBranding() Branding {
	return Branding{
		Title: "Admin",
		Theme: ThemeSelection{
			Name:    "default",
			Variant: "light",
			Tokens: map[string]string{
				"admin-accent":     "#3040d6",
				"admin-background": "#f7f8fb",
				"admin-surface":    "#ffffff",
				"admin-text":       "#1c1f2b",
			},
		},
	}
}

func cloneThemeSelection(selection ThemeSelection) ThemeSelection {
	if selection.Tokens != nil {
		tokens := make(map[string]string, len(selection.Tokens))
		for name, value := range selection.Tokens {
			tokens[name] = value
		}
		selection.Tokens = tokens
	}
	if selection.Assets.Values != nil {
		values := make(map[string]string, len(selection.Assets.Values))
		for name, value := range selection.Assets.Values {
			values[name] = value
		}
		selection.Assets.Values = values
	}
	return selection
}
