package admin

import "strings"

// ResolveLocalizedValue picks the best text from a locale-keyed map: the
// exact locale first, then its base language, then the "default" entry, and
// finally the fallback argument. Matching is case-insensitive.
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	normalized := normalizeLocaleMap(values)
	for _, candidate := range localeCandidates(locale) {
		if text, ok := normalized[candidate]; ok && text != "" {
			return text
		}
	}
	return fallback
}

// localeCandidates orders the lookup keys for a locale: the locale itself,
// its base language when the locale carries a region, then "default".
func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	candidates := make([]string, 0, 3)
	if locale != "" {
		candidates = append(candidates, locale)
		if i := strings.IndexByte(locale, '-'); i > 0 {
			candidates = append(candidates, locale[:i])
		}
	}
	return append(candidates, "default")
}

func normalizeLocaleMap(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for locale, text := range values {
		out[normalizeLocale(locale)] = text
	}
	return out
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(locale, "_", "-")))
}

// LabelForLocale resolves the resource's navigation label for a locale,
// preferring the localized map over the plain label.
func (r Resource) LabelForLocale(locale string) string {
	return ResolveLocalizedValue(r.LabelLocalized, locale, r.Label)
}
