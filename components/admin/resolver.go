package admin

import (
	"strconv"
	"strings"
)

type pathPartsConfig struct {
	dropArrayIndexes bool
}

// PathPartsOption configures PathParts.
type PathPartsOption func(*pathPartsConfig)

// WithoutArrayIndexes drops purely numeric segments so array element paths
// collapse onto the property that owns them: "items.0.name" yields the parts
// "items" and "items.name".
func WithoutArrayIndexes() PathPartsOption {
	return func(cfg *pathPartsConfig) {
		cfg.dropArrayIndexes = true
	}
}

// PathParts expands a dotted path into its cumulative prefixes, root to leaf:
// "a.b.c" yields ["a", "a.b", "a.b.c"]. The final part is always the full
// (index-collapsed) path.
func PathParts(path string, opts ...PathPartsOption) []string {
	var cfg pathPartsConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	segments := strings.Split(path, ".")
	parts := make([]string, 0, len(segments))
	prefix := ""
	for _, segment := range segments {
		if cfg.dropArrayIndexes && isArrayIndex(segment) {
			continue
		}
		if prefix == "" && len(parts) == 0 {
			prefix = segment
		} else {
			prefix = prefix + "." + segment
		}
		parts = append(parts, prefix)
	}
	return parts
}

func isArrayIndex(segment string) bool {
	if segment == "" {
		return false
	}
	_, err := strconv.Atoi(segment)
	return err == nil
}

// ResolveProperty finds the property a dotted path refers to. An exact entry
// under the full path wins outright. Otherwise the cumulative prefixes are
// scanned root to leaf and the first existing mixed property becomes the
// owner; the index-collapsed full key is then resolved among its
// sub-properties. There is no backtracking past the first mixed owner, and a
// single-segment miss never starts a composite search. A missing property is
// reported through the boolean, never as an error.
func ResolveProperty(path string, props *DecoratedProperties) (*Property, bool) {
	if props == nil {
		return nil, false
	}
	if p, ok := props.Get(path); ok {
		return p, true
	}
	parts := PathParts(path, WithoutArrayIndexes())
	if len(parts) < 2 {
		return nil, false
	}
	wanted := parts[len(parts)-1]
	for _, part := range parts {
		owner, ok := props.Get(part)
		if !ok || owner.Type != PropertyMixed {
			continue
		}
		return owner.subProperty(wanted)
	}
	return nil, false
}

// subProperty resolves a full dotted key among p's sub-properties. An exact
// path match wins before any recursion, at every nesting level.
func (p *Property) subProperty(key string) (*Property, bool) {
	for _, sub := range p.SubProperties {
		if sub.Path == key {
			return sub, true
		}
	}
	for _, sub := range p.SubProperties {
		if sub.Type != PropertyMixed {
			continue
		}
		if !strings.HasPrefix(key, sub.Path+".") {
			continue
		}
		if found, ok := sub.subProperty(key); ok {
			return found, true
		}
	}
	return nil, false
}
