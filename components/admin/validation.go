package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PropertyErrors maps property paths to validation failures.
type PropertyErrors map[string]string

func (e PropertyErrors) Error() string {
	if len(e) == 0 {
		return "admin: record is invalid"
	}
	paths := make([]string, 0, len(e))
	for path := range e {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	var b strings.Builder
	b.WriteString("admin: record is invalid:")
	for _, path := range paths {
		fmt.Fprintf(&b, " %s=%s;", path, e[path])
	}
	return strings.TrimSuffix(b.String(), ";")
}

// SchemaValidator validates record params against a JSON schema derived from
// the resource's properties. Compiled schemas are cached per resource id.
type SchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator builds an empty validator cache.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate checks required properties first, then the generated schema.
func (v *SchemaValidator) Validate(ctx context.Context, resource Resource, params map[string]any) error {
	if errs := missingRequired(resource, params); len(errs) > 0 {
		return errs
	}
	schema, err := v.schemaFor(resource)
	if err != nil {
		return err
	}
	if schema == nil {
		return nil
	}

	// Round-trip through JSON so values carry the types the schema
	// library expects.
	nested := unflattenParams(params)
	raw, err := json.Marshal(nested)
	if err != nil {
		return fmt.Errorf("admin: encode record params: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("admin: normalize record params: %w", err)
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("admin: record for resource %s is invalid: %w", resource.ID, err)
	}
	return nil
}

func missingRequired(resource Resource, params map[string]any) PropertyErrors {
	errs := PropertyErrors{}
	resource.Properties.Range(func(path string, p *Property) bool {
		if !p.IsRequired {
			return true
		}
		value, ok := params[path]
		if !ok || value == nil || value == "" {
			errs[path] = "required"
		}
		return true
	})
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *SchemaValidator) schemaFor(resource Resource) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[resource.ID]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}

	document := BuildRecordSchema(resource)
	if document == nil {
		return nil, nil
	}
	raw, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("admin: encode schema for resource %s: %w", resource.ID, err)
	}
	compiler := jsonschema.NewCompiler()
	name := resource.ID + ".json"
	if err := compiler.AddResource(name, strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("admin: register schema for resource %s: %w", resource.ID, err)
	}
	schema, err = compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("admin: compile schema for resource %s: %w", resource.ID, err)
	}

	v.mu.Lock()
	v.compiled[resource.ID] = schema
	v.mu.Unlock()
	return schema, nil
}

// BuildRecordSchema derives a JSON schema object from a resource's decorated
// properties. Nil is returned for resources without properties so validation
// becomes a no-op.
func BuildRecordSchema(resource Resource) map[string]any {
	if resource.Properties.Len() == 0 {
		return nil
	}
	properties := make(map[string]any)
	resource.Properties.Range(func(path string, p *Property) bool {
		properties[lastSegment(path)] = propertySchema(p)
		return true
	})
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
}

func propertySchema(p *Property) map[string]any {
	var schema map[string]any
	switch p.Type {
	case PropertyNumber:
		schema = map[string]any{"type": "integer"}
	case PropertyFloat, PropertyCurrency:
		schema = map[string]any{"type": "number"}
	case PropertyBoolean:
		schema = map[string]any{"type": "boolean"}
	case PropertyKeyValue:
		schema = map[string]any{"type": "object"}
	case PropertyMixed:
		nested := make(map[string]any, len(p.SubProperties))
		for _, sub := range p.SubProperties {
			nested[lastSegment(sub.Path)] = propertySchema(sub)
		}
		schema = map[string]any{
			"type":                 "object",
			"properties":           nested,
			"additionalProperties": true,
		}
	default:
		schema = map[string]any{"type": "string"}
	}
	if p.IsArray {
		return map[string]any{"type": "array", "items": schema}
	}
	return schema
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// unflattenParams rebuilds nested values from flat dotted keys. Runs of
// numeric segments become arrays, everything else becomes objects.
func unflattenParams(params map[string]any) map[string]any {
	tree := make(map[string]any, len(params))
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		insertPath(tree, strings.Split(key, "."), params[key])
	}
	return liftArrays(tree).(map[string]any)
}

func insertPath(node map[string]any, segments []string, value any) {
	head := segments[0]
	if len(segments) == 1 {
		node[head] = value
		return
	}
	child, ok := node[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		node[head] = child
	}
	insertPath(child, segments[1:], value)
}

// liftArrays converts maps keyed entirely by integers into slices ordered by
// index.
func liftArrays(value any) any {
	node, ok := value.(map[string]any)
	if !ok {
		return value
	}
	numeric := len(node) > 0
	indexes := make([]int, 0, len(node))
	for key := range node {
		i, err := strconv.Atoi(key)
		if err != nil {
			numeric = false
			break
		}
		indexes = append(indexes, i)
	}
	if numeric {
		sort.Ints(indexes)
		out := make([]any, 0, len(indexes))
		for _, i := range indexes {
			out = append(out, liftArrays(node[strconv.Itoa(i)]))
		}
		return out
	}
	for key, child := range node {
		node[key] = liftArrays(child)
	}
	return node
}

type noopRecordValidator struct{}

func (noopRecordValidator) Validate(context.Context, Resource, map[string]any) error {
	return nil
}
