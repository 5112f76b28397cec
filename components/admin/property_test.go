package admin

import (
	"reflect"
	"testing"
)

func TestDecoratePropertiesNestsDottedColumns(t *testing.T) {
	props := DecorateProperties([]Property{
		{Path: "id", Type: PropertyUUID, IsID: true},
		{Path: "meta.title", Type: PropertyString},
		{Path: "meta.description", Type: PropertyTextarea},
		{Path: "email", Type: PropertyString},
	})

	want := []string{"id", "meta", "email"}
	if got := props.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}

	meta, ok := props.Get("meta")
	if !ok {
		t.Fatalf("expected a synthesized meta parent")
	}
	if meta.Type != PropertyMixed {
		t.Fatalf("expected the parent to be mixed, got %s", meta.Type)
	}
	if len(meta.SubProperties) != 2 {
		t.Fatalf("expected 2 sub-properties, got %d", len(meta.SubProperties))
	}
	if meta.SubProperties[0].Path != "meta.title" {
		t.Fatalf("expected sub-properties to keep full paths, got %s", meta.SubProperties[0].Path)
	}
}

func TestDecoratePropertiesMergesExplicitParent(t *testing.T) {
	props := DecorateProperties([]Property{
		{Path: "meta.title", Type: PropertyString},
		{Path: "meta", Type: PropertyMixed, Label: "Metadata"},
	})

	meta, ok := props.Get("meta")
	if !ok {
		t.Fatalf("expected the meta parent")
	}
	if meta.Label != "Metadata" {
		t.Fatalf("expected the declared label to survive the merge, got %q", meta.Label)
	}
	if len(meta.SubProperties) != 1 || meta.SubProperties[0].Path != "meta.title" {
		t.Fatalf("expected the earlier child to survive the merge, got %+v", meta.SubProperties)
	}
}

func TestDecoratePropertiesDeepChain(t *testing.T) {
	props := DecorateProperties([]Property{
		{Path: "address.geo.lat", Type: PropertyFloat},
		{Path: "address.geo.lng", Type: PropertyFloat},
	})

	got, ok := ResolveProperty("address.geo.lng", props)
	if !ok {
		t.Fatalf("expected the deep chain to resolve")
	}
	if got.Type != PropertyFloat {
		t.Fatalf("expected the leaf property, got %+v", got)
	}
}

func TestDecoratePropertiesNonMixedParentFallsBackToTopLevel(t *testing.T) {
	props := DecorateProperties([]Property{
		{Path: "meta", Type: PropertyString},
		{Path: "meta.title", Type: PropertyString},
	})

	if _, ok := props.Get("meta.title"); !ok {
		t.Fatalf("expected the dotted property stored top-level when the parent is not mixed")
	}
	got, ok := ResolveProperty("meta.title", props)
	if !ok {
		t.Fatalf("expected a direct hit on the dotted key")
	}
	if got.Path != "meta.title" {
		t.Fatalf("expected meta.title, got %s", got.Path)
	}
}

func TestDecoratedPropertiesReplaceKeepsOrder(t *testing.T) {
	props := NewDecoratedProperties(
		&Property{Path: "a", Type: PropertyString},
		&Property{Path: "b", Type: PropertyString},
		&Property{Path: "a", Type: PropertyNumber},
	)

	want := []string{"a", "b"}
	if got := props.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	a, _ := props.Get("a")
	if a.Type != PropertyNumber {
		t.Fatalf("expected the later entry to replace the earlier one")
	}
}

func TestVisibleFiltersAndOrdersByPosition(t *testing.T) {
	props := NewDecoratedProperties(
		&Property{Path: "b", Type: PropertyString, Position: 2, Availability: PropertyAvailability{List: true}},
		&Property{Path: "hidden", Type: PropertyString},
		&Property{Path: "a", Type: PropertyString, Position: 1, Availability: PropertyAvailability{List: true}},
	)

	visible := props.Visible("list")
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible properties, got %d", len(visible))
	}
	if visible[0].Path != "a" || visible[1].Path != "b" {
		t.Fatalf("expected position ordering, got %s then %s", visible[0].Path, visible[1].Path)
	}
}

func TestRangeStopsEarly(t *testing.T) {
	props := NewDecoratedProperties(
		&Property{Path: "a", Type: PropertyString},
		&Property{Path: "b", Type: PropertyString},
	)

	seen := 0
	props.Range(func(string, *Property) bool {
		seen++
		return false
	})
	if seen != 1 {
		t.Fatalf("expected the walk to stop after one entry, got %d", seen)
	}
}
