package admin

import (
	"reflect"
	"testing"
)

func TestPathPartsCumulative(t *testing.T) {
	got := PathParts("a.b.c")
	want := []string{"a", "a.b", "a.b.c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPathPartsKeepsIndexesByDefault(t *testing.T) {
	got := PathParts("items.0.name")
	want := []string{"items", "items.0", "items.0.name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPathPartsWithoutArrayIndexes(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"items.0.name", []string{"items", "items.name"}},
		{"items.0", []string{"items"}},
		{"a.0.b.1.c", []string{"a", "a.b", "a.b.c"}},
		{"a.b.c", []string{"a", "a.b", "a.b.c"}},
		{"12.name", []string{"name"}},
	}
	for _, tc := range cases {
		got := PathParts(tc.path, WithoutArrayIndexes())
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("PathParts(%q): expected %v, got %v", tc.path, tc.want, got)
		}
	}
}

func TestResolvePropertyDirectHitWinsOverComposite(t *testing.T) {
	direct := &Property{Path: "meta.title", Type: PropertyString}
	shadow := &Property{Path: "meta", Type: PropertyMixed, SubProperties: []*Property{
		{Path: "meta.title", Type: PropertyTextarea},
	}}
	props := NewDecoratedProperties(shadow, direct)

	got, ok := ResolveProperty("meta.title", props)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got != direct {
		t.Fatalf("expected the direct entry, got %+v", got)
	}
}

func TestResolvePropertyCollapsesArrayIndexes(t *testing.T) {
	items := &Property{Path: "items", Type: PropertyMixed, IsArray: true, SubProperties: []*Property{
		{Path: "items.name", Type: PropertyString},
		{Path: "items.qty", Type: PropertyNumber},
	}}
	props := NewDecoratedProperties(items)

	got, ok := ResolveProperty("items.0.name", props)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.Path != "items.name" {
		t.Fatalf("expected items.name, got %s", got.Path)
	}
}

func TestResolvePropertyRecursesThroughNestedMixed(t *testing.T) {
	address := &Property{Path: "address", Type: PropertyMixed, SubProperties: []*Property{
		{Path: "address.geo", Type: PropertyMixed, SubProperties: []*Property{
			{Path: "address.geo.lat", Type: PropertyFloat},
		}},
	}}
	props := NewDecoratedProperties(address)

	got, ok := ResolveProperty("address.geo.lat", props)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.Type != PropertyFloat {
		t.Fatalf("expected the leaf float property, got %+v", got)
	}
}

func TestResolvePropertyExactSubMatchBeatsRecursion(t *testing.T) {
	flat := &Property{Path: "address.geo.lat", Type: PropertyString}
	address := &Property{Path: "address", Type: PropertyMixed, SubProperties: []*Property{
		{Path: "address.geo", Type: PropertyMixed, SubProperties: []*Property{
			{Path: "address.geo.lat", Type: PropertyFloat},
		}},
		flat,
	}}
	props := NewDecoratedProperties(address)

	got, ok := ResolveProperty("address.geo.lat", props)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got != flat {
		t.Fatalf("expected the exact sub-property, got %+v", got)
	}
}

func TestResolvePropertyFirstMixedOwnerWinsWithoutBacktracking(t *testing.T) {
	props := NewDecoratedProperties(
		&Property{Path: "a", Type: PropertyMixed, SubProperties: []*Property{
			{Path: "a.other", Type: PropertyString},
		}},
		&Property{Path: "a.b", Type: PropertyMixed, SubProperties: []*Property{
			{Path: "a.b.c", Type: PropertyString},
		}},
	)

	if got, ok := ResolveProperty("a.b.c", props); ok {
		t.Fatalf("expected no match once the first mixed owner misses, got %+v", got)
	}
}

func TestResolvePropertySkipsNonMixedParts(t *testing.T) {
	props := NewDecoratedProperties(
		&Property{Path: "a", Type: PropertyString},
		&Property{Path: "a.b", Type: PropertyMixed, SubProperties: []*Property{
			{Path: "a.b.c", Type: PropertyBoolean},
		}},
	)

	got, ok := ResolveProperty("a.b.c", props)
	if !ok {
		t.Fatalf("expected a match through the deeper mixed part")
	}
	if got.Type != PropertyBoolean {
		t.Fatalf("expected a.b.c, got %+v", got)
	}
}

func TestResolvePropertySinglePartMiss(t *testing.T) {
	props := NewDecoratedProperties(&Property{Path: "name", Type: PropertyString})

	if _, ok := ResolveProperty("nope", props); ok {
		t.Fatalf("expected a single-segment miss to resolve nothing")
	}
	if _, ok := ResolveProperty("", props); ok {
		t.Fatalf("expected the empty path to resolve nothing")
	}
	if _, ok := ResolveProperty("items.0", props); ok {
		t.Fatalf("expected an index-only suffix to collapse to a single part")
	}
}

func TestResolvePropertyNilSet(t *testing.T) {
	if _, ok := ResolveProperty("anything", nil); ok {
		t.Fatalf("expected no match on a nil property set")
	}
}
