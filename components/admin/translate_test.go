package admin

import (
	"reflect"
	"testing"
)

type stubEngine struct {
	language string
	lookupFn func(keys []string, opts LookupOptions) string

	keys [][]string
	opts []LookupOptions
}

func (s *stubEngine) Language() string {
	if s.language == "" {
		return "en"
	}
	return s.language
}

func (s *stubEngine) Lookup(keys []string, opts LookupOptions) string {
	s.keys = append(s.keys, keys)
	s.opts = append(s.opts, opts)
	if s.lookupFn != nil {
		return s.lookupFn(keys, opts)
	}
	return opts.Default
}

func emptyLookup(keys []string, opts LookupOptions) string {
	return opts.Default
}

func TestTranslateActionFallsBackToStartCase(t *testing.T) {
	fns := NewTranslateFunctions(&stubEngine{lookupFn: emptyLookup})

	if got := fns.TranslateAction("delete"); got != "Delete" {
		t.Fatalf("expected Delete, got %q", got)
	}
	if got := fns.TA("bulkDelete"); got != "Bulk Delete" {
		t.Fatalf("expected Bulk Delete, got %q", got)
	}
}

func TestTranslatePropertyProbesResourceKeyFirst(t *testing.T) {
	engine := &stubEngine{lookupFn: emptyLookup}
	fns := NewTranslateFunctions(engine)

	if got := fns.TranslateProperty("email", ForResource("Users")); got != "Email" {
		t.Fatalf("expected Email fallback, got %q", got)
	}
	want := []string{"resources.Users.properties.email", "properties.email"}
	if !reflect.DeepEqual(engine.keys[0], want) {
		t.Fatalf("expected candidate keys %v, got %v", want, engine.keys[0])
	}
}

func TestTranslatePropertyResolvesResourceOverride(t *testing.T) {
	catalog := NewCatalog("en", map[string]map[string]string{
		"en": {
			"resources.Users.properties.email": "Work Email",
			"properties.email":                 "Email Address",
		},
	})
	fns := NewTranslateFunctions(catalog)

	if got := fns.TP("email", ForResource("Users")); got != "Work Email" {
		t.Fatalf("expected the resource override, got %q", got)
	}
	if got := fns.TP("email"); got != "Email Address" {
		t.Fatalf("expected the shared key, got %q", got)
	}
}

func TestTranslateWithoutResourceProbesSingleKey(t *testing.T) {
	engine := &stubEngine{lookupFn: emptyLookup}
	fns := NewTranslateFunctions(engine)

	fns.TranslateButton("save")
	want := []string{"buttons.save"}
	if !reflect.DeepEqual(engine.keys[0], want) {
		t.Fatalf("expected %v, got %v", want, engine.keys[0])
	}
}

func TestTranslateDebugLocaleShortCircuits(t *testing.T) {
	engine := &stubEngine{language: DebugLocale}
	fns := NewTranslateFunctions(engine)

	if got := fns.TranslateButton("save", ForResource("X")); got != "buttons.save" {
		t.Fatalf("expected buttons.save, got %q", got)
	}
	if got := fns.TranslatePage("overview", WithDefault("ignored")); got != "pages.overview" {
		t.Fatalf("expected pages.overview, got %q", got)
	}
	if len(engine.keys) != 0 {
		t.Fatalf("expected no engine lookups under the debug locale, got %d", len(engine.keys))
	}
}

func TestTranslateMessageDefaultsToRawName(t *testing.T) {
	fns := NewTranslateFunctions(&stubEngine{lookupFn: emptyLookup})

	if got := fns.TranslateMessage("recordCreated"); got != "recordCreated" {
		t.Fatalf("expected the raw name, got %q", got)
	}
	if got := fns.TM("somethingWentWrong"); got != "somethingWentWrong" {
		t.Fatalf("expected the raw name, got %q", got)
	}
}

func TestTranslateExplicitDefaultWins(t *testing.T) {
	fns := NewTranslateFunctions(&stubEngine{lookupFn: emptyLookup})

	if got := fns.TranslateLabel("navigation", WithDefault("Menu")); got != "Menu" {
		t.Fatalf("expected Menu, got %q", got)
	}
	if got := fns.TranslateLabel("navigation", WithDefault("")); got != "" {
		t.Fatalf("expected the explicit empty default to be honored, got %q", got)
	}
}

func TestTranslatePassesInterpolationData(t *testing.T) {
	engine := &stubEngine{lookupFn: emptyLookup}
	fns := NewTranslateFunctions(engine)

	data := map[string]any{"count": 3}
	fns.TranslateMessage("deletedRecords", WithData(data))
	if got := engine.opts[0].Data["count"]; got != 3 {
		t.Fatalf("expected interpolation data to reach the engine, got %v", got)
	}
}

func TestTranslateRawLookupPassthrough(t *testing.T) {
	engine := &stubEngine{lookupFn: func(keys []string, opts LookupOptions) string {
		return keys[0] + "!"
	}}
	fns := NewTranslateFunctions(engine)

	if got := fns.T([]string{"custom.key"}, LookupOptions{}); got != "custom.key!" {
		t.Fatalf("expected the raw engine result, got %q", got)
	}
	if got := fns.Translate([]string{"other.key"}, LookupOptions{}); got != "other.key!" {
		t.Fatalf("expected the raw engine result, got %q", got)
	}
}

func TestTranslateShorthandsShareBehavior(t *testing.T) {
	catalog := NewCatalog("en", map[string]map[string]string{
		"en": {"components.sidebar": "Sidebar Nav"},
	})
	fns := NewTranslateFunctions(catalog)

	long := fns.TranslateComponent("sidebar")
	short := fns.TC("sidebar")
	if long != short || long != "Sidebar Nav" {
		t.Fatalf("expected identical results, got %q and %q", long, short)
	}
}

func TestStartCase(t *testing.T) {
	cases := map[string]string{
		"userProfile": "User Profile",
		"bulkDelete":  "Bulk Delete",
		"email":       "Email",
		"created_at":  "Created At",
	}
	for in, want := range cases {
		if got := StartCase(in); got != want {
			t.Fatalf("StartCase(%q): expected %q, got %q", in, want, got)
		}
	}
}
