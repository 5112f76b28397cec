package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	admin "github.com/goliatone/go-admin/components/admin"
)

// Provider serves per-locale translation engines backed by a go-i18n message
// bundle. Message files are TOML or JSON, named the go-i18n way
// (active.<lang>.toml), with catalog keys written as quoted dotted table
// names:
//
//	["actions.edit"]
//	other = "Edit"
type Provider struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

var _ admin.TranslatorProvider = (*Provider)(nil)

// NewProvider builds an empty provider whose lookups fall back to
// defaultLocale.
func NewProvider(defaultLocale string) (*Provider, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse default locale %q: %w", defaultLocale, err)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	return &Provider{bundle: bundle, fallback: tag}, nil
}

// NewProviderFromCatalog builds a provider preloaded with catalog-style
// message tables, locale to key to text.
func NewProviderFromCatalog(defaultLocale string, messages map[string]map[string]string) (*Provider, error) {
	provider, err := NewProvider(defaultLocale)
	if err != nil {
		return nil, err
	}
	for locale, table := range messages {
		if err := provider.LoadMessages(locale, table); err != nil {
			return nil, err
		}
	}
	return provider, nil
}

// LoadFile loads one message file from disk.
func (p *Provider) LoadFile(path string) error {
	if _, err := p.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("i18n: load %s: %w", path, err)
	}
	return nil
}

// LoadFS loads the named message files from fsys, usually an embed.FS.
func (p *Provider) LoadFS(fsys fs.FS, files ...string) error {
	for _, file := range files {
		if _, err := p.bundle.LoadMessageFileFS(fsys, file); err != nil {
			return fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}
	return nil
}

// catalogPlaceholder matches "{{name}}" so catalog texts can be rewritten to
// the "{{.name}}" template style go-i18n renders.
var catalogPlaceholder = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// LoadMessages registers an in-memory message table for one locale. Texts use
// catalog placeholders ("{{count}}") and are rewritten for go-i18n.
func (p *Provider) LoadMessages(locale string, messages map[string]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("i18n: parse locale %q: %w", locale, err)
	}
	msgs := make([]*i18n.Message, 0, len(messages))
	for id, text := range messages {
		msgs = append(msgs, &i18n.Message{
			ID:    id,
			Other: catalogPlaceholder.ReplaceAllString(text, "{{.$1}}"),
		})
	}
	if err := p.bundle.AddMessages(tag, msgs...); err != nil {
		return fmt.Errorf("i18n: add messages for %s: %w", locale, err)
	}
	return nil
}

// Locales lists the locales the bundle carries messages for, default first.
func (p *Provider) Locales() []string {
	tags := p.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.ToLower(tag.String()))
	}
	return out
}

// Match picks the best loaded language for a requested locale, falling back
// to the provider default.
func (p *Provider) Match(locale string) language.Tag {
	tags := p.bundle.LanguageTags()
	if len(tags) == 0 {
		return p.fallback
	}
	desired, err := language.Parse(locale)
	if err != nil {
		return p.fallback
	}
	_, index, _ := language.NewMatcher(tags).Match(desired)
	return tags[index]
}

// Engine returns the translation engine for a locale. The debug locale is
// reported verbatim so scoped helpers short-circuit to their catalog keys;
// raw lookups on it resolve from the default locale.
func (p *Provider) Engine(locale string) admin.Engine {
	norm := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(locale, "_", "-")))
	if norm == "" {
		norm = strings.ToLower(p.fallback.String())
	}
	return &localeEngine{
		language:  norm,
		localizer: i18n.NewLocalizer(p.bundle, norm, p.fallback.String()),
	}
}

type localeEngine struct {
	language  string
	localizer *i18n.Localizer
}

var _ admin.Engine = (*localeEngine)(nil)

func (e *localeEngine) Language() string { return e.language }

// Lookup probes the candidate keys in order and returns the first message the
// bundle resolves. A count entry in the data selects the plural form; when a
// message lacks the matching form the lookup retries without pluralization
// before moving on. Misses fall back to the default text with catalog-style
// placeholders applied.
func (e *localeEngine) Lookup(keys []string, opts admin.LookupOptions) string {
	for _, key := range keys {
		if key == "" {
			continue
		}
		cfg := &i18n.LocalizeConfig{MessageID: key, TemplateData: opts.Data}
		if count, ok := opts.Data["count"]; ok {
			cfg.PluralCount = count
		}
		msg, err := e.localizer.Localize(cfg)
		if !resolved(msg, err) && cfg.PluralCount != nil {
			retry := *cfg
			retry.PluralCount = nil
			msg, err = e.localizer.Localize(&retry)
		}
		if resolved(msg, err) {
			return msg
		}
	}
	return interpolateDefault(opts.Default, opts.Data)
}

// resolved reports whether the localizer produced usable text. go-i18n hands
// back the default-locale rendering together with a MessageNotFoundErr when
// the requested locale lacks the key; that text still counts as a hit. Any
// other error is a miss.
func resolved(msg string, err error) bool {
	if msg == "" {
		return false
	}
	if err == nil {
		return true
	}
	var notFound *i18n.MessageNotFoundErr
	return errors.As(err, &notFound)
}

// interpolateDefault substitutes "{{name}}" placeholders in fallback text.
// Unknown placeholders stay verbatim.
func interpolateDefault(text string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	for name, value := range data {
		text = strings.ReplaceAll(text, "{{"+name+"}}", fmt.Sprint(value))
	}
	return text
}
