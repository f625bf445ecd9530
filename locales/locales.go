// Package locales embeds the applet's Fluent resources and exposes them as
// a ready-to-use catalog.
package locales

import (
	"embed"
	"log/slog"

	"fluentcat/catalog"
)

//go:embed *.ftl
var FS embed.FS

// New builds a catalog from the embedded *.ftl resources with the given
// default locale (e.g. "en").
func New(defaultLocale string) (*catalog.Catalog, error) {
	c := catalog.New(defaultLocale)
	if err := c.LoadFS(FS, "*.ftl"); err != nil {
		return nil, err
	}
	return c, nil
}

// Translator renders user-facing strings with graceful degradation: the
// requested locale first, then the catalog's default locale, then the key
// itself. It never fails; failures are logged instead, since a missing
// translation must not take the interface down with it.
type Translator struct {
	cat *catalog.Catalog
	log *slog.Logger
}

// NewTranslator wraps a catalog built from the embedded resources. An
// unparseable defaultLocale falls back to English.
func NewTranslator(defaultLocale string) (*Translator, error) {
	cat, err := New(defaultLocale)
	if err != nil {
		return nil, err
	}
	return &Translator{cat: cat, log: slog.Default()}, nil
}

// T renders the message identified by key for the given locale.
// data is an optional map used for placeholders (may be nil).
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.cat.Render(locale, key, data)
	if err != nil {
		t.log.Warn("localize failed", "key", key, "locale", locale, "error", err)
		return key
	}
	return msg
}

// Catalog exposes the underlying catalog for strict lookups.
func (t *Translator) Catalog() *catalog.Catalog { return t.cat }
