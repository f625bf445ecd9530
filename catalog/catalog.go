// Package catalog holds parsed Fluent resources per locale and renders
// messages from them: placeholder substitution plus CLDR plural selection.
//
// A Catalog is loaded once at startup and is immutable afterwards; reads
// are safe from any number of goroutines.
package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"fluentcat/fluent"
)

// Catalog maps locales to their message tables.
type Catalog struct {
	defaultTag language.Tag

	mu     sync.RWMutex
	tables map[string]*table
}

type table struct {
	tag language.Tag
	res *fluent.Resource
}

// New builds an empty Catalog. defaultLocale names the fallback table used
// by Render when a locale or key is missing; an unparseable tag falls back
// to English.
func New(defaultLocale string) *Catalog {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	return &Catalog{
		defaultTag: tag,
		tables:     map[string]*table{},
	}
}

// DefaultLocale returns the configured fallback locale.
func (c *Catalog) DefaultLocale() string { return c.defaultTag.String() }

// Register adds a parsed resource as the table for locale. Registering the
// same locale twice replaces the previous table.
func (c *Catalog) Register(locale string, res *fluent.Resource) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("catalog: invalid locale %q: %w", locale, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[tag.String()] = &table{tag: tag, res: res}
	return nil
}

// LoadBytes parses src and registers it under locale.
func (c *Catalog) LoadBytes(locale string, src []byte) error {
	res, err := fluent.Parse(locale+".ftl", src)
	if err != nil {
		return err
	}
	return c.Register(locale, res)
}

// LoadFS parses every file in fsys matching glob (e.g. "*.ftl") and
// registers each under the locale named by its file stem, so "sv.ftl"
// becomes the "sv" table. The first failing file aborts the load.
func (c *Catalog) LoadFS(fsys fs.FS, glob string) error {
	files, err := fs.Glob(fsys, glob)
	if err != nil {
		return fmt.Errorf("catalog: bad glob %q: %w", glob, err)
	}
	sort.Strings(files)
	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", file, err)
		}
		res, err := fluent.Parse(file, src)
		if err != nil {
			return err
		}
		base := path.Base(file)
		locale := strings.TrimSuffix(base, path.Ext(base))
		if err := c.Register(locale, res); err != nil {
			return err
		}
	}
	return nil
}

// Locales returns the registered locales, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	locales := make([]string, 0, len(c.tables))
	for l := range c.tables {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// Lookup resolves key within the table for locale. It is strict: no
// fallback to the default locale is attempted. It fails with
// ErrLocaleNotFound or ErrKeyNotFound.
func (c *Catalog) Lookup(locale, key string) (*fluent.Message, error) {
	t, err := c.table(locale)
	if err != nil {
		return nil, err
	}
	msg := t.res.Message(key)
	if msg == nil {
		return nil, fmt.Errorf("%w: %q in locale %q", ErrKeyNotFound, key, locale)
	}
	return msg, nil
}

// table resolves the table for locale, trying the exact tag first and then
// its base language, so "sv-SE" finds a table registered as "sv".
func (c *Catalog) table(locale string) (*table, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if t, ok := c.tables[tag.String()]; ok {
		return t, nil
	}
	if base, conf := tag.Base(); conf != language.No {
		if t, ok := c.tables[base.String()]; ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
}
