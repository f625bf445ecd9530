package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"fluentcat/fluent"
)

// Render resolves key for locale and substitutes args into its pattern.
//
// When the locale or the key is missing, the default locale's table is
// consulted before failing with ErrLocaleNotFound / ErrKeyNotFound. Plural
// selection uses the rules of the locale the message was actually found in,
// so a fallback message pluralizes in the fallback language.
func (c *Catalog) Render(locale, key string, args map[string]any) (string, error) {
	t, msg, err := c.resolve(locale, key)
	if err != nil {
		return "", err
	}
	return c.renderPattern(t.tag, key, msg.Value, args)
}

func (c *Catalog) resolve(locale, key string) (*table, *fluent.Message, error) {
	t, err := c.table(locale)
	if err == nil {
		if msg := t.res.Message(key); msg != nil {
			return t, msg, nil
		}
	}
	def, defErr := c.table(c.defaultTag.String())
	if defErr != nil {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %q in locale %q", ErrKeyNotFound, key, locale)
	}
	if msg := def.res.Message(key); msg != nil {
		return def, msg, nil
	}
	return nil, nil, fmt.Errorf("%w: %q in locale %q", ErrKeyNotFound, key, locale)
}

func (c *Catalog) renderPattern(tag language.Tag, key string, pattern fluent.Pattern, args map[string]any) (string, error) {
	var b strings.Builder
	for _, el := range pattern {
		switch e := el.(type) {
		case fluent.Text:
			b.WriteString(string(e))
		case *fluent.Placeable:
			s, err := c.renderExpression(tag, key, e.Expr, args)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

func (c *Catalog) renderExpression(tag language.Tag, key string, expr fluent.Expression, args map[string]any) (string, error) {
	switch e := expr.(type) {
	case *fluent.VariableReference:
		v, ok := args[e.Name]
		if !ok {
			return "", fmt.Errorf("%w: $%s in message %q", ErrMissingArgument, e.Name, key)
		}
		return formatValue(v), nil
	case *fluent.SelectExpression:
		v, ok := args[e.Selector.Name]
		if !ok {
			return "", fmt.Errorf("%w: $%s in message %q", ErrMissingArgument, e.Selector.Name, key)
		}
		variant := selectVariant(tag, e, v)
		return c.renderPattern(tag, key, variant.Value, args)
	default:
		return "", fmt.Errorf("message %q: unsupported expression %T", key, expr)
	}
}

// selectVariant picks the variant for a selector value: an exact match on
// the formatted value first (covers numeric literal keys like [0]), then
// the value's CLDR plural category when it is numeric, then the default
// variant.
func selectVariant(tag language.Tag, expr *fluent.SelectExpression, v any) fluent.Variant {
	formatted := formatValue(v)
	for _, variant := range expr.Variants {
		if variant.Key == formatted {
			return variant
		}
	}
	if isNumeric(v) {
		category := pluralCategory(tag, formatted)
		for _, variant := range expr.Variants {
			if variant.Key == category {
				return variant
			}
		}
	}
	return expr.DefaultVariant()
}
