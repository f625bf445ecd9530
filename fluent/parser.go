// Package fluent parses Fluent localization resources.
//
// It covers the subset the applet resources use: comment lines, simple
// `key = value` entries with indented continuation lines, select
// expressions with plural-category variants, and `{ $name }` placeables.
package fluent

import (
	"regexp"
	"strings"
)

var (
	identRE        = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	selectHeaderRE = regexp.MustCompile(`^\{\s*\$([A-Za-z][A-Za-z0-9_-]*)\s*->$`)
	variantRE      = regexp.MustCompile(`^(\*)?\[([A-Za-z0-9._-]+)\]\s*(.*)$`)
	variableRE     = regexp.MustCompile(`^\$([A-Za-z][A-Za-z0-9_-]*)$`)
)

// Parse parses src into a Resource. name identifies the source in errors,
// usually the file path. The whole resource is rejected on the first syntax
// error; a Resource returned with a nil error is fully validated (unique
// keys, every select expression terminated and carrying a default variant).
func Parse(name string, src []byte) (*Resource, error) {
	p := &parser{
		path:  name,
		lines: strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n"),
	}
	return p.parse()
}

type parser struct {
	path  string
	lines []string
	pos   int // 0-based index into lines
}

func (p *parser) lineno() int { return p.pos + 1 }

func (p *parser) parse() (*Resource, error) {
	res := &Resource{
		Name:  p.path,
		index: map[string]*Message{},
	}

	var comment []string
	for p.pos = 0; p.pos < len(p.lines); p.pos++ {
		line := strings.TrimRight(p.lines[p.pos], " \t")
		switch {
		case line == "":
			// A blank line detaches any pending comment.
			comment = nil
		case strings.HasPrefix(line, "#"):
			comment = append(comment, strings.TrimPrefix(strings.TrimPrefix(line, "#"), " "))
		case line[0] == ' ' || line[0] == '\t':
			return nil, parseErrorf(p.path, p.lineno(), ErrBadEntry, "unexpected indented line")
		default:
			msg, err := p.parseEntry(line)
			if err != nil {
				return nil, err
			}
			if _, dup := res.index[msg.Key]; dup {
				return nil, parseErrorf(p.path, msg.Line, ErrDuplicateMessage, "%q", msg.Key)
			}
			msg.Comment = strings.Join(comment, "\n")
			comment = nil
			res.Messages = append(res.Messages, msg)
			res.index[msg.Key] = msg
		}
	}
	return res, nil
}

// parseEntry parses a `key = value` entry starting at the current line. It
// advances p.pos past any continuation or variant lines the entry consumes.
func (p *parser) parseEntry(line string) (*Message, error) {
	entryLine := p.lineno()

	key, rest, ok := strings.Cut(line, "=")
	if !ok {
		return nil, parseErrorf(p.path, entryLine, ErrBadEntry, "missing `=`")
	}
	key = strings.TrimSpace(key)
	if !identRE.MatchString(key) {
		return nil, parseErrorf(p.path, entryLine, ErrBadEntry, "invalid key %q", key)
	}

	value := strings.TrimSpace(rest)
	if sel := selectHeaderRE.FindStringSubmatch(value); sel != nil {
		expr, err := p.parseSelect(entryLine, sel[1])
		if err != nil {
			return nil, err
		}
		return &Message{Key: key, Line: entryLine, Value: Pattern{&Placeable{Expr: expr}}}, nil
	}

	// Simple value, possibly continued on indented lines.
	for p.pos+1 < len(p.lines) {
		next := strings.TrimRight(p.lines[p.pos+1], " \t")
		if next == "" || (next[0] != ' ' && next[0] != '\t') {
			break
		}
		p.pos++
		if value == "" {
			value = strings.TrimSpace(next)
		} else {
			value += "\n" + strings.TrimSpace(next)
		}
	}
	if value == "" {
		return nil, parseErrorf(p.path, entryLine, ErrBadEntry, "key %q has no value", key)
	}

	pattern, err := p.parseInline(entryLine, value)
	if err != nil {
		return nil, err
	}
	return &Message{Key: key, Line: entryLine, Value: pattern}, nil
}

// parseSelect consumes the variant lines of a select expression opened on
// line entryLine, up to and including the closing `}` line.
func (p *parser) parseSelect(entryLine int, selector string) (*SelectExpression, error) {
	expr := &SelectExpression{Selector: VariableReference{Name: selector}}
	seen := map[string]bool{}

	for p.pos+1 < len(p.lines) {
		p.pos++
		line := strings.TrimRight(p.lines[p.pos], " \t")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case trimmed == "}":
			if len(expr.Variants) == 0 {
				return nil, parseErrorf(p.path, entryLine, ErrBadVariant, "select expression has no variants")
			}
			n := 0
			for _, v := range expr.Variants {
				if v.Default {
					n++
				}
			}
			if n == 0 {
				return nil, parseErrorf(p.path, entryLine, ErrNoDefaultVariant, "")
			}
			if n > 1 {
				return nil, parseErrorf(p.path, entryLine, ErrBadVariant, "multiple default variants")
			}
			return expr, nil
		case line[0] != ' ' && line[0] != '\t':
			// A new top-level entry before the closing brace.
			return nil, parseErrorf(p.path, entryLine, ErrUnterminatedSelect, "")
		default:
			m := variantRE.FindStringSubmatch(trimmed)
			if m == nil {
				return nil, parseErrorf(p.path, p.lineno(), ErrBadVariant, "%q", trimmed)
			}
			if seen[m[2]] {
				return nil, parseErrorf(p.path, p.lineno(), ErrBadVariant, "duplicate variant key %q", m[2])
			}
			seen[m[2]] = true
			pattern, err := p.parseInline(p.lineno(), m[3])
			if err != nil {
				return nil, err
			}
			expr.Variants = append(expr.Variants, Variant{
				Key:     m[2],
				Default: m[1] == "*",
				Value:   pattern,
			})
		}
	}
	return nil, parseErrorf(p.path, entryLine, ErrUnterminatedSelect, "")
}

// parseInline parses a single-line pattern: literal text with `{ $name }`
// placeables. Select expressions are only valid as the entire value of an
// entry, never inline.
func (p *parser) parseInline(line int, text string) (Pattern, error) {
	var pattern Pattern
	for len(text) > 0 {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			pattern = append(pattern, Text(text))
			break
		}
		if open > 0 {
			pattern = append(pattern, Text(text[:open]))
		}
		text = text[open+1:]
		closing := strings.IndexByte(text, '}')
		if closing < 0 {
			return nil, parseErrorf(p.path, line, ErrBadPlaceable, "missing `}`")
		}
		inner := strings.TrimSpace(text[:closing])
		text = text[closing+1:]

		m := variableRE.FindStringSubmatch(inner)
		if m == nil {
			if strings.Contains(inner, "->") {
				return nil, parseErrorf(p.path, line, ErrBadPlaceable, "select expression must be the entire value")
			}
			return nil, parseErrorf(p.path, line, ErrBadPlaceable, "%q", inner)
		}
		pattern = append(pattern, &Placeable{Expr: &VariableReference{Name: m[1]}})
	}
	if len(pattern) == 0 {
		pattern = Pattern{Text("")}
	}
	return pattern, nil
}
