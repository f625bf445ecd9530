// Package lint validates a directory of Fluent resources: syntax, key
// parity across locales, placeholder parity, and plural-variant sanity.
package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"fluentcat/catalog"
	"fluentcat/fluent"
)

// Problem is a single finding, keyed to a file and, when known, a line.
type Problem struct {
	File string
	Line int
	Msg  string
}

func (p Problem) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", p.File, p.Line, p.Msg)
	}
	return fmt.Sprintf("%s: %s", p.File, p.Msg)
}

// Check lints every file in fsys matching glob. It returns the findings,
// empty when the resources are clean. Only infrastructure failures (an
// unreadable directory, no matching files) are returned as an error.
func Check(fsys fs.FS, glob string) ([]Problem, error) {
	files, err := fs.Glob(fsys, glob)
	if err != nil {
		return nil, fmt.Errorf("lint: bad glob %q: %w", glob, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("lint: no resources match %q", glob)
	}
	sort.Strings(files)

	var problems []Problem
	resources := map[string]*fluent.Resource{} // locale -> resource
	localeFile := map[string]string{}

	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("lint: read %s: %w", file, err)
		}
		res, err := fluent.Parse(file, src)
		if err != nil {
			var perr *fluent.ParseError
			if errors.As(err, &perr) {
				problems = append(problems, Problem{File: perr.Path, Line: perr.Line, Msg: perr.Err.Error()})
			} else {
				problems = append(problems, Problem{File: file, Msg: err.Error()})
			}
			continue
		}
		base := path.Base(file)
		locale := strings.TrimSuffix(base, path.Ext(base))
		resources[locale] = res
		localeFile[locale] = file
	}

	problems = append(problems, checkKeyParity(resources, localeFile)...)
	problems = append(problems, checkPlaceholderParity(resources, localeFile)...)
	problems = append(problems, checkVariants(resources, localeFile)...)

	sort.Slice(problems, func(i, j int) bool {
		if problems[i].File != problems[j].File {
			return problems[i].File < problems[j].File
		}
		if problems[i].Line != problems[j].Line {
			return problems[i].Line < problems[j].Line
		}
		return problems[i].Msg < problems[j].Msg
	})
	return problems, nil
}

// checkKeyParity reports keys that exist in one locale but not another.
// Every locale must carry the full key set.
func checkKeyParity(resources map[string]*fluent.Resource, localeFile map[string]string) []Problem {
	var problems []Problem
	owners := map[string][]string{} // key -> locales that have it
	for locale, res := range resources {
		for _, key := range res.Keys() {
			owners[key] = append(owners[key], locale)
		}
	}
	for key, have := range owners {
		if len(have) == len(resources) {
			continue
		}
		sort.Strings(have)
		for locale := range resources {
			if resources[locale].Message(key) == nil {
				problems = append(problems, Problem{
					File: localeFile[locale],
					Msg:  fmt.Sprintf("missing key %q (present in %s)", key, strings.Join(have, ", ")),
				})
			}
		}
	}
	return problems
}

// checkPlaceholderParity reports keys whose translations disagree on the
// set of placeholders they reference.
func checkPlaceholderParity(resources map[string]*fluent.Resource, localeFile map[string]string) []Problem {
	locales := make([]string, 0, len(resources))
	for locale := range resources {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	if len(locales) < 2 {
		return nil
	}

	ref := locales[0]
	var problems []Problem
	for _, msg := range resources[ref].Messages {
		want := msg.Value.Variables()
		for _, locale := range locales[1:] {
			other := resources[locale].Message(msg.Key)
			if other == nil {
				continue // already reported by key parity
			}
			got := other.Value.Variables()
			if diff := variableDiff(want, got); diff != "" {
				problems = append(problems, Problem{
					File: localeFile[locale],
					Line: other.Line,
					Msg:  fmt.Sprintf("key %q: placeholders differ from %s (%s)", msg.Key, ref, diff),
				})
			}
		}
	}
	return problems
}

func variableDiff(want, got map[string]struct{}) string {
	var missing, extra []string
	for v := range want {
		if _, ok := got[v]; !ok {
			missing = append(missing, "$"+v)
		}
	}
	for v := range got {
		if _, ok := want[v]; !ok {
			extra = append(extra, "$"+v)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts, "extra "+strings.Join(extra, ", "))
	}
	return strings.Join(parts, "; ")
}

// checkVariants reports select variants whose keys are neither a CLDR
// plural category nor a numeric literal.
func checkVariants(resources map[string]*fluent.Resource, localeFile map[string]string) []Problem {
	var problems []Problem
	for locale, res := range resources {
		for _, msg := range res.Messages {
			forEachSelect(msg.Value, func(expr *fluent.SelectExpression) {
				for _, v := range expr.Variants {
					if catalog.IsPluralCategory(v.Key) {
						continue
					}
					if _, err := strconv.ParseFloat(v.Key, 64); err == nil {
						continue
					}
					problems = append(problems, Problem{
						File: localeFile[locale],
						Line: msg.Line,
						Msg:  fmt.Sprintf("key %q: variant [%s] is neither a plural category nor a number", msg.Key, v.Key),
					})
				}
			})
		}
	}
	return problems
}

func forEachSelect(pattern fluent.Pattern, fn func(*fluent.SelectExpression)) {
	for _, el := range pattern {
		pl, ok := el.(*fluent.Placeable)
		if !ok {
			continue
		}
		if expr, ok := pl.Expr.(*fluent.SelectExpression); ok {
			fn(expr)
			for _, v := range expr.Variants {
				forEachSelect(v.Value, fn)
			}
		}
	}
}
