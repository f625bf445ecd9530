package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

var formNames = map[plural.Form]string{
	plural.Other: "other",
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
}

// pluralCategories is the set of valid CLDR cardinal category names.
var pluralCategories = map[string]bool{
	"zero": true, "one": true, "two": true, "few": true, "many": true, "other": true,
}

// IsPluralCategory reports whether name is a CLDR cardinal category.
func IsPluralCategory(name string) bool { return pluralCategories[name] }

// pluralCategory computes the CLDR cardinal category of the formatted
// number for the given locale, e.g. "one" for 1 in English or Swedish.
func pluralCategory(tag language.Tag, formatted string) string {
	i, v, w, f, t := operands(formatted)
	return formNames[plural.Cardinal.MatchPlural(tag, i, v, w, f, t)]
}

// operands derives the CLDR plural operands from a formatted decimal:
// i = integer digits, v = count of visible fraction digits, w = v without
// trailing zeros, f = fraction digits as an integer, t = f without trailing
// zeros.
func operands(formatted string) (i, v, w, f, t int) {
	s := strings.TrimPrefix(formatted, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	i, _ = strconv.Atoi(intPart)
	if frac == "" {
		return i, 0, 0, 0, 0
	}
	v = len(frac)
	f, _ = strconv.Atoi(frac)
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	if trimmed != "" {
		t, _ = strconv.Atoi(trimmed)
	}
	return i, v, w, f, t
}

// formatValue renders an argument value for substitution. Values are
// substituted verbatim; no locale-aware number formatting is applied.
func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
