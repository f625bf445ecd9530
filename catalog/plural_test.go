package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPluralCategory(t *testing.T) {
	tests := []struct {
		locale string
		value  string
		want   string
	}{
		{"en", "1", "one"},
		{"en", "0", "other"},
		{"en", "5", "other"},
		{"en", "30", "other"},
		{"sv", "1", "one"},
		{"sv", "5", "other"},
		// English treats 1.0 as other, not one: the visible fraction
		// digits matter.
		{"en", "1.0", "other"},
		// Russian uses few/many, which the shipped locales never need but
		// the rules must still produce.
		{"ru", "1", "one"},
		{"ru", "3", "few"},
		{"ru", "5", "many"},
	}

	for _, tt := range tests {
		tag := language.MustParse(tt.locale)
		assert.Equal(t, tt.want, pluralCategory(tag, tt.value), "%s %s", tt.locale, tt.value)
	}
}

func TestOperands(t *testing.T) {
	tests := []struct {
		in            string
		i, v, w, f, t int
	}{
		{"1", 1, 0, 0, 0, 0},
		{"30", 30, 0, 0, 0, 0},
		{"-2", 2, 0, 0, 0, 0},
		{"1.5", 1, 1, 1, 5, 5},
		{"1.50", 1, 2, 1, 50, 5},
		{"2.00", 2, 2, 0, 0, 0},
	}

	for _, tt := range tests {
		i, v, w, f, tr := operands(tt.in)
		assert.Equal(t, []int{tt.i, tt.v, tt.w, tt.f, tt.t}, []int{i, v, w, f, tr}, tt.in)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{1, "1"},
		{int64(30), "30"},
		{uint(7), "7"},
		{1.5, "1.5"},
		{float64(2), "2"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.in))
	}
}

func TestIsPluralCategory(t *testing.T) {
	for _, name := range []string{"zero", "one", "two", "few", "many", "other"} {
		assert.True(t, IsPluralCategory(name), name)
	}
	assert.False(t, IsPluralCategory("1"))
	assert.False(t, IsPluralCategory("unread"))
}
