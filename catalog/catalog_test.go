package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentcat/fluent"
)

const enSrc = `app-title = GitHub Notifications
error-mark-read = Failed to mark as read: { $error }
notifications-count = { $count ->
    [0] No notifications
    [one] { $count } notification
    *[other] { $count } notifications
}
time-minutes-ago = { $minutes ->
    [one] { $minutes } minute ago
    *[other] { $minutes } minutes ago
}
`

const svSrc = `app-title = GitHub-aviseringar
error-mark-read = Kunde inte markera som läst: { $error }
notifications-count = { $count ->
    [0] Inga aviseringar
    [one] { $count } avisering
    *[other] { $count } aviseringar
}
time-minutes-ago = { $minutes ->
    [one] { $minutes } minut sedan
    *[other] { $minutes } minuter sedan
}
`

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New("en")
	require.NoError(t, c.LoadBytes("en", []byte(enSrc)))
	require.NoError(t, c.LoadBytes("sv", []byte(svSrc)))
	return c
}

func TestCatalog_LoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"en.ftl": {Data: []byte(enSrc)},
		"sv.ftl": {Data: []byte(svSrc)},
	}
	c := New("en")
	require.NoError(t, c.LoadFS(fsys, "*.ftl"))
	assert.Equal(t, []string{"en", "sv"}, c.Locales())
	assert.Equal(t, "en", c.DefaultLocale())
}

func TestCatalog_LoadFS_RejectsMalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"en.ftl": {Data: []byte("broken = { $n ->\n    [one] x\n}\n")},
	}
	c := New("en")
	err := c.LoadFS(fsys, "*.ftl")
	require.Error(t, err)
	assert.ErrorIs(t, err, fluent.ErrNoDefaultVariant)
}

func TestCatalog_Lookup(t *testing.T) {
	c := newTestCatalog(t)

	msg, err := c.Lookup("en", "app-title")
	require.NoError(t, err)
	assert.Equal(t, "app-title", msg.Key)

	// Lookup is strict: no fallback to the default locale.
	for _, locale := range []string{"en", "sv"} {
		_, err := c.Lookup(locale, "does-not-exist")
		assert.ErrorIs(t, err, ErrKeyNotFound, locale)
	}

	_, err = c.Lookup("de", "app-title")
	assert.ErrorIs(t, err, ErrLocaleNotFound)
}

func TestCatalog_Render_PluralSelection(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		locale string
		key    string
		args   map[string]any
		want   string
	}{
		{"en", "notifications-count", map[string]any{"count": 1}, "1 notification"},
		{"en", "notifications-count", map[string]any{"count": 5}, "5 notifications"},
		{"sv", "notifications-count", map[string]any{"count": 1}, "1 avisering"},
		{"sv", "notifications-count", map[string]any{"count": 5}, "5 aviseringar"},
		{"en", "time-minutes-ago", map[string]any{"minutes": 1}, "1 minute ago"},
		{"en", "time-minutes-ago", map[string]any{"minutes": 30}, "30 minutes ago"},
		{"sv", "time-minutes-ago", map[string]any{"minutes": 1}, "1 minut sedan"},
		// Exact numeric variants win over the plural category.
		{"en", "notifications-count", map[string]any{"count": 0}, "No notifications"},
		{"sv", "notifications-count", map[string]any{"count": 0}, "Inga aviseringar"},
	}

	for _, tt := range tests {
		got, err := c.Render(tt.locale, tt.key, tt.args)
		require.NoError(t, err, "%s/%s", tt.locale, tt.key)
		assert.Equal(t, tt.want, got, "%s/%s %v", tt.locale, tt.key, tt.args)
	}
}

func TestCatalog_Render_Deterministic(t *testing.T) {
	c := newTestCatalog(t)
	args := map[string]any{"count": 5}

	first, err := c.Render("sv", "notifications-count", args)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := c.Render("sv", "notifications-count", args)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestCatalog_Render_Substitution(t *testing.T) {
	c := newTestCatalog(t)

	got, err := c.Render("en", "error-mark-read", map[string]any{"error": "403 Forbidden"})
	require.NoError(t, err)
	assert.Equal(t, "Failed to mark as read: 403 Forbidden", got)
}

func TestCatalog_Render_MissingArgument(t *testing.T) {
	c := newTestCatalog(t)

	// Placeholder without a value.
	_, err := c.Render("en", "error-mark-read", nil)
	assert.ErrorIs(t, err, ErrMissingArgument)

	// Selector without a value.
	_, err = c.Render("sv", "notifications-count", map[string]any{})
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestCatalog_Render_Fallback(t *testing.T) {
	c := New("en")
	require.NoError(t, c.LoadBytes("en", []byte(enSrc)))
	require.NoError(t, c.LoadBytes("sv", []byte("app-title = GitHub-aviseringar\n")))

	// Key missing from sv renders from the default locale, with the
	// default locale's plural rules.
	got, err := c.Render("sv", "notifications-count", map[string]any{"count": 5})
	require.NoError(t, err)
	assert.Equal(t, "5 notifications", got)

	// Unknown locale falls back entirely.
	got, err = c.Render("de", "app-title", nil)
	require.NoError(t, err)
	assert.Equal(t, "GitHub Notifications", got)

	// Missing everywhere still fails.
	_, err = c.Render("sv", "does-not-exist", nil)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCatalog_Render_RegionalVariantFindsBase(t *testing.T) {
	c := newTestCatalog(t)

	got, err := c.Render("sv-SE", "notifications-count", map[string]any{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, "1 avisering", got)

	_, err = c.Lookup("sv-SE", "app-title")
	assert.NoError(t, err)
}

func TestCatalog_Render_StringSelector(t *testing.T) {
	c := New("en")
	src := "unread-state = { $state ->\n    [unread] New\n    *[read] Seen\n}\n"
	require.NoError(t, c.LoadBytes("en", []byte(src)))

	got, err := c.Render("en", "unread-state", map[string]any{"state": "unread"})
	require.NoError(t, err)
	assert.Equal(t, "New", got)

	got, err = c.Render("en", "unread-state", map[string]any{"state": "whatever"})
	require.NoError(t, err)
	assert.Equal(t, "Seen", got)
}
