package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireString(t *testing.T) {
	var v ValidationErrors
	assert.True(t, RequireString(&v, "site/author", "greg nicol"))
	assert.False(t, RequireString(&v, "site/name", "   "))
	require.True(t, v.HasErrors())
	assert.Contains(t, v.Error(), "site/name is required")
}

func TestCheckURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		ok   bool
	}{
		{"http", "http://getpelican.com/", true},
		{"https", "https://www.cloudflare.com/", true},
		{"non-ascii warns but passes", "https://www.cloudflare.com/ยง", true},
		{"empty", "", false},
		{"no scheme", "getpelican.com", false},
		{"ftp", "ftp://example.org/", false},
		{"no host", "http:///path", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v ValidationErrors
			got := CheckURL(&v, "links[0]/url", tc.url)
			assert.Equal(t, tc.ok, got)
			assert.Equal(t, !tc.ok, v.HasErrors())
		})
	}
}

func TestCheckTimezone(t *testing.T) {
	var v ValidationErrors
	loc := CheckTimezone(&v, "content/timezone", "Europe/Paris")
	require.NotNil(t, loc)
	assert.Equal(t, "Europe/Paris", loc.String())
	assert.False(t, v.HasErrors())

	v = ValidationErrors{}
	assert.Nil(t, CheckTimezone(&v, "content/timezone", "Mars/Olympus_Mons"))
	assert.True(t, v.HasErrors())

	v = ValidationErrors{}
	assert.Nil(t, CheckTimezone(&v, "content/timezone", ""))
	assert.True(t, v.HasErrors())
}

func TestCheckLocale(t *testing.T) {
	var v ValidationErrors
	assert.True(t, CheckLocale(&v, "site/default_lang", "en"))
	assert.True(t, CheckLocale(&v, "site/default_lang", "pt-BR"))
	assert.False(t, v.HasErrors())

	assert.False(t, CheckLocale(&v, "site/default_lang", "not a locale"))
	assert.True(t, v.HasErrors())
}

func TestCheckRelPath(t *testing.T) {
	var v ValidationErrors
	assert.True(t, CheckRelPath(&v, "feeds/all_atom", "feeds/all.atom.xml"))
	assert.False(t, v.HasErrors())

	assert.False(t, CheckRelPath(&v, "feeds/all_atom", "/feeds/all.atom.xml"))
	assert.False(t, CheckRelPath(&v, "feeds/all_atom", "../escape.xml"))
	assert.False(t, CheckRelPath(&v, "feeds/all_atom", ""))
	assert.Len(t, v.Errors(), 3)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()

	var v ValidationErrors
	CheckDir("content/path", dir, true, &v)
	assert.False(t, v.HasErrors())

	CheckDir("content/path", dir+"/missing", true, &v)
	assert.True(t, v.HasErrors())

	// optional missing dir only warns
	v = ValidationErrors{}
	CheckDir("theme/path", dir+"/missing", false, &v)
	assert.False(t, v.HasErrors())
}

func TestValidationErrorsMessage(t *testing.T) {
	var v ValidationErrors
	v.Add(ErrRequired("site/author"))
	v.Add(ErrRequired("theme/path"))

	msg := v.Error()
	assert.Contains(t, msg, "configuration validation failed:")
	assert.Contains(t, msg, " - site/author is required")
	assert.Contains(t, msg, " - theme/path is required")
}
