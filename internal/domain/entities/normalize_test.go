package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEntityType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "unknown"},
		{"whitespace only", "   ", "unknown"},
		{"empresa prefix", "Empresa", "empresa"},
		{"emp prefix", "emp. tecnológica", "empresa"},
		{"grupo prefix", "Grupo de investigación", "grupo"},
		{"research keyword", "University research team", "grupo"},
		{"company keyword", "Private company", "empresa"},
		{"passthrough", "Otro", "otro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEntityType(tt.raw))
		})
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "IA", []string{"ia"}},
		{"commas and semicolons", "IA, Robótica; Visión", []string{"ia", "robótica", "visión"}},
		{"newlines and pipes", "IA\nRobótica|Visión", []string{"ia", "robótica", "visión"}},
		{"duplicates keep first", "IA, ia, IA ", []string{"ia"}},
		{"whitespace collapsed", "machine   learning", []string{"machine learning"}},
		{"bullets stripped", "IA · Robótica", []string{"ia robótica"}},
		{"empty tokens dropped", ",,; IA ,", []string{"ia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.raw))
		})
	}
}

func TestSplitTagsIdempotent(t *testing.T) {
	once := SplitTags("IA, Robótica; Machine   Learning\nIA")
	again := SplitTags(strings.Join(once, ", "))
	assert.Equal(t, once, again)
}

func TestSafeURL(t *testing.T) {
	assert.Equal(t, "https://example.org/a", SafeURL("https://example.org/a"))
	assert.Equal(t, "http://example.org", SafeURL(" http://example.org "))
	assert.Empty(t, SafeURL("javascript:alert(1)"))
	assert.Empty(t, SafeURL("ftp://x"))
	assert.Empty(t, SafeURL(""))
	assert.Empty(t, SafeURL("not a url at all ::"))
}

func TestSafeHref(t *testing.T) {
	assert.Equal(t, "/bridgeit/item/", SafeHref("/bridgeit/item/"))
	assert.Equal(t, "https://example.org", SafeHref("https://example.org"))
	assert.Empty(t, SafeHref("//evil.example"))
	assert.Empty(t, SafeHref("javascript:alert(1)"))
	assert.Empty(t, SafeHref(""))
	assert.Empty(t, SafeHref("relative/path"))
}

func TestExtractURLs(t *testing.T) {
	raw := "ver https://youtu.be/abc, también http://vimeo.com/1;https://youtu.be/abc y texto"
	assert.Equal(t,
		[]string{"https://youtu.be/abc", "http://vimeo.com/1"},
		ExtractURLs(raw))

	assert.Nil(t, ExtractURLs("sin enlaces"))
	assert.Nil(t, ExtractURLs(""))
}

func TestResolveRelativeURL(t *testing.T) {
	base := "/bridgeit/acme/"
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"anchor", "#section", "#section"},
		{"mailto", "mailto:a@b.c", "mailto:a@b.c"},
		{"data", "data:image/png;base64,xyz", "data:image/png;base64,xyz"},
		{"absolute", "https://example.org/x", "https://example.org/x"},
		{"site relative", "/assets/logo.png", "/assets/logo.png"},
		{"relative", "img/logo.png", "/bridgeit/acme/img/logo.png"},
		{"parent relative", "../other/", "/bridgeit/other/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRelativeURL(tt.raw, base))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", Truncate("corto", 10))
	assert.Equal(t, "una fras…", Truncate("una frase larga", 9))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "(sin nombre)", Entity{}.DisplayName())
	assert.Equal(t, "Lab A", Entity{Name: "Lab A"}.DisplayName())
}
