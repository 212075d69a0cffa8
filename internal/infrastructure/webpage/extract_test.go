package webpage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContainerPriority(t *testing.T) {
	raw := `<html><body>
		<article>outer article</article>
		<div class="post"><p>post content</p></div>
		<div class="bridgeit-profile"><p>profile content</p></div>
	</body></html>`

	got := NewExtractor().Extract(raw, "/bridgeit/acme/")
	assert.Contains(t, got, "profile content")
	assert.NotContains(t, got, "post content")
	assert.NotContains(t, got, "outer article")
}

func TestExtractFallsBackToBody(t *testing.T) {
	got := NewExtractor().Extract("<p>bare page</p>", "/")
	assert.Contains(t, got, "bare page")
}

func TestExtractStripsChrome(t *testing.T) {
	raw := `<div class="post">
		<nav>menu</nav>
		<header>site header</header>
		<script>alert(1)</script>
		<style>.x{}</style>
		<p>keep me</p>
		<footer>site footer</footer>
	</div>`

	got := NewExtractor().Extract(raw, "/")
	assert.Contains(t, got, "keep me")
	assert.NotContains(t, got, "menu")
	assert.NotContains(t, got, "site header")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "site footer")
	assert.NotContains(t, got, "<script")
}

func TestExtractRemovesFirstHeadingOnly(t *testing.T) {
	raw := `<div class="post"><h1>Acme Robotics</h1><h2>Qué hacemos</h2><p>texto</p></div>`

	got := NewExtractor().Extract(raw, "/")
	assert.NotContains(t, got, "Acme Robotics")
	assert.Contains(t, got, "Qué hacemos")
}

func TestExtractRewritesRelativeReferences(t *testing.T) {
	raw := `<div class="post">
		<img src="img/logo.png">
		<img src="/assets/banner.png">
		<a href="docs/deck.pdf">deck</a>
		<a href="#team">team</a>
	</div>`

	got := NewExtractor().Extract(raw, "/bridgeit/acme/")
	assert.Contains(t, got, `src="/bridgeit/acme/img/logo.png"`)
	assert.Contains(t, got, `src="/assets/banner.png"`)
	assert.Contains(t, got, `href="/bridgeit/acme/docs/deck.pdf"`)
	assert.Contains(t, got, `href="#team"`)
}

func TestExtractMarksExternalLinks(t *testing.T) {
	raw := `<div class="post">
		<a href="https://example.org/x">external</a>
		<a href="/bridgeit/other/">internal</a>
	</div>`

	got := NewExtractor().Extract(raw, "/bridgeit/acme/")
	require.Contains(t, got, `href="/bridgeit/other/"`)
	assert.Equal(t, 1, strings.Count(got, `target="_blank"`),
		"only the external anchor is marked")
	assert.Equal(t, 1, strings.Count(got, `rel="noopener"`))
}

func TestExtractScrubsDangerousAttributes(t *testing.T) {
	raw := `<div class="post">
		<p onclick="steal()" style="color:red" data-x="ok">texto</p>
		<img src="logo.png" srcset="logo-2x.png 2x" onerror="steal()">
	</div>`

	got := NewExtractor().Extract(raw, "/bridgeit/acme/")
	assert.NotContains(t, got, "onclick")
	assert.NotContains(t, got, "onerror")
	assert.NotContains(t, got, "style=")
	assert.NotContains(t, got, "srcset")
	assert.Contains(t, got, `data-x="ok"`)
	assert.Contains(t, got, `src="/bridgeit/acme/logo.png"`)
}

func TestExtractUnparseableInput(t *testing.T) {
	assert.Empty(t, NewExtractor().Extract("", "/"))
}
