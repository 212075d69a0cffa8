package entities

import (
	"net/url"
	"regexp"
	"strings"
)

// Normalizers are total: malformed input degrades to the zero value and
// never produces an error. Spreadsheet input is unclean by nature and a
// partial entity beats a dropped row.

var (
	// reTagSeparators splits tag text on runs of comma, semicolon,
	// newline or pipe characters.
	reTagSeparators = regexp.MustCompile(`[,;\n|]+`)
	// reWhitespace collapses internal whitespace runs.
	reWhitespace = regexp.MustCompile(`\s+`)
	// reBullets matches middle-dot and bullet characters inside tags.
	reBullets = regexp.MustCompile(`[·•]`)
	// reURL matches http(s) tokens up to the next whitespace, comma or
	// semicolon.
	reURL = regexp.MustCompile(`https?://[^\s,;]+`)
	// reAbsoluteHTTP matches absolute http(s) references.
	reAbsoluteHTTP = regexp.MustCompile(`(?i)^https?://`)
	// rePassthroughScheme matches schemes the relative resolver leaves
	// untouched.
	rePassthroughScheme = regexp.MustCompile(`(?i)^(data:|mailto:|tel:)`)
)

// NormalizeEntityType classifies a raw type cell. Empty input yields
// "unknown"; prefixes and keyword hints map onto the two canonical
// types; anything else is passed through lowered so the caller can
// decide the default.
func NormalizeEntityType(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "":
		return "unknown"
	case strings.HasPrefix(s, "emp"):
		return string(TypeEmpresa)
	case strings.HasPrefix(s, "gru"):
		return string(TypeGrupo)
	case strings.Contains(s, "research"):
		return string(TypeGrupo)
	case strings.Contains(s, "company"):
		return string(TypeEmpresa)
	default:
		return s
	}
}

// NormalizeTag lowercases a tag, collapses whitespace runs and replaces
// bullet characters with spaces.
func NormalizeTag(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = reWhitespace.ReplaceAllString(s, " ")
	s = reBullets.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SplitTags tokenizes free tag text into normalized tags, dropping
// empties and duplicates while preserving first-occurrence order.
func SplitTags(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, part := range reTagSeparators.Split(s, -1) {
		tag := NormalizeTag(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// SafeURL validates an absolute http(s) URL. Anything else, including
// javascript:, ftp: and unparseable input, degrades to empty.
func SafeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}

// SafeHref accepts absolute http(s) URLs or single-leading-slash
// site-relative paths. Protocol-relative "//" values are rejected: the
// result is interpolated into href/src attributes, so this is the
// safety boundary for source-controlled links.
func SafeHref(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if abs := SafeURL(s); abs != "" {
		return abs
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return s
	}
	return ""
}

// IsExternalHref reports whether a href points off-site.
func IsExternalHref(href string) bool {
	return reAbsoluteHTTP.MatchString(href)
}

// ExtractURLs scans free text for http(s) tokens and returns each one
// that validates, deduplicated in order of first appearance.
func ExtractURLs(raw string) []string {
	matches := reURL.FindAllString(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		u := SafeURL(m)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// ResolveRelativeURL resolves a candidate href against a base page URL.
// Anchors, data:/mailto:/tel: schemes, absolute http(s) URLs and
// site-relative paths pass through unchanged; everything else resolves
// as a relative reference. Unresolvable input passes through.
func ResolveRelativeURL(raw, base string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "#") {
		return s
	}
	if rePassthroughScheme.MatchString(s) {
		return s
	}
	if reAbsoluteHTTP.MatchString(s) {
		return s
	}
	if strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//") {
		return s
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return s
	}
	ref, err := url.Parse(s)
	if err != nil {
		return s
	}
	return baseURL.ResolveReference(ref).String()
}

// Truncate shortens display text to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	t := strings.TrimSpace(s)
	runes := []rune(t)
	if len(runes) <= max {
		return t
	}
	return string(runes[:max-1]) + "…"
}
