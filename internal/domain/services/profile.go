package services

import (
	"context"
	"strings"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/ports"
)

// FragmentExtractor reduces a fetched page to an embeddable content
// fragment with rewritten references.
type FragmentExtractor interface {
	Extract(html, baseHref string) string
}

// ProfileEmbed is the outcome of trying to embed a profile page.
type ProfileEmbed struct {
	Href     string `json:"href,omitempty"`
	HTML     string `json:"html,omitempty"`
	Embedded bool   `json:"embedded"`
}

// ProfileService embeds internal profile pages on the detail view.
// External profile URLs are only ever linked out, never fetched.
type ProfileService struct {
	fetcher   ports.PageFetcher
	extractor FragmentExtractor
}

// NewProfileService creates a new profile service.
func NewProfileService(fetcher ports.PageFetcher, extractor FragmentExtractor) *ProfileService {
	return &ProfileService{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Embed fetches a site-relative profile path and extracts its content
// fragment. A fetch failure degrades to a plain link: the detail view
// still renders from the spreadsheet data.
func (s *ProfileService) Embed(ctx context.Context, profileURL string) ProfileEmbed {
	href := entities.SafeHref(profileURL)
	if href == "" {
		return ProfileEmbed{}
	}
	if entities.IsExternalHref(href) {
		return ProfileEmbed{Href: href}
	}
	if !strings.HasPrefix(href, "/") {
		return ProfileEmbed{Href: href}
	}

	html, err := s.fetcher.FetchPage(ctx, href)
	if err != nil {
		return ProfileEmbed{Href: href}
	}

	fragment := s.extractor.Extract(html, href)
	return ProfileEmbed{
		Href:     href,
		HTML:     fragment,
		Embedded: fragment != "",
	}
}
