// Package handlers exposes the application operations consumed by the
// CLI and the HTTP API.
package handlers

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/ports"
	"github.com/bridgeit/directory/internal/domain/services"
)

// DirectoryHandler handles directory listing with filters and search.
type DirectoryHandler struct {
	directory *services.DirectoryService
	detailURL string
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(directory *services.DirectoryService, detailURL string) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		detailURL: detailURL,
	}
}

// Link is a resolved primary link for one card.
type Link struct {
	Href     string `json:"href"`
	External bool   `json:"external"`
}

// DirectoryResult contains one filtered directory view.
type DirectoryResult struct {
	Grupos   []entities.Entity    `json:"grupos"`
	Empresas []entities.Entity    `json:"empresas"`
	Facets   services.FacetTable  `json:"facets"`
	Warnings []ports.ParseWarning `json:"warnings,omitempty"`
}

// Total returns the number of entities across both columns.
func (r *DirectoryResult) Total() int {
	return len(r.Grupos) + len(r.Empresas)
}

// Handle loads the directory and applies the filter state. Facets are
// always computed over the full dataset so selection counts stay
// stable while narrowing.
func (h *DirectoryHandler) Handle(ctx context.Context, csvURL string, state services.FilterState, sortAscending *bool) (*DirectoryResult, error) {
	dir, err := h.directory.Load(ctx, csvURL)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}

	filtered := services.ApplyFilters(dir.Entities, state)
	grupos := ofType(filtered, entities.TypeGrupo)
	empresas := ofType(filtered, entities.TypeEmpresa)

	if sortAscending != nil {
		grupos = services.SortByName(grupos, *sortAscending)
		empresas = services.SortByName(empresas, *sortAscending)
	}

	return &DirectoryResult{
		Grupos:   grupos,
		Empresas: empresas,
		Facets:   services.BuildFacets(dir.Entities),
		Warnings: dir.Warnings,
	}, nil
}

func ofType(items []entities.Entity, t entities.EntityType) []entities.Entity {
	var out []entities.Entity
	for _, e := range items {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// PrimaryLink resolves where a card links to: the entity's own profile
// URL when present, otherwise the detail page carrying the id and the
// source URL so the detail view loads independently.
func (h *DirectoryHandler) PrimaryLink(e entities.Entity, csvURL string) Link {
	if e.ProfileURL != "" {
		return Link{Href: e.ProfileURL, External: entities.IsExternalHref(e.ProfileURL)}
	}
	if h.detailURL == "" {
		return Link{Href: "#"}
	}
	href := fmt.Sprintf("%s?id=%s&csv=%s",
		h.detailURL, url.QueryEscape(e.ID), url.QueryEscape(csvURL))
	return Link{Href: href}
}
