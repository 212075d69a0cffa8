// Package services implements the directory pipeline on top of the
// domain ports.
package services

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/ports"
	"github.com/bridgeit/directory/internal/domain/schema"
)

// DirectoryService loads the tabular source and builds the entity
// sequence. Every load refetches: there is no caching and entities are
// discarded with the request.
type DirectoryService struct {
	source ports.RecordSource
	log    *logrus.Logger
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(source ports.RecordSource, log *logrus.Logger) *DirectoryService {
	return &DirectoryService{
		source: source,
		log:    log,
	}
}

// Directory is one loaded dataset.
type Directory struct {
	Entities []entities.Entity
	Warnings []ports.ParseWarning
}

// Load fetches the source URL and builds entities, dropping rows that
// carry no name, pitch or summary. Parse warnings are surfaced, not
// fatal.
func (s *DirectoryService) Load(ctx context.Context, url string) (*Directory, error) {
	if strings.TrimSpace(url) == "" {
		return nil, &entities.ConfigurationError{
			Reason: "no CSV URL configured: set source.csv_url or pass --csv",
		}
	}

	records, warnings, err := s.source.FetchRecords(ctx, url)
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		s.log.WithFields(logrus.Fields{
			"line":   w.Line,
			"reason": w.Message,
		}).Warn("skipping malformed row")
	}

	items := make([]entities.Entity, 0, len(records))
	for i, rec := range records {
		e := schema.BuildEntity(rec, i)
		if !e.HasContent() {
			continue
		}
		items = append(items, e)
	}

	return &Directory{Entities: items, Warnings: warnings}, nil
}

// Get returns the entity with the given id. When the source repeats an
// id the last row wins, so the scan runs back to front.
func (d *Directory) Get(id string) (entities.Entity, error) {
	for i := len(d.Entities) - 1; i >= 0; i-- {
		if d.Entities[i].ID == id {
			return d.Entities[i], nil
		}
	}
	return entities.Entity{}, &entities.NotFoundError{ID: id}
}

// Grupos returns the research-group column.
func (d *Directory) Grupos() []entities.Entity {
	return d.ofType(entities.TypeGrupo)
}

// Empresas returns the company column.
func (d *Directory) Empresas() []entities.Entity {
	return d.ofType(entities.TypeEmpresa)
}

func (d *Directory) ofType(t entities.EntityType) []entities.Entity {
	var out []entities.Entity
	for _, e := range d.Entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// SortByName orders entities by name, ascending or descending,
// case-insensitively. The input slice is not modified.
func SortByName(items []entities.Entity, ascending bool) []entities.Entity {
	out := make([]entities.Entity, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(out[i].Name)
		b := strings.ToLower(out[j].Name)
		if ascending {
			return a < b
		}
		return a > b
	})
	return out
}
