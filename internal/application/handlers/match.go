package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/services"
)

// MatchHandler handles similarity ranking requests.
type MatchHandler struct {
	directory *services.DirectoryService
	matcher   *services.MatchService
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(directory *services.DirectoryService, matcher *services.MatchService) *MatchHandler {
	return &MatchHandler{
		directory: directory,
		matcher:   matcher,
	}
}

// MatchResult contains the ranked candidates for one source entity.
type MatchResult struct {
	Source  entities.Entity  `json:"source"`
	Matches []services.Match `json:"matches"`
}

// Handle loads the dataset and ranks entities of the complementary
// type against the entity with the given id.
func (h *MatchHandler) Handle(ctx context.Context, id, csvURL string) (*MatchResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &entities.ConfigurationError{
			Reason: "missing id parameter for matching",
		}
	}

	dir, err := h.directory.Load(ctx, csvURL)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}

	source, err := dir.Get(id)
	if err != nil {
		return nil, err
	}

	return &MatchResult{
		Source:  source,
		Matches: h.matcher.Rank(source, dir.Entities),
	}, nil
}
