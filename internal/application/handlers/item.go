package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/services"
)

// ItemHandler handles the detail view for one entity.
type ItemHandler struct {
	directory *services.DirectoryService
	profile   *services.ProfileService
	// defaultCSVURL is the configured source, used when the caller did
	// not carry a csv parameter from the directory view.
	defaultCSVURL string
}

// NewItemHandler creates a new item handler.
func NewItemHandler(directory *services.DirectoryService, profile *services.ProfileService, defaultCSVURL string) *ItemHandler {
	return &ItemHandler{
		directory:     directory,
		profile:       profile,
		defaultCSVURL: defaultCSVURL,
	}
}

// ItemResult contains one entity with its optional embedded profile.
type ItemResult struct {
	Entity  entities.Entity       `json:"entity"`
	Profile services.ProfileEmbed `json:"profile"`
}

// Handle loads the dataset and returns the entity with the given id.
// The csvURL argument is the value handed over from the directory view;
// when empty, the configured source is used, and when neither exists
// the result is a ConfigurationError so the fix (open the detail from
// the directory, or configure the source) is obvious to the author.
func (h *ItemHandler) Handle(ctx context.Context, id, csvURL string) (*ItemResult, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &entities.ConfigurationError{
			Reason: "missing id parameter: open this page from the directory",
		}
	}

	source := strings.TrimSpace(csvURL)
	if source == "" {
		source = h.defaultCSVURL
	}
	if source == "" {
		return nil, &entities.ConfigurationError{
			Reason: "no CSV URL reachable: open this page from the directory or configure source.csv_url",
		}
	}

	dir, err := h.directory.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}

	e, err := dir.Get(id)
	if err != nil {
		return nil, err
	}

	// Second, independent fetch; a failure here only downgrades the
	// embed to a link.
	embed := h.profile.Embed(ctx, e.ProfileURL)

	return &ItemResult{Entity: e, Profile: embed}, nil
}
