package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/mocks"
	"github.com/bridgeit/directory/internal/domain/services"
)

func newMatchHandler(source *mocks.RecordSource) *MatchHandler {
	dir := services.NewDirectoryService(source, testLogger())
	return NewMatchHandler(dir, services.NewMatchService(0, 0, 0))
}

func TestMatchHandle(t *testing.T) {
	h := newMatchHandler(sampleSource())

	result, err := h.Handle(context.Background(), "g1", "https://example.org/data.csv")
	require.NoError(t, err)

	assert.Equal(t, "Beta Lab", result.Source.Name)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Co B", result.Matches[0].Candidate.Name)
	assert.Equal(t, []string{"ia"}, result.Matches[0].MatchedTematica)
}

func TestMatchHandleMissingID(t *testing.T) {
	h := newMatchHandler(sampleSource())

	_, err := h.Handle(context.Background(), "", "https://example.org/data.csv")
	var cfgErr *entities.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestMatchHandleUnknownID(t *testing.T) {
	h := newMatchHandler(sampleSource())

	_, err := h.Handle(context.Background(), "ghost", "https://example.org/data.csv")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
