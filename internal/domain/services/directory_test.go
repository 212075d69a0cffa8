package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/mocks"
	"github.com/bridgeit/directory/internal/domain/ports"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func row(pairs ...string) ports.Record {
	rec := ports.Record{Values: map[string]string{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		rec.Headers = append(rec.Headers, pairs[i])
		rec.Values[pairs[i]] = pairs[i+1]
	}
	return rec
}

func TestLoadBuildsEntities(t *testing.T) {
	source := &mocks.RecordSource{
		Records: []ports.Record{
			row("Tipo", "Grupo", "Nombre", "Lab A", "Keywords temática", "IA, Robótica"),
			row("Tipo", "Empresa", "Nombre", "Co B", "Keywords temática", "IA"),
			row("Tipo", "", "Nombre", "", "Keywords temática", ""),
		},
		Warnings: []ports.ParseWarning{{Line: 5, Message: "wrong number of fields"}},
	}
	svc := NewDirectoryService(source, testLogger())

	dir, err := svc.Load(context.Background(), "https://example.org/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/data.csv", source.FetchedURL)

	require.Len(t, dir.Entities, 2, "blank rows are dropped")
	assert.Equal(t, "Lab A", dir.Entities[0].Name)
	assert.Equal(t, "Co B", dir.Entities[1].Name)
	assert.Equal(t, source.Warnings, dir.Warnings)

	require.Len(t, dir.Grupos(), 1)
	require.Len(t, dir.Empresas(), 1)
	assert.Equal(t, "Lab A", dir.Grupos()[0].Name)
	assert.Equal(t, "Co B", dir.Empresas()[0].Name)
}

func TestLoadEmptyURL(t *testing.T) {
	svc := NewDirectoryService(&mocks.RecordSource{}, testLogger())

	_, err := svc.Load(context.Background(), "   ")
	var cfgErr *entities.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoadSourceError(t *testing.T) {
	fetchErr := &entities.FetchError{URL: "https://example.org/data.csv", Status: 503}
	svc := NewDirectoryService(&mocks.RecordSource{Err: fetchErr}, testLogger())

	_, err := svc.Load(context.Background(), "https://example.org/data.csv")
	var got *entities.FetchError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 503, got.Status)
}

func TestGetLastRowWins(t *testing.T) {
	dir := &Directory{Entities: []entities.Entity{
		{ID: "dup", Name: "old submission"},
		{ID: "other", Name: "Other"},
		{ID: "dup", Name: "resubmission"},
	}}

	got, err := dir.Get("dup")
	require.NoError(t, err)
	assert.Equal(t, "resubmission", got.Name)
}

func TestGetNotFound(t *testing.T) {
	dir := &Directory{}

	_, err := dir.Get("missing")
	var notFound *entities.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.False(t, errors.Is(err, context.Canceled))
}

func TestSortByName(t *testing.T) {
	items := []entities.Entity{
		{Name: "beta"},
		{Name: "Alpha"},
		{Name: "gamma"},
	}

	asc := SortByName(items, true)
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, names(asc))

	desc := SortByName(items, false)
	assert.Equal(t, []string{"gamma", "beta", "Alpha"}, names(desc))

	assert.Equal(t, []string{"beta", "Alpha", "gamma"}, names(items),
		"input order preserved")
}

func names(items []entities.Entity) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = e.Name
	}
	return out
}
