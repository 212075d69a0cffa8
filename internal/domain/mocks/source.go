// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/bridgeit/directory/internal/domain/ports"
)

// RecordSource is a mock implementation of ports.RecordSource.
type RecordSource struct {
	Records    []ports.Record
	Warnings   []ports.ParseWarning
	Err        error
	FetchedURL string
}

// FetchRecords returns the configured records or error and remembers
// the requested URL.
func (m *RecordSource) FetchRecords(ctx context.Context, url string) ([]ports.Record, []ports.ParseWarning, error) {
	m.FetchedURL = url
	if m.Err != nil {
		return nil, nil, m.Err
	}
	return m.Records, m.Warnings, nil
}

// PageFetcher is a mock implementation of ports.PageFetcher.
type PageFetcher struct {
	HTML        string
	Err         error
	FetchedPath string
}

// FetchPage returns the configured HTML or error.
func (m *PageFetcher) FetchPage(ctx context.Context, path string) (string, error) {
	m.FetchedPath = path
	if m.Err != nil {
		return "", m.Err
	}
	return m.HTML, nil
}
