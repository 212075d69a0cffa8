// Package ports defines the interfaces between the domain and the
// infrastructure implementations.
package ports

import "context"

// Record is one raw tabular row: trimmed header names mapped to raw
// cell values. Headers preserve source column order because fallback
// pattern resolution scans them in order.
type Record struct {
	Headers []string
	Values  map[string]string
}

// Get returns the raw value for a header, or empty when absent.
func (r Record) Get(header string) string {
	return r.Values[header]
}

// ParseWarning describes a row that could not be parsed. Warnings never
// abort a load; the pipeline proceeds with the rows that parsed.
type ParseWarning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// RecordSource fetches and parses a tabular resource. Implementations
// must bypass intermediary caches and report a FetchError for
// non-success responses.
type RecordSource interface {
	FetchRecords(ctx context.Context, url string) ([]Record, []ParseWarning, error)
}

// PageFetcher retrieves raw HTML for a site-relative path, used to
// embed profile pages on the detail view.
type PageFetcher interface {
	FetchPage(ctx context.Context, path string) (string, error)
}
