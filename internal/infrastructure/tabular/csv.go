// Package tabular fetches and parses the published CSV export.
package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/ports"
)

// CSVSource implements ports.RecordSource over HTTP. Each call is one
// uncached fetch; there is no retry and no shared state between loads.
type CSVSource struct {
	client *http.Client
}

// NewCSVSource creates a CSV source with a default timeout when client
// is nil.
func NewCSVSource(client *http.Client) *CSVSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CSVSource{client: client}
}

// FetchRecords downloads and parses the CSV resource. The first row is
// the header, trimmed of surrounding whitespace. Malformed rows become
// warnings, never load failures.
func (s *CSVSource) FetchRecords(ctx context.Context, url string) ([]ports.Record, []ports.ParseWarning, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, &entities.FetchError{URL: url, Err: err}
	}
	// Published sheets sit behind caches; always ask for a fresh copy.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, &entities.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &entities.FetchError{URL: url, Status: resp.StatusCode}
	}

	return parseRecords(resp.Body)
}

// parseRecords reads delimited text permissively: rows may have more or
// fewer fields than the header, and rows the reader rejects are
// reported as warnings while parsing continues.
func parseRecords(r io.Reader) ([]ports.Record, []ports.ParseWarning, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := readHeader(reader)
	if err != nil {
		return nil, nil, err
	}

	var (
		records  []ports.Record
		warnings []ports.ParseWarning
	)
	line := 1
	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			warnings = append(warnings, ports.ParseWarning{
				Line:    line,
				Message: err.Error(),
			})
			continue
		}
		if isBlank(row) {
			continue
		}

		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				values[h] = row[i]
			} else {
				values[h] = ""
			}
		}
		records = append(records, ports.Record{Headers: headers, Values: values})
	}

	return records, warnings, nil
}

func readHeader(reader *csv.Reader) ([]string, error) {
	raw, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
