// Package webpage fetches site pages and extracts embeddable content
// fragments for the detail view.
package webpage

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bridgeit/directory/internal/domain/entities"
)

// Fetcher implements ports.PageFetcher by resolving site-relative paths
// against a configured base origin.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher creates a page fetcher for the given site origin.
func NewFetcher(baseURL string, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// FetchPage retrieves the HTML at a site-relative path. Non-success
// responses surface as FetchError; the caller degrades to a plain link.
func (f *Fetcher) FetchPage(ctx context.Context, path string) (string, error) {
	url := f.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &entities.FetchError{URL: url, Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &entities.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &entities.FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &entities.FetchError{URL: url, Err: err}
	}
	return string(body), nil
}
