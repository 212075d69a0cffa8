package entities

import "fmt"

// The three error kinds surfaced to users. Each maps to a distinct
// message: fetch failures are transient, configuration errors point at
// an authoring mistake, not-found errors name the missing id.

// FetchError indicates a network failure or non-success status while
// downloading the tabular source or an embedded page. Loads are never
// retried automatically.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ConfigurationError indicates required linkage data is absent, such as
// a missing CSV URL or a missing id parameter. It signals a deployment
// or authoring mistake rather than a transient fault.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// NotFoundError indicates the requested entity id has no matching row
// in the loaded dataset.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record found with id %q", e.ID)
}
