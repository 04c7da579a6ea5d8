package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoLookupService indicates that no lookup service was provided.
	ErrNoLookupService = errors.New("lookup service is required")
)
