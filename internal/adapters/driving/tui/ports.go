// Package tui provides an interactive terminal user interface for pestsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup runs pesticide searches.
	Lookup driving.LookupService

	// Links resolves and opens crop reference links.
	Links driving.LinkService

	// Actions copies and formats selected records. Optional.
	Actions driving.RecordActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	lookup driving.LookupService,
	links driving.LinkService,
	actions driving.RecordActionService,
) *Ports {
	return &Ports{
		Lookup:  lookup,
		Links:   links,
		Actions: actions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Links == nil {
		return ErrMissingLinkService
	}
	return nil
}
