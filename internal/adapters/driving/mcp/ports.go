package mcp

import (
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Lookup runs pesticide searches.
	Lookup driving.LookupService

	// Links resolves crop reference links. Optional.
	Links driving.LinkService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
