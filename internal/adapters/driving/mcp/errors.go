// Package mcp provides an MCP (Model Context Protocol) server adapter for
// pestsearch. It lets AI assistants look up pesticide registrations and crop
// reference links.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
