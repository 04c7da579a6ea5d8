package tui

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("tui: lookup service is required")

// ErrMissingLinkService is returned when the link service is not provided.
var ErrMissingLinkService = errors.New("tui: link service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
