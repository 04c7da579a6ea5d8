package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Lookup Errors.

	// ErrInvalidQuery indicates one or both required query inputs are empty
	// or unusable. The record store is never consulted for such queries.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNoDataSource indicates neither the per-crop spreadsheet nor the
	// shared fallback spreadsheet exists.
	ErrNoDataSource = errors.New("no data source available")

	// ErrNoMatch indicates a spreadsheet was loaded but no row satisfied the query.
	ErrNoMatch = errors.New("no matching records")

	// ErrSchemaMismatch indicates spreadsheet headers could not be mapped
	// onto the canonical schema.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnsupportedFormat indicates a spreadsheet file extension with no reader.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

// SchemaMismatchError describes why a spreadsheet could not be normalised.
// It unwraps to ErrSchemaMismatch.
type SchemaMismatchError struct {
	// Source is the spreadsheet path.
	Source string

	// Missing lists required fields with no matching column.
	Missing []Field

	// Ambiguous lists fields matched by more than one column.
	Ambiguous []Field
}

// Error implements error.
func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+joinFields(e.Missing))
	}
	if len(e.Ambiguous) > 0 {
		parts = append(parts, "ambiguous "+joinFields(e.Ambiguous))
	}
	detail := strings.Join(parts, ", ")
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", ErrSchemaMismatch, detail)
	}
	return fmt.Sprintf("%s in %s: %s", ErrSchemaMismatch, e.Source, detail)
}

// Unwrap allows errors.Is(err, ErrSchemaMismatch).
func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = fmt.Sprintf("%s (%s)", f.Header(), f.Key())
	}
	return strings.Join(names, ", ")
}
