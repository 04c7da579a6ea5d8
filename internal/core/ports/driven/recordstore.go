package driven

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// RecordStore resolves the spreadsheet for a crop and loads its rows
// normalised to the canonical schema.
type RecordStore interface {
	// Load returns every record of the spreadsheet serving cropName, in source order.
	// Returns domain.ErrNoDataSource when neither the per-crop nor the
	// fallback spreadsheet exists, and a *domain.SchemaMismatchError when the
	// headers cannot be mapped.
	Load(ctx context.Context, cropName string) ([]domain.PesticideRecord, domain.DataSource, error)

	// Schema returns the schema used for normalisation.
	Schema() domain.Schema
}
