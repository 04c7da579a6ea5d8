package driving

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// LookupService provides pesticide record lookup to external actors.
type LookupService interface {
	// Search returns the records matching the query in source order.
	// Errors distinguish domain.ErrInvalidQuery, domain.ErrNoDataSource and
	// domain.ErrNoMatch; on ErrNoMatch the (empty) result set is still returned.
	Search(ctx context.Context, query domain.Query) (*domain.ResultSet, error)

	// Schema returns the canonical schema records are normalised to.
	Schema() domain.Schema
}
