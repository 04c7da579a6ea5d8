package driving

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// HistoryService exposes the lookup history.
type HistoryService interface {
	// Recent returns up to limit lookups, newest first.
	Recent(ctx context.Context, limit int) ([]domain.LookupEntry, error)

	// Clear removes the history.
	Clear(ctx context.Context) error
}
