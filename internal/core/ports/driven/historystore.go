package driven

import (
	"context"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// HistoryStore persists the lookup history.
type HistoryStore interface {
	// Save records a lookup.
	Save(ctx context.Context, entry domain.LookupEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.LookupEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
