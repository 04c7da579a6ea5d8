package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// DefaultHistoryLimit is used when Recent is called with a non-positive limit.
const DefaultHistoryLimit = 20

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads and clears the lookup history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit lookups, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.LookupEntry, error) {
	if s.store == nil {
		return nil, errors.New("history store unavailable")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.Recent(ctx, limit)
}

// Clear removes all lookups.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return errors.New("history store unavailable")
	}
	return s.store.Clear(ctx)
}
