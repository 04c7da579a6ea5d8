package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService answers crop and disease queries against the record store.
type LookupService struct {
	store   driven.RecordStore
	history driven.HistoryStore
	mode    domain.MatchMode
	now     func() time.Time
}

// NewLookupService creates a lookup service. An invalid mode falls back
// to domain.MatchSubstring.
func NewLookupService(store driven.RecordStore, mode domain.MatchMode) *LookupService {
	if !mode.IsValid() {
		mode = domain.MatchSubstring
	}
	return &LookupService{
		store: store,
		mode:  mode,
		now:   time.Now,
	}
}

// SetHistoryStore enables lookup history. Passing nil disables it.
func (s *LookupService) SetHistoryStore(store driven.HistoryStore) {
	s.history = store
}

// MatchMode returns the default match mode.
func (s *LookupService) MatchMode() domain.MatchMode {
	return s.mode
}

// Schema returns the schema the record store normalises to.
func (s *LookupService) Schema() domain.Schema {
	if s.store == nil {
		return domain.DefaultSchema()
	}
	return s.store.Schema()
}

// Search returns the records matching both names of the query.
func (s *LookupService) Search(ctx context.Context, query domain.Query) (*domain.ResultSet, error) {
	logger.Section("Lookup")
	query = query.Trimmed()
	logger.Debug("Query: crop=%q disease=%q", query.CropName, query.DiseaseName)

	if err := query.Validate(); err != nil {
		logger.Debug("Rejected query: %v", err)
		s.record(ctx, query, domain.OutcomeInvalidQuery, 0, "")
		return nil, err
	}

	if s.store == nil {
		return nil, errors.New("record store unavailable")
	}

	mode := s.mode
	if query.Mode != "" {
		mode = query.Mode
	}
	logger.Debug("Match mode: %s", mode)

	done := logger.Timed("load records")
	records, source, err := s.store.Load(ctx, query.CropName)
	done()
	if err != nil {
		outcome := domain.OutcomeFailed
		if errors.Is(err, domain.ErrNoDataSource) {
			outcome = domain.OutcomeNoData
		}
		logger.Warn("Load failed for %q: %v", query.CropName, err)
		s.record(ctx, query, outcome, 0, "")
		return nil, fmt.Errorf("load records for %s: %w", query.CropName, err)
	}
	logger.Info("Loaded %d records from %s (fallback=%t)", len(records), source.Path, source.Fallback)

	result := &domain.ResultSet{
		Query:     query,
		Source:    source,
		MatchMode: mode,
		Records:   Filter(records, query, mode),
	}
	logger.Info("Matched %d of %d records", result.Len(), len(records))

	if result.IsEmpty() {
		s.record(ctx, query, domain.OutcomeNoMatch, 0, source.Path)
		return result, domain.ErrNoMatch
	}

	s.record(ctx, query, domain.OutcomeMatched, result.Len(), source.Path)
	return result, nil
}

// record saves a history entry. Failures are logged and otherwise ignored.
func (s *LookupService) record(
	ctx context.Context, query domain.Query, outcome domain.LookupOutcome, count int, path string,
) {
	if s.history == nil {
		return
	}

	entry := domain.LookupEntry{
		ID:          uuid.New().String(),
		CropName:    query.CropName,
		DiseaseName: query.DiseaseName,
		Outcome:     outcome,
		ResultCount: count,
		CreatedAt:   s.now(),
	}
	if path != "" {
		entry.SourceFile = filepath.Base(path)
	}

	if err := s.history.Save(ctx, entry); err != nil {
		logger.Warn("Failed to record lookup history: %v", err)
	}
}
