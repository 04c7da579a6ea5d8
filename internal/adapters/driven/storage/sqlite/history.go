package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
)

// timeLayout is fixed-width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save records a lookup.
func (s *historyStore) Save(ctx context.Context, entry domain.LookupEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: lookup entry has no id", domain.ErrInvalidInput)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO lookups (id, crop_name, disease_name, outcome, result_count, source_file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.CropName,
		entry.DiseaseName,
		string(entry.Outcome),
		entry.ResultCount,
		entry.SourceFile,
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving lookup: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *historyStore) Recent(ctx context.Context, limit int) ([]domain.LookupEntry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, crop_name, disease_name, outcome, result_count, source_file, created_at
		FROM lookups
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying lookups: %w", err)
	}
	defer rows.Close()

	var entries []domain.LookupEntry
	for rows.Next() {
		var (
			e         domain.LookupEntry
			outcome   string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.CropName, &e.DiseaseName, &outcome,
			&e.ResultCount, &e.SourceFile, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning lookup: %w", err)
		}
		e.Outcome = domain.LookupOutcome(outcome)
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear removes all entries.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM lookups"); err != nil {
		return fmt.Errorf("clearing lookups: %w", err)
	}
	return nil
}
