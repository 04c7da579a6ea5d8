package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Ensure LinkService implements the interface.
var _ driving.LinkService = (*LinkService)(nil)

// LinkService serves the crop link table. The table is swapped as a whole
// on reload, so readers never see a partially built table.
type LinkService struct {
	source driven.LinkSource
	opener driven.URLOpener
	table  atomic.Pointer[domain.LinkTable]
}

// NewLinkService creates a link service with an empty table.
// Call Load to read the link source.
func NewLinkService(source driven.LinkSource, opener driven.URLOpener) *LinkService {
	s := &LinkService{
		source: source,
		opener: opener,
	}
	s.table.Store(domain.EmptyLinkTable())
	return s
}

// Load reads the link source and replaces the current table.
func (s *LinkService) Load(ctx context.Context) error {
	if s.source == nil {
		return errors.New("link source unavailable")
	}
	table, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load links: %w", err)
	}
	s.Replace(table)
	logger.Debug("Loaded %d crop links from %s", table.Len(), s.source.Path())
	return nil
}

// Watch reloads the table whenever the link source changes.
// It blocks until ctx is cancelled.
func (s *LinkService) Watch(ctx context.Context) error {
	if s.source == nil {
		return errors.New("link source unavailable")
	}
	return s.source.Watch(ctx, s.Replace)
}

// Replace swaps in a new table. A nil table is treated as empty.
func (s *LinkService) Replace(table *domain.LinkTable) {
	if table == nil {
		table = domain.EmptyLinkTable()
	}
	s.table.Store(table)
}

// Table returns the current table.
func (s *LinkService) Table() *domain.LinkTable {
	return s.table.Load()
}

// Names returns the crop names in sorted order.
func (s *LinkService) Names() []string {
	return s.Table().Names()
}

// Resolve returns the URL for a crop name.
func (s *LinkService) Resolve(cropName string) (string, error) {
	cropName = strings.TrimSpace(cropName)
	if cropName == "" {
		return "", fmt.Errorf("%w: crop name is required", domain.ErrInvalidInput)
	}
	url, ok := s.Table().Lookup(cropName)
	if !ok {
		return "", fmt.Errorf("no link for %s: %w", cropName, domain.ErrNotFound)
	}
	return url, nil
}

// Open resolves the crop's URL and opens it in the browser.
// The URL is returned even when opening fails.
func (s *LinkService) Open(ctx context.Context, cropName string) (string, error) {
	url, err := s.Resolve(cropName)
	if err != nil {
		return "", err
	}
	if s.opener == nil {
		return url, errors.New("no browser opener configured")
	}
	if err := s.opener.Open(ctx, url); err != nil {
		return url, fmt.Errorf("open %s: %w", url, err)
	}
	return url, nil
}
