package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.RecordStore = (*Store)(nil)

// Store is a driven.RecordStore over a folder of spreadsheets.
// Parsed files are cached until their size or modification time changes.
type Store struct {
	dir        string
	fallback   string
	extensions []string
	schema     domain.Schema

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	records []domain.PesticideRecord
}

// NewStore creates a record store from data settings. Unsupported
// extensions are dropped; empty settings fall back to defaults.
func NewStore(settings domain.DataSettings, schema domain.Schema) *Store {
	defaults := domain.DefaultAppSettings().Data

	s := &Store{
		dir:      settings.Dir,
		fallback: settings.Fallback,
		schema:   schema,
		cache:    make(map[string]cacheEntry),
	}
	if s.dir == "" {
		s.dir = defaults.Dir
	}
	if s.fallback == "" {
		s.fallback = defaults.Fallback
	}
	for _, ext := range settings.Extensions {
		ext = domain.NormaliseExtension(ext)
		if IsSupported(ext) {
			s.extensions = append(s.extensions, ext)
		} else if ext != "" {
			logger.Warn("Ignoring unsupported spreadsheet extension %q", ext)
		}
	}
	if len(s.extensions) == 0 {
		s.extensions = defaults.Extensions
	}
	return s
}

// Schema returns the schema used for normalisation.
func (s *Store) Schema() domain.Schema {
	return s.schema
}

// Dir returns the data folder.
func (s *Store) Dir() string {
	return s.dir
}

// Locate finds the spreadsheet serving cropName without reading it.
func (s *Store) Locate(cropName string) (domain.DataSource, error) {
	for _, ext := range s.extensions {
		path := filepath.Join(s.dir, cropName+ext)
		if isFile(path) {
			return domain.DataSource{Path: path}, nil
		}
	}

	path := filepath.Join(s.dir, s.fallback)
	if isFile(path) {
		return domain.DataSource{Path: path, Fallback: true}, nil
	}

	return domain.DataSource{}, fmt.Errorf("%w: no spreadsheet for %s in %s", domain.ErrNoDataSource, cropName, s.dir)
}

// Load reads and normalises the spreadsheet serving cropName.
func (s *Store) Load(ctx context.Context, cropName string) ([]domain.PesticideRecord, domain.DataSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.DataSource{}, err
	}

	source, err := s.Locate(cropName)
	if err != nil {
		return nil, domain.DataSource{}, err
	}
	if source.Fallback {
		logger.Info("No file for %s, using %s", cropName, source.Path)
	} else {
		logger.Debug("Using %s", source.Path)
	}

	records, err := s.read(ctx, source.Path)
	if err != nil {
		return nil, source, err
	}
	return records, source, nil
}

func (s *Store) read(ctx context.Context, path string) ([]domain.PesticideRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", path, err)
	}

	s.mu.Lock()
	entry, ok := s.cache[path]
	s.mu.Unlock()
	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		logger.Debug("Cache hit for %s", path)
		return entry.records, nil
	}

	table, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	records, err := Normalize(table, s.schema)
	if err != nil {
		var mismatch *domain.SchemaMismatchError
		if errors.As(err, &mismatch) {
			logger.Warn("Headers of %s: %v", path, table.Header)
		}
		return nil, err
	}

	s.mu.Lock()
	s.cache[path] = cacheEntry{modTime: info.ModTime(), size: info.Size(), records: records}
	s.mu.Unlock()

	return records, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
