package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// mockRecordStore implements driven.RecordStore for testing.
type mockRecordStore struct {
	records []domain.PesticideRecord
	source  domain.DataSource
	err     error

	mu    sync.Mutex
	calls []string
}

func (m *mockRecordStore) Load(_ context.Context, cropName string) ([]domain.PesticideRecord, domain.DataSource, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cropName)
	m.mu.Unlock()
	if m.err != nil {
		return nil, domain.DataSource{}, m.err
	}
	return m.records, m.source, nil
}

func (m *mockRecordStore) Schema() domain.Schema {
	return domain.DefaultSchema()
}

func (m *mockRecordStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockHistoryStore implements driven.HistoryStore for testing.
type mockHistoryStore struct {
	saved   []domain.LookupEntry
	saveErr error
}

func (m *mockHistoryStore) Save(_ context.Context, entry domain.LookupEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, entry)
	return nil
}

func (m *mockHistoryStore) Recent(_ context.Context, limit int) ([]domain.LookupEntry, error) {
	if limit < len(m.saved) {
		return m.saved[:limit], nil
	}
	return m.saved, nil
}

func (m *mockHistoryStore) Clear(_ context.Context) error {
	m.saved = nil
	return nil
}

// mockLinkSource implements driven.LinkSource for testing.
type mockLinkSource struct {
	table   *domain.LinkTable
	err     error
	reloads []*domain.LinkTable
}

func (m *mockLinkSource) Load(_ context.Context) (*domain.LinkTable, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.table, nil
}

func (m *mockLinkSource) Watch(_ context.Context, onReload func(*domain.LinkTable)) error {
	for _, t := range m.reloads {
		onReload(t)
	}
	return nil
}

func (m *mockLinkSource) Path() string {
	return "croplinkmobile.txt"
}

// mockOpener implements driven.URLOpener for testing.
type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(_ context.Context, url string) error {
	if m.err != nil {
		return m.err
	}
	m.opened = append(m.opened, url)
	return nil
}

// mockClipboard implements driven.Clipboard for testing.
type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) Copy(_ context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func record(crop, disease, brand string) domain.PesticideRecord {
	return domain.PesticideRecord{Crop: crop, Disease: disease, BrandName: brand}
}
