package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// mockLookupService implements driving.LookupService for testing.
type mockLookupService struct {
	result  *domain.ResultSet
	err     error
	queries []domain.Query
}

func (m *mockLookupService) Search(_ context.Context, query domain.Query) (*domain.ResultSet, error) {
	m.queries = append(m.queries, query)
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return m.result, m.err
}

func (m *mockLookupService) Schema() domain.Schema {
	return domain.DefaultSchema()
}

// mockLinkService implements driving.LinkService for testing.
type mockLinkService struct {
	table *domain.LinkTable
}

func (m *mockLinkService) Table() *domain.LinkTable {
	if m.table == nil {
		return domain.EmptyLinkTable()
	}
	return m.table
}

func (m *mockLinkService) Names() []string {
	return m.Table().Names()
}

func (m *mockLinkService) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("crop name is required: %w", domain.ErrInvalidInput)
	}
	url, ok := m.Table().Lookup(name)
	if !ok {
		return "", fmt.Errorf("no link for %s: %w", name, domain.ErrNotFound)
	}
	return url, nil
}

func (m *mockLinkService) Open(_ context.Context, name string) (string, error) {
	return m.Resolve(name)
}

var (
	_ driving.LookupService = (*mockLookupService)(nil)
	_ driving.LinkService   = (*mockLinkService)(nil)
)

func testLinks() *mockLinkService {
	return &mockLinkService{table: domain.NewLinkTable([]domain.LinkEntry{
		{CropName: "사과", URL: "https://example.org/apple"},
		{CropName: "배", URL: "https://example.org/pear"},
	})}
}
