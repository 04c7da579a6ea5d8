package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// MockLookupService implements driving.LookupService for CLI tests.
type MockLookupService struct {
	Result  *domain.ResultSet
	Err     error
	Queries []domain.Query
}

func (m *MockLookupService) Search(_ context.Context, query domain.Query) (*domain.ResultSet, error) {
	m.Queries = append(m.Queries, query)
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if m.Result != nil {
		m.Result.Query = query.Trimmed()
	}
	return m.Result, m.Err
}

func (m *MockLookupService) Schema() domain.Schema {
	return domain.DefaultSchema()
}

// MockLinkService implements driving.LinkService for CLI tests.
type MockLinkService struct {
	table   *domain.LinkTable
	openErr error
	opened  []string
}

func (m *MockLinkService) Table() *domain.LinkTable {
	if m.table == nil {
		return domain.EmptyLinkTable()
	}
	return m.table
}

func (m *MockLinkService) Names() []string {
	return m.Table().Names()
}

func (m *MockLinkService) Resolve(name string) (string, error) {
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

func (m *MockLinkService) Open(_ context.Context, name string) (string, error) {
	url, err := m.Resolve(name)
	if err != nil {
		return "", err
	}
	if m.openErr != nil {
		return url, m.openErr
	}
	m.opened = append(m.opened, url)
	return url, nil
}

// MockHistoryService implements driving.HistoryService for CLI tests.
type MockHistoryService struct {
	Entries []domain.LookupEntry
	Cleared bool
}

func (m *MockHistoryService) Recent(_ context.Context, limit int) ([]domain.LookupEntry, error) {
	if limit > 0 && limit < len(m.Entries) {
		return m.Entries[:limit], nil
	}
	return m.Entries, nil
}

func (m *MockHistoryService) Clear(_ context.Context) error {
	m.Cleared = true
	m.Entries = nil
	return nil
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	values map[string]string
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *MockSettingsService) Set(key, value string) error {
	if _, ok := m.values[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	m.values[key] = value
	return nil
}

func (m *MockSettingsService) Values() (map[string]string, error) {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

var (
	_ driving.LookupService   = (*MockLookupService)(nil)
	_ driving.LinkService     = (*MockLinkService)(nil)
	_ driving.HistoryService  = (*MockHistoryService)(nil)
	_ driving.SettingsService = (*MockSettingsService)(nil)
)

func testLinkTable() *domain.LinkTable {
	return domain.NewLinkTable([]domain.LinkEntry{
		{CropName: "사과", URL: "https://example.org/apple"},
		{CropName: "배", URL: "https://example.org/pear"},
	})
}

// setupTestServices installs services for the duration of a test.
func setupTestServices(t *testing.T, s *Services) {
	t.Helper()
	SetServices(s)
	t.Cleanup(func() { SetServices(nil) })
}

// resetFlags restores command flag variables to their defaults.
func resetFlags() {
	searchCrop, searchDisease, searchFields = "", "", ""
	searchExact, searchJSON = false, false
	linksJSON = false
	schemaJSON = false
	historyLimit, historyClear, historyJSON = 20, false, false
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestSetServices_NilClearsServices(t *testing.T) {
	SetServices(&Services{Lookup: &MockLookupService{}, Links: &MockLinkService{}})
	SetServices(nil)

	require.Nil(t, lookupService)
	require.Nil(t, linkService)
	require.Nil(t, linkWatcher)
}

func TestSetup_UsesBootstrap(t *testing.T) {
	lookup := &MockLookupService{Err: domain.ErrNoMatch, Result: &domain.ResultSet{}}
	cleaned := false
	SetBootstrap(func(_ context.Context, opts Options) (*Services, func(), error) {
		require.Equal(t, "/tmp/data", opts.DataDir)
		return &Services{Lookup: lookup}, func() { cleaned = true }, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(nil)
		options = Options{}
	})

	_, _, err := executeCommand(t, "search", "--data-dir", "/tmp/data", "-c", "사과", "-d", "탄저병")

	require.NoError(t, err)
	require.Len(t, lookup.Queries, 1)
	require.True(t, cleaned)
}

func TestSetup_BootstrapError(t *testing.T) {
	SetBootstrap(func(context.Context, Options) (*Services, func(), error) {
		return nil, nil, errors.New("config unreadable")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, _, err := executeCommand(t, "links")

	require.Error(t, err)
	require.Contains(t, err.Error(), "config unreadable")
}
