package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driven"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingKeys lists every key Set accepts, in display order.
var settingKeys = []string{
	domain.KeyDataDir,
	domain.KeyDataFallback,
	domain.KeyDataExtensions,
	domain.KeyLinksFile,
	domain.KeyLinksWatch,
	domain.KeySearchMatch,
	domain.KeyHistoryEnabled,
}

// SettingKeys returns the keys understood by the settings service.
func SettingKeys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Data: domain.DataSettings{
			Dir:        s.getString(domain.KeyDataDir, defaults.Data.Dir),
			Fallback:   s.getString(domain.KeyDataFallback, defaults.Data.Fallback),
			Extensions: s.getExtensions(defaults.Data.Extensions),
		},
		Links: domain.LinkSettings{
			File:  s.getString(domain.KeyLinksFile, defaults.Links.File),
			Watch: s.getBool(domain.KeyLinksWatch, defaults.Links.Watch),
		},
		MatchMode:      s.getMatchMode(defaults.MatchMode),
		HistoryEnabled: s.getBool(domain.KeyHistoryEnabled, defaults.HistoryEnabled),
	}

	return settings, nil
}

// Set validates and persists one setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("config store unavailable")
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case domain.KeyDataDir, domain.KeyDataFallback, domain.KeyLinksFile:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		stored = value

	case domain.KeyDataExtensions:
		exts := parseExtensions(value)
		if len(exts) == 0 {
			return fmt.Errorf("%w: %s needs at least one extension", domain.ErrInvalidInput, key)
		}
		stored = exts

	case domain.KeyLinksWatch, domain.KeyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored = b

	case domain.KeySearchMatch:
		mode := domain.MatchMode(strings.ToLower(value))
		if !mode.IsValid() {
			return fmt.Errorf("%w: %s must be %q or %q",
				domain.ErrInvalidInput, key, domain.MatchSubstring, domain.MatchExact)
		}
		stored = mode.String()

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Values returns every setting key with its effective value as text.
func (s *SettingsService) Values() (map[string]string, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		domain.KeyDataDir:        settings.Data.Dir,
		domain.KeyDataFallback:   settings.Data.Fallback,
		domain.KeyDataExtensions: strings.Join(settings.Data.Extensions, ","),
		domain.KeyLinksFile:      settings.Links.File,
		domain.KeyLinksWatch:     strconv.FormatBool(settings.Links.Watch),
		domain.KeySearchMatch:    settings.MatchMode.String(),
		domain.KeyHistoryEnabled: strconv.FormatBool(settings.HistoryEnabled),
	}, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// parseExtensions splits a comma-separated list and normalises each entry.
func parseExtensions(value string) []string {
	var exts []string
	for _, part := range strings.Split(value, ",") {
		if ext := domain.NormaliseExtension(part); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := strings.TrimSpace(s.configStore.GetString(key))
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getExtensions(defaultVal []string) []string {
	var exts []string
	for _, e := range s.configStore.GetStringSlice(domain.KeyDataExtensions) {
		if ext := domain.NormaliseExtension(e); ext != "" {
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		return defaultVal
	}
	return exts
}

func (s *SettingsService) getMatchMode(defaultVal domain.MatchMode) domain.MatchMode {
	mode := domain.MatchMode(strings.ToLower(s.configStore.GetString(domain.KeySearchMatch)))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
