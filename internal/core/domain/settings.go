package domain

import "strings"

const unknownDescription = "Unknown"

// Configuration keys understood by the settings service.
const (
	KeyDataDir        = "data.dir"
	KeyDataFallback   = "data.fallback"
	KeyDataExtensions = "data.extensions"
	KeyLinksFile      = "links.file"
	KeyLinksWatch     = "links.watch"
	KeySearchMatch    = "search.match"
	KeyHistoryEnabled = "history.enabled"
)

// Default configuration values.
const (
	DefaultDataDir      = "./output"
	DefaultFallbackFile = "기타작물.xlsx"
	DefaultLinksFile    = "./croplinkmobile.txt"
)

// DefaultExtensions returns the spreadsheet extensions tried for per-crop files.
func DefaultExtensions() []string {
	return []string{".xlsx", ".csv"}
}

// DataSettings configures where spreadsheets are found.
type DataSettings struct {
	// Dir is the folder holding per-crop and fallback spreadsheets.
	Dir string

	// Fallback is the shared spreadsheet file name inside Dir.
	Fallback string

	// Extensions are tried in order when resolving "<crop><ext>".
	Extensions []string
}

// LinkSettings configures the link table.
type LinkSettings struct {
	// File is the path of the "name:url" text file.
	File string

	// Watch reloads the table when the file changes.
	Watch bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Data           DataSettings
	Links          LinkSettings
	MatchMode      MatchMode
	HistoryEnabled bool
}

// DefaultAppSettings returns settings with defaults applied.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Data: DataSettings{
			Dir:        DefaultDataDir,
			Fallback:   DefaultFallbackFile,
			Extensions: DefaultExtensions(),
		},
		Links: LinkSettings{
			File:  DefaultLinksFile,
			Watch: true,
		},
		MatchMode:      MatchSubstring,
		HistoryEnabled: true,
	}
}

// Validate checks settings for unusable values.
func (s AppSettings) Validate() error {
	if strings.TrimSpace(s.Data.Dir) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(s.Data.Fallback) == "" {
		return ErrInvalidInput
	}
	if len(s.Data.Extensions) == 0 {
		return ErrInvalidInput
	}
	if !s.MatchMode.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

// NormaliseExtension lower-cases an extension and adds the leading dot.
func NormaliseExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
