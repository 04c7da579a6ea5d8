package domain

import (
	"fmt"
	"strings"
)

// MatchMode selects how query terms are compared with record fields.
type MatchMode string

// Available match modes.
const (
	// MatchSubstring matches when the trimmed field contains the trimmed term.
	MatchSubstring MatchMode = "substring"

	// MatchExact matches when the trimmed field equals the trimmed term.
	MatchExact MatchMode = "exact"
)

// IsValid returns true if the match mode is recognised.
func (m MatchMode) IsValid() bool {
	return m == MatchSubstring || m == MatchExact
}

// String returns the string representation.
func (m MatchMode) String() string {
	return string(m)
}

// Query is a lookup request. Both names are required.
type Query struct {
	CropName    string `json:"crop"`
	DiseaseName string `json:"disease"`

	// Mode overrides the configured match mode when set.
	Mode MatchMode `json:"mode,omitempty"`
}

// Trimmed returns a copy of the query with surrounding whitespace removed.
func (q Query) Trimmed() Query {
	return Query{
		CropName:    strings.TrimSpace(q.CropName),
		DiseaseName: strings.TrimSpace(q.DiseaseName),
		Mode:        q.Mode,
	}
}

// Validate checks that both names are present. The crop name is also used
// to build a file name, so path separators and parent references are rejected.
func (q Query) Validate() error {
	t := q.Trimmed()
	switch {
	case t.CropName == "" && t.DiseaseName == "":
		return fmt.Errorf("%w: crop name and disease name are required", ErrInvalidQuery)
	case t.CropName == "":
		return fmt.Errorf("%w: crop name is required", ErrInvalidQuery)
	case t.DiseaseName == "":
		return fmt.Errorf("%w: disease name is required", ErrInvalidQuery)
	case strings.ContainsAny(t.CropName, `/\`) || t.CropName == "." || t.CropName == "..":
		return fmt.Errorf("%w: crop name %q contains a path", ErrInvalidQuery, t.CropName)
	case t.Mode != "" && !t.Mode.IsValid():
		return fmt.Errorf("%w: unknown match mode %q", ErrInvalidQuery, t.Mode)
	}
	return nil
}

// DataSource describes the spreadsheet that served a query.
type DataSource struct {
	// Path is the spreadsheet file path.
	Path string `json:"path"`

	// Fallback is true when the shared spreadsheet was used because no
	// per-crop file exists.
	Fallback bool `json:"fallback"`
}

// ResultSet holds the records matching a query, in source order.
type ResultSet struct {
	Query     Query             `json:"query"`
	Source    DataSource        `json:"source"`
	MatchMode MatchMode         `json:"match_mode"`
	Records   []PesticideRecord `json:"records"`
}

// Len returns the number of matching records.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// IsEmpty returns true when no record matched.
func (r *ResultSet) IsEmpty() bool {
	return r.Len() == 0
}
