package spreadsheet

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// OriginalSuffix marks a column displaced by a positional binding.
const OriginalSuffix = "_원본"

var (
	unnamedHeader = regexp.MustCompile(`^Unnamed: (\d+)$`)
	columnHeader  = regexp.MustCompile(`^Column(\d+)$`)
)

// Binding records which source column a canonical field was read from.
type Binding struct {
	Field      domain.Field
	Column     int
	Header     string
	Positional bool
}

// Mapping is the result of resolving a table header against a schema.
type Mapping struct {
	// Header is the table header after placeholders and renames are applied.
	Header []string

	// Bindings holds one entry per resolved field, in field order.
	Bindings []Binding

	// Unmapped lists the columns not bound to any field.
	Unmapped []int
}

// Column returns the source column bound to f.
func (m *Mapping) Column(f domain.Field) (int, bool) {
	for _, b := range m.Bindings {
		if b.Field == f {
			return b.Column, true
		}
	}
	return 0, false
}

// IsPlaceholder reports whether header is an unnamed column marker for
// position index: empty, "Unnamed: <index>" or "Column<index+1>".
func IsPlaceholder(header string, index int) bool {
	if header == "" {
		return true
	}
	if m := unnamedHeader.FindStringSubmatch(header); m != nil {
		return numberIs(m[1], index)
	}
	if m := columnHeader.FindStringSubmatch(header); m != nil {
		return numberIs(m[1], index+1)
	}
	return false
}

func numberIs(digits string, want int) bool {
	n, err := strconv.Atoi(digits)
	return err == nil && n == want
}

// Resolve maps table headers to schema fields.
//
// A field whose canonical position holds a placeholder header binds to that
// position. Any other column carrying the field's canonical header is then
// renamed with OriginalSuffix. Remaining fields bind to the one column whose
// header equals an accepted alias. Two candidate columns for one field, or
// an unresolved required field, yield a *domain.SchemaMismatchError.
//
// Every header cell is taken to come from the source. ResolveTable also
// considers padding and column contents.
func Resolve(source string, header []string, schema domain.Schema) (*Mapping, error) {
	return resolve(source, header, len(header), nil, schema)
}

// ResolveTable is Resolve for a table read from a file. Header cells added by
// padding never bind positionally. Neither does a placeholder column with no
// values when an accepted header for the field appears in another column.
func ResolveTable(table *Table, schema domain.Schema) (*Mapping, error) {
	return resolve(filepath.Base(table.Source), table.Header, table.sourceWidth(), table, schema)
}

func resolve(source string, header []string, width int, table *Table, schema domain.Schema) (*Mapping, error) {
	m := &Mapping{Header: make([]string, len(header))}
	for i, h := range header {
		h = CleanCell(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		m.Header[i] = h
	}

	bound := make(map[int]bool)
	resolved := make(map[domain.Field]bool)

	// Positional bindings first so displaced canonical headers are renamed
	// before alias matching runs.
	for _, f := range domain.AllFields() {
		idx := int(f)
		if idx >= width || !IsPlaceholder(CleanCell(header[idx]), idx) {
			continue
		}
		if table != nil && len(table.Rows) > 0 && table.columnEmpty(idx) &&
			len(matchAliases(m.Header, map[int]bool{idx: true}, schema.AliasesFor(f))) > 0 {
			logger.Debug("%s: column %d is empty, %s resolved by header", source, idx, f)
			continue
		}
		for j, h := range m.Header {
			if j != idx && h == f.Header() {
				m.Header[j] = h + OriginalSuffix
				logger.Debug("%s: column %d %q renamed to %q", source, j, h, m.Header[j])
			}
		}
		m.Bindings = append(m.Bindings, Binding{Field: f, Column: idx, Header: m.Header[idx], Positional: true})
		bound[idx] = true
		resolved[f] = true
	}

	var missing, ambiguous []domain.Field
	for _, f := range domain.AllFields() {
		if resolved[f] {
			continue
		}

		candidates := matchAliases(m.Header, bound, schema.AliasesFor(f))
		switch len(candidates) {
		case 0:
			if schema.IsRequired(f) {
				missing = append(missing, f)
			}
		case 1:
			col := candidates[0]
			m.Bindings = append(m.Bindings, Binding{Field: f, Column: col, Header: m.Header[col]})
			bound[col] = true
			resolved[f] = true
		default:
			ambiguous = append(ambiguous, f)
		}
	}

	if len(missing) > 0 || len(ambiguous) > 0 {
		return nil, &domain.SchemaMismatchError{Source: source, Missing: missing, Ambiguous: ambiguous}
	}

	sort.Slice(m.Bindings, func(i, j int) bool {
		return m.Bindings[i].Field < m.Bindings[j].Field
	})
	for i := range m.Header {
		if !bound[i] {
			m.Unmapped = append(m.Unmapped, i)
		}
	}
	return m, nil
}

// matchAliases returns the unbound columns whose header equals an alias.
// Comparison ignores case so English keys match in any capitalisation.
func matchAliases(header []string, bound map[int]bool, aliases []string) []int {
	var cols []int
	for i, h := range header {
		if bound[i] {
			continue
		}
		for _, a := range aliases {
			if strings.EqualFold(h, CleanCell(a)) {
				cols = append(cols, i)
				break
			}
		}
	}
	return cols
}

// Normalize converts a raw table to canonical records in source order.
// Unmapped columns with a value are kept in PesticideRecord.Extra.
func Normalize(table *Table, schema domain.Schema) ([]domain.PesticideRecord, error) {
	m, err := ResolveTable(table, schema)
	if err != nil {
		return nil, err
	}
	return Apply(table, m), nil
}

// Apply builds records from table rows using a resolved mapping.
func Apply(table *Table, m *Mapping) []domain.PesticideRecord {
	records := make([]domain.PesticideRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec := domain.PesticideRecord{}
		if i < len(table.RowNumbers) {
			rec.Row = table.RowNumbers[i]
		}
		for _, b := range m.Bindings {
			if b.Column < len(row) {
				rec.Set(b.Field, row[b.Column])
			}
		}
		for _, col := range m.Unmapped {
			if col >= len(row) || row[col] == "" {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[m.Header[col]] = row[col]
		}
		records = append(records, rec)
	}
	return records
}

// CanonicalTable renders records back into a table with canonical headers.
// Extra columns are not included.
func CanonicalTable(records []domain.PesticideRecord) *Table {
	t := &Table{Header: domain.CanonicalHeaders()}
	for _, r := range records {
		t.Rows = append(t.Rows, r.Values())
		t.RowNumbers = append(t.RowNumbers, r.Row)
	}
	return t
}
