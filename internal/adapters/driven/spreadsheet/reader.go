package spreadsheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/logger"
)

// Table is a raw spreadsheet: the header row and the data rows below it,
// with every row padded to the widest row.
type Table struct {
	// Source is the file the table was read from.
	Source string

	Header []string
	Rows   [][]string

	// HeaderWidth is the number of cells in the source header row before
	// padding. Zero means the whole Header came from the source.
	HeaderWidth int

	// RowNumbers holds the 1-based sheet row of each entry in Rows.
	RowNumbers []int
}

// SupportedExtensions lists the file extensions ReadFile understands.
func SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".csv", ".tsv"}
}

// IsSupported reports whether ReadFile can read files with ext.
func IsSupported(ext string) bool {
	ext = domain.NormaliseExtension(ext)
	for _, e := range SupportedExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// ReadFile reads the first sheet of a workbook or a delimited text file.
func ReadFile(ctx context.Context, path string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer logger.Timed("read " + filepath.Base(path))()

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	case ".csv":
		rows, err = readDelimited(path, ',')
	case ".tsv":
		rows, err = readDelimited(path, '\t')
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", path, err)
	}

	table := buildTable(rows)
	table.Source = path
	logger.Debug("Read %s: %d columns, %d rows", filepath.Base(path), len(table.Header), len(table.Rows))
	return table, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// buildTable picks the first non-blank row as the header. Blank rows below
// it are dropped; the remaining rows are padded to a common width.
func buildTable(raw [][]string) *Table {
	table := &Table{}

	headerAt := -1
	for i, row := range raw {
		cleaned := cleanRow(row)
		if headerAt < 0 {
			if !isBlankRow(cleaned) {
				headerAt = i
				table.Header = cleaned
			}
			continue
		}
		if isBlankRow(cleaned) {
			continue
		}
		table.Rows = append(table.Rows, cleaned)
		table.RowNumbers = append(table.RowNumbers, i+1)
	}

	table.HeaderWidth = len(table.Header)
	width := len(table.Header)
	for _, row := range table.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	table.Header = pad(table.Header, width)
	for i := range table.Rows {
		table.Rows[i] = pad(table.Rows[i], width)
	}

	return table
}

// sourceWidth returns how many header cells were present in the source.
func (t *Table) sourceWidth() int {
	if t.HeaderWidth <= 0 || t.HeaderWidth > len(t.Header) {
		return len(t.Header)
	}
	return t.HeaderWidth
}

// columnEmpty reports whether col holds no value in any data row.
func (t *Table) columnEmpty(col int) bool {
	for _, row := range t.Rows {
		if col < len(row) && row[col] != "" {
			return false
		}
	}
	return true
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
