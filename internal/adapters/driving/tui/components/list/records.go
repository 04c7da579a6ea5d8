// Package list provides list display components for the TUI.
package list

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// Columns shown in the results table, after the row number.
var tableFields = []domain.Field{
	domain.FieldBrandName,
	domain.FieldItemName,
	domain.FieldActiveIngredient,
	domain.FieldDilution,
	domain.FieldTiming,
	domain.FieldMaxApplications,
}

// Relative column weights, matching tableFields.
var columnWeights = []int{4, 4, 4, 2, 4, 2}

const numberColumnWidth = 4

// RecordTable displays pesticide records in a bubbles table.
type RecordTable struct {
	table   table.Model
	records []domain.PesticideRecord
	styles  *styles.Styles
	width   int
	height  int
}

// NewRecordTable creates an empty, unfocused record table.
func NewRecordTable(s *styles.Styles) *RecordTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	r := &RecordTable{
		styles: s,
		width:  80,
		height: 10,
	}
	r.table = table.New(
		table.WithColumns(r.columns()),
		table.WithHeight(r.height),
		table.WithStyles(s.TableStyles()),
	)
	return r
}

// Init initialises the table.
func (r *RecordTable) Init() tea.Cmd {
	return nil
}

// Update forwards navigation keys to the table.
func (r *RecordTable) Update(msg tea.Msg) (*RecordTable, tea.Cmd) {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return r, cmd
}

// View renders the table.
func (r *RecordTable) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No results")
	}
	return r.styles.Border.Render(r.table.View())
}

func (r *RecordTable) columns() []table.Column {
	available := r.width - numberColumnWidth - 2*(len(tableFields)+1) - 2
	total := 0
	for _, w := range columnWeights {
		total += w
	}

	cols := make([]table.Column, 0, len(tableFields)+1)
	cols = append(cols, table.Column{Title: "#", Width: numberColumnWidth})
	for i, f := range tableFields {
		width := available * columnWeights[i] / total
		if width < 6 {
			width = 6
		}
		cols = append(cols, table.Column{Title: f.Header(), Width: width})
	}
	return cols
}

func (r *RecordTable) rows() []table.Row {
	rows := make([]table.Row, 0, len(r.records))
	for i := range r.records {
		row := make(table.Row, 0, len(tableFields)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, f := range tableFields {
			row = append(row, r.records[i].Get(f))
		}
		rows = append(rows, row)
	}
	return rows
}

// SetRecords replaces the rows and moves the cursor to the first row.
func (r *RecordTable) SetRecords(records []domain.PesticideRecord) {
	r.records = records
	r.table.SetRows(r.rows())
	r.table.SetCursor(0)
}

// Records returns the current records.
func (r *RecordTable) Records() []domain.PesticideRecord {
	return r.records
}

// Selected returns the cursor index.
func (r *RecordTable) Selected() int {
	return r.table.Cursor()
}

// SelectedRecord returns the record under the cursor, or nil if none.
func (r *RecordTable) SelectedRecord() *domain.PesticideRecord {
	i := r.table.Cursor()
	if i < 0 || i >= len(r.records) {
		return nil
	}
	return &r.records[i]
}

// MoveUp moves the cursor up one row.
func (r *RecordTable) MoveUp() {
	r.table.MoveUp(1)
}

// MoveDown moves the cursor down one row.
func (r *RecordTable) MoveDown() {
	r.table.MoveDown(1)
}

// Focus lets the table receive navigation keys.
func (r *RecordTable) Focus() {
	r.table.Focus()
}

// Blur stops the table from receiving navigation keys.
func (r *RecordTable) Blur() {
	r.table.Blur()
}

// Focused reports whether the table has focus.
func (r *RecordTable) Focused() bool {
	return r.table.Focused()
}

// SetDimensions resizes the table and recomputes column widths.
func (r *RecordTable) SetDimensions(width, height int) {
	r.width = width
	r.height = height
	if height < 3 {
		height = 3
	}
	r.table.SetColumns(r.columns())
	r.table.SetHeight(height)
	r.table.SetWidth(width - 2)
}

// Width returns the current width.
func (r *RecordTable) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RecordTable) Height() int {
	return r.height
}

// Count returns the number of records.
func (r *RecordTable) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the table has no records.
func (r *RecordTable) IsEmpty() bool {
	return len(r.records) == 0
}
