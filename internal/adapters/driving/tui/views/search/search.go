// Package search provides the pesticide search view for the TUI.
package search

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// Focus identifies which part of the view receives keys.
type Focus int

const (
	FocusCrop Focus = iota
	FocusDisease
	FocusResults
)

// View is the search view: crop and disease inputs, a results table and a
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	crop      *input.Field
	disease   *input.Field
	table     *list.RecordTable
	statusbar *status.Bar

	lookupService driving.LookupService
	ctx           context.Context

	focus  Focus
	exact  bool
	result *domain.ResultSet
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, lookupService driving.LookupService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		crop:          input.NewField(s, "작물이름", "예: 사과"),
		disease:       input.NewField(s, "병해명", "예: 탄저병"),
		table:         list.NewRecordTable(s),
		statusbar:     status.NewBar(s, km),
		lookupService: lookupService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
	v.setFocus(FocusCrop)
	return v
}

// WithContext sets the context used for lookups.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.crop.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.Fail(msg.Err)
		return v, nil
	}

	// Forward other messages (cursor blink) to the focused input
	var cmd tea.Cmd
	switch v.focus {
	case FocusCrop:
		v.crop, cmd = v.crop.Update(msg)
	case FocusDisease:
		v.disease, cmd = v.disease.Update(msg)
	case FocusResults:
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case key.Matches(msg, v.keymap.NextField):
		forward := msg.String() != "shift+tab"
		return v, v.cycleFocus(forward)
	case key.Matches(msg, v.keymap.ToggleExact):
		v.exact = !v.exact
		v.statusbar.SetMode(v.modeLabel())
		return v, nil
	}

	if v.focus == FocusResults {
		return v.handleResultsKey(msg)
	}

	if key.Matches(msg, v.keymap.Search) {
		return v, v.submit()
	}

	var cmd tea.Cmd
	if v.focus == FocusCrop {
		v.crop, cmd = v.crop.Update(msg)
	} else {
		v.disease, cmd = v.disease.Update(msg)
	}
	return v, cmd
}

func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Select):
		rec := v.table.SelectedRecord()
		if rec == nil {
			return v, nil
		}
		selected := *rec
		return v, func() tea.Msg {
			return messages.RecordSelected{Record: selected}
		}
	case key.Matches(msg, v.keymap.NewSearch):
		return v, v.setFocus(FocusCrop)
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// submit validates the inputs and starts a lookup. Empty inputs are
// reported without calling the lookup service.
func (v *View) submit() tea.Cmd {
	query := domain.Query{
		CropName:    v.crop.TrimmedValue(),
		DiseaseName: v.disease.TrimmedValue(),
	}
	if v.exact {
		query.Mode = domain.MatchExact
	}

	if query.CropName == "" || query.DiseaseName == "" {
		v.statusbar.Notice(domain.MsgQueryIncomplete)
		if query.CropName == "" {
			return v.setFocus(FocusCrop)
		}
		return v.setFocus(FocusDisease)
	}
	if v.lookupService == nil {
		v.err = ErrNoLookupService
		v.statusbar.Fail(ErrNoLookupService)
		return nil
	}

	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")

	service, ctx := v.lookupService, v.ctx
	return func() tea.Msg {
		result, err := service.Search(ctx, query)
		return messages.SearchCompleted{Result: result, Err: err}
	}
}

func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	v.result = msg.Result
	v.err = nil

	switch {
	case errors.Is(msg.Err, domain.ErrNoMatch):
		v.table.SetRecords(nil)
		v.statusbar.SetState(status.StateNoResults)
		v.statusbar.SetMessage(domain.MsgNoResults)
		return
	case errors.Is(msg.Err, domain.ErrNoDataSource):
		v.table.SetRecords(nil)
		v.statusbar.SetState(status.StateNoResults)
		v.statusbar.SetMessage(domain.MsgNoData)
		return
	case errors.Is(msg.Err, domain.ErrInvalidQuery):
		v.table.SetRecords(nil)
		v.statusbar.Notice(domain.MsgQueryIncomplete)
		return
	case msg.Err != nil:
		v.err = msg.Err
		v.table.SetRecords(nil)
		v.statusbar.Fail(msg.Err)
		return
	}

	var records []domain.PesticideRecord
	if msg.Result != nil {
		records = msg.Result.Records
	}
	v.table.SetRecords(records)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(records))
	v.statusbar.SetMessage(v.sourceLabel())
	if len(records) > 0 {
		v.setFocus(FocusResults)
	}
}

func (v *View) sourceLabel() string {
	if v.result == nil || v.result.Source.Path == "" {
		return ""
	}
	label := "from " + v.result.Source.Path
	if v.result.Source.Fallback {
		label += " (fallback)"
	}
	return label
}

func (v *View) modeLabel() string {
	if v.exact {
		return "exact"
	}
	return ""
}

// cycleFocus moves focus crop → disease → results → crop. The results table
// is skipped while it is empty.
func (v *View) cycleFocus(forward bool) tea.Cmd {
	order := []Focus{FocusCrop, FocusDisease}
	if !v.table.IsEmpty() {
		order = append(order, FocusResults)
	}

	idx := 0
	for i, f := range order {
		if f == v.focus {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx - 1 + len(order)) % len(order)
	}
	return v.setFocus(order[idx])
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.crop.Blur()
	v.disease.Blur()
	v.table.Blur()

	switch f {
	case FocusCrop:
		v.statusbar.SetHints(v.keymap.SearchHelp())
		return v.crop.Focus()
	case FocusDisease:
		v.statusbar.SetHints(v.keymap.SearchHelp())
		return v.disease.Focus()
	case FocusResults:
		v.statusbar.SetHints(v.keymap.ResultsHelp())
		v.table.Focus()
	}
	return nil
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("농약 검색"), "",
		v.crop.View(),
		v.disease.View(), "",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.table.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.crop.SetWidth(width)
	v.disease.SetWidth(width)
	v.table.SetDimensions(width, height-14) // inputs, title and status bar
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// CropName returns the crop input value.
func (v *View) CropName() string {
	return v.crop.Value()
}

// DiseaseName returns the disease input value.
func (v *View) DiseaseName() string {
	return v.disease.Value()
}

// SetQuery fills both inputs.
func (v *View) SetQuery(crop, disease string) {
	v.crop.SetValue(crop)
	v.disease.SetValue(disease)
}

// Result returns the last lookup result.
func (v *View) Result() *domain.ResultSet {
	return v.result
}

// Records returns the records shown in the table.
func (v *View) Records() []domain.PesticideRecord {
	return v.table.Records()
}

// SelectedIndex returns the index of the selected row.
func (v *View) SelectedIndex() int {
	return v.table.Selected()
}

// Focus returns which part of the view has focus.
func (v *View) Focus() Focus {
	return v.focus
}

// Exact reports whether exact matching is on.
func (v *View) Exact() bool {
	return v.exact
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Status returns the status bar, for inspection.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Reset clears the inputs and results and focuses the crop input.
func (v *View) Reset() {
	v.crop.Reset()
	v.disease.Reset()
	v.table.SetRecords(nil)
	v.result = nil
	v.err = nil
	v.statusbar.Clear()
	v.setFocus(FocusCrop)
}
