// Package record provides the single record view for the TUI.
package record

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pestsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pestsearch/internal/core/domain"
	"github.com/custodia-labs/pestsearch/internal/core/ports/driving"
)

// ErrNoActionService indicates that copying is unavailable.
var ErrNoActionService = errors.New("record actions are not available")

// View shows every canonical field of one record followed by its extra
// source columns.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	actionService driving.RecordActionService
	ctx           context.Context

	record *domain.PesticideRecord
	offset int

	width  int
	height int
	ready  bool
}

// NewView creates a new record view.
func NewView(s *styles.Styles, km *keymap.KeyMap, actionService driving.RecordActionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.RecordHelp())

	return &View{
		styles:        s,
		keymap:        km,
		statusbar:     bar,
		actionService: actionService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context used for record actions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecord shows a record from the top.
func (v *View) SetRecord(rec domain.PesticideRecord) {
	v.record = &rec
	v.offset = 0
	v.statusbar.Clear()
}

// Record returns the record shown, or nil.
func (v *View) Record() *domain.PesticideRecord {
	return v.record
}

// Update handles messages for the record view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		case key.Matches(msg, v.keymap.Up):
			if v.offset > 0 {
				v.offset--
			}
		case key.Matches(msg, v.keymap.Down):
			if v.offset < v.maxOffset() {
				v.offset++
			}
		case key.Matches(msg, v.keymap.Copy):
			return v, v.copyRecord()
		}
		return v, nil

	case messages.RecordCopied:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		} else {
			v.statusbar.Notice("Copied to clipboard")
		}
		return v, nil
	}

	return v, nil
}

func (v *View) copyRecord() tea.Cmd {
	if v.record == nil {
		return nil
	}
	if v.actionService == nil {
		v.statusbar.Fail(ErrNoActionService)
		return nil
	}

	service, ctx, rec := v.actionService, v.ctx, *v.record
	return func() tea.Msg {
		return messages.RecordCopied{Err: service.CopyRecord(ctx, &rec)}
	}
}

// lines renders one line per canonical field, then one per extra column.
func (v *View) lines() []string {
	if v.record == nil {
		return nil
	}

	labelWidth := 0
	for _, f := range domain.AllFields() {
		if w := lipgloss.Width(f.Header()); w > labelWidth {
			labelWidth = w
		}
	}
	extraKeys := make([]string, 0, len(v.record.Extra))
	for k := range v.record.Extra {
		extraKeys = append(extraKeys, k)
		if w := lipgloss.Width(k); w > labelWidth {
			labelWidth = w
		}
	}
	sort.Strings(extraKeys)

	label := v.styles.Label.Width(labelWidth + 2)
	out := make([]string, 0, domain.FieldCount+len(extraKeys)+1)
	for _, f := range domain.AllFields() {
		value := v.record.Get(f)
		if value == "" {
			value = v.styles.Muted.Render("-")
		}
		out = append(out, label.Render(f.Header())+value)
	}
	if len(extraKeys) > 0 {
		out = append(out, v.styles.Subtitle.Render("기타 항목"))
		for _, k := range extraKeys {
			out = append(out, label.Render(k)+v.record.Extra[k])
		}
	}
	return out
}

func (v *View) visibleLines() int {
	n := v.height - 6
	if n < 1 {
		n = 1
	}
	return n
}

func (v *View) maxOffset() int {
	n := len(v.lines()) - v.visibleLines()
	if n < 0 {
		return 0
	}
	return n
}

// View renders the record view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.record == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Title.Render("농약 상세"), "",
			v.styles.Muted.Render("No record selected"), "",
			v.statusbar.View())
	}

	title := v.record.BrandName
	if title == "" {
		title = v.record.ItemName
	}
	header := v.styles.Title.Render("농약 상세") + "  " + v.styles.Normal.Render(title)
	if v.record.Row > 0 {
		header += v.styles.Muted.Render(fmt.Sprintf("  (row %d)", v.record.Row))
	}

	lines := v.lines()
	end := v.offset + v.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[v.offset:end], "\n")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", v.statusbar.View())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

// Offset returns the index of the first visible line.
func (v *View) Offset() int {
	return v.offset
}

// Status returns the status bar, for inspection.
func (v *View) Status() *status.Bar {
	return v.statusbar
}
