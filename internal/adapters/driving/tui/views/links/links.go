// Package links provides the crop reference link view for the TUI.
package links

import (
	"context"
	"errors"
	"fmt"
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

// ErrNoLinkService indicates that no link service was provided.
var ErrNoLinkService = errors.New("link service is required")

// View lists the crops in the link table. Enter shows the selected crop's
// URL and o opens it in the browser.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	linkService driving.LinkService
	ctx         context.Context

	names    []string
	selected int
	shown    string // crop whose URL is displayed
	url      string

	width  int
	height int
	ready  bool
}

// NewView creates a new links view.
func NewView(s *styles.Styles, km *keymap.KeyMap, linkService driving.LinkService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.LinksHelp())

	return &View{
		styles:      s,
		keymap:      km,
		statusbar:   bar,
		linkService: linkService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context used to open links.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init reloads the crop names from the current link table.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reads the crop names from the link service, keeping the cursor
// on the same crop when it still exists.
func (v *View) Refresh() {
	current := v.SelectedName()
	v.names = nil
	if v.linkService != nil {
		v.names = v.linkService.Names()
	}

	v.selected = 0
	for i, name := range v.names {
		if name == current {
			v.selected = i
			break
		}
	}

	v.statusbar.Clear()
	if v.linkService == nil {
		v.statusbar.Fail(ErrNoLinkService)
	} else {
		v.statusbar.SetMessage(fmt.Sprintf("%d crops", len(v.names)))
	}
}

// Update handles messages for the links view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LinkOpened:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
			return v, nil
		}
		v.statusbar.Notice("Opened " + msg.URL)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.names)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keymap.Select):
		v.show()
	case key.Matches(msg, v.keymap.Open):
		return v, v.open()
	}
	return v, nil
}

func (v *View) show() {
	name := v.SelectedName()
	if name == "" {
		v.statusbar.Notice(domain.MsgSelectCrop)
		return
	}
	if v.linkService == nil {
		v.statusbar.Fail(ErrNoLinkService)
		return
	}

	url, err := v.linkService.Resolve(name)
	if err != nil {
		v.shown, v.url = "", ""
		if errors.Is(err, domain.ErrNotFound) {
			v.statusbar.Notice(domain.MsgNoLink)
			return
		}
		v.statusbar.Fail(err)
		return
	}
	v.shown, v.url = name, url
}

func (v *View) open() tea.Cmd {
	name := v.SelectedName()
	if name == "" {
		v.statusbar.Notice(domain.MsgSelectCrop)
		return nil
	}
	if v.linkService == nil {
		v.statusbar.Fail(ErrNoLinkService)
		return nil
	}

	service, ctx := v.linkService, v.ctx
	return func() tea.Msg {
		url, err := service.Open(ctx, name)
		return messages.LinkOpened{CropName: name, URL: url, Err: err}
	}
}

// View renders the links view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("작물 질병도감"), "")

	if len(v.names) == 0 {
		sections = append(sections, v.styles.Muted.Render("No crop links loaded."))
	} else {
		sections = append(sections, v.renderList())
	}

	if v.shown != "" {
		sections = append(sections, "",
			v.styles.Label.Render(v.shown)+"  "+v.styles.Link.Render(v.url))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderList() string {
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}

	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.names) {
		end = len(v.names)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == v.selected {
			lines = append(lines, v.styles.Selected.Render("> "+v.names[i]))
		} else {
			lines = append(lines, v.styles.Normal.Render("  "+v.names[i]))
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Names returns the crop names shown.
func (v *View) Names() []string {
	return v.names
}

// SelectedName returns the crop under the cursor, or "" when the list is empty.
func (v *View) SelectedName() string {
	if v.selected < 0 || v.selected >= len(v.names) {
		return ""
	}
	return v.names[v.selected]
}

// ShownURL returns the URL displayed for the last selected crop.
func (v *View) ShownURL() string {
	return v.url
}

// Status returns the status bar, for inspection.
func (v *View) Status() *status.Bar {
	return v.statusbar
}
