// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

// SearchCompleted carries a lookup result back to the model.
// Result is set together with domain.ErrNoMatch when nothing matched.
type SearchCompleted struct {
	Result *domain.ResultSet
	Err    error
}

// RecordSelected is sent when a result row is chosen.
type RecordSelected struct {
	Record domain.PesticideRecord
}

// RecordCopied reports the outcome of copying a record to the clipboard.
type RecordCopied struct {
	Err error
}

// LinkOpened reports the outcome of opening a crop link in the browser.
type LinkOpened struct {
	CropName string
	URL      string
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the pesticide search view.
	ViewSearch
	// ViewLinks lists crop reference links.
	ViewLinks
	// ViewRecord shows every field of one record.
	ViewRecord
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewLinks:
		return "links"
	case ViewRecord:
		return "record"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
