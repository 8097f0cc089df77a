package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies a view type for navigation and testing.
type ViewID string

const (
	ViewLedger      ViewID = "ledger"
	ViewInstruction ViewID = "instruction"
	ViewForm        ViewID = "form"
)

// View is a screen in the TUI. Views are stacked; the top of the stack
// receives input and renders the content area.
type View interface {
	tea.Model

	// ID returns the view's identifier.
	ID() ViewID

	// ShortHelp returns keybindings shown in the status bar.
	ShortHelp() []key.Binding

	// Title returns the breadcrumb title, or "" to omit.
	Title() string
}
