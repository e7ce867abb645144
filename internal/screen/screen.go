package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/shlvgit07/basmach/internal/coach"
	"github.com/shlvgit07/basmach/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StateMsg carries the application state to the active screen after every
// accepted coach event.
type StateMsg struct {
	State coach.State
}

// Emit returns a command that hands ev to the application reducer.
func Emit(ev coach.Event) tea.Cmd {
	return func() tea.Msg { return ev }
}
