// Package screen defines the contract between the router and the
// individual views: home, lesson, summary, market, coach, and profile.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"investingo/internal/ui/layout"
)

// Screen is one view on the navigation stack. The router forwards
// messages only to the active screen; covered screens keep their state
// but see nothing until they resurface.
type Screen interface {
	// Init runs when the screen is pushed, not on every activation.
	Init() tea.Cmd

	// Update handles one message and returns the screen to keep on the
	// stack, which may be itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders into the content area between header and footer.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
// Screens with phase-dependent keys (the lesson view) return different
// hints per phase.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
