// Package screen defines the contract every consultation screen
// (welcome, question flow, result) implements for the app shell.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dermatype/internal/ui/layout"
)

// Screen is one stage of the consultation flow. The app shell owns the
// header and footer; a screen renders only its content area.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus any
	// follow-up command. Screens advance the flow by emitting navigation
	// messages (see the nav package).
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content into the given area, which
	// excludes the header and footer rows.
	View(width, height int) string

	// Title is shown centered in the header; empty hides it.
	Title() string
}

// KeyHintProvider lets a screen publish its key bindings in the footer,
// ahead of the global quit hint.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
