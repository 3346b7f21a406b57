package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amehta/practik/internal/ui/layout"
)

// Screen is one navigable view in the application.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between the header and footer.
	View(width, height int) string

	// Title returns the screen name for the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscInterceptor lets a screen receive Esc itself instead of the
// default back navigation, e.g. to show a quit confirmation.
type EscInterceptor interface {
	InterceptEsc() bool
}
