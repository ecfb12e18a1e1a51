package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/forest-journey/internal/core"
)

// holdFrames is how long a key press keeps a direction held. Terminals send
// no release events, so auto-repeat refreshes the hold while a key is down.
const holdFrames = 10

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Start key.Binding
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "launch/fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/continue"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdState turns discrete key presses into held directions.
type holdState struct {
	left  int
	right int
}

// press holds one direction and releases the other.
func (h *holdState) press(left bool) {
	if left {
		h.left, h.right = holdFrames, 0
	} else {
		h.left, h.right = 0, holdFrames
	}
}

// apply writes the held directions into frame and ages the hold by a frame.
func (h *holdState) apply(frame *core.InputFrame) {
	frame.Left = h.left > 0
	frame.Right = h.right > 0
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
}

// release drops any held direction.
func (h *holdState) release() {
	h.left, h.right = 0, 0
}
