package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
)

// KeyMap defines the key bindings for the puzzle screen.
// Letters are not bindings; any single A-Z key types into the row.
type KeyMap struct {
	Submit   key.Binding
	Delete   key.Binding
	NewRound key.Binding
	Easy     key.Binding
	Medium   key.Binding
	Hard     key.Binding
	Stats    key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.NewRound, k.Stats, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete, k.NewRound},
		{k.Easy, k.Medium, k.Hard},
		{k.Stats, k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "delete"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new word"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1", "f1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2", "f2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3", "f3"),
			key.WithHelp("3", "hard"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to puzzle inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an input.
// Returns ActionNone for keys that mean nothing on the puzzle screen.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, km.keys.Back):
		return core.Input{Action: core.ActionBack}
	case key.Matches(msg, km.keys.Submit):
		return core.Input{Action: core.ActionSubmit}
	case key.Matches(msg, km.keys.Delete):
		return core.Input{Action: core.ActionBackspace}
	case key.Matches(msg, km.keys.NewRound):
		return core.Input{Action: core.ActionNewRound}
	case key.Matches(msg, km.keys.Easy):
		return core.Input{Action: core.ActionModeEasy}
	case key.Matches(msg, km.keys.Medium):
		return core.Input{Action: core.ActionModeMedium}
	case key.Matches(msg, km.keys.Hard):
		return core.Input{Action: core.ActionModeHard}
	case key.Matches(msg, km.keys.Stats):
		return core.Input{Action: core.ActionStats}
	case key.Matches(msg, km.keys.Help):
		return core.Input{Action: core.ActionHelp}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		r := msg.Runes[0]
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			return core.Input{Action: core.ActionLetter, Letter: r}
		}
	}

	return core.Input{Action: core.ActionNone}
}

// ModeFor returns the mode selected by a mode action.
func ModeFor(a core.Action) (config.Mode, bool) {
	switch a {
	case core.ActionModeEasy:
		return config.ModeEasy, true
	case core.ActionModeMedium:
		return config.ModeMedium, true
	case core.ActionModeHard:
		return config.ModeHard, true
	}
	return "", false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
