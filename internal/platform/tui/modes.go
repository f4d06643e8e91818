package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
)

// ModeModel lets users choose the difficulty before playing.
type ModeModel struct {
	modes     []config.Mode
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  config.Mode
	choosing  bool
	quitting  bool
	back      bool
}

// NewModeModel creates a mode selection model with the cursor on initial.
func NewModeModel(initial config.Mode, width, height int) ModeModel {
	modes := config.AllModes()
	cursor := 0
	for i, m := range modes {
		if m == initial {
			cursor = i
		}
	}

	return ModeModel{
		modes:     modes,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick a mode directly, same as on the puzzle screen
	if mode, ok := ModeFor(m.keyMapper.MapKey(msg).Action); ok {
		m.choosing = false
		m.selected = mode
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.modes[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("W O R D L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		spec := config.MustLookup(mode)
		cursor := "  "
		line := fmt.Sprintf("%d. %-6s  %d letters, %d attempts", i+1, mode.Title(), spec.WordLength, spec.MaxAttempts)
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Guess the hidden word. After each guess the tiles show", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("green: right spot, yellow: wrong spot, gray: not in word.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen mode, or false if still choosing.
func (m ModeModel) Selected() (config.Mode, bool) {
	if m.choosing {
		return "", false
	}
	return m.selected, true
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode selection and returns the chosen mode.
// ok is false when the user left without choosing.
func RunModeSelector(initial config.Mode, cfg core.RuntimeConfig) (mode config.Mode, ok bool, err error) {
	model := NewModeModel(initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMode := finalModel.(ModeModel)
	if !isMode || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}

	mode, ok = m.Selected()
	return mode, ok, nil
}
