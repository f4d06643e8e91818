package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/puzzle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Model is the Bubble Tea model for the puzzle screen.
// All engine calls happen in Update, which Bubble Tea runs on one goroutine.
type Model struct {
	engine    *puzzle.Engine
	store     *storage.Store
	player    string
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	stats     StatsModel
	showStats bool
	flash     status
	flashID   int
	embedded  bool // Back leaves the model instead of quitting the program
	quitting  bool
	back      bool
}

// NewModel creates a puzzle model around an engine.
// store may be nil, in which case the statistics screen stays empty.
func NewModel(engine *puzzle.Engine, store *storage.Store, player string, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:    engine,
		store:     store,
		player:    player,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init waits for the first word pool.
func (m Model) Init() tea.Cmd {
	return waitForPool(m.engine)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.showStats {
			s, _ := m.stats.Update(msg)
			m.stats = s.(StatsModel)
		}
		return m, nil

	case poolReadyMsg:
		return m.handlePoolReady(msg)

	case flashExpiredMsg:
		if msg.id == m.flashID {
			m.flash = status{}
		}
		return m, nil

	case tea.KeyMsg:
		if m.showStats {
			return m.updateStats(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handlePoolReady starts a round once the pool for the active mode is in.
// Stale messages from a superseded mode are ignored.
func (m Model) handlePoolReady(msg poolReadyMsg) (tea.Model, tea.Cmd) {
	if msg.mode != m.engine.Mode() || m.engine.State() != puzzle.StateAwaitingWord {
		return m, nil
	}

	if err := m.engine.StartRound(); err != nil {
		if errors.Is(err, puzzle.ErrLoadFailed) {
			return m.setFlash("Word list failed to load. ctrl+n to retry", core.ColorRed)
		}
		return m.setFlash(err.Error(), core.ColorRed)
	}
	return m, nil
}

// handleKey processes keyboard input on the puzzle screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keyMapper.MapKey(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionStats:
		m.stats = NewStatsModel(m.store, m.player, m.engine.Mode(), m.config.ScreenW, m.config.ScreenH)
		m.stats.embedded = true
		m.showStats = true
		return m, nil

	case core.ActionNewRound:
		return m.newRound()

	case core.ActionModeEasy, core.ActionModeMedium, core.ActionModeHard:
		mode, _ := ModeFor(in.Action)
		if mode == m.engine.Mode() {
			return m, nil
		}
		if err := m.engine.SetMode(mode); err != nil {
			return m.setFlash(err.Error(), core.ColorRed)
		}
		next, cmd := m.setFlash(fmt.Sprintf("%s mode", mode.Title()), core.ColorCyan)
		return next, tea.Batch(cmd, waitForPool(m.engine))

	case core.ActionLetter:
		return m.flashError(m.engine.TypeLetter(in.Letter))

	case core.ActionBackspace:
		err := m.engine.Backspace()
		if errors.Is(err, puzzle.ErrRowEmpty) {
			err = nil
		}
		return m.flashError(err)

	case core.ActionSubmit:
		if _, err := m.engine.SubmitRow(); err != nil {
			return m.flashError(err)
		}
		m.flash = status{}
		if m.engine.State() == puzzle.StateWon {
			return m.setFlash(winMessage(m.engine.Snapshot().Attempts), core.ColorGreen)
		}
		return m, nil
	}

	return m, nil
}

// newRound starts a fresh round, retrying the load if it failed.
func (m Model) newRound() (tea.Model, tea.Cmd) {
	err := m.engine.StartRound()
	switch {
	case err == nil:
		m.flash = status{}
		return m, nil
	case errors.Is(err, puzzle.ErrLoadFailed):
		m.engine.Reload()
		return m, waitForPool(m.engine)
	default:
		return m.flashError(err)
	}
}

// updateStats forwards keys to the statistics screen until it closes.
func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s, cmd := m.stats.Update(msg)
	m.stats = s.(StatsModel)

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stats.IsGoingBack() {
		m.showStats = false
		return m, nil
	}
	return m, cmd
}

// flashError shows a short message for recoverable engine errors.
func (m Model) flashError(err error) (tea.Model, tea.Cmd) {
	if err == nil {
		return m, nil
	}

	var text string
	switch {
	case errors.Is(err, puzzle.ErrInvalidWord):
		text = "Not in word list"
	case errors.Is(err, puzzle.ErrRowIncomplete):
		text = "Not enough letters"
	case errors.Is(err, puzzle.ErrRowFull):
		return m, nil
	case errors.Is(err, puzzle.ErrRoundOver):
		text = "Round over. ctrl+n for a new word"
	case errors.Is(err, puzzle.ErrNotReady):
		text = "Still loading words..."
	case errors.Is(err, puzzle.ErrLoadFailed):
		text = "Word list failed to load. ctrl+n to retry"
	default:
		text = err.Error()
	}
	return m.setFlash(text, core.ColorYellow)
}

// setFlash shows text under the grid for flashDuration.
func (m Model) setFlash(text string, color core.Color) (tea.Model, tea.Cmd) {
	m.flashID++
	m.flash = status{text: text, color: color}
	return m, flashCmd(m.flashID)
}

func winMessage(attempts int) string {
	switch attempts {
	case 1:
		return "Genius!"
	case 2:
		return "Magnificent!"
	case 3:
		return "Impressive!"
	case 4:
		return "Splendid!"
	case 5:
		return "Great!"
	default:
		return "Phew!"
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showStats {
		return m.stats.View()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keyMapper.Keys()))

	boardH := core.Max(1, m.config.ScreenH-lipgloss.Height(helpView))
	m.screen.Resize(m.config.ScreenW, boardH)
	drawBoard(m.screen, m.engine.Snapshot(), m.flash)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(centerText(helpView, m.config.ScreenW))
	return b.String()
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back inside a session.
func (m Model) WantsBack() bool {
	return m.back
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width || strings.Contains(text, "\n") {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// Run starts the Bubble Tea program for a local game.
func Run(engine *puzzle.Engine, store *storage.Store, player string, cfg core.RuntimeConfig) error {
	model := NewModel(engine, store, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
