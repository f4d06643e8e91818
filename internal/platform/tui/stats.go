package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// Statistics layout constants
const (
	barWidth      = 24 // Width of the longest distribution bar
	statBlockW    = 12 // Width of one summary block
	distributionW = 8  // Width of the guesses column
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	modes      []config.Mode
	modeCursor int
	store      *storage.Store
	player     string // Empty aggregates every player
	stats      *storage.Stats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       StatsKeyMap
	width      int
	height     int
	embedded   bool // Opened from the puzzle screen; Back returns there
	quitting   bool
	goingBack  bool
}

// NewStatsModel creates a statistics model starting at mode.
func NewStatsModel(store *storage.Store, player string, mode config.Mode, width, height int) StatsModel {
	modes := config.AllModes()
	cursor := 0
	for i, m := range modes {
		if m == mode {
			cursor = i
		}
	}

	h := help.New()
	h.Width = width

	m := StatsModel{
		modes:      modes,
		modeCursor: cursor,
		store:      store,
		player:     player,
		keys:       DefaultStatsKeyMap(),
		help:       h,
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	m.loadStats()
	return m
}

// createTable creates the guess distribution table.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Guesses", Width: distributionW},
		{Title: "Wins", Width: 6},
		{Title: "", Width: barWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(config.MustLookup(config.ModeHard).MaxAttempts+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// mode returns the mode currently shown.
func (m StatsModel) mode() config.Mode {
	return m.modes[m.modeCursor]
}

// loadStats loads statistics for the current mode.
func (m *StatsModel) loadStats() {
	m.stats, m.loadErr = nil, nil
	if m.store != nil {
		m.stats, m.loadErr = m.store.Stats(string(m.mode()), m.player)
	}
	m.updateTableRows()
}

// updateTableRows fills the distribution table from the loaded stats.
func (m *StatsModel) updateTableRows() {
	attempts := config.MustLookup(m.mode()).MaxAttempts
	counts := make([]int, attempts)
	if m.stats != nil {
		copy(counts, m.stats.Distribution)
	}

	best := 0
	for _, c := range counts {
		best = max(best, c)
	}

	rows := make([]table.Row, len(counts))
	for i, c := range counts {
		bar := ""
		if best > 0 && c > 0 {
			bar = strings.Repeat("█", max(1, c*barWidth/best))
		}
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", c), bar}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.loadStats()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor--
			if m.modeCursor < 0 {
				m.modeCursor = len(m.modes) - 1
			}
			m.loadStats()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if (m.quitting || m.goingBack) && !m.embedded {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("STATISTICS - %s", m.mode().Title())
	if m.player != "" {
		title += " - " + m.player
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var body string
	switch {
	case m.loadErr != nil:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Could not load statistics:\n" + m.loadErr.Error())
	case m.stats == nil || m.stats.Played == 0:
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No rounds recorded yet.\nFinish a round to start your streak!")
	default:
		body = lipgloss.JoinVertical(lipgloss.Center, m.renderSummary(), "", m.table.View())
	}

	for _, line := range strings.Split(boxStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTabs renders the mode tabs with the current one highlighted.
func (m StatsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(mode.Title())
		} else {
			tabs[i] = tabStyle.Render(" " + mode.Title() + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderSummary renders the played / win% / streak blocks.
func (m StatsModel) renderSummary() string {
	numStyle := lipgloss.NewStyle().Bold(true).Width(statBlockW).Align(lipgloss.Center)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(statBlockW).Align(lipgloss.Center)

	block := func(value int, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			numStyle.Render(fmt.Sprintf("%d", value)),
			labelStyle.Render(label),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		block(m.stats.Played, "Played"),
		block(m.stats.WinPercent(), "Win %"),
		block(m.stats.CurrentStreak, "Streak"),
		block(m.stats.MaxStreak, "Max Streak"),
	)
}

// IsGoingBack returns true if user wants to leave the statistics screen.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen on its own.
func RunStats(store *storage.Store, player string, mode config.Mode, width, height int) error {
	model := NewStatsModel(store, player, mode, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
