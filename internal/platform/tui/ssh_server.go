package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/dictionary"
	"github.com/vovakirdan/tui-wordle/internal/puzzle"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordle/host_key.
	HostKeyPath string

	// DBPath is the path to the statistics database.
	DBPath string

	// WordsDir optionally overrides the built-in word lists.
	WordsDir string

	// DefaultMode is the mode preselected for new sessions.
	DefaultMode config.Mode

	// ShowAnswer logs each session's target word at debug level.
	ShowAnswer bool

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.wordle/stats.db",
		DefaultMode: config.DefaultMode,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for remote play.
// Sessions share one word loader and one statistics store; each session
// owns its own engine.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	loader *dictionary.Loader
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wordle-ssh",
		})
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = config.DefaultMode
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open statistics database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		loader: dictionary.NewLoader(cfg.WordsDir, logger),
		logger: logger,
	}

	// Warm the cache so the first session does not wait
	for _, n := range config.Lengths() {
		srv.loader.Load(context.Background(), n)
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".wordle", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	engine, err := s.newEngine(sshSession.Context(), sshSession.User())
	if err != nil {
		s.logger.Error("cannot create engine", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	model := NewSessionModel(engine, s.store, sshSession.User(), cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newEngine builds a session engine. Pending loads stop with the session context.
func (s *SSHServer) newEngine(ctx context.Context, user string) (*puzzle.Engine, error) {
	var listener puzzle.Listener
	if s.store != nil {
		listener = storage.NewRecorder(s.store, user, s.logger)
	}

	return puzzle.New(s.loader, puzzle.Options{
		Context:    ctx,
		Mode:       s.config.DefaultMode,
		Seed:       time.Now().UnixNano(),
		Listener:   listener,
		Logger:     s.logger.With("user", user),
		ShowAnswer: s.config.ShowAnswer,
	})
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)

	if s.store != nil {
		s.store.Close()
	}

	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the session flow: mode picker -> puzzle -> mode picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	engine   *puzzle.Engine
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	menu     ModeModel
	game     *Model
	inGame   bool
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(engine *puzzle.Engine, store *storage.Store, username string, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		engine:   engine,
		store:    store,
		config:   cfg,
		username: username,
		menu:     NewModeModel(engine.Mode(), cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while picking a mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(ModeModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() || m.menu.WantsBack() {
		m.quitting = true
		return m, tea.Quit
	}

	// The picker quits its own program on selection; here that command is
	// dropped and the puzzle takes over.
	if mode, ok := m.menu.Selected(); ok {
		if err := m.engine.SetMode(mode); err != nil {
			m.menu = NewModeModel(m.engine.Mode(), m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}

		game := NewModel(m.engine, m.store, m.username, m.config)
		game.embedded = true
		m.game = &game
		m.inGame = true
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.WantsBack() {
		m.inGame = false
		m.game = nil
		m.menu = NewModeModel(m.engine.Mode(), m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.game != nil {
		return m.game.View()
	}

	return m.menu.View()
}
