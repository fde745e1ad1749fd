package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
	"github.com/vovakirdan/pothole-jumper/internal/games/pothole"
	"github.com/vovakirdan/pothole-jumper/internal/spectate"
	"github.com/vovakirdan/pothole-jumper/internal/storage"
)

// footerRows is the space below the playfield for the nickname field or help.
const footerRows = 1

// Options configures a game session.
type Options struct {
	Game     config.PotholeConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store // Session leaderboard, optional
	Hub      *spectate.Hub  // Spectator feed, optional
	Logger   *log.Logger    // Defaults to discarding output
	Session  string         // Identifies this session in spectator frames
	Nickname string         // Prefills the nickname field
}

// Model is the Bubble Tea model for a Pothole Jumper session.
type Model struct {
	game       *pothole.Game
	screen     *core.Screen
	store      *storage.Store
	hub        *spectate.Hub
	logger     *log.Logger
	session    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	nick       textinput.Model
	prefill    string
	board      leaderboard
	showBoard  bool
	runSaved   bool // Whether the finished run reached the leaderboard
	quitting   bool
}

// NewModel creates a session model. The game is reset in Init.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Game.Player
	ti := textinput.New()
	ti.Prompt = "Nickname: "
	ti.Placeholder = player.DefaultNickname
	ti.CharLimit = player.MaxNicknameLen
	ti.Width = player.MaxNicknameLen + 1
	prefill := core.SanitizeNickname(opts.Nickname, "", player.MaxNicknameLen)
	ti.SetValue(prefill)
	ti.Focus()

	boardH := playfieldHeight(cfg.ScreenH)
	return Model{
		game:       pothole.New(opts.Game),
		screen:     core.NewScreen(cfg.ScreenW, boardH),
		store:      opts.Store,
		hub:        opts.Hub,
		logger:     logger,
		session:    opts.Session,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		nick:       ti,
		prefill:    prefill,
		board:      newLeaderboard(cfg.ScreenW, boardH),
	}
}

// playfieldHeight is the screen height left after the footer.
func playfieldHeight(rows int) int {
	return max(rows-footerRows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = m.screen.Height()
	m.game.Reset(rc)
	m.publish(nil)

	return tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.game.Phase() == pothole.PhaseStart {
		var cmd tea.Cmd
		m.nick, cmd = m.nick.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input. On the start screen every key that is
// not bound goes to the nickname field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.game.Phase()

	if key.Matches(msg, m.keys.Board) {
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board.refresh(m.store, m.game.Nickname())
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, phase, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if phase != pothole.PhaseStart {
		return m, nil
	}
	if key.Matches(msg, m.keys.ForPhase(phase).Start) {
		m.inputFrame.Start(m.nick.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.nick, cmd = m.nick.Update(msg)
	return m, cmd
}

// handleResize processes window resize events. The run survives the resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	boardH := playfieldHeight(msg.Height)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardH)
	m.game.Resize(msg.Width, boardH)
	m.board.resize(msg.Width, boardH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.game.Phase()
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.publish(result.Events)

	var cmds []tea.Cmd
	after := m.game.Phase()
	switch {
	case before == pothole.PhaseStart && after == pothole.PhasePlaying:
		m.nick.Blur()
		m.showBoard = false
		m.logger.Debug("run started", "nick", result.State.Nickname, "session", m.session)

	case after == pothole.PhaseStart && before != pothole.PhaseStart:
		m.runSaved = false
		m.nick.SetValue(m.prefill)
		cmds = append(cmds, m.nick.Focus())
	}

	if result.State.GameOver && !m.runSaved {
		m.saveRun(result.State)
		m.runSaved = true
	}

	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveRun records a finished run on the session leaderboard.
func (m *Model) saveRun(state core.GameState) {
	ticks := m.game.Snapshot().Tick
	m.logger.Info("run finished",
		"nick", state.Nickname,
		"score", state.Score,
		"ticks", ticks,
		"session", m.session,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(state.Nickname, state.Score, ticks); err != nil {
		m.logger.Warn("cannot save run", "nick", state.Nickname, "error", err)
		return
	}
	m.board.refresh(m.store, state.Nickname)
}

// publish sends the current frame to spectators. Failures never stop the game.
func (m Model) publish(events []core.Event) {
	if m.hub == nil {
		return
	}
	if err := m.hub.Publish(spectate.NewFrame(m.session, m.game.Snapshot(), events)); err != nil {
		m.logger.Warn("cannot publish frame", "session", m.session, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showBoard {
		body = m.board.view()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}
	return body + "\n" + m.footer()
}

// footer is the nickname field on the start screen and key help elsewhere.
func (m Model) footer() string {
	phase := m.game.Phase()
	if phase == pothole.PhaseStart && !m.showBoard {
		return m.nick.View()
	}
	return footerStyle.Render(m.help.View(m.keys.ForPhase(phase)))
}

// Game exposes the running game.
func (m Model) Game() *pothole.Game {
	return m.game
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
