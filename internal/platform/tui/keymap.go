package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pothole-jumper/internal/core"
	"github.com/vovakirdan/pothole-jumper/internal/games/pothole"
)

// KeyMap defines the key bindings of a Pothole Jumper session.
type KeyMap struct {
	Jump      key.Binding
	Pause     key.Binding
	Start     key.Binding
	Replay    key.Binding
	Board     key.Binding
	Quit      key.Binding
	Interrupt key.Binding // Quit while the nickname field owns the keyboard
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Board: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Jump, k.Pause, k.Replay, k.Board, k.Interrupt, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.Pause, k.Replay},
		{k.Board, k.Interrupt, k.Quit},
	}
}

// ForPhase enables only the bindings that mean something in phase p, so the
// help line follows the game.
func (k KeyMap) ForPhase(p pothole.Phase) KeyMap {
	typing := p == pothole.PhaseStart
	k.Start.SetEnabled(typing)
	k.Interrupt.SetEnabled(typing)
	k.Quit.SetEnabled(!typing)
	k.Jump.SetEnabled(p == pothole.PhasePlaying)
	k.Pause.SetEnabled(p == pothole.PhasePlaying || p == pothole.PhasePaused)
	k.Replay.SetEnabled(p == pothole.PhaseGameOver)
	return k
}

// MapKeyToFrame queues the action bound to msg for the given phase.
// The start action is left to the caller since it carries the nickname.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, p pothole.Phase, frame *core.InputFrame) bool {
	k = k.ForPhase(p)

	switch {
	case key.Matches(msg, k.Interrupt), key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Jump):
		frame.Set(core.ActionJump)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Replay):
		frame.Set(core.ActionReplay)
	}
	return false
}
