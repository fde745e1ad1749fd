package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space, Up, W
	ActionPause         // P, Esc - toggles pause
	ActionStart         // Enter on the start screen; carries the nickname
	ActionReplay        // R after game over
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionReplay:
		return "Replay"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Input events are queued here and drained at the start of the next tick.
type InputFrame struct {
	Actions  map[Action]bool
	Nickname string // Payload of ActionStart
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Start queues a start request with the given nickname.
func (f *InputFrame) Start(nickname string) {
	f.Set(ActionStart)
	f.Nickname = nickname
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was queued.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Nickname = ""
}

// SanitizeNickname trims the name and caps it at maxLen runes.
// An empty result is replaced by fallback.
func SanitizeNickname(name, fallback string, maxLen int) string {
	name = strings.TrimSpace(name)
	if maxLen > 0 {
		if r := []rune(name); len(r) > maxLen {
			name = strings.TrimSpace(string(r[:maxLen]))
		}
	}
	if name == "" {
		return fallback
	}
	return name
}
