package pothole

// Phase is the state machine tag of a game session.
type Phase uint8

const (
	PhaseStart    Phase = iota // Start screen, waiting for a nickname
	PhasePlaying               // Simulation running
	PhasePaused                // Simulation frozen, effects fade in place
	PhaseGameOver              // Run ended, final score shown
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is an event that may move the state machine.
type Trigger uint8

const (
	TriggerStart  Trigger = iota + 1 // Player submitted a nickname
	TriggerPause                     // Pause toggle
	TriggerCrash                     // Ball fell into a gap
	TriggerReplay                    // Player asked for another run
)

// transitions lists every legal move. Anything missing is a no-op.
var transitions = map[Phase]map[Trigger]Phase{
	PhaseStart: {
		TriggerStart: PhasePlaying,
	},
	PhasePlaying: {
		TriggerPause: PhasePaused,
		TriggerCrash: PhaseGameOver,
	},
	PhasePaused: {
		TriggerPause: PhasePlaying,
	},
	PhaseGameOver: {
		TriggerReplay: PhaseStart,
	},
}

// Transition returns the phase reached from p on t and whether the move is legal.
// Illegal moves return p unchanged.
func Transition(p Phase, t Trigger) (Phase, bool) {
	next, ok := transitions[p][t]
	if !ok {
		return p, false
	}
	return next, true
}
