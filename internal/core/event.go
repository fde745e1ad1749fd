package core

// EventKind identifies a gameplay event consumed by cosmetic layers
// (particles, popups, shake) and by the spectator feed.
type EventKind uint8

const (
	EventJumped        EventKind = iota + 1 // Ball left the ground
	EventLanded                             // Ball touched down after being airborne
	EventGapCleared                         // Ball passed a gap; Value holds the bonus
	EventCoinCollected                      // Coin picked up; Value holds the bonus
	EventCrashed                            // Ball fell into a gap; Value holds the final score
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	case EventGapCleared:
		return "gap_cleared"
	case EventCoinCollected:
		return "coin_collected"
	case EventCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation at a world position.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Value int
}
