// Package spectate streams game frames to read-only websocket viewers.
package spectate

import (
	"github.com/invopop/jsonschema"

	"github.com/vovakirdan/pothole-jumper/internal/core"
	"github.com/vovakirdan/pothole-jumper/internal/games/pothole"
)

// FrameType is the value of Frame.Type for game frames.
const FrameType = "frame"

// Frame is one tick of a session as seen by spectators. Coordinates are
// world units with y growing downwards.
type Frame struct {
	Type      string       `json:"type"`
	Session   string       `json:"session"`
	Tick      uint64       `json:"tick"`
	Phase     string       `json:"phase"`
	Nickname  string       `json:"nickname"`
	Score     int          `json:"score"`
	Speed     float64      `json:"speed"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	PlatformY float64      `json:"platformY"`
	Ball      BallFrame    `json:"ball"`
	Gaps      []GapFrame   `json:"gaps"`
	Coins     []CoinFrame  `json:"coins"`
	Events    []EventFrame `json:"events,omitempty"`
}

// BallFrame is the player ball.
type BallFrame struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Grounded bool    `json:"grounded"`
}

// GapFrame is a pothole.
type GapFrame struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Scored bool    `json:"scored"`
}

// CoinFrame is a coin at its current bobbing position.
type CoinFrame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// EventFrame is a gameplay event of the tick.
type EventFrame struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value int     `json:"value,omitempty"`
}

// NewFrame converts a game snapshot and the tick's events into a frame.
func NewFrame(session string, snap pothole.Snapshot, events []core.Event) Frame {
	f := Frame{
		Type:      FrameType,
		Session:   session,
		Tick:      snap.Tick,
		Phase:     snap.Phase.String(),
		Nickname:  snap.Nickname,
		Score:     snap.Display,
		Speed:     snap.Speed,
		Width:     snap.View.Width,
		Height:    snap.View.Height,
		PlatformY: snap.View.PlatformY,
		Ball: BallFrame{
			X:        snap.Ball.X,
			Y:        snap.Ball.Y,
			Radius:   snap.Ball.Radius,
			Grounded: snap.Ball.Grounded,
		},
		Gaps:  make([]GapFrame, 0, len(snap.Gaps)),
		Coins: make([]CoinFrame, 0, len(snap.Coins)),
	}

	for _, g := range snap.Gaps {
		f.Gaps = append(f.Gaps, GapFrame{X: g.X, Width: g.Width, Scored: g.Scored})
	}
	for _, c := range snap.Coins {
		f.Coins = append(f.Coins, CoinFrame{X: c.X, Y: c.BobY(), Radius: c.Radius})
	}
	for _, e := range events {
		f.Events = append(f.Events, EventFrame{Kind: e.Kind.String(), X: e.X, Y: e.Y, Value: e.Value})
	}

	return f
}

// Schema returns the JSON schema of Frame.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Frame))
	schema.Title = "Pothole Jumper spectator frame"
	schema.Description = "One simulation tick broadcast to websocket spectators"
	return schema
}
