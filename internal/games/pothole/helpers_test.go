package pothole

import (
	"testing"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// testRuntime maps to an 800 unit wide world.
func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultPotholeConfig())
	g.Reset(testRuntime(seed))
	return g
}

// startedGame returns a game already in the playing phase.
func startedGame(t *testing.T, seed int64, nick string) *Game {
	t.Helper()
	g := newTestGame(t, seed)
	g.Step(startInput(nick))
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing after start, got %s", g.Phase())
	}
	return g
}

func startInput(nick string) core.InputFrame {
	in := core.NewInputFrame()
	in.Start(nick)
	return in
}

func actionInput(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// crashGame drops the ball into a gap placed under it and steps once.
func crashGame(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	rs := &g.run
	rs.Gaps = []Gap{{X: rs.Ball.X - 30, Width: 60}}
	rs.Coins = nil
	res := g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over after falling into a gap, got %s", g.Phase())
	}
	return res
}
