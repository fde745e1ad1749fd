package pothole

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Start("Tester")
		case i%23 == 0:
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() (Snapshot, []core.EventKind) {
		g := newTestGame(t, 12345)
		var kinds []core.EventKind
		for _, in := range inputs {
			res := g.Step(in)
			for _, e := range res.Events {
				kinds = append(kinds, e.Kind)
			}
		}
		return g.Snapshot(), kinds
	}

	s1, e1 := run()
	s2, e2 := run()

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed: snapshots differ\n%+v\n%+v", s1, s2)
	}
	if !reflect.DeepEqual(e1, e2) {
		t.Errorf("Determinism failed: event streams differ")
	}
}

func TestGameResetStartsOnStartScreen(t *testing.T) {
	g := newTestGame(t, 42)

	if g.Phase() != PhaseStart {
		t.Errorf("phase = %s, want start", g.Phase())
	}
	if g.Nickname() != "Player" {
		t.Errorf("nickname = %q, want Player", g.Nickname())
	}
	if g.run.Speed != 4.5 || g.run.Score != 0 {
		t.Errorf("unexpected run counters speed=%v score=%v", g.run.Speed, g.run.Score)
	}
	if g.view.Width != 800 || g.view.PlatformY != 390 {
		t.Errorf("unexpected viewport %+v", g.view)
	}
	if g.run.Ball.X != 200 || !g.run.Ball.Grounded {
		t.Errorf("unexpected ball %+v", g.run.Ball)
	}
	if n := len(g.run.Gaps); n < 3 || n > 5 {
		t.Errorf("%d seeded gaps, want 3..5", n)
	}
}

func TestStartScreenDoesNotSimulate(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.Snapshot()

	for i := 0; i < 30; i++ {
		g.Step(actionInput(core.ActionJump))
		g.Step(actionInput(core.ActionPause))
		g.Step(actionInput(core.ActionReplay))
	}

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("start screen state changed without a start action")
	}
}

func TestStartCapturesNickname(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice", "Alice"},
		{"  Bob  ", "Bob"},
		{"", "Player"},
		{"   ", "Player"},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop"},
	}

	for _, tt := range tests {
		g := startedGame(t, 1, tt.input)
		if g.Nickname() != tt.want {
			t.Errorf("start(%q): nickname = %q, want %q", tt.input, g.Nickname(), tt.want)
		}
		if g.State().Nickname != tt.want {
			t.Errorf("start(%q): state nickname = %q", tt.input, g.State().Nickname)
		}
	}
}

func TestStartIgnoredOutsideStartScreen(t *testing.T) {
	g := startedGame(t, 1, "Alice")
	g.Step(startInput("Mallory"))
	if g.Nickname() != "Alice" {
		t.Errorf("nickname changed mid-run to %q", g.Nickname())
	}
}

func TestJumpEmitsEvent(t *testing.T) {
	g := startedGame(t, 1, "")

	res := g.Step(actionInput(core.ActionJump))
	if countEvents(res.Events, core.EventJumped) != 1 {
		t.Fatalf("expected a jump event, got %v", res.Events)
	}
	if g.run.Ball.Grounded || g.run.Ball.VY >= 0 {
		t.Errorf("ball should be rising: %+v", g.run.Ball)
	}

	// A second request mid-air is ignored.
	vy := g.run.Ball.VY
	res = g.Step(actionInput(core.ActionJump))
	if countEvents(res.Events, core.EventJumped) != 0 {
		t.Error("airborne jump emitted an event")
	}
	if g.run.Ball.VY != vy+0.6 {
		t.Errorf("airborne jump changed velocity: %v -> %v", vy, g.run.Ball.VY)
	}
}

func TestSpeedMonotonicUntilCrash(t *testing.T) {
	g := startedGame(t, 9, "")

	prev := g.run.Speed
	for i := 0; i < 5000 && g.Phase() == PhasePlaying; i++ {
		g.Step(core.NewInputFrame())
		if g.run.Speed < prev {
			t.Fatalf("tick %d: speed decreased %v -> %v", i, prev, g.run.Speed)
		}
		prev = g.run.Speed
	}

	if g.Phase() != PhaseGameOver {
		t.Fatal("a ball that never jumps must eventually fall into a gap")
	}
	if prev <= 4.5 {
		t.Errorf("speed never ramped: %v", prev)
	}

	// Speed is frozen after the crash.
	g.Step(core.NewInputFrame())
	if g.run.Speed != prev {
		t.Errorf("speed changed after game over")
	}
}

func TestPassiveScoreAndTick(t *testing.T) {
	g := startedGame(t, 1, "")
	g.run.Gaps = nil
	g.run.Coins = nil

	tick, score, speed := g.run.Tick, g.run.Score, g.run.Speed
	g.Step(core.NewInputFrame())

	if g.run.Tick != tick+1 {
		t.Errorf("tick = %d, want %d", g.run.Tick, tick+1)
	}
	if d := g.run.Score - score; math.Abs(d-speed*0.01) > 1e-12 {
		t.Errorf("passive score per tick = %v, want %v", d, speed*0.01)
	}
	if d := g.run.Speed - speed; math.Abs(d-0.001) > 1e-12 {
		t.Errorf("speed ramp per tick = %v, want 0.001", d)
	}
}

func TestFatalCollisionTransitionsOnce(t *testing.T) {
	g := startedGame(t, 1, "Alice")
	g.run.Score = 12.7

	res := crashGame(t, g)

	if countEvents(res.Events, core.EventCrashed) != 1 {
		t.Fatalf("expected one crash event, got %v", res.Events)
	}
	wantFinal := int(math.Floor(12.7 + 4.5*0.01))
	if g.FinalScore() != wantFinal {
		t.Errorf("final score = %d, want %d", g.FinalScore(), wantFinal)
	}
	if res.State.Score != wantFinal || !res.State.GameOver {
		t.Errorf("unexpected state %+v", res.State)
	}

	b := g.run.Ball
	if b.Y != g.view.PlatformY+b.Radius || b.VY != 0 {
		t.Errorf("ball not sunk into the gap: %+v", b)
	}

	// Further ticks neither crash again nor move anything.
	snap := g.Snapshot()
	for i := 0; i < 20; i++ {
		res = g.Step(core.NewInputFrame())
		if len(res.Events) != 0 {
			t.Fatalf("events after game over: %v", res.Events)
		}
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Error("state changed after game over")
	}
	if g.FinalScore() != wantFinal {
		t.Error("final score changed after game over")
	}
}

func TestCrashSkipsCoinCollection(t *testing.T) {
	g := startedGame(t, 1, "")
	b := g.run.Ball
	g.run.Gaps = []Gap{{X: b.X - 30, Width: 60}}
	g.run.Coins = []Coin{{X: b.X + 4.5, Y: b.Y, Radius: 10}}

	res := g.Step(core.NewInputFrame())
	if g.Phase() != PhaseGameOver {
		t.Fatal("expected crash")
	}
	if countEvents(res.Events, core.EventCoinCollected) != 0 {
		t.Error("coin collected on the crash tick")
	}
}

func TestCoinCollectedOnceInGame(t *testing.T) {
	g := startedGame(t, 1, "")
	b := g.run.Ball
	// A distant gap keeps the generator from spawning a gap and coin this tick.
	g.run.Gaps = []Gap{{X: g.view.Width + 500, Width: 40}}
	g.run.Coins = []Coin{{X: b.X + 4.5, Y: b.Y - 5, Radius: 10}}

	score, speed := g.run.Score, g.run.Speed
	res := g.Step(core.NewInputFrame())
	if countEvents(res.Events, core.EventCoinCollected) != 1 {
		t.Fatalf("expected a coin event, got %v", res.Events)
	}
	if d := g.run.Score - score - speed*0.01; math.Abs(d-25) > 1e-9 {
		t.Errorf("coin bonus = %v, want 25", d)
	}
	if len(g.run.Coins) != 0 {
		t.Errorf("coin not removed: %+v", g.run.Coins)
	}

	score = g.run.Score
	res = g.Step(core.NewInputFrame())
	if countEvents(res.Events, core.EventCoinCollected) != 0 || g.run.Score-score > 1 {
		t.Error("coin awarded twice")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := startedGame(t, 3, "")
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	res := g.Step(actionInput(core.ActionPause))
	if g.Phase() != PhasePaused || !res.State.Paused {
		t.Fatalf("expected paused, got %s", g.Phase())
	}

	snap := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(actionInput(core.ActionJump))
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Error("simulation advanced while paused")
	}

	g.Step(actionInput(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing after resume, got %s", g.Phase())
	}
	if g.run.Tick != snap.Tick+1 {
		t.Errorf("tick = %d, want %d", g.run.Tick, snap.Tick+1)
	}
}

func TestReplayResetsRun(t *testing.T) {
	g := startedGame(t, 5, "Alice")
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	crashGame(t, g)

	initialBall := newBall(g.cfg.Ball, g.view)

	res := g.Step(actionInput(core.ActionReplay))
	if g.Phase() != PhaseStart || res.State.Phase != "start" {
		t.Fatalf("expected start screen after replay, got %s", g.Phase())
	}
	if g.run.Score != 0 || g.FinalScore() != 0 || res.State.Score != 0 {
		t.Errorf("score not reset: run=%v final=%d", g.run.Score, g.FinalScore())
	}
	if g.run.Speed != 4.5 {
		t.Errorf("speed = %v, want base 4.5", g.run.Speed)
	}
	if g.run.Ball != initialBall {
		t.Errorf("ball = %+v, want %+v", g.run.Ball, initialBall)
	}
	if n := len(g.run.Gaps); n < 3 || n > 5 {
		t.Errorf("%d gaps after reseed, want 3..5", n)
	}
	if g.run.Gaps[0].X < g.view.Width {
		t.Error("reseeded field starts on screen")
	}
	if g.Nickname() != "Player" {
		t.Errorf("nickname = %q, want reset to Player", g.Nickname())
	}
	if len(g.fx.Particles()) != 0 || len(g.fx.Popups()) != 0 {
		t.Error("effects survived replay")
	}

	g.Step(startInput("Bob"))
	if g.Phase() != PhasePlaying || g.Nickname() != "Bob" {
		t.Errorf("second run did not start: %s %q", g.Phase(), g.Nickname())
	}
	// The start frame already runs the first tick.
	if g.run.Score > 1 || g.run.Tick != 1 {
		t.Errorf("second run starts dirty: score=%v tick=%d", g.run.Score, g.run.Tick)
	}
}

func TestResizeOnStartScreen(t *testing.T) {
	g := newTestGame(t, 1)

	g.Resize(40, 24)
	if g.view.Width != 400 {
		t.Fatalf("width = %v, want 400", g.view.Width)
	}
	if g.run.Ball.X != 100 {
		t.Errorf("ball x = %v, want 100", g.run.Ball.X)
	}
	if g.run.Gaps[0].X < 400 {
		t.Errorf("first gap %.1f on screen after resize", g.run.Gaps[0].X)
	}

	g.Resize(300, 60)
	if g.view.Width != 800 {
		t.Errorf("width = %v, want capped at 800", g.view.Width)
	}
}

func TestResizeDuringRunKeepsBall(t *testing.T) {
	g := startedGame(t, 1, "")
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	ball := g.run.Ball
	gaps := len(g.run.Gaps)

	g.Resize(60, 24)
	if g.view.Width != 600 {
		t.Fatalf("width = %v, want 600", g.view.Width)
	}
	if g.run.Ball.X != ball.X {
		t.Errorf("ball moved from %v to %v", ball.X, g.run.Ball.X)
	}
	if len(g.run.Gaps) != gaps {
		t.Error("resize during a run reseeded the field")
	}
	if g.Phase() != PhasePlaying {
		t.Error("resize changed the phase")
	}
}

func TestResizeDuringRunKeepsBallOnScreen(t *testing.T) {
	g := startedGame(t, 1, "")
	g.run.Gaps = []Gap{{X: g.view.Width + 500, Width: 40}}
	g.Step(core.NewInputFrame())

	g.Resize(15, 24)
	if g.view.Width != 150 {
		t.Fatalf("width = %v, want 150", g.view.Width)
	}
	b := g.run.Ball
	if b.X != 150*g.cfg.Ball.XFraction {
		t.Errorf("ball x = %v, want %v", b.X, 150*g.cfg.Ball.XFraction)
	}
	if b.X+b.Radius > g.view.Width {
		t.Errorf("ball at %v left the %v wide viewport", b.X, g.view.Width)
	}
	if g.Phase() != PhasePlaying {
		t.Error("resize changed the phase")
	}
}

func TestCustomConfig(t *testing.T) {
	cfg := config.DefaultPotholeConfig()
	cfg.Player.DefaultNickname = "Anon"
	config.ApplyPreset(&cfg, config.DifficultyFixed)

	g := New(cfg)
	g.Reset(testRuntime(1))
	g.Step(startInput(""))
	g.run.Gaps = nil

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Nickname() != "Anon" {
		t.Errorf("nickname = %q, want Anon", g.Nickname())
	}
	if g.run.Speed != cfg.Speed.Base {
		t.Errorf("fixed preset ramped speed to %v", g.run.Speed)
	}
}
