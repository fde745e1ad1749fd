// Package pothole implements Pothole Jumper, an endless runner where a ball
// on a scrolling platform jumps over potholes and collects coins.
package pothole

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// Viewport is the playfield geometry in world units.
type Viewport struct {
	Width     float64
	Height    float64
	PlatformY float64 // y of the platform line
}

// RunState is everything a single run owns. It is rebuilt on every new run.
type RunState struct {
	Ball   Ball
	Gaps   []Gap  // Ordered by x, oldest first
	Coins  []Coin // Ordered by spawn time
	Score  float64
	Speed  float64 // Scroll speed in world units per tick
	Cursor float64 // Leading edge of the most recently placed gap
	Tick   uint64
}

// Game implements the Pothole Jumper game logic.
type Game struct {
	cfg        config.PotholeConfig
	runtime    core.RuntimeConfig
	view       Viewport
	difficulty *config.DifficultyManager
	kinematics Kinematics
	gaps       *GapField
	coins      *CoinPlacer
	fx         *Effects
	rng        *rand.Rand

	phase      Phase
	run        RunState
	nickname   string
	finalScore int
	events     []core.Event // Events of the current tick
}

// New creates a game using cfg. Call Reset before stepping.
func New(cfg config.PotholeConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes the game on the start screen with a freshly seeded field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = g.viewportFor(runtime.ScreenW)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg)
	g.kinematics = NewKinematics(g.cfg.Physics)
	g.coins = NewCoinPlacer(g.cfg.Coins, g.cfg.Ball.Radius, g.rng)
	g.gaps = NewGapField(g.cfg.Gaps, g.difficulty, g.coins, g.rng)
	g.fx = NewEffects(g.rng, g.cfg.Physics.Gravity)

	g.phase = PhaseStart
	g.nickname = g.cfg.Player.DefaultNickname
	g.newRun()
}

// newRun restores every run counter and reseeds the gap field.
func (g *Game) newRun() {
	g.run = RunState{
		Ball:  newBall(g.cfg.Ball, g.view),
		Gaps:  g.run.Gaps[:0],
		Coins: g.run.Coins[:0],
		Speed: g.difficulty.BaseSpeed(),
	}
	g.finalScore = 0
	g.gaps.Seed(&g.run, g.view)
}

// viewportFor maps a terminal width in columns to world units.
func (g *Game) viewportFor(cols int) Viewport {
	width := g.cfg.Viewport.MaxWidth
	if cols > 0 {
		width = math.Min(float64(cols)*g.cfg.Viewport.UnitsPerColumn, width)
	}
	return Viewport{
		Width:     width,
		Height:    g.cfg.Viewport.Height,
		PlatformY: g.cfg.Viewport.Height - g.cfg.Viewport.PlatformOffset,
	}
}

// Resize adapts the game to a new terminal size. On the start screen the
// run is rebuilt for the new width; during a run the ball keeps its x unless
// it would leave the narrower viewport, and a grounded ball is re-seated on
// the platform.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows

	view := g.viewportFor(cols)
	if view == g.view {
		return
	}
	g.view = view

	if g.phase == PhaseStart {
		g.newRun()
		return
	}
	b := &g.run.Ball
	if b.X+b.Radius > g.view.Width {
		b.X = g.view.Width * g.cfg.Ball.XFraction
	}
	if b.Grounded {
		b.Y = g.view.PlatformY - b.Radius
	}
}

// Step advances the game by one tick. Start, replay and pause requests are
// applied first; a jump is applied right before the simulation moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionReplay) {
		g.replay()
	}
	if in.Has(core.ActionStart) {
		g.start(in.Nickname)
	}
	if in.Has(core.ActionPause) {
		g.phase, _ = Transition(g.phase, TriggerPause)
	}

	if g.phase == PhasePlaying {
		if in.Has(core.ActionJump) && g.kinematics.Jump(&g.run.Ball) {
			b := g.run.Ball
			g.emit(core.Event{Kind: core.EventJumped, X: b.X, Y: b.Bottom()})
		}
		g.tick()
	}

	g.fx.Consume(g.events)
	g.fx.Update(g.phase == PhasePlaying)

	return core.StepResult{State: g.State(), Events: g.events}
}

// tick runs one simulation step while playing.
func (g *Game) tick() {
	rs := &g.run
	platformY := g.view.PlatformY
	rs.Tick++

	g.events = g.gaps.Advance(rs, platformY, g.events)
	g.coins.Advance(rs)

	if g.kinematics.Integrate(&rs.Ball, rs.Gaps, platformY) {
		g.emit(core.Event{Kind: core.EventLanded, X: rs.Ball.X, Y: platformY})
	}

	rs.Score += g.difficulty.PassiveScore(rs.Speed)
	rs.Speed = g.difficulty.NextSpeed(rs.Speed)

	if FatalGap(rs.Ball, rs.Gaps, platformY, g.cfg.Gaps.FatalTolerance) >= 0 {
		g.crash()
	} else {
		g.events = CollectCoins(rs, g.cfg.Coins.Bonus, g.events)
	}

	g.gaps.Spawn(rs, g.view)
}

// start leaves the start screen with the given nickname.
func (g *Game) start(nickname string) {
	next, ok := Transition(g.phase, TriggerStart)
	if !ok {
		return
	}
	g.phase = next
	g.nickname = core.SanitizeNickname(nickname, g.cfg.Player.DefaultNickname, g.cfg.Player.MaxNicknameLen)
}

// crash ends the run and sinks the ball into the gap.
func (g *Game) crash() {
	next, ok := Transition(g.phase, TriggerCrash)
	if !ok {
		return
	}
	g.phase = next
	g.finalScore = int(math.Floor(g.run.Score))

	b := &g.run.Ball
	b.Y = g.view.PlatformY + b.Radius
	b.VY = 0
	b.Grounded = false

	g.emit(core.Event{Kind: core.EventCrashed, X: b.X, Y: b.Y, Value: g.finalScore})
}

// replay returns to the start screen with a fresh run.
func (g *Game) replay() {
	next, ok := Transition(g.phase, TriggerReplay)
	if !ok {
		return
	}
	g.phase = next
	g.nickname = g.cfg.Player.DefaultNickname
	g.fx.Reset()
	g.newRun()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Nickname returns the name captured at run start.
func (g *Game) Nickname() string {
	return g.nickname
}

// FinalScore returns the floored score captured at the crash, or 0.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// displayScore is the floored live score during a run, the final score otherwise.
func (g *Game) displayScore() int {
	if g.phase == PhasePlaying || g.phase == PhasePaused {
		return int(math.Floor(g.run.Score))
	}
	return g.finalScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase.String(),
		Score:    g.displayScore(),
		Nickname: g.nickname,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}
