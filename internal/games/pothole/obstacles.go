package pothole

import (
	"math/rand"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// Gap is a pothole: a stretch of platform with no ground.
type Gap struct {
	X      float64 // Leading (left) edge
	Width  float64
	Depth  float64 // Cosmetic; distance from the platform line to the bottom of the view
	Scored bool    // Clear bonus already awarded
}

// Span returns the horizontal extent of the gap.
func (g Gap) Span() core.Span {
	return core.SpanOf(g.X, g.Width)
}

// Trailing returns the x of the gap's right edge.
func (g Gap) Trailing() float64 {
	return g.X + g.Width
}

// GapField spawns, scrolls and retires gaps in a RunState.
type GapField struct {
	cfg         config.GapConfig
	difficulty  *config.DifficultyManager
	coins       *CoinPlacer
	rng         *rand.Rand
	lastSpacing float64 // Spacing sampled for the most recent gap
}

// NewGapField creates a generator sharing rng with the rest of the game.
func NewGapField(cfg config.GapConfig, diff *config.DifficultyManager, coins *CoinPlacer, rng *rand.Rand) *GapField {
	return &GapField{
		cfg:        cfg,
		difficulty: diff,
		coins:      coins,
		rng:        rng,
	}
}

// Seed clears the field and pre-spawns gaps until the cursor is well past
// the right edge, so generation never visibly catches up.
func (f *GapField) Seed(rs *RunState, v Viewport) {
	rs.Gaps = rs.Gaps[:0]
	rs.Coins = rs.Coins[:0]
	rs.Cursor = v.Width + f.uniform(f.cfg.SeedLeadMin, f.cfg.SeedLeadMax)
	for rs.Cursor < v.Width*f.cfg.SeedSpan {
		f.add(rs, v)
	}
}

// Spawn adds a gap when the frontier has scrolled close enough to the
// right edge. It returns true if a gap was added.
func (f *GapField) Spawn(rs *RunState, v Viewport) bool {
	if n := len(rs.Gaps); n > 0 {
		threshold := v.Width - f.uniform(f.difficulty.MinSpacing(rs.Speed), f.difficulty.MaxSpacing(rs.Speed))
		if rs.Gaps[n-1].X >= threshold {
			return false
		}
	}
	f.add(rs, v)
	return true
}

// add appends one gap after the frontier, at or beyond the right edge, and
// lets the coin placer decorate it.
func (f *GapField) add(rs *RunState, v Viewport) {
	width := f.uniform(f.cfg.MinWidth, f.cfg.MaxWidth)

	prev := rs.Cursor
	if n := len(rs.Gaps); n > 0 {
		prev = rs.Gaps[n-1].X
	}

	f.lastSpacing = f.uniform(f.difficulty.MinSpacing(rs.Speed), f.difficulty.MaxSpacing(rs.Speed))
	// New gaps never pop in on screen.
	x := max(prev+f.lastSpacing, rs.Cursor+f.cfg.MinAdvance, v.Width)

	gap := Gap{
		X:     x,
		Width: width,
		Depth: v.Height - v.PlatformY,
	}
	rs.Gaps = append(rs.Gaps, gap)
	rs.Cursor = x

	f.coins.Place(rs, gap, v.PlatformY)
}

// Advance scrolls every gap left by the current speed, awards the clear
// bonus for gaps the ball has passed and drops gaps far off-screen.
// Clear events are appended to events.
func (f *GapField) Advance(rs *RunState, platformY float64, events []core.Event) []core.Event {
	rs.Cursor -= rs.Speed

	for i := range rs.Gaps {
		g := &rs.Gaps[i]
		g.X -= rs.Speed
		if !g.Scored && g.Trailing() < rs.Ball.X {
			g.Scored = true
			rs.Score += float64(f.cfg.ClearBonus)
			events = append(events, core.Event{
				Kind:  core.EventGapCleared,
				X:     g.X + g.Width/2,
				Y:     platformY - 20,
				Value: f.cfg.ClearBonus,
			})
		}
	}

	// Retain gaps still near the screen
	valid := rs.Gaps[:0]
	for _, g := range rs.Gaps {
		if g.Trailing() >= -f.cfg.DespawnMargin {
			valid = append(valid, g)
		}
	}
	rs.Gaps = valid

	return events
}

// uniform returns a value in [lo, hi).
func (f *GapField) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
