package pothole

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// Effect tuning. Alpha runs from 255 down to 0.
const (
	JumpParticles    = 8
	LandParticles    = 5
	CoinParticles    = 15
	ParticleFade     = 6
	PopupFade        = 5
	PopupRise        = -1.5
	ShakeMagnitude   = 5
	ShakeTicks       = 15
	particleGravity  = 0.15 // Fraction of ball gravity applied to particles
	gapPopupColor    = core.ColorWhite
	coinEffectColor  = core.ColorBrightYellow
	jumpParticleTint = core.ColorWhite
	landParticleTint = core.ColorGreen
)

// Particle is a short-lived spark in world units.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Color  core.Color
}

// Popup is a floating score label.
type Popup struct {
	Text  string
	X, Y  float64
	VY    float64
	Alpha float64
	Color core.Color
}

// Effects holds the cosmetic layer: particles, score popups and screen shake.
// It only reads gameplay events, but it draws from the game's shared random
// source, so effects shift later gap and coin rolls.
type Effects struct {
	particles []Particle
	popups    []Popup
	gravity   float64
	rng       *rand.Rand

	shakeTicks     int
	shakeMagnitude float64
	offX, offY     float64 // Current shake offset in world units
}

// NewEffects creates an empty effects layer drawing randomness from rng.
func NewEffects(rng *rand.Rand, gravity float64) *Effects {
	return &Effects{
		particles: make([]Particle, 0, 32),
		popups:    make([]Popup, 0, 8),
		gravity:   gravity,
		rng:       rng,
	}
}

// Reset drops every live effect.
func (e *Effects) Reset() {
	e.particles = e.particles[:0]
	e.popups = e.popups[:0]
	e.shakeTicks = 0
	e.shakeMagnitude = 0
	e.offX, e.offY = 0, 0
}

// Consume turns gameplay events into effects.
func (e *Effects) Consume(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventJumped:
			e.burst(ev.X, ev.Y, JumpParticles, jumpParticleTint)
		case core.EventLanded:
			e.burst(ev.X, ev.Y, LandParticles, landParticleTint)
		case core.EventGapCleared:
			e.popup(fmt.Sprintf("+%d", ev.Value), ev.X, ev.Y, gapPopupColor)
		case core.EventCoinCollected:
			e.popup(fmt.Sprintf("+%d", ev.Value), ev.X, ev.Y, coinEffectColor)
			e.burst(ev.X, ev.Y, CoinParticles, coinEffectColor)
		case core.EventCrashed:
			e.shakeTicks = ShakeTicks
			e.shakeMagnitude = ShakeMagnitude
		}
	}
}

func (e *Effects) burst(x, y float64, count int, c core.Color) {
	for i := 0; i < count; i++ {
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    e.uniform(-2.5, 2.5),
			VY:    e.uniform(-3.5, 0.5),
			Alpha: 255,
			Color: c,
		})
	}
}

func (e *Effects) popup(text string, x, y float64, c core.Color) {
	e.popups = append(e.popups, Popup{
		Text:  text,
		X:     x,
		Y:     y,
		VY:    PopupRise,
		Alpha: 255,
		Color: c,
	})
}

// Update ages every effect by one tick. When moving is false, particles and
// popups fade in place.
func (e *Effects) Update(moving bool) {
	alive := e.particles[:0]
	for _, p := range e.particles {
		if moving {
			p.X += p.VX
			p.Y += p.VY
			p.VY += e.gravity * particleGravity
		}
		p.Alpha -= ParticleFade
		if p.Alpha > 0 {
			alive = append(alive, p)
		}
	}
	e.particles = alive

	shown := e.popups[:0]
	for _, p := range e.popups {
		if moving {
			p.Y += p.VY
		}
		p.Alpha -= PopupFade
		if p.Alpha > 0 {
			shown = append(shown, p)
		}
	}
	e.popups = shown

	if e.shakeTicks > 0 {
		e.shakeTicks--
		e.offX = e.uniform(-e.shakeMagnitude, e.shakeMagnitude)
		e.offY = e.uniform(-e.shakeMagnitude, e.shakeMagnitude)
	}
	if e.shakeTicks == 0 {
		e.shakeMagnitude = 0
		e.offX, e.offY = 0, 0
	}
}

// Particles returns the live particles.
func (e *Effects) Particles() []Particle {
	return e.particles
}

// Popups returns the live score popups.
func (e *Effects) Popups() []Popup {
	return e.popups
}

// Shake returns the current shake offset in world units and whether a shake
// is in progress.
func (e *Effects) Shake() (dx, dy float64, active bool) {
	return e.offX, e.offY, e.shakeTicks > 0
}

func (e *Effects) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
