package pothole

import (
	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// Ball is the player. X stays fixed for the whole run; only Y moves.
type Ball struct {
	X, Y     float64 // Centre in world units
	VY       float64 // Vertical velocity, positive is down
	Radius   float64
	Grounded bool
}

// Top returns the y of the ball's top edge.
func (b Ball) Top() float64 {
	return b.Y - b.Radius
}

// Bottom returns the y of the ball's bottom edge.
func (b Ball) Bottom() float64 {
	return b.Y + b.Radius
}

// Circle returns the collider of the ball.
func (b Ball) Circle() core.Circle {
	return core.Circle{Center: core.Vec{X: b.X, Y: b.Y}, R: b.Radius}
}

// newBall places a grounded ball on the platform.
func newBall(cfg config.BallConfig, v Viewport) Ball {
	return Ball{
		X:        v.Width * cfg.XFraction,
		Y:        v.PlatformY - cfg.Radius,
		Radius:   cfg.Radius,
		Grounded: true,
	}
}

// Kinematics moves the ball under gravity and resolves ground contact.
type Kinematics struct {
	cfg config.PhysicsConfig
}

// NewKinematics creates the kinematics engine.
func NewKinematics(cfg config.PhysicsConfig) Kinematics {
	return Kinematics{cfg: cfg}
}

// Jump launches a grounded ball and reports whether it did.
// Requests while airborne are dropped.
func (k Kinematics) Jump(b *Ball) bool {
	if !b.Grounded {
		return false
	}
	b.VY = -k.cfg.JumpForce
	b.Grounded = false
	return true
}

// Integrate advances the ball one tick. It returns true on the tick the ball
// touches down after being airborne.
func (k Kinematics) Integrate(b *Ball, gaps []Gap, platformY float64) bool {
	wasGrounded := b.Grounded

	b.VY += k.cfg.Gravity
	b.Y += b.VY
	b.Grounded = false

	landed := false
	if b.Bottom() >= platformY && !overGap(b.X, gaps) {
		b.Y = platformY - b.Radius
		b.VY = 0
		b.Grounded = true
		landed = !wasGrounded
	}

	// Ceiling bounce
	if b.Top() < 0 {
		b.Y = b.Radius
		b.VY *= -k.cfg.CeilingDamping
	}

	return landed
}

// overGap reports whether x lies strictly inside any gap.
func overGap(x float64, gaps []Gap) bool {
	for _, g := range gaps {
		if g.Span().ContainsOpen(x) {
			return true
		}
	}
	return false
}
