package pothole

import (
	"github.com/vovakirdan/pothole-jumper/internal/core"
)

// FatalGap returns the index of the first gap the ball is falling into, or -1.
// A fall counts while the ball's bottom edge is below the platform line but
// less than tolerance below it, so a fall already resolved is not re-caught.
func FatalGap(b Ball, gaps []Gap, platformY, tolerance float64) int {
	bottom := b.Bottom()
	if bottom <= platformY || bottom >= platformY+tolerance {
		return -1
	}
	for i, g := range gaps {
		if g.Span().ContainsOpen(b.X) {
			return i
		}
	}
	return -1
}

// CollectCoins awards bonus for every coin the ball touches and removes it.
// Collection events are appended to events.
func CollectCoins(rs *RunState, bonus int, events []core.Event) []core.Event {
	ball := rs.Ball.Circle()

	for i := range rs.Coins {
		c := &rs.Coins[i]
		if c.Collected {
			continue
		}
		if !ball.Touches(core.Circle{Center: core.Vec{X: c.X, Y: c.BobY()}, R: c.Radius}) {
			continue
		}
		c.Collected = true
		rs.Score += float64(bonus)
		events = append(events, core.Event{
			Kind:  core.EventCoinCollected,
			X:     c.X,
			Y:     c.Y,
			Value: bonus,
		})
	}

	valid := rs.Coins[:0]
	for _, c := range rs.Coins {
		if !c.Collected {
			valid = append(valid, c)
		}
	}
	rs.Coins = valid

	return events
}
