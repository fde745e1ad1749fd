package pothole

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pothole-jumper/internal/config"
)

// Coin is a bonus pickup floating above a gap.
type Coin struct {
	X, Y         float64 // Centre at rest
	Radius       float64
	Phase        float64 // Bob animation phase in radians
	BobSpeed     float64
	BobAmplitude float64
	Collected    bool
}

// BobY returns the coin's current y including the bobbing offset.
func (c Coin) BobY() float64 {
	return c.Y + math.Sin(c.Phase)*c.BobAmplitude
}

// CoinPlacer attaches coins to new gaps and scrolls them.
type CoinPlacer struct {
	cfg        config.CoinConfig
	ballRadius float64
	rng        *rand.Rand
}

// NewCoinPlacer creates a coin placer. Coins hover at least two ball radii
// above the platform so reaching one takes a jump.
func NewCoinPlacer(cfg config.CoinConfig, ballRadius float64, rng *rand.Rand) *CoinPlacer {
	return &CoinPlacer{
		cfg:        cfg,
		ballRadius: ballRadius,
		rng:        rng,
	}
}

// Place rolls for a coin over gap and appends it to rs. It reports whether
// a coin was placed.
func (p *CoinPlacer) Place(rs *RunState, gap Gap, platformY float64) bool {
	if p.rng.Float64() >= p.cfg.Chance {
		return false
	}

	lift := p.cfg.MinLift + p.rng.Float64()*(p.cfg.MaxLift-p.cfg.MinLift)
	rs.Coins = append(rs.Coins, Coin{
		X:            gap.X + gap.Width/2,
		Y:            platformY - p.ballRadius*2 - lift,
		Radius:       p.cfg.Radius,
		Phase:        p.rng.Float64() * 2 * math.Pi,
		BobSpeed:     p.cfg.BobSpeed,
		BobAmplitude: p.cfg.BobAmplitude,
	})
	return true
}

// Advance scrolls coins, advances their bob phase and drops those far off-screen.
func (p *CoinPlacer) Advance(rs *RunState) {
	for i := range rs.Coins {
		rs.Coins[i].X -= rs.Speed
		rs.Coins[i].Phase += rs.Coins[i].BobSpeed
	}

	valid := rs.Coins[:0]
	for _, c := range rs.Coins {
		if c.X+c.Radius >= -p.cfg.DespawnMargin {
			valid = append(valid, c)
		}
	}
	rs.Coins = valid
}
