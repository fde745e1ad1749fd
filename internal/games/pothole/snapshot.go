package pothole

// Snapshot captures the complete game state for determinism testing and the
// spectator feed. Slices are copies and safe to keep.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Nickname   string
	Score      float64
	Display    int // Score as shown in the HUD
	FinalScore int
	Speed      float64
	View       Viewport
	Ball       Ball
	Gaps       []Gap
	Coins      []Coin
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.run.Tick,
		Phase:      g.phase,
		Nickname:   g.nickname,
		Score:      g.run.Score,
		Display:    g.displayScore(),
		FinalScore: g.finalScore,
		Speed:      g.run.Speed,
		View:       g.view,
		Ball:       g.run.Ball,
		Gaps:       append([]Gap(nil), g.run.Gaps...),
		Coins:      append([]Coin(nil), g.run.Coins...),
	}
}
