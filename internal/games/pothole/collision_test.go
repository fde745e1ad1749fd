package pothole

import (
	"testing"

	"github.com/vovakirdan/pothole-jumper/internal/core"
)

func TestFatalGap(t *testing.T) {
	gaps := []Gap{
		{X: 100, Width: 50},
		{X: 180, Width: 60},
	}

	tests := []struct {
		name   string
		ball   Ball
		expect int
	}{
		{"inside band", Ball{X: 200, Y: testPlatform - 15 + 1, Radius: 15}, 1},
		{"first gap", Ball{X: 120, Y: testPlatform - 15 + 10, Radius: 15}, 0},
		{"resting on platform", Ball{X: 200, Y: testPlatform - 15, Radius: 15}, -1},
		{"above platform", Ball{X: 200, Y: 200, Radius: 15}, -1},
		{"below band", Ball{X: 200, Y: testPlatform - 15 + 35, Radius: 15}, -1},
		{"just inside band", Ball{X: 200, Y: testPlatform - 15 + 34.9, Radius: 15}, 1},
		{"on leading edge", Ball{X: 180, Y: testPlatform - 15 + 1, Radius: 15}, -1},
		{"on trailing edge", Ball{X: 240, Y: testPlatform - 15 + 1, Radius: 15}, -1},
		{"between gaps", Ball{X: 165, Y: testPlatform - 15 + 1, Radius: 15}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FatalGap(tt.ball, gaps, testPlatform, 35); got != tt.expect {
				t.Errorf("FatalGap = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestCollectCoinsOnce(t *testing.T) {
	rs := RunState{
		Ball: groundedBall(),
		Coins: []Coin{
			{X: 210, Y: testPlatform - 20, Radius: 10},  // touching
			{X: 400, Y: testPlatform - 100, Radius: 10}, // far away
		},
	}

	events := CollectCoins(&rs, 25, nil)
	if rs.Score != 25 {
		t.Fatalf("score = %v, want 25", rs.Score)
	}
	if len(rs.Coins) != 1 || rs.Coins[0].X != 400 {
		t.Fatalf("collected coin not removed: %+v", rs.Coins)
	}
	if countEvents(events, core.EventCoinCollected) != 1 || events[0].Value != 25 {
		t.Fatalf("unexpected events %v", events)
	}

	events = CollectCoins(&rs, 25, nil)
	if rs.Score != 25 || len(events) != 0 {
		t.Errorf("second pass awarded again: score=%v events=%v", rs.Score, events)
	}
}

func TestCollectCoinsUsesBob(t *testing.T) {
	ball := groundedBall()
	// Resting centre is 26 units away (just out of reach); bobbing down 3 brings it to 23.
	coin := Coin{X: ball.X, Y: ball.Y - 26, Radius: 10, BobAmplitude: 3}

	rs := RunState{Ball: ball, Coins: []Coin{coin}}
	CollectCoins(&rs, 25, nil)
	if rs.Score != 0 {
		t.Fatal("coin at rest should be out of reach")
	}

	rs.Coins[0].Phase = 3.14159265 / 2 // sin = 1, coin bobs down
	CollectCoins(&rs, 25, nil)
	if rs.Score != 25 {
		t.Error("bobbing coin should be collected")
	}
}
