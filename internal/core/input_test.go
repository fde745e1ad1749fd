package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionJump)
	f.Start("ada")
	if !f.Has(ActionJump) || !f.Has(ActionStart) {
		t.Error("Frame should report queued actions")
	}
	if f.Nickname != "ada" {
		t.Errorf("Nickname = %q, expected %q", f.Nickname, "ada")
	}

	f.Clear()
	if !f.Empty() || f.Nickname != "" {
		t.Error("Clear should drop actions and nickname")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestSanitizeNickname(t *testing.T) {
	tests := []struct {
		name, in, expected string
	}{
		{"plain", "ada", "ada"},
		{"trimmed", "  grace  ", "grace"},
		{"empty", "", "Player"},
		{"whitespace only", " \t ", "Player"},
		{"capped", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnop"},
		{"capped runes", "ééééééééééééééééééé", "éééééééééééééééé"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeNickname(tc.in, "Player", 16); got != tc.expected {
				t.Errorf("SanitizeNickname(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}
