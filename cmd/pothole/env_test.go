package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"fps", "POTHOLE_FPS"},
		{"log-file", "POTHOLE_LOG_FILE"},
		{"idle-timeout", "POTHOLE_IDLE_TIMEOUT"},
	}

	for _, tt := range tests {
		if got := envName(tt.flag); got != tt.want {
			t.Errorf("envName(%q) = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

func newFlagSet(fps *int, nick *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntVar(fps, "fps", 60, "")
	fs.StringVar(nick, "nick", "", "")
	return fs
}

func TestApplyEnvToFlags(t *testing.T) {
	env := map[string]string{
		"POTHOLE_FPS":  "30",
		"POTHOLE_NICK": "ada",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var fps int
	var nick string
	fs := newFlagSet(&fps, &nick)
	if err := fs.Parse([]string{"--nick", "grace"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if err := applyEnvToFlags(fs, lookup); err != nil {
		t.Fatalf("applyEnvToFlags: %v", err)
	}
	if fps != 30 {
		t.Errorf("fps = %d, want 30 from env", fps)
	}
	if nick != "grace" {
		t.Errorf("nick = %q, explicit flag should win", nick)
	}
}

func TestApplyEnvToFlagsInvalidValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "POTHOLE_FPS" {
			return "fast", true
		}
		return "", false
	}

	var fps int
	var nick string
	fs := newFlagSet(&fps, &nick)
	if err := applyEnvToFlags(fs, lookup); err == nil {
		t.Error("expected error for non-numeric POTHOLE_FPS")
	}
}

func TestLoadGameConfigRejectsUnknownDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig, flagDifficulty = "", "insane"
	defer func() { flagDifficulty = "" }()

	if _, err := loadGameConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestLoadGameConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig, flagDifficulty = "", ""
	base, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}

	flagDifficulty = "fixed"
	defer func() { flagDifficulty = "" }()
	fixed, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig: %v", err)
	}
	if fixed.Speed.Ramp != 0 || fixed.Speed.Base != base.Speed.Base {
		t.Errorf("fixed preset: base=%v ramp=%v", fixed.Speed.Base, fixed.Speed.Ramp)
	}
}
