package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pothole-jumper/internal/core"
	"github.com/vovakirdan/pothole-jumper/internal/platform/tui"
	"github.com/vovakirdan/pothole-jumper/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pothole Jumper in this terminal",
	Long: `Start Pothole Jumper in this terminal.

Controls:
  Enter      - Start with the typed nickname
  Space/Up/W - Jump
  P/Esc      - Pause / resume
  R          - Replay (after game over)
  Tab        - Session leaderboard
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentle speed ramp
  normal - Config values as they are
  hard   - Faster start, steep speed ramp
  fixed  - No speed ramp, the road stays at its starting speed

Examples:
  pothole play
  pothole play --difficulty easy
  pothole play --seed 42 --nick ada
  pothole play --config ./my-pothole.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger("pothole", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	hub, err := startSpectator(ctx, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session leaderboard", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:    store,
		Hub:      hub,
		Logger:   logger,
		Session:  "local",
		Nickname: flagNick,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
