package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pothole-jumper/internal/config"
	"github.com/vovakirdan/pothole-jumper/internal/spectate"
)

// loadGameConfig resolves the game config and applies the difficulty preset.
func loadGameConfig() (config.PotholeConfig, error) {
	cfg, err := config.LoadPothole(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger writes to --log-file when set, otherwise to fallback.
// The returned close function must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// startSpectator serves the spectator feed on --spectate until ctx is done.
// It returns a nil hub when the feed is disabled.
func startSpectator(ctx context.Context, logger *log.Logger) (*spectate.Hub, error) {
	if flagSpectate == "" {
		return nil, nil
	}

	hub := spectate.NewHub(logger.WithPrefix("spectate"))
	srv, err := spectate.Listen(flagSpectate, hub)
	if err != nil {
		return nil, err
	}

	logger.Info("spectator feed listening", "address", srv.Addr(), "path", "/ws")
	go func() {
		if err := srv.Serve(ctx); err != nil {
			logger.Error("spectator feed stopped", "error", err)
		}
	}()
	return hub, nil
}
